package dto

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	apperrors "github.com/xiebiao/literary-depot/pkg/errors"
)

var registerOnce sync.Once

// RegisterValidator makes validation errors report JSON field names
// ("amazon_link") instead of Go names ("AmazonLink").
func RegisterValidator() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})
	})
}

// BindError converts a gin binding failure into a 422 validation error.
// Every failure carries a location path such as ["body","price"].
func BindError(err error) *apperrors.AppError {
	var (
		verrs   validator.ValidationErrors
		typeErr *json.UnmarshalTypeError
		synErr  *json.SyntaxError
	)

	switch {
	case errors.As(err, &verrs):
		fields := make([]apperrors.FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, fieldError(fe))
		}
		return apperrors.Validation(fields...)

	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return apperrors.Validation(apperrors.FieldError{
			Loc:  loc,
			Msg:  typeMessage(typeErr.Type.Kind()),
			Type: "type_error." + typeName(typeErr.Type.Kind()),
		})

	case errors.As(err, &synErr), errors.Is(err, io.ErrUnexpectedEOF):
		return apperrors.Validation(apperrors.FieldError{
			Loc:  []string{"body"},
			Msg:  "invalid JSON body",
			Type: "value_error.jsondecode",
		})

	case errors.Is(err, io.EOF):
		return apperrors.Validation(apperrors.FieldError{
			Loc:  []string{"body"},
			Msg:  "field required",
			Type: "value_error.missing",
		})
	}

	return apperrors.Validation(apperrors.FieldError{
		Loc:  []string{"body"},
		Msg:  err.Error(),
		Type: "value_error",
	})
}

// MissingField reports a required field that was not sent.
func MissingField(loc ...string) *apperrors.AppError {
	return apperrors.Validation(apperrors.FieldError{
		Loc:  loc,
		Msg:  "field required",
		Type: "value_error.missing",
	})
}

// NullField reports an explicit null where a value is required.
func NullField(loc ...string) *apperrors.AppError {
	return apperrors.Validation(apperrors.FieldError{
		Loc:  loc,
		Msg:  "none is not an allowed value",
		Type: "type_error.none.not_allowed",
	})
}

func fieldError(fe validator.FieldError) apperrors.FieldError {
	loc := []string{"body", fe.Field()}
	if fe.Tag() == "required" {
		return apperrors.FieldError{Loc: loc, Msg: "field required", Type: "value_error.missing"}
	}
	return apperrors.FieldError{
		Loc:  loc,
		Msg:  "failed on the '" + fe.Tag() + "' rule",
		Type: "value_error." + fe.Tag(),
	}
}

func typeName(k reflect.Kind) string {
	switch k {
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Bool:
		return "bool"
	case reflect.String:
		return "str"
	case reflect.Struct, reflect.Map:
		return "dict"
	default:
		return k.String()
	}
}

func typeMessage(k reflect.Kind) string {
	switch typeName(k) {
	case "float":
		return "value is not a valid float"
	case "integer":
		return "value is not a valid integer"
	case "bool":
		return "value could not be parsed to a boolean"
	case "str":
		return "str type expected"
	case "dict":
		return "value is not a valid dict"
	default:
		return "value is not a valid " + typeName(k)
	}
}

// ParseBool parses a query flag. Accepted spellings, in any letter case:
// 1/0, true/false, t/f, yes/no, y/n, on/off.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "t", "yes", "y", "on":
		return true, true
	case "0", "false", "f", "no", "n", "off":
		return false, true
	}
	return false, false
}

// InvalidBool reports a query flag ParseBool rejected.
func InvalidBool(loc ...string) *apperrors.AppError {
	return apperrors.Validation(apperrors.FieldError{
		Loc:  loc,
		Msg:  "value could not be parsed to a boolean",
		Type: "type_error.bool",
	})
}
