package book

import (
	apperrors "github.com/xiebiao/literary-depot/pkg/errors"
)

var (
	// ErrBookNotFound is returned for any id that does not exist.
	ErrBookNotFound = apperrors.ErrBookNotFound

	// ErrInvalidCoverFilename rejects upload names carrying path separators.
	ErrInvalidCoverFilename = apperrors.Validation(apperrors.FieldError{
		Loc:  []string{"body", "file"},
		Msg:  "filename must not contain path separators",
		Type: "value_error.filename",
	})
)
