package response

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/literary-depot/pkg/errors"
)

// ErrorBody is the error payload shared by every endpoint.
// Detail is either a message string or a list of field errors.
type ErrorBody struct {
	Detail interface{} `json:"detail"`
}

// Success writes data as the bare response body.
// Clients consume records and lists directly, so there is no envelope.
func Success(c *gin.Context, data interface{}) {
	c.JSON(200, data)
}

// Error renders err with the status derived from its code.
// Usage:
//
//	b, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// Internal causes go to the log only.
	if appErr.Err != nil || status >= 500 {
		_ = c.Error(err)
		zap.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("code", appErr.Code),
			zap.Error(err),
		)
	}

	switch {
	case status >= 500:
		c.AbortWithStatusJSON(status, ErrorBody{Detail: apperrors.ErrInternal.Message})
	case len(appErr.Fields) > 0:
		c.AbortWithStatusJSON(status, ErrorBody{Detail: appErr.Fields})
	default:
		c.AbortWithStatusJSON(status, ErrorBody{Detail: appErr.Message})
	}
}

// ErrorWithCode renders an ad-hoc code and message.
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}
