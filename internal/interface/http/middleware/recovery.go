package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/literary-depot/pkg/errors"
	"github.com/xiebiao/literary-depot/pkg/response"
)

// Recovery turns a handler panic into an opaque 500 and logs the stack.
// If the handler already started writing, the response is left as is.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					zap.String("request_id", RequestID(c)),
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
				)
				if c.Writer.Written() {
					c.Abort()
					return
				}
				response.Error(c, apperrors.Wrap(fmt.Errorf("panic: %v", rec), "Internal Server Error"))
			}
		}()
		c.Next()
	}
}
