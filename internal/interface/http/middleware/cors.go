package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSOptions configures the CORS middleware.
type CORSOptions struct {
	AllowOrigins     []string // "*" allows any origin
	AllowCredentials bool
}

const allowedMethods = "DELETE, GET, HEAD, OPTIONS, PATCH, POST, PUT"

// CORS answers cross-origin requests.
//
// Any method and any header are allowed. With credentials enabled the
// browser rejects "Access-Control-Allow-Origin: *", so the request Origin is
// echoed back instead. Preflight requests (OPTIONS with
// Access-Control-Request-Method) are answered with 200 and never reach a
// handler; a preflight from a disallowed origin gets 400.
func CORS(opts CORSOptions) gin.HandlerFunc {
	allowAll := false
	allowed := make(map[string]struct{}, len(opts.AllowOrigins))
	for _, o := range opts.AllowOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = struct{}{}
	}

	originAllowed := func(origin string) bool {
		if allowAll {
			return true
		}
		_, ok := allowed[origin]
		return ok
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		preflight := c.Request.Method == http.MethodOptions && c.GetHeader("Access-Control-Request-Method") != ""
		if !originAllowed(origin) {
			if preflight {
				c.AbortWithStatus(http.StatusBadRequest)
				return
			}
			c.Next()
			return
		}

		if allowAll && !opts.AllowCredentials {
			c.Header("Access-Control-Allow-Origin", "*")
		} else {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Vary", "Origin")
		}
		if opts.AllowCredentials {
			c.Header("Access-Control-Allow-Credentials", "true")
		}

		if preflight {
			c.Header("Access-Control-Allow-Methods", allowedMethods)
			if h := c.GetHeader("Access-Control-Request-Headers"); h != "" {
				c.Header("Access-Control-Allow-Headers", h)
			}
			c.Header("Access-Control-Max-Age", "600")
			c.AbortWithStatus(http.StatusOK)
			return
		}

		c.Header("Access-Control-Expose-Headers", strings.Join([]string{RequestIDHeader}, ", "))
		c.Next()
	}
}
