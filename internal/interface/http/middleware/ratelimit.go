package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/xiebiao/literary-depot/pkg/errors"
	"github.com/xiebiao/literary-depot/pkg/response"
)

// RateLimitOptions configures RateLimit.
type RateLimitOptions struct {
	RPS   float64 // tokens added per second, per client IP
	Burst int     // bucket size

	// IdleTTL evicts limiters of clients not seen for this long. Default 3m.
	IdleTTL time.Duration

	now func() time.Time
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimit applies a token bucket per client IP and answers 429 when the
// bucket is empty. Idle entries are swept at most once per IdleTTL, on the
// request path.
func RateLimit(opts RateLimitOptions) gin.HandlerFunc {
	if opts.IdleTTL <= 0 {
		opts.IdleTTL = 3 * time.Minute
	}
	if opts.now == nil {
		opts.now = time.Now
	}

	var (
		mu        sync.Mutex
		visitors  = make(map[string]*visitor)
		lastSweep = opts.now()
	)

	allow := func(ip string) bool {
		mu.Lock()
		defer mu.Unlock()

		now := opts.now()
		if now.Sub(lastSweep) > opts.IdleTTL {
			for k, v := range visitors {
				if now.Sub(v.lastSeen) > opts.IdleTTL {
					delete(visitors, k)
				}
			}
			lastSweep = now
		}

		v, ok := visitors[ip]
		if !ok {
			v = &visitor{limiter: rate.NewLimiter(rate.Limit(opts.RPS), opts.Burst)}
			visitors[ip] = v
		}
		v.lastSeen = now
		return v.limiter.AllowN(now, 1)
	}

	return func(c *gin.Context) {
		if !allow(c.ClientIP()) {
			response.Error(c, apperrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}
