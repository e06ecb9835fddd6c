package middleware

import (
	"fmt"
	"net/http"
	"time"

	"recruitme/pkg/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimitMiddleware enforces a fixed-window limit keyed by the
// authenticated user when present, otherwise by client IP.
func RateLimitMiddleware(limiter ratelimit.Limiter, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, exists := c.Get("user_id")
		if exists {
			identity = fmt.Sprintf("%v:%s", identity, c.ClientIP())
		} else {
			identity = c.ClientIP()
		}

		key := fmt.Sprintf("%s:%v", c.Request.URL.Path, identity)

		result := limiter.Allow(c.Request.Context(), key, limit, window)
		if !result.Allowed {
			retryAfter := int(result.RetryAfter.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Too many requests. Please try again later.",
				"retry_after": retryAfter,
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
