package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisStore "create2earn/internal/adapter/storage/redis"
	"create2earn/pkg/apperror"
	"create2earn/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Limiter counts requests per key and window.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*redisStore.RateLimitResult, error)
}

// Endpoint groups.
const (
	GroupAuth   = "auth"
	GroupWrite  = "write"
	GroupRead   = "read"
	GroupSignIn = "sign_in"
)

// DefaultRateLimitRules derives the per-group limits from the configured
// per-minute budget for state-changing calls.
func DefaultRateLimitRules(writesPerMinute int) map[string]RateLimitRule {
	if writesPerMinute <= 0 {
		writesPerMinute = 120
	}
	return map[string]RateLimitRule{
		GroupSignIn: {Limit: 10, Window: time.Minute},
		GroupAuth:   {Limit: 30, Window: time.Minute},
		GroupWrite:  {Limit: int64(writesPerMinute), Window: time.Minute},
		GroupRead:   {Limit: int64(writesPerMinute) * 5, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// Redis failures let the request through.
func RateLimiter(store Limiter, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys authenticated calls by account, others by IP.
func extractIdentifier(c *gin.Context) string {
	if caller, ok := Caller(c); ok {
		return caller.Hex()
	}
	return c.ClientIP()
}
