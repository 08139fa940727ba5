package middleware

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/oolongtea/coursehub-sync/utils/cache"
	"github.com/oolongtea/coursehub-sync/utils/response"
)

// RequireAdminSecret guards admin endpoints with a shared secret passed in
// the x-admin-secret header. With no secret configured the endpoints are
// disabled outright rather than left open.
func RequireAdminSecret(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if secret == "" {
			return response.ServiceUnavailable(c, "Admin endpoints are not configured")
		}

		provided := c.Get("x-admin-secret")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(secret)) != 1 {
			return response.Unauthorized(c, "Invalid admin secret")
		}

		return c.Next()
	}
}

// RateLimit limits requests per client IP using a fixed redis counter window.
// With no cache available the limiter is a no-op.
func RateLimit(redisCache *cache.RedisCache, prefix string, limit int64, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if redisCache == nil {
			return c.Next()
		}

		key := fmt.Sprintf("ratelimit:%s:%s", prefix, c.IP())
		count, err := redisCache.Increment(c.Context(), key)
		if err != nil {
			// Cache trouble should not take the API down.
			return c.Next()
		}
		if count == 1 {
			if err := redisCache.Expire(c.Context(), key, window); err != nil {
				return c.Next()
			}
		}
		if count > limit {
			return response.TooManyRequests(c, "")
		}

		return c.Next()
	}
}
