package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/Prithwiraj731/Money-Miners/internal/config"
)

// RateLimit builds a sliding-window limiter for one route group, keyed
// by client IP. The group name prefixes the counter key so groups stay
// independent when they share a storage backend. storage may be nil
// (in-memory counters) or a Redis adapter shared across instances.
func RateLimit(group string, rl config.RateLimit, storage fiber.Storage, message string) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:               rl.Max,
		Expiration:        rl.Window,
		Storage:           storage,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator: func(c *fiber.Ctx) string {
			return group + ":" + c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error":       message,
				"retry_after": int(rl.Window.Seconds()),
			})
		},
	})
}
