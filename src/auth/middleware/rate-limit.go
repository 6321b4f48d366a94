package auth_middleware

import (
	"time"

	"github.com/Altaway/wabridge-server/src/config/env"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

// LoginRateLimiter limits login attempts per IP + email
var LoginRateLimiter = limiter.New(limiter.Config{
	Max:        env.RateLimitLogin,
	Expiration: 15 * time.Minute,
	KeyGenerator: func(c *fiber.Ctx) string {
		// Parse body to get email for rate limiting
		var body struct {
			Email string `json:"email"`
		}
		if err := c.BodyParser(&body); err == nil && body.Email != "" {
			return "login:" + c.IP() + ":" + body.Email
		}
		return "login:" + c.IP()
	},
	LimitReached: func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error":   "Too many login attempts",
			"message": "Please try again later",
		})
	},
})
