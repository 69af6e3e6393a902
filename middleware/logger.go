package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestLogger logs method, path, status, user and duration for every request
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		user := "Anonymous"
		if email, ok := c.Locals("email").(string); ok && email != "" {
			user = email
		}
		log.Printf("%s %s Status: %d User: %s Duration: %.3fs",
			c.Method(), c.OriginalURL(), c.Response().StatusCode(), user,
			time.Since(start).Seconds())
		return err
	}
}
