package middleware

import (
	"fmt"
	"os"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

func jwtSecret() string {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "solid_secret_key" // Replace with secure key in production
	}
	return secret
}

// Protected validates the bearer token and copies the session capability
// claims into locals so downstream checks never hit the database.
func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(jwtSecret()),
		ErrorHandler: jwtError,
		SuccessHandler: func(c *fiber.Ctx) error {
			userToken := c.Locals("user")
			token, ok := userToken.(*jwt.Token)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token",
				})
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid token claims",
				})
			}

			userID, err := extractUserID(claims)
			if err != nil {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid user ID in token",
				})
			}

			role, _ := claims["role"].(string)
			if role == "" {
				return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
					"error": "Invalid role in token",
				})
			}
			isAdmin, _ := claims["is_admin"].(bool)
			email, _ := claims["email"].(string)

			c.Locals("userID", userID)
			c.Locals("role", role)
			c.Locals("isAdmin", isAdmin)
			c.Locals("email", email)

			return c.Next()
		},
	})
}

// extractUserID parses the uuid carried in the token's id claim
func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	idVal, ok := claims["id"].(string)
	if !ok {
		return uuid.Nil, fmt.Errorf("no ID found in claims")
	}
	id, err := uuid.Parse(idVal)
	if err != nil {
		return uuid.Nil, fmt.Errorf("could not parse ID string: %v", err)
	}
	return id, nil
}

// jwtError handles JWT errors
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error":   "Unauthorized",
		"message": "Invalid or expired token",
	})
}
