package middleware

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Bhuvantej123/skilltrack-bot/backend/config"
	"github.com/Bhuvantej123/skilltrack-bot/backend/utils"
)

// AuthMiddleware rejects requests without a valid token and stashes the
// username in ctx locals for handlers.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		username, err := utils.ExtractUsernameFromToken(c, cfg)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Unauthorized",
			})
		}
		c.Locals("username", username)
		return c.Next()
	}
}

// Username returns the authenticated username set by AuthMiddleware.
func Username(c *fiber.Ctx) string {
	username, _ := c.Locals("username").(string)
	return username
}
