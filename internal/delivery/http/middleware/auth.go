package middleware

import (
	"fmt"

	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

// SessionKey is where the resolved session lives in request locals.
const SessionKey = "session"

// Auth resolves the bearer token into a live session and stores it in the
// request locals. Requests without a valid session are rejected.
func Auth(sessions usecase.SessionUsecase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token provided"})
		}

		var token string
		fmt.Sscanf(authHeader, "Bearer %s", &token)
		if token == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "token format is invalid"})
		}

		session, err := sessions.Current(c.UserContext(), token)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": domain.ErrSessionExpired.Error()})
		}

		c.Locals(SessionKey, session)
		return c.Next()
	}
}

// RequireVerified gates merchant-facing routes on a verified email address.
func RequireVerified() fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := CurrentSession(c)
		if session == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no session"})
		}
		if !session.EmailVerified {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": domain.ErrEmailNotVerified.Error()})
		}
		return c.Next()
	}
}

// CurrentSession pulls the session resolved by Auth, nil when absent.
func CurrentSession(c *fiber.Ctx) *domain.Session {
	session, _ := c.Locals(SessionKey).(*domain.Session)
	return session
}
