package handlers

import (
	"errors"

	"github.com/digimart/catalog-service/internal/domain"
	"github.com/gofiber/fiber/v2"
)

// respondError maps the domain error set onto HTTP statuses exhaustively.
// Anything outside the closed set is a provider or internal failure.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsValidation(err),
		errors.Is(err, domain.ErrTooManyImages),
		errors.Is(err, domain.ErrInvalidEmail),
		errors.Is(err, domain.ErrWeakPassword):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrSessionExpired):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, domain.ErrEmailNotVerified),
		errors.Is(err, domain.ErrNotOwner):
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, domain.ErrMerchantNotFound),
		errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrNotMerchant):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, domain.ErrEmailInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})

	case errors.Is(err, domain.ErrMerchantExists):
		// Already being a merchant is benign: the client should move on to
		// the dashboard instead of showing a failure.
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error":    err.Error(),
			"redirect": "/merchant/dashboard",
		})

	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal server error"})
	}
}
