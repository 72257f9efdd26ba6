package handlers

import (
	"fmt"

	"github.com/digimart/catalog-service/internal/delivery/http/middleware"
	"github.com/digimart/catalog-service/internal/usecase"
	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	Sessions usecase.SessionUsecase
}

func NewAuthHandler(sessions usecase.SessionUsecase) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp - POST /api/auth/signup
func (h *AuthHandler) SignUp(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.Sessions.SignUp(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": out})
}

// LogIn - POST /api/auth/login
func (h *AuthHandler) LogIn(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	out, err := h.Sessions.LogIn(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": out})
}

// LogOut - POST /api/auth/logout
func (h *AuthHandler) LogOut(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token provided"})
	}

	if err := h.Sessions.LogOut(c.UserContext(), token); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "logged out"})
}

// ResendVerification - POST /api/auth/resend-verification
func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	token := bearerToken(c)
	if token == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "no token provided"})
	}

	if err := h.Sessions.ResendVerification(c.UserContext(), token); err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"message": "verification email sent"})
}

// Me - GET /api/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	session := middleware.CurrentSession(c)
	return c.JSON(fiber.Map{"data": session.Identity()})
}

func bearerToken(c *fiber.Ctx) string {
	var token string
	fmt.Sscanf(c.Get("Authorization"), "Bearer %s", &token)
	return token
}
