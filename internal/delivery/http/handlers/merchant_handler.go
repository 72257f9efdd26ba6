package handlers

import (
	"github.com/digimart/catalog-service/internal/delivery/http/middleware"
	"github.com/digimart/catalog-service/internal/usecase"
	merchantdto "github.com/digimart/catalog-service/internal/usecase/dto/merchant"
	"github.com/gofiber/fiber/v2"
)

type MerchantHandler struct {
	Merchants usecase.MerchantUsecase
}

func NewMerchantHandler(merchants usecase.MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{Merchants: merchants}
}

type registerMerchantRequest struct {
	Email        string   `json:"email"`
	PrimaryPhone string   `json:"primary_phone"`
	WhatsappNo   string   `json:"whatsapp_no"`
	BrandName    string   `json:"brand_name"`
	Address      string   `json:"address"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	PostalCode   string   `json:"postal_code"`
	Country      string   `json:"country"`
	Categories   []string `json:"categories"`
}

// Register - POST /api/merchants
func (h *MerchantHandler) Register(c *fiber.Ctx) error {
	var req registerMerchantRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}

	if len(req.Categories) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "at least one category must be selected"})
	}

	session := middleware.CurrentSession(c)
	merchant, err := h.Merchants.RegisterMerchant(c.UserContext(), &merchantdto.RegisterMerchantInput{
		UserID:       session.UserID,
		Email:        req.Email,
		PrimaryPhone: req.PrimaryPhone,
		WhatsappNo:   req.WhatsappNo,
		BrandName:    req.BrandName,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
		Categories:   req.Categories,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": merchantdto.ToMerchantResponse(merchant)})
}

// Me - GET /api/merchants/me
func (h *MerchantHandler) Me(c *fiber.Ctx) error {
	session := middleware.CurrentSession(c)

	merchant, err := h.Merchants.GetMerchantByAccount(c.UserContext(), session.UserID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"data": merchantdto.ToMerchantResponse(merchant)})
}
