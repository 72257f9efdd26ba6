package merchantdto

import (
	"time"

	"github.com/digimart/catalog-service/internal/domain"
)

type MerchantResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Email        string    `json:"email"`
	PrimaryPhone string    `json:"primary_phone"`
	WhatsappNo   string    `json:"whatsapp_no"`
	BrandName    string    `json:"brand_name"`
	Address      string    `json:"address"`
	City         string    `json:"city"`
	State        string    `json:"state"`
	PostalCode   string    `json:"postal_code"`
	Country      string    `json:"country"`
	Categories   []string  `json:"categories"`
	CreatedAt    time.Time `json:"created_at"`
}

func ToMerchantResponse(merchant *domain.Merchant) *MerchantResponse {
	return &MerchantResponse{
		ID:           merchant.ID,
		UserID:       merchant.UserID,
		Email:        merchant.Email,
		PrimaryPhone: merchant.PrimaryPhone,
		WhatsappNo:   merchant.WhatsappNo,
		BrandName:    merchant.BrandName,
		Address:      merchant.Address,
		City:         merchant.City,
		State:        merchant.State,
		PostalCode:   merchant.PostalCode,
		Country:      merchant.Country,
		Categories:   merchant.Categories,
		CreatedAt:    merchant.CreatedAt,
	}
}
