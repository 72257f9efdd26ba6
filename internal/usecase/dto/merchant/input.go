package merchantdto

type RegisterMerchantInput struct {
	UserID       string   `json:"user_id" validate:"required"`
	Email        string   `json:"email" validate:"required"`
	PrimaryPhone string   `json:"primary_phone" validate:"required"`
	WhatsappNo   string   `json:"whatsapp_no" validate:"required"`
	BrandName    string   `json:"brand_name" validate:"required"`
	Address      string   `json:"address" validate:"required"`
	City         string   `json:"city" validate:"required"`
	State        string   `json:"state" validate:"required"`
	PostalCode   string   `json:"postal_code" validate:"required"`
	Country      string   `json:"country" validate:"required"`
	Categories   []string `json:"categories" validate:"min=1"`
}
