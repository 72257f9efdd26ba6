package domain

import (
	"context"
	"time"
)

type Merchant struct {
	ID           string
	UserID       string
	Email        string
	PrimaryPhone string
	WhatsappNo   string
	BrandName    string
	Address      string
	City         string
	State        string
	PostalCode   string
	Country      string
	Categories   []string
	CreatedAt    time.Time
}

type MerchantRepository interface {
	CreateMerchant(ctx context.Context, merchant *Merchant) error
	GetMerchantByUserID(ctx context.Context, userID string) (*Merchant, error)
	GetMerchantByID(ctx context.Context, id string) (*Merchant, error)
}
