package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// MerchantModel mirrors one document of the "merchant" collection. The
// creation timestamp is stored as an ISO-8601 string, matching what the
// storefront has always written.
type MerchantModel struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	UserID       string             `bson:"userId"`
	Email        string             `bson:"email"`
	PrimaryPhone string             `bson:"primaryPhone"`
	WhatsappNo   string             `bson:"whatsappNo"`
	BrandName    string             `bson:"brandName"`
	Address      string             `bson:"address"`
	City         string             `bson:"city"`
	State        string             `bson:"state"`
	PostalCode   string             `bson:"postalCode"`
	Country      string             `bson:"country"`
	Categories   []string           `bson:"categories"`
	CreatedAt    string             `bson:"createdAt"`
}
