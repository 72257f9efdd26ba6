package kafka

import "time"

// Event types carried on the catalog topic.
const (
	EventMerchantRegistered = "merchant.registered"
	EventProductCreated     = "product.created"
	EventProductUpdated     = "product.updated"
	EventProductDeleted     = "product.deleted"
)

type CatalogEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	MerchantID string    `json:"merchant_id"`
	ProductID  string    `json:"product_id,omitempty"`
	Name       string    `json:"name,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}
