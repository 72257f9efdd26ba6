package usecase

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/infrastructure/kafka"
	"github.com/google/uuid"
)

// publishEvent emits a catalog event keyed by merchant id. Best-effort: a
// broker failure never fails the catalog operation.
func (uc *DefaultCatalogUsecase) publishEvent(eventType string, product *domain.Product) {
	if uc.Publisher == nil {
		return
	}

	event := kafka.CatalogEvent{
		EventID:    uuid.New().String(),
		Type:       eventType,
		MerchantID: product.MerchantID,
		ProductID:  product.ID,
		Name:       product.Name,
		Timestamp:  time.Now(),
	}
	value, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal catalog event", "error", err.Error())
		return
	}

	if err := uc.Publisher.Publish(uc.Topic, domain.Message{Key: []byte(product.MerchantID), Value: value}); err != nil {
		slog.Error("failed to publish catalog event", "type", eventType, "error", err.Error())
	}
}
