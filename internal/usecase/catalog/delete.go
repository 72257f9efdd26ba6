package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/infrastructure/kafka"
)

// DeleteProduct removes the document. Deleting an id that does not exist is
// a no-op success; hosted media referenced by the product is deliberately
// left in place (no cascade).
func (uc *DefaultCatalogUsecase) DeleteProduct(ctx context.Context, productID, merchantID string) error {
	existing, err := uc.ProductRepo.GetProductByID(ctx, productID)
	if errors.Is(err, domain.ErrProductNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if merchantID != "" && existing.MerchantID != merchantID {
		return domain.ErrNotOwner
	}

	if err := uc.ProductRepo.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.ProductsDeletedTotal.Inc()
	}
	uc.invalidate(ctx, productID)
	uc.publishEvent(kafka.EventProductDeleted, existing)

	return nil
}
