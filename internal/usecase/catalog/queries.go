package usecase

import (
	"context"
	"log/slog"

	"github.com/digimart/catalog-service/internal/domain"
)

const (
	cacheKeyAllProducts = "products:all"
	cacheKeyProduct     = "product:"
)

// GetProducts serves the storefront list. The full catalog is fetched (and
// cached); the filter stays an in-process predicate over the fetched list.
func (uc *DefaultCatalogUsecase) GetProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error) {
	products, err := uc.allProducts(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]*domain.Product, 0, len(products))
	for _, product := range products {
		if filter.Matches(product) {
			filtered = append(filtered, product)
		}
	}
	return filtered, nil
}

func (uc *DefaultCatalogUsecase) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	if uc.Cache != nil {
		var cached domain.Product
		if hit, err := uc.Cache.Get(ctx, cacheKeyProduct+id, &cached); err != nil {
			slog.Warn("product cache read failed", "error", err.Error())
		} else if hit {
			return &cached, nil
		}
	}

	product, err := uc.ProductRepo.GetProductByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.Cache != nil {
		if err := uc.Cache.Set(ctx, cacheKeyProduct+id, product); err != nil {
			slog.Warn("product cache write failed", "error", err.Error())
		}
	}
	return product, nil
}

func (uc *DefaultCatalogUsecase) GetMerchantProducts(ctx context.Context, merchantID string, category string) ([]*domain.Product, error) {
	products, err := uc.ProductRepo.GetMerchantProducts(ctx, merchantID)
	if err != nil {
		return nil, err
	}
	if category == "" {
		return products, nil
	}

	filter := domain.ProductFilter{Category: category}
	filtered := make([]*domain.Product, 0, len(products))
	for _, product := range products {
		if filter.Matches(product) {
			filtered = append(filtered, product)
		}
	}
	return filtered, nil
}

func (uc *DefaultCatalogUsecase) CountProducts(ctx context.Context) (int64, error) {
	return uc.ProductRepo.CountProducts(ctx)
}

func (uc *DefaultCatalogUsecase) allProducts(ctx context.Context) ([]*domain.Product, error) {
	if uc.Cache != nil {
		var cached []*domain.Product
		if hit, err := uc.Cache.Get(ctx, cacheKeyAllProducts, &cached); err != nil {
			slog.Warn("catalog cache read failed", "error", err.Error())
		} else if hit {
			return cached, nil
		}
	}

	products, err := uc.ProductRepo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	if uc.Cache != nil {
		if err := uc.Cache.Set(ctx, cacheKeyAllProducts, products); err != nil {
			slog.Warn("catalog cache write failed", "error", err.Error())
		}
	}
	return products, nil
}

// invalidate drops the list and the single-product entries touched by a
// write. Cache failures are logged, never surfaced.
func (uc *DefaultCatalogUsecase) invalidate(ctx context.Context, productID string) {
	if uc.Cache == nil {
		return
	}
	if err := uc.Cache.Delete(ctx, cacheKeyAllProducts, cacheKeyProduct+productID); err != nil {
		slog.Warn("catalog cache invalidation failed", "error", err.Error())
	}
}
