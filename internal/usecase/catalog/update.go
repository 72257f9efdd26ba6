package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/infrastructure/kafka"
	productdto "github.com/digimart/catalog-service/internal/usecase/dto/product"
)

// UpdateProduct uploads only the new image blobs and writes back the whole
// document: the stored image list becomes kept URLs followed by newly
// uploaded ones, in that order. URLs the caller dropped are simply excluded
// from the write.
func (uc *DefaultCatalogUsecase) UpdateProduct(ctx context.Context, productID string, input *productdto.UpdateProductInput) (*domain.Product, error) {
	condition, err := validateProductFields(input.Name, input.Price, input.Condition, input.Category, input.Negotiable)
	if err != nil {
		return nil, err
	}
	if len(input.KeepImageURLs)+len(input.NewImages) > domain.MaxProductImages {
		return nil, domain.ErrTooManyImages
	}

	existing, err := uc.ProductRepo.GetProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if input.MerchantID != "" && existing.MerchantID != input.MerchantID {
		return nil, domain.ErrNotOwner
	}

	uploaded, err := uc.uploadAll(ctx, input.NewImages)
	if err != nil {
		return nil, err
	}

	urls := make([]string, 0, len(input.KeepImageURLs)+len(uploaded))
	urls = append(urls, input.KeepImageURLs...)
	urls = append(urls, imageURLs(uploaded)...)

	product := &domain.Product{
		ID:             existing.ID,
		Name:           input.Name,
		Price:          input.Price,
		Description:    input.Description,
		Specifications: input.Specifications,
		Condition:      condition,
		Category:       input.Category,
		Negotiable:     input.Negotiable,
		ImageURLs:      urls,
		MerchantID:     existing.MerchantID,
		BrandName:      input.BrandName,
		MerchantNo:     input.MerchantNo,
		CreatedAt:      existing.CreatedAt,
		UpdatedAt:      time.Now(),
	}
	if product.BrandName == "" {
		product.BrandName = existing.BrandName
	}
	if product.MerchantNo == "" {
		product.MerchantNo = existing.MerchantNo
	}

	if err := uc.ProductRepo.UpdateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.ProductsUpdatedTotal.Inc()
	}
	uc.invalidate(ctx, product.ID)
	uc.publishEvent(kafka.EventProductUpdated, product)

	return product, nil
}
