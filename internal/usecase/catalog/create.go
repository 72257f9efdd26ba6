package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/infrastructure/kafka"
	productdto "github.com/digimart/catalog-service/internal/usecase/dto/product"
)

// CreateProduct uploads the image set, then inserts the product document
// with denormalized merchant fields. Uploads are all-or-nothing: if any
// upload fails, the rest are compensated and no document is written.
func (uc *DefaultCatalogUsecase) CreateProduct(ctx context.Context, input *productdto.CreateProductInput) (*domain.Product, error) {
	condition, err := validateProductFields(input.Name, input.Price, input.Condition, input.Category, input.Negotiable)
	if err != nil {
		return nil, err
	}
	if input.MerchantID == "" {
		return nil, domain.NewValidationError("merchantId", "missing or empty field")
	}
	if len(input.Images) > domain.MaxProductImages {
		return nil, domain.ErrTooManyImages
	}

	uploaded, err := uc.uploadAll(ctx, input.Images)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &domain.Product{
		Name:           input.Name,
		Price:          input.Price,
		Description:    input.Description,
		Specifications: input.Specifications,
		Condition:      condition,
		Category:       input.Category,
		Negotiable:     input.Negotiable,
		ImageURLs:      imageURLs(uploaded),
		MerchantID:     input.MerchantID,
		BrandName:      input.BrandName,
		MerchantNo:     input.MerchantNo,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.ProductRepo.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	if uc.Metrics != nil {
		uc.Metrics.ProductsCreatedTotal.Inc()
	}
	uc.invalidate(ctx, product.ID)
	uc.publishEvent(kafka.EventProductCreated, product)

	return product, nil
}

func validateProductFields(name, price, condition, category, negotiable string) (domain.Condition, error) {
	if name == "" {
		return "", domain.NewValidationError("name", "missing or empty field")
	}
	if price == "" {
		return "", domain.NewValidationError("price", "missing or empty field")
	}
	if category == "" {
		return "", domain.NewValidationError("category", "missing or empty field")
	}
	parsed, ok := domain.ParseCondition(condition)
	if !ok {
		return "", domain.NewValidationError("condition", "must be new, used or refurbished")
	}
	if negotiable != "yes" && negotiable != "no" {
		return "", domain.NewValidationError("negotiable", "must be yes or no")
	}
	return parsed, nil
}
