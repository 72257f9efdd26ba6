package mappers

import (
	"time"

	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/infrastructure/mongodb/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToDomainProduct(model *models.ProductModel) *domain.Product {
	createdAt, _ := time.Parse(time.RFC3339, model.AddedDate)
	updatedAt := createdAt
	if model.LastUpdated != "" {
		if t, err := time.Parse(time.RFC3339, model.LastUpdated); err == nil {
			updatedAt = t
		}
	}
	return &domain.Product{
		ID:             model.ID.Hex(),
		Name:           model.Name,
		Price:          model.Price,
		Description:    model.Description,
		Specifications: model.Specifications,
		Condition:      domain.Condition(model.Condition),
		Category:       model.Category,
		Negotiable:     model.Negotiable,
		ImageURLs:      model.ImageURLs,
		MerchantID:     model.MerchantID,
		BrandName:      model.BrandName,
		MerchantNo:     model.MerchantNo,
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func ToMongoProduct(product *domain.Product) (*models.ProductModel, error) {
	model := &models.ProductModel{
		Name:           product.Name,
		Price:          product.Price,
		Description:    product.Description,
		Specifications: product.Specifications,
		Condition:      string(product.Condition),
		Category:       product.Category,
		Negotiable:     product.Negotiable,
		ImageURLs:      product.ImageURLs,
		MerchantID:     product.MerchantID,
		BrandName:      product.BrandName,
		MerchantNo:     product.MerchantNo,
		AddedDate:      product.CreatedAt.UTC().Format(time.RFC3339),
	}
	if !product.UpdatedAt.IsZero() && !product.UpdatedAt.Equal(product.CreatedAt) {
		model.LastUpdated = product.UpdatedAt.UTC().Format(time.RFC3339)
	}
	if product.ID != "" {
		oid, err := primitive.ObjectIDFromHex(product.ID)
		if err != nil {
			return nil, err
		}
		model.ID = oid
	}
	return model, nil
}
