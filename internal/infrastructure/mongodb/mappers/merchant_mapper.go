package mappers

import (
	"time"

	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/infrastructure/mongodb/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func ToDomainMerchant(model *models.MerchantModel) *domain.Merchant {
	createdAt, _ := time.Parse(time.RFC3339, model.CreatedAt)
	return &domain.Merchant{
		ID:           model.ID.Hex(),
		UserID:       model.UserID,
		Email:        model.Email,
		PrimaryPhone: model.PrimaryPhone,
		WhatsappNo:   model.WhatsappNo,
		BrandName:    model.BrandName,
		Address:      model.Address,
		City:         model.City,
		State:        model.State,
		PostalCode:   model.PostalCode,
		Country:      model.Country,
		Categories:   model.Categories,
		CreatedAt:    createdAt,
	}
}

func ToMongoMerchant(merchant *domain.Merchant) (*models.MerchantModel, error) {
	model := &models.MerchantModel{
		UserID:       merchant.UserID,
		Email:        merchant.Email,
		PrimaryPhone: merchant.PrimaryPhone,
		WhatsappNo:   merchant.WhatsappNo,
		BrandName:    merchant.BrandName,
		Address:      merchant.Address,
		City:         merchant.City,
		State:        merchant.State,
		PostalCode:   merchant.PostalCode,
		Country:      merchant.Country,
		Categories:   merchant.Categories,
		CreatedAt:    merchant.CreatedAt.UTC().Format(time.RFC3339),
	}
	if merchant.ID != "" {
		oid, err := primitive.ObjectIDFromHex(merchant.ID)
		if err != nil {
			return nil, err
		}
		model.ID = oid
	}
	return model, nil
}
