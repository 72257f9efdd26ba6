package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/infrastructure/mongodb"
	"github.com/digimart/catalog-service/internal/infrastructure/mongodb/mappers"
	"github.com/digimart/catalog-service/internal/infrastructure/mongodb/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DefaultMerchantRepository struct {
	coll *mongo.Collection
}

func NewDefaultMerchantRepository(db *mongo.Database) *DefaultMerchantRepository {
	return &DefaultMerchantRepository{coll: db.Collection(mongodb.MerchantCollection)}
}

func (r *DefaultMerchantRepository) CreateMerchant(ctx context.Context, merchant *domain.Merchant) error {
	model, err := mappers.ToMongoMerchant(merchant)
	if err != nil {
		return fmt.Errorf("failed to map merchant: %w", err)
	}

	result, err := r.coll.InsertOne(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to insert merchant: %w", err)
	}

	merchant.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

func (r *DefaultMerchantRepository) GetMerchantByUserID(ctx context.Context, userID string) (*domain.Merchant, error) {
	var model models.MerchantModel
	err := r.coll.FindOne(ctx, bson.D{{Key: "userId", Value: userID}}).Decode(&model)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrMerchantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch merchant by user id: %w", err)
	}

	return mappers.ToDomainMerchant(&model), nil
}

func (r *DefaultMerchantRepository) GetMerchantByID(ctx context.Context, id string) (*domain.Merchant, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrMerchantNotFound
	}

	var model models.MerchantModel
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&model)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrMerchantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch merchant: %w", err)
	}

	return mappers.ToDomainMerchant(&model), nil
}
