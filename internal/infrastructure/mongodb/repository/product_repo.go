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

type DefaultProductRepository struct {
	coll *mongo.Collection
}

func NewDefaultProductRepository(db *mongo.Database) *DefaultProductRepository {
	return &DefaultProductRepository{coll: db.Collection(mongodb.ProductCollection)}
}

func (r *DefaultProductRepository) CreateProduct(ctx context.Context, product *domain.Product) error {
	model, err := mappers.ToMongoProduct(product)
	if err != nil {
		return fmt.Errorf("failed to map product: %w", err)
	}

	result, err := r.coll.InsertOne(ctx, model)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	product.ID = result.InsertedID.(primitive.ObjectID).Hex()
	return nil
}

// UpdateProduct replaces the stored document wholesale, last write wins.
func (r *DefaultProductRepository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	oid, err := primitive.ObjectIDFromHex(product.ID)
	if err != nil {
		return domain.ErrProductNotFound
	}

	model, err := mappers.ToMongoProduct(product)
	if err != nil {
		return fmt.Errorf("failed to map product: %w", err)
	}

	result, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: oid}}, model)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return domain.ErrProductNotFound
	}

	return nil
}

// DeleteProduct removes the document. Deleting an id that no longer exists
// is a no-op success; provider errors are propagated, never swallowed.
func (r *DefaultProductRepository) DeleteProduct(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	if _, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}}); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

func (r *DefaultProductRepository) GetProductByID(ctx context.Context, id string) (*domain.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrProductNotFound
	}

	var model models.ProductModel
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&model)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product: %w", err)
	}

	return mappers.ToDomainProduct(&model), nil
}

func (r *DefaultProductRepository) GetProducts(ctx context.Context) ([]*domain.Product, error) {
	return r.find(ctx, bson.D{})
}

func (r *DefaultProductRepository) GetMerchantProducts(ctx context.Context, merchantID string) ([]*domain.Product, error) {
	return r.find(ctx, bson.D{{Key: "merchantId", Value: merchantID}})
}

func (r *DefaultProductRepository) CountProducts(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *DefaultProductRepository) find(ctx context.Context, filter bson.D) ([]*domain.Product, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	defer cursor.Close(ctx)

	products := make([]*domain.Product, 0)
	for cursor.Next(ctx) {
		var model models.ProductModel
		if err := cursor.Decode(&model); err != nil {
			return nil, fmt.Errorf("failed to decode product: %w", err)
		}
		products = append(products, mappers.ToDomainProduct(&model))
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}
