package usecase

import (
	"context"

	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/infrastructure/metrics"
	productdto "github.com/digimart/catalog-service/internal/usecase/dto/product"
)

// uploadConcurrency bounds parallel media API uploads per submission.
const uploadConcurrency = 3

type CatalogUsecase interface {
	CreateProduct(ctx context.Context, input *productdto.CreateProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, productID string, input *productdto.UpdateProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, productID, merchantID string) error

	GetProducts(ctx context.Context, filter domain.ProductFilter) ([]*domain.Product, error)
	GetProductByID(ctx context.Context, id string) (*domain.Product, error)
	GetMerchantProducts(ctx context.Context, merchantID string, category string) ([]*domain.Product, error)
	CountProducts(ctx context.Context) (int64, error)
}

// Cache is the slice of the redis cache the catalog needs. A nil Cache
// disables caching entirely.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, keys ...string) error
}

type DefaultCatalogUsecase struct {
	ProductRepo domain.ProductRepository
	Media       domain.MediaStore
	Cache       Cache
	Publisher   domain.PublisherPort
	Metrics     *metrics.CatalogMetrics
	Topic       string
}

func NewDefaultCatalogUsecase(
	productRepo domain.ProductRepository,
	media domain.MediaStore,
	cache Cache,
	publisher domain.PublisherPort,
	catalogMetrics *metrics.CatalogMetrics,
	topic string,
) *DefaultCatalogUsecase {
	return &DefaultCatalogUsecase{
		ProductRepo: productRepo,
		Media:       media,
		Cache:       cache,
		Publisher:   publisher,
		Metrics:     catalogMetrics,
		Topic:       topic,
	}
}
