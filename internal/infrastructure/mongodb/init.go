package mongodb

import (
	"context"
	"log"
	"time"

	"github.com/digimart/catalog-service/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	MerchantCollection = "merchant"
	ProductCollection  = "products"
)

func MustInitDB(cfg *config.CatalogConfig) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.CatalogDB.URI))
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("failed to ping db: %v\n", err.Error())
	}

	return client.Database(cfg.CatalogDB.Database)
}
