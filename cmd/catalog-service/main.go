package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/digimart/catalog-service/internal/config"
	httpdelivery "github.com/digimart/catalog-service/internal/delivery/http"
	httpmiddleware "github.com/digimart/catalog-service/internal/delivery/http/middleware"
	"github.com/digimart/catalog-service/internal/domain"
	"github.com/digimart/catalog-service/internal/infrastructure/cache"
	"github.com/digimart/catalog-service/internal/infrastructure/cloudinary"
	"github.com/digimart/catalog-service/internal/infrastructure/identity"
	"github.com/digimart/catalog-service/internal/infrastructure/kafka"
	"github.com/digimart/catalog-service/internal/infrastructure/metrics"
	"github.com/digimart/catalog-service/internal/infrastructure/mongodb"
	"github.com/digimart/catalog-service/internal/infrastructure/mongodb/repository"
	"github.com/digimart/catalog-service/internal/usecase"
	catalogusecase "github.com/digimart/catalog-service/internal/usecase/catalog"
	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := mongodb.MustInitDB(cfg)

	// Init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}

	// Init media client
	mediaClient, err := cloudinary.NewClient(cfg.Cloudinary)
	if err != nil {
		log.Fatalf("failed to init media client: %v", err)
	}

	// Init identity provider client
	identityClient := identity.NewClient(cfg.Identity)

	// Optional kafka publisher
	var publisher domain.PublisherPort
	if cfg.Kafka.Enabled {
		brokers := []string{fmt.Sprintf("%s:%s", cfg.Kafka.Host, cfg.Kafka.Port)}
		kafkaPublisher := kafka.NewDefaultKafkaPublisher(brokers, cfg.Kafka.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
	}

	// Init metrics
	catalogMetrics := metrics.NewCatalogMetrics()

	// Init repos
	merchantRepo := repository.NewDefaultMerchantRepository(db)
	productRepo := repository.NewDefaultProductRepository(db)

	// Init session store and usecase
	sessionStore := cache.NewSessionStore(redisClient)
	sessionUsecase := usecase.NewDefaultSessionUsecase(
		identityClient,
		sessionStore,
		cfg.Session.JWTSecret,
		time.Duration(cfg.Session.TTLHours)*time.Hour,
	)

	// Init merchant usecase
	merchantUsecase := usecase.NewDefaultMerchantUsecase(merchantRepo, publisher, catalogMetrics, cfg.Kafka.Topic)

	// Init catalog usecase
	catalogCache := cache.New(redisClient, "catalog:", 5*time.Minute)
	catalogUsecase := catalogusecase.NewDefaultCatalogUsecase(
		productRepo,
		mediaClient,
		catalogCache,
		publisher,
		catalogMetrics,
		cfg.Kafka.Topic,
	)

	// Metrics endpoint on its own port
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(":"+cfg.Metrics.Port, mux); err != nil {
			log.Printf("metrics server error: %v", err)
		}
	}()

	// Periodic product gauge refresh
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			total, err := catalogUsecase.CountProducts(context.Background())
			if err != nil {
				slog.Error("product count refresh failed", "error", err.Error())
			} else {
				catalogMetrics.ProductsGauge.Set(float64(total))
			}
			<-ticker.C
		}
	}()

	// HTTP server
	app := fiber.New(fiber.Config{
		BodyLimit: 25 * 1024 * 1024,
	})
	httpmiddleware.Setup(app)
	httpdelivery.RegisterRoutes(app, sessionUsecase, merchantUsecase, catalogUsecase)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("catalog service started on %s\n", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
