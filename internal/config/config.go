package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type CatalogConfig struct {
	Env        string `yaml:"env" env-default:"local"`
	HTTPServer `yaml:"http_server"`
	Metrics    `yaml:"metrics"`
	CatalogDB  `yaml:"catalog_db"`
	Redis      `yaml:"redis"`
	Cloudinary `yaml:"cloudinary"`
	Identity   `yaml:"identity"`
	Kafka      `yaml:"kafka"`
	Session    `yaml:"session"`
}

type HTTPServer struct {
	Host string `yaml:"host" env-default:"0.0.0.0"`
	Port string `yaml:"port" env-default:"8080"`
}

type Metrics struct {
	Port string `yaml:"port" env-default:"9091"`
}

type CatalogDB struct {
	URI      string `yaml:"uri" env:"MONGODB_URI"`
	Database string `yaml:"database" env-default:"digimart"`
}

type Redis struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env-default:"0"`
}

type Cloudinary struct {
	CloudName string `yaml:"cloud_name" env:"CLOUDINARY_CLOUD_NAME"`
	APIKey    string `yaml:"api_key" env:"CLOUDINARY_API_KEY"`
	APISecret string `yaml:"api_secret" env:"CLOUDINARY_API_SECRET"`
}

type Identity struct {
	BaseURL string `yaml:"base_url"`
	APIKey  string `yaml:"api_key" env:"IDENTITY_API_KEY"`
}

type Kafka struct {
	Host    string `yaml:"host"`
	Port    string `yaml:"port"`
	Topic   string `yaml:"topic" env-default:"catalog-events"`
	Enabled bool   `yaml:"enabled" env-default:"false"`
}

type Session struct {
	JWTSecret string `yaml:"jwt_secret" env:"SESSION_JWT_SECRET"`
	TTLHours  int    `yaml:"ttl_hours" env-default:"72"`
}

func MustLoad() *CatalogConfig {

	// Processing env config variable and file
	configPath := os.Getenv("CATALOG_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("CATALOG_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg CatalogConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
