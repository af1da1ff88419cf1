package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Catalog  *Catalog  `yaml:"catalog"`
	Checkout *Checkout `yaml:"checkout"`
	DB       *Postgres `yaml:"database"`
	RMQ      *RabbitMQ `yaml:"rabbitmq"`
}

// Catalog selects where the menu comes from. Source is "static" (embedded
// reference menu) or "database" (menu_items table).
type Catalog struct {
	Source       string `yaml:"source"`
	FetchDelayMs int    `yaml:"fetch_delay_ms"`
}

// Checkout carries the pricing and gateway knobs. Defaults match the
// reference storefront behavior.
type Checkout struct {
	ProcessingDelayMs     int     `yaml:"processing_delay_ms"`
	TaxRate               float64 `yaml:"tax_rate"`
	DeliveryFee           int     `yaml:"delivery_fee"`
	FreeDeliveryThreshold int     `yaml:"free_delivery_threshold"`
}

type Postgres struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
}

type RabbitMQ struct {
	Enabled  bool   `yaml:"enabled"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	VHost    string `yaml:"vhost"`
}

func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// LoadDotEnv builds the config from environment variables, reading a .env
// file first if one exists.
func LoadDotEnv() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		Catalog: &Catalog{
			Source:       getEnv("CATALOG_SOURCE", "static"),
			FetchDelayMs: getEnvInt("CATALOG_FETCH_DELAY_MS", 600),
		},
		DB: &Postgres{
			Host:     getEnv("POSTGRES_HOST", "localhost"),
			Port:     getEnv("POSTGRES_PORT", "5432"),
			User:     getEnv("POSTGRES_USER", "admin"),
			Password: getEnv("POSTGRES_PASSWORD", "admin"),
			Database: getEnv("POSTGRES_DBNAME", "aurora_grand"),
		},
		RMQ: &RabbitMQ{
			Enabled:  getEnv("RABBITMQ_ENABLED", "false") == "true",
			Host:     getEnv("RABBITMQ_HOST", "localhost"),
			Port:     getEnv("RABBITMQ_PORT_APP", "5672"),
			User:     getEnv("RABBITMQ_USER", "guest"),
			Password: getEnv("RABBITMQ_PASSWORD", "guest"),
			VHost:    getEnv("RABBITMQ_VHOST", ""),
		},
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Catalog == nil {
		c.Catalog = &Catalog{}
	}
	if c.Catalog.Source == "" {
		c.Catalog.Source = "static"
	}
	if c.Checkout == nil {
		c.Checkout = &Checkout{}
	}
	if c.Checkout.ProcessingDelayMs == 0 {
		c.Checkout.ProcessingDelayMs = 1400
	}
	if c.Checkout.TaxRate == 0 {
		c.Checkout.TaxRate = 0.05
	}
	if c.Checkout.DeliveryFee == 0 {
		c.Checkout.DeliveryFee = 40
	}
	if c.Checkout.FreeDeliveryThreshold == 0 {
		c.Checkout.FreeDeliveryThreshold = 1000
	}
	if c.RMQ == nil {
		c.RMQ = &RabbitMQ{}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
