// Package config reads service settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageDynamoDB = "dynamodb"
)

type Config struct {
	Port          string
	StorageDriver string
	DatabaseDSN   string
	SQLitePath    string
	DBDebug       bool

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	RedisAddress  string
	RedisPassword string
	CacheTTL      time.Duration

	EstimateExpiryCron string

	LogDir   string
	LogLevel string

	MercadoPagoAccessToken string
	PaymentGatewayMock     bool

	GinMode string
}

// Load builds a Config from environment variables, applying defaults for
// anything unset or unparsable.
func Load() Config {
	return Config{
		Port:          getenvDefault("PORT", "8080"),
		StorageDriver: strings.ToLower(getenvDefault("STORAGE_DRIVER", StoragePostgres)),
		DatabaseDSN:   os.Getenv("DATABASE_DSN"),
		SQLitePath:    getenvDefault("SQLITE_PATH", "fieldservice.db"),
		DBDebug:       getenvBool("DB_DEBUG", false),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),

		RedisAddress:  os.Getenv("REDIS_ADDRESS"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CacheTTL:      getenvDuration("CACHE_TTL", 5*time.Minute),

		EstimateExpiryCron: getenvDefault("ESTIMATE_EXPIRY_CRON", "0 1 * * *"),

		LogDir:   getenvDefault("LOG_DIR", "logs"),
		LogLevel: getenvDefault("LOG_LEVEL", "info"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK", false),

		GinMode: os.Getenv("GIN_MODE"),
	}
}

// CacheEnabled reports whether a Redis address was configured.
func (c Config) CacheEnabled() bool {
	return c.RedisAddress != ""
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

func getenvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
