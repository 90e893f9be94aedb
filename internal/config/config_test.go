package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "STORAGE_DRIVER", "CACHE_TTL", "ESTIMATE_EXPIRY_CRON", "PAYMENT_GATEWAY_MOCK", "REDIS_ADDRESS"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8080" || cfg.StorageDriver != StoragePostgres {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.CacheTTL != 5*time.Minute || cfg.EstimateExpiryCron != "0 1 * * *" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.PaymentGatewayMock || cfg.CacheEnabled() {
		t.Fatalf("mock gateway and cache must be off by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "DynamoDB")
	t.Setenv("CACHE_TTL", "90s")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")

	cfg := Load()
	if cfg.StorageDriver != StorageDynamoDB {
		t.Fatalf("expected dynamodb, got %q", cfg.StorageDriver)
	}
	if cfg.CacheTTL != 90*time.Second || !cfg.PaymentGatewayMock || !cfg.CacheEnabled() {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}

	t.Setenv("CACHE_TTL", "soon")
	if Load().CacheTTL != 5*time.Minute {
		t.Fatalf("unparsable TTL must fall back to the default")
	}
}
