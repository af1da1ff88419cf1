package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
catalog:
  source: database
  fetch_delay_ms: 0

checkout:
  processing_delay_ms: 200

database:
  host: db.internal
  port: "5433"
  user: storefront
  password: secret
  database: aurora_grand

rabbitmq:
  enabled: true
  host: mq.internal
  port: "5672"
  user: storefront
  password: secret
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "database", cfg.Catalog.Source)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "5433", cfg.DB.Port)
	assert.True(t, cfg.RMQ.Enabled)

	// Unset checkout knobs get the reference defaults.
	assert.Equal(t, 200, cfg.Checkout.ProcessingDelayMs)
	assert.Equal(t, 0.05, cfg.Checkout.TaxRate)
	assert.Equal(t, 40, cfg.Checkout.DeliveryFee)
	assert.Equal(t, 1000, cfg.Checkout.FreeDeliveryThreshold)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigBadYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("catalog: [not: a map"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("CATALOG_SOURCE", "database")
	t.Setenv("POSTGRES_HOST", "envhost")
	t.Setenv("RABBITMQ_ENABLED", "true")

	cfg := LoadDotEnv()

	assert.Equal(t, "database", cfg.Catalog.Source)
	assert.Equal(t, "envhost", cfg.DB.Host)
	assert.True(t, cfg.RMQ.Enabled)

	assert.Equal(t, 1400, cfg.Checkout.ProcessingDelayMs)
	assert.Equal(t, 600, cfg.Catalog.FetchDelayMs)
}

func TestLoadDotEnvDefaults(t *testing.T) {
	for _, key := range []string{"CATALOG_SOURCE", "POSTGRES_HOST", "RABBITMQ_ENABLED"} {
		t.Setenv(key, "")
	}

	cfg := LoadDotEnv()

	assert.Equal(t, "static", cfg.Catalog.Source)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.False(t, cfg.RMQ.Enabled)
}
