package cmd_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"fooddelivery/cmd"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("STORAGE", "")
	t.Setenv("OFFER_TTL", "")
	t.Setenv("SESSION_TTL", "")
	t.Setenv("KAFKA_HOST", "")

	cfg, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.NoError(t, err)
	assert.Equal(t, cmd.StoragePostgres, cfg.Storage)
	assert.Equal(t, 2*time.Minute, cfg.OfferTTL)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Empty(t, cfg.KafkaBrokers())
}

func TestLoadConfig_EnvFileAndOverrides(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("STORAGE=memory\nOFFER_TTL=30s\nFOOD_TEST_ONLY=1\n"), 0o600))
	t.Setenv("OFFER_TTL", "0")
	t.Setenv("KAFKA_HOST", "k1:9092, k2:9092")
	// godotenv never overrides a variable that exists, even when empty.
	t.Setenv("STORAGE", "")
	require.NoError(t, os.Unsetenv("STORAGE"))
	t.Cleanup(func() { _ = os.Unsetenv("FOOD_TEST_ONLY") })

	cfg, err := cmd.LoadConfig(envFile)

	require.NoError(t, err)
	assert.Equal(t, cmd.StorageMemory, cfg.Storage, "file fills unset variables")
	assert.Zero(t, cfg.OfferTTL, "environment wins over the file")
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers())
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("STORAGE", "sqlite")
	t.Setenv("OFFER_TTL", "soon")

	_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE")
	assert.Contains(t, err.Error(), "OFFER_TTL")
}
