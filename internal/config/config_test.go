package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenTTL())
	assert.Equal(t, 120*time.Hour, cfg.RefreshTokenTTL)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("JWT_SECRET=from-file\nHTTP_PORT=9000\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 9000, cfg.HTTPPort)
}

func TestLoadRejectsNonPositiveExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_EXPIRES_MINUTES", "0")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestNewNotifierNeedsNoSecret(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("KAFKA_NOTIFICATION_TOPIC", "events")

	cfg, err := NewNotifier()
	require.NoError(t, err)
	assert.Equal(t, "events", cfg.KafkaNotificationTopic)
	assert.Equal(t, "schoolhub-notifier", cfg.KafkaGroupID)
	assert.Equal(t, []string{"localhost:9092"}, cfg.KafkaBrokers)
}
