package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Primary.Env)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "equipment_db", cfg.Database.Name)
	assert.Equal(t, 1, cfg.Database.MinConnections)
	assert.Equal(t, 10, cfg.Database.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.Database.AcquireTimeout())
}

func TestNewReadsEnvironment(t *testing.T) {
	t.Setenv("GEARSHED_PRIMARY__ENV", "production")
	t.Setenv("GEARSHED_SERVER__PORT", "9090")
	t.Setenv("GEARSHED_DATABASE__HOST", "db.internal")
	t.Setenv("GEARSHED_DATABASE__MAX_CONNECTIONS", "25")
	t.Setenv("GEARSHED_DATABASE__CONNECTION_TIMEOUT", "5")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Primary.Env)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 25, cfg.Database.MaxConnections)
	assert.Equal(t, 5*time.Second, cfg.Database.AcquireTimeout())
}

func TestNewRejectsMinAboveMax(t *testing.T) {
	t.Setenv("GEARSHED_DATABASE__MIN_CONNECTIONS", "20")
	t.Setenv("GEARSHED_DATABASE__MAX_CONNECTIONS", "5")

	_, err := New()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min_connections")
}
