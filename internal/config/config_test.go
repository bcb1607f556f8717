package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "memory", cfg.Ledger.Driver)
	assert.Equal(t, 24*time.Hour, cfg.Ledger.ViewerTTL)
	assert.Equal(t, 5*time.Second, cfg.Registry.RefreshInterval)
	assert.Equal(t, 50*time.Millisecond, cfg.Engine.Deadline)
	assert.Equal(t, 3, cfg.Engine.MaxCommitRetries)
	assert.Equal(t, "max_eligible", cfg.Engine.Normalization)
	assert.Equal(t, "data/ledger.db", cfg.SQLite.Path)
	assert.False(t, cfg.Telemetry.Enabled)
	assert.Equal(t, 0.01, cfg.Telemetry.SampleRatio)
	assert.True(t, cfg.NeedsPostgres())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LEDGER_DRIVER", "sqlite")
	t.Setenv("REGISTRY_SOURCE", "none")
	t.Setenv("ENGINE_DEADLINE", "15ms")
	t.Setenv("ENGINE_TIE_EPSILON", "0.5")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Ledger.Driver)
	assert.Equal(t, 15*time.Millisecond, cfg.Engine.Deadline)
	assert.Equal(t, 0.5, cfg.Engine.TieEpsilon)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.False(t, cfg.NeedsPostgres())
}

func TestLoadRejectsUnknownDriver(t *testing.T) {
	t.Setenv("LEDGER_DRIVER", "redis")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownSource(t *testing.T) {
	t.Setenv("REGISTRY_SOURCE", "s3")
	_, err := Load()
	assert.Error(t, err)
}
