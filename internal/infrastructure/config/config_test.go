package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8433", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)

	assert.Equal(t, 10.0, cfg.Reconcile.Tolerance)
	assert.Equal(t, 5.0, cfg.Reconcile.Slack)
	assert.Equal(t, 6, cfg.Reconcile.AttemptBudget)
	assert.Equal(t, 100.0, cfg.Reconcile.EdgeThreshold)
	assert.Equal(t, 30*time.Millisecond, cfg.Reconcile.SettleRelocate)
	assert.Equal(t, 40*time.Millisecond, cfg.Reconcile.SettleInitialSize)
	assert.Equal(t, 30*time.Millisecond, cfg.Reconcile.SettleInitialPosition)
	assert.Equal(t, 25*time.Millisecond, cfg.Reconcile.SettleCorrection)

	assert.True(t, cfg.Sim.Enabled)
	assert.Equal(t, 1920.0, cfg.Sim.ScreenWidth)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RECONCILE_TOLERANCE", "4")
	t.Setenv("RECONCILE_ATTEMPTS", "3")
	t.Setenv("SETTLE_CORRECTION", "10ms")
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("SIM_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, 4.0, cfg.Reconcile.Tolerance)
	assert.Equal(t, 3, cfg.Reconcile.AttemptBudget)
	assert.Equal(t, 10*time.Millisecond, cfg.Reconcile.SettleCorrection)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.False(t, cfg.Sim.Enabled)
}
