package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergency-response-dashboard/internal/config"
)

// clearEnv blanks every variable the loader reads so defaults apply.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"API_HOST", "API_PORT", "API_ENV", "API_CORS_ORIGINS",
		"LOG_LEVEL", "WORKER_ENABLED", "WORKER_CONSUMER_GROUP", "WORKER_MAX_BATCH_SIZE",
		"WORKER_POLL_INTERVAL_MS", "WORKER_SHUTDOWN_TIMEOUT", "WORKER_CLAIM_MIN_IDLE",
		"SIMULATION_MODE", "SIMULATION_BASE_URL", "SIMULATION_TIMEOUT",
		"SIMULATION_MOCK_MIN_DELAY_MS", "SIMULATION_MOCK_MAX_DELAY_MS", "SIMULATION_STATUS_TIMEOUT",
		"REGISTRY_SOURCE", "REGISTRY_TABLE", "EVENTS_ENABLED",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadFile_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddr())
	assert.Equal(t, config.SimulationModeMock, cfg.Simulation.Mode)
	assert.Equal(t, 10*time.Second, cfg.Simulation.MockMinDelay)
	assert.Equal(t, 20*time.Second, cfg.Simulation.MockMaxDelay)
	assert.Zero(t, cfg.Simulation.Timeout)
	assert.Equal(t, config.RegistrySourceSeed, cfg.Registry.Source)
	assert.Equal(t, "districts", cfg.Registry.Table)
	assert.Equal(t, "simulation-workers", cfg.Worker.ConsumerGroup)
	assert.Equal(t, 500*time.Millisecond, cfg.Worker.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.Worker.ShutdownTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Worker.ClaimMinIdle)
	assert.False(t, cfg.Events.Enabled)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOriginList())
}

func TestLoadFile_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("SIMULATION_MODE", "HTTP")
	t.Setenv("SIMULATION_BASE_URL", "http://sim.local:8000/")
	t.Setenv("SIMULATION_TIMEOUT", "90")
	t.Setenv("EVENTS_ENABLED", "true")

	cfg, err := config.LoadFile("")
	require.NoError(t, err)

	assert.Equal(t, config.SimulationModeHTTP, cfg.Simulation.Mode)
	assert.Equal(t, "http://sim.local:8000", cfg.Simulation.BaseURL)
	assert.Equal(t, 90*time.Second, cfg.Simulation.Timeout)
	assert.True(t, cfg.Events.Enabled)
}

func TestLoadFile_ReadsEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("API_PORT=9090\nREGISTRY_SOURCE=postgres\nREGISTRY_TABLE=barangays\n"), 0o600))

	cfg, err := config.LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, config.RegistrySourcePostgres, cfg.Registry.Source)
	assert.Equal(t, "barangays", cfg.Registry.Table)
}

func TestLoadFile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown mode", env: map[string]string{"SIMULATION_MODE": "grpc"}},
		{name: "unknown registry", env: map[string]string{"REGISTRY_SOURCE": "s3"}},
		{name: "inverted delay", env: map[string]string{"SIMULATION_MOCK_MIN_DELAY_MS": "500", "SIMULATION_MOCK_MAX_DELAY_MS": "100"}},
		{name: "zero batch", env: map[string]string{"WORKER_MAX_BATCH_SIZE": "-1"}},
		{name: "zero claim idle", env: map[string]string{"WORKER_CLAIM_MIN_IDLE": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := config.LoadFile("")
			assert.Error(t, err)
		})
	}
}
