package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vytor/lotto/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                 ":8080",
		DBPath:               "test.db",
		LogLevel:             "INFO",
		DefaultToleranceDays: 3,
		EnforceSaturday:      true,
		ImportWorkerCount:    1,
		ImportQueueSize:      8,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_LogLevel(t *testing.T) {
	tests := []struct {
		level string
		valid bool
	}{
		{"DEBUG", true},
		{"INFO", true},
		{"WARN", true},
		{"ERROR", true},
		{"debug", true},
		{"INVALID", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			}
		})
	}
}

func TestValidate_Tolerance(t *testing.T) {
	cfg := validConfig()
	cfg.DefaultToleranceDays = 0
	assert.NoError(t, cfg.Validate(), "zero tolerance means exact-day matching")

	cfg.DefaultToleranceDays = -1
	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DEFAULT_TOLERANCE_DAYS")
}

func TestValidate_SeedPath(t *testing.T) {
	cfg := validConfig()
	cfg.SeedPath = filepath.Join(t.TempDir(), "missing.json")

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "SEED_PATH")

	existing := filepath.Join(t.TempDir(), "lotto.json")
	require.NoError(t, os.WriteFile(existing, []byte("[]"), 0o600))
	cfg.SeedPath = existing
	assert.NoError(t, cfg.Validate())
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:                 "",
		DBPath:               "",
		LogLevel:             "INVALID",
		DefaultToleranceDays: -2,
		ImportWorkerCount:    0,
		ImportQueueSize:      0,
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "DEFAULT_TOLERANCE_DAYS")
	assert.Contains(t, errStr, "IMPORT_WORKER_COUNT")
	assert.Contains(t, errStr, "IMPORT_QUEUE_SIZE")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("DEFAULT_TOLERANCE_DAYS", "1.5")
	t.Setenv("ENFORCE_SATURDAY", "false")
	t.Setenv("IMPORT_WORKER_COUNT", "not-a-number")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 1.5, cfg.DefaultToleranceDays)
	assert.False(t, cfg.EnforceSaturday)
	assert.Equal(t, 1, cfg.ImportWorkerCount)
}
