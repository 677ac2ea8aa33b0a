package config

import (
	"fmt"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vytor/lotto/internal/logger"
)

type Config struct {
	Addr                 string
	DBPath               string
	LogLevel             string
	SeedPath             string
	DefaultToleranceDays float64
	EnforceSaturday      bool
	ImportWorkerCount    int
	ImportQueueSize      int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                 envOr("ADDR", ":8080"),
		DBPath:               envOr("DB_PATH", "file:lotto.db"),
		LogLevel:             envOr("LOG_LEVEL", "INFO"),
		SeedPath:             os.Getenv("SEED_PATH"),
		DefaultToleranceDays: envFloatOr("DEFAULT_TOLERANCE_DAYS", 3),
		EnforceSaturday:      envBoolOr("ENFORCE_SATURDAY", true),
		ImportWorkerCount:    envIntOr("IMPORT_WORKER_COUNT", 1),
		ImportQueueSize:      envIntOr("IMPORT_QUEUE_SIZE", 8),
	}
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string
	if strings.TrimSpace(c.Addr) == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if strings.TrimSpace(c.DBPath) == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	if !logger.ValidLevel(c.LogLevel) {
		problems = append(problems, fmt.Sprintf("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR (got %q)", c.LogLevel))
	}
	if math.IsNaN(c.DefaultToleranceDays) || c.DefaultToleranceDays < 0 {
		problems = append(problems, fmt.Sprintf("DEFAULT_TOLERANCE_DAYS must be >= 0 (got %v)", c.DefaultToleranceDays))
	}
	if c.ImportWorkerCount <= 0 {
		problems = append(problems, fmt.Sprintf("IMPORT_WORKER_COUNT must be > 0 (got %d)", c.ImportWorkerCount))
	}
	if c.ImportQueueSize <= 0 {
		problems = append(problems, fmt.Sprintf("IMPORT_QUEUE_SIZE must be > 0 (got %d)", c.ImportQueueSize))
	}
	if c.SeedPath != "" {
		if _, err := os.Stat(c.SeedPath); err != nil {
			problems = append(problems, fmt.Sprintf("SEED_PATH %q is not readable: %v", c.SeedPath, err))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envFloatOr(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Printf("invalid value for %s=%q, using default %v", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
