package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// DatabaseConfig holds the Postgres connection settings.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MaxIdle  int
}

// DSN builds the lib/pq connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode)
}

// Config officedir-data (HTTP API) configuration.
type Config struct {
	HTTP struct {
		Addr string
	}
	Database DatabaseConfig
	Redis    struct {
		Enabled  bool
		Addr     string
		Password string
		DB       int
	}
	Log struct {
		Level  string
		Format string
	}
	// SeedMock loads the demo floors/rooms/employees when the floors table
	// is empty (dev convenience, matches the embedded-store behavior).
	SeedMock bool
	// ProbeImages enables the floor-plan image URL reachability check.
	ProbeImages bool
	SessionTTL  int // seconds
}

func Load() *Config {
	// Optional .env in the working directory; env vars win.
	_ = godotenv.Load()

	cfg := &Config{}
	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = parseInt(getEnv("DB_PORT", "5432"), 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "officedir")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")
	cfg.Database.MaxConns = parseInt(getEnv("DB_MAX_CONNS", "10"), 10)
	cfg.Database.MaxIdle = parseInt(getEnv("DB_MAX_IDLE", "5"), 5)

	// Default to disabled for local dev: sessions fall back to the in-memory
	// store, so a plain `go run` works without Redis.
	cfg.Redis.Enabled = getEnv("REDIS_ENABLED", "false") == "true"
	cfg.Redis.Addr = getEnv("REDIS_ADDR", "localhost:6379")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = parseInt(getEnv("REDIS_DB", "0"), 0)

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	cfg.SeedMock = getEnv("SEED_MOCK", "false") == "true"
	cfg.ProbeImages = getEnv("PROBE_IMAGES", "false") == "true"
	cfg.SessionTTL = parseInt(getEnv("SESSION_TTL_SECONDS", "43200"), 43200)

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseInt(s string, def int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
