package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	HTTPAddr       string
	MigrationsPath string

	// DatabaseURL takes precedence over the discrete DB_* settings when set.
	DatabaseURL string

	DB DBConfig

	JWT JWTConfig

	// RedisAddr enables the equipment catalog cache when set (host:port).
	// The service runs fine without it; cache misses fall through to Postgres.
	RedisAddr string

	// CatalogCacheTTL bounds how stale the cached equipment catalog may get.
	CatalogCacheTTL time.Duration

	// AllowedOrigins is a comma-separated allowlist of browser origins for the API.
	AllowedOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

type JWTConfig struct {
	SigningKey string
	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func Load() Config {
	// Convenience for local dev: load variables from .env if present.
	// In production, rely on real environment variables.
	_ = godotenv.Load()

	httpAddr := os.Getenv("HTTP_ADDR")
	if httpAddr == "" {
		if port := os.Getenv("PORT"); port != "" {
			httpAddr = ":" + port
		} else {
			httpAddr = ":8080"
		}
	}

	return Config{
		AppEnv:         env("APP_ENV", "dev"),
		HTTPAddr:       httpAddr,
		MigrationsPath: os.Getenv("MIGRATIONS_PATH"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		DB: DBConfig{
			Host:     env("DB_HOST", "localhost"),
			Port:     env("DB_PORT", "5432"),
			Name:     env("DB_NAME", "campusbook"),
			User:     env("DB_USER", "campusbook"),
			Password: env("DB_PASSWORD", "campusbook"),
			SSLMode:  env("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			SigningKey: env("JWT_SIGNING_KEY", "dev-signing-key"),
			Issuer:     env("JWT_ISSUER", "campusbook"),
			AccessTTL:  envDuration("JWT_ACCESS_TTL", 15*time.Minute),
			RefreshTTL: envDuration("JWT_REFRESH_TTL", 720*time.Hour),
		},
		RedisAddr:       os.Getenv("REDIS_ADDR"),
		CatalogCacheTTL: envDuration("CATALOG_CACHE_TTL", 30*time.Second),
		AllowedOrigins:  envList("ALLOWED_ORIGINS", "http://localhost:3000"),
	}
}

func env(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}

func envList(key, fallbackCSV string) []string {
	v := os.Getenv(key)
	if v == "" {
		v = fallbackCSV
	}
	var out []string
	start := 0
	for i := 0; i <= len(v); i++ {
		if i == len(v) || v[i] == ',' {
			s := v[start:i]
			start = i + 1
			for len(s) > 0 && (s[0] == ' ' || s[0] == '\t') {
				s = s[1:]
			}
			for len(s) > 0 && (s[len(s)-1] == ' ' || s[len(s)-1] == '\t') {
				s = s[:len(s)-1]
			}
			if s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
