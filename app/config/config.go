package config

import (
	"os"
	"time"
)

// Config holds process-wide settings, loaded once at startup from the
// environment.
type Config struct {
	Addr      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
}

func Load() Config {
	addr := envString("CHATTER_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":3000"
		}
	}
	return Config{
		Addr:      addr,
		DBPath:    envString("CHATTER_DB", "data/badger"),
		JWTSecret: envString("CHATTER_JWT_SECRET", "dev-jwt-secret"),
		TokenTTL:  envDuration("CHATTER_TOKEN_TTL", 24*time.Hour),
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
