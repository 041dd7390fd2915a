package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
	UploadDir string
	// BaseURL is the public origin used to build image retrieval URLs.
	BaseURL string
}

func Load() Config {
	_ = godotenv.Load() // .env is optional; real env wins

	addr := envString("WAYPOST_ADDR", "")
	if addr == "" {
		if port := os.Getenv("PORT"); port != "" {
			addr = ":" + port
		} else {
			addr = ":8000"
		}
	}
	return Config{
		Addr:      addr,
		DBPath:    envString("WAYPOST_DB", "waypost.db"),
		JWTSecret: envString("WAYPOST_TOKEN_SECRET", "dev-token-secret"),
		TokenTTL:  envDuration("WAYPOST_TOKEN_TTL", 72*time.Hour),
		UploadDir: envString("WAYPOST_UPLOAD_DIR", "uploads"),
		BaseURL:   envString("WAYPOST_BASE_URL", "http://localhost:8000"),
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
