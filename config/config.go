// ABOUTME: Environment-driven application configuration
// ABOUTME: Loads .env when present, with sane defaults for local runs
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Env        string
	ListenAddr string
	DBPath     string
	JWTSecret  string

	SMTPServer string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	FromEmail  string
	FromName   string
	AdminEmail string

	SeedOnStart bool
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		var out int
		if _, err := fmt.Sscanf(v, "%d", &out); err == nil {
			return out
		}
	}
	return def
}

// Load reads configuration from the environment, layering a local .env
// file underneath when one exists.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Env:         getenv("APP_ENV", "development"),
		ListenAddr:  getenv("LISTEN_ADDR", ":8080"),
		DBPath:      getenv("DATABASE_PATH", "data/cravekind.db"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		SMTPServer:  getenv("SMTP_SERVER", "smtp.gmail.com"),
		SMTPPort:    getenvInt("SMTP_PORT", 587),
		SMTPUser:    os.Getenv("SMTP_USERNAME"),
		SMTPPass:    os.Getenv("SMTP_PASSWORD"),
		FromEmail:   getenv("FROM_EMAIL", "noreply@cravekind.ca"),
		FromName:    getenv("FROM_NAME", "CraveKind"),
		AdminEmail:  getenv("ADMIN_EMAIL", "cravekind@gmail.com"),
		SeedOnStart: getenv("SEED_ON_START", "true") == "true",
	}

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			return cfg, fmt.Errorf("JWT_SECRET not set")
		}
		// Local runs get a fixed secret so tokens survive restarts.
		cfg.JWTSecret = "dev-only-secret"
	}

	return cfg, nil
}
