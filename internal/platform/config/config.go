package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures everything the server needs from the environment so main
// stays lean.
type Config struct {
	Addr        string
	DatabaseURL string

	JWTSigningKey string
	JWTTTL        time.Duration

	UploadDir string

	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPassword     string
	ContactRecipient string

	CORSOrigins []string

	// ContactRate requests per ContactWindow per client IP on the public
	// contact endpoint. Zero disables the limiter.
	ContactRate   int
	ContactWindow time.Duration
}

// FromEnv builds a Config from environment variables, loading a local .env
// file first when one exists.
func FromEnv() Config {
	// Missing .env is the normal case in production.
	_ = godotenv.Load()

	cfg := Config{
		Addr:             envOr("PORTFOLIO_ADDR", ":5000"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		JWTSigningKey:    envOr("JWT_SECRET", "dev-secret-change-in-production"),
		JWTTTL:           envDuration("JWT_TTL", 24*time.Hour),
		UploadDir:        envOr("UPLOAD_DIR", "uploads"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         envInt("SMTP_PORT", 587),
		SMTPUser:         os.Getenv("SMTP_USER"),
		SMTPPassword:     os.Getenv("SMTP_PASS"),
		ContactRecipient: os.Getenv("CONTACT_RECIPIENT"),
		ContactRate:      envInt("CONTACT_RATE", 5),
		ContactWindow:    envDuration("CONTACT_WINDOW", time.Minute),
	}

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitEnvList(origins)
	} else {
		cfg.CORSOrigins = []string{"http://localhost:3000"}
	}

	if cfg.ContactRecipient == "" {
		cfg.ContactRecipient = cfg.SMTPUser
	}

	return cfg
}

// RelayConfigured reports whether the mail relay has enough configuration to
// attempt delivery. When false the outbox logs and drops notifications.
func (c Config) RelayConfigured() bool {
	return c.SMTPHost != "" && c.ContactRecipient != ""
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitEnvList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
