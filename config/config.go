package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// SMTP Configuration
	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string // Verified sender address (may differ from SMTP login)
	// Recipient mailboxes
	BusinessEmail string
	HREmail       string
	// Timezone used when rendering submission timestamps in emails
	EmailTimezone string
	// Redis/Upstash Configuration (rate limiting)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitFormThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env file (only effective locally; ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		SMTPHost:     getEnv("SMTP_HOST", ""),
		SMTPPort:     getEnv("SMTP_PORT", "587"),
		SMTPUser:     getEnv("SMTP_USER", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),
		SMTPFrom:     getEnv("SMTP_FROM", ""),
		// Recipients
		BusinessEmail: getEnv("BUSINESS_EMAIL", ""),
		HREmail:       getEnv("HR_EMAIL", ""),
		// Timestamps in submission emails default to Indian Standard Time
		EmailTimezone: getEnv("EMAIL_TIMEZONE", "Asia/Kolkata"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitFormThreshold: getEnvInt("RATE_LIMIT_FORM_THRESHOLD", 10),
	}

	// Applications go to HR; fall back to the business mailbox when no
	// dedicated HR address is configured.
	if cfg.HREmail == "" {
		cfg.HREmail = cfg.BusinessEmail
	}

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP settings incomplete. Form submissions will fail until configured.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// MissingSMTPSettings returns the names of required outbound-mail settings
// that are absent. Setting values are never returned or logged.
func (c *Config) MissingSMTPSettings() []string {
	var missing []string
	if c.SMTPHost == "" {
		missing = append(missing, "SMTP_HOST")
	}
	if c.SMTPUser == "" {
		missing = append(missing, "SMTP_USER")
	}
	if c.SMTPPassword == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}
	if c.SMTPFrom == "" {
		missing = append(missing, "SMTP_FROM")
	}
	if c.BusinessEmail == "" {
		missing = append(missing, "BUSINESS_EMAIL")
	}
	return missing
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
