package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMissingSMTPSettings(t *testing.T) {
	cfg := &Config{
		SMTPHost:      "smtp.example.com",
		SMTPUser:      "relay@example.com",
		SMTPPassword:  "secret",
		SMTPFrom:      "noreply@example.com",
		BusinessEmail: "studio@example.com",
	}
	assert.Empty(t, cfg.MissingSMTPSettings())

	cfg.SMTPPassword = ""
	cfg.BusinessEmail = ""
	missing := cfg.MissingSMTPSettings()
	assert.ElementsMatch(t, []string{"SMTP_PASSWORD", "BUSINESS_EMAIL"}, missing)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("FRONTEND_URL", "https://aakararchitects.example/")
	t.Setenv("HR_EMAIL", "")
	t.Setenv("BUSINESS_EMAIL", "studio@aakararchitects.example")

	cfg, err := LoadConfig()
	assert.NoError(t, err)

	// Trailing slash stripped so CORS origin comparison works
	assert.Equal(t, "https://aakararchitects.example", cfg.FrontendURL)
	// HR falls back to the business mailbox
	assert.Equal(t, "studio@aakararchitects.example", cfg.HREmail)
	assert.Equal(t, "Asia/Kolkata", cfg.EmailTimezone)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
}
