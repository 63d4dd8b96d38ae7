package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("ENV", "prod") // skip .env loading
	t.Setenv("SERVER_PORT", ":3000")
	t.Setenv("DATABASE_DSN", "postgres://localhost/signup")
	t.Setenv("DB_RESET", "true")
	t.Setenv("KAFKA_BROKER", "localhost:9092")
	t.Setenv("KAFKA_TOPIC", "user-events")
	t.Setenv("MAIL_PROVIDER", "smtp")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_PORT", "587")
	t.Setenv("ACTIVATION_BASE_URL", "https://example.com/activate")

	cfg := LoadConfig()

	assert.Equal(t, ":3000", cfg.ServerPort)
	assert.Equal(t, "postgres://localhost/signup", cfg.DatabaseDSN)
	assert.True(t, cfg.DBReset)
	assert.Equal(t, "localhost:9092", cfg.KafkaBroker)
	assert.Equal(t, "user-events", cfg.KafkaTopic)
	assert.Equal(t, "smtp", cfg.MailProvider)
	assert.Equal(t, "smtp.example.com", cfg.SMTPHost)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, "https://example.com/activate", cfg.ActivationBaseURL)
}

func TestLoadConfig_DBResetDefaultsFalse(t *testing.T) {
	t.Setenv("ENV", "prod")
	t.Setenv("DB_RESET", "")

	cfg := LoadConfig()

	assert.False(t, cfg.DBReset)
}
