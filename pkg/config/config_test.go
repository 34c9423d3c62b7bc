package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "auto", cfg.AIProvider)
	assert.Equal(t, 30*time.Second, cfg.AITimeout)
	assert.False(t, cfg.AIInsecureSSL)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.AllowedOrigins())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/mirror")
	t.Setenv("ANTHROPIC_API_KEY", "sk-test")
	t.Setenv("AI_PROVIDER", "Anthropic")
	t.Setenv("AI_TIMEOUT", "12s")
	t.Setenv("SKIP_DB_CREATE", "1")
	t.Setenv("FRONTEND_ORIGIN", " https://mirror.example.com/ , ")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres://u:p@db:5432/mirror", cfg.DatabaseURL)
	assert.Equal(t, "sk-test", cfg.AnthropicAPIKey)
	assert.Equal(t, "anthropic", cfg.AIProvider)
	assert.Equal(t, 12*time.Second, cfg.AITimeout)
	assert.True(t, cfg.SkipDBCreate)
	assert.Equal(t, []string{"https://mirror.example.com"}, cfg.AllowedOrigins())
}

func TestInsecureAlias(t *testing.T) {
	t.Setenv("TLS_INSECURE", "1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.AIInsecureSSL)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			GinMode:         "release",
			DatabaseURL:     "postgres://localhost/db",
			AIProvider:      "auto",
			AITimeout:       time.Second,
			ShutdownTimeout: time.Second,
		}
	}

	cfg := valid()
	assert.NoError(t, cfg.Validate())

	cfg = valid()
	cfg.AIProvider = "openai"
	assert.ErrorContains(t, cfg.Validate(), "AI_PROVIDER")

	cfg = valid()
	cfg.DatabaseURL = " "
	assert.ErrorContains(t, cfg.Validate(), "DATABASE_URL")

	cfg = valid()
	cfg.AITimeout = 0
	assert.ErrorContains(t, cfg.Validate(), "AI_TIMEOUT")

	cfg = valid()
	cfg.GinMode = "prod"
	assert.ErrorContains(t, cfg.Validate(), "GIN_MODE")
}
