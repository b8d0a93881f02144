package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGOURL", "mongodb://localhost:27017")
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("GIN_MODE", "")
	t.Setenv("TEMPLATE_DIR", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, "spendlog", cfg.DBName)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "dev-secret", cfg.SessionSecret)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, "web/templates", cfg.TemplateDir)
}

func TestLoadRequiresMongoURL(t *testing.T) {
	t.Setenv("MONGOURL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MONGOURL")
}

func TestValidateReleaseModeNeedsSecret(t *testing.T) {
	cfg := &Config{
		MongoURL:      "mongodb://localhost:27017",
		SessionSecret: "dev-secret",
		GinMode:       "release",
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SECRET")

	cfg.SessionSecret = "a-real-secret"
	assert.NoError(t, cfg.Validate())
}
