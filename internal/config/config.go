// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the server.
type Config struct {
	MongoURL      string // document database connection string
	DBName        string // database name within the deployment
	Port          string // HTTP listen port
	SessionSecret string // cookie signing key for the session store
	GinMode       string // gin run mode (debug, release, test)
	TemplateDir   string // directory holding the HTML views
}

// Load reads settings from the environment. A .env file is honored when
// present so local runs don't need exported variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		MongoURL:      getEnv("MONGOURL", ""),
		DBName:        getEnv("DB_NAME", "spendlog"),
		Port:          getEnv("PORT", "3000"),
		SessionSecret: getEnv("SESSION_SECRET", "dev-secret"),
		GinMode:       getEnv("GIN_MODE", "debug"),
		TemplateDir:   getEnv("TEMPLATE_DIR", "web/templates"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required settings. The session secret default is only
// acceptable outside release mode.
func (c *Config) Validate() error {
	if c.MongoURL == "" {
		return fmt.Errorf("MONGOURL is required")
	}
	if c.GinMode == "release" && c.SessionSecret == "dev-secret" {
		return fmt.Errorf("SESSION_SECRET is required in release mode")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
