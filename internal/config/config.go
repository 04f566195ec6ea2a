package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds runtime configuration for the CLI and HTTP host.
type Config struct {
	Port         string
	DBPath       string
	LogLevel     string
	TokenSecret  string
	TokenTTL     time.Duration
	ClientOrigin string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// Load reads SHAPEGUESS_* environment variables and an optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SHAPEGUESS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("port", "5175")
	v.SetDefault("db.path", "./data/shapeguess.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("token.secret", "dev_secret_change_me")
	v.SetDefault("token.ttl", "24h")
	v.SetDefault("client.origin", "http://localhost:5173")

	ttl, err := time.ParseDuration(v.GetString("token.ttl"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid token ttl: %w", err)
	}
	if ttl <= 0 {
		return Config{}, fmt.Errorf("token ttl must be positive, got %s", ttl)
	}

	cfg := Config{
		Port:         v.GetString("port"),
		DBPath:       v.GetString("db.path"),
		LogLevel:     strings.ToLower(v.GetString("log.level")),
		TokenSecret:  v.GetString("token.secret"),
		TokenTTL:     ttl,
		ClientOrigin: v.GetString("client.origin"),
	}
	if cfg.TokenSecret == "" {
		return Config{}, fmt.Errorf("token secret must be provided")
	}
	return cfg, nil
}
