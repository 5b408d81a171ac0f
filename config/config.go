package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	GraphQLURL             string        `envconfig:"GRAPHQL_URL"              default:"http://localhost:3000/api/graphql"`
	HTTPPort               string        `envconfig:"HTTP_PORT"                default:"127.0.0.1:8080"` // the session is shared by every caller
	LogLevel               string        `envconfig:"LOG_LEVEL"                default:"info"`
	DatabaseURL            string        `envconfig:"DATABASE_URL"` // empty keeps client state in memory
	RequestTimeout         time.Duration `envconfig:"REQUEST_TIMEOUT"          default:"10s"`
	CatalogRefreshInterval time.Duration `envconfig:"CATALOG_REFRESH_INTERVAL" default:"5m"`
	CORSAllowedOrigins     []string      `envconfig:"CORS_ALLOWED_ORIGINS"     default:"http://localhost:3000"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig(logger *logrus.Logger) (*Config, error) {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		logger.Warnf("Error loading .env file (but continuing): %v", err)
	} else if err == nil {
		logger.Info("Loaded configuration from .env file")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process configuration from environment variables: %w", err)
	}
	if cfg.GraphQLURL == "" {
		return nil, fmt.Errorf("configuration error: GRAPHQL_URL is empty")
	}
	if cfg.RequestTimeout <= 0 {
		return nil, fmt.Errorf("configuration error: REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	logger.Infof("Configuration loaded: HTTP Port=%s, GraphQL=%s, LogLevel=%s", cfg.HTTPPort, cfg.GraphQLURL, cfg.LogLevel)
	if cfg.DatabaseURL != "" {
		logger.Info("Configuration loaded: DatabaseURL is set")
	} else {
		logger.Warn("Configuration loaded: DATABASE_URL is not set, client state will not survive restarts")
	}
	return &cfg, nil
}
