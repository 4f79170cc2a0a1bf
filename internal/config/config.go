package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application.
// Following 12-factor app principles, all config is loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Mongo    MongoConfig
	Catalog  CatalogConfig
	Session  SessionConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// MongoConfig selects the MongoDB backing store. When URI is empty the server
// runs against the in-memory seed catalog instead.
type MongoConfig struct {
	URI      string
	Database string
}

type CatalogConfig struct {
	DefaultPageSize int
}

type SessionConfig struct {
	TTLMinutes int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", ""),
			Database: getEnv("MONGO_DB", "tienda"),
		},
		Catalog: CatalogConfig{
			DefaultPageSize: getEnvAsInt("PAGE_SIZE", 6),
		},
		Session: SessionConfig{
			TTLMinutes: getEnvAsInt("SESSION_TTL_MINUTES", 60),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Catalog.DefaultPageSize < 1 {
		return fmt.Errorf("PAGE_SIZE must be at least 1")
	}

	if c.Session.TTLMinutes < 1 {
		return fmt.Errorf("SESSION_TTL_MINUTES must be at least 1")
	}

	if c.Mongo.URI != "" && c.Mongo.Database == "" {
		return fmt.Errorf("MONGO_DB is required when MONGO_URI is set")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
