package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
// Following 12-factor app principles, all config is loaded from environment variables
type Config struct {
	Server   ServerConfig
	Airtable AirtableConfig
	Payment  PaymentConfig
	Order    OrderConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// AirtableConfig describes the remote datastore order records are sent to.
// Token is a required secret; a missing token is a startup error, never a
// per-request one.
type AirtableConfig struct {
	URL            string
	Token          string
	RequestTimeout int
}

// PaymentConfig describes the payment provider deep-link scheme.
type PaymentConfig struct {
	Host  string
	Payee string
}

// OrderConfig holds the order business rules that are configuration, not code:
// the maximum accepted order value and the contact offered when persistence
// fails.
type OrderConfig struct {
	MaxTotal        int
	FallbackContact string
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
		Airtable: AirtableConfig{
			URL:            getEnv("AIRTABLE_URL", "https://api.airtable.com/v0/appBGc2YLVRZAuFGU/Requests"),
			Token:          getEnv("AIRTABLE_TOKEN", ""),
			RequestTimeout: getEnvAsInt("AIRTABLE_TIMEOUT", 30),
		},
		Payment: PaymentConfig{
			Host:  getEnv("PAYMENT_HOST", "https://monzo.me"),
			Payee: getEnv("PAYMENT_PAYEE", "davidobidu"),
		},
		Order: OrderConfig{
			MaxTotal:        getEnvAsInt("MAX_ORDER_TOTAL", 500),
			FallbackContact: getEnv("FALLBACK_CONTACT", "+447721494822"),
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

	if c.Airtable.Token == "" {
		return fmt.Errorf("AIRTABLE_TOKEN is required")
	}

	if c.Airtable.URL == "" {
		return fmt.Errorf("AIRTABLE_URL is required")
	}

	if c.Order.MaxTotal <= 0 {
		return fmt.Errorf("MAX_ORDER_TOTAL must be positive, got %d", c.Order.MaxTotal)
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
