package main

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// config holds the demo server settings, read from the environment.
type config struct {
	RedisAddr string `validate:"required,hostname_port"`
	ListKey   string `validate:"required"`
	Port      string `validate:"required,numeric"`
	LogLevel  string `validate:"omitempty,oneof=debug info warn error"`
	LogPretty bool
}

func loadConfig() (config, error) {
	cfg := config{
		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		ListKey:   getEnv("LIST_KEY", "paged:items"),
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogPretty: getEnv("LOG_PRETTY", "") == "true",
	}

	if err := validator.New().Struct(cfg); err != nil {
		return config{}, fmt.Errorf("server config validation: %w", err)
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
