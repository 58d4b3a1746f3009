// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables and an optional .env file. It provides a centralized Config
// struct used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/joho/godotenv"

	"webcraft/internal/ai"
)

// Storage drivers.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// defaultDBPassword is rejected in production.
const defaultDBPassword = "changeme"

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host      string
	Port      string
	Env       string // "development", "production", "testing"
	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "text" or "json"

	// Generation
	GenerationApproach string
	AIProviderOrder    []string

	// AI provider credentials, keyed by provider name.
	Providers map[string]ai.ProviderConfig

	// Website storage
	StorageDriver string

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Valkey (Redis-compatible archive cache). Disabled when ValkeyHost is empty.
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string

	// S3-compatible archive storage. Disabled when S3Endpoint is empty.
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string

	// RateLimitGenerate is the number of generation requests allowed per
	// client IP per minute.
	RateLimitGenerate int
	// TrustProxy makes the rate limiter read X-Forwarded-For.
	TrustProxy bool
}

// Load reads .env (when present) and then the environment, applying
// defaults for development. Variables already set in the environment win
// over .env. Returns an error for invalid values or, in production, for
// unsafe defaults.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return fromEnv()
}

func fromEnv() (*Config, error) {
	rateLimit, err := strconv.Atoi(envOrDefault("RATE_LIMIT_GENERATE", "10"))
	if err != nil {
		return nil, fmt.Errorf("RATE_LIMIT_GENERATE: %w", err)
	}
	trustProxy, err := strconv.ParseBool(envOrDefault("TRUST_PROXY", "false"))
	if err != nil {
		return nil, fmt.Errorf("TRUST_PROXY: %w", err)
	}

	cfg := &Config{
		Host:      envOrDefault("APP_HOST", "0.0.0.0"),
		Port:      envOrDefault("APP_PORT", "8080"),
		Env:       envOrDefault("APP_ENV", "development"),
		LogLevel:  envOrDefault("LOG_LEVEL", "info"),
		LogFormat: envOrDefault("LOG_FORMAT", "text"),

		GenerationApproach: os.Getenv("GENERATION_APPROACH"),
		AIProviderOrder:    splitList(envOrDefault("AI_PROVIDER_ORDER", "gemini,openai")),
		Providers: map[string]ai.ProviderConfig{
			ai.Gemini:  providerFromEnv("GEMINI"),
			ai.OpenAI:  providerFromEnv("OPENAI"),
			ai.Claude:  providerFromEnv("CLAUDE"),
			ai.Mistral: providerFromEnv("MISTRAL"),
		},

		StorageDriver: envOrDefault("STORAGE_DRIVER", StorageMemory),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "webcraft"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", defaultDBPassword),
		DBName:     envOrDefault("POSTGRES_DB", "webcraft"),

		ValkeyHost:     os.Getenv("VALKEY_HOST"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    envOrDefault("S3_BUCKET", "webcraft-archives"),

		RateLimitGenerate: rateLimit,
		TrustProxy:        trustProxy,
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.Env == "production" && cfg.StorageDriver == StoragePostgres && cfg.DBPassword == defaultDBPassword {
		return nil, fmt.Errorf("POSTGRES_PASSWORD must be set in production")
	}

	return cfg, nil
}

// Validate checks enumerated and numeric settings.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Port, validation.Required, is.Port),
		validation.Field(&c.LogLevel, validation.In("debug", "info", "warn", "error")),
		validation.Field(&c.LogFormat, validation.In("text", "json")),
		validation.Field(&c.StorageDriver, validation.In(StorageMemory, StoragePostgres)),
		validation.Field(&c.AIProviderOrder, validation.Each(validation.In(ai.Gemini, ai.OpenAI, ai.Claude, ai.Mistral))),
		validation.Field(&c.RateLimitGenerate, validation.Required, validation.Min(1)),
	)
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// providerFromEnv reads <PREFIX>_API_KEY, <PREFIX>_MODEL and <PREFIX>_BASE_URL.
func providerFromEnv(prefix string) ai.ProviderConfig {
	return ai.ProviderConfig{
		APIKey:  os.Getenv(prefix + "_API_KEY"),
		Model:   os.Getenv(prefix + "_MODEL"),
		BaseURL: os.Getenv(prefix + "_BASE_URL"),
	}
}

// splitList splits a comma separated list, trimming and lower-casing items
// and dropping empty ones.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.ToLower(strings.TrimSpace(item)); item != "" {
			out = append(out, item)
		}
	}
	return out
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
