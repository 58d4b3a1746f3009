// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// configEnvVars lists every variable Load reads.
var configEnvVars = []string{
	"APP_HOST", "APP_PORT", "APP_ENV", "LOG_LEVEL", "LOG_FORMAT",
	"GENERATION_APPROACH", "AI_PROVIDER_ORDER",
	"GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
	"OPENAI_API_KEY", "OPENAI_MODEL", "OPENAI_BASE_URL",
	"CLAUDE_API_KEY", "CLAUDE_MODEL", "CLAUDE_BASE_URL",
	"MISTRAL_API_KEY", "MISTRAL_MODEL", "MISTRAL_BASE_URL",
	"STORAGE_DRIVER",
	"POSTGRES_HOST", "POSTGRES_PORT", "POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB",
	"VALKEY_HOST", "VALKEY_PORT", "VALKEY_PASSWORD",
	"S3_ENDPOINT", "S3_REGION", "S3_ACCESS_KEY", "S3_SECRET_KEY", "S3_BUCKET",
	"RATE_LIMIT_GENERATE", "TRUST_PROXY",
}

// clearEnv blanks every config variable for the duration of the test.
// envOrDefault treats empty the same as unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configEnvVars {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	defaults := map[string]string{
		"Host":               cfg.Host,
		"Port":               cfg.Port,
		"Env":                cfg.Env,
		"LogLevel":           cfg.LogLevel,
		"LogFormat":          cfg.LogFormat,
		"GenerationApproach": cfg.GenerationApproach,
		"StorageDriver":      cfg.StorageDriver,
		"DBUser":             cfg.DBUser,
		"DBPassword":         cfg.DBPassword,
		"ValkeyHost":         cfg.ValkeyHost,
		"S3Endpoint":         cfg.S3Endpoint,
	}
	want := map[string]string{
		"Host":               "0.0.0.0",
		"Port":               "8080",
		"Env":                "development",
		"LogLevel":           "info",
		"LogFormat":          "text",
		"GenerationApproach": "",
		"StorageDriver":      "memory",
		"DBUser":             "webcraft",
		"DBPassword":         "changeme",
		"ValkeyHost":         "",
		"S3Endpoint":         "",
	}
	for field, got := range defaults {
		if got != want[field] {
			t.Errorf("%s: got %q, want %q", field, got, want[field])
		}
	}

	if strings.Join(cfg.AIProviderOrder, ",") != "gemini,openai" {
		t.Errorf("AIProviderOrder: got %v", cfg.AIProviderOrder)
	}
	if cfg.RateLimitGenerate != 10 {
		t.Errorf("RateLimitGenerate: got %d, want 10", cfg.RateLimitGenerate)
	}
	if cfg.TrustProxy {
		t.Error("TrustProxy should default to false")
	}
	for name, p := range cfg.Providers {
		if p.APIKey != "" {
			t.Errorf("%s: unexpected API key", name)
		}
	}
	if cfg.Env != "development" {
		t.Errorf("Env: got %q, want development", cfg.Env)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_PORT", "9090")
	t.Setenv("GENERATION_APPROACH", "full-ai")
	t.Setenv("AI_PROVIDER_ORDER", " OpenAI , mistral,, gemini ")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("MISTRAL_BASE_URL", "http://mistral.local/v1")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("RATE_LIMIT_GENERATE", "3")
	t.Setenv("TRUST_PROXY", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Addr() != "0.0.0.0:9090" {
		t.Errorf("Addr: got %q", cfg.Addr())
	}
	if cfg.GenerationApproach != "full-ai" {
		t.Errorf("GenerationApproach: got %q", cfg.GenerationApproach)
	}
	if got := strings.Join(cfg.AIProviderOrder, ","); got != "openai,mistral,gemini" {
		t.Errorf("AIProviderOrder: got %q", got)
	}
	if p := cfg.Providers["openai"]; p.APIKey != "sk-test" || p.Model != "gpt-4o-mini" {
		t.Errorf("openai config: got %+v", p)
	}
	if p := cfg.Providers["mistral"]; p.BaseURL != "http://mistral.local/v1" {
		t.Errorf("mistral config: got %+v", p)
	}
	if cfg.StorageDriver != StoragePostgres || cfg.RateLimitGenerate != 3 || !cfg.TrustProxy {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"STORAGE_DRIVER", "sqlite"},
		{"AI_PROVIDER_ORDER", "gemini,llama"},
		{"RATE_LIMIT_GENERATE", "many"},
		{"RATE_LIMIT_GENERATE", "0"},
		{"RATE_LIMIT_GENERATE", "-1"},
		{"APP_PORT", "http"},
		{"LOG_FORMAT", "xml"},
		{"TRUST_PROXY", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%q", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_ProductionRequiresDBPassword(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "production")
	t.Setenv("STORAGE_DRIVER", "postgres")

	_, err := Load()
	if err == nil || !strings.Contains(err.Error(), "POSTGRES_PASSWORD") {
		t.Fatalf("expected POSTGRES_PASSWORD error, got %v", err)
	}

	// The memory store needs no database password.
	t.Setenv("STORAGE_DRIVER", "memory")
	if _, err := Load(); err != nil {
		t.Errorf("memory driver in production: %v", err)
	}

	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Env != "production" {
		t.Errorf("Env: got %q, want production", cfg.Env)
	}
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	// godotenv only fills variables that are unset, so unset the ones the
	// file provides.
	for _, key := range []string{"APP_PORT", "GEMINI_API_KEY"} {
		os.Unsetenv(key)
	}
	t.Setenv("GENERATION_APPROACH", "template")

	dir := t.TempDir()
	env := "APP_PORT=7070\nGEMINI_API_KEY=from-file\nGENERATION_APPROACH=full-ai\n"
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Cleanup(func() {
		os.Unsetenv("APP_PORT")
		os.Unsetenv("GEMINI_API_KEY")
	})

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != "7070" {
		t.Errorf("Port: got %q, want value from .env", cfg.Port)
	}
	if cfg.Providers["gemini"].APIKey != "from-file" {
		t.Errorf("gemini key: got %q", cfg.Providers["gemini"].APIKey)
	}
	if cfg.GenerationApproach != "template" {
		t.Errorf("environment should win over .env, got %q", cfg.GenerationApproach)
	}
}

func TestDSN(t *testing.T) {
	cfg := &Config{DBUser: "u", DBPassword: "p", DBHost: "db", DBPort: "5433", DBName: "web"}
	want := "postgres://u:p@db:5433/web?sslmode=disable"
	if got := cfg.DSN(); got != want {
		t.Errorf("DSN: got %q, want %q", got, want)
	}
}
