package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("GEMINI_STRATEGY", "")
	t.Setenv("GEMINI_POLL_INTERVAL", "")
	t.Setenv("GEMINI_MAX_POLLS", "")
	t.Setenv("OUTPUT_DIR", "")
	t.Setenv("GEMINI_ALLOWED_MODELS", "")

	cfg := Load()

	if cfg.Gemini.Model != "gemini-2.5-pro" {
		t.Errorf("expected default model gemini-2.5-pro, got %q", cfg.Gemini.Model)
	}
	if cfg.Gemini.Strategy != StrategyUpload {
		t.Errorf("expected upload strategy by default, got %q", cfg.Gemini.Strategy)
	}
	if cfg.Gemini.PollInterval != 2*time.Second {
		t.Errorf("expected 2s poll interval, got %s", cfg.Gemini.PollInterval)
	}
	if cfg.Gemini.MaxPolls != 30 {
		t.Errorf("expected 30 max polls, got %d", cfg.Gemini.MaxPolls)
	}
	if cfg.Storage.OutputDir != "./output" {
		t.Errorf("expected ./output, got %q", cfg.Storage.OutputDir)
	}
	if cfg.Database.Enabled {
		t.Error("expected database to be disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("GEMINI_STRATEGY", "INLINE")
	t.Setenv("GEMINI_POLL_INTERVAL", "500ms")
	t.Setenv("GEMINI_MAX_POLLS", "4")
	t.Setenv("GEMINI_ALLOWED_MODELS", " a , b ,,")
	t.Setenv("DB_ENABLED", "true")
	t.Setenv("RETRY_MAX_ATTEMPTS", "not-a-number")

	cfg := Load()

	if cfg.Gemini.Strategy != StrategyInline {
		t.Errorf("expected inline strategy, got %q", cfg.Gemini.Strategy)
	}
	if cfg.Gemini.PollInterval != 500*time.Millisecond {
		t.Errorf("expected 500ms, got %s", cfg.Gemini.PollInterval)
	}
	if cfg.Gemini.MaxPolls != 4 {
		t.Errorf("expected 4 max polls, got %d", cfg.Gemini.MaxPolls)
	}
	if strings.Join(cfg.Gemini.AllowedModels, "|") != "a|b" {
		t.Errorf("unexpected allowed models: %v", cfg.Gemini.AllowedModels)
	}
	if !cfg.Database.Enabled {
		t.Error("expected database to be enabled")
	}
	if cfg.Retry.MaxAttempts != 3 {
		t.Errorf("expected invalid int to fall back to 3, got %d", cfg.Retry.MaxAttempts)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected valid config, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "missing api key", mutate: func(c *Config) { c.Gemini.APIKey = "" }, wantErr: "GEMINI_API_KEY"},
		{name: "bad strategy", mutate: func(c *Config) { c.Gemini.Strategy = "stream" }, wantErr: "GEMINI_STRATEGY"},
		{name: "zero polls", mutate: func(c *Config) { c.Gemini.MaxPolls = 0 }, wantErr: "GEMINI_MAX_POLLS"},
		{name: "zero attempts", mutate: func(c *Config) { c.Retry.MaxAttempts = 0 }, wantErr: "RETRY_MAX_ATTEMPTS"},
		{name: "valid", mutate: func(c *Config) {}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Gemini:  GeminiConfig{APIKey: "k", Model: "m", Strategy: StrategyUpload, MaxPolls: 1},
				Retry:   RetryConfig{MaxAttempts: 1},
				Storage: StorageConfig{OutputDir: "out"},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestIsModelAllowed(t *testing.T) {
	cfg := &Config{Gemini: GeminiConfig{AllowedModels: []string{"gemini-2.5-pro"}}}
	if !cfg.IsModelAllowed("gemini-2.5-pro") {
		t.Error("expected listed model to be allowed")
	}
	if cfg.IsModelAllowed("gpt-4") {
		t.Error("expected unlisted model to be rejected")
	}

	cfg.Gemini.AllowedModels = []string{"*"}
	if !cfg.IsModelAllowed("anything") {
		t.Error("expected wildcard to allow any model")
	}
}

func TestDefaultAllowedModelsCoverClientModels(t *testing.T) {
	t.Setenv("GEMINI_ALLOWED_MODELS", "")
	cfg := Load()

	for _, model := range []string{"gemini-2.5-pro", "gemini-2.5-flash", "gemini-2.5-flash-lite", "gemini-2.0-flash"} {
		if !cfg.IsModelAllowed(model) {
			t.Errorf("expected %s to be allowed by default", model)
		}
	}
	if cfg.IsModelAllowed("gemini-1.0-ultra") {
		t.Error("expected unlisted model to be rejected by default")
	}
}
