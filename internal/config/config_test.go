package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Site.Name != "LearnHub" {
		t.Errorf("expected default site name %q, got %q", "LearnHub", cfg.Site.Name)
	}
	if !cfg.Site.ClientNavigation {
		t.Error("expected client navigation on by default")
	}
	if cfg.Assistant.Debounce() != 400*time.Millisecond {
		t.Errorf("expected 400ms debounce, got %v", cfg.Assistant.Debounce())
	}
	if cfg.Assistant.ResponseDelay() != time.Second {
		t.Errorf("expected 1s response delay, got %v", cfg.Assistant.ResponseDelay())
	}
	if cfg.Assistant.FollowUpDelay() != 800*time.Millisecond {
		t.Errorf("expected 800ms follow-up delay, got %v", cfg.Assistant.FollowUpDelay())
	}
	if cfg.Diagnostics.DBPath != "" {
		t.Errorf("expected in-memory diagnostics by default, got %q", cfg.Diagnostics.DBPath)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.learnhub.yml")

	original := DefaultConfig()
	original.Server.Port = 9090
	original.Site.Name = "Campus"
	original.Site.ClientNavigation = false
	original.Assistant.DebounceMS = 250
	original.Assistant.MarginRight = 120.5
	original.Diagnostics.DBPath = "data/diag.db"
	original.Log.Mode = LogProd

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Server.Port != 9090 {
		t.Errorf("server.port: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Site.Name != "Campus" {
		t.Errorf("site.name: got %q, want %q", loaded.Site.Name, "Campus")
	}
	if loaded.Site.ClientNavigation {
		t.Error("site.client_navigation: got true, want false")
	}
	if loaded.Assistant.DebounceMS != 250 {
		t.Errorf("assistant.debounce_ms: got %d, want 250", loaded.Assistant.DebounceMS)
	}
	if loaded.Assistant.MarginRight != 120.5 {
		t.Errorf("assistant.margin_right: got %f, want 120.5", loaded.Assistant.MarginRight)
	}
	if loaded.Diagnostics.DBPath != "data/diag.db" {
		t.Errorf("diagnostics.db_path: got %q, want %q", loaded.Diagnostics.DBPath, "data/diag.db")
	}
	if loaded.Log.Mode != LogProd {
		t.Errorf("log.mode: got %q, want %q", loaded.Log.Mode, LogProd)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "partial.yml")
	if err := os.WriteFile(path, []byte("site:\n  name: Partial\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Site.Name != "Partial" {
		t.Errorf("site.name: got %q, want %q", cfg.Site.Name, "Partial")
	}
	if cfg.Site.DemoVideoURL != DefaultDemoVideoURL {
		t.Errorf("site.demo_video_url lost its default: %q", cfg.Site.DemoVideoURL)
	}
	if cfg.Assistant.MinSelectionChars != 3 {
		t.Errorf("assistant.min_selection_chars lost its default: %d", cfg.Assistant.MinSelectionChars)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("LEARNHUB_SERVER__PORT", "7070")
	t.Setenv("LEARNHUB_ASSISTANT__DEBOUNCE_MS", "100")
	t.Setenv("LEARNHUB_LOG__MODE", "prod")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Server.Port != 7070 {
		t.Errorf("env override failed: got port %d, want 7070", loaded.Server.Port)
	}
	if loaded.Assistant.DebounceMS != 100 {
		t.Errorf("env override failed: got debounce %d, want 100", loaded.Assistant.DebounceMS)
	}
	if loaded.Log.Mode != LogProd {
		t.Errorf("env override failed: got log mode %q, want prod", loaded.Log.Mode)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"LEARNHUB_SERVER__PORT":                 "server.port",
		"LEARNHUB_ASSISTANT__FOLLOW_UP_DELAY_MS": "assistant.follow_up_delay_ms",
		"LEARNHUB_SITE__CLIENT_NAVIGATION":       "site.client_navigation",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig should be valid, got: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }},
		{"empty site name", func(c *Config) { c.Site.Name = "  " }},
		{"empty video url", func(c *Config) { c.Site.DemoVideoURL = "" }},
		{"relative video url", func(c *Config) { c.Site.DemoVideoURL = "/embed/x" }},
		{"negative debounce", func(c *Config) { c.Assistant.DebounceMS = -1 }},
		{"negative follow-up delay", func(c *Config) { c.Assistant.FollowUpDelayMS = -1 }},
		{"negative min chars", func(c *Config) { c.Assistant.MinSelectionChars = -1 }},
		{"negative margin", func(c *Config) { c.Assistant.MarginBottom = -10 }},
		{"negative retention", func(c *Config) { c.Diagnostics.RetentionHours = -1 }},
		{"unknown log mode", func(c *Config) { c.Log.Mode = "verbose" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
