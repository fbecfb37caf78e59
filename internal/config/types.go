package config

import "time"

// LogMode selects the logger encoding and level.
type LogMode string

const (
	LogDev  LogMode = "dev"
	LogProd LogMode = "prod"
)

// Config is the top-level learnhub configuration, corresponding to .learnhub.yml.
type Config struct {
	Server      ServerConfig      `yaml:"server" koanf:"server"`
	Site        SiteConfig        `yaml:"site" koanf:"site"`
	Assistant   AssistantConfig   `yaml:"assistant" koanf:"assistant"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics" koanf:"diagnostics"`
	Log         LogConfig         `yaml:"log" koanf:"log"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// SiteConfig holds page content settings.
type SiteConfig struct {
	Name string `yaml:"name" koanf:"name"`
	// ClientNavigation swaps page content in place instead of full reloads.
	ClientNavigation bool   `yaml:"client_navigation" koanf:"client_navigation"`
	DemoVideoURL     string `yaml:"demo_video_url" koanf:"demo_video_url"`
	// CatalogFile replaces the bundled catalog when set.
	CatalogFile string `yaml:"catalog_file" koanf:"catalog_file"`
	// ContentDir replaces the bundled lesson content when set.
	ContentDir string `yaml:"content_dir" koanf:"content_dir"`
}

// AssistantConfig holds the selection helper's timing and layout.
type AssistantConfig struct {
	DebounceMS        int     `yaml:"debounce_ms" koanf:"debounce_ms"`
	ResponseDelayMS   int     `yaml:"response_delay_ms" koanf:"response_delay_ms"`
	FollowUpDelayMS   int     `yaml:"follow_up_delay_ms" koanf:"follow_up_delay_ms"`
	MinSelectionChars int     `yaml:"min_selection_chars" koanf:"min_selection_chars"`
	MarginRight       float64 `yaml:"margin_right" koanf:"margin_right"`
	MarginBottom      float64 `yaml:"margin_bottom" koanf:"margin_bottom"`
}

// Debounce returns the debounce window as a duration.
func (a AssistantConfig) Debounce() time.Duration {
	return time.Duration(a.DebounceMS) * time.Millisecond
}

// ResponseDelay returns the simulated explanation latency.
func (a AssistantConfig) ResponseDelay() time.Duration {
	return time.Duration(a.ResponseDelayMS) * time.Millisecond
}

// FollowUpDelay returns the simulated follow-up latency.
func (a AssistantConfig) FollowUpDelay() time.Duration {
	return time.Duration(a.FollowUpDelayMS) * time.Millisecond
}

// DiagnosticsConfig controls the diagnostics store.
type DiagnosticsConfig struct {
	Enabled bool `yaml:"enabled" koanf:"enabled"`
	// DBPath is the SQLite file; empty keeps events in memory.
	DBPath         string `yaml:"db_path" koanf:"db_path"`
	RetentionHours int    `yaml:"retention_hours" koanf:"retention_hours"`
}

// Retention returns how long events are kept. Zero keeps them forever.
func (d DiagnosticsConfig) Retention() time.Duration {
	return time.Duration(d.RetentionHours) * time.Hour
}

// LogConfig holds logging settings.
type LogConfig struct {
	Mode LogMode `yaml:"mode" koanf:"mode"`
}
