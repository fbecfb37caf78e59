package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix marks environment overrides. A double underscore separates
// nested keys: LEARNHUB_SERVER__PORT sets server.port.
const EnvPrefix = "LEARNHUB_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LEARNHUB_*). A missing file is not an error.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps LEARNHUB_ASSISTANT__DEBOUNCE_MS to assistant.debounce_ms.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range 1-65535", c.Server.Port)
	}

	if strings.TrimSpace(c.Site.Name) == "" {
		return fmt.Errorf("site.name is required")
	}
	if c.Site.DemoVideoURL == "" {
		return fmt.Errorf("site.demo_video_url is required")
	}
	if u, err := url.Parse(c.Site.DemoVideoURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("site.demo_video_url %q is not an absolute URL", c.Site.DemoVideoURL)
	}

	a := c.Assistant
	if a.DebounceMS < 0 || a.ResponseDelayMS < 0 || a.FollowUpDelayMS < 0 {
		return fmt.Errorf("assistant delays must be non-negative")
	}
	if a.MinSelectionChars < 0 {
		return fmt.Errorf("assistant.min_selection_chars must be non-negative")
	}
	if a.MarginRight < 0 || a.MarginBottom < 0 {
		return fmt.Errorf("assistant margins must be non-negative")
	}

	if c.Diagnostics.RetentionHours < 0 {
		return fmt.Errorf("diagnostics.retention_hours must be non-negative")
	}

	switch c.Log.Mode {
	case LogDev, LogProd:
	default:
		return fmt.Errorf("invalid log.mode %q: must be one of dev, prod", c.Log.Mode)
	}

	return nil
}
