package config

// DefaultPath is the configuration file looked up in the working directory.
const DefaultPath = ".learnhub.yml"

// DefaultDemoVideoURL is the embedded walkthrough on the demo page.
const DefaultDemoVideoURL = "https://www.youtube.com/embed/HFmhSAqeOsY"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            8080,
			AllowAllOrigins: false,
		},
		Site: SiteConfig{
			Name:             "LearnHub",
			ClientNavigation: true,
			DemoVideoURL:     DefaultDemoVideoURL,
		},
		Assistant: AssistantConfig{
			DebounceMS:        400,
			ResponseDelayMS:   1000,
			FollowUpDelayMS:   800,
			MinSelectionChars: 3,
			MarginRight:       200,
			MarginBottom:      100,
		},
		Diagnostics: DiagnosticsConfig{
			Enabled:        true,
			RetentionHours: 168,
		},
		Log: LogConfig{
			Mode: LogDev,
		},
	}
}
