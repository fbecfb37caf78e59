package config

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
)

// assistantPresets are the timing choices offered by the wizard.
var assistantPresets = []struct {
	Label         string
	Debounce      int
	ResponseDelay int
	FollowUpDelay int
}{
	{Label: "standard - 400ms debounce, 1s simulated thinking", Debounce: 400, ResponseDelay: 1000, FollowUpDelay: 800},
	{Label: "snappy   - 200ms debounce, 300ms simulated thinking", Debounce: 200, ResponseDelay: 300, FollowUpDelay: 250},
	{Label: "instant  - no simulated latency", Debounce: 150, ResponseDelay: 1, FollowUpDelay: 1},
}

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to learnhub! Let's configure your site.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Site name.
	namePrompt := promptui.Prompt{
		Label:   "Site name",
		Default: cfg.Site.Name,
		Validate: func(s string) error {
			if s == "" {
				return fmt.Errorf("name is required")
			}
			return nil
		},
	}
	name, err := namePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	cfg.Site.Name = name

	// 2. Port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("port must be between 1 and 65535")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	// 3. Navigation mode.
	navPrompt := promptui.Select{
		Label: "Page navigation",
		Items: []string{
			"client - swap page content in place",
			"plain  - ordinary full-page links",
		},
	}
	navIdx, _, err := navPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("navigation selection: %w", err)
	}
	cfg.Site.ClientNavigation = navIdx == 0

	// 4. Assistant timing.
	labels := make([]string, len(assistantPresets))
	for i, p := range assistantPresets {
		labels[i] = p.Label
	}
	timingPrompt := promptui.Select{
		Label: "Assistant timing",
		Items: labels,
	}
	timingIdx, _, err := timingPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("timing selection: %w", err)
	}
	preset := assistantPresets[timingIdx]
	cfg.Assistant.DebounceMS = preset.Debounce
	cfg.Assistant.ResponseDelayMS = preset.ResponseDelay
	cfg.Assistant.FollowUpDelayMS = preset.FollowUpDelay

	// 5. Diagnostics storage.
	dbPrompt := promptui.Prompt{
		Label:   "Diagnostics database file (leave blank to keep events in memory)",
		Default: "",
	}
	dbPath, err := dbPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("diagnostics path: %w", err)
	}
	cfg.Diagnostics.DBPath = dbPath

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}
