// Package config loads the game's YAML configuration and persists player
// preferences.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/engine/input"
	"daybreak/pkg/game/dialogue"
	"daybreak/pkg/game/pickup"
)

// Config is the whole game configuration.
type Config struct {
	Cycle daynight.Config `yaml:"cycle"`

	// Scene is a Tiled map; relative paths resolve against the config file.
	Scene     string              `yaml:"scene"`
	Dialogues []dialogue.Dialogue `yaml:"dialogues"`

	PickupRange float64 `yaml:"pickupRange"`
	TextSpeed   float64 `yaml:"textSpeed"`
	TickRate    int     `yaml:"tickRate"` // Simulation ticks per second

	// DevTools enables the scrub keys and the developer console.
	DevTools bool `yaml:"devtools"`

	// Bindings maps action names to a single key code, replacing the
	// action's stock keys.
	Bindings map[string]string `yaml:"bindings"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Cycle:       daynight.DefaultConfig(),
		Scene:       "assets/scene.tmx",
		Dialogues:   DefaultDialogues(),
		PickupRange: pickup.DefaultRange,
		TextSpeed:   dialogue.DefaultTextSpeed,
		TickRate:    60,
	}
}

// DefaultDialogues are the conversations of the stock scene.
func DefaultDialogues() []dialogue.Dialogue {
	return []dialogue.Dialogue{
		{ID: "keeper", Lines: []dialogue.Line{
			{Name: "SPEAKER_KEEPER", Text: "KEEPER_1"},
			{Text: "KEEPER_2"},
			{Text: "KEEPER_3"},
		}},
		{ID: "farmer", Lines: []dialogue.Line{
			{Name: "SPEAKER_FARMER", Text: "FARMER_1"},
			{Text: "FARMER_2"},
		}},
	}
}

var current = Default()

// Current returns the active configuration.
func Current() *Config {
	return current
}

// SetCurrent replaces the active configuration.
func SetCurrent(c *Config) {
	if c == nil {
		c = Default()
	}
	current = c
}

// Load reads a YAML file on top of the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cfg.Scene != "" && !filepath.IsAbs(cfg.Scene) {
		cfg.Scene = filepath.Join(filepath.Dir(path), cfg.Scene)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	d := cfg.Cycle.Durations
	for name, v := range map[string]float64{
		"sunrise": d.Sunrise, "day": d.Day, "sunset": d.Sunset, "night": d.Night,
	} {
		if v < 0 {
			return fmt.Errorf("cycle.durations.%s cannot be negative, got %v", name, v)
		}
	}
	if t := cfg.Cycle.TimeOfDay; t < 0 || t > 1 {
		return fmt.Errorf("cycle.timeOfDay must be in [0,1], got %v", t)
	}
	if cfg.PickupRange <= 0 {
		return fmt.Errorf("pickupRange must be positive, got %v", cfg.PickupRange)
	}
	if cfg.TickRate <= 0 {
		return fmt.Errorf("tickRate must be positive, got %d", cfg.TickRate)
	}

	seen := make(map[string]bool)
	for i, dlg := range cfg.Dialogues {
		if dlg.ID == "" {
			return fmt.Errorf("dialogue %d: id is required", i)
		}
		if len(dlg.Lines) == 0 {
			return fmt.Errorf("dialogue %q has no lines", dlg.ID)
		}
		if seen[dlg.ID] {
			return fmt.Errorf("dialogue %q defined twice", dlg.ID)
		}
		seen[dlg.ID] = true
	}

	for name := range cfg.Bindings {
		if _, ok := input.ParseAction(name); !ok {
			return fmt.Errorf("bindings: unknown action %q", name)
		}
	}
	return nil
}

// Dialogue returns the dialogue with the given id.
func (c *Config) Dialogue(id string) (dialogue.Dialogue, bool) {
	for _, d := range c.Dialogues {
		if d.ID == id {
			return d, true
		}
	}
	return dialogue.Dialogue{}, false
}

// ApplyBindings installs the configured key overrides and the developer
// binding switch into the input layer.
func (c *Config) ApplyBindings() {
	input.SetDebugBindings(c.DevTools)

	// Sorted so repeated codes resolve the same way every run.
	names := make([]string, 0, len(c.Bindings))
	for name := range c.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if act, ok := input.ParseAction(name); ok {
			input.SetSingleBinding(act, c.Bindings[name])
		}
	}
}
