package config

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName names the preference store.
const AppName = "daybreak"

const (
	prefsObject   = "preferences"
	prefsProperty = "player"
)

// Preferences are per-player settings that survive restarts.
type Preferences struct {
	Renderer    string `yaml:"renderer"`    // "ebiten" or "tui"
	WindowScale int    `yaml:"windowScale"` // Integer zoom for the window host
	Language    string `yaml:"language"`
	// TimeOfDay is where the clock stood when the game last closed.
	TimeOfDay float64 `yaml:"timeOfDay"`
	Resume    bool    `yaml:"resume"` // Start at TimeOfDay instead of sunrise
}

// DefaultPreferences returns the settings used on first run.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Renderer:    "ebiten",
		WindowScale: 2,
		Language:    "en",
	}
}

// PrefStore loads and saves Preferences. A nil manager keeps preferences in
// memory only.
type PrefStore struct {
	manager *gdata.Manager
	prefs   *Preferences
}

// OpenPrefStore opens the platform preference store. When storage is
// unavailable the returned store works in memory only.
func OpenPrefStore() *PrefStore {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("[prefs] storage unavailable: %v (preferences will not be saved)", err)
		m = nil
	}
	return NewPrefStore(m)
}

// NewPrefStore wraps m, which may be nil, and loads any saved preferences.
func NewPrefStore(m *gdata.Manager) *PrefStore {
	s := &PrefStore{manager: m, prefs: DefaultPreferences()}
	if err := s.Load(); err != nil {
		log.Printf("[prefs] %v (using defaults)", err)
	}
	return s
}

// Load reads saved preferences, keeping defaults when none exist.
func (s *PrefStore) Load() error {
	if s.manager == nil {
		return nil
	}
	if !s.manager.ObjectPropExists(prefsObject, prefsProperty) {
		return nil
	}

	data, err := s.manager.LoadObjectProp(prefsObject, prefsProperty)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}
	p := DefaultPreferences()
	if err := yaml.Unmarshal(data, p); err != nil {
		return fmt.Errorf("failed to unmarshal preferences: %w", err)
	}
	if p.WindowScale < 1 {
		p.WindowScale = 1
	}
	s.prefs = p
	return nil
}

// Save writes the preferences. It is a no-op without storage.
func (s *PrefStore) Save() error {
	if s.manager == nil {
		return nil
	}
	data, err := yaml.Marshal(s.prefs)
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}
	if err := s.manager.SaveObjectProp(prefsObject, prefsProperty, data); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}

// Get returns the current preferences. Changes take effect on Save.
func (s *PrefStore) Get() *Preferences {
	return s.prefs
}

// Persistent reports whether preferences reach disk.
func (s *PrefStore) Persistent() bool {
	return s.manager != nil
}
