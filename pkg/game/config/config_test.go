package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/quasilyte/gdata/v2"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/engine/input"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestParse_OverlaysDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
cycle:
  startAtSunrise: false
  timeOfDay: 0.5
  durations:
    day: 120
  skyboxes:
    night: starfield
pickupRange: 3
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.Cycle.StartAtSunrise || cfg.Cycle.TimeOfDay != 0.5 {
		t.Errorf("cycle start = %v/%v", cfg.Cycle.StartAtSunrise, cfg.Cycle.TimeOfDay)
	}
	if d := cfg.Cycle.Durations; d.Day != 120 || d.Sunrise != 25 || d.Night != 60 {
		t.Errorf("durations = %+v", d)
	}
	if s := cfg.Cycle.Skyboxes; s.Night != "starfield" || s.Day != "sky_day" {
		t.Errorf("skyboxes = %+v", s)
	}
	if !cfg.Cycle.AutoRun || cfg.Cycle.NightFogBoost != 1.6 {
		t.Error("unset cycle fields lost their defaults")
	}
	if cfg.PickupRange != 3 || cfg.TickRate != 60 {
		t.Errorf("pickupRange=%v tickRate=%d", cfg.PickupRange, cfg.TickRate)
	}
	if _, ok := cfg.Dialogue("keeper"); !ok {
		t.Error("default dialogues missing")
	}
}

func TestParse_Curves(t *testing.T) {
	cfg, err := Parse([]byte(`
cycle:
  sunIntensity:
    - {t: 1, v: 0}
    - {t: 0, v: 0}
    - {t: 0.5, v: 2}
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := cfg.Cycle.SunIntensity.Evaluate(0.25); got != 1 {
		t.Errorf("sunIntensity(0.25) = %v, want 1", got)
	}
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"negative duration": "cycle: {durations: {night: -1}}",
		"time out of range": "cycle: {timeOfDay: 2}",
		"zero range":        "pickupRange: 0",
		"bad tick rate":     "tickRate: -5",
		"missing id":        "dialogues: [{lines: [{text: hi}]}]",
		"duplicate id":      "dialogues: [{id: a, lines: [{text: x}]}, {id: a, lines: [{text: y}]}]",
		"no lines":          "dialogues: [{id: a}]",
		"unknown action":    "bindings: {dance: x}",
		"bad yaml":          "cycle: [",
	}
	for name, src := range cases {
		if _, err := Parse([]byte(src)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
}

func TestLoad_ResolvesScenePath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("scene: maps/village.tmx\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := filepath.Join(dir, "maps", "village.tmx"); cfg.Scene != want {
		t.Errorf("scene = %q, want %q", cfg.Scene, want)
	}

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("missing file error = %v", err)
	}
}

func TestApplyBindings(t *testing.T) {
	t.Cleanup(input.ResetBindings)

	cfg := Default()
	cfg.DevTools = true
	cfg.Bindings = map[string]string{"interact": "f", "grab": "g"}
	cfg.ApplyBindings()

	if got := input.Resolve(input.RawInput{Code: "f"}).Action; got != input.ActionInteract {
		t.Errorf("f = %s", input.ActionName(got))
	}
	if got := input.Resolve(input.RawInput{Code: "g"}).Action; got != input.ActionGrab {
		t.Errorf("g = %s", input.ActionName(got))
	}
	if got := input.Resolve(input.RawInput{Code: "f2"}).Action; got != input.ActionDebugDay {
		t.Errorf("devtools should enable f2, got %s", input.ActionName(got))
	}
}

func TestDefaultConfigMatchesCycleDefaults(t *testing.T) {
	cfg := Default()
	if cfg.Cycle.Durations != daynight.DefaultDurations() {
		t.Errorf("durations = %+v", cfg.Cycle.Durations)
	}
	if Current() == nil {
		t.Fatal("Current() is nil")
	}
	SetCurrent(nil)
	if Current() == nil {
		t.Error("SetCurrent(nil) should restore defaults")
	}
}

func TestPrefStore_MemoryOnly(t *testing.T) {
	s := NewPrefStore(nil)
	if s.Persistent() {
		t.Error("nil manager should not be persistent")
	}
	s.Get().Renderer = "tui"
	if err := s.Save(); err != nil {
		t.Errorf("Save in memory mode: %v", err)
	}
	if s.Get().Renderer != "tui" {
		t.Error("in-memory change lost")
	}
}

func TestPrefStore_RoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, "data"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "config"))

	m, err := gdata.Open(gdata.Config{AppName: "daybreak_test_prefs"})
	if err != nil {
		t.Fatalf("gdata.Open: %v", err)
	}

	s1 := NewPrefStore(m)
	if s1.Get().WindowScale != 2 {
		t.Errorf("first run scale = %d", s1.Get().WindowScale)
	}
	s1.Get().Renderer = "tui"
	s1.Get().TimeOfDay = 0.42
	s1.Get().Resume = true
	if err := s1.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	s2 := NewPrefStore(m)
	p := s2.Get()
	if p.Renderer != "tui" || p.TimeOfDay != 0.42 || !p.Resume {
		t.Errorf("reloaded prefs = %+v", p)
	}
}
