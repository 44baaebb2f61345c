package devtools

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/game/state"
)

// Snapshot is a point-in-time record of the game for bug reports.
type Snapshot struct {
	Taken    time.Time      `yaml:"taken"`
	Cycle    cycleSnapshot  `yaml:"cycle"`
	Lighting lightSnapshot  `yaml:"lighting"`
	Player   playerSnapshot `yaml:"player"`
	Items    map[string]int `yaml:"items,omitempty"`
	Messages []string       `yaml:"messages,omitempty"`
}

type cycleSnapshot struct {
	T         float64            `yaml:"t"`
	Phase     string             `yaml:"phase"`
	Elapsed   float64            `yaml:"elapsed"`
	Total     float64            `yaml:"total"`
	AutoRun   bool               `yaml:"autoRun"`
	Durations daynight.Durations `yaml:"durations"`
}

type lightSnapshot struct {
	Skybox         daynight.Skybox `yaml:"skybox"`
	SunIntensity   float64         `yaml:"sunIntensity"`
	SunColor       daynight.RGB    `yaml:"sunColor"`
	MoonEnabled    bool            `yaml:"moonEnabled"`
	FogDensity     float64         `yaml:"fogDensity"`
	FogColor       daynight.RGB    `yaml:"fogColor"`
	Exposure       float64         `yaml:"exposure"`
	Ambient        float64         `yaml:"ambient"`
	SkyboxSwitches int             `yaml:"skyboxSwitches"`
}

type playerSnapshot struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Facing   string  `yaml:"facing"`
	Talking  bool    `yaml:"talking"`
	Collects int     `yaml:"collected"`
}

// TakeSnapshot records g.
func TakeSnapshot(g *state.Game) Snapshot {
	st := g.Cycle.State()
	s := Snapshot{
		Taken: time.Now().UTC(),
		Cycle: cycleSnapshot{
			T:         st.T,
			Phase:     st.Phase.String(),
			Elapsed:   st.Elapsed,
			Total:     st.Total,
			AutoRun:   st.AutoRun,
			Durations: g.Cycle.Timeline().Durations(),
		},
		Lighting: lightSnapshot{
			Skybox:         g.Sky.Skybox.Active,
			SunIntensity:   g.Sky.Sun.Intensity,
			SunColor:       g.Sky.Sun.Color,
			MoonEnabled:    g.Sky.Moon.Enabled,
			FogDensity:     g.Sky.Env.Density,
			FogColor:       g.Sky.Env.FogColor,
			Exposure:       g.Sky.Post.Exposure,
			Ambient:        g.Sky.Env.AmbientIntensity,
			SkyboxSwitches: g.Sky.Skybox.Switches,
		},
		Messages: append([]string(nil), g.Messages...),
	}
	if g.Player != nil {
		s.Player.X, s.Player.Y = g.Player.Pos.X, g.Player.Pos.Y
	}
	s.Player.Facing = fmt.Sprintf("%.2f,%.2f", g.Facing.X, g.Facing.Y)
	if g.Dialogue != nil {
		s.Player.Talking = g.Dialogue.IsOngoing()
	}
	if g.Picker != nil {
		s.Player.Collects = g.Picker.Count()
	}
	if len(g.SlotOrder) > 0 {
		s.Items = make(map[string]int, len(g.SlotOrder))
		for _, name := range g.SlotOrder {
			s.Items[name] = g.Slots[name].Count()
		}
	}
	return s
}

// SaveSnapshot writes a YAML snapshot of g into dir and returns its path.
func SaveSnapshot(g *state.Game, dir string) (string, error) {
	data, err := yaml.Marshal(TakeSnapshot(g))
	if err != nil {
		return "", fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	filename := fmt.Sprintf("snapshot_%s.yaml", time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write snapshot: %w", err)
	}
	return path, nil
}
