package devtools

import (
	"bytes"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/game/config"
	"daybreak/pkg/game/gameplay"
	"daybreak/pkg/game/locale"
	"daybreak/pkg/game/state"
)

func TestMain(m *testing.M) {
	locale.MustLoadDefault()
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newTestConsole(t *testing.T) (*Console, *state.Game) {
	t.Helper()
	g := gameplay.BuildGame(config.Default(), gameplay.DefaultScene())
	c := NewConsole(g)
	c.DumpDir = t.TempDir()
	return c, g
}

func TestConsole_Phase(t *testing.T) {
	c, g := newTestConsole(t)

	out := c.Execute("phase night")
	if g.Cycle.Phase() != daynight.PhaseNight {
		t.Fatalf("phase = %s, want night (output %q)", g.Cycle.Phase(), out)
	}
	if g.Cycle.AutoRun() {
		t.Error("scrubbing should stop autorun")
	}

	out = c.Execute("phase dusk")
	if !strings.Contains(out, "unknown phase") {
		t.Errorf("bad phase output = %q", out)
	}
	if g.Cycle.Phase() != daynight.PhaseNight {
		t.Errorf("bad phase changed the cycle to %s", g.Cycle.Phase())
	}
}

func TestConsole_Time(t *testing.T) {
	c, g := newTestConsole(t)

	c.Execute("time 0.5")
	if got := g.Cycle.Timeline().T(); got != 0.5 {
		t.Errorf("t = %v, want 0.5", got)
	}
	if g.Cycle.Phase() != daynight.PhaseDay {
		t.Errorf("phase = %s, want day", g.Cycle.Phase())
	}

	for _, bad := range []string{"time", "time x", "time 1.5", "time -0.1"} {
		if out := c.Execute(bad); !strings.Contains(out, "Usage") && !strings.Contains(out, "time:") {
			t.Errorf("%q output = %q, want an error", bad, out)
		}
	}
	if got := g.Cycle.Timeline().T(); got != 0.5 {
		t.Errorf("bad input moved t to %v", got)
	}
}

func TestConsole_AutoRun(t *testing.T) {
	c, g := newTestConsole(t)

	c.Execute("autorun off")
	if g.Cycle.AutoRun() {
		t.Error("autorun still on")
	}
	c.Execute("AUTORUN on")
	if !g.Cycle.AutoRun() {
		t.Error("autorun still off")
	}
	if out := c.Execute("autorun maybe"); !strings.Contains(out, "expected on or off") {
		t.Errorf("output = %q", out)
	}
}

func TestConsole_Durations(t *testing.T) {
	c, g := newTestConsole(t)

	c.Execute("durations 10 20 10 20")
	if got := g.Cycle.Timeline().Total(); got != 60 {
		t.Errorf("total = %v, want 60", got)
	}
	if out := c.Execute("durations 1 2 3"); !strings.Contains(out, "expected 4") {
		t.Errorf("short output = %q", out)
	}
	if out := c.Execute("durations 1 2 -3 4"); !strings.Contains(out, "negative") {
		t.Errorf("negative output = %q", out)
	}
	if got := g.Cycle.Timeline().Total(); got != 60 {
		t.Errorf("rejected input changed total to %v", got)
	}
}

func TestConsole_Status(t *testing.T) {
	c, _ := newTestConsole(t)
	out := c.Execute("status")
	if !strings.HasPrefix(out, "sunrise") {
		t.Errorf("status = %q", out)
	}
}

func TestConsole_UnknownCommands(t *testing.T) {
	c, _ := newTestConsole(t)

	tests := []struct {
		line string
		want string
	}{
		{"stauts", `Did you mean "status"`},
		{"phse day", `Did you mean "phase"`},
		{"teleport", `Unknown command "teleport".`},
	}
	for _, tt := range tests {
		if out := c.Execute(tt.line); !strings.Contains(out, tt.want) {
			t.Errorf("Execute(%q) = %q, want it to contain %q", tt.line, out, tt.want)
		}
	}

	if out := c.Execute("   "); out != "" {
		t.Errorf("blank line output = %q", out)
	}
}

func TestConsole_Help(t *testing.T) {
	c, _ := newTestConsole(t)
	out := c.Execute("help")
	for _, name := range c.Commands() {
		if !strings.Contains(out, name) {
			t.Errorf("help does not mention %q", name)
		}
	}
}

func TestConsole_DumpAndSnapshot(t *testing.T) {
	c, _ := newTestConsole(t)

	out := c.Execute("dump 8")
	path := filepath.Join(c.DumpDir, cycleDumpFilename)
	if !strings.Contains(out, path) {
		t.Errorf("dump output = %q", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("dump file: %v", err)
	}
	if out := c.Execute("dump 1"); !strings.Contains(out, "samples") {
		t.Errorf("dump 1 output = %q", out)
	}

	out = c.Execute("snapshot")
	if !strings.Contains(out, "snapshot saved") {
		t.Fatalf("snapshot output = %q", out)
	}
	matches, _ := filepath.Glob(filepath.Join(c.DumpDir, "snapshot_*.yaml"))
	if len(matches) != 1 {
		t.Errorf("snapshot files = %v", matches)
	}
}

func TestDumpCycle_SamplesWholeLoop(t *testing.T) {
	cfg := daynight.DefaultConfig()
	var buf bytes.Buffer
	if err := DumpCycle(&buf, cfg, cfg.Durations, 4); err != nil {
		t.Fatalf("DumpCycle: %v", err)
	}
	out := buf.String()

	for _, want := range []string{"=== CYCLE ===", "total: 190.00s", "=== SAMPLES ===", "0.0000", "0.7500"} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q:\n%s", want, out)
		}
	}
	for _, p := range []string{"sunrise", "day", "night"} {
		if !strings.Contains(out, p) {
			t.Errorf("dump missing phase %q", p)
		}
	}
}

func TestDumpCycle_DoesNotTouchRunningGame(t *testing.T) {
	c, g := newTestConsole(t)
	before := g.Cycle.State()
	switches := g.Sky.Skybox.Switches

	c.Execute("dump")

	if after := g.Cycle.State(); after != before {
		t.Errorf("state changed: %+v -> %+v", before, after)
	}
	if g.Sky.Skybox.Switches != switches {
		t.Error("dump drove the game's sky")
	}
}

func TestTakeSnapshot(t *testing.T) {
	_, g := newTestConsole(t)
	g.AddMessage("hello")

	s := TakeSnapshot(g)
	if s.Cycle.Phase != "sunrise" {
		t.Errorf("phase = %q", s.Cycle.Phase)
	}
	if s.Cycle.Durations != g.Cycle.Timeline().Durations() {
		t.Errorf("durations = %+v", s.Cycle.Durations)
	}
	if s.Player.X != g.Player.Pos.X || s.Player.Y != g.Player.Pos.Y {
		t.Errorf("player = %+v", s.Player)
	}
	if len(s.Messages) == 0 || s.Messages[len(s.Messages)-1] != "hello" {
		t.Errorf("messages = %v", s.Messages)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), "phase: sunrise") {
		t.Errorf("yaml:\n%s", data)
	}
}
