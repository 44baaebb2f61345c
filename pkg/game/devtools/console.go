// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/leonelquinteros/gotext"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/game/state"
)

// maxSuggestDistance is the largest edit distance offered as a suggestion.
const maxSuggestDistance = 2

type command struct {
	usage string
	run   func(c *Console, args []string) (string, error)
}

// Console runs developer commands against a game.
type Console struct {
	g        *state.Game
	commands map[string]command

	// DumpDir is where dump and snapshot files are written.
	DumpDir string
}

// NewConsole creates a console for g.
func NewConsole(g *state.Game) *Console {
	c := &Console{g: g, DumpDir: "."}
	c.commands = map[string]command{
		"phase":     {"phase <sunrise|day|sunset|night>", cmdPhase},
		"time":      {"time <0..1>", cmdTime},
		"autorun":   {"autorun <on|off>", cmdAutoRun},
		"durations": {"durations <sunrise> <day> <sunset> <night>", cmdDurations},
		"status":    {"status", cmdStatus},
		"dump":      {"dump [samples]", cmdDump},
		"snapshot":  {"snapshot", cmdSnapshot},
		"help":      {"help", cmdHelp},
	}
	return c
}

// Commands returns the command names, sorted.
func (c *Console) Commands() []string {
	names := make([]string, 0, len(c.commands))
	for name := range c.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs one command line and returns what it printed.
func (c *Console) Execute(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	name := strings.ToLower(fields[0])
	cmd, ok := c.commands[name]
	if !ok {
		if s, ok := c.Suggest(name); ok {
			return fmt.Sprintf(gotext.Get("CONSOLE_SUGGEST"), name, s)
		}
		return fmt.Sprintf(gotext.Get("CONSOLE_UNKNOWN"), name)
	}

	out, err := cmd.run(c, fields[1:])
	if err != nil {
		return fmt.Sprintf("%s: %v\n%s", name, err, fmt.Sprintf(gotext.Get("CONSOLE_USAGE"), cmd.usage))
	}
	return out
}

// Suggest returns the known command closest to name, if any is within
// maxSuggestDistance edits.
func (c *Console) Suggest(name string) (string, bool) {
	best, bestDist := "", maxSuggestDistance+1
	for _, cand := range c.Commands() {
		d := levenshtein.ComputeDistance(name, cand)
		if d < bestDist {
			best, bestDist = cand, d
		}
	}
	return best, best != ""
}

func wantArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("expected %d argument(s), got %d", n, len(args))
	}
	return nil
}

func cmdPhase(c *Console, args []string) (string, error) {
	if err := wantArgs(args, 1); err != nil {
		return "", err
	}
	p, err := daynight.ParsePhase(args[0])
	if err != nil {
		return "", err
	}
	c.g.Cycle.Scrub(p)
	return fmt.Sprintf("phase -> %s (t=%.4f, autorun off)", p, c.g.Cycle.Timeline().T()), nil
}

func cmdTime(c *Console, args []string) (string, error) {
	if err := wantArgs(args, 1); err != nil {
		return "", err
	}
	t, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return "", fmt.Errorf("bad time %q: %w", args[0], err)
	}
	if t < 0 || t > 1 {
		return "", fmt.Errorf("time must be in [0,1], got %v", t)
	}
	c.g.Cycle.SetTimeOfDay(t)
	c.g.Cycle.Apply(true)
	return fmt.Sprintf("t=%.4f (%s)", c.g.Cycle.Timeline().T(), c.g.Cycle.Phase()), nil
}

func cmdAutoRun(c *Console, args []string) (string, error) {
	if err := wantArgs(args, 1); err != nil {
		return "", err
	}
	switch strings.ToLower(args[0]) {
	case "on", "true", "1":
		c.g.Cycle.SetAutoRun(true)
	case "off", "false", "0":
		c.g.Cycle.SetAutoRun(false)
	default:
		return "", fmt.Errorf("expected on or off, got %q", args[0])
	}
	return fmt.Sprintf("autorun %v", c.g.Cycle.AutoRun()), nil
}

func cmdDurations(c *Console, args []string) (string, error) {
	if err := wantArgs(args, 4); err != nil {
		return "", err
	}
	var v [4]float64
	for i, a := range args {
		f, err := strconv.ParseFloat(a, 64)
		if err != nil {
			return "", fmt.Errorf("bad duration %q: %w", a, err)
		}
		if f < 0 {
			return "", fmt.Errorf("duration %q cannot be negative", a)
		}
		v[i] = f
	}
	d := daynight.Durations{Sunrise: v[0], Day: v[1], Sunset: v[2], Night: v[3]}
	c.g.Cycle.Reconfigure(d)
	tl := c.g.Cycle.Timeline()
	b := tl.Boundaries()
	return fmt.Sprintf("total %.2fs, boundaries %.4f %.4f %.4f", tl.Total(), b.SunriseEnd, b.DayEnd, b.SunsetEnd), nil
}

func cmdStatus(c *Console, _ []string) (string, error) {
	st := c.g.Cycle.State()
	return fmt.Sprintf("%s t=%.4f elapsed=%.2f/%.2fs remaining=%.2fs sky=%s autorun=%v",
		st.Phase, st.T, st.Elapsed, st.Total, st.Remaining, st.Sky, st.AutoRun), nil
}

func cmdDump(c *Console, args []string) (string, error) {
	samples := defaultDumpSamples
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 2 {
			return "", fmt.Errorf("samples must be an integer >= 2, got %q", args[0])
		}
		samples = n
	}
	path, err := DumpCycleToFile(c.g.Cycle.Config(), c.g.Cycle.Timeline().Durations(), c.DumpDir, samples)
	if err != nil {
		return "", err
	}
	return "cycle dumped to " + path, nil
}

func cmdSnapshot(c *Console, _ []string) (string, error) {
	path, err := SaveSnapshot(c.g, c.DumpDir)
	if err != nil {
		return "", err
	}
	return "snapshot saved to " + path, nil
}

func cmdHelp(c *Console, _ []string) (string, error) {
	var b strings.Builder
	b.WriteString(gotext.Get("CONSOLE_HELP"))
	for _, name := range c.Commands() {
		b.WriteString("\n  ")
		b.WriteString(c.commands[name].usage)
	}
	return b.String(), nil
}
