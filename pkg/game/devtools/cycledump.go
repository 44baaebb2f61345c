package devtools

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/game/ui"
)

const (
	cycleDumpFilename  = "cycle.txt"
	defaultDumpSamples = 48
)

// DumpCycleToFile writes a debug dump of cfg (with durations d) to
// cycle.txt in dir and returns the path.
func DumpCycleToFile(cfg daynight.Config, d daynight.Durations, dir string, samples int) (string, error) {
	path := filepath.Join(dir, cycleDumpFilename)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := DumpCycle(f, cfg, d, samples); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// DumpCycle writes metadata, phase boundaries and a sampled table of every
// lighting value across one loop. The values come from a scratch cycle, so
// the running game is not touched.
func DumpCycle(w io.Writer, cfg daynight.Config, d daynight.Durations, samples int) error {
	if samples < 2 {
		samples = 2
	}
	cfg.AutoRun = false
	cfg.StartAtSunrise = false
	cfg.Durations = d

	sky := ui.NewSky()
	c := daynight.New(cfg, sky.Rig())
	c.Init()
	tl := c.Timeline()
	b := tl.Boundaries()

	ew := &errWriter{w: w}
	ew.printf("=== CYCLE ===\n")
	ew.printf("durations: sunrise=%.2f day=%.2f sunset=%.2f night=%.2f\n", d.Sunrise, d.Day, d.Sunset, d.Night)
	ew.printf("total: %.2fs\n", tl.Total())
	ew.printf("boundaries: sunriseEnd=%.4f dayEnd=%.4f sunsetEnd=%.4f\n", b.SunriseEnd, b.DayEnd, b.SunsetEnd)
	ew.printf("manageFog: %v nightFogBoost=%.2f nightAmbient=%.2f\n", cfg.ManageFog, cfg.NightFogBoost, cfg.NightAmbientMultiplier)
	ew.printf("\n=== SAMPLES ===\n")
	ew.printf("%-7s %-8s %-11s %-9s %-6s %-10s %-8s %-8s %s\n",
		"t", "phase", "sky", "sun", "moon", "fog", "exposure", "ambient", "sunColor")

	for i := 0; i < samples; i++ {
		t := float64(i) / float64(samples)
		c.SetTimeOfDay(t)
		c.Apply(false)
		col := sky.Sun.Color.RGBA()
		ew.printf("%-7.4f %-8s %-11s %-9.4f %-6v %-10.5f %-8.2f %-8.2f #%02x%02x%02x\n",
			t, c.Phase(), sky.Skybox.Active, sky.Sun.Intensity, sky.Moon.Enabled,
			sky.Env.Density, sky.Post.Exposure, sky.Env.AmbientIntensity, col.R, col.G, col.B)
	}
	ew.printf("\nskybox switches: %d\n", sky.Skybox.Switches)
	return ew.err
}

// errWriter keeps the first write error so formatting code can stay linear.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, a ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, a...)
}
