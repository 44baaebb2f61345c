package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"daybreak/pkg/game/config"
	"daybreak/pkg/game/devtools"
	"daybreak/pkg/game/gameplay"
	"daybreak/pkg/game/locale"
	"daybreak/pkg/game/renderer"
	ebitenrenderer "daybreak/pkg/game/renderer/ebiten"
	"daybreak/pkg/game/renderer/tui"
	"daybreak/pkg/game/state"
)

func main() {
	rendererName := flag.String("renderer", "", "display host: "+strings.Join(renderer.Names, " or ")+" (default: saved preference)")
	configPath := flag.String("config", "", "YAML config file (default: built-in settings)")
	dev := flag.Bool("dev", false, "enable developer scrub keys and the console")
	lang := flag.String("lang", "", "interface language (default: saved preference)")
	fresh := flag.Bool("fresh", false, "start at sunrise instead of resuming the saved time of day")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("[config] %v", err)
	}
	if *dev {
		cfg.DevTools = true
	}
	config.SetCurrent(cfg)
	cfg.ApplyBindings()

	prefs := config.OpenPrefStore()
	p := prefs.Get()
	if *rendererName != "" {
		p.Renderer = *rendererName
	}
	if *lang != "" {
		p.Language = *lang
	}
	if err := locale.Load(p.Language); err != nil {
		log.Printf("[locale] %v", err)
	}
	if p.Resume && !*fresh {
		cfg.Cycle.StartAtSunrise = false
		cfg.Cycle.TimeOfDay = p.TimeOfDay
	}

	g := gameplay.BuildGame(cfg, gameplay.LoadScene(cfg.Scene))
	if cfg.DevTools {
		g.Console = devtools.NewConsole(g)
		log.Printf("[devtools] enabled: F1-F4 scrub the clock, ` opens the console")
	}

	r, err := newRenderer(p, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	r.Init()
	runErr := r.Run(g)

	savePreferences(prefs, p, g)
	if runErr != nil {
		log.Fatalf("[%s] %v", p.Renderer, runErr)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func newRenderer(p *config.Preferences, cfg *config.Config) (renderer.Renderer, error) {
	switch p.Renderer {
	case "tui":
		return tui.New(cfg.TickRate), nil
	case "ebiten", "":
		p.Renderer = "ebiten"
		r := ebitenrenderer.New(cfg.TickRate, p.WindowScale)
		r.OnScale = func(s int) { p.WindowScale = s }
		return r, nil
	default:
		return nil, fmt.Errorf("unknown renderer %q (want %s)", p.Renderer, strings.Join(renderer.Names, " or "))
	}
}

// savePreferences records where the clock stopped so the next run can
// resume there.
func savePreferences(prefs *config.PrefStore, p *config.Preferences, g *state.Game) {
	p.TimeOfDay = g.Cycle.Timeline().T()
	p.Resume = true
	if err := prefs.Save(); err != nil {
		log.Printf("[prefs] %v", err)
	}
}
