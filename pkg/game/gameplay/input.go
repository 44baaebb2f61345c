package gameplay

import (
	"fmt"
	"log"
	"strings"

	"github.com/leonelquinteros/gotext"

	"daybreak/pkg/engine/daynight"
	engineinput "daybreak/pkg/engine/input"
	"daybreak/pkg/engine/world"
	"daybreak/pkg/game/state"
)

var moveDirs = map[engineinput.Action]world.Vec2{
	engineinput.ActionMoveForward: {Y: -1},
	engineinput.ActionMoveBack:    {Y: 1},
	engineinput.ActionMoveLeft:    {X: -1},
	engineinput.ActionMoveRight:   {X: 1},
}

var scrubPhases = map[engineinput.Action]daynight.Phase{
	engineinput.ActionDebugSunrise: daynight.PhaseSunrise,
	engineinput.ActionDebugDay:     daynight.PhaseDay,
	engineinput.ActionDebugSunset:  daynight.PhaseSunset,
	engineinput.ActionDebugNight:   daynight.PhaseNight,
}

// ProcessIntent handles a high-level input intent from the tiered input system.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if dir, ok := moveDirs[intent.Action]; ok {
		Move(g, dir)
		return
	}
	if p, ok := scrubPhases[intent.Action]; ok {
		g.Cycle.Scrub(p)
		say(g, fmt.Sprintf(gotext.Get("SCRUBBED_TO"), PhaseName(p)))
		return
	}

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionInteract:
		Interact(g)

	case engineinput.ActionGrab:
		Grab(g)

	case engineinput.ActionAdvanceDialogue:
		g.Dialogue.Advance()

	case engineinput.ActionToggleAutoRun:
		on := !g.Cycle.AutoRun()
		g.Cycle.SetAutoRun(on)
		if on {
			say(g, gotext.Get("AUTORUN_ON"))
		} else {
			say(g, gotext.Get("AUTORUN_OFF"))
		}

	case engineinput.ActionConsole:
		if g.Console != nil {
			g.ConsoleOpen = !g.ConsoleOpen
			g.ConsoleLine = ""
		}

	case engineinput.ActionQuit:
		g.Quit = true
	}
}

// ProcessKey routes a raw key press: to the console line while it is open,
// otherwise through the bindings.
func ProcessKey(g *state.Game, raw engineinput.RawInput) {
	if g.ConsoleOpen {
		ConsoleKey(g, strings.ToLower(raw.Code))
		return
	}
	ProcessIntent(g, engineinput.Resolve(raw))
}

// ConsoleKey edits the console line with one key code.
func ConsoleKey(g *state.Game, code string) {
	switch code {
	case "escape", "`":
		g.ConsoleOpen = false
		g.ConsoleLine = ""
	case "ctrl_c":
		g.Quit = true
	case "enter":
		line := strings.TrimSpace(g.ConsoleLine)
		g.ConsoleLine = ""
		if line == "" || g.Console == nil {
			return
		}
		out := g.Console.Execute(line)
		log.Printf("[console] %s -> %s", line, out)
		for _, l := range strings.Split(out, "\n") {
			if l != "" {
				g.AddMessage(l)
			}
		}
	case "backspace":
		if r := []rune(g.ConsoleLine); len(r) > 0 {
			g.ConsoleLine = string(r[:len(r)-1])
		}
	case "space":
		g.ConsoleLine += " "
	default:
		if len([]rune(code)) == 1 {
			g.ConsoleLine += code
		}
	}
}

// Update advances the game by dt seconds.
func Update(g *state.Game, dt float64) {
	if g.Cycle != nil {
		g.Cycle.Tick(dt)
	}
	if g.Dialogue != nil {
		g.Dialogue.Update(dt)
	}
	UpdateTriggers(g)
}
