// Package tui is the terminal host: it runs the game on a ticker, prints a
// coloured status line every second and, when attached to a terminal, reads
// single key presses in raw mode.
package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gookit/color"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/engine/input"
	"daybreak/pkg/engine/terminal"
	"daybreak/pkg/game/gameplay"
	"daybreak/pkg/game/renderer"
	"daybreak/pkg/game/state"
)

// statusInterval is how often the status line is printed.
const statusInterval = time.Second

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	colorPhase       map[daynight.Phase]color.Style
	colorSpeaker     color.Style
	colorItem        color.Style
	colorAction      color.Style
	colorActionShort color.Style
	colorDenied      color.Style
	colorSubtle      color.Style
	colorPlayer      color.Style
	colorNPC         color.Style
	colorPickup      color.Style

	out         io.Writer
	tickRate    int
	interactive bool
	newline     string

	// phase colours StylePhase text.
	phase daynight.Phase

	// printed is the tail of the message log already written out.
	printed  []string
	lastLine string
	lastBody string
}

// New creates a new TUI renderer ticking tickRate times per second.
func New(tickRate int) *TUIRenderer {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &TUIRenderer{out: os.Stdout, tickRate: tickRate, newline: "\n"}
}

// Init initializes the TUI renderer (colors, etc.)
func (t *TUIRenderer) Init() {
	t.colorPhase = map[daynight.Phase]color.Style{
		daynight.PhaseSunrise: {color.FgYellow},
		daynight.PhaseDay:     {color.FgLightYellow, color.OpBold},
		daynight.PhaseSunset:  {color.FgRed},
		daynight.PhaseNight:   {color.FgBlue, color.OpBold},
	}
	t.colorSpeaker = color.Style{color.FgCyan, color.OpBold}
	t.colorItem = color.Style{color.FgMagenta}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorActionShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorPlayer = color.Style{color.FgGreen, color.OpBold}
	t.colorNPC = color.Style{color.FgCyan}
	t.colorPickup = color.Style{color.FgYellow}

	t.interactive = terminal.IsInteractive()
}

// Run ticks g until it quits or the process is interrupted.
func (t *TUIRenderer) Run(g *state.Game) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var keys chan input.RawInput
	if t.interactive {
		restore, ok, err := input.EnterRawMode()
		if err != nil {
			log.Printf("[tui] raw mode unavailable: %v", err)
		}
		defer restore()
		if ok {
			// Raw mode turns off output post-processing.
			t.newline = "\r\n"
			keys = make(chan input.RawInput, 16)
			go input.ReadKeys(os.Stdin, keys)
			t.printLine(renderer.Markup("ACTION{WASD} move  ACTION{Q} talk  ACTION{E} grab  ACTION{Space} next  ACTION{T} time  ACTION{Esc} quit"))
		}
	} else {
		log.Printf("[tui] stdin is not a terminal; running without input")
	}

	dt := time.Second / time.Duration(t.tickRate)
	ticker := time.NewTicker(dt)
	defer ticker.Stop()
	status := time.NewTicker(statusInterval)
	defer status.Stop()

	t.refresh(g)
	t.printStatus(g)

	for !g.Quit {
		select {
		case <-ctx.Done():
			g.Quit = true
		case k, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			gameplay.ProcessKey(g, k)
			t.refresh(g)
			if g.ConsoleOpen {
				t.printConsole(g)
			}
		case <-ticker.C:
			gameplay.Update(g, dt.Seconds())
			t.refresh(g)
		case <-status.C:
			t.printStatus(g)
		}
	}
	return nil
}

// refresh prints messages and dialogue lines that appeared since the last
// call.
func (t *TUIRenderer) refresh(g *state.Game) {
	for _, msg := range newMessages(t.printed, g.Messages) {
		t.printLine([]renderer.Segment{{Text: "  " + msg}})
	}
	t.printed = append(t.printed[:0], g.Messages...)

	v := renderer.Snapshot(g)
	if !v.DialogueOpen {
		t.lastBody = ""
		return
	}
	if v.Typing || v.Body == t.lastBody {
		return
	}
	t.lastBody = v.Body
	t.printLine(DialogueLine(v))
}

func (t *TUIRenderer) printStatus(g *state.Game) {
	v := renderer.Snapshot(g)
	line := StatusSegments(v)
	plain := renderer.Plain(line)
	if plain == t.lastLine {
		return
	}
	t.lastLine = plain
	t.phase = v.Phase
	t.printLine(line)
}

func (t *TUIRenderer) printConsole(g *state.Game) {
	t.printLine([]renderer.Segment{{Text: "> " + g.ConsoleLine, Style: renderer.StyleAction}})
}

func (t *TUIRenderer) printLine(segs []renderer.Segment) {
	width, _ := terminal.GetSize()
	fmt.Fprint(t.out, t.FormatLine(segs, width)+t.newline)
}

// FormatLine styles segs, truncated to width visible runes.
func (t *TUIRenderer) FormatLine(segs []renderer.Segment, width int) string {
	var b strings.Builder
	budget := width
	for _, s := range segs {
		n := utf8.RuneCountInString(s.Text)
		text := s.Text
		if n > budget {
			text = terminal.Fit(s.Text, budget)
			n = budget
		}
		b.WriteString(t.StyleText(text, s.Style))
		budget -= n
		if budget <= 0 {
			break
		}
	}
	return b.String()
}

// StyleText applies a style to text
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	if text == "" {
		return ""
	}
	switch style {
	case renderer.StyleSpeaker:
		return t.colorSpeaker.Sprint(text)
	case renderer.StyleItem:
		return t.colorItem.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorActionShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StylePlayer:
		return t.colorPlayer.Sprint(text)
	case renderer.StyleNPC:
		return t.colorNPC.Sprint(text)
	case renderer.StylePickup:
		return t.colorPickup.Sprint(text)
	case renderer.StylePhase:
		return t.colorPhase[t.phase].Sprint(text)
	case renderer.StyleNight:
		return t.colorPhase[daynight.PhaseNight].Sprint(text)
	default:
		return text
	}
}

// StatusSegments builds the status line: the clock, the collected counter,
// inventory slots and what is in front of the player.
func StatusSegments(v renderer.View) []renderer.Segment {
	segs := []renderer.Segment{
		{Text: phaseIcon(v.Phase) + " ", Style: renderer.StylePhase},
		{Text: v.Status},
	}
	if v.Counter != "" {
		segs = append(segs, renderer.Segment{Text: "  " + v.Counter, Style: renderer.StyleSubtle})
	}
	for _, s := range v.Slots {
		segs = append(segs,
			renderer.Segment{Text: "  " + s.Label + " "},
			renderer.Segment{Text: s.Count, Style: renderer.StyleItem})
	}
	if v.Target != "" {
		segs = append(segs, renderer.Markup(fmt.Sprintf("  [ACTION{E} ITEM{%s}]", v.Target))...)
	}
	for _, m := range v.Markers {
		if m.InRange {
			segs = append(segs, renderer.Markup(fmt.Sprintf("  [ACTION{Q} NPC{%s}]", m.Name))...)
		}
	}
	return segs
}

// DialogueLine formats the current dialogue text.
func DialogueLine(v renderer.View) []renderer.Segment {
	var segs []renderer.Segment
	if v.Speaker != "" {
		segs = append(segs, renderer.Segment{Text: v.Speaker + ": ", Style: renderer.StyleSpeaker})
	}
	return append(segs, renderer.Segment{Text: v.Body})
}

func phaseIcon(p daynight.Phase) string {
	switch p {
	case daynight.PhaseSunrise:
		return "◒"
	case daynight.PhaseDay:
		return "☀"
	case daynight.PhaseSunset:
		return "◓"
	default:
		return "☾"
	}
}

// newMessages returns the entries of cur that were not in prev. The log is
// capped, so the overlap is the longest suffix of prev that starts cur.
func newMessages(prev, cur []string) []string {
	for k := min(len(prev), len(cur)); k > 0; k-- {
		if equal(prev[len(prev)-k:], cur[:k]) {
			return cur[k:]
		}
	}
	return cur
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
