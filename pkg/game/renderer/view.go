package renderer

import (
	"image/color"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/engine/world"
	"daybreak/pkg/game/gameplay"
	"daybreak/pkg/game/state"
)

// Marker is one scene object as the hosts draw it.
type Marker struct {
	Name   string
	Tag    string
	Pos    world.Vec2
	Radius float64
	// Targeted is set on the pickup the player is looking at.
	Targeted bool
	// InRange is set on NPCs whose trigger the player stands in.
	InRange bool
}

// Slot is an inventory slot as drawn.
type Slot struct {
	Icon  string
	Count string
	Label string
}

// View is a consistent snapshot of the game for one frame. Hosts build it
// once per draw so nothing changes underneath them mid-frame.
type View struct {
	Status string
	Phase  daynight.Phase
	Night  bool

	Sky      color.RGBA
	FogColor color.RGBA
	FogAlpha uint8
	// SunElevation is -1 below the horizon at dawn, 1 overhead at noon.
	SunElevation float64
	MoonUp       bool

	Width, Height float64
	Player        Marker
	Facing        world.Vec2
	Markers       []Marker
	Target        string
	Reach         float64 // Grab range

	Counter string
	Slots   []Slot

	DialogueOpen bool
	Speaker      string
	Body         string
	Typing       bool

	CursorLocked  bool
	CursorVisible bool
	LookEnabled   bool

	Messages []string

	ConsoleOpen bool
	ConsoleLine string
}

// Snapshot captures g for drawing.
func Snapshot(g *state.Game) View {
	v := View{
		Status:        gameplay.StatusLine(g),
		Phase:         g.Cycle.Phase(),
		Night:         g.Cycle.Phase().IsNight(),
		Sky:           g.Sky.SkyColor(),
		FogColor:      g.Sky.Env.FogColor.RGBA(),
		FogAlpha:      g.Sky.FogAlpha(),
		SunElevation:  g.Sky.Sun.Elevation(),
		MoonUp:        g.Sky.Moon.Enabled,
		Facing:        g.Facing,
		Counter:       g.HUD.Counter.Text(),
		DialogueOpen:  g.HUD.DialoguePanel.ActiveSelf(),
		Speaker:       g.HUD.Speaker.Text(),
		Body:          g.HUD.Body.Text(),
		CursorLocked:  g.HUD.Cursor.Locked(),
		CursorVisible: g.HUD.Cursor.Visible(),
		LookEnabled:   g.HUD.Look.Enabled(),
		Messages:      append([]string(nil), g.Messages...),
		ConsoleOpen:   g.ConsoleOpen,
		ConsoleLine:   g.ConsoleLine,
	}
	if g.Dialogue != nil {
		v.Typing = g.Dialogue.Typing()
	}

	for _, s := range g.HUD.Slots {
		slot := Slot{Count: s.Count.Text(), Label: s.Label.Text()}
		if s.Icon.Enabled() {
			slot.Icon = s.Icon.Sprite()
		}
		v.Slots = append(v.Slots, slot)
	}

	if g.Scene == nil {
		return v
	}
	v.Width, v.Height = g.Scene.Width, g.Scene.Height

	var target *world.Object
	if g.Picker != nil {
		v.Reach = g.Picker.Range
	}
	if g.Player != nil && g.Picker != nil {
		hit, ok := g.Scene.Raycast(g.Position(), g.Facing, g.Picker.Range, g.Player)
		if ok && hit.Object.CompareTag(world.TagPickup) {
			target = hit.Object
			v.Target = target.Name
		}
	}

	g.Scene.Each(func(o *world.Object) {
		if !o.ActiveSelf() {
			return
		}
		m := Marker{Name: o.Name, Tag: o.Tag, Pos: o.Pos, Radius: o.Radius, Targeted: o == target}
		if n := g.NPCFor(o); n != nil {
			m.InRange = n.Interactor.InRange()
		}
		if o == g.Player {
			v.Player = m
			return
		}
		v.Markers = append(v.Markers, m)
	})
	return v
}
