package gameplay

import (
	"daybreak/pkg/engine/world"
	"daybreak/pkg/game/state"
)

// StepSize is how far one move intent carries the player.
const StepSize = 0.5

// Move turns the player towards dir and steps that way unless an object or
// the scene edge is in the way. Turning is skipped while mouse look is
// disabled (a dialogue is open).
func Move(g *state.Game, dir world.Vec2) bool {
	if g.Player == nil {
		return false
	}
	if g.HUD.Look.Enabled() {
		g.Facing = dir.Normalized()
	}

	next := g.Player.Pos.Add(dir.Normalized().Scale(StepSize))
	if !CanEnter(g, next) {
		return false
	}
	g.Player.Pos = next
	return true
}

// CanEnter reports whether the player fits at pos.
func CanEnter(g *state.Game, pos world.Vec2) bool {
	s := g.Scene
	if s == nil {
		return true
	}
	if pos.X < 0 || pos.Y < 0 || pos.X > s.Width || pos.Y > s.Height {
		return false
	}
	r := 0.0
	if g.Player != nil {
		r = g.Player.Radius
	}
	blocked := false
	s.Each(func(o *world.Object) {
		if blocked || o == g.Player || !o.ActiveSelf() || o.Radius <= 0 {
			return
		}
		if pos.Sub(o.Pos).Len() < o.Radius+r {
			blocked = true
		}
	})
	return !blocked
}
