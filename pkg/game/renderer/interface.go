// Package renderer holds what the display hosts share: the Renderer
// interface, text markup and the per-frame view of the game.
package renderer

import (
	"daybreak/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StylePhase
	StyleSpeaker
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleSubtle
	StylePlayer
	StyleNPC
	StylePickup
	StyleNight
)

// Renderer defines the interface for game display hosts.
// Implementations own the frame loop: they tick the game, feed it input and
// draw it until the player quits.
type Renderer interface {
	// Init prepares colours, fonts and windows. It is called once before Run.
	Init()

	// Run drives g until g.Quit is set or the host is closed.
	Run(g *state.Game) error
}

// Names lists the selectable hosts.
var Names = []string{"tui", "ebiten"}
