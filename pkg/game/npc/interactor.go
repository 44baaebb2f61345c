// Package npc lets the player open a dialogue canvas while standing near a
// character.
package npc

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"daybreak/pkg/engine/world"
)

// Canvas is the dialogue UI toggled by an Interactor.
type Canvas interface {
	SetActive(on bool)
	ActiveSelf() bool
}

// Toggle is a component that can be switched on and off, such as the
// player's look control.
type Toggle interface {
	SetEnabled(on bool)
}

// Cursor controls the pointer's lock and visibility.
type Cursor interface {
	SetLocked(locked bool)
	SetVisible(visible bool)
}

// Logger receives player-facing messages.
type Logger interface {
	AddMessage(msg string)
}

// Interactor tracks whether the player is near one NPC and toggles that
// NPC's dialogue canvas on request.
type Interactor struct {
	Name    string
	Canvas  Canvas
	Look    Toggle
	Cursor  Cursor
	Log     Logger
	OnOpen  func() // Runs each time the canvas opens
	inRange bool
}

// NewInteractor creates an Interactor for the named NPC. Any collaborator
// may be nil.
func NewInteractor(name string, canvas Canvas, look Toggle, cursor Cursor, log Logger) *Interactor {
	if name == "" {
		name = "NPC"
	}
	return &Interactor{Name: name, Canvas: canvas, Look: look, Cursor: cursor, Log: log}
}

// Start hides the canvas and captures the cursor.
func (n *Interactor) Start() {
	if n.Canvas != nil {
		n.Canvas.SetActive(false)
	}
	n.captureCursor()
}

// Update toggles the canvas when the interact key was pressed this frame
// and the player is in range.
func (n *Interactor) Update(interactPressed bool) {
	if n.inRange && interactPressed {
		n.Toggle()
	}
}

// Toggle opens the canvas if it is closed and closes it if it is open.
// Opening disables the look control and frees the cursor.
func (n *Interactor) Toggle() {
	if n.Canvas == nil {
		return
	}
	wasOpen := n.Canvas.ActiveSelf()
	n.Canvas.SetActive(!wasOpen)

	if !wasOpen {
		if n.Look != nil {
			n.Look.SetEnabled(false)
		}
		if n.Cursor != nil {
			n.Cursor.SetLocked(false)
			n.Cursor.SetVisible(true)
		}
		if n.OnOpen != nil {
			n.OnOpen()
		}
		return
	}
	if n.Look != nil {
		n.Look.SetEnabled(true)
	}
	n.captureCursor()
}

// OnTriggerEnter marks the player as in range when other is the player.
func (n *Interactor) OnTriggerEnter(other string) {
	if other != world.TagPlayer {
		return
	}
	n.inRange = true
	n.log(fmt.Sprintf(gotext.Get("NPC_PLAYER_ENTERED"), n.Name))
}

// OnTriggerExit clears the range flag, closes the canvas and restores the
// look control and cursor when other is the player.
func (n *Interactor) OnTriggerExit(other string) {
	if other != world.TagPlayer {
		return
	}
	n.inRange = false
	if n.Canvas != nil {
		n.Canvas.SetActive(false)
	}
	if n.Look != nil {
		n.Look.SetEnabled(true)
	}
	n.captureCursor()
	n.log(fmt.Sprintf(gotext.Get("NPC_PLAYER_LEFT"), n.Name))
}

// InRange reports whether the player is inside this NPC's trigger.
func (n *Interactor) InRange() bool { return n.inRange }

// Open reports whether the dialogue canvas is showing.
func (n *Interactor) Open() bool {
	return n.Canvas != nil && n.Canvas.ActiveSelf()
}

func (n *Interactor) captureCursor() {
	if n.Cursor != nil {
		n.Cursor.SetLocked(true)
		n.Cursor.SetVisible(false)
	}
}

func (n *Interactor) log(msg string) {
	if n.Log != nil {
		n.Log.AddMessage(msg)
	}
}
