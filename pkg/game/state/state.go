package state

import (
	"github.com/zyedidia/generic/mapset"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/engine/world"
	"daybreak/pkg/game/dialogue"
	"daybreak/pkg/game/inventory"
	"daybreak/pkg/game/npc"
	"daybreak/pkg/game/pickup"
	"daybreak/pkg/game/ui"
)

// NPC is a character the player can talk to.
type NPC struct {
	Object     *world.Object
	Interactor *npc.Interactor
	Trigger    *dialogue.Trigger
}

// Game represents the game state for Daybreak
type Game struct {
	Cycle    *daynight.Cycle
	Dialogue *dialogue.Manager
	Picker   *pickup.Picker
	NPCs     []*NPC

	// Slots holds one inventory slot per item name, in pickup order.
	Slots     map[string]*inventory.Slot
	SlotOrder []string

	Scene  *world.Scene
	Player *world.Object
	Facing world.Vec2 // Unit direction the player looks in

	Sky *ui.Sky
	HUD *ui.HUD

	OwnedItems world.ItemSet

	Messages   []string
	HintsShown int

	// Console runs developer commands; nil when devtools are off.
	Console     Console
	ConsoleOpen bool
	ConsoleLine string

	Quit bool
}

// Console executes one line of developer input and returns its output.
type Console interface {
	Execute(line string) string
}

// NewGame creates a new game instance
func NewGame() *Game {
	return &Game{
		Slots:      make(map[string]*inventory.Slot),
		OwnedItems: mapset.New[*world.Item](),
		Messages:   make([]string, 0),
		Facing:     world.Vec2{Y: -1},
		Sky:        ui.NewSky(),
		HUD:        ui.NewHUD(),
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// PickUpItem adds an item to the player's inventory
func (g *Game) PickUpItem(item *world.Item) {
	g.OwnedItems.Put(item)
}

// HasItem checks if the player has a specific item
func (g *Game) HasItem(item *world.Item) bool {
	return g.OwnedItems.Has(item)
}

// Position implements pickup.Viewpoint.
func (g *Game) Position() world.Vec2 {
	if g.Player == nil {
		return world.Vec2{}
	}
	return g.Player.Pos
}

// Forward implements pickup.Viewpoint.
func (g *Game) Forward() world.Vec2 {
	return g.Facing
}

// NearestNPCInRange returns the closest NPC whose trigger the player is
// inside, or nil.
func (g *Game) NearestNPCInRange() *NPC {
	var best *NPC
	bestDist := 0.0
	for _, n := range g.NPCs {
		if !n.Interactor.InRange() {
			continue
		}
		d := n.Object.Pos.Sub(g.Position()).Len()
		if best == nil || d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}

// NPCFor returns the NPC owning obj, or nil.
func (g *Game) NPCFor(obj *world.Object) *NPC {
	for _, n := range g.NPCs {
		if n.Object == obj {
			return n
		}
	}
	return nil
}
