package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"daybreak/pkg/engine/world"
	"daybreak/pkg/game/inventory"
	"daybreak/pkg/game/locale"
	"daybreak/pkg/game/state"
)

// Interact talks to the nearest NPC whose trigger the player is inside.
func Interact(g *state.Game) bool {
	n := g.NearestNPCInRange()
	if n == nil {
		say(g, gotext.Get("NOTHING_TO_TALK_TO"))
		return false
	}
	n.Interactor.Update(true)
	return true
}

// Grab collects the pickup the player is facing.
func Grab(g *state.Game) bool {
	if g.Picker == nil {
		return false
	}
	if g.Picker.Grab() == nil {
		say(g, gotext.Get("NOTHING_TO_GRAB"))
		return false
	}
	return true
}

// onCollect records a collected object's item and bumps its slot.
func onCollect(g *state.Game, obj *world.Object) {
	item := obj.Item
	if item == nil {
		item = world.NewItem(obj.Name, obj.Prop(world.PropIcon))
	}
	g.PickUpItem(item)
	slotFor(g, item).Add(1)
	say(g, fmt.Sprintf(gotext.Get("COLLECTED_ITEM"), locale.Text(item.Name)))
}

// slotFor returns the inventory slot for item, adding one on first pickup.
func slotFor(g *state.Game, item *world.Item) *inventory.Slot {
	if s, ok := g.Slots[item.Name]; ok {
		return s
	}
	v := g.HUD.AddSlot()
	s := inventory.NewSlot(v.Icon, v.Count, v.Label)
	s.SetIcon(item.Icon)
	s.SetLabel(locale.Text(item.Name))
	s.SetCount(0)
	g.Slots[item.Name] = s
	g.SlotOrder = append(g.SlotOrder, item.Name)
	return s
}

// UpdateTriggers forwards trigger enter/exit events between the player and
// NPCs.
func UpdateTriggers(g *state.Game) {
	if g.Scene == nil || g.Player == nil {
		return
	}
	entered, exited := g.Scene.UpdateTriggers(g.Player)
	for _, obj := range entered {
		if n := g.NPCFor(obj); n != nil {
			n.Interactor.OnTriggerEnter(g.Player.Tag)
			ShowNPCHint(g, n)
		}
	}
	for _, obj := range exited {
		if n := g.NPCFor(obj); n != nil {
			n.Interactor.OnTriggerExit(g.Player.Tag)
		}
	}
}
