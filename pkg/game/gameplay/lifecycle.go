// Package gameplay wires the components into a running game and turns
// intents into actions.
package gameplay

import (
	"log"

	"github.com/leonelquinteros/gotext"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/engine/world"
	"daybreak/pkg/game/config"
	"daybreak/pkg/game/dialogue"
	"daybreak/pkg/game/npc"
	"daybreak/pkg/game/pickup"
	"daybreak/pkg/game/state"
)

// DefaultScene is used when no scene file is available: a small village
// with two villagers and a few things to collect.
func DefaultScene() *world.Scene {
	s := world.NewScene(24, 16)
	s.Add(&world.Object{Name: "player", Tag: world.TagPlayer, Pos: world.Vec2{X: 12, Y: 14}, Radius: 0.3})
	s.Add(&world.Object{Name: "keeper", Tag: world.TagNPC, Pos: world.Vec2{X: 12, Y: 5}, Radius: 0.5, TriggerRadius: 2.5,
		Props: map[string]string{world.PropDialogue: "keeper"}})
	s.Add(&world.Object{Name: "farmer", Tag: world.TagNPC, Pos: world.Vec2{X: 20, Y: 12}, Radius: 0.5, TriggerRadius: 2,
		Props: map[string]string{world.PropDialogue: "farmer"}})
	for _, p := range []struct {
		name, icon string
		pos        world.Vec2
	}{
		{"crystal", "icon_crystal", world.Vec2{X: 8, Y: 10}},
		{"crystal", "icon_crystal", world.Vec2{X: 5, Y: 4}},
		{"lantern", "icon_lantern", world.Vec2{X: 17, Y: 8}},
	} {
		s.Add(&world.Object{Name: p.name, Tag: world.TagPickup, Pos: p.pos, Radius: 0.4, Item: world.NewItem(p.name, p.icon)})
	}
	return s
}

// LoadScene loads path, falling back to DefaultScene when path is empty or
// cannot be read.
func LoadScene(path string) *world.Scene {
	if path == "" {
		return DefaultScene()
	}
	s, err := world.LoadTMX(path)
	if err != nil {
		log.Printf("[scene] %v (using built-in scene)", err)
		return DefaultScene()
	}
	return s
}

// BuildGame creates a game from cfg on top of scene and starts the cycle.
func BuildGame(cfg *config.Config, scene *world.Scene) *state.Game {
	if cfg == nil {
		cfg = config.Default()
	}
	if scene == nil {
		scene = DefaultScene()
	}

	g := state.NewGame()
	g.Scene = scene
	g.Player = findPlayer(scene)

	g.Dialogue = dialogue.NewManager(dialogue.Views{
		Panel:  g.HUD.DialoguePanel,
		Name:   g.HUD.Speaker,
		Body:   g.HUD.Body,
		Cursor: g.HUD.Cursor,
	})
	g.Dialogue.SetTextSpeed(cfg.TextSpeed)

	g.Picker = pickup.NewPicker(scene, g)
	g.Picker.Range = cfg.PickupRange
	g.Picker.Self = g.Player
	g.Picker.Counter = g.HUD.Counter
	g.Picker.OnCollect = func(obj *world.Object, _ int) { onCollect(g, obj) }

	setupNPCs(g, cfg)

	g.Cycle = daynight.New(cfg.Cycle, g.Sky.Rig())
	g.Cycle.OnPhaseChange(func(_, to daynight.Phase) { announcePhase(g, to) })
	g.Cycle.Init()

	say(g, gotext.Get("WELCOME"))
	return g
}

func findPlayer(scene *world.Scene) *world.Object {
	if players := scene.WithTag(world.TagPlayer); len(players) > 0 {
		return players[0]
	}
	return scene.Add(&world.Object{
		Name:   "player",
		Tag:    world.TagPlayer,
		Pos:    world.Vec2{X: scene.Width / 2, Y: scene.Height / 2},
		Radius: 0.3,
	})
}

func setupNPCs(g *state.Game, cfg *config.Config) {
	talk := &conversation{manager: g.Dialogue}
	for _, obj := range g.Scene.WithTag(world.TagNPC) {
		id := obj.Prop(world.PropDialogue)
		if id == "" {
			id = obj.Name
		}
		d, ok := cfg.Dialogue(id)
		if !ok {
			log.Printf("[npc] %q has no dialogue %q", obj.Name, id)
			d = dialogue.Dialogue{ID: id, Lines: []dialogue.Line{{Name: obj.Name, Text: "NPC_SILENT"}}}
		}

		canvas := &dialogueCanvas{talk: talk}
		canvas.trigger = dialogue.NewTrigger(g.Dialogue, d, func() {
			talk.closed(canvas)
			g.HUD.Look.SetEnabled(true)
		})

		n := &state.NPC{
			Object:     obj,
			Interactor: npc.NewInteractor(obj.Name, canvas, g.HUD.Look, g.HUD.Cursor, g),
			Trigger:    canvas.trigger,
		}
		n.Interactor.Start()
		g.NPCs = append(g.NPCs, n)
	}
}

// conversation records which NPC's canvas owns the dialogue manager.
type conversation struct {
	manager *dialogue.Manager
	active  *dialogueCanvas
}

func (c *conversation) closed(canvas *dialogueCanvas) {
	if c.active == canvas {
		c.active = nil
	}
}

// dialogueCanvas presents the shared dialogue panel as one NPC's canvas.
type dialogueCanvas struct {
	talk    *conversation
	trigger *dialogue.Trigger
}

func (c *dialogueCanvas) SetActive(on bool) {
	switch {
	case on && !c.ActiveSelf():
		c.talk.active = c
		c.trigger.Start()
	case !on && c.ActiveSelf():
		c.talk.manager.EndDialogue()
	}
}

func (c *dialogueCanvas) ActiveSelf() bool {
	return c.talk.active == c && c.talk.manager.IsOngoing()
}

// say appends a translated line to the message log.
func say(g *state.Game, msg string) {
	g.AddMessage(msg)
}
