package renderer

import (
	"fmt"
	"io"
	"log"
	"os"
	"testing"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/engine/world"
	"daybreak/pkg/game/config"
	"daybreak/pkg/game/gameplay"
	"daybreak/pkg/game/locale"
	"daybreak/pkg/game/state"
)

func TestMain(m *testing.M) {
	locale.MustLoadDefault()
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestMarkup(t *testing.T) {
	segs := Markup(fmt.Sprintf("Picked up ITEM{%s} from NPC{Keeper}. Press ACTION{Quit}.", "crystal"))

	want := []Segment{
		{Text: "Picked up "},
		{Text: "crystal", Style: StyleItem},
		{Text: " from "},
		{Text: "Keeper", Style: StyleNPC},
		{Text: ". Press "},
		{Text: "Q", Style: StyleActionShort},
		{Text: "uit", Style: StyleAction},
		{Text: "."},
	}
	if len(segs) != len(want) {
		t.Fatalf("segments = %+v", segs)
	}
	for i := range want {
		if segs[i] != want[i] {
			t.Errorf("segment %d = %+v, want %+v", i, segs[i], want[i])
		}
	}
}

func TestMarkup_TranslatesAndKeepsUnknown(t *testing.T) {
	got := Plain(Markup("GT{PHASE_night} BOGUS{x}"))
	if got != "night BOGUS{x}" {
		t.Errorf("Plain = %q", got)
	}
	if got := Plain(Markup("100% plain")); got != "100% plain" {
		t.Errorf("plain message was altered: %q", got)
	}
}

func newGame(t *testing.T) *state.Game {
	t.Helper()
	s := world.NewScene(10, 10)
	s.Add(&world.Object{Name: "player", Tag: world.TagPlayer, Pos: world.Vec2{X: 5, Y: 5}, Radius: 0.3})
	s.Add(&world.Object{Name: "gem", Tag: world.TagPickup, Pos: world.Vec2{X: 5, Y: 3}, Radius: 0.4,
		Item: world.NewItem("gem", "icon_gem")})
	s.Add(&world.Object{Name: "keeper", Tag: world.TagNPC, Pos: world.Vec2{X: 8, Y: 5}, Radius: 0.5,
		TriggerRadius: 1.5, Props: map[string]string{world.PropDialogue: "keeper"}})
	return gameplay.BuildGame(config.Default(), s)
}

func TestSnapshot(t *testing.T) {
	g := newGame(t)
	v := Snapshot(g)

	if v.Phase != daynight.PhaseSunrise || v.Night {
		t.Errorf("phase = %s night=%v", v.Phase, v.Night)
	}
	if v.Width != 10 || v.Height != 10 {
		t.Errorf("size = %vx%v", v.Width, v.Height)
	}
	if v.Player.Name != "player" {
		t.Errorf("player = %+v", v.Player)
	}
	if len(v.Markers) != 2 {
		t.Fatalf("markers = %+v", v.Markers)
	}
	if v.Target != "gem" || !v.Markers[0].Targeted {
		t.Errorf("target = %q, markers = %+v", v.Target, v.Markers)
	}
	if v.DialogueOpen || !v.LookEnabled || !v.CursorLocked {
		t.Errorf("hud = open:%v look:%v locked:%v", v.DialogueOpen, v.LookEnabled, v.CursorLocked)
	}
	if v.Status == "" {
		t.Error("empty status")
	}
}

func TestSnapshot_AfterGrab(t *testing.T) {
	g := newGame(t)
	gameplay.Grab(g)
	v := Snapshot(g)

	if v.Target != "" {
		t.Errorf("collected gem still targeted")
	}
	if len(v.Markers) != 1 || v.Markers[0].Name != "keeper" {
		t.Errorf("markers = %+v", v.Markers)
	}
	if len(v.Slots) != 1 || v.Slots[0].Icon != "icon_gem" || v.Slots[0].Count != "x1" {
		t.Errorf("slots = %+v", v.Slots)
	}
	if v.Counter != "Collected: 1" {
		t.Errorf("counter = %q", v.Counter)
	}
}

func TestSnapshot_NPCInRange(t *testing.T) {
	g := newGame(t)
	g.Player.Pos = world.Vec2{X: 7, Y: 5}
	gameplay.UpdateTriggers(g)

	v := Snapshot(g)
	var keeper Marker
	for _, m := range v.Markers {
		if m.Name == "keeper" {
			keeper = m
		}
	}
	if !keeper.InRange {
		t.Errorf("keeper = %+v, want in range", keeper)
	}
}

func TestSnapshot_IsACopy(t *testing.T) {
	g := newGame(t)
	g.AddMessage("one")
	v := Snapshot(g)
	g.AddMessage("two")
	if v.Messages[len(v.Messages)-1] != "one" {
		t.Errorf("snapshot messages changed: %v", v.Messages)
	}
}
