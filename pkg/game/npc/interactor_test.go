package npc

import (
	"os"
	"testing"

	"daybreak/pkg/engine/world"
	"daybreak/pkg/game/locale"
)

func TestMain(m *testing.M) {
	locale.MustLoadDefault()
	os.Exit(m.Run())
}

type fakeCanvas struct{ active bool }

func (c *fakeCanvas) SetActive(on bool) { c.active = on }
func (c *fakeCanvas) ActiveSelf() bool  { return c.active }

type fakeToggle struct{ enabled bool }

func (t *fakeToggle) SetEnabled(on bool) { t.enabled = on }

type fakeCursor struct{ locked, visible bool }

func (c *fakeCursor) SetLocked(l bool)  { c.locked = l }
func (c *fakeCursor) SetVisible(v bool) { c.visible = v }

type fakeLog struct{ msgs []string }

func (l *fakeLog) AddMessage(m string) { l.msgs = append(l.msgs, m) }

type npcRig struct {
	canvas *fakeCanvas
	look   *fakeToggle
	cursor *fakeCursor
	log    *fakeLog
	n      *Interactor
}

func newNPC(t *testing.T) *npcRig {
	t.Helper()
	r := &npcRig{
		canvas: &fakeCanvas{active: true},
		look:   &fakeToggle{enabled: true},
		cursor: &fakeCursor{visible: true},
		log:    &fakeLog{},
	}
	r.n = NewInteractor("Keeper", r.canvas, r.look, r.cursor, r.log)
	r.n.Start()
	return r
}

func TestStart_HidesCanvasAndCapturesCursor(t *testing.T) {
	r := newNPC(t)
	if r.canvas.active {
		t.Error("canvas should be hidden after Start")
	}
	if !r.cursor.locked || r.cursor.visible {
		t.Errorf("cursor locked=%v visible=%v", r.cursor.locked, r.cursor.visible)
	}
}

func TestUpdate_OutOfRangeIgnoresKey(t *testing.T) {
	r := newNPC(t)
	r.n.Update(true)
	if r.canvas.active {
		t.Error("canvas opened while out of range")
	}
}

func TestUpdate_TogglesInRange(t *testing.T) {
	r := newNPC(t)
	opened := 0
	r.n.OnOpen = func() { opened++ }

	r.n.OnTriggerEnter(world.TagPlayer)
	if !r.n.InRange() {
		t.Fatal("player should be in range")
	}

	r.n.Update(false)
	if r.canvas.active {
		t.Fatal("canvas opened without the key")
	}

	r.n.Update(true)
	if !r.canvas.active || r.look.enabled || r.cursor.locked || !r.cursor.visible {
		t.Errorf("open: canvas=%v look=%v cursor=%+v", r.canvas.active, r.look.enabled, r.cursor)
	}
	if opened != 1 {
		t.Errorf("OnOpen ran %d times, want 1", opened)
	}

	r.n.Update(true)
	if r.canvas.active || !r.look.enabled || !r.cursor.locked || r.cursor.visible {
		t.Errorf("close: canvas=%v look=%v cursor=%+v", r.canvas.active, r.look.enabled, r.cursor)
	}
}

func TestOnTriggerExit_RestoresEverything(t *testing.T) {
	r := newNPC(t)
	r.n.OnTriggerEnter(world.TagPlayer)
	r.n.Update(true)
	r.n.OnTriggerExit(world.TagPlayer)

	if r.n.InRange() || r.canvas.active || !r.look.enabled || !r.cursor.locked || r.cursor.visible {
		t.Errorf("after exit: range=%v canvas=%v look=%v cursor=%+v",
			r.n.InRange(), r.canvas.active, r.look.enabled, r.cursor)
	}

	want := []string{"Keeper: Player entered range.", "Keeper: Player left range."}
	if len(r.log.msgs) != len(want) {
		t.Fatalf("log = %q, want %q", r.log.msgs, want)
	}
	for i := range want {
		if r.log.msgs[i] != want[i] {
			t.Errorf("log[%d] = %q, want %q", i, r.log.msgs[i], want[i])
		}
	}
}

func TestTriggers_IgnoreOtherTags(t *testing.T) {
	r := newNPC(t)
	r.n.OnTriggerEnter(world.TagPickup)
	if r.n.InRange() {
		t.Error("non-player entered range")
	}
	r.n.OnTriggerEnter(world.TagPlayer)
	r.n.OnTriggerExit("Enemy")
	if !r.n.InRange() {
		t.Error("non-player exit cleared range")
	}
	if len(r.log.msgs) != 1 {
		t.Errorf("log = %q, want one entry", r.log.msgs)
	}
}

func TestNilCollaborators(t *testing.T) {
	n := NewInteractor("", nil, nil, nil, nil)
	if n.Name != "NPC" {
		t.Errorf("default name = %q", n.Name)
	}
	n.Start()
	n.OnTriggerEnter(world.TagPlayer)
	n.Update(true)
	n.OnTriggerExit(world.TagPlayer)
	if n.Open() {
		t.Error("Open with no canvas")
	}
}
