package pickup

import (
	"io"
	"log"
	"os"
	"testing"

	"daybreak/pkg/engine/world"
	"daybreak/pkg/game/locale"
)

func TestMain(m *testing.M) {
	locale.MustLoadDefault()
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

type fakeView struct {
	pos, fwd world.Vec2
}

func (v fakeView) Position() world.Vec2 { return v.pos }
func (v fakeView) Forward() world.Vec2  { return v.fwd }

type fakeText struct{ text string }

func (t *fakeText) SetText(s string) { t.text = s }

func newScene(t *testing.T) (*world.Scene, *world.Object) {
	t.Helper()
	s := world.NewScene(20, 20)
	player := s.Add(&world.Object{Name: "player", Tag: world.TagPlayer, Radius: 0.3})
	return s, player
}

func TestGrab_CollectsPickupInRange(t *testing.T) {
	s, player := newScene(t)
	gem := s.Add(&world.Object{Name: "gem", Tag: world.TagPickup, Pos: world.Vec2{X: 3}, Radius: 0.5})

	counter := &fakeText{}
	p := NewPicker(s, fakeView{fwd: world.Vec2{X: 1}})
	p.Self = player
	p.Counter = counter

	var collected []string
	p.OnCollect = func(o *world.Object, n int) { collected = append(collected, o.Name) }

	p.Update(false)
	if p.Count() != 0 {
		t.Fatal("collected without pressing grab")
	}

	p.Update(true)
	if p.Count() != 1 || gem.ActiveSelf() {
		t.Errorf("count=%d active=%v, want 1 false", p.Count(), gem.ActiveSelf())
	}
	if counter.text != "Collected: 1" {
		t.Errorf("counter = %q", counter.text)
	}
	if len(collected) != 1 || collected[0] != "gem" {
		t.Errorf("OnCollect saw %v", collected)
	}

	// The gem is gone now; a second grab finds nothing.
	if got := p.Grab(); got != nil {
		t.Errorf("second grab collected %s", got.Name)
	}
	if p.Count() != 1 {
		t.Errorf("count = %d after empty grab", p.Count())
	}
}

func TestGrab_IgnoresUntaggedAndFar(t *testing.T) {
	s, player := newScene(t)
	s.Add(&world.Object{Name: "rock", Tag: "Untagged", Pos: world.Vec2{X: 2}, Radius: 0.5})
	far := s.Add(&world.Object{Name: "gem", Tag: world.TagPickup, Pos: world.Vec2{Y: 9}, Radius: 0.5})

	p := NewPicker(s, fakeView{fwd: world.Vec2{X: 1}})
	p.Self = player
	if p.Grab() != nil {
		t.Error("grabbed a non-pickup")
	}

	p = NewPicker(s, fakeView{fwd: world.Vec2{Y: 1}})
	p.Self = player
	if p.Grab() != nil {
		t.Error("grabbed beyond range")
	}
	p.Range = 10
	if p.Grab() != far {
		t.Error("expected to grab the far gem with a longer range")
	}
}

func TestGrab_BlockedByNearerObject(t *testing.T) {
	s, player := newScene(t)
	s.Add(&world.Object{Name: "wall", Tag: "Untagged", Pos: world.Vec2{X: 1.5}, Radius: 0.5})
	gem := s.Add(&world.Object{Name: "gem", Tag: world.TagPickup, Pos: world.Vec2{X: 3}, Radius: 0.5})

	p := NewPicker(s, fakeView{fwd: world.Vec2{X: 1}})
	p.Self = player
	if p.Grab() != nil || !gem.ActiveSelf() {
		t.Error("grabbed through an obstruction")
	}
}

func TestGrab_NoCollaborators(t *testing.T) {
	p := NewPicker(nil, nil)
	if p.Grab() != nil {
		t.Error("grab without physics returned an object")
	}
}
