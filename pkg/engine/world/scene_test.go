package world

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func TestRaycast_NearestActiveHit(t *testing.T) {
	s := NewScene(20, 20)
	player := s.Add(&Object{Name: "player", Tag: TagPlayer, Pos: Vec2{0, 0}, Radius: 0.3})
	far := s.Add(&Object{Name: "far", Tag: TagPickup, Pos: Vec2{4, 0}, Radius: 0.5})
	near := s.Add(&Object{Name: "near", Tag: TagPickup, Pos: Vec2{2, 0}, Radius: 0.5})

	hit, ok := s.Raycast(player.Pos, Vec2{1, 0}, 5, player)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.Object != near {
		t.Errorf("hit %s, want near", hit.Object.Name)
	}
	if math.Abs(hit.Distance-1.5) > 1e-9 {
		t.Errorf("distance = %v, want 1.5", hit.Distance)
	}

	near.SetActive(false)
	hit, ok = s.Raycast(player.Pos, Vec2{1, 0}, 5, player)
	if !ok || hit.Object != far {
		t.Errorf("with near inactive got %v, %v; want far", hit.Object, ok)
	}
}

func TestRaycast_RangeAndDirection(t *testing.T) {
	s := NewScene(20, 20)
	s.Add(&Object{Name: "box", Tag: TagPickup, Pos: Vec2{8, 0}, Radius: 0.5})

	if _, ok := s.Raycast(Vec2{}, Vec2{1, 0}, 5, nil); ok {
		t.Error("hit beyond max distance")
	}
	if _, ok := s.Raycast(Vec2{}, Vec2{-1, 0}, 50, nil); ok {
		t.Error("hit behind the ray")
	}
	if _, ok := s.Raycast(Vec2{}, Vec2{}, 50, nil); ok {
		t.Error("zero direction should never hit")
	}
	if _, ok := s.Raycast(Vec2{}, Vec2{1, 0}, 10, nil); !ok {
		t.Error("expected hit within range")
	}
}

func TestUpdateTriggers_EnterAndExit(t *testing.T) {
	s := NewScene(20, 20)
	npc := s.Add(&Object{Name: "guard", Tag: TagNPC, Pos: Vec2{5, 5}, Radius: 0.5, TriggerRadius: 2})
	player := s.Add(&Object{Name: "player", Tag: TagPlayer, Pos: Vec2{0, 0}, Radius: 0.3})

	if in, out := s.UpdateTriggers(player); len(in) != 0 || len(out) != 0 {
		t.Fatalf("far away: entered %d exited %d", len(in), len(out))
	}

	player.Pos = Vec2{4, 5}
	in, out := s.UpdateTriggers(player)
	if len(in) != 1 || in[0] != npc || len(out) != 0 {
		t.Fatalf("walking in: entered %v exited %v", in, out)
	}

	// Staying inside fires nothing.
	if in, out := s.UpdateTriggers(player); len(in) != 0 || len(out) != 0 {
		t.Errorf("staying: entered %d exited %d", len(in), len(out))
	}

	player.Pos = Vec2{0, 0}
	in, out = s.UpdateTriggers(player)
	if len(out) != 1 || out[0] != npc || len(in) != 0 {
		t.Errorf("walking out: entered %v exited %v", in, out)
	}
}

func TestUpdateTriggers_DeactivatedOwnerExits(t *testing.T) {
	s := NewScene(10, 10)
	npc := s.Add(&Object{Name: "npc", Tag: TagNPC, Pos: Vec2{1, 1}, TriggerRadius: 2})
	player := s.Add(&Object{Name: "player", Tag: TagPlayer, Pos: Vec2{1, 2}})

	s.UpdateTriggers(player)
	npc.SetActive(false)
	_, out := s.UpdateTriggers(player)
	if len(out) != 1 || out[0] != npc {
		t.Errorf("exited = %v, want npc", out)
	}
}

func TestSceneLookups(t *testing.T) {
	s := NewScene(10, 10)
	a := s.Add(&Object{Name: "a", Tag: TagPickup})
	s.Add(&Object{Name: "b", Tag: TagNPC})
	c := s.Add(&Object{ID: 10, Name: "c", Tag: TagPickup})
	d := s.Add(&Object{Name: "d"})

	if s.Find("c") != c {
		t.Error("Find(c) failed")
	}
	if s.Find("zz") != nil {
		t.Error("Find(zz) should be nil")
	}
	if got := s.WithTag(TagPickup); len(got) != 2 || got[0] != a || got[1] != c {
		t.Errorf("WithTag(Pickup) = %v", got)
	}
	if d.ID != 11 {
		t.Errorf("ID after explicit 10 = %d, want 11", d.ID)
	}
	if !a.ActiveSelf() {
		t.Error("added objects should be active")
	}
}

func TestCountByName(t *testing.T) {
	set := mapset.New[*Item]()
	set.Put(NewItem("gem", ""))
	set.Put(NewItem("gem", ""))
	set.Put(NewItem("key", ""))
	counts := CountByName(set)
	if counts["gem"] != 2 || counts["key"] != 1 {
		t.Errorf("counts = %v", counts)
	}
}

const sampleTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="20" height="15" tilewidth="16" tileheight="16" infinite="0" nextlayerid="2" nextobjectid="4">
 <objectgroup id="1" name="objects">
  <object id="1" name="player" type="Player" x="24" y="24" width="16" height="16"/>
  <object id="2" name="crystal" x="72" y="24" width="16" height="16">
   <properties>
    <property name="tag" value="Pickup"/>
    <property name="icon" value="icon_crystal"/>
   </properties>
  </object>
  <object id="3" name="keeper" type="NPC" x="120" y="56" width="16" height="16">
   <properties>
    <property name="trigger" value="2.5"/>
    <property name="dialogue" value="keeper"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

func TestLoadTMX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scene.tmx")
	if err := os.WriteFile(path, []byte(sampleTMX), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := LoadTMX(path)
	if err != nil {
		t.Fatalf("LoadTMX: %v", err)
	}
	if s.Width != 20 || s.Height != 15 {
		t.Errorf("size = %vx%v, want 20x15", s.Width, s.Height)
	}

	player := s.Find("player")
	if player == nil || !player.CompareTag(TagPlayer) {
		t.Fatalf("player = %+v", player)
	}
	if player.Pos != (Vec2{2, 2}) {
		t.Errorf("player pos = %v, want {2 2}", player.Pos)
	}

	crystal := s.Find("crystal")
	if crystal == nil || !crystal.CompareTag(TagPickup) {
		t.Fatalf("crystal = %+v", crystal)
	}
	if crystal.Item == nil || crystal.Item.Name != "crystal" || crystal.Item.Icon != "icon_crystal" {
		t.Errorf("crystal item = %+v", crystal.Item)
	}

	keeper := s.Find("keeper")
	if keeper == nil || keeper.TriggerRadius != 2.5 || keeper.Prop(PropDialogue) != "keeper" {
		t.Errorf("keeper = %+v", keeper)
	}
}

func TestLoadTMX_MissingFile(t *testing.T) {
	if _, err := LoadTMX(filepath.Join(t.TempDir(), "nope.tmx")); err == nil {
		t.Error("expected an error for a missing file")
	}
}
