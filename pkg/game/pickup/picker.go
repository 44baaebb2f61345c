// Package pickup collects objects the player is looking at.
package pickup

import (
	"fmt"
	"log"

	"github.com/leonelquinteros/gotext"

	"daybreak/pkg/engine/world"
)

// DefaultRange is how far away an object can be grabbed.
const DefaultRange = 5.0

// Raycaster finds the nearest object along a ray.
type Raycaster interface {
	Raycast(origin, dir world.Vec2, maxDist float64, ignore *world.Object) (world.Hit, bool)
}

// Viewpoint is where the player looks from.
type Viewpoint interface {
	Position() world.Vec2
	Forward() world.Vec2
}

// TextView displays a single string.
type TextView interface {
	SetText(s string)
}

// Picker grabs Pickup-tagged objects in front of the player.
type Picker struct {
	Range   float64
	Counter TextView // Optional collected-count display
	Self    *world.Object

	// OnCollect runs after an object has been collected.
	OnCollect func(obj *world.Object, count int)

	physics Raycaster
	view    Viewpoint
	count   int
}

// NewPicker creates a Picker with DefaultRange.
func NewPicker(physics Raycaster, view Viewpoint) *Picker {
	return &Picker{Range: DefaultRange, physics: physics, view: view}
}

// Update tries a grab when the grab key was pressed this frame.
func (p *Picker) Update(grabPressed bool) {
	if grabPressed {
		p.Grab()
	}
}

// Grab casts from the viewpoint and collects the hit object if it is a
// pickup. It returns the collected object, or nil.
func (p *Picker) Grab() *world.Object {
	if p.physics == nil || p.view == nil {
		return nil
	}
	hit, ok := p.physics.Raycast(p.view.Position(), p.view.Forward(), p.Range, p.Self)
	if !ok || hit.Object == nil || !hit.Object.CompareTag(world.TagPickup) {
		return nil
	}
	p.collect(hit.Object)
	return hit.Object
}

func (p *Picker) collect(obj *world.Object) {
	p.count++
	log.Printf("[pickup] collected %q (%d)", obj.Name, p.count)
	if p.Counter != nil {
		p.Counter.SetText(fmt.Sprintf(gotext.Get("COLLECTED_COUNT"), p.count))
	}
	obj.SetActive(false)
	if p.OnCollect != nil {
		p.OnCollect(obj, p.count)
	}
}

// Count returns how many objects have been collected.
func (p *Picker) Count() int { return p.count }
