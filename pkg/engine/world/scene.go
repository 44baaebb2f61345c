// Package world provides a minimal 2D scene: tagged objects with circular
// bounds, ray casts against them and trigger volumes. It stands in for the
// engine's physics scene so gameplay components can run outside an editor.
package world

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Standard object tags.
const (
	TagPlayer = "Player"
	TagPickup = "Pickup"
	TagNPC    = "NPC"
)

// Vec2 is a point or direction on the scene plane.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v*f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Normalized returns v with unit length, or the zero vector.
func (v Vec2) Normalized() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Object is a tagged thing placed in the scene.
type Object struct {
	ID     int
	Name   string
	Tag    string
	Pos    Vec2
	Radius float64 // Collision radius used by ray casts
	// TriggerRadius is the radius of the object's trigger volume; 0 means
	// the object has no trigger.
	TriggerRadius float64
	Item          *Item             // What a pickup yields
	Props         map[string]string // Free-form properties from the scene file

	active bool
}

// ActiveSelf reports whether the object is active.
func (o *Object) ActiveSelf() bool { return o.active }

// SetActive shows or hides the object. Inactive objects are ignored by ray
// casts and triggers.
func (o *Object) SetActive(on bool) { o.active = on }

// CompareTag reports whether the object carries tag.
func (o *Object) CompareTag(tag string) bool { return o.Tag == tag }

// Prop returns a property value or "" when unset.
func (o *Object) Prop(name string) string {
	if o.Props == nil {
		return ""
	}
	return o.Props[name]
}

// Hit describes a ray cast result.
type Hit struct {
	Object   *Object
	Distance float64
	Point    Vec2
}

// Scene holds every object and the trigger state.
type Scene struct {
	Width, Height float64

	objects []*Object
	nextID  int

	// inside tracks which trigger owners each subject currently overlaps.
	inside map[*Object]*mapset.Set[*Object]
}

// NewScene creates an empty scene of the given size.
func NewScene(width, height float64) *Scene {
	return &Scene{
		Width:  width,
		Height: height,
		nextID: 1,
		inside: make(map[*Object]*mapset.Set[*Object]),
	}
}

// Add places o in the scene, activates it and assigns an ID when it has none.
func (s *Scene) Add(o *Object) *Object {
	if o.ID == 0 {
		o.ID = s.nextID
	}
	if o.ID >= s.nextID {
		s.nextID = o.ID + 1
	}
	o.active = true
	s.objects = append(s.objects, o)
	return o
}

// Objects returns all objects in insertion order.
func (s *Scene) Objects() []*Object {
	return s.objects
}

// Each calls fn for every object.
func (s *Scene) Each(fn func(o *Object)) {
	for _, o := range s.objects {
		fn(o)
	}
}

// Find returns the first object with the given name.
func (s *Scene) Find(name string) *Object {
	for _, o := range s.objects {
		if o.Name == name {
			return o
		}
	}
	return nil
}

// WithTag returns every object carrying tag, active or not.
func (s *Scene) WithTag(tag string) []*Object {
	var out []*Object
	for _, o := range s.objects {
		if o.CompareTag(tag) {
			out = append(out, o)
		}
	}
	return out
}

// Raycast returns the nearest active object whose bounds the ray from origin
// along dir hits within maxDist. ignore (usually the caster) is skipped.
func (s *Scene) Raycast(origin, dir Vec2, maxDist float64, ignore *Object) (Hit, bool) {
	d := dir.Normalized()
	if d == (Vec2{}) {
		return Hit{}, false
	}

	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, o := range s.objects {
		if o == ignore || !o.active || o.Radius <= 0 {
			continue
		}
		dist, ok := rayCircle(origin, d, o.Pos, o.Radius)
		if !ok || dist > maxDist || dist >= best.Distance {
			continue
		}
		best = Hit{Object: o, Distance: dist, Point: origin.Add(d.Scale(dist))}
		found = true
	}
	return best, found
}

// rayCircle returns the distance along the unit ray to the first point on the
// circle, or 0 when the origin is inside it.
func rayCircle(origin, d, center Vec2, r float64) (float64, bool) {
	f := origin.Sub(center)
	c := f.Dot(f) - r*r
	if c <= 0 {
		return 0, true
	}
	b := f.Dot(d)
	if b > 0 {
		return 0, false
	}
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	return -b - math.Sqrt(disc), true
}

// UpdateTriggers recomputes which trigger volumes subject overlaps and
// returns the owners it entered and exited since the previous call.
func (s *Scene) UpdateTriggers(subject *Object) (entered, exited []*Object) {
	prev, ok := s.inside[subject]
	if !ok {
		set := mapset.New[*Object]()
		prev = &set
		s.inside[subject] = prev
	}

	now := mapset.New[*Object]()
	if subject.active {
		for _, o := range s.objects {
			if o == subject || !o.active || o.TriggerRadius <= 0 {
				continue
			}
			if subject.Pos.Sub(o.Pos).Len() <= o.TriggerRadius+subject.Radius {
				now.Put(o)
			}
		}
	}

	// Walk objects in scene order so callbacks fire deterministically.
	for _, o := range s.objects {
		switch {
		case now.Has(o) && !prev.Has(o):
			entered = append(entered, o)
		case !now.Has(o) && prev.Has(o):
			exited = append(exited, o)
		}
	}
	s.inside[subject] = &now
	return entered, exited
}
