package world

import (
	"fmt"
	"strconv"

	"github.com/lafriks/go-tiled"
)

// Scene file property names.
const (
	PropTag      = "tag"
	PropRadius   = "radius"
	PropTrigger  = "trigger"
	PropItem     = "item"
	PropIcon     = "icon"
	PropDialogue = "dialogue"
)

// LoadTMX builds a scene from a Tiled map. Every object in every object
// group becomes a scene object; positions are converted from pixels to
// tiles. The tag comes from a "tag" property, falling back to the Tiled
// object type.
func LoadTMX(path string) (*Scene, error) {
	m, err := tiled.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", path, err)
	}
	return sceneFromMap(m)
}

func sceneFromMap(m *tiled.Map) (*Scene, error) {
	tw, th := float64(m.TileWidth), float64(m.TileHeight)
	if tw <= 0 || th <= 0 {
		return nil, fmt.Errorf("invalid tile size %vx%v", tw, th)
	}

	s := NewScene(float64(m.Width), float64(m.Height))
	for _, group := range m.ObjectGroups {
		for _, obj := range group.Objects {
			o, err := objectFromTiled(obj, tw, th)
			if err != nil {
				return nil, fmt.Errorf("object %d (%s) in %q: %w", obj.ID, obj.Name, group.Name, err)
			}
			s.Add(o)
		}
	}
	return s, nil
}

func objectFromTiled(obj *tiled.Object, tw, th float64) (*Object, error) {
	props := make(map[string]string, len(obj.Properties))
	for _, p := range obj.Properties {
		props[p.Name] = p.Value
	}

	tag := obj.Properties.GetString(PropTag)
	if tag == "" {
		tag = obj.Type
	}

	// Tiled anchors rectangles at the top-left corner; objects sit at the
	// centre of their box.
	pos := Vec2{X: (obj.X + obj.Width/2) / tw, Y: (obj.Y + obj.Height/2) / th}

	radius := 0.4
	if v := props[PropRadius]; v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("radius: %w", err)
		}
		radius = r
	}

	var trigger float64
	if v := props[PropTrigger]; v != "" {
		r, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("trigger: %w", err)
		}
		trigger = r
	}

	o := &Object{
		ID:            int(obj.ID),
		Name:          obj.Name,
		Tag:           tag,
		Pos:           pos,
		Radius:        radius,
		TriggerRadius: trigger,
		Props:         props,
	}
	if name := props[PropItem]; name != "" {
		o.Item = NewItem(name, props[PropIcon])
	} else if tag == TagPickup {
		o.Item = NewItem(obj.Name, props[PropIcon])
	}
	return o, nil
}
