package daynight

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// Keyframe is one control point of a Curve.
type Keyframe struct {
	Time  float64 `yaml:"t"`
	Value float64 `yaml:"v"`
}

// Curve is a piecewise-linear function over normalized time. Outside the
// first and last key the curve holds the end values, so sampling anywhere
// in [0,1] is defined. In YAML a curve is written as a list of {t, v} keys.
type Curve struct {
	keys []Keyframe
}

// NewCurve builds a curve from keys in any order.
func NewCurve(keys ...Keyframe) *Curve {
	sorted := make([]Keyframe, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return &Curve{keys: sorted}
}

// LinearCurve returns a straight line from (t0, v0) to (t1, v1).
func LinearCurve(t0, v0, t1, v1 float64) *Curve {
	return NewCurve(Keyframe{Time: t0, Value: v0}, Keyframe{Time: t1, Value: v1})
}

// ConstantCurve returns a curve that is v everywhere.
func ConstantCurve(v float64) *Curve {
	return LinearCurve(0, v, 1, v)
}

// Keys returns a copy of the curve's keys in time order.
func (c *Curve) Keys() []Keyframe {
	if c == nil {
		return nil
	}
	out := make([]Keyframe, len(c.keys))
	copy(out, c.keys)
	return out
}

// Sample evaluates the curve at t. ok is false for a nil or empty curve,
// which callers treat as "not configured".
func (c *Curve) Sample(t float64) (v float64, ok bool) {
	if c == nil || len(c.keys) == 0 {
		return 0, false
	}
	i, f := segment(len(c.keys), t, func(i int) float64 { return c.keys[i].Time })
	if f == 0 {
		return c.keys[i].Value, true
	}
	return lerp(c.keys[i].Value, c.keys[i+1].Value, f), true
}

// Evaluate is Sample without the ok flag; unset curves evaluate to 0.
func (c *Curve) Evaluate(t float64) float64 {
	v, _ := c.Sample(t)
	return v
}

// UnmarshalYAML decodes a list of keys and sorts them.
func (c *Curve) UnmarshalYAML(node *yaml.Node) error {
	var keys []Keyframe
	if err := node.Decode(&keys); err != nil {
		return fmt.Errorf("decode curve: %w", err)
	}
	*c = *NewCurve(keys...)
	return nil
}

// MarshalYAML encodes the curve as its key list.
func (c Curve) MarshalYAML() (interface{}, error) {
	return c.keys, nil
}

// GradientKey is one colour stop of a Gradient.
type GradientKey struct {
	Time  float64 `yaml:"t"`
	Color RGB     `yaml:"color"`
}

// Gradient blends linearly between colour stops over normalized time and
// holds the end colours outside the stop range.
type Gradient struct {
	keys []GradientKey
}

// NewGradient builds a gradient from stops in any order.
func NewGradient(keys ...GradientKey) *Gradient {
	sorted := make([]GradientKey, len(keys))
	copy(sorted, keys)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Time < sorted[j].Time })
	return &Gradient{keys: sorted}
}

// Sample evaluates the gradient at t. ok is false for a nil or empty gradient.
func (g *Gradient) Sample(t float64) (c RGB, ok bool) {
	if g == nil || len(g.keys) == 0 {
		return RGB{}, false
	}
	i, f := segment(len(g.keys), t, func(i int) float64 { return g.keys[i].Time })
	if f == 0 {
		return g.keys[i].Color, true
	}
	return g.keys[i].Color.Lerp(g.keys[i+1].Color, f), true
}

// Evaluate is Sample without the ok flag; unset gradients evaluate to black.
func (g *Gradient) Evaluate(t float64) RGB {
	c, _ := g.Sample(t)
	return c
}

// UnmarshalYAML decodes a list of stops and sorts them.
func (g *Gradient) UnmarshalYAML(node *yaml.Node) error {
	var keys []GradientKey
	if err := node.Decode(&keys); err != nil {
		return fmt.Errorf("decode gradient: %w", err)
	}
	*g = *NewGradient(keys...)
	return nil
}

// MarshalYAML encodes the gradient as its stop list.
func (g Gradient) MarshalYAML() (interface{}, error) {
	return g.keys, nil
}

// segment finds the key index i and blend factor f for t in a sorted key
// list of length n. f is 0 when t falls on or outside an end key.
func segment(n int, t float64, at func(int) float64) (i int, f float64) {
	if t <= at(0) {
		return 0, 0
	}
	if t >= at(n-1) {
		return n - 1, 0
	}
	i = sort.Search(n, func(k int) bool { return at(k) > t }) - 1
	span := at(i+1) - at(i)
	if span <= 0 {
		return i + 1, 0
	}
	return i, (t - at(i)) / span
}
