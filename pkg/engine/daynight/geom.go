package daynight

import (
	"image/color"
	"math"
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

// Len returns the vector length.
func (v Vec3) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalized returns v scaled to unit length, or the zero vector when v is
// too short to normalize.
func (v Vec3) Normalized() Vec3 {
	l := v.Len()
	if l < 1e-5 {
		return Vec3{}
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// Quat is a rotation quaternion (x, y, z vector part; w scalar part).
type Quat struct {
	X, Y, Z, W float64
}

// Identity is the no-op rotation.
var Identity = Quat{W: 1}

// AngleAxis returns a rotation of deg degrees around axis. A zero axis
// yields the identity rotation.
func AngleAxis(deg float64, axis Vec3) Quat {
	n := axis.Normalized()
	if n == (Vec3{}) {
		return Identity
	}
	half := deg * math.Pi / 360
	s := math.Sin(half)
	return Quat{X: n.X * s, Y: n.Y * s, Z: n.Z * s, W: math.Cos(half)}
}

// Mul composes two rotations: the result applies o first, then q.
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	p := Quat{X: v.X, Y: v.Y, Z: v.Z}
	inv := Quat{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
	r := q.Mul(p).Mul(inv)
	return Vec3{X: r.X, Y: r.Y, Z: r.Z}
}

// Forward returns the +Z axis rotated by q, the direction a light shines in.
func (q Quat) Forward() Vec3 {
	return q.Rotate(Vec3{Z: 1})
}

// RGB is a linear colour with components in [0,1].
type RGB struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
}

// White is full-intensity white.
var White = RGB{R: 1, G: 1, B: 1}

// Lerp blends c towards o by t.
func (c RGB) Lerp(o RGB, t float64) RGB {
	return RGB{
		R: lerp(c.R, o.R, t),
		G: lerp(c.G, o.G, t),
		B: lerp(c.B, o.B, t),
	}
}

// Scale multiplies every component by f.
func (c RGB) Scale(f float64) RGB {
	return RGB{R: c.R * f, G: c.G * f, B: c.B * f}
}

// RGBA converts c to an 8-bit opaque colour, clamping out-of-range values.
func (c RGB) RGBA() color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(clamp01(c.R) * 255)),
		G: uint8(math.Round(clamp01(c.G) * 255)),
		B: uint8(math.Round(clamp01(c.B) * 255)),
		A: 255,
	}
}
