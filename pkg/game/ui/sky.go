package ui

import (
	"image/color"
	"math"

	"daybreak/pkg/engine/daynight"
)

// Light is a directional light as the hosts see it.
type Light struct {
	Orientation daynight.Quat
	Color       daynight.RGB
	Intensity   float64
	Enabled     bool
	SoftShadows bool
}

// SetOrientation implements daynight.LightController.
func (l *Light) SetOrientation(q daynight.Quat) { l.Orientation = q }

// SetColor implements daynight.LightController.
func (l *Light) SetColor(c daynight.RGB) { l.Color = c }

// SetIntensity implements daynight.LightController.
func (l *Light) SetIntensity(v float64) { l.Intensity = v }

// SetEnabled implements daynight.LightController.
func (l *Light) SetEnabled(on bool) { l.Enabled = on }

// SetSoftShadows implements daynight.ShadowController.
func (l *Light) SetSoftShadows() { l.SoftShadows = true }

// Elevation returns how high the light sits above the horizon, from -1
// (directly below) to 1 (overhead).
func (l *Light) Elevation() float64 {
	// Lights shine along their forward vector, so a light overhead points
	// down (-Y).
	return -l.Orientation.Forward().Y
}

// Environment holds fog and ambient settings.
type Environment struct {
	FogEnabled       bool
	FogMode          daynight.FogMode
	FogColor         daynight.RGB
	Density          float64
	AmbientIntensity float64
}

// SetFogEnabled implements daynight.EnvironmentController.
func (e *Environment) SetFogEnabled(on bool) { e.FogEnabled = on }

// SetFogMode implements daynight.EnvironmentController.
func (e *Environment) SetFogMode(m daynight.FogMode) { e.FogMode = m }

// SetFogColor implements daynight.EnvironmentController.
func (e *Environment) SetFogColor(c daynight.RGB) { e.FogColor = c }

// SetFogDensity implements daynight.EnvironmentController.
func (e *Environment) SetFogDensity(d float64) { e.Density = d }

// FogDensity implements daynight.EnvironmentController.
func (e *Environment) FogDensity() float64 { return e.Density }

// SetAmbientIntensity implements daynight.EnvironmentController.
func (e *Environment) SetAmbientIntensity(v float64) { e.AmbientIntensity = v }

// PostProcess holds the colour grading exposure.
type PostProcess struct {
	Exposure float64
}

// SetExposure implements daynight.PostProcessController.
func (p *PostProcess) SetExposure(ev float64) { p.Exposure = ev }

// Skybox tracks the active sky material.
type Skybox struct {
	Active   daynight.Skybox
	Switches int // How many times the material was set
}

// SetActiveMaterial implements daynight.SkyboxController.
func (s *Skybox) SetActiveMaterial(m daynight.Skybox) {
	s.Active = m
	s.Switches++
}

// Sky is the full lighting state driven by a daynight.Cycle.
type Sky struct {
	Sun    *Light
	Moon   *Light
	Env    *Environment
	Post   *PostProcess
	Skybox *Skybox
}

// NewSky creates lighting state with a full-strength ambient term and an
// unset fog density.
func NewSky() *Sky {
	return &Sky{
		Sun:    &Light{Enabled: true, Color: daynight.White, Intensity: 1},
		Moon:   &Light{Color: daynight.RGB{R: 0.6, G: 0.7, B: 1}},
		Env:    &Environment{AmbientIntensity: 1, Density: 0.01},
		Post:   &PostProcess{},
		Skybox: &Skybox{},
	}
}

// Rig wires the state into a daynight.Rig.
func (s *Sky) Rig() daynight.Rig {
	return daynight.Rig{
		Sun:         s.Sun,
		Moon:        s.Moon,
		Environment: s.Env,
		PostProcess: s.Post,
		Sky:         s.Skybox,
	}
}

// skyPalette is the base colour of each skybox material.
var skyPalette = map[daynight.Skybox]daynight.RGB{
	"sky_sunrise": {R: 0.95, G: 0.62, B: 0.42},
	"sky_day":     {R: 0.45, G: 0.70, B: 0.95},
	"sky_sunset":  {R: 0.85, G: 0.42, B: 0.35},
	"sky_night":   {R: 0.04, G: 0.05, B: 0.14},
}

// SkyColor returns the colour a host should clear the background to: the
// skybox tint, darkened by exposure and lit by the sun.
func (s *Sky) SkyColor() color.RGBA {
	base, ok := skyPalette[s.Skybox.Active]
	if !ok {
		base = daynight.RGB{R: 0.5, G: 0.5, B: 0.5}
	}

	// Exposure is in stops.
	gain := math.Pow(2, s.Post.Exposure)
	light := 0.35 + 0.65*clamp(s.Sun.Intensity, 0, 1.2)
	tint := base.Scale(gain * light)
	if s.Moon.Enabled {
		tint = tint.Lerp(s.Moon.Color.Scale(0.15), 0.2)
	}
	return tint.RGBA()
}

// FogAlpha returns how opaque a full-screen fog overlay should be.
func (s *Sky) FogAlpha() uint8 {
	if !s.Env.FogEnabled {
		return 0
	}
	a := clamp(s.Env.Density*6000, 0, 140)
	return uint8(a)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
