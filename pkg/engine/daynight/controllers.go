package daynight

// FogMode selects the fog falloff model.
type FogMode int

const (
	FogLinear FogMode = iota
	FogExponential
	FogExponentialSquared
)

func (m FogMode) String() string {
	switch m {
	case FogLinear:
		return "linear"
	case FogExponential:
		return "exponential"
	case FogExponentialSquared:
		return "exponential_squared"
	default:
		return "unknown"
	}
}

// Skybox is an opaque handle naming a skybox asset. The empty handle means
// "no skybox".
type Skybox string

// LightController drives a directional light such as the sun or moon.
type LightController interface {
	SetOrientation(q Quat)
	SetColor(c RGB)
	SetIntensity(v float64)
	SetEnabled(on bool)
}

// ShadowController is implemented by lights that support soft shadows.
type ShadowController interface {
	SetSoftShadows()
}

// EnvironmentController drives global fog and ambient lighting.
type EnvironmentController interface {
	SetFogEnabled(on bool)
	SetFogMode(m FogMode)
	SetFogColor(c RGB)
	SetFogDensity(d float64)
	FogDensity() float64
	SetAmbientIntensity(v float64)
}

// PostProcessController drives the post-processing volume.
type PostProcessController interface {
	SetExposure(ev float64)
}

// SkyboxController swaps the active skybox material.
type SkyboxController interface {
	SetActiveMaterial(s Skybox)
}

// Rig bundles the collaborators a Cycle pushes settings to. Any field may be
// nil, which disables the updates that depend on it.
type Rig struct {
	Sun         LightController
	Moon        LightController
	Environment EnvironmentController
	PostProcess PostProcessController
	Sky         SkyboxController
}
