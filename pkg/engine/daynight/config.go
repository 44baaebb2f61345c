package daynight

// MoonIntensity is the fixed moon light intensity while it is shown.
const MoonIntensity = 0.08

// Skyboxes holds the skybox asset for each phase.
type Skyboxes struct {
	Sunrise Skybox `yaml:"sunrise"`
	Day     Skybox `yaml:"day"`
	Sunset  Skybox `yaml:"sunset"`
	Night   Skybox `yaml:"night"`
}

// For returns the skybox configured for phase p.
func (s Skyboxes) For(p Phase) Skybox {
	switch p {
	case PhaseSunrise:
		return s.Sunrise
	case PhaseDay:
		return s.Day
	case PhaseSunset:
		return s.Sunset
	default:
		return s.Night
	}
}

// Config is the editable configuration of a Cycle.
type Config struct {
	// AutoRun advances the clock every tick. When false the clock only
	// moves through SetTimeOfDay or Scrub.
	AutoRun bool `yaml:"autoRun"`
	// StartAtSunrise places the playhead 40% into the sunrise block on Init
	// instead of at TimeOfDay.
	StartAtSunrise bool      `yaml:"startAtSunrise"`
	Durations      Durations `yaml:"durations"`
	// TimeOfDay is the initial normalized position when StartAtSunrise is off.
	TimeOfDay float64 `yaml:"timeOfDay"`

	SunAxis      Vec3      `yaml:"sunAxis"`
	SunColor     *Gradient `yaml:"sunColor,omitempty"`
	SunIntensity *Curve    `yaml:"sunIntensity,omitempty"`

	Skyboxes Skyboxes `yaml:"skyboxes"`

	ManageFog  bool      `yaml:"manageFog"`
	FogColor   *Gradient `yaml:"fogColor,omitempty"`
	FogDensity *Curve    `yaml:"fogDensity,omitempty"`

	DayExposure            float64 `yaml:"dayExposure"`
	NightExposure          float64 `yaml:"nightExposure"`
	NightFogBoost          float64 `yaml:"nightFogBoost"`
	NightAmbientMultiplier float64 `yaml:"nightAmbientMultiplier"`

	// Debug logs every phase change.
	Debug bool `yaml:"debug"`
}

// DefaultSunIntensity is the stock sun intensity curve: dark at both ends of
// the loop, peaking at midday.
func DefaultSunIntensity() *Curve {
	return NewCurve(
		Keyframe{Time: 0.00, Value: 0.00},
		Keyframe{Time: 0.20, Value: 0.55},
		Keyframe{Time: 0.25, Value: 0.90},
		Keyframe{Time: 0.50, Value: 1.10},
		Keyframe{Time: 0.75, Value: 0.90},
		Keyframe{Time: 0.80, Value: 0.55},
		Keyframe{Time: 1.00, Value: 0.00},
	)
}

// DefaultSunColor is a warm-white-warm gradient matching the stock durations.
func DefaultSunColor() *Gradient {
	return NewGradient(
		GradientKey{Time: 0.00, Color: RGB{R: 1.00, G: 0.55, B: 0.30}},
		GradientKey{Time: 0.13, Color: RGB{R: 1.00, G: 0.80, B: 0.60}},
		GradientKey{Time: 0.35, Color: RGB{R: 1.00, G: 0.97, B: 0.92}},
		GradientKey{Time: 0.65, Color: RGB{R: 1.00, G: 0.75, B: 0.45}},
		GradientKey{Time: 0.72, Color: RGB{R: 0.90, G: 0.45, B: 0.30}},
		GradientKey{Time: 0.85, Color: RGB{R: 0.35, G: 0.40, B: 0.65}},
		GradientKey{Time: 1.00, Color: RGB{R: 1.00, G: 0.55, B: 0.30}},
	)
}

// DefaultFogColor follows the sky from dawn haze to night blue.
func DefaultFogColor() *Gradient {
	return NewGradient(
		GradientKey{Time: 0.00, Color: RGB{R: 0.85, G: 0.60, B: 0.45}},
		GradientKey{Time: 0.30, Color: RGB{R: 0.65, G: 0.75, B: 0.85}},
		GradientKey{Time: 0.65, Color: RGB{R: 0.80, G: 0.50, B: 0.35}},
		GradientKey{Time: 0.80, Color: RGB{R: 0.05, G: 0.06, B: 0.12}},
		GradientKey{Time: 1.00, Color: RGB{R: 0.85, G: 0.60, B: 0.45}},
	)
}

// DefaultConfig returns the stock cycle configuration.
func DefaultConfig() Config {
	return Config{
		AutoRun:        true,
		StartAtSunrise: true,
		Durations:      DefaultDurations(),
		SunAxis:        Vec3{X: 1},
		SunColor:       DefaultSunColor(),
		SunIntensity:   DefaultSunIntensity(),
		Skyboxes: Skyboxes{
			Sunrise: "sky_sunrise",
			Day:     "sky_day",
			Sunset:  "sky_sunset",
			Night:   "sky_night",
		},
		ManageFog:              true,
		FogColor:               DefaultFogColor(),
		FogDensity:             ConstantCurve(0.01),
		DayExposure:            0,
		NightExposure:          -2.5,
		NightFogBoost:          1.6,
		NightAmbientMultiplier: 0.2,
	}
}
