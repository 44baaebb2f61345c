package daynight

import "log"

// moonFlip turns the sun rotation around so the moon faces the other way.
var moonFlip = AngleAxis(180, Vec3{X: 1})

// sunAngleOffset puts the sun at the horizon when t is 0.
const sunAngleOffset = -90.0

// State is a read-only snapshot of the cycle for renderers and tools.
type State struct {
	T         float64
	Elapsed   float64
	Total     float64
	Remaining float64
	Phase     Phase
	Sky       Skybox
	AutoRun   bool
}

// Cycle drives the day/night loop. Call Init once, then Tick once per frame.
// It is not safe for concurrent use.
type Cycle struct {
	cfg      Config
	rig      Rig
	timeline *Timeline

	lastSky    Skybox
	skyApplied bool
	phase      Phase
	phaseKnown bool

	// skipAdvance suppresses the first advance after Init so the frame that
	// follows initialization does not move the clock twice.
	skipAdvance bool

	onPhaseChange []func(from, to Phase)
}

// New creates a cycle for cfg that pushes its output to rig.
func New(cfg Config, rig Rig) *Cycle {
	c := &Cycle{
		cfg:      cfg,
		rig:      rig,
		timeline: NewTimeline(cfg.Durations),
	}
	return c
}

// Init computes the timeline, positions the playhead and applies the full
// state once.
func (c *Cycle) Init() {
	c.timeline.SetNormalized(c.cfg.TimeOfDay)
	c.timeline.Recompute(c.cfg.Durations)

	if c.cfg.StartAtSunrise {
		c.timeline.SetNormalized(c.timeline.Boundaries().SunriseEnd * 0.4)
		c.Apply(true)
		c.skipAdvance = true
		return
	}
	c.Apply(true)
}

// Tick advances the clock by dt seconds when auto-run is on, then applies
// the cycle. dt must not exceed the cycle length.
func (c *Cycle) Tick(dt float64) {
	if c.cfg.AutoRun {
		if c.skipAdvance {
			c.skipAdvance = false
		} else {
			c.timeline.Advance(dt)
		}
		c.cfg.TimeOfDay = c.timeline.T()
	}
	c.Apply(false)
}

// Apply pushes the current state to the rig. Continuous values (orientation,
// colour, intensity, fog) are always written. Discrete per-phase values are
// written every call as well, but the skybox is only swapped when it differs
// from the last one applied or force is set.
func (c *Cycle) Apply(force bool) {
	t := c.timeline.T()

	rot := AngleAxis(t*360+sunAngleOffset, c.cfg.SunAxis.Normalized())
	if c.rig.Sun != nil {
		c.rig.Sun.SetOrientation(rot)
	}
	if c.rig.Moon != nil {
		c.rig.Moon.SetOrientation(rot.Mul(moonFlip))
	}

	phase := PhaseAt(t, c.timeline.Boundaries())
	c.trackPhase(phase)
	night := phase.IsNight()

	if force {
		c.skyApplied = false
	}
	target := c.cfg.Skyboxes.For(phase)
	if !c.skyApplied || target != c.lastSky {
		if c.rig.Sky != nil {
			c.rig.Sky.SetActiveMaterial(target)
		}
		if c.cfg.Debug {
			log.Printf("[daynight] skybox -> %q", target)
		}
		c.lastSky = target
		c.skyApplied = true
	}

	if sun := c.rig.Sun; sun != nil {
		if col, ok := c.cfg.SunColor.Sample(t); ok {
			sun.SetColor(col)
		}
		if v, ok := c.cfg.SunIntensity.Sample(t); ok {
			sun.SetIntensity(v)
		}
		if s, ok := sun.(ShadowController); ok {
			s.SetSoftShadows()
		}
	}

	if moon := c.rig.Moon; moon != nil {
		moon.SetEnabled(night)
		if night {
			moon.SetIntensity(MoonIntensity)
		}
	}

	env := c.rig.Environment
	if env != nil && c.cfg.ManageFog {
		env.SetFogEnabled(true)
		env.SetFogMode(FogExponential)
		if col, ok := c.cfg.FogColor.Sample(t); ok {
			env.SetFogColor(col)
		}
		// Without a density curve the host's density is left alone; boosting
		// the value read back would compound every night tick.
		if base, ok := c.cfg.FogDensity.Sample(t); ok {
			env.SetFogDensity(base * c.fogBoost(phase))
		}
	}

	if c.rig.PostProcess != nil {
		if night {
			c.rig.PostProcess.SetExposure(c.cfg.NightExposure)
		} else {
			c.rig.PostProcess.SetExposure(c.cfg.DayExposure)
		}
	}

	if env != nil {
		if night {
			env.SetAmbientIntensity(c.cfg.NightAmbientMultiplier)
		} else {
			env.SetAmbientIntensity(1)
		}
	}
}

// fogBoost returns the fog density multiplier for phase p.
func (c *Cycle) fogBoost(p Phase) float64 {
	if p.IsNight() {
		return c.cfg.NightFogBoost
	}
	return 1
}

func (c *Cycle) trackPhase(p Phase) {
	if c.phaseKnown && p == c.phase {
		return
	}
	prev := c.phase
	known := c.phaseKnown
	c.phase = p
	c.phaseKnown = true
	if !known {
		return
	}
	if c.cfg.Debug {
		log.Printf("[daynight] phase %s -> %s at t=%.4f", prev, p, c.timeline.T())
	}
	for _, fn := range c.onPhaseChange {
		fn(prev, p)
	}
}

// OnPhaseChange registers fn to run whenever Apply observes a new phase.
func (c *Cycle) OnPhaseChange(fn func(from, to Phase)) {
	c.onPhaseChange = append(c.onPhaseChange, fn)
}

// Scrub stops auto-run, jumps to the midpoint of phase p and forces a full
// reapplication.
func (c *Cycle) Scrub(p Phase) {
	c.cfg.AutoRun = false
	c.SetTimeOfDay(c.timeline.Midpoint(p))
	c.Apply(true)
}

// SetTimeOfDay moves the playhead to the normalized position t. The change
// is picked up by the next Tick or Apply.
func (c *Cycle) SetTimeOfDay(t float64) {
	c.timeline.SetNormalized(t)
	c.cfg.TimeOfDay = c.timeline.T()
}

// SetAutoRun toggles automatic clock advance.
func (c *Cycle) SetAutoRun(on bool) {
	c.cfg.AutoRun = on
	c.skipAdvance = false
}

// AutoRun reports whether the clock advances on Tick.
func (c *Cycle) AutoRun() bool { return c.cfg.AutoRun }

// Reconfigure replaces the phase durations and recomputes the timeline,
// keeping the normalized playhead position.
func (c *Cycle) Reconfigure(d Durations) {
	c.cfg.Durations = d
	c.timeline.Recompute(d)
}

// Phase returns the phase observed by the last Apply.
func (c *Cycle) Phase() Phase { return c.phase }

// Timeline exposes the underlying timeline.
func (c *Cycle) Timeline() *Timeline { return c.timeline }

// Config returns a copy of the current configuration.
func (c *Cycle) Config() Config { return c.cfg }

// State returns a snapshot of the cycle.
func (c *Cycle) State() State {
	return State{
		T:         c.timeline.T(),
		Elapsed:   c.timeline.Elapsed(),
		Total:     c.timeline.Total(),
		Remaining: c.timeline.Remaining(),
		Phase:     c.timeline.Phase(),
		Sky:       c.lastSky,
		AutoRun:   c.cfg.AutoRun,
	}
}
