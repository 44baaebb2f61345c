// Package daynight implements the day/night cycle: a repeating normalized
// clock split into four ordered phases (sunrise, day, sunset, night) that
// drives sun, moon, fog, skybox and exposure settings through small
// collaborator interfaces.
package daynight

import "math"

// MinTotal is the floor applied to the cycle length so that normalizing
// never divides by zero.
const MinTotal = 0.01

// Durations holds the length of each phase in seconds.
type Durations struct {
	Sunrise float64 `yaml:"sunrise"`
	Day     float64 `yaml:"day"`
	Sunset  float64 `yaml:"sunset"`
	Night   float64 `yaml:"night"`
}

// DefaultDurations returns the stock 190 second cycle.
func DefaultDurations() Durations {
	return Durations{Sunrise: 25, Day: 80, Sunset: 25, Night: 60}
}

// Sum returns the total of all four durations, ignoring negative values.
func (d Durations) Sum() float64 {
	return nonNegative(d.Sunrise) + nonNegative(d.Day) + nonNegative(d.Sunset) + nonNegative(d.Night)
}

// Boundaries are the normalized end points of the first three phases.
// [0, SunriseEnd) is sunrise, [SunriseEnd, DayEnd) is day,
// [DayEnd, SunsetEnd) is sunset and [SunsetEnd, 1) is night.
type Boundaries struct {
	SunriseEnd float64
	DayEnd     float64
	SunsetEnd  float64
}

// Timeline maps phase durations onto normalized boundaries and carries the
// playhead. The zero value is not usable; build one with NewTimeline.
type Timeline struct {
	durations Durations
	total     float64
	bounds    Boundaries

	elapsed float64
	t       float64
}

// NewTimeline creates a timeline for the given durations with the playhead at 0.
func NewTimeline(d Durations) *Timeline {
	tl := &Timeline{}
	tl.Recompute(d)
	return tl
}

// Recompute rebuilds the boundaries from d. The normalized position is kept
// and the elapsed seconds are re-derived from it.
func (tl *Timeline) Recompute(d Durations) {
	tl.durations = d
	tl.total = math.Max(MinTotal, d.Sum())

	sunrise := nonNegative(d.Sunrise)
	day := nonNegative(d.Day)
	sunset := nonNegative(d.Sunset)

	tl.bounds = Boundaries{
		SunriseEnd: sunrise / tl.total,
		DayEnd:     (sunrise + day) / tl.total,
		SunsetEnd:  (sunrise + day + sunset) / tl.total,
	}

	tl.elapsed = tl.t * tl.total
}

// Advance moves the playhead forward by dt seconds. At most one wraparound
// is performed per call, so dt must not exceed Total. Landing exactly on
// Total wraps to 0.
func (tl *Timeline) Advance(dt float64) {
	if tl.total <= 0 {
		tl.Recompute(tl.durations)
	}

	tl.elapsed += dt
	if tl.elapsed >= tl.total {
		tl.elapsed -= tl.total
	}
	tl.t = clamp01(tl.elapsed / tl.total)
}

// SetNormalized jumps the playhead to t01, wrapped into [0,1).
func (tl *Timeline) SetNormalized(t01 float64) {
	tl.t = wrap01(t01)
	tl.elapsed = tl.t * tl.total
}

// T returns the normalized playhead position.
func (tl *Timeline) T() float64 { return tl.t }

// Elapsed returns the playhead position in seconds.
func (tl *Timeline) Elapsed() float64 { return tl.elapsed }

// Total returns the cycle length in seconds.
func (tl *Timeline) Total() float64 { return tl.total }

// Boundaries returns the normalized phase end points.
func (tl *Timeline) Boundaries() Boundaries { return tl.bounds }

// Durations returns the durations the timeline was last computed from.
func (tl *Timeline) Durations() Durations { return tl.durations }

// Phase returns the phase under the playhead.
func (tl *Timeline) Phase() Phase { return PhaseAt(tl.t, tl.bounds) }

// Midpoint returns the normalized midpoint of phase p's interval.
func (tl *Timeline) Midpoint(p Phase) float64 {
	b := tl.bounds
	switch p {
	case PhaseSunrise:
		return b.SunriseEnd * 0.5
	case PhaseDay:
		return lerp(b.SunriseEnd, b.DayEnd, 0.5)
	case PhaseSunset:
		return lerp(b.DayEnd, b.SunsetEnd, 0.5)
	default:
		return lerp(b.SunsetEnd, 1, 0.5)
	}
}

// Remaining returns the seconds left before the current phase ends.
func (tl *Timeline) Remaining() float64 {
	b := tl.bounds
	end := 1.0
	switch tl.Phase() {
	case PhaseSunrise:
		end = b.SunriseEnd
	case PhaseDay:
		end = b.DayEnd
	case PhaseSunset:
		end = b.SunsetEnd
	}
	return math.Max(0, (end-tl.t)*tl.total)
}

func wrap01(v float64) float64 {
	r := v - math.Floor(v)
	if r >= 1 || math.IsNaN(r) {
		return 0
	}
	return r
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
