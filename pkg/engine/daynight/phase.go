package daynight

import (
	"fmt"
	"strings"
)

// Phase is one of the four fixed blocks of the cycle.
type Phase int

const (
	PhaseSunrise Phase = iota
	PhaseDay
	PhaseSunset
	PhaseNight
)

// phaseCount is the number of phases (for cycling).
const phaseCount = 4

// Phases lists every phase in cycle order.
var Phases = [phaseCount]Phase{PhaseSunrise, PhaseDay, PhaseSunset, PhaseNight}

// PhaseAt returns the phase containing t. Each interval is closed on the
// lower end and open on the upper end, so every t maps to exactly one phase.
func PhaseAt(t float64, b Boundaries) Phase {
	switch {
	case t < b.SunriseEnd:
		return PhaseSunrise
	case t < b.DayEnd:
		return PhaseDay
	case t < b.SunsetEnd:
		return PhaseSunset
	default:
		return PhaseNight
	}
}

// Next returns the phase that follows p.
func (p Phase) Next() Phase {
	return Phase((int(p) + 1) % phaseCount)
}

// IsNight reports whether p is the night phase.
func (p Phase) IsNight() bool {
	return p == PhaseNight
}

func (p Phase) String() string {
	switch p {
	case PhaseSunrise:
		return "sunrise"
	case PhaseDay:
		return "day"
	case PhaseSunset:
		return "sunset"
	case PhaseNight:
		return "night"
	default:
		return "unknown"
	}
}

// ParsePhase converts a phase name (case-insensitive) back into a Phase.
func ParsePhase(s string) (Phase, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, p := range Phases {
		if p.String() == name {
			return p, nil
		}
	}
	return PhaseSunrise, fmt.Errorf("unknown phase %q", s)
}
