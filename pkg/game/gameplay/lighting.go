package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"daybreak/pkg/engine/daynight"
	"daybreak/pkg/game/locale"
	"daybreak/pkg/game/state"
)

// announcePhase tells the player the time of day changed.
func announcePhase(g *state.Game, p daynight.Phase) {
	say(g, fmt.Sprintf(gotext.Get("PHASE_CHANGED"), PhaseName(p)))
}

// PhaseName returns the translated name of p.
func PhaseName(p daynight.Phase) string {
	return locale.Text("PHASE_" + p.String())
}

// StatusLine summarises the clock for the hosts' status bars.
func StatusLine(g *state.Game) string {
	st := g.Cycle.State()
	return fmt.Sprintf(gotext.Get("STATUS_LINE"), PhaseName(st.Phase), st.T, st.Remaining)
}
