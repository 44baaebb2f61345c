package gameplay

import (
	"fmt"

	"github.com/leonelquinteros/gotext"

	"daybreak/pkg/game/state"
)

// maxHints is how many times the talk hint is shown.
const maxHints = 3

// ShowNPCHint tells the player how to talk to n. Only the first few
// approaches show it.
func ShowNPCHint(g *state.Game, n *state.NPC) {
	if g.HintsShown >= maxHints {
		return
	}
	g.HintsShown++
	say(g, fmt.Sprintf(gotext.Get("NPC_HINT"), n.Interactor.Name))
}
