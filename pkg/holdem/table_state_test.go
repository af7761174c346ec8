package holdem

import (
	"testing"

	"chiptable/pkg/action"
	"chiptable/pkg/snapshot"

	"github.com/stretchr/testify/assert"
)

func TestController_State(t *testing.T) {
	a := assert.New(t)

	c, _ := setupController(t, DefaultOptions())
	state := c.State()
	a.Equal(c.ID(), state.ID)
	a.Equal(1, state.Match)
	a.Equal(BettingRoundPreFlop, state.Round)
	a.Equal(10, state.HighestBet)
	a.Equal(0, state.Dealer)
	a.Equal(3, state.Focus)
	a.Equal(0, state.NextFocus)
	a.Equal(1, state.SmallBlind)
	a.Equal(2, state.BigBlind)
	a.Equal(4000, state.ChipTotal)
	a.Len(state.Log, 4)
	a.True(state.Players[0].IsDealer)
	a.True(state.Players[3].HasFocus)
	a.Equal([]action.Action{action.Call, action.Raise, action.AllIn, action.Fold}, state.Players[3].Actions)
	a.Empty(state.Players[1].Actions)

	// ids and timestamps change on every run
	state.ID = ""
	state.Log = nil
	snapshot.ValidateSnapshot(t, state, 0)

	a.NoError(c.Fold(3))
	a.NoError(c.Fold(0))
	a.NoError(c.Fold(1))

	state = c.State()
	a.Equal(-1, state.Focus)
	a.Equal(-1, state.NextFocus)
	a.Equal(-1, state.SmallBlind)
	a.Equal(-1, state.BigBlind)
	a.Equal(0, state.Pots.Total())
}
