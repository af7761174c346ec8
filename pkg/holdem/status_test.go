package holdem

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus_CanAct(t *testing.T) {
	a := assert.New(t)

	canAct := map[Status]bool{
		StatusIdle:         true,
		StatusPartialMatch: true,
		StatusBetMatched:   true,
		StatusRaised:       true,
		StatusAllIn:        false,
		StatusFolded:       false,
		StatusSatOut:       false,
		StatusEliminated:   false,
	}

	for status, expected := range canAct {
		a.Equal(expected, status.CanAct(), status.String())
		a.NotEmpty(status.String())
	}

	a.True(StatusRaised.HasMatched())
	a.False(StatusPartialMatch.HasMatched())
}

func TestStatus_MarshalJSON(t *testing.T) {
	a := assert.New(t)

	b, err := json.Marshal(StatusPartialMatch)
	a.NoError(err)
	a.JSONEq(`{"id":1,"name":"partial-match"}`, string(b))
}

func TestBettingRound_Next(t *testing.T) {
	a := assert.New(t)

	round := BettingRoundPreFlop
	expected := []string{"flop", "turn", "river", "showdown", "pre-flop"}
	for _, name := range expected {
		round = round.Next()
		a.Equal(name, round.String())
	}

	b, err := json.Marshal(BettingRoundRiver)
	a.NoError(err)
	a.JSONEq(`{"id":3,"name":"river"}`, string(b))
}

func TestOptions_Validate(t *testing.T) {
	a := assert.New(t)

	a.NoError(DefaultOptions().Validate())

	opts := DefaultOptions()
	opts.SmallBlind = 0
	a.EqualError(opts.Validate(), "small blind must be greater than zero")

	opts = DefaultOptions()
	opts.BigBlind = 9
	a.Equal(ValidationError("big blind must be at least 10"), opts.Validate())

	opts = DefaultOptions()
	opts.StartingChips = 99
	a.EqualError(opts.Validate(), "starting chips must be at least 100")

	opts = DefaultOptions()
	opts.PlayerNames = playerNames(11)
	a.Equal(PlayerCountError(11), opts.Validate())

	opts = DefaultOptions()
	opts.BigBlind = -10
	a.Equal(ErrInvalidAmount, opts.Validate())
}
