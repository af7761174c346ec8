package action

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromString(t *testing.T) {
	a := assert.New(t)

	for _, s := range []string{"fold", "check", "call", "bet", "raise", "allin"} {
		act, err := FromString(s)
		a.NoError(err)
		a.Equal(Action(s), act)
		a.True(act.IsValid())
	}

	act, err := FromString(" All-In ")
	a.NoError(err)
	a.Equal(AllIn, act)

	act, err = FromString("discard")
	a.EqualError(err, "unknown action for identifier: discard")
	a.Equal(Action(""), act)
	a.False(Action("trade").IsValid())
}

func TestAction_String(t *testing.T) {
	a := assert.New(t)
	a.Equal("Fold", Fold.String())
	a.Equal("All In", AllIn.String())
	a.Panics(func() {
		_ = Action("discard").String()
	})
}

func TestAction_MarshalJSON(t *testing.T) {
	a := assert.New(t)
	b, err := json.Marshal(Raise)
	a.NoError(err)
	a.JSONEq(`{"id":"raise","name":"Raise"}`, string(b))
}

func TestAction_NeedsAmount(t *testing.T) {
	a := assert.New(t)
	a.True(Bet.NeedsAmount())
	a.True(Raise.NeedsAmount())
	a.False(Call.NeedsAmount())
	a.False(AllIn.NeedsAmount())
}

func TestAction_LogMessage(t *testing.T) {
	a := assert.New(t)
	a.Equal("folded", Fold.LogMessage(0))
	a.Equal("checked", Check.LogMessage(0))
	a.Equal("called 10", Call.LogMessage(10))
	a.Equal("bet 25", Bet.LogMessage(25))
	a.Equal("raised to 40", Raise.LogMessage(40))
	a.Equal("went all in for 90", AllIn.LogMessage(90))
	a.Equal("", Action("trade").LogMessage(1))
}
