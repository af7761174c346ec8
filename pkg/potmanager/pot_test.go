package potmanager

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPots(t *testing.T) {
	a := assert.New(t)

	var empty Pots
	a.Nil(empty.Main())
	a.Nil(empty.Current())
	a.Equal(0, empty.Total())

	pots := Pots{
		{Amount: 30, Eligible: []int{0, 1, 2}},
		{Amount: 20, Eligible: []int{1, 2}},
	}

	a.Equal(50, pots.Total())
	a.Equal(30, pots.Main().Amount)
	a.Equal(20, pots.Current().Amount)
	a.True(pots.Main().IsEligible(0))
	a.False(pots.Current().IsEligible(0))
}

func TestPot_json(t *testing.T) {
	b, err := json.Marshal(&Pot{Amount: 25, Eligible: []int{1, 3}})
	assert.NoError(t, err)
	assert.Equal(t, `{"amount":25,"eligible":[1,3]}`, string(b))
}
