package holdem

import "encoding/json"

// BettingRound is the phase of the match
type BettingRound int

// constants for BettingRound
const (
	BettingRoundPreFlop BettingRound = iota
	BettingRoundFlop
	BettingRoundTurn
	BettingRoundRiver
	BettingRoundShowdown
)

// Next returns the round that follows. Showdown wraps to pre-flop
func (b BettingRound) Next() BettingRound {
	if b >= BettingRoundShowdown {
		return BettingRoundPreFlop
	}

	return b + 1
}

func (b BettingRound) String() string {
	switch b {
	case BettingRoundPreFlop:
		return "pre-flop"
	case BettingRoundFlop:
		return "flop"
	case BettingRoundTurn:
		return "turn"
	case BettingRoundRiver:
		return "river"
	case BettingRoundShowdown:
		return "showdown"
	}

	return ""
}

// MarshalJSON encodes JSON
func (b BettingRound) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(b),
		Name: b.String(),
	})
}
