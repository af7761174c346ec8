package holdem

import "encoding/json"

// Status is where a player is in the betting state machine
type Status int

// constants for Status
const (
	StatusIdle Status = iota
	StatusPartialMatch
	StatusBetMatched
	StatusRaised
	StatusAllIn
	StatusFolded
	StatusSatOut
	StatusEliminated
)

// CanAct returns true if the player may still wager this round
func (s Status) CanAct() bool {
	switch s {
	case StatusIdle, StatusPartialMatch, StatusBetMatched, StatusRaised:
		return true
	}

	return false
}

// HasMatched returns true if the player does not need to act again this round
func (s Status) HasMatched() bool {
	return s == StatusBetMatched || s == StatusRaised
}

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPartialMatch:
		return "partial-match"
	case StatusBetMatched:
		return "bet-matched"
	case StatusRaised:
		return "raised"
	case StatusAllIn:
		return "all-in"
	case StatusFolded:
		return "folded"
	case StatusSatOut:
		return "sat-out"
	case StatusEliminated:
		return "eliminated"
	}

	return ""
}

// MarshalJSON encodes JSON
func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Name string `json:"name"`
	}{
		ID:   int(s),
		Name: s.String(),
	})
}
