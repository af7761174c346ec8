package holdem

import (
	"fmt"
)

// Options configures a table
type Options struct {
	StartingChips int      `json:"startingChips"`
	SmallBlind    int      `json:"smallBlind"`
	BigBlind      int      `json:"bigBlind"`
	PlayerNames   []string `json:"playerNames"`

	// DealerSeat receives the dealer button for the first match
	DealerSeat int `json:"dealerSeat"`
	// RandomDealer ignores DealerSeat and picks the first dealer at random
	RandomDealer bool `json:"randomDealer"`
}

// DefaultOptions returns the default options for a four player table
func DefaultOptions() Options {
	return Options{
		StartingChips: 1000,
		SmallBlind:    5,
		BigBlind:      10,
		PlayerNames:   []string{"Player 1", "Player 2", "Player 3", "Player 4"},
	}
}

// Validate checks the business rules for a table
// The Controller expects callers to run this before creating a table
func (o Options) Validate() error {
	if err := o.validateStructure(); err != nil {
		return err
	}

	if o.SmallBlind <= 0 {
		return ValidationError("small blind must be greater than zero")
	}

	if o.BigBlind < 2*o.SmallBlind {
		return ValidationError(fmt.Sprintf("big blind must be at least %d", 2*o.SmallBlind))
	}

	if o.StartingChips < 10*o.BigBlind {
		return ValidationError(fmt.Sprintf("starting chips must be at least %d", 10*o.BigBlind))
	}

	return nil
}

// validateStructure only checks what the Controller cannot work without
func (o Options) validateStructure() error {
	if n := len(o.PlayerNames); n < MinPlayers || n > MaxPlayers {
		return PlayerCountError(n)
	}

	if o.StartingChips < 0 || o.SmallBlind < 0 || o.BigBlind < 0 {
		return ErrInvalidAmount
	}

	if o.DealerSeat < 0 || o.DealerSeat >= len(o.PlayerNames) {
		return ErrSeatNotFound
	}

	return nil
}
