package holdem

import (
	"fmt"
)

// PreconditionError is an error caused by a command that is not legal in the current table state
// The table state is left untouched when one is returned
type PreconditionError string

func (p PreconditionError) Error() string {
	return string(p)
}

// ErrNoActivePlayers happens when turn order or blinds are needed but no player can act
var ErrNoActivePlayers = PreconditionError("no active players")

// ErrNoDealer happens when the blinds are requested before a dealer was assigned
var ErrNoDealer = PreconditionError("no dealer assigned")

// ErrNoFocus happens when the turn is advanced before anybody had the turn
var ErrNoFocus = PreconditionError("no player has the turn")

// ErrSeatNotFound is returned for an unknown seat
var ErrSeatNotFound = PreconditionError("seat not found")

// ErrPlayerCannotAct is returned when a folded, all-in, sat out, or eliminated player tries to wager
var ErrPlayerCannotAct = PreconditionError("player cannot act")

// ErrInvalidAmount is returned for negative amounts or amounts above the player's balance
var ErrInvalidAmount = PreconditionError("invalid amount")

// ErrInsufficientBalance is returned when a raise needs more chips than the player has
var ErrInsufficientBalance = PreconditionError("insufficient balance")

// ErrBetTooSmall is returned when a bet leaves the player below the table bet without going all-in
var ErrBetTooSmall = PreconditionError("bet does not match the table bet")

// ErrCannotCheck is returned when a player checks while facing a bet
var ErrCannotCheck = PreconditionError("cannot check with an active bet")

// ErrNotPlayersTurn is returned when a player acts out of turn
var ErrNotPlayersTurn = PreconditionError("it is not your turn")

// ErrBettingClosed is returned when a wager is attempted at showdown
var ErrBettingClosed = PreconditionError("betting is closed")

// ErrNotShowdown is returned when the pots are paid before showdown
var ErrNotShowdown = PreconditionError("match has not reached showdown")

// ErrPotsNotSettled is returned when a new match starts while chips are still in play
var ErrPotsNotSettled = PreconditionError("pots have not been paid out")

// ErrMatchInProgress is returned for changes only allowed between matches
var ErrMatchInProgress = PreconditionError("match is in progress")

// ErrNotEnoughPlayers is returned when fewer than two players can start a match
var ErrNotEnoughPlayers = PreconditionError("need at least two players to start a match")

// WagerError is a rejected wager
type WagerError struct {
	Seat   int
	Amount int
	Err    error
}

func newWagerError(p *Player, amount int, err error) *WagerError {
	return &WagerError{
		Seat:   p.seat,
		Amount: amount,
		Err:    err,
	}
}

func (w *WagerError) Error() string {
	return fmt.Sprintf("seat %d cannot wager %d: %s", w.Seat, w.Amount, w.Err)
}

func (w *WagerError) Unwrap() error {
	return w.Err
}

// PlayerCountError is an error on the number of players at the table
type PlayerCountError int

func (p PlayerCountError) Error() string {
	return fmt.Sprintf("expected between %d and %d players, got %d", MinPlayers, MaxPlayers, int(p))
}

// ValidationError is a table configuration that breaks the business rules
type ValidationError string

func (v ValidationError) Error() string {
	return string(v)
}
