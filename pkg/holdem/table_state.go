package holdem

import (
	"chiptable/pkg/action"
	"chiptable/pkg/potmanager"
)

// TableState is a read-only projection of the table for a presentation layer
// Seats are -1 when nobody holds the position. Blinds are not reported at showdown
type TableState struct {
	ID         string          `json:"id"`
	Match      int             `json:"match"`
	Round      BettingRound    `json:"round"`
	HighestBet int             `json:"highestBet"`
	Dealer     int             `json:"dealer"`
	Focus      int             `json:"focus"`
	NextFocus  int             `json:"nextFocus"`
	SmallBlind int             `json:"smallBlind"`
	BigBlind   int             `json:"bigBlind"`
	Players    []*PlayerState  `json:"players"`
	Pots       potmanager.Pots `json:"pots"`
	ChipTotal  int             `json:"chipTotal"`
	Log        []*LogMessage   `json:"log"`
}

// PlayerState is the projection of a single seat
type PlayerState struct {
	Seat       int             `json:"seat"`
	Name       string          `json:"name"`
	Status     Status          `json:"status"`
	Balance    int             `json:"balance"`
	CurrentBet int             `json:"currentBet"`
	IsDealer   bool            `json:"isDealer"`
	HasFocus   bool            `json:"hasFocus"`
	Actions    []action.Action `json:"actions"`
}

// State returns the current state of the table
func (c *Controller) State() *TableState {
	players := make([]*PlayerState, c.ring.Len())
	for i, p := range c.ring.players {
		players[i] = &PlayerState{
			Seat:       p.seat,
			Name:       p.name,
			Status:     p.status,
			Balance:    p.balance,
			CurrentBet: p.currentBet,
			IsDealer:   p.dealer,
			HasFocus:   p.focus,
			Actions:    c.ActionsForSeat(p.seat),
		}
	}

	var sb, bb *Player
	if c.round != BettingRoundShowdown {
		sb, _ = c.ring.SmallBlind()
		bb, _ = c.ring.BigBlind()
	}

	return &TableState{
		ID:         c.id,
		Match:      c.match,
		Round:      c.round,
		HighestBet: c.ring.HighestBet(),
		Dealer:     seatOf(c.ring.Dealer()),
		Focus:      seatOf(c.ring.Focus()),
		NextFocus:  seatOf(c.ring.NextFocus()),
		SmallBlind: seatOf(sb),
		BigBlind:   seatOf(bb),
		Players:    players,
		Pots:       c.Pots(),
		ChipTotal:  c.ChipTotal(),
		Log:        c.Log(),
	}
}

func seatOf(p *Player) int {
	if p == nil {
		return -1
	}

	return p.seat
}
