package holdem

import (
	"fmt"
)

// player count limits for a table
const (
	MinPlayers = 2
	MaxPlayers = 10
)

// Ring is the fixed, ordered set of seats at a table
// The participating, active, and betting views are computed on every call and never cached
type Ring struct {
	players   []*Player
	dealer    *Player
	focus     *Player
	nextFocus *Player
}

// NewRing seats one player per name, in order
func NewRing(names []string) (*Ring, error) {
	if len(names) < MinPlayers || len(names) > MaxPlayers {
		return nil, PlayerCountError(len(names))
	}

	players := make([]*Player, len(names))
	for i, name := range names {
		players[i] = newPlayer(i, name)
	}

	return &Ring{players: players}, nil
}

// Players returns every seat in table order
func (r *Ring) Players() []*Player {
	players := make([]*Player, len(r.players))
	copy(players, r.players)
	return players
}

// Player returns the player in the seat
func (r *Ring) Player(seat int) (*Player, error) {
	if seat < 0 || seat >= len(r.players) {
		return nil, ErrSeatNotFound
	}

	return r.players[seat], nil
}

// Len returns the number of seats
func (r *Ring) Len() int {
	return len(r.players)
}

// Participating returns the players that take part in the match
func (r *Ring) Participating() []*Player {
	return r.filter((*Player).IsParticipating)
}

// Active returns the players that can act this round
func (r *Ring) Active() []*Player {
	return r.filter((*Player).IsActive)
}

// Contesting returns the players that did not fold out of the match
func (r *Ring) Contesting() []*Player {
	return r.filter((*Player).IsContesting)
}

// Betting returns the players that wagered chips this round
func (r *Ring) Betting() []*Player {
	return r.filter(func(p *Player) bool {
		return p.currentBet > 0
	})
}

func (r *Ring) filter(fn func(p *Player) bool) []*Player {
	players := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		if fn(p) {
			players = append(players, p)
		}
	}

	return players
}

// HighestBet returns the largest bet of the current round
func (r *Ring) HighestBet() int {
	highest := 0
	for _, p := range r.players {
		if p.currentBet > highest {
			highest = p.currentBet
		}
	}

	return highest
}

// ActivePlayerAfter returns the active player increment positions clockwise from p
// p does not need to be active itself
func (r *Ring) ActivePlayerAfter(p *Player, increment int) (*Player, error) {
	if increment < 1 {
		return nil, fmt.Errorf("increment must be at least 1, got %d", increment)
	}

	return r.playerAfter(p, increment, (*Player).IsActive)
}

// participatingPlayerAfter is ActivePlayerAfter for the participating view
func (r *Ring) participatingPlayerAfter(p *Player) (*Player, error) {
	return r.playerAfter(p, 1, (*Player).IsParticipating)
}

func (r *Ring) playerAfter(p *Player, increment int, fn func(p *Player) bool) (*Player, error) {
	n := len(r.players)
	// walk clockwise from the seat after p, which leaves p last if it matches
	clockwise := make([]*Player, 0, n)
	for i := 1; i <= n; i++ {
		candidate := r.players[(p.seat+i)%n]
		if fn(candidate) {
			clockwise = append(clockwise, candidate)
		}
	}

	if len(clockwise) == 0 {
		return nil, ErrNoActivePlayers
	}

	return clockwise[(increment-1)%len(clockwise)], nil
}

// Dealer returns the player with the dealer button
func (r *Ring) Dealer() *Player {
	return r.dealer
}

// Focus returns the player whose turn it is
func (r *Ring) Focus() *Player {
	return r.focus
}

// NextFocus returns the player who acts after the focus player
func (r *Ring) NextFocus() *Player {
	return r.nextFocus
}

// SmallBlind returns the first active player after the dealer
func (r *Ring) SmallBlind() (*Player, error) {
	if r.dealer == nil {
		return nil, ErrNoDealer
	}

	return r.ActivePlayerAfter(r.dealer, 1)
}

// BigBlind returns the second active player after the dealer
func (r *Ring) BigBlind() (*Player, error) {
	if r.dealer == nil {
		return nil, ErrNoDealer
	}

	return r.ActivePlayerAfter(r.dealer, 2)
}

// SetDealerPlayer moves the dealer button to p
func (r *Ring) SetDealerPlayer(p *Player) {
	if r.dealer != nil {
		r.dealer.dealer = false
	}

	p.dealer = true
	r.dealer = p
}

// SetFocusPlayer gives p the turn and works out who is next
func (r *Ring) SetFocusPlayer(p *Player) error {
	if r.focus != nil {
		r.focus.focus = false
	}

	p.focus = true
	r.focus = p

	next, err := r.ActivePlayerAfter(p, 1)
	if err != nil {
		r.nextFocus = nil
		return err
	}

	r.nextFocus = next
	return nil
}

// SetInitialFocusPlayer gives the turn to the first player after the blinds
func (r *Ring) SetInitialFocusPlayer() error {
	if r.dealer == nil {
		return ErrNoDealer
	}

	p, err := r.ActivePlayerAfter(r.dealer, 3)
	if err != nil {
		return err
	}

	return r.SetFocusPlayer(p)
}

// IncrementFocusPlayer passes the turn to the next focus player
func (r *Ring) IncrementFocusPlayer() error {
	if r.focus == nil {
		return ErrNoFocus
	}

	next := r.nextFocus
	if next == nil || !next.IsActive() {
		var err error
		if next, err = r.ActivePlayerAfter(r.focus, 1); err != nil {
			return err
		}
	}

	return r.SetFocusPlayer(next)
}

// ClearFocus removes the turn from everybody
func (r *Ring) ClearFocus() {
	if r.focus != nil {
		r.focus.focus = false
	}

	r.focus = nil
	r.nextFocus = nil
}

// CheckAllForEliminations eliminates every player without chips
// This must only run between matches, as an all-in player has no balance until the pots are paid
func (r *Ring) CheckAllForEliminations() []*Player {
	eliminated := make([]*Player, 0)
	for _, p := range r.players {
		if p.balance <= 0 && p.status != StatusEliminated {
			p.status = StatusEliminated
			eliminated = append(eliminated, p)
		}
	}

	return eliminated
}

// ResetForNewRound clears every bet. Folded, all-in, and sat out players keep their status
func (r *Ring) ResetForNewRound() {
	for _, p := range r.players {
		p.resetForNewRound()
	}
}

// ResetForNewMatch clears every bet and status, except sitting out and eliminated
func (r *Ring) ResetForNewMatch() {
	for _, p := range r.players {
		p.resetForNewMatch()
	}
}

// ResetForNewTable clears every bet and status
func (r *Ring) ResetForNewTable() {
	for _, p := range r.players {
		p.resetForNewTable()
	}
}
