package holdem

// Player is a single seat at the table
// Players are owned by the Ring. Everything outside of this package only reads them
type Player struct {
	seat       int
	name       string
	status     Status
	balance    int
	currentBet int

	dealer bool
	focus  bool
}

func newPlayer(seat int, name string) *Player {
	return &Player{
		seat:   seat,
		name:   name,
		status: StatusIdle,
	}
}

// Seat returns the stable seat index
func (p *Player) Seat() int {
	return p.seat
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Status returns the player's status
func (p *Player) Status() Status {
	return p.status
}

// Balance returns the chips that are not committed to a pot
func (p *Player) Balance() int {
	return p.balance
}

// CurrentBet returns the chips wagered in the current betting round
func (p *Player) CurrentBet() int {
	return p.currentBet
}

// IsDealer returns true if the player holds the dealer button
func (p *Player) IsDealer() bool {
	return p.dealer
}

// HasFocus returns true if it's the player's turn
func (p *Player) HasFocus() bool {
	return p.focus
}

// IsParticipating returns true if the player takes part in the match
func (p *Player) IsParticipating() bool {
	return p.status != StatusSatOut && p.status != StatusEliminated
}

// IsActive returns true if the player can act this round
func (p *Player) IsActive() bool {
	return p.status.CanAct()
}

// IsContesting returns true if the player can still win chips this match
func (p *Player) IsContesting() bool {
	return p.IsParticipating() && p.status != StatusFolded
}

// resetForNewRound clears the bet. Folded and all-in players keep their status
func (p *Player) resetForNewRound() {
	p.currentBet = 0
	switch p.status {
	case StatusFolded, StatusAllIn, StatusSatOut, StatusEliminated:
		return
	}

	p.status = StatusIdle
}

// resetForNewMatch clears the bet and everything but sitting out
// Eliminated is terminal and only cleared by a new table
func (p *Player) resetForNewMatch() {
	p.currentBet = 0
	switch p.status {
	case StatusSatOut, StatusEliminated:
		return
	}

	p.status = StatusIdle
}

func (p *Player) resetForNewTable() {
	p.currentBet = 0
	p.status = StatusIdle
}

// potmanager.Participant interface

// ID returns the seat
func (p *Player) ID() int {
	return p.seat
}

// IsFolded returns true if the player folded
func (p *Player) IsFolded() bool {
	return p.status == StatusFolded
}

// IsAllIn returns true if the player has no more chips to wager this match
func (p *Player) IsAllIn() bool {
	return p.status == StatusAllIn
}

// AdjustBalance adds winnings to the balance
func (p *Player) AdjustBalance(amount int) {
	p.balance += amount
}
