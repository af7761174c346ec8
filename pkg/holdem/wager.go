package holdem

import (
	"chiptable/pkg/potmanager"
)

// WagerEngine moves chips from players into the pots and keeps the statuses of the ring in step
// Every wager goes through Place
type WagerEngine struct {
	ring *Ring
	pots *potmanager.PotManager

	smallBlind int
	bigBlind   int
}

// NewWagerEngine returns a WagerEngine for a single match
func NewWagerEngine(ring *Ring, pots *potmanager.PotManager, smallBlind, bigBlind int) *WagerEngine {
	return &WagerEngine{
		ring:       ring,
		pots:       pots,
		smallBlind: smallBlind,
		bigBlind:   bigBlind,
	}
}

// ToCall returns the chips the player needs to match the table bet
func (w *WagerEngine) ToCall(p *Player) int {
	toCall := w.ring.HighestBet() - p.currentBet
	if toCall < 0 {
		return 0
	}

	return toCall
}

// Place wagers amount for the player
// If isRaise is true, the player is marked as raised and every other matched player has to act again
func (w *WagerEngine) Place(p *Player, amount int, isRaise bool) error {
	if !p.status.CanAct() {
		return newWagerError(p, amount, ErrPlayerCannotAct)
	}

	if amount < 0 || amount > p.balance {
		return newWagerError(p, amount, ErrInvalidAmount)
	}

	if err := w.pots.Stage(p.seat, amount); err != nil {
		return newWagerError(p, amount, err)
	}

	p.balance -= amount
	p.currentBet += amount

	if isRaise {
		p.status = StatusRaised
		for _, other := range w.ring.players {
			if other != p && other.status.HasMatched() {
				other.status = StatusPartialMatch
			}
		}

		return nil
	}

	if p.currentBet == w.ring.HighestBet() {
		p.status = StatusBetMatched
	} else {
		p.status = StatusPartialMatch
	}

	return nil
}

// Call matches the table bet
// A player who cannot cover the table bet goes all in for less
func (w *WagerEngine) Call(p *Player) error {
	toCall := w.ToCall(p)
	if toCall > 0 && toCall >= p.balance {
		return w.AllIn(p, false)
	}

	return w.Place(p, toCall, false)
}

// Check passes without adding chips
func (w *WagerEngine) Check(p *Player) error {
	if toCall := w.ToCall(p); toCall > 0 {
		return newWagerError(p, 0, ErrCannotCheck)
	}

	return w.Place(p, 0, false)
}

// Raise matches the table bet and then raises it by raiseAmount
// A raise that needs the whole balance is an all in
func (w *WagerEngine) Raise(p *Player, raiseAmount int) error {
	if raiseAmount <= 0 {
		return newWagerError(p, raiseAmount, ErrInvalidAmount)
	}

	need := w.ToCall(p) + raiseAmount
	switch {
	case need == p.balance:
		return w.AllIn(p, true)
	case need > p.balance:
		return newWagerError(p, need, ErrInsufficientBalance)
	}

	return w.Place(p, need, true)
}

// Bet adds exactly amount to the player's bet for the round
// Betting more than the table bet is a raise
func (w *WagerEngine) Bet(p *Player, amount int) error {
	if amount <= 0 {
		return newWagerError(p, amount, ErrInvalidAmount)
	}

	if amount > p.balance {
		return newWagerError(p, amount, ErrInsufficientBalance)
	}

	if amount == p.balance {
		return w.AllIn(p, false)
	}

	highest := w.ring.HighestBet()
	newBet := p.currentBet + amount
	if newBet < highest {
		return newWagerError(p, amount, ErrBetTooSmall)
	}

	return w.Place(p, amount, newBet > highest)
}

// AllIn wagers the player's entire balance
// The wager counts as a raise if isRaise is true or it lifts the table bet
func (w *WagerEngine) AllIn(p *Player, isRaise bool) error {
	amount := p.balance
	lifts := p.currentBet+amount > w.ring.HighestBet()
	if err := w.Place(p, amount, isRaise || lifts); err != nil {
		return err
	}

	p.status = StatusAllIn
	return nil
}

// Fold removes the player from the match
func (w *WagerEngine) Fold(p *Player) error {
	if !p.status.CanAct() {
		return newWagerError(p, 0, ErrPlayerCannotAct)
	}

	p.status = StatusFolded
	return w.pots.Recalculate()
}

// PlaceBlinds posts the small and big blind
// A player who cannot cover a blind posts their whole balance and is all in
func (w *WagerEngine) PlaceBlinds() (*Player, *Player, error) {
	sb, err := w.ring.SmallBlind()
	if err != nil {
		return nil, nil, err
	}

	bb, err := w.ring.BigBlind()
	if err != nil {
		return nil, nil, err
	}

	if sb == bb {
		return nil, nil, ErrNotEnoughPlayers
	}

	if err := w.postBlind(sb, w.smallBlind); err != nil {
		return nil, nil, err
	}

	if err := w.postBlind(bb, w.bigBlind); err != nil {
		return nil, nil, err
	}

	if sb.status != StatusAllIn && sb.currentBet < w.ring.HighestBet() {
		sb.status = StatusPartialMatch
	}

	return sb, bb, nil
}

func (w *WagerEngine) postBlind(p *Player, blind int) error {
	if blind >= p.balance {
		return w.AllIn(p, false)
	}

	return w.Place(p, blind, false)
}
