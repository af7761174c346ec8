package potmanager

import (
	"errors"
	"fmt"
	"sort"
)

// ErrParticipantNotFound is an error when a participant with a provided ID cannot be found
var ErrParticipantNotFound = errors.New("participant not found")

// ErrInvalidAmount is returned when a negative amount is staged
var ErrInvalidAmount = errors.New("amount must not be negative")

// ErrPayoutStarted is returned when chips are committed after the pots started paying out
var ErrPayoutStarted = errors.New("pots are already paying out")

// ErrNoEligibleWinner is returned when none of the winners can win a pot
var ErrNoEligibleWinner = errors.New("no winner is eligible for the pot")

// ErrPotNotFound is returned when the pot index is out of range
var ErrPotNotFound = errors.New("pot not found")

type pot struct {
	amount   int
	eligible []*participantInPot
}

// PotManager provides capabilities for keeping track of bets and pots for a single match
type PotManager struct {
	participants map[int]*participantInPot
	tableOrder   []*participantInPot
	pots         []*pot

	// payoutStarted prevents recalculation once chips have left the pots
	payoutStarted bool
}

// New instantiates a new PotManager with an empty main pot
func New() *PotManager {
	return &PotManager{
		participants: make(map[int]*participantInPot),
		tableOrder:   make([]*participantInPot, 0),
		pots:         []*pot{{}},
	}
}

// SeatParticipant adds a participant to the pots in the order called
// This method must be called in table order, starting left of the dealer. That order
// decides who receives odd chips on a split
func (p *PotManager) SeatParticipant(pt Participant) {
	pip := &participantInPot{
		Participant: pt,
		tableIndex:  len(p.tableOrder),
	}
	p.participants[pt.ID()] = pip
	p.tableOrder = append(p.tableOrder, pip)
	p.pots[0].eligible = append(p.pots[0].eligible, pip)
}

// Stage adds chips to the current betting round for the participant
func (p *PotManager) Stage(id int, amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}

	pip, ok := p.participants[id]
	if !ok {
		return ErrParticipantNotFound
	}

	pip.staged += amount
	return nil
}

// Staged returns the chips wagered this betting round that are not yet in a pot
func (p *PotManager) Staged() int {
	total := 0
	for _, pip := range p.tableOrder {
		total += pip.staged
	}

	return total
}

// StagedFor returns the chips the participant wagered this betting round
func (p *PotManager) StagedFor(id int) int {
	if pip, ok := p.participants[id]; ok {
		return pip.staged
	}

	return 0
}

// ContributedFor returns the chips the participant committed to the pots this match
func (p *PotManager) ContributedFor(id int) int {
	if pip, ok := p.participants[id]; ok {
		return pip.contributed
	}

	return 0
}

// Commit moves the staged chips into the pots and splits them into side pots where needed
func (p *PotManager) Commit() error {
	if p.payoutStarted {
		return ErrPayoutStarted
	}

	for _, pip := range p.tableOrder {
		pip.commit()
	}

	p.calculatePots()
	return nil
}

// Recalculate refreshes the eligible seats, i.e., after a fold
func (p *PotManager) Recalculate() error {
	if p.payoutStarted {
		return ErrPayoutStarted
	}

	p.calculatePots()
	return nil
}

// calculatePots rebuilds the pots from the contributions of the whole match
// Every distinct all-in contribution closes a pot. Chips above that level go to the next pot,
// which only the participants who covered the level can win
func (p *PotManager) calculatePots() {
	levels := make(map[int]bool)
	maxContribution := 0
	for _, pip := range p.tableOrder {
		if pip.contributed > maxContribution {
			maxContribution = pip.contributed
		}

		// participant is all-in, but still in the hand
		if !pip.IsFolded() && pip.IsAllIn() && pip.contributed > 0 {
			levels[pip.contributed] = true
		}
	}

	if maxContribution == 0 {
		main := &pot{}
		for _, pip := range p.tableOrder {
			if !pip.IsFolded() {
				main.eligible = append(main.eligible, pip)
			}
		}

		p.pots = []*pot{main}
		return
	}

	// add the largest contribution as the final level, even if it isn't an all-in
	levels[maxContribution] = true

	amounts := make([]int, 0, len(levels))
	for amount := range levels {
		amounts = append(amounts, amount)
	}
	sort.Ints(amounts)

	pots := make([]*pot, 0, len(amounts))
	prevLevel := 0
	for _, level := range amounts {
		current := &pot{}
		for _, pip := range p.tableOrder {
			current.amount += minInt(pip.contributed, level) - minInt(pip.contributed, prevLevel)
			if pip.isEligibleAbove(prevLevel) {
				current.eligible = append(current.eligible, pip)
			}
		}
		prevLevel = level

		if len(pots) > 0 {
			last := pots[len(pots)-1]
			// nobody can win these chips on their own, or the pot has the same players
			if len(current.eligible) == 0 || sameParticipants(last.eligible, current.eligible) {
				last.amount += current.amount
				continue
			}
		}

		pots = append(pots, current)
	}

	p.pots = pots
}

// Pots returns a list of pots
func (p *PotManager) Pots() Pots {
	pots := make(Pots, len(p.pots))
	for i, pt := range p.pots {
		eligible := make([]int, len(pt.eligible))
		for j, pip := range pt.eligible {
			eligible[j] = pip.ID()
		}

		pots[i] = &Pot{
			Amount:   pt.amount,
			Eligible: eligible,
		}
	}

	return pots
}

// PotsWithStaged returns the pots with the staged chips added to the current pot
func (p *PotManager) PotsWithStaged() Pots {
	pots := p.Pots()
	pots.Current().Amount += p.Staged()
	return pots
}

// Total returns the chips committed to all pots
func (p *PotManager) Total() int {
	total := 0
	for _, pt := range p.pots {
		total += pt.amount
	}

	return total
}

// IsSettled returns true if no chips are staged or left in any pot
func (p *PotManager) IsSettled() bool {
	return p.Total() == 0 && p.Staged() == 0
}

// Pay splits a single pot evenly between the winners
// Any odd chips go to the winners closest to the left of the dealer
func (p *PotManager) Pay(potIndex int, winners []int) (map[int]int, error) {
	if potIndex < 0 || potIndex >= len(p.pots) {
		return nil, ErrPotNotFound
	}

	pt := p.pots[potIndex]
	pips := make([]*participantInPot, 0, len(winners))
	for _, id := range winners {
		pip, ok := p.participants[id]
		if !ok {
			return nil, ErrParticipantNotFound
		}

		if !containsParticipant(pt.eligible, pip) {
			return nil, fmt.Errorf("seat %d is not eligible for pot %d: %w", id, potIndex, ErrNoEligibleWinner)
		}

		if !containsParticipant(pips, pip) {
			pips = append(pips, pip)
		}
	}

	if len(pips) == 0 {
		return nil, ErrNoEligibleWinner
	}

	payouts := make(map[int]int)
	p.payoutStarted = true
	p.split(pt, pips, payouts)
	return payouts, nil
}

// PayWinners pays every pot to the best tier of winners eligible for it
// winners is ordered best first, each tier holding the seats that tied
func (p *PotManager) PayWinners(winners [][]int) (map[int]int, error) {
	tiers := make([][]*participantInPot, len(winners))
	for i, tier := range winners {
		for _, id := range tier {
			pip, ok := p.participants[id]
			if !ok {
				return nil, ErrParticipantNotFound
			}

			tiers[i] = append(tiers[i], pip)
		}
	}

	// determine every pot's winners first, so nothing is paid if a pot cannot be awarded
	potWinners := make([][]*participantInPot, len(p.pots))
	for potIndex, pt := range p.pots {
		if pt.amount == 0 {
			continue
		}

		for _, tier := range tiers {
			eligible := make([]*participantInPot, 0, len(tier))
			for _, pip := range tier {
				if containsParticipant(pt.eligible, pip) && !containsParticipant(eligible, pip) {
					eligible = append(eligible, pip)
				}
			}

			if len(eligible) > 0 {
				potWinners[potIndex] = eligible
				break
			}
		}

		if potWinners[potIndex] == nil {
			return nil, fmt.Errorf("pot %d: %w", potIndex, ErrNoEligibleWinner)
		}
	}

	payouts := make(map[int]int)
	p.payoutStarted = true
	for potIndex, pt := range p.pots {
		if pt.amount == 0 {
			continue
		}

		p.split(pt, potWinners[potIndex], payouts)
	}

	return payouts, nil
}

func (p *PotManager) split(pt *pot, winners []*participantInPot, payouts map[int]int) {
	sorted := make([]*participantInPot, len(winners))
	copy(sorted, winners)
	sort.Sort(sortByTableIndex(sorted))

	share := pt.amount / len(sorted)
	remainder := pt.amount % len(sorted)
	for i, pip := range sorted {
		winnings := share
		if i < remainder {
			winnings++
		}

		pip.AdjustBalance(winnings)
		payouts[pip.ID()] += winnings
	}

	pt.amount = 0
}

func containsParticipant(list []*participantInPot, pip *participantInPot) bool {
	for _, item := range list {
		if item == pip {
			return true
		}
	}

	return false
}

func sameParticipants(a, b []*participantInPot) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
