package potmanager

import (
	"sort"
)

type tier struct {
	strength int
	seats    []int
}

// WinManager groups seats by a hand strength supplied by the caller
// Higher strengths win. Hand evaluation itself happens outside of this package
type WinManager map[int]*tier

// NewWinManager returns an empty WinManager
func NewWinManager() WinManager {
	return make(WinManager)
}

// AddParticipant records the strength of the seat's hand
func (w WinManager) AddParticipant(seat int, handStrength int) {
	t, ok := w[handStrength]
	if !ok {
		t = &tier{
			strength: handStrength,
			seats:    make([]int, 0),
		}
	}

	t.seats = append(t.seats, seat)
	w[handStrength] = t
}

// GetSortedTiers returns the seats grouped by strength, strongest first
func (w WinManager) GetSortedTiers() [][]int {
	tiers := make([]*tier, 0, len(w))
	for _, tier := range w {
		tiers = append(tiers, tier)
	}

	sort.Sort(sort.Reverse(sortByStrength(tiers)))

	tieredSeats := make([][]int, len(tiers))
	for i, t := range tiers {
		seats := make([]int, len(t.seats))
		copy(seats, t.seats)
		sort.Ints(seats)
		tieredSeats[i] = seats
	}

	return tieredSeats
}

type sortByStrength []*tier

func (s sortByStrength) Len() int {
	return len(s)
}

func (s sortByStrength) Less(i, j int) bool {
	return s[i].strength < s[j].strength
}

func (s sortByStrength) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
