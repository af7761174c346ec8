package holdem

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRing(t *testing.T) {
	a := assert.New(t)

	ring, err := NewRing(playerNames(1))
	a.Nil(ring)
	a.Equal(PlayerCountError(1), err)
	a.EqualError(err, "expected between 2 and 10 players, got 1")

	ring, err = NewRing(playerNames(11))
	a.Nil(ring)
	a.Equal(PlayerCountError(11), err)

	ring, err = NewRing([]string{"Alice", "Bob", "Carol"})
	a.NoError(err)
	a.Equal(3, ring.Len())
	a.Equal([]int{0, 1, 2}, seatsOf(ring.Players()))
	a.Equal([]Status{StatusIdle, StatusIdle, StatusIdle}, statusesOf(ring.Players()))
	a.Nil(ring.Dealer())
	a.Nil(ring.Focus())

	p, err := ring.Player(1)
	a.NoError(err)
	a.Equal("Bob", p.Name())

	p, err = ring.Player(3)
	a.Equal(ErrSeatNotFound, err)
	a.Nil(p)
}

func TestRing_DerivedViews(t *testing.T) {
	a := assert.New(t)

	ring := setupRing(100, 100, 100, 100, 100)
	ring.players[1].status = StatusFolded
	ring.players[2].status = StatusAllIn
	ring.players[2].currentBet = 100
	ring.players[3].status = StatusSatOut
	ring.players[4].currentBet = 20

	a.Equal([]int{0, 1, 2, 4}, seatsOf(ring.Participating()))
	a.Equal([]int{0, 4}, seatsOf(ring.Active()))
	a.Equal([]int{0, 2, 4}, seatsOf(ring.Contesting()))
	a.Equal([]int{2, 4}, seatsOf(ring.Betting()))
	a.Equal(100, ring.HighestBet())

	// views are never cached
	ring.players[0].status = StatusFolded
	a.Equal([]int{4}, seatsOf(ring.Active()))
}

func TestRing_ActivePlayerAfter(t *testing.T) {
	a := assert.New(t)

	ring := setupRing(100, 100, 100, 100)
	p0 := ring.players[0]

	for increment, seat := range map[int]int{1: 1, 2: 2, 3: 3, 4: 0, 5: 1} {
		p, err := ring.ActivePlayerAfter(p0, increment)
		a.NoError(err)
		a.Equal(seat, p.Seat(), "increment %d", increment)
	}

	p, err := ring.ActivePlayerAfter(p0, 0)
	a.EqualError(err, "increment must be at least 1, got 0")
	a.Nil(p)

	ring.players[2].status = StatusFolded
	p, err = ring.ActivePlayerAfter(p0, 2)
	a.NoError(err)
	a.Equal(3, p.Seat())

	// the starting player does not need to be active
	p, err = ring.ActivePlayerAfter(ring.players[2], 1)
	a.NoError(err)
	a.Equal(3, p.Seat())

	for _, player := range ring.players {
		player.status = StatusFolded
	}

	p, err = ring.ActivePlayerAfter(p0, 1)
	a.Equal(ErrNoActivePlayers, err)
	a.Nil(p)
}

func TestRing_BlindRotation(t *testing.T) {
	a := assert.New(t)

	ring := setupRing(100, 100, 100, 100, 100, 100)
	ring.dealer = nil
	sb, err := ring.SmallBlind()
	a.Equal(ErrNoDealer, err)
	a.Nil(sb)

	bb, err := ring.BigBlind()
	a.Equal(ErrNoDealer, err)
	a.Nil(bb)

	n := ring.Len()
	for d := 0; d < n; d++ {
		ring.SetDealerPlayer(ring.players[d])
		a.True(ring.players[d].IsDealer())

		sb, err := ring.SmallBlind()
		a.NoError(err)
		a.Equal((d+1)%n, sb.Seat(), "small blind with dealer %d", d)

		bb, err := ring.BigBlind()
		a.NoError(err)
		a.Equal((d+2)%n, bb.Seat(), "big blind with dealer %d", d)
	}

	dealers := 0
	for _, p := range ring.players {
		if p.IsDealer() {
			dealers++
		}
	}
	a.Equal(1, dealers)

	// folded players are skipped
	ring.SetDealerPlayer(ring.players[0])
	ring.players[1].status = StatusFolded
	sb, _ = ring.SmallBlind()
	bb, _ = ring.BigBlind()
	a.Equal(2, sb.Seat())
	a.Equal(3, bb.Seat())
}

func TestRing_SetFocusPlayer(t *testing.T) {
	a := assert.New(t)

	ring := setupRing(100, 100, 100)
	a.NoError(ring.SetFocusPlayer(ring.players[1]))
	a.True(ring.players[1].HasFocus())
	a.Equal(1, ring.Focus().Seat())
	a.Equal(2, ring.NextFocus().Seat())

	a.NoError(ring.SetFocusPlayer(ring.players[2]))
	a.False(ring.players[1].HasFocus())
	a.True(ring.players[2].HasFocus())
	a.Equal(0, ring.NextFocus().Seat())

	ring.ClearFocus()
	a.Nil(ring.Focus())
	a.Nil(ring.NextFocus())
	a.False(ring.players[2].HasFocus())
}

func TestRing_SetInitialFocusPlayer(t *testing.T) {
	a := assert.New(t)

	ring := setupRing(100, 100, 100, 100)
	a.NoError(ring.SetInitialFocusPlayer())
	a.Equal(3, ring.Focus().Seat())

	ring.SetDealerPlayer(ring.players[2])
	a.NoError(ring.SetInitialFocusPlayer())
	a.Equal(1, ring.Focus().Seat())

	// heads up, the player after the dealer acts first
	ring = setupRing(100, 100)
	a.NoError(ring.SetInitialFocusPlayer())
	a.Equal(1, ring.Focus().Seat())

	for _, p := range ring.players {
		p.status = StatusAllIn
	}
	a.Equal(ErrNoActivePlayers, ring.SetInitialFocusPlayer())

	ring.dealer = nil
	a.Equal(ErrNoDealer, ring.SetInitialFocusPlayer())
}

func TestRing_IncrementFocusPlayer(t *testing.T) {
	a := assert.New(t)

	ring := setupRing(100, 100, 100, 100)
	a.Equal(ErrNoFocus, ring.IncrementFocusPlayer())

	a.NoError(ring.SetFocusPlayer(ring.players[0]))
	a.NoError(ring.IncrementFocusPlayer())
	a.Equal(1, ring.Focus().Seat())
	a.Equal(2, ring.NextFocus().Seat())

	// the next player folded after the focus was set
	ring.players[2].status = StatusFolded
	a.NoError(ring.IncrementFocusPlayer())
	a.Equal(3, ring.Focus().Seat())
	a.Equal(0, ring.NextFocus().Seat())

	a.NoError(ring.IncrementFocusPlayer())
	a.Equal(0, ring.Focus().Seat())
}

func TestRing_CheckAllForEliminations(t *testing.T) {
	a := assert.New(t)

	ring := setupRing(0, 100, 0, 50)
	ring.players[2].status = StatusSatOut

	eliminated := ring.CheckAllForEliminations()
	a.Equal([]int{0, 2}, seatsOf(eliminated))
	a.Equal([]Status{StatusEliminated, StatusIdle, StatusEliminated, StatusIdle}, statusesOf(ring.Players()))
	a.False(ring.players[0].IsParticipating())

	a.Empty(ring.CheckAllForEliminations())
}

func TestRing_ResetForNewRound(t *testing.T) {
	a := assert.New(t)

	ring := setupRing(100, 100, 100, 100)
	statuses := []Status{StatusFolded, StatusAllIn, StatusSatOut, StatusIdle}
	for i, p := range ring.players {
		p.status = statuses[i]
		p.currentBet = 10 * (i + 1)
	}

	ring.ResetForNewRound()
	a.Equal(statuses, statusesOf(ring.Players()))
	for _, p := range ring.players {
		a.Equal(0, p.CurrentBet())
	}

	ring.players[3].status = StatusRaised
	ring.players[3].currentBet = 30
	ring.ResetForNewRound()
	a.Equal(StatusIdle, ring.players[3].Status())
	a.Equal(0, ring.HighestBet())
}

func TestRing_ResetForNewMatch(t *testing.T) {
	a := assert.New(t)

	ring := setupRing(100, 100, 100, 100, 100)
	statuses := []Status{StatusFolded, StatusAllIn, StatusSatOut, StatusEliminated, StatusPartialMatch}
	for i, p := range ring.players {
		p.status = statuses[i]
		p.currentBet = 5
	}

	ring.ResetForNewMatch()
	a.Equal([]Status{StatusIdle, StatusIdle, StatusSatOut, StatusEliminated, StatusIdle}, statusesOf(ring.Players()))
	a.Equal(0, ring.HighestBet())

	ring.ResetForNewTable()
	a.Equal([]Status{StatusIdle, StatusIdle, StatusIdle, StatusIdle, StatusIdle}, statusesOf(ring.Players()))
}
