package holdem

import (
	"fmt"
	"io"
	"testing"

	"chiptable/pkg/potmanager"

	"github.com/coder/quartz"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func playerNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("Player %d", i+1)
	}

	return names
}

// setupRing returns a ring with the dealer in seat 0
func setupRing(balances ...int) *Ring {
	ring, err := NewRing(playerNames(len(balances)))
	if err != nil {
		panic(err)
	}

	for i, balance := range balances {
		ring.players[i].balance = balance
	}

	ring.SetDealerPlayer(ring.players[0])
	return ring
}

// setupWager seats every player in the pots, starting left of the dealer in seat 0
func setupWager(balances ...int) (*Ring, *potmanager.PotManager, *WagerEngine) {
	ring := setupRing(balances...)
	pots := potmanager.New()
	n := ring.Len()
	for i := 1; i <= n; i++ {
		pots.SeatParticipant(ring.players[i%n])
	}

	return ring, pots, NewWagerEngine(ring, pots, 5, 10)
}

func setupController(t *testing.T, opts Options) (*Controller, *quartz.Mock) {
	t.Helper()

	clock := quartz.NewMock(t)
	c, err := NewController(testLogger(), opts, WithClock(clock))
	require.NoError(t, err)
	return c, clock
}

// setupControllerWithBalances starts a table with the dealer in seat 0 and uneven balances
func setupControllerWithBalances(t *testing.T, balances ...int) *Controller {
	t.Helper()

	opts := DefaultOptions()
	opts.PlayerNames = playerNames(len(balances))
	c, _ := setupController(t, opts)

	c.ring.ResetForNewTable()
	for i, balance := range balances {
		c.ring.players[i].balance = balance
	}

	require.NoError(t, c.startMatch())
	return c
}

func balancesOf(players []*Player) []int {
	balances := make([]int, len(players))
	for i, p := range players {
		balances[i] = p.balance
	}

	return balances
}

func statusesOf(players []*Player) []Status {
	statuses := make([]Status, len(players))
	for i, p := range players {
		statuses[i] = p.status
	}

	return statuses
}

func seatsOf(players []*Player) []int {
	seats := make([]int, len(players))
	for i, p := range players {
		seats[i] = p.seat
	}

	return seats
}

func assertFocus(t *testing.T, c *Controller, seat int, msgAndArgs ...interface{}) {
	t.Helper()
	if assert.NotNil(t, c.Focus(), msgAndArgs...) {
		assert.Equal(t, seat, c.Focus().Seat(), msgAndArgs...)
	}
}
