package potmanager

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWinManager(t *testing.T) {
	a := assert.New(t)

	wm := NewWinManager()
	wm.AddParticipant(1, 10)
	wm.AddParticipant(5, 30)
	wm.AddParticipant(2, 20)
	wm.AddParticipant(4, 20)
	wm.AddParticipant(3, 30)

	a.Equal([][]int{{3, 5}, {2, 4}, {1}}, wm.GetSortedTiers())
	a.Empty(NewWinManager().GetSortedTiers())
}
