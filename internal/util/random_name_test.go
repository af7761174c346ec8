package util

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetRandomName(t *testing.T) {
	a := assert.New(t)

	random = rand.New(rand.NewSource(0)) // nolint:gosec
	first := []string{GetRandomName(), GetRandomName()}

	random = rand.New(rand.NewSource(0)) // nolint:gosec
	a.Equal(first, []string{GetRandomName(), GetRandomName()})

	parts := strings.Split(first[0], " ")
	a.Len(parts, 2)
	a.Contains(adjectives, parts[0])
	a.Contains(animals, parts[1])
}

func TestSeatNames(t *testing.T) {
	a := assert.New(t)

	random = rand.New(rand.NewSource(1)) // nolint:gosec
	names := SeatNames([]string{"Alice", " ", "Bob "}, 5)
	a.Len(names, 5)
	a.Equal("Alice", names[0])
	a.Equal("Bob", names[2])

	seen := make(map[string]bool)
	for _, name := range names {
		a.NotEmpty(name)
		a.False(seen[name], "duplicate %s", name)
		seen[name] = true
	}

	a.Equal([]string{"A", "B", "C"}, SeatNames([]string{"A", "B", "C"}, 2))
	a.Len(SeatNames(nil, 3), 3)
}
