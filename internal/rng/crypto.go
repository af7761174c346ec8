package rng

import (
	"crypto/rand"
	"math/big"
)

// Crypto picks numbers with crypto/rand, e.g. a random dealer seat
type Crypto struct{}

// Intn returns a random number from 0 <= x < n
func (c Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}
