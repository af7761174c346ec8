package rng

// Generator picks numbers for the table, e.g. the first dealer seat
// Tests swap in a Sequence to make the pick repeatable
type Generator interface {
	// Intn returns a number in [0, n)
	Intn(n int) int
}
