package rng

// Sequence replays fixed numbers, wrapping around when it runs out
// Each number is reduced modulo n, so a Sequence never returns a value out of range
type Sequence struct {
	values []int
	next   int
}

// NewSequence returns a Sequence that replays values in order
func NewSequence(values ...int) *Sequence {
	if len(values) == 0 {
		values = []int{0}
	}

	return &Sequence{values: values}
}

// Intn returns the next number in the sequence
func (s *Sequence) Intn(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++

	v %= n
	if v < 0 {
		v += n
	}

	return v
}
