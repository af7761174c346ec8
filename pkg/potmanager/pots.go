package potmanager

// Pot is a snapshot of a single pot
type Pot struct {
	Amount int `json:"amount"`
	// Eligible are the seats that can win the pot, in table order
	Eligible []int `json:"eligible"`
}

// IsEligible returns true if the seat can win the pot
func (p *Pot) IsEligible(seat int) bool {
	for _, s := range p.Eligible {
		if s == seat {
			return true
		}
	}

	return false
}

// Pots is an ordered list of pots. The first pot is the main pot
type Pots []*Pot

// Total returns the combined total of all pots
func (p Pots) Total() int {
	total := 0
	for _, pot := range p {
		total += pot.Amount
	}

	return total
}

// Main returns the main pot
func (p Pots) Main() *Pot {
	if len(p) == 0 {
		return nil
	}

	return p[0]
}

// Current returns the newest pot, which receives new chips
func (p Pots) Current() *Pot {
	if len(p) == 0 {
		return nil
	}

	return p[len(p)-1]
}
