package potmanager

// Participant provides an interface for a seat that contributes chips to the pots
type Participant interface {
	// ID is the stable seat index of the participant
	ID() int
	IsFolded() bool
	IsAllIn() bool
	AdjustBalance(amount int)
}

// participantInPot is a participant in a pot
type participantInPot struct {
	Participant
	// tableIndex is where the player is seated at the table
	tableIndex int
	// staged keeps track of how much the player is risking on the current betting round
	staged int
	// contributed is everything the player committed to the pots during the match
	contributed int
}

// commit is called when the betting round is complete
func (p *participantInPot) commit() {
	p.contributed += p.staged
	p.staged = 0
}

// isEligibleAbove returns true if the participant can win chips contributed above level
func (p *participantInPot) isEligibleAbove(level int) bool {
	return !p.IsFolded() && p.contributed > level
}

type sortByTableIndex []*participantInPot

func (s sortByTableIndex) Len() int {
	return len(s)
}

func (s sortByTableIndex) Less(i, j int) bool {
	return s[i].tableIndex < s[j].tableIndex
}

func (s sortByTableIndex) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}
