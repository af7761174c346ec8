package holdem

import (
	"fmt"
	"sort"

	"chiptable/internal/rng"
	"chiptable/pkg/action"
	"chiptable/pkg/potmanager"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Controller runs the round, match, and table lifecycle of a single table
// A Controller is not safe for concurrent use, see room.Dealer
type Controller struct {
	id     string
	logger logrus.FieldLogger
	clock  quartz.Clock
	rng    rng.Generator

	options Options
	ring    *Ring
	pots    *potmanager.PotManager
	wager   *WagerEngine
	round   BettingRound
	match   int

	// keepDealer skips the dealer rotation for the next match
	keepDealer bool

	log gameLog
}

// ControllerOption configures a Controller
type ControllerOption func(c *Controller)

// WithClock sets the clock used for log timestamps
func WithClock(clock quartz.Clock) ControllerOption {
	return func(c *Controller) {
		c.clock = clock
	}
}

// WithRNG sets the generator used to pick a random dealer
func WithRNG(generator rng.Generator) ControllerOption {
	return func(c *Controller) {
		c.rng = generator
	}
}

// NewController opens a table and starts the first match
func NewController(logger logrus.FieldLogger, opts Options, options ...ControllerOption) (*Controller, error) {
	c := &Controller{
		id:    uuid.New().String(),
		clock: quartz.NewReal(),
		rng:   rng.Crypto{},
		log:   make(gameLog, 0, maxLogMessages),
	}

	for _, option := range options {
		option(c)
	}

	c.logger = logger.WithField("table", c.id)
	if err := c.InitialiseNewTable(opts); err != nil {
		return nil, err
	}

	return c, nil
}

// ID returns the table's unique identifier
func (c *Controller) ID() string {
	return c.id
}

// InitialiseNewTable resets every player, seeds the starting balances, and starts the first match
func (c *Controller) InitialiseNewTable(opts Options) error {
	if err := opts.validateStructure(); err != nil {
		return err
	}

	if c.ring == nil || c.ring.Len() != len(opts.PlayerNames) {
		ring, err := NewRing(opts.PlayerNames)
		if err != nil {
			return err
		}

		c.ring = ring
	} else {
		for i, p := range c.ring.players {
			p.name = opts.PlayerNames[i]
		}
	}

	c.ring.ResetForNewTable()
	c.ring.ClearFocus()
	for _, p := range c.ring.players {
		p.balance = opts.StartingChips
	}

	dealerSeat := opts.DealerSeat
	if opts.RandomDealer {
		dealerSeat = c.rng.Intn(c.ring.Len())
	}

	c.ring.SetDealerPlayer(c.ring.players[dealerSeat])
	c.options = opts
	c.match = 1
	c.keepDealer = false

	c.logf(nil, "new table with %d players and %d chips each", c.ring.Len(), opts.StartingChips)
	return c.startMatch()
}

// InitiateNewMatch starts the next match once the pots of the previous match are paid out
// The dealer button moves to the next participating player
func (c *Controller) InitiateNewMatch() error {
	if !c.pots.IsSettled() {
		return ErrPotsNotSettled
	}

	if c.countEligibleForMatch() < 2 {
		return ErrNotEnoughPlayers
	}

	c.ring.ResetForNewMatch()
	for _, p := range c.ring.CheckAllForEliminations() {
		c.logf([]int{p.seat}, "%s is eliminated", p.name)
	}

	dealer := c.ring.Dealer()
	if !c.keepDealer || !dealer.IsParticipating() {
		next, err := c.ring.participatingPlayerAfter(dealer)
		if err != nil {
			return err
		}

		c.ring.SetDealerPlayer(next)
	}

	c.keepDealer = false
	c.match++
	return c.startMatch()
}

// countEligibleForMatch counts the players who will participate in the next match
func (c *Controller) countEligibleForMatch() int {
	n := 0
	for _, p := range c.ring.players {
		if p.status != StatusSatOut && p.status != StatusEliminated && p.balance > 0 {
			n++
		}
	}

	return n
}

func (c *Controller) startMatch() error {
	c.pots = potmanager.New()
	dealer := c.ring.Dealer()
	n := c.ring.Len()
	for i := 1; i <= n; i++ {
		if p := c.ring.players[(dealer.seat+i)%n]; p.IsParticipating() {
			c.pots.SeatParticipant(p)
		}
	}

	c.wager = NewWagerEngine(c.ring, c.pots, c.options.SmallBlind, c.options.BigBlind)
	c.round = BettingRoundPreFlop
	c.ring.ClearFocus()
	if err := c.ring.SetInitialFocusPlayer(); err != nil {
		return err
	}

	c.logf([]int{dealer.seat}, "match %d, %s is the dealer", c.match, dealer.name)

	sb, bb, err := c.wager.PlaceBlinds()
	if err != nil {
		return err
	}

	c.logf([]int{sb.seat}, "%s posts the small blind of %d", sb.name, sb.currentBet)
	c.logf([]int{bb.seat}, "%s posts the big blind of %d", bb.name, bb.currentBet)

	// a blind can put the first player to act all in
	if focus := c.ring.Focus(); !focus.IsActive() {
		return c.checkForBettingRoundEnd()
	}

	return nil
}

// InitiateNewRound commits the bets of the current round and moves to the next betting round
// The turn goes to the small blind, or to nobody at showdown
func (c *Controller) InitiateNewRound() error {
	if c.round == BettingRoundShowdown {
		return ErrBettingClosed
	}

	if err := c.commit(); err != nil {
		return err
	}

	c.ring.ResetForNewRound()
	c.round = c.round.Next()
	c.logf(nil, "%s betting round", c.round)

	if c.round == BettingRoundShowdown {
		c.ring.ClearFocus()
		return nil
	}

	// the first active player left of the dealer opens every round after the flop
	sb, err := c.ring.SmallBlind()
	if err == ErrNoActivePlayers {
		c.ring.ClearFocus()
		return nil
	} else if err != nil {
		return err
	}

	return c.ring.SetFocusPlayer(sb)
}

// CheckForBettingRoundEnd moves the match forward after a player acted
func (c *Controller) CheckForBettingRoundEnd() error {
	if c.round == BettingRoundShowdown {
		return ErrBettingClosed
	}

	return c.checkForBettingRoundEnd()
}

func (c *Controller) checkForBettingRoundEnd() error {
	if contesting := c.ring.Contesting(); len(contesting) <= 1 {
		return c.endUncontested(contesting)
	}

	active := c.ring.Active()
	if len(active) == 0 || (len(active) == 1 && active[0].currentBet >= c.ring.HighestBet()) {
		return c.closeBetting()
	}

	allMatched := true
	for _, p := range active {
		if !p.status.HasMatched() {
			allMatched = false
			break
		}
	}

	if !allMatched {
		return c.ring.IncrementFocusPlayer()
	}

	return c.InitiateNewRound()
}

// closeBetting skips the remaining betting rounds when nobody is left to bet against
func (c *Controller) closeBetting() error {
	if err := c.commit(); err != nil {
		return err
	}

	c.ring.ResetForNewRound()
	c.ring.ClearFocus()
	c.round = BettingRoundShowdown
	c.logf(nil, "betting is closed")
	return nil
}

// endUncontested pays every pot to the last player who did not fold
func (c *Controller) endUncontested(contesting []*Player) error {
	if err := c.closeBetting(); err != nil {
		return err
	}

	if len(contesting) == 0 {
		return nil
	}

	winner := contesting[0]
	payouts, err := c.pots.PayWinners([][]int{{winner.seat}})
	if err != nil {
		return err
	}

	c.logf([]int{winner.seat}, "%s wins %d uncontested", winner.name, payouts[winner.seat])
	return nil
}

// commit moves the staged bets into the pots
func (c *Controller) commit() error {
	bets := 0
	for _, p := range c.ring.players {
		bets += p.currentBet
	}

	if staged := c.pots.Staged(); staged != bets {
		panic(fmt.Sprintf("staged chips (%d) do not match the bets on the table (%d)", staged, bets))
	}

	return c.pots.Commit()
}

// Dispatch applies the action for the seat that has the turn
// amount is only used by action.Bet and action.Raise
func (c *Controller) Dispatch(seat int, act action.Action, amount int) error {
	p, err := c.actor(seat)
	if err != nil {
		return err
	}

	switch act {
	case action.Fold:
		err = c.wager.Fold(p)
	case action.Check:
		err = c.wager.Check(p)
	case action.Call:
		err = c.wager.Call(p)
	case action.Bet:
		err = c.wager.Bet(p, amount)
	case action.Raise:
		err = c.wager.Raise(p, amount)
	case action.AllIn:
		err = c.wager.AllIn(p, false)
	default:
		err = PreconditionError(fmt.Sprintf("unknown action: %s", string(act)))
	}

	if err != nil {
		return err
	}

	if p.status == StatusAllIn {
		act = action.AllIn
	}

	c.logf([]int{p.seat}, "%s %s", p.name, act.LogMessage(p.currentBet))
	return c.checkForBettingRoundEnd()
}

func (c *Controller) actor(seat int) (*Player, error) {
	if c.round == BettingRoundShowdown {
		return nil, ErrBettingClosed
	}

	p, err := c.ring.Player(seat)
	if err != nil {
		return nil, err
	}

	if c.ring.Focus() != p {
		return nil, ErrNotPlayersTurn
	}

	return p, nil
}

// Fold folds for the seat
func (c *Controller) Fold(seat int) error {
	return c.Dispatch(seat, action.Fold, 0)
}

// Check checks for the seat
func (c *Controller) Check(seat int) error {
	return c.Dispatch(seat, action.Check, 0)
}

// Call calls the table bet for the seat
func (c *Controller) Call(seat int) error {
	return c.Dispatch(seat, action.Call, 0)
}

// Raise raises the table bet by amount for the seat
func (c *Controller) Raise(seat int, amount int) error {
	return c.Dispatch(seat, action.Raise, amount)
}

// Bet adds amount to the seat's bet
func (c *Controller) Bet(seat int, amount int) error {
	return c.Dispatch(seat, action.Bet, amount)
}

// AllIn wagers the seat's entire balance
func (c *Controller) AllIn(seat int) error {
	return c.Dispatch(seat, action.AllIn, 0)
}

// AdvanceTurn passes the turn to the next player without acting
func (c *Controller) AdvanceTurn() error {
	if c.round == BettingRoundShowdown {
		return ErrBettingClosed
	}

	if err := c.ring.IncrementFocusPlayer(); err != nil {
		return err
	}

	focus := c.ring.Focus()
	c.logf([]int{focus.seat}, "turn passed to %s", focus.name)
	return nil
}

// SetDealer gives the dealer button to the seat for the next match
func (c *Controller) SetDealer(seat int) error {
	if err := c.betweenMatches(); err != nil {
		return err
	}

	p, err := c.ring.Player(seat)
	if err != nil {
		return err
	}

	if !p.IsParticipating() {
		return ErrPlayerCannotAct
	}

	c.ring.SetDealerPlayer(p)
	c.keepDealer = true
	c.logf([]int{p.seat}, "%s is the dealer", p.name)
	return nil
}

// SitOut takes the seat out of the following matches, or brings it back
func (c *Controller) SitOut(seat int, sitOut bool) error {
	if err := c.betweenMatches(); err != nil {
		return err
	}

	p, err := c.ring.Player(seat)
	if err != nil {
		return err
	}

	if p.status == StatusEliminated {
		return ErrPlayerCannotAct
	}

	if sitOut {
		p.status = StatusSatOut
		c.logf([]int{p.seat}, "%s sits out", p.name)
		return nil
	}

	if p.status == StatusSatOut {
		p.status = StatusIdle
		c.logf([]int{p.seat}, "%s is back", p.name)
	}

	return nil
}

func (c *Controller) betweenMatches() error {
	if c.round != BettingRoundShowdown || !c.pots.IsSettled() {
		return ErrMatchInProgress
	}

	return nil
}

// PayWinners pays out every pot at showdown
// tiers holds the seats ranked by their hands, best first, with ties in the same tier
func (c *Controller) PayWinners(tiers [][]int) (map[int]int, error) {
	if c.round != BettingRoundShowdown {
		return nil, ErrNotShowdown
	}

	payouts, err := c.pots.PayWinners(tiers)
	if err != nil {
		return nil, err
	}

	c.logPayouts(payouts)
	return payouts, nil
}

// SettleByStrength pays out every pot to the seats with the highest hand strength
func (c *Controller) SettleByStrength(strengths map[int]int) (map[int]int, error) {
	wm := potmanager.NewWinManager()
	for seat, strength := range strengths {
		wm.AddParticipant(seat, strength)
	}

	return c.PayWinners(wm.GetSortedTiers())
}

// Pay splits a single pot evenly between the seats
func (c *Controller) Pay(potIndex int, seats []int) (map[int]int, error) {
	if c.round != BettingRoundShowdown {
		return nil, ErrNotShowdown
	}

	payouts, err := c.pots.Pay(potIndex, seats)
	if err != nil {
		return nil, err
	}

	c.logPayouts(payouts)
	return payouts, nil
}

func (c *Controller) logPayouts(payouts map[int]int) {
	seats := make([]int, 0, len(payouts))
	for seat := range payouts {
		seats = append(seats, seat)
	}
	sort.Ints(seats)

	for _, seat := range seats {
		c.logf([]int{seat}, "%s wins %d", c.ring.players[seat].name, payouts[seat])
	}
}

// Round returns the current betting round
func (c *Controller) Round() BettingRound {
	return c.round
}

// Match returns the match number, starting at 1
func (c *Controller) Match() int {
	return c.match
}

// HighestBet returns the table bet for the current round
func (c *Controller) HighestBet() int {
	return c.ring.HighestBet()
}

// Pots returns the pots, including the bets of the current round
func (c *Controller) Pots() potmanager.Pots {
	return c.pots.PotsWithStaged()
}

// Settled returns true if every pot has been paid out
func (c *Controller) Settled() bool {
	return c.pots.IsSettled()
}

// Focus returns the player whose turn it is, or nil
func (c *Controller) Focus() *Player {
	return c.ring.Focus()
}

// Dealer returns the player with the dealer button
func (c *Controller) Dealer() *Player {
	return c.ring.Dealer()
}

// Players returns every seat in table order
func (c *Controller) Players() []*Player {
	return c.ring.Players()
}

// Player returns the player in the seat
func (c *Controller) Player(seat int) (*Player, error) {
	return c.ring.Player(seat)
}

// ChipTotal returns every chip at the table
// The total does not change while a match is played
func (c *Controller) ChipTotal() int {
	total := c.pots.Total()
	for _, p := range c.ring.players {
		total += p.balance + p.currentBet
	}

	return total
}

// ActionsForSeat returns the actions the seat can take right now
func (c *Controller) ActionsForSeat(seat int) []action.Action {
	p, err := c.actor(seat)
	if err != nil || !p.IsActive() {
		return []action.Action{}
	}

	actions := make([]action.Action, 0, 4)
	toCall := c.wager.ToCall(p)
	if toCall == 0 {
		actions = append(actions, action.Check)
		if p.balance > 0 {
			actions = append(actions, action.Bet)
		}
	} else {
		actions = append(actions, action.Call)
		if p.balance > toCall {
			actions = append(actions, action.Raise)
		}
	}

	if p.balance > 0 {
		actions = append(actions, action.AllIn)
	}

	return append(actions, action.Fold)
}

// Log returns the most recent log messages, oldest first
func (c *Controller) Log() []*LogMessage {
	log := make([]*LogMessage, len(c.log))
	copy(log, c.log)
	return log
}
