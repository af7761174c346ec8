package room

import (
	"errors"
	"sort"
	"sync"

	"chiptable/pkg/holdem"

	"github.com/sirupsen/logrus"
)

// ErrTableNotFound is returned for an unknown table id
var ErrTableNotFound = errors.New("table not found")

// PitBoss keeps track of the open tables and their dealers
type PitBoss struct {
	logger  logrus.FieldLogger
	options []holdem.ControllerOption

	dealers map[string]*Dealer
	lock    sync.RWMutex
}

// NewPitBoss returns a new PitBoss
// options are applied to every table it opens
func NewPitBoss(logger logrus.FieldLogger, options ...holdem.ControllerOption) *PitBoss {
	return &PitBoss{
		logger:  logger,
		options: options,
		dealers: make(map[string]*Dealer),
	}
}

// OpenTable validates the options, opens a table, and starts its dealer
func (p *PitBoss) OpenTable(opts holdem.Options) (*Dealer, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	controller, err := holdem.NewController(p.logger, opts, p.options...)
	if err != nil {
		return nil, err
	}

	dealer := NewDealer(p.logger, controller)
	dealer.StartShift()

	p.lock.Lock()
	p.dealers[dealer.ID()] = dealer
	p.lock.Unlock()

	p.logger.WithField("table", dealer.ID()).Info("table opened")
	return dealer, nil
}

// Dealer returns the dealer of the table
func (p *PitBoss) Dealer(id string) (*Dealer, error) {
	p.lock.RLock()
	defer p.lock.RUnlock()

	dealer, ok := p.dealers[id]
	if !ok {
		return nil, ErrTableNotFound
	}

	return dealer, nil
}

// Tables returns the ids of every open table, sorted
func (p *PitBoss) Tables() []string {
	p.lock.RLock()
	defer p.lock.RUnlock()

	ids := make([]string, 0, len(p.dealers))
	for id := range p.dealers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// CloseTable stops the dealer and forgets the table
func (p *PitBoss) CloseTable(id string) error {
	p.lock.Lock()
	dealer, ok := p.dealers[id]
	delete(p.dealers, id)
	p.lock.Unlock()

	if !ok {
		return ErrTableNotFound
	}

	dealer.EndShift()
	p.logger.WithField("table", id).Info("table closed")
	return nil
}

// EndShift closes every table
func (p *PitBoss) EndShift() {
	for _, id := range p.Tables() {
		_ = p.CloseTable(id)
	}
}
