package room

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"chiptable/pkg/holdem"

	"github.com/sirupsen/logrus"
)

// ErrDealerClosed is returned when a command is sent to a table that was closed
var ErrDealerClosed = errors.New("table is closed")

// Dealer serializes every command for a single table through its run loop
type Dealer struct {
	controller *holdem.Controller
	logger     logrus.FieldLogger

	execInRunLoop chan func()
	close         chan bool
	closeOnce     sync.Once
}

// NewDealer creates a new dealer object
// StartShift must be called before any command is executed
func NewDealer(logger logrus.FieldLogger, controller *holdem.Controller) *Dealer {
	return &Dealer{
		controller:    controller,
		logger:        logger.WithField("table", controller.ID()),
		execInRunLoop: make(chan func(), 256),
		close:         make(chan bool),
	}
}

// ID returns the id of the table
func (d *Dealer) ID() string {
	return d.controller.ID()
}

// StartShift starts the run loop
func (d *Dealer) StartShift() {
	go d.runLoop()
}

func (d *Dealer) runLoop() {
	d.logger.Debug("creating dealer run loop")
	for {
		select {
		case fn := <-d.execInRunLoop:
			fn()
		case <-d.close:
			d.logger.Debug("terminating dealer run loop")
			return
		}
	}
}

// Exec runs fn against the table in the run loop and waits for its result
func (d *Dealer) Exec(ctx context.Context, fn func(c *holdem.Controller) error) error {
	select {
	case <-d.close:
		return ErrDealerClosed
	default:
	}

	result := make(chan error, 1)
	job := func() {
		defer func() {
			if r := recover(); r != nil {
				d.logger.WithField("type", "exception").Errorf("recovered from panic: %v", r)
				result <- fmt.Errorf("table failed: %v", r)
			}
		}()

		result <- fn(d.controller)
	}

	select {
	case d.execInRunLoop <- job:
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-result:
		return err
	case <-d.close:
		return ErrDealerClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// State returns the state of the table
func (d *Dealer) State(ctx context.Context) (*holdem.TableState, error) {
	var state *holdem.TableState
	err := d.Exec(ctx, func(c *holdem.Controller) error {
		state = c.State()
		return nil
	})

	return state, err
}

// EndShift is called when the dealer is no longer needed
func (d *Dealer) EndShift() {
	d.closeOnce.Do(func() {
		close(d.close)
	})
}
