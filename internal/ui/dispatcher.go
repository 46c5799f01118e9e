package ui

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Action is a unit of background work started from a UI event
type Action func(ctx context.Context) error

// Dispatcher runs UI actions off the UI goroutine. Starting an action cancels
// the one before it, so only the most recent action commits its result.
type Dispatcher struct {
	logger zerolog.Logger
	base   context.Context

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewDispatcher creates a dispatcher whose actions derive from ctx
func NewDispatcher(ctx context.Context, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{
		logger: logger,
		base:   ctx,
	}
}

// Run cancels the running action, if any, and starts action in a new
// goroutine. It returns the action id used in logs.
func (d *Dispatcher) Run(name string, action Action) string {
	id := uuid.NewString()

	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	ctx, cancel := context.WithCancel(d.base)
	d.seq++
	seq := d.seq
	d.cancel = cancel
	d.wg.Add(1)
	d.mu.Unlock()

	logger := d.logger.With().Str("action", name).Str("action_id", id).Logger()
	logger.Debug().Msg("Action started")

	go func() {
		defer d.wg.Done()
		defer d.release(seq, cancel)

		started := time.Now()
		err := action(ctx)

		switch {
		case err == nil:
			logger.Debug().Dur("elapsed", time.Since(started)).Msg("Action finished")
		case errors.Is(err, context.Canceled):
			logger.Debug().Dur("elapsed", time.Since(started)).Msg("Action superseded")
		default:
			logger.Warn().Err(err).Dur("elapsed", time.Since(started)).Msg("Action failed")
		}
	}()

	return id
}

// release cancels the finished action's context and forgets it unless a
// newer action already replaced it
func (d *Dispatcher) release(seq uint64, cancel context.CancelFunc) {
	cancel()

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.seq == seq {
		d.cancel = nil
	}
}

// Stop cancels the running action and waits for all actions to return
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// Wait blocks until every started action has returned
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}
