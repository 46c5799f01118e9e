package ui

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestDispatcherCancelsPreviousAction(t *testing.T) {
	d := NewDispatcher(context.Background(), zerolog.Nop())

	started := make(chan struct{})
	firstErr := make(chan error, 1)
	d.Run("first", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		firstErr <- ctx.Err()
		return ctx.Err()
	})
	<-started

	var secondCtxErr atomic.Value
	d.Run("second", func(ctx context.Context) error {
		if err := ctx.Err(); err != nil {
			secondCtxErr.Store(err)
		}
		return nil
	})
	d.Wait()

	assert.ErrorIs(t, <-firstErr, context.Canceled)
	assert.Nil(t, secondCtxErr.Load(), "latest action must not be cancelled")
}

func TestDispatcherStopCancelsRunningAction(t *testing.T) {
	d := NewDispatcher(context.Background(), zerolog.Nop())

	started := make(chan struct{})
	var cancelled atomic.Bool
	d.Run("long", func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		cancelled.Store(true)
		return ctx.Err()
	})
	<-started

	d.Stop()
	assert.True(t, cancelled.Load())
}

func TestDispatcherActionIDs(t *testing.T) {
	d := NewDispatcher(context.Background(), zerolog.Nop())
	noop := func(context.Context) error { return nil }

	first := d.Run("noop", noop)
	second := d.Run("noop", noop)
	d.Wait()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
