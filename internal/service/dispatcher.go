package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"mvpduo/internal/logger"

	"go.uber.org/zap"
)

// ErrDispatcherClosed is delivered to tasks dispatched after Close.
var ErrDispatcherClosed = errors.New("dispatcher is closed")

// Dispatcher runs best-effort tasks outside the request that triggered them.
type Dispatcher struct {
	timeout time.Duration
	mu      sync.Mutex
	closed  bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher whose tasks are each bounded by timeout.
func NewDispatcher(timeout time.Duration) *Dispatcher {
	return &Dispatcher{timeout: timeout}
}

// Go runs fn in its own goroutine. fn's context keeps ctx's values but not its
// cancellation, and expires after the dispatcher timeout. The returned channel
// receives fn's result exactly once and may be ignored.
func (d *Dispatcher) Go(ctx context.Context, name string, fn func(ctx context.Context) error) <-chan error {
	done := make(chan error, 1)

	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		logger.Get().Warn("Dispatcher: task rejected after close", zap.String("task", name))
		done <- ErrDispatcherClosed
		return done
	}
	d.wg.Add(1)
	d.mu.Unlock()

	taskCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	go func() {
		defer d.wg.Done()
		defer cancel()
		defer func() {
			if p := recover(); p != nil {
				err := fmt.Errorf("task %s panicked: %v", name, p)
				logger.Get().Error("Dispatcher: background task panicked", zap.String("task", name), zap.Any("panic", p))
				done <- err
			}
		}()

		start := time.Now()
		err := fn(taskCtx)
		if err != nil {
			logger.Get().Warn("Dispatcher: background task failed",
				zap.String("task", name),
				zap.Duration("elapsed", time.Since(start)),
				zap.Error(err))
		}
		done <- err
	}()
	return done
}

// Close stops accepting tasks and waits for the running ones like Wait.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	d.closed = true
	d.mu.Unlock()
	return d.Wait(ctx)
}

// Wait blocks until every dispatched task has finished or ctx is done. Tasks
// dispatched while Wait runs may or may not be waited for; use Close at shutdown.
func (d *Dispatcher) Wait(ctx context.Context) error {
	drained := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(drained)
	}()
	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
