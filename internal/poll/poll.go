// Package poll runs the fixed-interval background refreshes. Tasks run once
// immediately, then on every tick until the scheduler stops. A task error
// is logged and the loop keeps going; the snapshot a task failed to update
// simply stays on its previous content.
package poll

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Task is one refresh. The context is cancelled when the scheduler stops.
type Task func(ctx context.Context) error

// TickerFunc builds the tick channel for an interval. Tests swap it for a
// hand-driven channel to advance virtual time.
type TickerFunc func(d time.Duration) (<-chan time.Time, func())

func realTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

type Scheduler struct {
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
	ticker TickerFunc
}

func NewScheduler(ctx context.Context) *Scheduler {
	return newScheduler(ctx, realTicker)
}

// NewSchedulerWithTicker exists for tests.
func NewSchedulerWithTicker(ctx context.Context, ticker TickerFunc) *Scheduler {
	return newScheduler(ctx, ticker)
}

func newScheduler(ctx context.Context, ticker TickerFunc) *Scheduler {
	ctx, cancel := context.WithCancel(ctx)
	return &Scheduler{ctx: ctx, cancel: cancel, ticker: ticker}
}

// Every starts a refresh loop: one run now, one per interval after that.
func (s *Scheduler) Every(name string, interval time.Duration, task Task) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		s.run(name, task)

		ticks, stop := s.ticker(interval)
		defer stop()
		for {
			select {
			case <-s.ctx.Done():
				return
			case <-ticks:
				s.run(name, task)
			}
		}
	}()
}

func (s *Scheduler) run(name string, task Task) {
	if err := task(s.ctx); err != nil {
		if s.ctx.Err() != nil {
			return
		}
		log.Warn().Err(err).Str("task", name).Msg("background refresh failed")
	}
}

// Stop cancels every loop and waits for running tasks to return.
func (s *Scheduler) Stop() {
	s.cancel()
	s.wg.Wait()
}
