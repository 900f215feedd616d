package pipeline

import (
	"context"
	"time"

	"github.com/abhisek/kidlingo/internal/store"
)

// DrainPending processes every pending media source, oldest first, one at
// a time. Failures are already recorded on the media row, so they are
// logged and the drain moves on. Failed items are not retried here.
func (p *Processor) DrainPending(ctx context.Context) (int, error) {
	items, err := p.media.ListNotDone(ctx)
	if err != nil {
		return 0, err
	}

	processed := 0
	for _, m := range items {
		if m.Status != store.StatusPending {
			continue
		}
		if err := ctx.Err(); err != nil {
			return processed, err
		}
		if _, err := p.Process(ctx, m.ID, Options{}); err != nil {
			p.log.Warn("queued media failed", "media_id", m.ID, "name", m.Name, "error", err)
			continue
		}
		processed++
	}
	return processed, nil
}

// QueueConfig controls the background queue.
type QueueConfig struct {
	// PollInterval re-checks the store for pending media that arrived
	// without a notification. Zero disables polling.
	PollInterval time.Duration
	// SweepInterval runs the stuck sweep. Zero disables it.
	SweepInterval time.Duration
	StuckAfter    time.Duration
}

// Queue serialises processing of media sources announced on a channel,
// polled from the store, or recovered by the stuck sweep.
type Queue struct {
	proc    *Processor
	sweeper *Sweeper
	notify  <-chan int
	cfg     QueueConfig

	// AfterDrain runs after each pass over the queue.
	AfterDrain func()
}

// NewQueue creates a Queue. notify may be nil.
func NewQueue(proc *Processor, sweeper *Sweeper, notify <-chan int, cfg QueueConfig) *Queue {
	return &Queue{proc: proc, sweeper: sweeper, notify: notify, cfg: cfg}
}

// Run drains the queue once, then again on every notification, poll tick
// or sweep that reset an item, until ctx is cancelled.
func (q *Queue) Run(ctx context.Context) error {
	var poll, sweep <-chan time.Time
	if d := q.cfg.PollInterval; d > 0 {
		t := time.NewTicker(d)
		defer t.Stop()
		poll = t.C
	}
	if d := q.cfg.SweepInterval; d > 0 && q.sweeper != nil {
		t := time.NewTicker(d)
		defer t.Stop()
		sweep = t.C
	}
	log := q.proc.log.Named("queue")

	for {
		q.drain(ctx)

		select {
		case <-ctx.Done():
			return nil
		case id, ok := <-q.notify:
			if !ok {
				q.notify = nil
				continue
			}
			log.Debug("media announced", "media_id", id)
		case <-poll:
		case <-sweep:
			report, err := q.sweeper.Sweep(ctx, q.cfg.StuckAfter, false)
			if err != nil {
				log.Error("stuck sweep failed", "error", err)
				continue
			}
			if report.Reset+report.Failed > 0 {
				log.Info("stuck sweep", "reset", report.Reset, "failed", report.Failed)
			}
		}
	}
}

func (q *Queue) drain(ctx context.Context) {
	if _, err := q.proc.DrainPending(ctx); err != nil && ctx.Err() == nil {
		q.proc.log.Error("queue drain failed", "error", err)
	}
	if q.AfterDrain != nil {
		q.AfterDrain()
	}
}
