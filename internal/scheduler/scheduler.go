package scheduler

import (
	"context"
	"time"

	"github.com/notifyme/notifyme/internal/event"
	"github.com/notifyme/notifyme/internal/metrics"
	"github.com/notifyme/notifyme/internal/notify"
	"github.com/notifyme/notifyme/pkg/logger"
)

const (
	// DefaultInterval is the tick cadence.
	DefaultInterval = 60 * time.Second

	// DefaultLead is how far ahead of the at-time alert the upcoming
	// pre-alert fires.
	DefaultLead = 10 * time.Minute

	// DefaultStoreTimeout bounds every store call made within a tick.
	DefaultStoreTimeout = 10 * time.Second
)

// EventStore is the slice of the store the scheduler depends on.
type EventStore interface {
	SelectDue(ctx context.Context, now time.Time, lead time.Duration) ([]event.Event, error)
	UpdateOccurrence(ctx context.Context, id int64, next time.Time) error
}

// Options tune the loop; zero values fall back to the defaults above.
type Options struct {
	Interval     time.Duration
	Lead         time.Duration
	StoreTimeout time.Duration

	// NewTicker overrides the timer source, for tests.
	NewTicker TickerFactory
}

// Scheduler owns a store handle and a notifier for the lifetime of the
// daemon. It holds no other state between ticks.
type Scheduler struct {
	store    EventStore
	notifier notify.Notifier
	log      logger.Logger
	opts     Options
}

// New wires a scheduler. The store and notifier are borrowed; their
// lifetimes belong to the caller.
func New(store EventStore, notifier notify.Notifier, log logger.Logger, opts Options) *Scheduler {
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Lead <= 0 {
		opts.Lead = DefaultLead
	}
	if opts.StoreTimeout <= 0 {
		opts.StoreTimeout = DefaultStoreTimeout
	}
	if opts.NewTicker == nil {
		opts.NewTicker = newRealTicker
	}
	return &Scheduler{store: store, notifier: notifier, log: log, opts: opts}
}

// Run blocks ticking until ctx is cancelled. The first tick fires
// immediately so a reminder due at startup is not pushed a full
// interval out.
func (s *Scheduler) Run(ctx context.Context) {
	s.log.Info("scheduler started (interval %s, lead %s)", s.opts.Interval, s.opts.Lead)
	tk := s.opts.NewTicker(s.opts.Interval)
	defer tk.Stop()

	s.tick(ctx, time.Now())
	for {
		select {
		case <-ctx.Done():
			s.log.Info("scheduler stopped")
			return
		case now := <-tk.Chan():
			s.tick(ctx, now)
		}
	}
}

// tick performs one scheduling cycle: select due events, notify each,
// advance the recurring ones. Events are handled independently; one
// failure never blocks the rest of the batch.
func (s *Scheduler) tick(ctx context.Context, now time.Time) {
	metrics.Ticks.Inc()

	tctx, cancel := context.WithTimeout(ctx, s.opts.StoreTimeout)
	defer cancel()

	due, err := s.store.SelectDue(tctx, now, s.opts.Lead)
	if err != nil {
		metrics.StoreErrors.Inc()
		s.log.Error("selecting due events: %v", err)
		return
	}
	for _, ev := range due {
		s.process(tctx, ev)
	}
}

// process notifies one due event and, when it recurs, persists its next
// occurrence. A failed notification leaves the date untouched so the
// event is retried at its next matching window.
func (s *Scheduler) process(ctx context.Context, ev event.Event) {
	if err := s.notifier.Notify(ctx, ev.Name, ev.Message); err != nil {
		metrics.NotificationsFailed.Inc()
		s.log.Error("notifying event %d (%s): %v", ev.ID, ev.Name, err)
		return
	}
	metrics.NotificationsSent.Inc()

	if ev.Recurrence == event.Once {
		// A once event's date is never mutated; archival belongs to the CLI.
		return
	}
	next, err := event.NextOccurrence(ev.OccurrenceDate, ev.Recurrence)
	if err != nil {
		s.log.Error("advancing event %d (%s): %v", ev.ID, ev.Name, err)
		return
	}
	if err := s.store.UpdateOccurrence(ctx, ev.ID, next); err != nil {
		metrics.StoreErrors.Inc()
		s.log.Error("persisting occurrence for event %d: %v", ev.ID, err)
		return
	}
	metrics.OccurrencesAdvanced.Inc()
}
