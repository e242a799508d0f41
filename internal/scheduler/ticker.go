package scheduler

import "time"

// Ticker abstracts the periodic timer driving the loop so tests can
// substitute a hand-fired channel.
type Ticker interface {
	Chan() <-chan time.Time
	Stop()
}

// TickerFactory builds the Ticker used by Run. The default wraps
// time.Ticker.
type TickerFactory func(d time.Duration) Ticker

type realTicker struct {
	t *time.Ticker
}

func newRealTicker(d time.Duration) Ticker {
	return &realTicker{t: time.NewTicker(d)}
}

func (r *realTicker) Chan() <-chan time.Time { return r.t.C }
func (r *realTicker) Stop()                  { r.t.Stop() }
