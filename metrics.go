package tickloop

import "sync/atomic"

// Metrics is a point-in-time snapshot of [Runtime] counters. Collection is
// opt-in via [WithMetrics]; with collection disabled, [Runtime.Metrics]
// returns the zero value.
type Metrics struct {
	// Ticks is the number of completed background queue drains.
	Ticks uint64

	// Spawned is the number of background units accepted by Spawn.
	Spawned uint64

	// Completed is the number of background units that reported done.
	Completed uint64

	// Panics is the number of background units dropped after panicking.
	Panics uint64

	// BlockOnPolls is the number of top-level polls performed by BlockOn
	// and BlockOnContext, including the final ready poll.
	BlockOnPolls uint64
}

// metrics holds the live counters. Counter updates are atomic so that
// snapshots taken from another goroutine (e.g. a monitoring loop observing a
// runtime it does not drive) read consistent values.
type metrics struct {
	ticks        atomic.Uint64
	spawned      atomic.Uint64
	completed    atomic.Uint64
	panics       atomic.Uint64
	blockOnPolls atomic.Uint64
}

func (x *metrics) snapshot() Metrics {
	return Metrics{
		Ticks:        x.ticks.Load(),
		Spawned:      x.spawned.Load(),
		Completed:    x.completed.Load(),
		Panics:       x.panics.Load(),
		BlockOnPolls: x.blockOnPolls.Load(),
	}
}
