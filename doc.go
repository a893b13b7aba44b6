// Package tickloop is a tick-based cooperative scheduling core: a poll-driven
// [Future] abstraction, a single-threaded [Runtime] that drives futures to
// completion, logical-time primitives ([Sleep], [Timeout], [Yield]), an
// unbounded FIFO [Channel], and a two-way race combinator ([Select]).
//
// Time in this package is not wall-clock time. It advances only in logical
// "ticks", one per poll, which makes every schedule fully deterministic and
// trivially testable: a [Sleep] of n ticks is ready after exactly n polls, a
// [Timeout] budget of n ticks expires after exactly n polls of the wrapper.
// There are no OS timers, no I/O multiplexing, and no goroutines; if you need
// those, you want a real event loop, not this package.
//
// # The Polling Model
//
// A [Future] exposes a single operation, Poll, which either produces the
// future's output or reports that more polls are needed. Polling is the only
// point at which a future may advance its internal state; nothing progresses
// between polls, and no background thread exists to do so. Suspension points
// are exactly the pending returns. Because of this, every operation returns
// promptly, bounded by the cost of one step of internal progress.
//
// "Concurrency" here means interleaved single-threaded progress, not parallel
// execution. A [Runtime] interleaves its background units with the future
// driven by [BlockOn]; a [Channel] passes values between two holders in the
// same thread of control. Nothing in this package is safe for concurrent use
// from multiple goroutines; a multi-threaded port would need exclusive-access
// synchronization around the channel buffer and the background task queue.
//
// # Driving Futures
//
// [BlockOn] busy-polls a future, servicing the runtime's background queue
// once per pending round. It never sleeps; a future that never becomes ready
// loops forever, exactly like a background unit that never reports done keeps
// [Runtime.Run] looping forever. Both are accepted properties of the
// cooperative model. [Timeout] is the only way to stop racing against time,
// and it resolves to an error after its budget rather than interrupting the
// wrapped future. [BlockOnContext] and [Runtime.RunContext] add a
// cancellation point per round for callers that need an escape hatch.
//
// # Background Work
//
// Background units implement [Stepper], a one-method capability: make one
// increment of progress, report whether done. [Runtime.Spawn] enqueues a
// unit; each drain pops every queued unit once, re-queueing the unfinished
// ones at the back in arrival order (FIFO fairness, no priorities). A unit
// that panics is logged, counted, and dropped; the drain continues.
//
// Structured logging uses [github.com/joeycumines/logiface], injected via
// [WithLogger]; without a logger, all logging is a no-op.
package tickloop
