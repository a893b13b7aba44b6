package tickloop

import (
	"context"

	"github.com/eapache/queue"
	"github.com/joeycumines/logiface"
)

type (
	// Stepper is a unit of background work owned by a [Runtime]: a
	// repeatable "make progress, report done?" operation, the one-method
	// capability the runtime's heterogeneous queue is built on.
	//
	// Step makes one increment of progress and reports whether the unit has
	// finished. A unit that never reports true keeps [Runtime.Run] looping
	// forever; that is the caller's contract to uphold.
	Stepper interface {
		Step() bool
	}

	// StepFunc adapts a plain function to the [Stepper] interface.
	StepFunc func() bool

	// Runtime owns a FIFO queue of not-yet-complete background units and
	// drives futures to completion; see [BlockOn], [Runtime.Spawn] and
	// [Runtime.Run]. It is the single owner of its scheduling state: there
	// is no process-wide singleton, and independent runtimes compose freely.
	//
	// A Runtime is single-threaded. Nothing runs in parallel;
	// "concurrency" is the interleaving of poll and step calls driven by one
	// caller. It is NOT safe for use from multiple goroutines.
	Runtime struct {
		tasks   *queue.Queue // queued Stepper values, FIFO
		log     *logiface.Logger[logiface.Event]
		metrics *metrics
	}
)

// Step calls x.
func (x StepFunc) Step() bool { return x() }

// NewRuntime returns a Runtime with an empty background queue.
func NewRuntime(opts ...Option) *Runtime {
	cfg := resolveRuntimeOptions(opts)
	r := &Runtime{
		tasks: queue.New(),
		log:   cfg.logger,
	}
	if cfg.metrics {
		r.metrics = new(metrics)
	}
	return r
}

// Spawn enqueues a background unit of work. The runtime owns the unit
// exclusively until its Step reports done, at which point it is dropped from
// the queue permanently. A panic will occur if s is nil.
func (x *Runtime) Spawn(s Stepper) {
	if s == nil {
		panic(`tickloop: nil stepper`)
	}
	x.tasks.Add(s)
	if x.metrics != nil {
		x.metrics.spawned.Add(1)
	}
	x.log.Debug().Int(`queued`, x.tasks.Length()).Log(`tickloop: spawned background unit`)
}

// SpawnFunc enqueues f as a background unit; shorthand for
// Spawn(StepFunc(f)).
func (x *Runtime) SpawnFunc(f func() bool) {
	x.Spawn(StepFunc(f))
}

// Len returns the number of queued background units.
func (x *Runtime) Len() int {
	return x.tasks.Length()
}

// Metrics returns a snapshot of the runtime's counters, or the zero value if
// collection was not enabled via [WithMetrics].
func (x *Runtime) Metrics() Metrics {
	if x.metrics == nil {
		return Metrics{}
	}
	return x.metrics.snapshot()
}

// Run repeatedly drains the background queue until it is empty.
//
// Run terminates only if every spawned unit eventually reports done; a unit
// that never finishes keeps Run looping forever. That is an accepted
// property of the cooperative model, not a defect; see [Runtime.RunContext]
// for a variant with an escape hatch.
func (x *Runtime) Run() {
	for x.tasks.Length() != 0 {
		x.processTasks()
	}
}

// RunContext is [Runtime.Run] with a cancellation point between drains: the
// context is checked once per drain cycle, and its error returned if it is
// done. Units keep their queue positions on cancellation; a later Run or
// RunContext resumes them.
func (x *Runtime) RunContext(ctx context.Context) error {
	for x.tasks.Length() != 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		x.processTasks()
	}
	return nil
}

// processTasks drains the background queue once. Every unit queued at the
// start of the drain is stepped exactly once; unfinished units are re-queued
// at the back in arrival order, preserving relative FIFO order across drain
// cycles, while finished units are dropped. Units spawned during the drain
// are not stepped until the next drain.
func (x *Runtime) processTasks() {
	for i, n := 0, x.tasks.Length(); i < n; i++ {
		s := x.tasks.Remove().(Stepper)
		done, panicked := x.step(s)
		switch {
		case panicked:
			if x.metrics != nil {
				x.metrics.panics.Add(1)
			}
		case done:
			if x.metrics != nil {
				x.metrics.completed.Add(1)
			}
		default:
			x.tasks.Add(s)
		}
	}
	if x.metrics != nil {
		x.metrics.ticks.Add(1)
	}
}

// step runs one Step call with panic recovery. A panicking unit is dropped
// from the queue; the drain continues with the remaining units.
func (x *Runtime) step(s Stepper) (done, panicked bool) {
	defer func() {
		if r := recover(); r != nil {
			panicked = true
			x.log.Err().Any(`recovered`, r).Log(`tickloop: background unit panicked, dropping`)
		}
	}()
	return s.Step(), false
}

// BlockOn drives future to completion on r: it polls the future, and each
// pending poll is followed by exactly one background queue drain before the
// next poll, giving background work a chance to advance while waiting. The
// ready value is returned.
//
// BlockOn busy-polls with no actual blocking or sleeping; in a
// single-threaded cooperative model that is correct, but it means a future
// that never becomes ready loops forever. Panics from the driven future are
// not recovered.
//
// BlockOn is a function rather than a method because Go methods cannot have
// their own type parameters.
func BlockOn[T any](r *Runtime, future Future[T]) T {
	for {
		if r.metrics != nil {
			r.metrics.blockOnPolls.Add(1)
		}
		if v, ok := future.Poll().Get(); ok {
			return v
		}
		r.processTasks()
	}
}

// BlockOnContext is [BlockOn] with a cancellation point per round: the
// context is checked before each poll, and its error returned if it is done.
func BlockOnContext[T any](ctx context.Context, r *Runtime, future Future[T]) (T, error) {
	for {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		if r.metrics != nil {
			r.metrics.blockOnPolls.Add(1)
		}
		if v, ok := future.Poll().Get(); ok {
			return v, nil
		}
		r.processTasks()
	}
}

// SpawnFuture schedules future as a background unit on r, polled once per
// drain, and returns a [Task] cell that is completed with the future's
// output when it becomes ready. The returned cell is itself a [Future], so
// the result can be awaited with [BlockOn] or composed further; the
// scheduled future is not polled again after completing the cell.
func SpawnFuture[T any](r *Runtime, future Future[T]) *Task[T] {
	if future == nil {
		panic(`tickloop: nil future`)
	}
	cell := NewTask[T]()
	r.SpawnFunc(func() bool {
		v, ok := future.Poll().Get()
		if !ok {
			return false
		}
		cell.Complete(v)
		return true
	})
	return cell
}
