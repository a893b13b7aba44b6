package tickloop

type (
	// Poll is the outcome of a single [Future.Poll] call: either the future's
	// output (ready), or nothing yet (pending).
	//
	// The zero value is pending.
	Poll[T any] struct {
		value T
		ready bool
	}

	// A Future is a suspendable computation, driven by repeated polling.
	//
	// Poll either produces the future's output or reports that more polls are
	// needed. Polling is the only point at which a future may advance its
	// internal state; nothing progresses between polls. Callers may poll any
	// number of times and a future must not assume any fixed schedule.
	//
	// Once a future has produced a ready value, it must never report a
	// different ready value on a later poll, unless its documentation defines
	// repeatable readiness with those semantics (e.g. [Task], which keeps
	// returning the same completed value, vs [AsyncFunc], which produces its
	// value exactly once).
	Future[T any] interface {
		Poll() Poll[T]
	}
)

// Ready returns a Poll carrying the output value v.
func Ready[T any](v T) Poll[T] { return Poll[T]{value: v, ready: true} }

// Pending returns a Poll indicating the future has not produced output yet.
func Pending[T any]() Poll[T] { return Poll[T]{} }

// IsReady reports whether the poll produced output.
func (x Poll[T]) IsReady() bool { return x.ready }

// Get returns the output value, and whether it is present.
func (x Poll[T]) Get() (T, bool) { return x.value, x.ready }

// Value returns the output value, or the zero value of T if pending.
func (x Poll[T]) Value() T { return x.value }
