package tickloop

// Task is an externally-completed value cell, the simplest [Future]: it has
// two lifecycle states, running (no value yet) and ready (terminal). The
// transition happens via [Task.Complete]; polling never changes state.
//
// Task has repeatable readiness: once completed, every poll returns the same
// stored value. The value is returned by shallow copy; if T contains
// references (slices, maps, pointers), callers share the referenced data.
type Task[T any] struct {
	value T
	ready bool
}

// NewTask returns a Task in the running state.
func NewTask[T any]() *Task[T] { return &Task[T]{} }

// Complete stores v and transitions the task to the ready state. There is no
// transition back; the task stays ready forever.
//
// Completing an already-ready task silently overwrites the stored value
// (last write wins). Callers that need fail-fast semantics on double
// completion should guard with [Task.IsReady].
func (x *Task[T]) Complete(v T) {
	x.value = v
	x.ready = true
}

// IsReady reports whether the task has been completed. It never mutates
// state.
func (x *Task[T]) IsReady() bool { return x.ready }

// Poll returns the stored value if the task has been completed, and pending
// otherwise. Poll does not consume the cell; see the type documentation.
func (x *Task[T]) Poll() Poll[T] {
	if !x.ready {
		return Pending[T]()
	}
	return Ready(x.value)
}
