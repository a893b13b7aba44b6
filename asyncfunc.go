package tickloop

// AsyncFunc adapts a plain, zero-argument computation into a one-shot
// [Future]: the first poll runs the wrapped function exactly once and is
// ready with its result. Every later poll is pending, forever; the function
// is not re-executed and the result is not repeated.
//
// WARNING: Consume the ready value on the poll that produces it. An
// AsyncFunc polled after its value has been produced looks permanently
// pending, so driving one through [BlockOn] twice will loop forever.
type AsyncFunc[T any] struct {
	fn       func() T
	executed bool
}

// NewAsyncFunc returns an AsyncFunc wrapping fn. A panic will occur if fn is
// nil.
func NewAsyncFunc[T any](fn func() T) *AsyncFunc[T] {
	if fn == nil {
		panic(`tickloop: nil func`)
	}
	return &AsyncFunc[T]{fn: fn}
}

// Poll runs the computation on the first call and returns its result; all
// later calls are pending. See the type documentation for the hazard.
func (x *AsyncFunc[T]) Poll() Poll[T] {
	if x.executed {
		return Pending[T]()
	}
	x.executed = true
	return Ready(x.fn())
}
