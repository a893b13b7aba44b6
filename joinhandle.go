package tickloop

// JoinHandle is a single-use handle to a task result that is already known at
// creation time. It emulates "a spawned task you can await" for callers that
// only care about consuming the result.
type JoinHandle[T any] struct {
	result *T
}

// NewJoinHandle returns a JoinHandle holding result.
func NewJoinHandle[T any](result T) *JoinHandle[T] {
	return &JoinHandle[T]{result: &result}
}

// Await consumes and returns the held result.
//
// Await panics if called a second time: a JoinHandle is a single-consumption
// resource, and consuming it twice is a contract violation, not a recoverable
// condition.
func (x *JoinHandle[T]) Await() T {
	if x.result == nil {
		panic(`tickloop: join handle result already taken`)
	}
	v := *x.result
	x.result = nil
	return v
}
