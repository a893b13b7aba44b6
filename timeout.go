package tickloop

type (
	// Result is the output of fallible futures such as [Timeout]: a value on
	// success, or an error.
	Result[T any] struct {
		// Value is the successful output. Meaningful only when Err is nil.
		Value T

		// Err is the failure, if any.
		Err error
	}

	// Timeout wraps an inner future with a tick budget, implementing
	// Future[Result[T]]: the result is Ok if the inner future becomes ready
	// while budget remains, and a [TimeoutError] once the budget is exhausted.
	//
	// The budget is consumed before the inner future is checked, and an
	// inner future that becomes ready on the exact poll that exhausts the
	// budget wins the race. The tie-break is observable; see [Timeout.Poll].
	Timeout[T any] struct {
		future    Future[T]
		ticks     int
		remaining int
	}
)

// Get returns the value and error carried by the result.
func (x Result[T]) Get() (T, error) { return x.Value, x.Err }

// NewTimeout returns a Timeout racing future against a budget of ticks
// polls. A non-positive budget times out on the very first poll, without the
// inner future ever being polled. A panic will occur if future is nil.
func NewTimeout[T any](future Future[T], ticks int) *Timeout[T] {
	if future == nil {
		panic(`tickloop: nil future`)
	}
	return &Timeout[T]{future: future, ticks: ticks, remaining: ticks}
}

// Poll advances the race by one tick.
//
// If the budget is already exhausted the result is immediately a
// [TimeoutError], and the inner future is NOT polled: it may not be in a
// state to make further progress, and a timed-out wrapper must not disturb
// it. Otherwise the budget is decremented first, then the inner future is
// polled: ready output resolves the race in its favor, while a pending
// inner future with the budget now at zero resolves to a [TimeoutError].
func (x *Timeout[T]) Poll() Poll[Result[T]] {
	if x.remaining <= 0 {
		return Ready(Result[T]{Err: &TimeoutError{Ticks: x.ticks}})
	}

	x.remaining--

	if v, ok := x.future.Poll().Get(); ok {
		return Ready(Result[T]{Value: v})
	}

	if x.remaining == 0 {
		return Ready(Result[T]{Err: &TimeoutError{Ticks: x.ticks}})
	}

	return Pending[Result[T]]()
}
