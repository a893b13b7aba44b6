package tickloop

// pollCounter wraps a future, counting how many times it is polled.
type pollCounter[T any] struct {
	future Future[T]
	polls  int
}

func (x *pollCounter[T]) Poll() Poll[T] {
	x.polls++
	return x.future.Poll()
}

// readyAfter is pending for exactly n polls, then ready with v forever.
type readyAfter[T any] struct {
	n int
	v T
}

func (x *readyAfter[T]) Poll() Poll[T] {
	if x.n > 0 {
		x.n--
		return Pending[T]()
	}
	return Ready(x.v)
}
