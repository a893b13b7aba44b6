package tickloop

// Sleep is a [Future] that becomes ready after a fixed number of polls. Each
// poll advances elapsed logical time by one tick; there is no wall-clock
// component whatsoever.
type Sleep struct {
	ticks   int
	elapsed int
}

// NewSleep returns a Sleep that is ready once it has been polled ticks times.
// A non-positive tick count is ready on the very first poll.
func NewSleep(ticks int) *Sleep { return &Sleep{ticks: ticks} }

// Poll advances elapsed time by one tick, and is ready once the configured
// tick count has elapsed. A Sleep that has become ready stays ready on every
// later poll (elapsed keeps growing past the threshold, which is harmless).
func (x *Sleep) Poll() Poll[struct{}] {
	x.elapsed++
	if x.elapsed >= x.ticks {
		return Ready(struct{}{})
	}
	return Pending[struct{}]()
}
