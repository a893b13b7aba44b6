package tickloop

// Yield is a [Future] modelling a single voluntary suspension point: the
// first poll is always pending, the second and every later poll is ready.
// It carries no timing semantics beyond that one suspension.
type Yield struct {
	yielded bool
}

// NewYield returns a Yield that has not yet suspended.
func NewYield() *Yield { return &Yield{} }

// Poll is pending exactly once, then ready forever.
func (x *Yield) Poll() Poll[struct{}] {
	if !x.yielded {
		x.yielded = true
		return Pending[struct{}]()
	}
	return Ready(struct{}{})
}
