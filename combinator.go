package tickloop

type (
	// Pair carries the two outputs of [Join].
	Pair[A, B any] struct {
		First  A
		Second B
	}

	mapped[A, B any] struct {
		future Future[A]
		fn     func(A) B
		value  B
		ready  bool
	}

	joined[A, B any] struct {
		a        Future[A]
		b        Future[B]
		av       A
		bv       B
		aok, bok bool
	}
)

// Map returns a future producing fn applied to f's output. The mapping runs
// once, on the poll where f becomes ready; the mapped future then has
// repeatable readiness, returning the cached result on every later poll
// regardless of f's own re-poll behavior.
func Map[A, B any](f Future[A], fn func(A) B) Future[B] {
	if f == nil {
		panic(`tickloop: nil future`)
	}
	if fn == nil {
		panic(`tickloop: nil func`)
	}
	return &mapped[A, B]{future: f, fn: fn}
}

func (x *mapped[A, B]) Poll() Poll[B] {
	if !x.ready {
		v, ok := x.future.Poll().Get()
		if !ok {
			return Pending[B]()
		}
		x.value = x.fn(v)
		x.ready = true
	}
	return Ready(x.value)
}

// Join combines two futures into one that is ready once both are, producing
// both outputs as a [Pair]. Each pending poll polls the not-yet-ready sides,
// a first; a side that has become ready is not polled again, its output is
// held until the other side catches up.
func Join[A, B any](a Future[A], b Future[B]) Future[Pair[A, B]] {
	if a == nil || b == nil {
		panic(`tickloop: nil future`)
	}
	return &joined[A, B]{a: a, b: b}
}

func (x *joined[A, B]) Poll() Poll[Pair[A, B]] {
	if !x.aok {
		if v, ok := x.a.Poll().Get(); ok {
			x.av, x.aok = v, true
		}
	}
	if !x.bok {
		if v, ok := x.b.Poll().Get(); ok {
			x.bv, x.bok = v, true
		}
	}
	if x.aok && x.bok {
		return Ready(Pair[A, B]{First: x.av, Second: x.bv})
	}
	return Pending[Pair[A, B]]()
}
