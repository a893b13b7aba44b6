package tickloop

// Either is the tagged result of [Select]: exactly one of the two outputs is
// present, identifying which future won the race.
type Either[A, B any] struct {
	a     A
	b     B
	first bool
}

// IsFirst reports whether the first future won.
func (x Either[A, B]) IsFirst() bool { return x.first }

// First returns the first future's output, and whether it is the winner.
func (x Either[A, B]) First() (A, bool) {
	if !x.first {
		var zero A
		return zero, false
	}
	return x.a, true
}

// Second returns the second future's output, and whether it is the winner.
func (x Either[A, B]) Second() (B, bool) {
	if x.first {
		var zero B
		return zero, false
	}
	return x.b, true
}

// Select races two independently-typed futures, returning whichever becomes
// ready first.
//
// Each round polls a, then b. If a is ready it wins immediately and b is not
// polled that round, so a is strictly favored when both would become ready
// on the same round; the bias is observable.
//
// Select busy-polls with no yielding: it never services a [Runtime]'s
// background queue, so it must only be used when both futures make progress
// purely from being polled.
//
// WARNING: If neither future ever becomes ready, Select loops forever.
func Select[A, B any](a Future[A], b Future[B]) Either[A, B] {
	for {
		if v, ok := a.Poll().Get(); ok {
			return Either[A, B]{a: v, first: true}
		}
		if v, ok := b.Poll().Get(); ok {
			return Either[A, B]{b: v}
		}
	}
}
