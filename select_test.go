package tickloop

import "testing"

// The first future is strictly favored: when both are ready on the same
// round, the second is not even polled.
func TestSelect_firstBias(t *testing.T) {
	t.Parallel()

	a := NewTask[int]()
	a.Complete(1)
	b := &pollCounter[string]{future: &readyAfter[string]{v: `two`}}

	res := Select[int, string](a, b)
	if !res.IsFirst() {
		t.Fatal(`expected the first future to win`)
	}
	if v, ok := res.First(); !ok || v != 1 {
		t.Fatal(v, ok)
	}
	if _, ok := res.Second(); ok {
		t.Fatal(`loser output must be absent`)
	}
	if b.polls != 0 {
		t.Errorf(`second future polled %d times on a winning first round`, b.polls)
	}
}

func TestSelect_secondWins(t *testing.T) {
	t.Parallel()

	a := NewTask[int]() // never completed
	b := &readyAfter[string]{n: 3, v: `two`}

	res := Select[int, string](a, b)
	if res.IsFirst() {
		t.Fatal(`expected the second future to win`)
	}
	if v, ok := res.Second(); !ok || v != `two` {
		t.Fatal(v, ok)
	}
	if _, ok := res.First(); ok {
		t.Fatal(`loser output must be absent`)
	}
}

// Both futures are polled once per round, a first, until one resolves.
func TestSelect_roundRobinPolling(t *testing.T) {
	t.Parallel()

	a := &pollCounter[struct{}]{future: NewSleep(5)}
	b := &pollCounter[struct{}]{future: NewSleep(3)}

	res := Select[struct{}, struct{}](a, b)
	if res.IsFirst() {
		t.Fatal(`the faster sleep should win`)
	}
	if a.polls != 3 || b.polls != 3 {
		t.Errorf(`expected 3 polls each, got a=%d b=%d`, a.polls, b.polls)
	}
}
