package tickloop

import "testing"

func TestJoinHandle_await(t *testing.T) {
	t.Parallel()

	h := NewJoinHandle(`result`)
	if v := h.Await(); v != `result` {
		t.Fatal(v)
	}
}

func TestJoinHandle_doubleAwaitPanics(t *testing.T) {
	t.Parallel()

	h := NewJoinHandle(1)
	_ = h.Await()

	defer func() {
		if recover() == nil {
			t.Error(`expected panic on second Await`)
		}
	}()
	_ = h.Await()
}
