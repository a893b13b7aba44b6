package tickloop

import "testing"

func TestTask_pendingBeforeCompletion(t *testing.T) {
	t.Parallel()

	task := NewTask[int]()
	if task.IsReady() {
		t.Error(`new task should not be ready`)
	}
	for i := 0; i < 10; i++ {
		if p := task.Poll(); p.IsReady() {
			t.Fatalf(`poll %d: expected pending`, i)
		}
	}
	if task.IsReady() {
		t.Error(`polling must not complete the task`)
	}
}

func TestTask_repeatableReadiness(t *testing.T) {
	t.Parallel()

	task := NewTask[string]()
	task.Complete(`hello`)
	if !task.IsReady() {
		t.Error(`should be ready after Complete`)
	}
	for i := 0; i < 10; i++ {
		if v, ok := task.Poll().Get(); !ok || v != `hello` {
			t.Fatalf(`poll %d: got %q, %v`, i, v, ok)
		}
	}
}

// Complete on an already-ready task overwrites the stored value, last write
// wins. This mirrors the documented policy rather than failing fast.
func TestTask_doubleCompleteLastWriteWins(t *testing.T) {
	t.Parallel()

	task := NewTask[int]()
	task.Complete(1)
	task.Complete(2)
	if v, ok := task.Poll().Get(); !ok || v != 2 {
		t.Error(v, ok)
	}
}

func TestTask_isReadyDoesNotMutate(t *testing.T) {
	t.Parallel()

	task := NewTask[int]()
	for i := 0; i < 3; i++ {
		if task.IsReady() {
			t.Fatal(`IsReady must not transition state`)
		}
	}
	task.Complete(7)
	for i := 0; i < 3; i++ {
		if !task.IsReady() {
			t.Fatal(`IsReady must observe the ready state`)
		}
	}
	if v, ok := task.Poll().Get(); !ok || v != 7 {
		t.Error(v, ok)
	}
}
