package tickloop

import "testing"

func TestYield_pendingThenReady(t *testing.T) {
	t.Parallel()

	y := NewYield()
	if p := y.Poll(); p.IsReady() {
		t.Error(`first poll must be pending`)
	}
	if p := y.Poll(); !p.IsReady() {
		t.Error(`second poll must be ready`)
	}
	for i := 0; i < 5; i++ {
		if p := y.Poll(); !p.IsReady() {
			t.Fatalf(`re-poll %d: must stay ready`, i)
		}
	}
}
