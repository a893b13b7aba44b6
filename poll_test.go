package tickloop

import "testing"

func TestPoll_zeroValuePending(t *testing.T) {
	t.Parallel()

	var p Poll[int]
	if p.IsReady() {
		t.Error(`zero value should be pending`)
	}
	if v, ok := p.Get(); ok || v != 0 {
		t.Error(v, ok)
	}
	if v := p.Value(); v != 0 {
		t.Error(v)
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	p := Ready(42)
	if !p.IsReady() {
		t.Error(`should be ready`)
	}
	if v, ok := p.Get(); !ok || v != 42 {
		t.Error(v, ok)
	}
	if v := p.Value(); v != 42 {
		t.Error(v)
	}
}

func TestPending(t *testing.T) {
	t.Parallel()

	p := Pending[string]()
	if p.IsReady() {
		t.Error(`should be pending`)
	}
	if v, ok := p.Get(); ok || v != `` {
		t.Error(v, ok)
	}
}
