package contact

import "testing"

func TestSignalOrderAndUnsubscribe(t *testing.T) {
	var s Signal[int]
	var order []string

	s.Subscribe(func(int) { order = append(order, "a") })
	bID := s.Subscribe(func(int) { order = append(order, "b") })
	s.Subscribe(func(int) { order = append(order, "c") })

	s.emit(0)
	if got := len(order); got != 3 {
		t.Fatalf("emit reached %d handlers, want 3", got)
	}
	if order[0] != "a" || order[1] != "b" || order[2] != "c" {
		t.Errorf("handlers ran out of registration order: %v", order)
	}

	s.Unsubscribe(bID)
	order = nil
	s.emit(0)
	if len(order) != 2 || order[0] != "a" || order[1] != "c" {
		t.Errorf("after unsubscribe got %v, want [a c]", order)
	}

	// Unknown ids are ignored.
	s.Unsubscribe(999)
}

func TestSignalPayload(t *testing.T) {
	var s Signal[int]
	got := 0
	s.Subscribe(func(v int) { got = v })
	s.emit(7)
	if got != 7 {
		t.Errorf("handler received %d, want 7", got)
	}
}
