package id

import "testing"

func TestRandomGenerator(t *testing.T) {
	g := NewRandomGenerator(4)

	first, err := g.NewID()
	if err != nil {
		t.Fatalf("NewID error: %v", err)
	}
	if len(first) != 16 {
		t.Fatalf("expected 16 hex chars for minimum size, got %d", len(first))
	}

	second, err := g.NewID()
	if err != nil {
		t.Fatalf("NewID error: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct ids, got %s twice", first)
	}
}
