package ecs

import "testing"

func TestSparseSetSwapRemove(t *testing.T) {
	var s SparseSet[string]
	s.Set(1, "a")
	s.Set(2, "b")
	s.Set(3, "c")

	if !s.Remove(1) {
		t.Fatalf("remove should succeed")
	}
	if s.Has(1) {
		t.Fatalf("id 1 should be gone")
	}
	if v, ok := s.Get(3); !ok || v != "c" {
		t.Fatalf("moved element lost: %q ok=%v", v, ok)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 elements, got %d", s.Len())
	}
	for i, id := range s.ids() {
		if s.sparse[id-1] != i {
			t.Fatalf("sparse entry for %d points at %d, want %d", id, s.sparse[id-1], i)
		}
	}
	if s.Remove(42) {
		t.Fatalf("removing unknown id should report false")
	}
}
