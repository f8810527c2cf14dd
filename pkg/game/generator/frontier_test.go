package generator

import "testing"

func TestFrontier_StackAndPool(t *testing.T) {
	f := newFrontier(4, 10)
	if f.Empty() || f.Len() != 1 {
		t.Fatalf("new frontier Len() = %d, Empty() = %v", f.Len(), f.Empty())
	}
	f.Push(11)
	f.Push(12)
	if f.At(f.last) != 12 {
		t.Errorf("tail = %d, want 12", f.At(f.last))
	}

	f.RetireLast()
	if f.Len() != 2 || f.At(f.last) != 11 {
		t.Errorf("after RetireLast: Len() = %d, tail = %d", f.Len(), f.At(f.last))
	}

	// Pushing after a retire reuses the slot.
	f.Push(13)
	if f.At(2) != 13 || len(f.cells) != 3 {
		t.Errorf("slot 2 = %d, len = %d, want 13 and 3", f.At(2), len(f.cells))
	}

	f.RetireAt(2)
	if f.first != 1 || f.At(2) != 10 {
		t.Errorf("after RetireAt(2): first = %d, slot 2 = %d", f.first, f.At(2))
	}
	f.RetireAt(1)
	f.RetireLast()
	if !f.Empty() {
		t.Errorf("frontier not empty: first = %d, last = %d", f.first, f.last)
	}
}
