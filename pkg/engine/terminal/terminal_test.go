package terminal

import "testing"

func TestGetSize_Positive(t *testing.T) {
	w, h := GetSize()
	if w <= 0 || h <= 0 {
		t.Errorf("GetSize() = %d, %d, want positive", w, h)
	}
}

func TestFits(t *testing.T) {
	if !Fits(1, 1) {
		t.Error("Fits(1, 1) = false")
	}
	if Fits(1<<20, 1) {
		t.Error("Fits(1<<20, 1) = true")
	}
}
