package rng

import (
	"errors"
	"testing"
)

func TestSeeded_Zero(t *testing.T) {
	if _, err := Seeded(0); !errors.Is(err, ErrZeroSeed) {
		t.Errorf("Seeded(0) error = %v, want ErrZeroSeed", err)
	}
	defer func() {
		if recover() == nil {
			t.Error("New(0) did not panic")
		}
	}()
	New(0)
}

func TestNew_DiscardsFirstState(t *testing.T) {
	r := New(1)
	// xorshift32(13,17,5) of 1
	if r.State() != 270369 {
		t.Errorf("State() = %d, want 270369", r.State())
	}
}

func TestNextState_ReturnsPreviousState(t *testing.T) {
	r := New(42)
	before := r.State()
	s, next := r.NextState()
	if s != before {
		t.Errorf("NextState() = %d, want %d", s, before)
	}
	if next.State() == before {
		t.Error("NextState() did not advance the generator")
	}
	if r.State() != before {
		t.Error("NextState() mutated the receiver")
	}
}

func TestDeterminism(t *testing.T) {
	a, b := New(12345), New(12345)
	for i := 0; i < 1000; i++ {
		var x, y float32
		x, a = a.NextFloat()
		y, b = b.NextFloat()
		if x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestNextFloat_Range(t *testing.T) {
	r := New(7)
	for i := 0; i < 10000; i++ {
		var f float32
		f, r = r.NextFloat()
		if f < 0 || f >= 1 {
			t.Fatalf("NextFloat() = %v, want [0,1)", f)
		}
	}
}

func TestNextInt_Range(t *testing.T) {
	r := New(99)
	seen := make([]bool, 6)
	for i := 0; i < 10000; i++ {
		var n int
		n, r = r.NextInt(6)
		if n < 0 || n >= 6 {
			t.Fatalf("NextInt(6) = %d, want [0,6)", n)
		}
		seen[n] = true
	}
	for v, ok := range seen {
		if !ok {
			t.Errorf("NextInt(6) never returned %d", v)
		}
	}
}

func TestNextIntRange(t *testing.T) {
	r := New(3)
	for i := 0; i < 10000; i++ {
		var n int
		n, r = r.NextIntRange(5, 9)
		if n < 5 || n >= 9 {
			t.Fatalf("NextIntRange(5, 9) = %d, want [5,9)", n)
		}
	}
	if n, _ := r.NextIntRange(4, 5); n != 4 {
		t.Errorf("NextIntRange(4, 5) = %d, want 4", n)
	}
}

func TestNextInt_InvalidPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("NextInt(0) did not panic")
		}
	}()
	New(1).NextInt(0)
}

func TestKnownSequence(t *testing.T) {
	r := New(1)
	var i int
	var f float32
	i, r = r.NextInt(12)
	if i != 0 {
		t.Errorf("NextInt(12) = %d, want 0", i)
	}
	f, r = r.NextFloat()
	if f != 132099.0/8388608.0 {
		t.Errorf("NextFloat() = %v, want %v", f, 132099.0/8388608.0)
	}
	i, r = r.NextIntRange(3, 10)
	if i != 7 {
		t.Errorf("NextIntRange(3, 10) = %d, want 7", i)
	}
	if r.State() != 307599695 {
		t.Errorf("State() = %d, want 307599695", r.State())
	}

	r = New(0xffffffff)
	want := []int{0, 98, 45, 94, 47}
	for k, w := range want {
		i, r = r.NextInt(100)
		if i != w {
			t.Errorf("draw %d: NextInt(100) = %d, want %d", k, i, w)
		}
	}
}
