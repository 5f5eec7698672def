package random

import (
	"slices"
	"testing"
)

func TestIntInclusiveBounds(t *testing.T) {
	src := New(1)
	seenMin, seenMax := false, false
	for range 2000 {
		v := src.Int(3, 7)
		if v < 3 || v > 7 {
			t.Fatalf("Int(3, 7) = %d, out of range", v)
		}
		seenMin = seenMin || v == 3
		seenMax = seenMax || v == 7
	}
	if !seenMin || !seenMax {
		t.Errorf("expected both bounds to be drawn, min=%v max=%v", seenMin, seenMax)
	}
}

func TestIntSwapsReversedBounds(t *testing.T) {
	src := New(2)
	for range 500 {
		v := src.Int(9, 4)
		if v < 4 || v > 9 {
			t.Fatalf("Int(9, 4) = %d, want value in [4, 9]", v)
		}
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	a, b := New(42), New(42)
	for i := range 100 {
		if x, y := a.Int(0, 1000), b.Int(0, 1000); x != y {
			t.Fatalf("draw %d differs: %d vs %d", i, x, y)
		}
	}
}

func TestShuffleLeavesInputUntouched(t *testing.T) {
	in := []int{1, 2, 3, 4, 5, 6, 7, 8}
	orig := slices.Clone(in)
	out := Shuffle(New(7), in)

	if !slices.Equal(in, orig) {
		t.Fatalf("input mutated: %v", in)
	}
	sorted := slices.Clone(out)
	slices.Sort(sorted)
	if !slices.Equal(sorted, orig) {
		t.Fatalf("shuffle is not a permutation: %v", out)
	}
}

func TestSample(t *testing.T) {
	src := New(3)
	got := Sample(src, []string{"a", "b", "c", "d"}, 2)
	if len(got) != 2 || got[0] == got[1] {
		t.Fatalf("Sample returned %v", got)
	}
	if all := Sample(src, []string{"a", "b"}, 5); len(all) != 2 {
		t.Fatalf("oversized sample should return every element, got %v", all)
	}
}

func TestDeriveIsIndependentOfConsumption(t *testing.T) {
	a, b := New(99), New(99)
	b.Int(0, 10)
	b.Int(0, 10)
	if x, y := a.Derive(3).Int(0, 1<<30), b.Derive(3).Int(0, 1<<30); x != y {
		t.Fatalf("derived sources differ: %d vs %d", x, y)
	}
	if a.Derive(1).Seed() == a.Derive(2).Seed() {
		t.Fatal("derived seeds should differ per index")
	}
}
