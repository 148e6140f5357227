package mino

import (
	"testing"
)

func TestBag(t *testing.T) {
	b := NewBag(0)

	taken := make(map[PieceType]int)
	for round := 1; round < 4; round++ {
		for i := 0; i < PieceCount; i++ {
			next := b.Next()
			p := b.Take()
			if p != next {
				t.Fatalf("round %d: Next returned %s but Take returned %s", round, next, p)
			}
			taken[p]++
		}

		if len(taken) != PieceCount {
			t.Errorf("round %d: expected %d piece types, got %v", round, PieceCount, taken)
		}

		for _, p := range AllPieces {
			if taken[p] != round {
				t.Fatalf("round %d: piece %s taken %d times - taken: %v", round, p, taken[p], taken)
			}
		}
	}
}

func TestBagSeed(t *testing.T) {
	a, b := NewBag(42), NewBag(42)
	for i := 0; i < PieceCount*3; i++ {
		if pa, pb := a.Take(), b.Take(); pa != pb {
			t.Fatalf("bags with equal seeds diverged at %d: %s != %s", i, pa, pb)
		}
	}
}

func BenchmarkBagTake(b *testing.B) {
	bag := NewBag(0)

	b.ReportAllocs()
	b.ResetTimer()

	for n := 0; n < b.N; n++ {
		bag.Take()
	}
}
