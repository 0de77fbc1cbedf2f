package engine

import "testing"

func TestBagFairness(t *testing.T) {
	for _, preview := range []int{1, 3, 5} {
		r := RandomizerFor(RandomizerSevenBag)
		rng := seeded(7)
		q := r.Prime(rng, preview)

		const rounds = 20
		counts := map[PieceKind]int{}
		for i := 0; i < rounds*KindCount; i++ {
			var k PieceKind
			k, q = r.Draw(q, rng, preview)
			counts[k]++
			if i%KindCount == KindCount-1 {
				for _, kind := range Kinds {
					if counts[kind] != (i+1)/KindCount {
						t.Fatalf("preview=%d after %d draws: %v dealt %d times", preview, i+1, kind, counts[kind])
					}
				}
			}
		}
	}
}

func TestBagKeepsPreviewStocked(t *testing.T) {
	r := RandomizerFor(RandomizerSevenBag)
	rng := seeded(3)
	q := r.Prime(rng, 3)
	for i := 0; i < 50; i++ {
		if len(q.Bag) < 4 {
			t.Fatalf("bag length %d below preview+1", len(q.Bag))
		}
		if got := r.Upcoming(q, 3); len(got) != 3 || got[0] != q.Bag[0] {
			t.Fatalf("Upcoming() = %v, expected the head of %v", got, q.Bag)
		}
		_, q = r.Draw(q, rng, 3)
	}
}

func TestBagDrawLeavesQueueIntact(t *testing.T) {
	r := RandomizerFor(RandomizerSevenBag)
	rng := seeded(11)
	q := r.Prime(rng, 3)
	before := append([]PieceKind(nil), q.Bag...)

	r.Draw(q, rng, 3)

	for i := range before {
		if q.Bag[i] != before[i] {
			t.Fatalf("Draw modified its input queue: %v, expected %v", q.Bag, before)
		}
	}
}

func TestNewBagIsPermutation(t *testing.T) {
	bag := NewBag(seeded(5))
	seen := map[PieceKind]bool{}
	for _, k := range bag {
		seen[k] = true
	}
	if len(bag) != KindCount || len(seen) != KindCount {
		t.Errorf("NewBag() = %v, expected a permutation of all kinds", bag)
	}
}

func TestDrawNESRerollsOnce(t *testing.T) {
	tests := []struct {
		name string
		vals []int
		last PieceKind
		want PieceKind
	}{
		{"no repeat", []int{2}, I, T},
		{"repeat rerolled", []int{0, 3}, I, S},
		{"second repeat accepted", []int{0, 0}, I, I},
		{"no previous", []int{6}, None, L},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DrawNES(&seqRand{vals: tc.vals}, tc.last)
			if got != tc.want {
				t.Errorf("DrawNES() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestNESRepeatRate(t *testing.T) {
	rng := seeded(2024)
	const draws = 70000
	repeats := 0
	for i := 0; i < draws; i++ {
		if DrawNES(rng, T) == T {
			repeats++
		}
	}
	// One reroll leaves a 1/49 chance of repeating.
	rate := float64(repeats) / draws
	if rate < 0.015 || rate > 0.026 {
		t.Errorf("repeat rate = %.4f, expected about %.4f", rate, 1.0/49)
	}
}

func TestNESLookahead(t *testing.T) {
	r := RandomizerFor(RandomizerNES)
	rng := seeded(9)
	q := r.Prime(rng, 1)

	for i := 0; i < 20; i++ {
		upcoming := r.Upcoming(q, 1)
		if len(upcoming) != 1 {
			t.Fatalf("Upcoming() = %v, expected one kind", upcoming)
		}
		var k PieceKind
		k, q = r.Draw(q, rng, 1)
		if k != upcoming[0] {
			t.Fatalf("dealt %v, preview promised %v", k, upcoming[0])
		}
		if q.Last != k {
			t.Fatalf("Last = %v, expected %v", q.Last, k)
		}
	}
	if got := r.Upcoming(q, 0); got != nil {
		t.Errorf("Upcoming(0) = %v, expected nil", got)
	}
}
