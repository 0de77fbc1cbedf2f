package engine

import "github.com/vovakirdan/tui-tetris/internal/core"

// Rand is the uniform random source the piece generators draw from.
// *math/rand.Rand satisfies it; tests substitute fixed sequences.
type Rand interface {
	Intn(n int) int
}

// Queue is the serializable state of a piece generator. The 7-bag generator
// keeps Bag; the NES generator keeps Last and a one-piece lookahead in Next.
type Queue struct {
	Bag  []PieceKind
	Last PieceKind
	Next PieceKind
}

// Randomizer produces the piece sequence for a rule set. Implementations are
// stateless; all state lives in the Queue they are handed, which they never
// mutate in place.
type Randomizer interface {
	// Prime prepares a fresh queue at game start.
	Prime(rng Rand, preview int) Queue
	// Draw deals the next kind and returns the advanced queue.
	Draw(q Queue, rng Rand, preview int) (PieceKind, Queue)
	// Upcoming lists up to preview kinds that will be dealt next.
	Upcoming(q Queue, preview int) []PieceKind
}

// RandomizerFor selects the generator named by kind.
func RandomizerFor(kind RandomizerKind) Randomizer {
	if kind == RandomizerNES {
		return nesRandomizer{}
	}
	return bagRandomizer{}
}

// bagRandomizer deals shuffled bags of all seven kinds.
type bagRandomizer struct{}

// NewBag returns the seven kinds in a uniformly random order (Fisher-Yates).
func NewBag(rng Rand) []PieceKind {
	bag := make([]PieceKind, KindCount)
	copy(bag, Kinds[:])
	for i := len(bag) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		bag[i], bag[j] = bag[j], bag[i]
	}
	return bag
}

// refill appends whole bags until at least preview+1 kinds are queued.
// The input slice is never modified.
func refill(bag []PieceKind, rng Rand, preview int) []PieceKind {
	preview = core.Clamp(preview, 0, MaxNextPieces)
	if len(bag) >= preview+1 {
		return bag
	}
	out := make([]PieceKind, len(bag), len(bag)+KindCount*2)
	copy(out, bag)
	for len(out) < preview+1 {
		out = append(out, NewBag(rng)...)
	}
	return out
}

func (bagRandomizer) Prime(rng Rand, preview int) Queue {
	return Queue{Bag: refill(nil, rng, preview)}
}

func (bagRandomizer) Draw(q Queue, rng Rand, preview int) (PieceKind, Queue) {
	bag := refill(q.Bag, rng, preview)
	kind := bag[0]
	rest := refill(bag[1:], rng, preview)
	// Detach from the previous backing array so older states stay intact.
	q.Bag = append([]PieceKind(nil), rest...)
	q.Last = kind
	return kind, q
}

func (bagRandomizer) Upcoming(q Queue, preview int) []PieceKind {
	n := core.Min(core.Clamp(preview, 0, MaxNextPieces), len(q.Bag))
	out := make([]PieceKind, n)
	copy(out, q.Bag[:n])
	return out
}

// nesRandomizer draws uniformly from the seven kinds and rerolls once when
// the draw repeats the previous kind. A single piece is drawn ahead so the
// preview can show it.
type nesRandomizer struct{}

// DrawNES performs one NES-style draw given the previously dealt kind.
func DrawNES(rng Rand, last PieceKind) PieceKind {
	kind := Kinds[rng.Intn(KindCount)]
	if kind == last {
		kind = Kinds[rng.Intn(KindCount)]
	}
	return kind
}

func (nesRandomizer) Prime(rng Rand, _ int) Queue {
	return Queue{Next: DrawNES(rng, None)}
}

func (nesRandomizer) Draw(q Queue, rng Rand, _ int) (PieceKind, Queue) {
	kind := q.Next
	if !kind.Valid() {
		kind = DrawNES(rng, q.Last)
	}
	return kind, Queue{Last: kind, Next: DrawNES(rng, kind)}
}

func (nesRandomizer) Upcoming(q Queue, preview int) []PieceKind {
	if preview <= 0 || !q.Next.Valid() {
		return nil
	}
	return []PieceKind{q.Next}
}
