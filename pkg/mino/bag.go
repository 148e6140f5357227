package mino

import (
	"math/rand"
	"sync"
)

// Bag deals pieces in shuffled rounds of seven so that every piece type
// appears once per round.
type Bag struct {
	Pieces   []PieceType
	Original []PieceType

	randomizer *rand.Rand

	i int
	*sync.Mutex
}

func NewBag(seed int64) *Bag {
	b := &Bag{
		Original:   AllPieces,
		randomizer: rand.New(rand.NewSource(seed)),
		Mutex:      new(sync.Mutex),
	}

	b.shuffle()

	return b
}

// Take removes and returns the next piece, reshuffling after the last one
// of a round.
func (b *Bag) Take() PieceType {
	b.Lock()
	defer b.Unlock()

	t := b.Pieces[b.i]
	if b.i == len(b.Pieces)-1 {
		b.shuffle()

		b.i = 0
	} else {
		b.i++
	}

	return t
}

// Next peeks at the piece Take would return.
func (b *Bag) Next() PieceType {
	b.Lock()
	defer b.Unlock()

	return b.Pieces[b.i]
}

func (b *Bag) shuffle() {
	if b.Pieces == nil {
		b.Pieces = make([]PieceType, len(b.Original))
	}
	copy(b.Pieces, b.Original)

	b.randomizer.Shuffle(len(b.Pieces), func(i, j int) { b.Pieces[i], b.Pieces[j] = b.Pieces[j], b.Pieces[i] })
}
