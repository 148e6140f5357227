package mino

import (
	"sort"
	"strings"
)

// Mino is a set of cells making up a piece.
type Mino []Point

func (m Mino) Len() int      { return len(m) }
func (m Mino) Swap(i, j int) { m[i], m[j] = m[j], m[i] }
func (m Mino) Less(i, j int) bool {
	return m[i].Y < m[j].Y || (m[i].Y == m[j].Y && m[i].X < m[j].X)
}

func (m Mino) HasPoint(p Point) bool {
	for _, mp := range m {
		if mp == p {
			return true
		}
	}

	return false
}

// Equal reports whether both minos hold the same cells, in any order.
func (m Mino) Equal(other Mino) bool {
	if len(m) != len(other) {
		return false
	}

	for i := 0; i < len(m); i++ {
		if !m.HasPoint(other[i]) {
			return false
		}
	}

	return true
}

func (m Mino) String() string {
	newMino := make(Mino, len(m))
	copy(newMino, m)

	sort.Sort(newMino)

	var b strings.Builder
	for i := range newMino {
		if i > 0 {
			b.WriteRune(',')
		}
		b.WriteString(newMino[i].String())
	}

	return b.String()
}

// Size returns the width and height of the bounding box anchored at (0,0).
func (m Mino) Size() (int, int) {
	var x, y int
	for _, p := range m {
		if p.X > x {
			x = p.X
		}
		if p.Y > y {
			y = p.Y
		}
	}

	return x + 1, y + 1
}

// Rotate returns the mino turned clockwise a quarter turn inside a square
// box of the given size.
func (m Mino) Rotate(size int) Mino {
	newMino := make(Mino, len(m))
	for i, p := range m {
		newMino[i] = p.RotateIn(size)
	}

	return newMino
}

// Translate returns the mino moved by offset.
func (m Mino) Translate(offset Point) Mino {
	newMino := make(Mino, len(m))
	for i, p := range m {
		newMino[i] = p.Add(offset)
	}

	return newMino
}

// Render draws the mino with X for filled cells, top row first.
func (m Mino) Render() string {
	var b strings.Builder

	w, h := m.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if m.HasPoint(Point{x, y}) {
				b.WriteRune('X')
			} else {
				b.WriteRune(' ')
			}
		}
		b.WriteRune('\n')
	}

	return b.String()
}
