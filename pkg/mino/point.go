package mino

import (
	"strconv"
	"strings"
)

// Point is a cell coordinate. Y grows downwards, matching the screen.
type Point struct {
	X, Y int
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }

// RotateIn rotates the point a quarter turn clockwise inside a square box of
// the given size.
func (p Point) RotateIn(size int) Point { return Point{size - 1 - p.Y, p.X} }

func (p Point) String() string {
	var b strings.Builder
	b.WriteRune('(')
	b.WriteString(strconv.Itoa(p.X))
	b.WriteRune(',')
	b.WriteString(strconv.Itoa(p.Y))
	b.WriteRune(')')

	return b.String()
}
