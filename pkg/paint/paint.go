// Package paint turns a piece, a block size and a grid anchor into the
// squares that draw it.
package paint

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Rect is an axis-aligned rectangle in surface units.
type Rect struct {
	X, Y, W, H int
}

// Surface is a drawing target with a current paint colour.
type Surface interface {
	SetPaint(c tcell.Color)
	Fill(r Rect)
	Draw(r Rect)
}

// Palette maps pieces to their fill colour.
type Palette map[mino.PieceType]tcell.Color

var Colors = Palette{
	mino.PieceI: tcell.ColorAqua,
	mino.PieceO: tcell.ColorYellow,
	mino.PieceJ: tcell.ColorBlue,
	mino.PieceL: tcell.ColorOrange,
	mino.PieceS: tcell.ColorLime,
	mino.PieceT: tcell.ColorFuchsia,
	mino.PieceZ: tcell.ColorRed,
}

// Squares returns the four squares of piece t at rotation degrees (0, 90,
// 180 or 270), anchored at x, y. Blocks are blockHeight apart and
// blockHeight-1 wide so neighbours keep a visible gap. It reports false for
// any other angle.
func Squares(t mino.PieceType, blockHeight, x, y, rotation int) ([]Rect, bool) {
	if !t.Valid() {
		return nil, false
	}

	var state int
	switch rotation {
	case 0:
		state = mino.Rotation0
	case 90:
		state = mino.RotationR
	case 180:
		state = mino.Rotation2
	case 270:
		state = mino.RotationL
	default:
		return nil, false
	}

	cells := t.Mino(state)
	squares := make([]Rect, len(cells))
	for i, c := range cells {
		squares[i] = Rect{
			X: x + c.X*blockHeight,
			Y: y + c.Y*blockHeight,
			W: blockHeight - 1,
			H: blockHeight - 1,
		}
	}

	return squares, true
}

// Painter draws pieces with a palette and an outline colour.
type Painter struct {
	Palette Palette
	Outline tcell.Color
}

var DefaultPainter = Painter{Palette: Colors, Outline: tcell.ColorBlack}

// Paint fills the squares of piece t with the piece colour and outlines
// them. An unknown rotation draws nothing.
func (p Painter) Paint(s Surface, t mino.PieceType, blockHeight, x, y, rotation int) bool {
	squares, ok := Squares(t, blockHeight, x, y, rotation)
	if !ok {
		return false
	}

	s.SetPaint(p.color(t))
	for _, r := range squares {
		s.Fill(r)
	}

	s.SetPaint(p.Outline)
	for _, r := range squares {
		s.Draw(r)
	}

	return true
}

func (p Painter) color(t mino.PieceType) tcell.Color {
	if c, ok := p.Palette[t]; ok {
		return c
	}
	return Colors[t]
}

func Paint(s Surface, t mino.PieceType, blockHeight, x, y, rotation int) bool {
	return DefaultPainter.Paint(s, t, blockHeight, x, y, rotation)
}

// PaintO paints the O piece.
func PaintO(s Surface, blockHeight, y, x, rotation int) bool {
	return Paint(s, mino.PieceO, blockHeight, x, y, rotation)
}
