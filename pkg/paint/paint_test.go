package paint

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/mino"
)

type call struct {
	op    string
	color tcell.Color
	rect  Rect
}

type recordingSurface struct {
	paint tcell.Color
	calls []call
}

func (s *recordingSurface) SetPaint(c tcell.Color) { s.paint = c }
func (s *recordingSurface) Fill(r Rect)            { s.calls = append(s.calls, call{"fill", s.paint, r}) }
func (s *recordingSurface) Draw(r Rect)            { s.calls = append(s.calls, call{"draw", s.paint, r}) }

func (s *recordingSurface) rects(op string) []Rect {
	var rects []Rect
	for _, c := range s.calls {
		if c.op == op {
			rects = append(rects, c.rect)
		}
	}
	return rects
}

func TestPaintORotation0(t *testing.T) {
	for _, d := range []struct{ h, x, y int }{{10, 0, 0}, {20, 35, 7}, {3, -4, 9}} {
		s := &recordingSurface{}
		require.True(t, PaintO(s, d.h, d.y, d.x, 0))

		side := d.h - 1
		want := []Rect{
			{d.x, d.y, side, side},
			{d.x + d.h, d.y, side, side},
			{d.x, d.y + d.h, side, side},
			{d.x + d.h, d.y + d.h, side, side},
		}
		assert.ElementsMatch(t, want, s.rects("fill"))
		assert.ElementsMatch(t, want, s.rects("draw"))

		for _, c := range s.calls {
			if c.op == "fill" {
				assert.Equal(t, tcell.ColorYellow, c.color)
			} else {
				assert.Equal(t, DefaultPainter.Outline, c.color)
			}
		}
	}
}

func TestSquaresRotations(t *testing.T) {
	zero, ok := Squares(mino.PieceO, 8, 2, 3, 0)
	require.True(t, ok)
	for _, r := range []int{90, 180, 270} {
		got, ok := Squares(mino.PieceO, 8, 2, 3, r)
		require.True(t, ok, "rotation %d", r)
		assert.ElementsMatch(t, zero, got, "O piece changed at rotation %d", r)
	}

	for _, p := range mino.AllPieces {
		for _, r := range []int{0, 90, 180, 270} {
			squares, ok := Squares(p, 4, 0, 0, r)
			require.True(t, ok)
			assert.Len(t, squares, 4, "piece %s rotation %d", p, r)
		}
	}

	vertical, ok := Squares(mino.PieceI, 2, 0, 0, 90)
	require.True(t, ok)
	for _, r := range vertical {
		assert.Equal(t, 4, r.X, "I piece at 90 degrees should be a single column")
	}
}

func TestPaintUnknownRotation(t *testing.T) {
	for _, r := range []int{45, -90, 360, 1} {
		s := &recordingSurface{}
		assert.False(t, PaintO(s, 10, 0, 0, r))
		assert.Empty(t, s.calls)
	}

	s := &recordingSurface{}
	assert.False(t, Paint(s, mino.PieceType(42), 10, 0, 0, 0))
	assert.Empty(t, s.calls)
}

func TestPainterPalette(t *testing.T) {
	p := Painter{Palette: Palette{mino.PieceT: tcell.ColorWhite}, Outline: tcell.ColorGray}

	s := &recordingSurface{}
	require.True(t, p.Paint(s, mino.PieceT, 2, 0, 0, 0))
	assert.Equal(t, tcell.ColorWhite, s.calls[0].color)
	assert.Equal(t, tcell.ColorGray, s.calls[len(s.calls)-1].color)

	s = &recordingSurface{}
	require.True(t, p.Paint(s, mino.PieceZ, 2, 0, 0, 0))
	assert.Equal(t, tcell.ColorRed, s.calls[0].color)
}
