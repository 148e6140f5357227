package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/tetristerm/pkg/paint"
)

// Each board cell and each paint unit is two terminal columns wide so blocks
// look square.
const cellWidth = 2

// drawText places text at the specified coordinates with the provided style
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range []rune(text) {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}

// drawRune places a rune at the specified coordinates with the provided style
func drawRune(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	s.SetContent(x, y, r, nil, style)
}

// drawCell draws one board cell at column x, row y of the screen
func drawCell(s tcell.Screen, x, y int, style tcell.Style, r rune) {
	for i := 0; i < cellWidth; i++ {
		drawRune(s, x+i, y, style, r)
	}
}

// screenSurface paints on a screen region. One unit is cellWidth columns by
// one row; anything outside the clip rectangle is dropped.
type screenSurface struct {
	s          tcell.Screen
	x, y, w, h int
	color      tcell.Color
}

var _ paint.Surface = (*screenSurface)(nil)

func (ss *screenSurface) SetPaint(c tcell.Color) {
	ss.color = c
}

func (ss *screenSurface) set(ux, uy int, r rune, style tcell.Style) {
	x, y := ss.x+ux*cellWidth, ss.y+uy
	if ux < 0 || uy < 0 || x+cellWidth > ss.x+ss.w || y >= ss.y+ss.h {
		return
	}
	drawCell(ss.s, x, y, style, r)
}

func (ss *screenSurface) Fill(r paint.Rect) {
	style := tcell.StyleDefault.Background(ss.color)
	for y := r.Y; y < r.Y+r.H; y++ {
		for x := r.X; x < r.X+r.W; x++ {
			ss.set(x, y, ' ', style)
		}
	}
}

// Draw outlines r. Rectangles smaller than 2x2 units have no room for an
// outline.
func (ss *screenSurface) Draw(r paint.Rect) {
	if r.W < 2 || r.H < 2 {
		return
	}
	left, right, top, bottom := r.X, r.X+r.W-1, r.Y, r.Y+r.H-1

	for y := top; y <= bottom; y++ {
		for x := left; x <= right; x++ {
			if x != left && x != right && y != top && y != bottom {
				continue
			}
			// Keep the fill underneath and only change the foreground
			_, _, style, _ := ss.s.GetContent(ss.x+x*cellWidth, ss.y+y)
			ss.set(x, y, '▒', style.Foreground(ss.color))
		}
	}
}
