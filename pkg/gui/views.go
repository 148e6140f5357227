package gui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
	"github.com/qnkhuat/tetristerm/pkg/paint"
)

// DefaultBlockHeight is the preview block size in paint units.
const DefaultBlockHeight = 3

// Matrix is what BoardView needs to draw a board.
type Matrix interface {
	Size() (int, int)
	Render() [][]mino.Block
	Ghost() mino.Mino
}

// BoardView draws the board's visible rows and the ghost of the falling
// piece.
type BoardView struct {
	*tview.Box

	matrix Matrix
	theme  Theme
}

func NewBoardView(m Matrix, theme Theme) *BoardView {
	v := &BoardView{
		Box:    tview.NewBox(),
		matrix: m,
		theme:  theme,
	}
	v.SetBorder(true).
		SetBorderColor(theme.Border).
		SetBackgroundColor(theme.Background)
	return v
}

// Width and Height return the size the view needs including its border.
func (v *BoardView) Width() int {
	w, _ := v.matrix.Size()
	return w*cellWidth + 2
}

func (v *BoardView) Height() int {
	_, h := v.matrix.Size()
	return h + 2
}

func (v *BoardView) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()

	rows := v.matrix.Render()
	ghost := v.matrix.Ghost()

	for row := 0; row < len(rows) && row < height; row++ {
		for col := 0; col < len(rows[row]) && (col+1)*cellWidth <= width; col++ {
			blk := rows[row][col]
			sx, sy := x+col*cellWidth, y+row

			switch {
			case blk != mino.BlockNone:
				drawCell(screen, sx, sy, tcell.StyleDefault.Foreground(v.theme.BlockColor(blk)).Background(v.theme.Background), blk.Rune())
			case ghost.HasPoint(mino.Point{X: col, Y: row}):
				drawCell(screen, sx, sy, tcell.StyleDefault.Foreground(v.theme.Ghost).Background(v.theme.Background), '░')
			default:
				drawRune(screen, sx, sy, tcell.StyleDefault.Foreground(v.theme.Empty).Background(v.theme.Background), ' ')
				drawRune(screen, sx+1, sy, tcell.StyleDefault.Foreground(v.theme.Empty).Background(v.theme.Background), '.')
			}
		}
	}
}

// PreviewView shows the next piece.
type PreviewView struct {
	*tview.Box

	painter     paint.Painter
	blockHeight int

	piece mino.PieceType
	sync.Mutex
}

func NewPreviewView(theme Theme, blockHeight int) *PreviewView {
	if blockHeight < 2 {
		blockHeight = DefaultBlockHeight
	}
	v := &PreviewView{
		Box:         tview.NewBox(),
		painter:     theme.Painter(),
		blockHeight: blockHeight,
		piece:       -1,
	}
	v.SetBorder(true).
		SetTitle(" Next ").
		SetTitleColor(theme.Label).
		SetBorderColor(theme.Border).
		SetBackgroundColor(theme.Background)
	return v
}

func (v *PreviewView) SetPiece(p mino.PieceType) {
	v.Lock()
	defer v.Unlock()

	v.piece = p
}

func (v *PreviewView) Piece() mino.PieceType {
	v.Lock()
	defer v.Unlock()

	return v.piece
}

// Height returns the rows the view needs to show any piece at rotation 0.
func (v *PreviewView) Height() int {
	return 2*v.blockHeight + 2
}

func (v *PreviewView) Width() int {
	return 4*v.blockHeight*cellWidth + 2
}

func (v *PreviewView) Draw(screen tcell.Screen) {
	v.Box.DrawForSubclass(screen, v)
	x, y, width, height := v.GetInnerRect()

	p := v.Piece()
	if !p.Valid() {
		return
	}

	s := &screenSurface{s: screen, x: x, y: y, w: width, h: height}
	v.painter.Paint(s, p, v.blockHeight, 0, 0, 0)
}

// ScoreView lists the player, score, cleared lines and level.
type ScoreView struct {
	*tview.TextView

	player string
	theme  Theme
}

func NewScoreView(player string, theme Theme) *ScoreView {
	v := &ScoreView{
		TextView: tview.NewTextView().SetDynamicColors(true),
		player:   player,
		theme:    theme,
	}
	v.SetBorder(true).
		SetBorderColor(theme.Border).
		SetBackgroundColor(theme.Background)
	v.SetTextColor(theme.Text)
	v.SetScore(event.ScoreEvent{})
	return v
}

func (v *ScoreView) SetScore(e event.ScoreEvent) {
	label := fmt.Sprintf("[#%06x]", v.theme.Label.Hex())
	if v.theme.Label.Hex() < 0 {
		label = "[-]"
	}

	var sb strings.Builder
	if v.player != "" {
		fmt.Fprintf(&sb, "%s%s[-]\n", label, tview.Escape(v.player))
	}
	fmt.Fprintf(&sb, "%sScore[-] %d\n", label, e.Score)
	fmt.Fprintf(&sb, "%sLines[-] %d\n", label, e.Lines)
	fmt.Fprintf(&sb, "%sLevel[-] %d", label, e.Level)
	v.SetText(sb.String())
}

// NewControlsView lists the key bindings.
func NewControlsView(help []string, theme Theme) *tview.TextView {
	v := tview.NewTextView().SetText(strings.Join(help, "\n"))
	v.SetTextColor(theme.Text)
	v.SetBorder(true).
		SetTitle(" Controls ").
		SetTitleColor(theme.Label).
		SetBorderColor(theme.Border).
		SetBackgroundColor(theme.Background)
	return v
}
