package gui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

// screenLines returns the screen contents, one string per row
func screenLines(s tcell.SimulationScreen) []string {
	s.Show()
	cells, w, h := s.GetContents()

	lines := make([]string, h)
	for y := 0; y < h; y++ {
		var sb strings.Builder
		for x := 0; x < w; x++ {
			c := cells[y*w+x]
			if len(c.Runes) == 0 {
				sb.WriteRune(' ')
				continue
			}
			sb.WriteRune(c.Runes[0])
		}
		lines[y] = sb.String()
	}
	return lines
}

func TestBoardViewDraw(t *testing.T) {
	b, err := game.NewBoard(game.WithSize(4, 4), game.WithSeed(1))
	require.NoError(t, err)
	b.NewGame()
	require.True(t, b.SetBlock(0, 3, mino.BlockRed))

	v := NewBoardView(b, ThemeBasic)
	assert.Equal(t, 10, v.Width())
	assert.Equal(t, 6, v.Height())

	s := newTestScreen(t, v.Width(), v.Height())
	v.SetRect(0, 0, v.Width(), v.Height())
	v.Draw(s)

	lines := screenLines(s)
	assert.Equal(t, "██", string([]rune(lines[4])[1:3]), "locked block at the bottom left")

	_, _, style, _ := s.GetContent(1, 4)
	fg, _, _ := style.Decompose()
	assert.Equal(t, ThemeBasic.Z, fg)
}

func TestPreviewViewDraw(t *testing.T) {
	v := NewPreviewView(ThemeBasic, DefaultBlockHeight)
	s := newTestScreen(t, v.Width(), v.Height())
	v.SetRect(0, 0, v.Width(), v.Height())

	v.Draw(s)
	_, _, style, _ := s.GetContent(1, 1)
	_, bg, _ := style.Decompose()
	assert.NotEqual(t, tcell.ColorYellow, bg, "nothing drawn before the first piece")

	v.SetPiece(mino.PieceO)
	assert.Equal(t, mino.PieceO, v.Piece())
	v.Draw(s)

	_, _, style, _ = s.GetContent(1, 1)
	_, bg, _ = style.Decompose()
	assert.Equal(t, tcell.ColorYellow, bg)
}

func TestScoreView(t *testing.T) {
	v := NewScoreView("brave-otter", ThemeBasic)
	v.SetScore(event.ScoreEvent{Score: 1200, Lines: 14, Level: 1})

	text := v.GetText(true)
	assert.Contains(t, text, "brave-otter")
	assert.Contains(t, text, "Score 1200")
	assert.Contains(t, text, "Lines 14")
	assert.Contains(t, text, "Level 1")
}
