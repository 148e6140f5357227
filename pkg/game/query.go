package game

import (
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

// Queries use visible coordinates: row 0 is the top visible row and the
// buffer rows above it are negative.

func (b *Board) Size() (int, int) {
	return b.W, b.H
}

// Cells returns the locked blocks of the visible rows.
func (b *Board) Cells() [][]mino.Block {
	b.Lock()
	defer b.Unlock()

	return b.cellsL()
}

func (b *Board) cellsL() [][]mino.Block {
	rows := make([][]mino.Block, b.H)
	for y := 0; y < b.H; y++ {
		rows[y] = make([]mino.Block, b.W)
		for x := 0; x < b.W; x++ {
			if blk, ok := b.cells.Get(I(x, y+b.B, b.W)); ok {
				rows[y][x] = blk
			}
		}
	}
	return rows
}

// Render returns the visible rows with the falling piece drawn in.
func (b *Board) Render() [][]mino.Block {
	b.Lock()
	defer b.Unlock()

	rows := b.cellsL()
	block := b.piece.Type.Block()
	for _, c := range b.piece.Cells() {
		y := c.Y - b.B
		if y >= 0 && y < b.H && c.X >= 0 && c.X < b.W {
			rows[y][c.X] = block
		}
	}
	return rows
}

// SetBlock places a locked block. It reports false when x, y is outside the
// matrix or already filled.
func (b *Board) SetBlock(x, y int, blk mino.Block) bool {
	b.Lock()
	defer b.Unlock()

	y += b.B
	if x < 0 || x >= b.W || y < 0 || y >= b.H+b.B {
		return false
	}

	i := I(x, y, b.W)
	if _, ok := b.cells.Get(i); ok {
		return false
	}
	b.cells.Put(i, blk)
	return true
}

// Filled returns the number of locked blocks, buffer rows included.
func (b *Board) Filled() int {
	b.Lock()
	defer b.Unlock()

	return b.cells.Len()
}

func (b *Board) Piece() mino.Piece {
	b.Lock()
	defer b.Unlock()

	return b.piece.Moved(0, -b.B)
}

// Ghost returns the cells the falling piece would land on if dropped.
func (b *Board) Ghost() mino.Mino {
	b.Lock()
	defer b.Unlock()

	p := b.piece
	for b.canPlace(p.Moved(0, 1)) {
		p = p.Moved(0, 1)
	}
	return p.Cells().Translate(mino.Point{Y: -b.B})
}

func (b *Board) Next() mino.PieceType {
	b.Lock()
	defer b.Unlock()

	return b.next
}

func (b *Board) Score() event.ScoreEvent {
	b.Lock()
	defer b.Unlock()

	return b.scoreEventL()
}

func (b *Board) GameOver() bool {
	b.Lock()
	defer b.Unlock()

	return b.gameOver
}

func (b *Board) Lines() int {
	b.Lock()
	defer b.Unlock()

	return b.lines
}

func (b *Board) Level() int {
	b.Lock()
	defer b.Unlock()

	return b.level
}
