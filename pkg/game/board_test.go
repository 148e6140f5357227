package game

import (
	"errors"
	"testing"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

func newTestBoard(t *testing.T) *Board {
	b, err := NewBoard(WithSeed(1))
	if err != nil {
		t.Fatal(err)
	}
	return b
}

type recorder struct {
	overs  []bool
	pieces []mino.PieceType
	scores []event.ScoreEvent
	boards int
}

func (r *recorder) handlers() event.Handlers {
	return event.Handlers{
		GameOver:  func(over bool) { r.overs = append(r.overs, over) },
		NextPiece: func(p mino.PieceType) { r.pieces = append(r.pieces, p) },
		Score:     func(e event.ScoreEvent) { r.scores = append(r.scores, e) },
		Board:     func() { r.boards++ },
	}
}

func TestNewBoardSize(t *testing.T) {
	_, err := NewBoard(WithSize(2, 20))
	if !errors.Is(err, ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}

	b, err := NewBoard(WithSize(12, 22))
	if err != nil {
		t.Fatal(err)
	}
	if w, h := b.Size(); w != 12 || h != 22 {
		t.Errorf("unexpected size %dx%d", w, h)
	}
	if len(b.Cells()) != 22 || len(b.Cells()[0]) != 12 {
		t.Error("cells do not match board size")
	}
}

func TestBoardDealsFromBag(t *testing.T) {
	b := newTestBoard(t)
	bag := mino.NewBag(1)

	first, second := bag.Take(), bag.Take()
	if b.Piece().Type != first {
		t.Errorf("expected first piece %s, got %s", first, b.Piece().Type)
	}
	if b.Next() != second {
		t.Errorf("expected next piece %s, got %s", second, b.Next())
	}

	r := &recorder{}
	b.Subscribe(r.handlers())
	b.Drop()

	if b.Piece().Type != second {
		t.Errorf("expected %s after drop, got %s", second, b.Piece().Type)
	}
	third := bag.Take()
	if len(r.pieces) != 1 || r.pieces[0] != third {
		t.Errorf("expected NextPiece(%s), got %v", third, r.pieces)
	}
	if b.Filled() != 4 {
		t.Errorf("expected 4 locked blocks, got %d", b.Filled())
	}
}

func TestBoardWalls(t *testing.T) {
	b := newTestBoard(t)

	for i := 0; i < 20; i++ {
		b.MoveLeft()
	}
	for _, c := range b.Piece().Cells() {
		if c.X < 0 {
			t.Fatalf("piece moved through left wall: %s", b.Piece())
		}
	}
	minX := b.W
	for _, c := range b.Piece().Cells() {
		if c.X < minX {
			minX = c.X
		}
	}
	if minX != 0 {
		t.Errorf("piece did not reach left wall, min x %d", minX)
	}

	b.RotateCW()
	for _, c := range b.Piece().Cells() {
		if c.X < 0 || c.X >= b.W {
			t.Errorf("rotation against wall left piece out of bounds: %s", b.Piece())
		}
	}

	for i := 0; i < 20; i++ {
		b.MoveRight()
	}
	for _, c := range b.Piece().Cells() {
		if c.X >= b.W {
			t.Fatalf("piece moved through right wall: %s", b.Piece())
		}
	}
}

func TestBoardRotate(t *testing.T) {
	b := newTestBoard(t)

	spawn := b.Piece().Cells()
	for i := 0; i < mino.RotationStates; i++ {
		b.RotateCW()
	}
	if !b.Piece().Cells().Equal(spawn) {
		t.Errorf("four rotations changed the piece: %s -> %s", spawn, b.Piece().Cells())
	}
}

func TestBoardStepLocks(t *testing.T) {
	b := newTestBoard(t)
	first := b.Piece().Type

	for i := 0; i < b.H+b.B; i++ {
		b.Step()
	}
	if b.Filled() != 4 {
		t.Fatalf("expected the first piece to lock, %d blocks locked", b.Filled())
	}

	cells := b.Cells()
	bottom := 0
	for _, blk := range cells[b.H-1] {
		if blk == first.Block() {
			bottom++
		}
	}
	if bottom == 0 {
		t.Error("locked piece is not on the floor")
	}

	ghost := b.Ghost()
	maxY := 0
	for _, c := range ghost {
		if c.Y > maxY {
			maxY = c.Y
		}
	}
	if maxY >= b.H {
		t.Errorf("ghost below the floor: %s", ghost)
	}
}

func TestBoardClearsRows(t *testing.T) {
	b := newTestBoard(t)
	for x := 0; x < b.W; x++ {
		if !b.SetBlock(x, b.H-1, mino.BlockCyan) {
			t.Fatalf("failed to set block %d", x)
		}
	}
	if b.SetBlock(0, b.H-1, mino.BlockCyan) {
		t.Error("set a block on a filled cell")
	}
	if b.SetBlock(b.W, 0, mino.BlockCyan) {
		t.Error("set a block outside the matrix")
	}

	r := &recorder{}
	b.Subscribe(r.handlers())
	b.Drop()

	score := b.Score()
	if score.Lines != 1 {
		t.Errorf("expected 1 cleared line, got %d", score.Lines)
	}
	if score.Score < lineScores[1] {
		t.Errorf("expected at least %d points, got %d", lineScores[1], score.Score)
	}
	if b.Filled() != 4 {
		t.Errorf("expected only the dropped piece to remain, %d blocks locked", b.Filled())
	}
	if len(r.scores) != 1 || r.scores[0] != score {
		t.Errorf("unexpected score notifications: %v", r.scores)
	}
	if len(r.overs) != 0 {
		t.Errorf("unexpected game over notifications: %v", r.overs)
	}
}

func TestBoardGameOver(t *testing.T) {
	b := newTestBoard(t)
	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W-1; x++ {
			b.SetBlock(x, y, mino.BlockRed)
		}
	}

	r := &recorder{}
	b.Subscribe(r.handlers())
	b.Drop()

	if !b.GameOver() {
		t.Fatal("expected game over")
	}
	if len(r.overs) != 1 || !r.overs[0] {
		t.Fatalf("expected one GameOver(true), got %v", r.overs)
	}

	boards := r.boards
	b.Step()
	b.MoveLeft()
	b.RotateCW()
	b.Drop()
	if r.boards != boards || len(r.overs) != 1 {
		t.Error("commands changed the board after game over")
	}

	b.NewGame()
	if b.GameOver() || b.Filled() != 0 || b.Score().Score != 0 {
		t.Error("NewGame did not reset the board")
	}
	if len(r.overs) != 2 || r.overs[1] {
		t.Errorf("expected GameOver(false) after NewGame, got %v", r.overs)
	}
}

func TestBoardRender(t *testing.T) {
	b := newTestBoard(t)

	filled := 0
	for _, row := range b.Render() {
		for _, blk := range row {
			if blk != mino.BlockNone {
				filled++
			}
		}
	}
	if filled != 4 {
		t.Errorf("expected the falling piece in the render, got %d blocks", filled)
	}
}
