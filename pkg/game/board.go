package game

import (
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/jeanphorn/log4go"
	"github.com/kamstrup/intmap"

	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

const (
	DefaultWidth  = 10
	DefaultHeight = 20
	BufferHeight  = 2

	MinWidth  = 4
	MinHeight = 4
)

var ErrInvalidSize = errors.New("invalid board size")

// Points for clearing 1, 2, 3 and 4 rows at once, multiplied by level+1.
var lineScores = [...]int{0, 40, 100, 300, 1200}

// Columns tried, in order, when a rotation collides.
var rotationKicks = []int{0, -1, 1, -2, 2}

// Board holds the playfield, the falling piece and the score. Commands are
// ignored once the game is over until NewGame is called. Notifications are
// delivered after the board lock is released, so handlers may query the
// board.
type Board struct {
	W int // Width
	H int // Visible height
	B int // Buffer height above the visible rows

	cells *intmap.Map[int, mino.Block]
	bag   *mino.Bag
	seed  int64

	piece mino.Piece
	next  mino.PieceType

	score, lines, level int
	gameOver            bool

	bus *event.Bus

	sync.Mutex
}

type BoardOption func(*Board)

func WithSize(width, height int) BoardOption {
	return func(b *Board) {
		b.W = width
		b.H = height
	}
}

func WithSeed(seed int64) BoardOption {
	return func(b *Board) {
		b.seed = seed
	}
}

// WithBus shares a notification bus between boards and other publishers.
func WithBus(bus *event.Bus) BoardOption {
	return func(b *Board) {
		b.bus = bus
	}
}

func NewBoard(options ...BoardOption) (*Board, error) {
	b := &Board{
		W:    DefaultWidth,
		H:    DefaultHeight,
		B:    BufferHeight,
		seed: time.Now().UnixNano(),
	}
	for _, opt := range options {
		opt(b)
	}

	if b.W < MinWidth || b.H < MinHeight {
		return nil, fmt.Errorf("%w: %dx%d, minimum is %dx%d", ErrInvalidSize, b.W, b.H, MinWidth, MinHeight)
	}
	if b.bus == nil {
		b.bus = event.NewBus()
	}

	b.reset()

	return b, nil
}

// I returns the cell index of x, y in a matrix of width w.
func I(x int, y int, w int) int {
	return (y * w) + x
}

func (b *Board) Subscribe(h event.Handlers) event.Subscription {
	return b.bus.Subscribe(h)
}

func (b *Board) Unsubscribe(s event.Subscription) bool {
	return b.bus.Unsubscribe(s)
}

// notes collects the notifications a command produced while the board was
// locked.
type notes struct {
	board    bool
	score    bool
	next     bool
	gameOver bool

	scoreEvent event.ScoreEvent
	nextPiece  mino.PieceType
	over       bool
}

func (b *Board) do(f func(n *notes)) {
	b.Lock()
	var n notes
	f(&n)
	b.Unlock()

	b.notify(n)
}

func (b *Board) notify(n notes) {
	if n.board {
		b.bus.PublishBoard()
	}
	if n.score {
		b.bus.PublishScore(n.scoreEvent)
	}
	if n.next {
		b.bus.PublishNextPiece(n.nextPiece)
	}
	if n.gameOver {
		b.bus.PublishGameOver(n.over)
	}
}

// NewGame clears the board, resets the score and deals a new piece.
func (b *Board) NewGame() {
	b.do(func(n *notes) {
		b.reset()

		n.board = true
		n.score, n.scoreEvent = true, b.scoreEventL()
		n.next, n.nextPiece = true, b.next
		n.gameOver, n.over = true, false
	})

	log.Info("New game started (seed %d)", b.seed)
}

func (b *Board) reset() {
	b.cells = intmap.New[int, mino.Block](b.W * (b.H + b.B))
	b.bag = mino.NewBag(b.seed)
	b.score, b.lines, b.level = 0, 0, 0
	b.gameOver = false

	b.next = b.bag.Take()
	b.spawn()
}

func (b *Board) MoveLeft() {
	b.do(func(n *notes) { b.shift(n, -1) })
}

func (b *Board) MoveRight() {
	b.do(func(n *notes) { b.shift(n, 1) })
}

// MoveDown moves the piece down one row, locking it when it cannot fall.
func (b *Board) MoveDown() {
	b.do(b.fall)
}

// Step advances the game by one tick of gravity.
func (b *Board) Step() {
	b.do(b.fall)
}

func (b *Board) RotateCW() {
	b.do(func(n *notes) {
		if b.gameOver {
			return
		}

		rotated := b.piece.Rotated(1)
		for _, kick := range rotationKicks {
			p := rotated.Moved(kick, 0)
			if b.canPlace(p) {
				b.piece = p
				n.board = true
				return
			}
		}
	})
}

// Drop moves the piece to the lowest free position and locks it.
func (b *Board) Drop() {
	b.do(func(n *notes) {
		if b.gameOver {
			return
		}

		rows := 0
		for b.canPlace(b.piece.Moved(0, 1)) {
			b.piece = b.piece.Moved(0, 1)
			rows++
		}
		b.score += rows

		b.lock(n)
	})
}

func (b *Board) shift(n *notes, dx int) {
	if b.gameOver {
		return
	}

	p := b.piece.Moved(dx, 0)
	if !b.canPlace(p) {
		return
	}

	b.piece = p
	n.board = true
}

func (b *Board) fall(n *notes) {
	if b.gameOver {
		return
	}

	p := b.piece.Moved(0, 1)
	if b.canPlace(p) {
		b.piece = p
		n.board = true
		return
	}

	b.lock(n)
}

func (b *Board) canPlace(p mino.Piece) bool {
	for _, c := range p.Cells() {
		if c.X < 0 || c.X >= b.W || c.Y < 0 || c.Y >= b.H+b.B {
			return false
		}
		if _, ok := b.cells.Get(I(c.X, c.Y, b.W)); ok {
			return false
		}
	}

	return true
}

// lock writes the piece into the matrix, clears filled rows and deals the
// next piece.
func (b *Board) lock(n *notes) {
	block := b.piece.Type.Block()
	for _, c := range b.piece.Cells() {
		b.cells.Put(I(c.X, c.Y, b.W), block)
	}

	cleared := b.clearFilled()
	if cleared > 0 {
		b.score += lineScores[cleared] * (b.level + 1)
		b.lines += cleared
		b.level = b.lines / 10

		log.Debug("Cleared %d rows, score %d, level %d", cleared, b.score, b.level)
	}

	n.board = true
	n.score, n.scoreEvent = true, b.scoreEventL()

	b.next = b.bag.Take()
	if !b.spawn() {
		b.gameOver = true
		n.gameOver, n.over = true, true

		log.Info("Game over: score %d, lines %d", b.score, b.lines)
	}
	n.next, n.nextPiece = true, b.next
}

// spawn moves the next piece to the top of the matrix. It reports false when
// the piece overlaps locked blocks.
func (b *Board) spawn() bool {
	t := b.next
	b.next = b.bag.Next()

	m := t.Mino(mino.Rotation0)
	top := m[0].Y
	for _, c := range m {
		if c.Y < top {
			top = c.Y
		}
	}

	b.piece = mino.NewPiece(t, mino.Point{X: (b.W - t.BoxSize()) / 2, Y: b.B - top})

	return b.canPlace(b.piece)
}

func (b *Board) rowFilled(y int) bool {
	for x := 0; x < b.W; x++ {
		if _, ok := b.cells.Get(I(x, y, b.W)); !ok {
			return false
		}
	}
	return true
}

func (b *Board) clearFilled() int {
	cleared := 0
	for y := b.H + b.B - 1; y >= 0; y-- {
		if b.rowFilled(y) {
			for x := 0; x < b.W; x++ {
				b.cells.Del(I(x, y, b.W))
			}
			cleared++
			continue
		}

		if cleared > 0 {
			b.moveRow(y, y+cleared)
		}
	}

	return cleared
}

func (b *Board) moveRow(from, to int) {
	for x := 0; x < b.W; x++ {
		if blk, ok := b.cells.Get(I(x, from, b.W)); ok {
			b.cells.Put(I(x, to, b.W), blk)
			b.cells.Del(I(x, from, b.W))
		} else {
			b.cells.Del(I(x, to, b.W))
		}
	}
}

func (b *Board) scoreEventL() event.ScoreEvent {
	return event.ScoreEvent{Score: b.score, Lines: b.lines, Level: b.level}
}
