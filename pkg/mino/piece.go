package mino

import "fmt"

const (
	Rotation0 = 0
	RotationR = 1
	Rotation2 = 2
	RotationL = 3

	RotationStates = 4
)

type PieceType int

const (
	PieceI PieceType = iota
	PieceO
	PieceJ
	PieceL
	PieceS
	PieceT
	PieceZ

	PieceCount = 7
)

// AllPieces lists every tetromino in bag order.
var AllPieces = []PieceType{PieceI, PieceO, PieceJ, PieceL, PieceS, PieceT, PieceZ}

// Spawn orientation of every piece inside its rotation box.
var spawnMinos = map[PieceType]Mino{
	PieceI: {{0, 1}, {1, 1}, {2, 1}, {3, 1}},
	PieceO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	PieceJ: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	PieceL: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
	PieceS: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	PieceT: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	PieceZ: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
}

var boxSizes = map[PieceType]int{
	PieceI: 4,
	PieceO: 2,
	PieceJ: 3,
	PieceL: 3,
	PieceS: 3,
	PieceT: 3,
	PieceZ: 3,
}

var pieceBlocks = map[PieceType]Block{
	PieceI: BlockCyan,
	PieceO: BlockYellow,
	PieceJ: BlockBlue,
	PieceL: BlockOrange,
	PieceS: BlockGreen,
	PieceT: BlockMagenta,
	PieceZ: BlockRed,
}

// rotations[t][r] is piece t turned r quarter turns clockwise.
var rotations = make(map[PieceType][RotationStates]Mino)

func init() {
	for _, t := range AllPieces {
		var r [RotationStates]Mino
		r[Rotation0] = spawnMinos[t]
		for i := 1; i < RotationStates; i++ {
			r[i] = r[i-1].Rotate(boxSizes[t])
		}
		rotations[t] = r
	}
}

func (t PieceType) Valid() bool {
	return t >= PieceI && t < PieceCount
}

func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceO:
		return "O"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceS:
		return "S"
	case PieceT:
		return "T"
	case PieceZ:
		return "Z"
	default:
		return "?"
	}
}

// Block returns the colour the piece is drawn and locked with.
func (t PieceType) Block() Block {
	return pieceBlocks[t]
}

// BoxSize is the side of the square the piece rotates in.
func (t PieceType) BoxSize() int {
	return boxSizes[t]
}

// Mino returns the cells of the piece in the given rotation state, relative
// to the top left corner of its rotation box.
func (t PieceType) Mino(rotation int) Mino {
	r, ok := rotations[t]
	if !ok {
		return nil
	}

	m := r[normalizeRotation(rotation)]
	newMino := make(Mino, len(m))
	copy(newMino, m)
	return newMino
}

func normalizeRotation(rotation int) int {
	rotation %= RotationStates
	if rotation < 0 {
		rotation += RotationStates
	}
	return rotation
}

// Piece is the falling piece: a type, a rotation state and the board
// position of its rotation box.
type Piece struct {
	Point
	Type     PieceType
	Rotation int
}

func NewPiece(t PieceType, loc Point) Piece {
	return Piece{Point: loc, Type: t}
}

func (p Piece) String() string {
	return fmt.Sprintf("%s@%s r%d", p.Type, p.Point, p.Rotation)
}

// Cells returns the board cells the piece covers.
func (p Piece) Cells() Mino {
	return p.Type.Mino(p.Rotation).Translate(p.Point)
}

// Rotated returns a copy of the piece turned clockwise.
func (p Piece) Rotated(rotations int) Piece {
	p.Rotation = normalizeRotation(p.Rotation + rotations)
	return p
}

// Moved returns a copy of the piece moved by dx, dy.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}
