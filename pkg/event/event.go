package event

import "github.com/qnkhuat/tetristerm/pkg/mino"

type Kind int

const (
	KindGameOver Kind = iota
	KindNextPiece
	KindScore
	KindBoard
)

func (k Kind) String() string {
	switch k {
	case KindGameOver:
		return "GameOver"
	case KindNextPiece:
		return "NextPiece"
	case KindScore:
		return "Score"
	case KindBoard:
		return "Board"
	default:
		return "Unknown"
	}
}

type ScoreEvent struct {
	Score int
	Lines int
	Level int
}

// Handlers holds one callback per notification kind. A nil callback means
// the subscriber does not receive that kind.
type Handlers struct {
	GameOver  func(over bool)
	NextPiece func(p mino.PieceType)
	Score     func(e ScoreEvent)
	Board     func()
}

// Kinds lists the notification kinds with a callback set.
func (h Handlers) Kinds() []Kind {
	var kinds []Kind
	if h.GameOver != nil {
		kinds = append(kinds, KindGameOver)
	}
	if h.NextPiece != nil {
		kinds = append(kinds, KindNextPiece)
	}
	if h.Score != nil {
		kinds = append(kinds, KindScore)
	}
	if h.Board != nil {
		kinds = append(kinds, KindBoard)
	}
	return kinds
}
