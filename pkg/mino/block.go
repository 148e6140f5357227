package mino

type Block int

func (b Block) String() string {
	return string(b.Rune())
}

func (b Block) Rune() rune {
	switch b {
	case BlockNone:
		return ' '
	case BlockCyan, BlockYellow, BlockBlue, BlockOrange, BlockGreen, BlockMagenta, BlockRed:
		return '█'
	default:
		return '?'
	}
}

const (
	BlockNone Block = iota
	BlockCyan
	BlockYellow
	BlockBlue
	BlockOrange
	BlockGreen
	BlockMagenta
	BlockRed
)
