package event

// Command is a player command resolved from a key binding.
type Command int

const (
	CommandUnknown Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandMoveDown
	CommandRotateCW
	CommandDrop
	CommandPause
)

func (c Command) String() string {
	switch c {
	case CommandMoveLeft:
		return "Move left"
	case CommandMoveRight:
		return "Move right"
	case CommandMoveDown:
		return "Move down"
	case CommandRotateCW:
		return "Rotate"
	case CommandDrop:
		return "Drop"
	case CommandPause:
		return "Pause/Resume"
	default:
		return "Unknown"
	}
}
