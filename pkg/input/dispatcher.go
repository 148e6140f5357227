package input

import (
	"sort"
	"strings"

	"github.com/gdamore/tcell/v2"
	log "github.com/jeanphorn/log4go"

	"github.com/qnkhuat/tetristerm/pkg/event"
)

// Commander is the board's command surface.
type Commander interface {
	MoveLeft()
	MoveRight()
	MoveDown()
	RotateCW()
	Drop()
}

// Loop is the game loop driver the pause key toggles.
type Loop interface {
	Running() bool
	Start()
	Stop()
}

var DefaultBindings = map[Key]event.Command{
	KeyLeft:  event.CommandMoveLeft,
	KeyA:     event.CommandMoveLeft,
	KeyRight: event.CommandMoveRight,
	KeyD:     event.CommandMoveRight,
	KeyDown:  event.CommandMoveDown,
	KeyS:     event.CommandMoveDown,
	KeyUp:    event.CommandRotateCW,
	KeyW:     event.CommandRotateCW,
	KeySpace: event.CommandDrop,
	KeyP:     event.CommandPause,
}

// Dispatcher turns key presses into board commands. While the loop is
// stopped only the pause command is dispatched.
type Dispatcher struct {
	model    Commander
	loop     Loop
	bindings map[Key]event.Command

	onPause  func()
	onResume func()
}

type Option func(*Dispatcher)

// WithPauseHooks sets callbacks run after the loop is paused or resumed.
func WithPauseHooks(pause, resume func()) Option {
	return func(d *Dispatcher) {
		d.onPause = pause
		d.onResume = resume
	}
}

// WithBindings replaces the default key table.
func WithBindings(bindings map[Key]event.Command) Option {
	return func(d *Dispatcher) {
		d.bindings = copyBindings(bindings)
	}
}

func NewDispatcher(model Commander, loop Loop, options ...Option) *Dispatcher {
	d := &Dispatcher{
		model:    model,
		loop:     loop,
		bindings: copyBindings(DefaultBindings),
	}
	for _, opt := range options {
		opt(d)
	}

	return d
}

func copyBindings(bindings map[Key]event.Command) map[Key]event.Command {
	c := make(map[Key]event.Command, len(bindings))
	for k, cmd := range bindings {
		c[k] = cmd
	}
	return c
}

// Press dispatches the command bound to k and reports whether one ran.
func (d *Dispatcher) Press(k Key) bool {
	cmd, ok := d.bindings[k]
	if !ok {
		return false
	}

	if cmd == event.CommandPause {
		d.TogglePause()
		return true
	}

	if !d.loop.Running() {
		return false
	}

	d.run(cmd)
	return true
}

// HandleKey is a tview input capture. Keys that dispatched a command are
// consumed; everything else is passed on.
func (d *Dispatcher) HandleKey(ev *tcell.EventKey) *tcell.EventKey {
	if d.Press(KeyOf(ev)) {
		return nil
	}
	return ev
}

func (d *Dispatcher) TogglePause() {
	if d.loop.Running() {
		d.loop.Stop()
		if d.onPause != nil {
			d.onPause()
		}
		log.Info("Game paused")
		return
	}

	d.loop.Start()
	if d.onResume != nil {
		d.onResume()
	}
	log.Info("Game resumed")
}

func (d *Dispatcher) run(cmd event.Command) {
	switch cmd {
	case event.CommandMoveLeft:
		d.model.MoveLeft()
	case event.CommandMoveRight:
		d.model.MoveRight()
	case event.CommandMoveDown:
		d.model.MoveDown()
	case event.CommandRotateCW:
		d.model.RotateCW()
	case event.CommandDrop:
		d.model.Drop()
	default:
		log.Warn("No handler for command %s", cmd)
	}
}

// Help lists the bound keys per command, one line per command.
func (d *Dispatcher) Help() []string {
	keys := make(map[event.Command][]string)
	for k, cmd := range d.bindings {
		keys[cmd] = append(keys[cmd], k.String())
	}

	cmds := make([]event.Command, 0, len(keys))
	for cmd := range keys {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool { return cmds[i] < cmds[j] })

	lines := make([]string, len(cmds))
	for i, cmd := range cmds {
		names := keys[cmd]
		sort.Strings(names)
		lines[i] = strings.Join(names, "/") + "  " + cmd.String()
	}
	return lines
}
