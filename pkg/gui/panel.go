package gui

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	log "github.com/jeanphorn/log4go"
	"github.com/rivo/tview"

	"github.com/qnkhuat/tetristerm/pkg/audio"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/input"
	"github.com/qnkhuat/tetristerm/pkg/mino"
)

var (
	ErrPanelExists   = errors.New("a panel already exists")
	ErrMissingOption = errors.New("missing panel option")
)

const (
	pageGame     = "game"
	pageGameOver = "gameover"

	sideWidth = 28
)

// Model is the board surface the panel uses.
type Model interface {
	input.Commander
	Subscribe(h event.Handlers) event.Subscription
	Unsubscribe(s event.Subscription) bool
	NewGame()
	Score() event.ScoreEvent
}

// Preview shows the next piece.
type Preview interface {
	tview.Primitive
	SetPiece(p mino.PieceType)
}

// Options are the pre-built parts a panel is composed of.
type Options struct {
	Board   Model
	Loop    input.Loop
	Grid    tview.Primitive
	Preview Preview

	// Size of the grid and preview cells in the layout. Zero lets the
	// layout share the space.
	GridWidth, GridHeight int
	PreviewHeight         int

	MusicPath string
	LoadMusic func(path string) (audio.Music, error) // Defaults to audio.Load

	Theme    Theme
	Player   string
	Bindings map[input.Key]event.Command
}

// Factory builds at most one panel.
type Factory struct {
	panel *Panel

	sync.Mutex
}

// DefaultFactory builds the panel of the running process.
var DefaultFactory = &Factory{}

// New builds the panel. Every call after the first successful one fails
// with ErrPanelExists.
func (f *Factory) New(opts Options) (*Panel, error) {
	f.Lock()
	defer f.Unlock()

	if f.panel != nil {
		return nil, fmt.Errorf("failed to create panel: %w", ErrPanelExists)
	}

	p, err := newPanel(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create panel: %w", err)
	}

	f.panel = p
	return p, nil
}

// Panel returns the panel built by the factory or nil.
func (f *Factory) Panel() *Panel {
	f.Lock()
	defer f.Unlock()

	return f.panel
}

// Panel lays out the board, the next piece, the score and the controls, and
// turns game notifications into UI and music changes.
type Panel struct {
	*tview.Pages

	board   Model
	loop    input.Loop
	grid    tview.Primitive
	preview Preview
	score   *ScoreView
	modal   *tview.Modal

	dispatcher *input.Dispatcher
	music      audio.Music

	subs []event.Subscription

	next         mino.PieceType
	gameOverShow bool
}

func newPanel(opts Options) (*Panel, error) {
	switch {
	case opts.Board == nil:
		return nil, fmt.Errorf("board: %w", ErrMissingOption)
	case opts.Loop == nil:
		return nil, fmt.Errorf("loop: %w", ErrMissingOption)
	case opts.Grid == nil:
		return nil, fmt.Errorf("grid: %w", ErrMissingOption)
	case opts.Preview == nil:
		return nil, fmt.Errorf("preview: %w", ErrMissingOption)
	}
	if opts.Theme.Name == "" {
		opts.Theme = ThemeBasic
	}

	p := &Panel{
		Pages:   tview.NewPages(),
		board:   opts.Board,
		loop:    opts.Loop,
		grid:    opts.Grid,
		preview: opts.Preview,
		next:    -1,
	}

	p.loadMusic(opts)

	dispatchOpts := []input.Option{input.WithPauseHooks(
		func() { audio.Pause(p.music) },
		func() { audio.Play(p.music) },
	)}
	if opts.Bindings != nil {
		dispatchOpts = append(dispatchOpts, input.WithBindings(opts.Bindings))
	}
	p.dispatcher = input.NewDispatcher(p.board, p.loop, dispatchOpts...)

	p.score = NewScoreView(opts.Player, opts.Theme)
	p.score.SetScore(p.board.Score())

	previewProportion := 0
	if opts.PreviewHeight == 0 {
		previewProportion = 1
	}
	side := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(p.preview, opts.PreviewHeight, previewProportion, false).
		AddItem(p.score, 6, 0, false).
		AddItem(NewControlsView(p.dispatcher.Help(), opts.Theme), 0, 1, false)

	gridWidth, gridHeight := opts.GridWidth, opts.GridHeight
	if gridWidth == 0 {
		gridWidth = -1
	}
	if gridHeight == 0 {
		gridHeight = -1
	}

	layout := tview.NewGrid().
		SetRows(-1, gridHeight, -1).
		SetColumns(-1, gridWidth, sideWidth, -1).
		AddItem(tview.NewBox(), 0, 0, 1, 4, 0, 0, false).
		AddItem(tview.NewBox(), 2, 0, 1, 4, 0, 0, false).
		AddItem(p.grid, 1, 1, 1, 1, 0, 0, true).
		AddItem(side, 1, 2, 1, 1, 0, 0, false)

	p.modal = tview.NewModal().
		SetText("Game over").
		AddButtons([]string{"New game", "OK"}).
		SetDoneFunc(func(idx int, label string) {
			p.hideGameOver()
			if label == "New game" {
				p.NewGame()
			}
		})

	p.AddPage(pageGame, layout, true, true)
	p.AddPage(pageGameOver, p.modal, true, false)

	p.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if p.gameOverShow {
			return ev
		}
		return p.dispatcher.HandleKey(ev)
	})

	p.subs = append(p.subs,
		p.board.Subscribe(event.Handlers{
			GameOver:  p.onGameOver,
			NextPiece: p.onNextPiece,
		}),
		p.board.Subscribe(event.Handlers{
			Score: p.score.SetScore,
		}),
	)

	return p, nil
}

func (p *Panel) loadMusic(opts Options) {
	if opts.MusicPath == "" {
		return
	}
	load := opts.LoadMusic
	if load == nil {
		load = audio.Load
	}

	m, err := load(opts.MusicPath)
	if err != nil {
		log.Warn("Music disabled: %s", err)
		return
	}
	p.music = m
}

func (p *Panel) onGameOver(over bool) {
	if !over {
		p.hideGameOver()
		return
	}

	p.loop.Stop()
	audio.Pause(p.music)
	p.gameOverShow = true
	p.ShowPage(pageGameOver)
	log.Info("Game over: %+v", p.board.Score())
}

func (p *Panel) onNextPiece(t mino.PieceType) {
	p.next = t
	p.preview.SetPiece(t)
}

func (p *Panel) hideGameOver() {
	if !p.gameOverShow {
		return
	}
	p.gameOverShow = false
	p.HidePage(pageGameOver)
}

// Start runs the game loop and the music.
func (p *Panel) Start() {
	p.loop.Start()
	audio.Play(p.music)
}

// NewGame resets the board and starts playing.
func (p *Panel) NewGame() {
	p.board.NewGame()
	p.Start()
}

// NextPiece returns the last piece announced by the board, or -1.
func (p *Panel) NextPiece() mino.PieceType {
	return p.next
}

func (p *Panel) GameOverShown() bool {
	return p.gameOverShow
}

// Music returns the loaded music or nil when it is disabled.
func (p *Panel) Music() audio.Music {
	return p.music
}

func (p *Panel) Dispatcher() *input.Dispatcher {
	return p.dispatcher
}

// Close stops the game and unsubscribes from the board.
func (p *Panel) Close() {
	p.loop.Stop()
	audio.Pause(p.music)
	for _, s := range p.subs {
		p.board.Unsubscribe(s)
	}
	p.subs = nil
}
