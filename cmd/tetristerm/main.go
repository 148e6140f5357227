package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	log "github.com/jeanphorn/log4go"
	"github.com/mattn/go-isatty"
	"github.com/rivo/tview"
	"golang.org/x/term"

	"github.com/qnkhuat/tetristerm/pkg/config"
	"github.com/qnkhuat/tetristerm/pkg/event"
	"github.com/qnkhuat/tetristerm/pkg/game"
	"github.com/qnkhuat/tetristerm/pkg/gui"
	"github.com/qnkhuat/tetristerm/pkg/input"
	"github.com/qnkhuat/tetristerm/pkg/logging"
)

// Columns taken by the side bar next to the board
const sideWidth = 28

func fail(err error) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "tetristerm: %s\n", err)
	os.Exit(1)
}

func printKeys() {
	title := color.New(color.FgCyan, color.Bold)
	title.Println("Controls")
	for _, line := range input.NewDispatcher(nil, nil).Help() {
		fmt.Println("  " + line)
	}
	color.New(color.Faint).Println("  Esc  Quit")
}

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	keys := flag.Bool("keys", false, "print the controls and exit")
	flag.Parse()

	if *keys {
		printKeys()
		return
	}

	if err := cfg.Validate(); err != nil {
		fail(err)
	}

	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		fail(errors.New("non-interactive terminals are not supported"))
	}

	if err := logging.Init(cfg.LogPath, "CLIENT: ", cfg.LogLevel); err != nil {
		fail(err)
	}
	defer log.Close()

	theme, err := gui.LoadTheme(cfg.ThemeFile, cfg.ThemeName)
	if err != nil {
		log.Warn("Using the %s theme: %s", gui.ThemeBasic.Name, err)
		color.Yellow("%s, using the %s theme", err, gui.ThemeBasic.Name)
		theme = gui.ThemeBasic
	}

	board, err := game.NewBoard(cfg.BoardOptions()...)
	if err != nil {
		fail(err)
	}

	app := tview.NewApplication()
	loop := game.NewLoop(cfg.Interval, board.Step, game.WithPost(func(f func()) {
		app.QueueUpdateDraw(f)
	}))

	boardView := gui.NewBoardView(board, theme)
	preview := gui.NewPreviewView(theme, cfg.BlockHeight)

	needW, needH := boardView.Width()+sideWidth, boardView.Height()
	if w, h, err := term.GetSize(int(fd)); err == nil && (w < needW || h < needH) {
		fail(fmt.Errorf("terminal is %dx%d, at least %dx%d is needed", w, h, needW, needH))
	}

	panel, err := gui.DefaultFactory.New(gui.Options{
		Board:         board,
		Loop:          loop,
		Grid:          boardView,
		Preview:       preview,
		GridWidth:     boardView.Width(),
		GridHeight:    boardView.Height(),
		PreviewHeight: preview.Height(),
		MusicPath:     cfg.MusicPath,
		Theme:         theme,
		Player:        cfg.Nickname,
	})
	if err != nil {
		fail(err)
	}
	defer panel.Close()

	level := -1
	board.Subscribe(event.Handlers{
		Score: func(e event.ScoreEvent) {
			if e.Level == level {
				return
			}
			level = e.Level
			loop.SetInterval(cfg.LevelInterval(level))
		},
	})

	app.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		if ev.Key() == tcell.KeyEscape {
			app.Stop()
			return nil
		}
		return ev
	})

	log.Info("Starting tetristerm for %s", cfg.Nickname)
	panel.NewGame()

	if err := app.SetRoot(panel, true).SetFocus(panel).Run(); err != nil {
		log.Error("UI stopped: %s", err)
		fail(err)
	}

	score := board.Score()
	log.Info("Quit with score %d", score.Score)
	color.Green("%s scored %d (%d lines, level %d)", cfg.Nickname, score.Score, score.Lines, score.Level)
}
