// Package config holds the settings of the tetristerm client.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	petname "github.com/dustinkirkland/golang-petname"

	"github.com/qnkhuat/tetristerm/pkg/game"
)

var ErrInvalid = errors.New("invalid config")

const (
	DefaultTheme       = "basic"
	DefaultBlockHeight = 3
)

// Config is the client configuration
type Config struct {
	Nickname string // Shown next to the score

	Width, Height int           // Visible board size in cells
	Seed          int64         // Piece bag seed, 0 picks one from the clock
	Interval      time.Duration // Fall interval at level 0
	Speedup       bool          // Fall faster as the level rises

	MusicPath string // wav, ogg or mp3, empty for no music

	ThemeFile string // JSON list of themes
	ThemeName string

	BlockHeight int // Preview block size

	LogPath  string
	LogLevel string
}

// Default returns the configuration used when no flags are given. The
// nickname is a new random pet name on every call.
func Default() Config {
	return Config{
		Nickname:    petname.Generate(2, "-"),
		Width:       game.DefaultWidth,
		Height:      game.DefaultHeight,
		Interval:    game.DefaultInterval,
		Speedup:     true,
		ThemeName:   DefaultTheme,
		BlockHeight: DefaultBlockHeight,
		LogPath:     "./tetristerm.log",
		LogLevel:    "info",
	}
}

// RegisterFlags binds the fields of c to flags of fs. Current values are the
// flag defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Nickname, "nick", c.Nickname, "nickname")
	fs.IntVar(&c.Width, "width", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "board height in cells")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "piece seed (0 for random)")
	fs.DurationVar(&c.Interval, "interval", c.Interval, "fall interval at level 0")
	fs.BoolVar(&c.Speedup, "speedup", c.Speedup, "fall faster on higher levels")
	fs.StringVar(&c.MusicPath, "music", c.MusicPath, "path to background music (wav, ogg or mp3)")
	fs.StringVar(&c.ThemeFile, "themes", c.ThemeFile, "path to a JSON theme list")
	fs.StringVar(&c.ThemeName, "theme", c.ThemeName, "theme name")
	fs.IntVar(&c.BlockHeight, "block", c.BlockHeight, "preview block size")
	fs.StringVar(&c.LogPath, "log", c.LogPath, "path to log file (empty to disable)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn or error")
}

func (c Config) Validate() error {
	switch {
	case c.Width < game.MinWidth || c.Height < game.MinHeight:
		return fmt.Errorf("%w: board must be at least %dx%d", ErrInvalid, game.MinWidth, game.MinHeight)
	case c.Interval < game.MinInterval:
		return fmt.Errorf("%w: interval must be at least %s", ErrInvalid, game.MinInterval)
	case c.BlockHeight < 2:
		return fmt.Errorf("%w: block size must be at least 2", ErrInvalid)
	}
	return nil
}

// BoardOptions returns the board options for c.
func (c Config) BoardOptions() []game.BoardOption {
	opts := []game.BoardOption{game.WithSize(c.Width, c.Height)}
	if c.Seed != 0 {
		opts = append(opts, game.WithSeed(c.Seed))
	}
	return opts
}

// LevelInterval returns the fall interval for level.
func (c Config) LevelInterval(level int) time.Duration {
	if !c.Speedup {
		return c.Interval
	}
	d := c.Interval - time.Duration(level)*game.LevelSpeedup
	if d < game.MinInterval {
		return game.MinInterval
	}
	return d
}
