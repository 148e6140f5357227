// Package audio plays the looping background music. Music is best effort:
// callers hold a nil Music when loading failed and every call on it is a
// no-op.
package audio

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	eaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	log "github.com/jeanphorn/log4go"
)

const SampleRate = 44100

var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Music is a looping clip.
type Music interface {
	Play()
	Pause()
	Playing() bool
}

// Play starts m if it is not nil.
func Play(m Music) {
	if m != nil {
		m.Play()
	}
}

// Pause pauses m if it is not nil.
func Pause(m Music) {
	if m != nil {
		m.Pause()
	}
}

type decoder func(io.ReadSeeker, int) (stream, error)

type stream interface {
	io.ReadSeeker
	Length() int64
}

var decoders = map[string]decoder{
	".wav": func(r io.ReadSeeker, rate int) (stream, error) { return wav.DecodeWithSampleRate(rate, r) },
	".ogg": func(r io.ReadSeeker, rate int) (stream, error) { return vorbis.DecodeWithSampleRate(rate, r) },
	".mp3": func(r io.ReadSeeker, rate int) (stream, error) { return mp3.DecodeWithSampleRate(rate, r) },
}

var (
	contextOnce sync.Once
	context     *eaudio.Context
)

func audioContext() *eaudio.Context {
	contextOnce.Do(func() {
		context = eaudio.CurrentContext()
		if context == nil {
			context = eaudio.NewContext(SampleRate)
		}
	})
	return context
}

type player struct {
	*eaudio.Player
	path string
}

func (p *player) Play() {
	p.Player.Play()
	log.Debug("Playing %s", p.path)
}

func (p *player) Pause() {
	p.Player.Pause()
	log.Debug("Paused %s", p.path)
}

func (p *player) Playing() bool {
	return p.IsPlaying()
}

// Load decodes the clip at path into a looping player. The format is picked
// from the file extension.
func Load(path string) (Music, error) {
	dec, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read music: %w", err)
	}

	ctx := audioContext()
	s, err := dec(bytes.NewReader(data), ctx.SampleRate())
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}

	p, err := ctx.NewPlayer(eaudio.NewInfiniteLoop(s, s.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	log.Info("Loaded music %s", path)
	return &player{Player: p, path: path}, nil
}
