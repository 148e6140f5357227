package audio

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMusic struct {
	playing bool
}

func (m *fakeMusic) Play()         { m.playing = true }
func (m *fakeMusic) Pause()        { m.playing = false }
func (m *fakeMusic) Playing() bool { return m.playing }

func TestLoadUnsupportedFormat(t *testing.T) {
	m, err := Load("theme.flac")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedFormat))
	assert.Nil(t, m)
}

func TestLoadMissingFile(t *testing.T) {
	m, err := Load(filepath.Join(t.TempDir(), "missing.wav"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Nil(t, m)
}

func TestNilMusicIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		Play(nil)
		Pause(nil)
	})

	m := &fakeMusic{}
	Play(m)
	assert.True(t, m.Playing())
	Pause(m)
	assert.False(t, m.Playing())
}
