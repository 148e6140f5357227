package logging

import (
	"errors"
	"testing"

	log "github.com/jeanphorn/log4go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	var tests = []struct {
		in   string
		want log.Level
	}{
		{"debug", log.DEBUG},
		{"INFO", log.INFO},
		{"warn", log.WARNING},
		{"Error", log.ERROR},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.True(t, errors.Is(err, ErrUnknownLevel))
}

func TestInitUnknownLevel(t *testing.T) {
	err := Init("", "TEST: ", "loud")
	assert.True(t, errors.Is(err, ErrUnknownLevel))
}
