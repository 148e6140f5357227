//go:build !windows
// +build !windows

package ssh

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNickname(t *testing.T) {
	var tests = []struct {
		user string
		want string
	}{
		{"alice", "alice"},
		{"bob_42", "bob_42"},
		{"eve; rm -rf", "everm-rf"},
		{"averyveryverylongusername", "averyveryverylonguse"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Nickname(tt.user), tt.user)
	}

	assert.NotEmpty(t, Nickname(""))
	assert.NotEmpty(t, Nickname("!!!"))
}

func TestCommand(t *testing.T) {
	s := &Server{Binary: "/usr/local/bin/tetristerm", Args: []string{"-theme", "mono"}}

	cmd := s.command(context.Background(), "alice", "xterm-256color")
	assert.Equal(t, "/usr/local/bin/tetristerm", cmd.Path)
	assert.Equal(t, []string{"/usr/local/bin/tetristerm", "-nick", "alice", "-log", "", "-theme", "mono"}, cmd.Args)
	assert.Contains(t, cmd.Env, "TERM=xterm-256color")
}

func TestSessions(t *testing.T) {
	s := &Server{}
	s.track("a", "alice")
	s.track("b", "bob")
	assert.ElementsMatch(t, []string{"alice", "bob"}, s.Sessions())

	s.untrack("a")
	assert.Equal(t, []string{"bob"}, s.Sessions())
}

func TestListenAndServeNeedsBinary(t *testing.T) {
	s := &Server{}
	assert.True(t, errors.Is(s.ListenAndServe(), ErrNoBinary))
	assert.NoError(t, s.Shutdown(context.Background()))
}
