//go:build !windows
// +build !windows

// Package ssh hosts tetristerm over SSH. Every session runs its own client
// process in a pseudo-terminal.
package ssh

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/creack/pty"
	petname "github.com/dustinkirkland/golang-petname"
	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	log "github.com/jeanphorn/log4go"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	DefaultAddress    = ":2222"

	maxNicknameLength = 20
)

var ErrNoBinary = errors.New("tetristerm binary must be specified")

type Server struct {
	ListenAddress string
	Binary        string   // Path to the tetristerm client
	Args          []string // Extra client arguments
	HostKeyFile   string   // Defaults to ~/.ssh/id_rsa
	IdleTimeout   time.Duration

	server   *ssh.Server
	sessions map[string]string // Session id to nickname

	sync.Mutex
}

// Nickname turns an SSH user name into a nickname. Users without a usable
// name get a random one.
func Nickname(user string) string {
	user = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			return r
		}
		return -1
	}, user)

	if len(user) > maxNicknameLength {
		user = user[:maxNicknameLength]
	}
	if user == "" {
		return petname.Generate(2, "-")
	}
	return user
}

func (s *Server) command(ctx context.Context, nick, term string) *exec.Cmd {
	args := append([]string{"-nick", nick, "-log", ""}, s.Args...)
	cmd := exec.CommandContext(ctx, s.Binary, args...)
	cmd.Env = append(cmd.Env, fmt.Sprintf("TERM=%s", term))
	return cmd
}

func (s *Server) handle(sess ssh.Session) {
	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "failed to start tetristerm: non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	id := uuid.New().String()
	nick := Nickname(sess.User())
	s.track(id, nick)
	defer s.untrack(id)

	log.Info("Session %s started for %s from %s", id, nick, sess.RemoteAddr())

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := s.command(cmdCtx, nick, ptyReq.Term)
	f, err := pty.StartWithSize(cmd, &pty.Winsize{Rows: uint16(ptyReq.Window.Height), Cols: uint16(ptyReq.Window.Width)})
	if err != nil {
		log.Error("Session %s: failed to initialize pseudo-terminal: %s", id, err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, &pty.Winsize{Rows: uint16(win.Height), Cols: uint16(win.Width)}); err != nil {
				log.Warn("Session %s: failed to resize: %s", id, err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	cmd.Wait()
	log.Info("Session %s ended", id)
}

func (s *Server) track(id, nick string) {
	s.Lock()
	defer s.Unlock()

	if s.sessions == nil {
		s.sessions = make(map[string]string)
	}
	s.sessions[id] = nick
}

func (s *Server) untrack(id string) {
	s.Lock()
	defer s.Unlock()

	delete(s.sessions, id)
}

// Sessions returns the nicknames of the connected players.
func (s *Server) Sessions() []string {
	s.Lock()
	defer s.Unlock()

	nicks := make([]string, 0, len(s.sessions))
	for _, n := range s.sessions {
		nicks = append(nicks, n)
	}
	return nicks
}

func (s *Server) hostKeyFile() (string, error) {
	if s.HostKeyFile != "" {
		return s.HostKeyFile, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return path.Join(homeDir, ".ssh", "id_rsa"), nil
}

// ListenAndServe blocks until the server is shut down.
func (s *Server) ListenAndServe() error {
	if s.Binary == "" {
		return ErrNoBinary
	}
	if s.ListenAddress == "" {
		s.ListenAddress = DefaultAddress
	}
	if s.IdleTimeout == 0 {
		s.IdleTimeout = ServerIdleTimeout
	}

	server := &ssh.Server{
		Addr:        s.ListenAddress,
		IdleTimeout: s.IdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	keyFile, err := s.hostKeyFile()
	if err != nil {
		return fmt.Errorf("failed to find host key: %w", err)
	}
	if err := server.SetOption(ssh.HostKeyFile(keyFile)); err != nil {
		return fmt.Errorf("failed to load host key %s: %w", keyFile, err)
	}

	s.Lock()
	s.server = server
	s.Unlock()

	log.Info("Listening for SSH sessions on %s", s.ListenAddress)
	err = server.ListenAndServe()
	if errors.Is(err, ssh.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.Lock()
	server := s.server
	s.Unlock()

	if server == nil {
		return nil
	}
	return server.Shutdown(ctx)
}
