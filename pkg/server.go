//go:build !windows

package pkg

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/creack/pty"
	"github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	gossh "golang.org/x/crypto/ssh"
)

const (
	ServerIdleTimeout = 5 * time.Minute
	SshPort           = ":2222"
)

var ErrNoBinary = errors.New("chessterm binary not set")

// Server hands every SSH session its own chessterm process, so each
// connection gets an independent hot-seat game.
type Server struct {
	*ssh.Server
	Binary string
	LogDir string
}

func NewServer(addr, binary, hostKey string) (*Server, error) {
	if binary == "" {
		return nil, ErrNoBinary
	}

	s := &Server{
		Binary: binary,
		LogDir: os.TempDir(),
	}
	s.Server = &ssh.Server{
		Addr:        addr,
		IdleTimeout: ServerIdleTimeout,
		Handler:     s.handle,
		PtyCallback: func(ctx ssh.Context, pty ssh.Pty) bool {
			return true
		},
		PasswordHandler: func(ctx ssh.Context, password string) bool {
			return true
		},
		PublicKeyHandler: func(ctx ssh.Context, key ssh.PublicKey) bool {
			return true
		},
		KeyboardInteractiveHandler: func(ctx ssh.Context, challenger gossh.KeyboardInteractiveChallenge) bool {
			return true
		},
	}

	if hostKey != "" {
		if err := s.SetOption(ssh.HostKeyFile(hostKey)); err != nil {
			return nil, fmt.Errorf("load host key %s: %w", hostKey, err)
		}
		return s, nil
	}

	signer, err := generateHostKey()
	if err != nil {
		return nil, err
	}
	s.AddHostKey(signer)
	return s, nil
}

// generateHostKey makes an ed25519 key that lives as long as the process.
func generateHostKey() (gossh.Signer, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := gossh.NewSignerFromKey(priv)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	return signer, nil
}

func (s *Server) command(ctx context.Context, id, user, term string) *exec.Cmd {
	logPath := filepath.Join(s.LogDir, fmt.Sprintf("chessterm-%s.log", id))
	cmd := exec.CommandContext(ctx, s.Binary, "-log", logPath, "-white", user)
	cmd.Env = append(os.Environ(), fmt.Sprintf("TERM=%s", term))
	return cmd
}

func (s *Server) handle(sess ssh.Session) {
	id := uuid.New().String()
	log.Printf("session %s: %s connected from %s", id, sess.User(), sess.RemoteAddr())
	defer log.Printf("session %s: closed", id)

	ptyReq, winCh, isPty := sess.Pty()
	if !isPty {
		io.WriteString(sess, "non-interactive terminals are not supported\n")
		sess.Exit(1)
		return
	}

	cmdCtx, cancelCmd := context.WithCancel(sess.Context())
	defer cancelCmd()

	cmd := s.command(cmdCtx, id, sess.User(), ptyReq.Term)
	f, err := pty.StartWithSize(cmd, winsize(ptyReq.Window))
	if err != nil {
		log.Printf("session %s: failed to start %s: %v", id, s.Binary, err)
		io.WriteString(sess, fmt.Sprintf("failed to initialize pseudo-terminal: %s\n", err))
		sess.Exit(1)
		return
	}
	defer f.Close()

	go func() {
		for win := range winCh {
			if err := pty.Setsize(f, winsize(win)); err != nil {
				log.Printf("session %s: resize: %v", id, err)
			}
		}
	}()

	go func() {
		io.Copy(f, sess)
	}()
	io.Copy(sess, f)

	cancelCmd()
	if err := cmd.Wait(); err != nil {
		log.Printf("session %s: chessterm exited: %v", id, err)
	}
}

func winsize(w ssh.Window) *pty.Winsize {
	return &pty.Winsize{Rows: uint16(w.Height), Cols: uint16(w.Width)}
}
