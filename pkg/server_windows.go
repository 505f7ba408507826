//go:build windows

package pkg

import (
	"errors"
)

const SshPort = ":2222"

var ErrNoBinary = errors.New("chessterm binary not set")

type Server struct{}

func NewServer(addr, binary, hostKey string) (*Server, error) {
	return nil, errors.New("SSH hosting is not supported on windows")
}

func (s *Server) ListenAndServe() error {
	return nil
}

func (s *Server) Close() error {
	return nil
}
