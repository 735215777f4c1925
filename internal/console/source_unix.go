//go:build !windows

package console

import (
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// stdinSource reads single keys from stdin. Raw non-blocking mode is held
// only between Open and Close, so outside a gate window the terminal keeps
// its normal semantics (Ctrl+C delivers SIGINT, output stays CRLF-mapped).
type stdinSource struct {
	fd    int
	state *term.State
}

// NewStdinSource returns a KeySource over stdin. The terminal is left
// untouched until Open.
func NewStdinSource() KeySource {
	return &stdinSource{fd: int(os.Stdin.Fd())}
}

func (s *stdinSource) Open() error {
	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return err
	}
	if err := unix.SetNonblock(s.fd, true); err != nil {
		_ = term.Restore(s.fd, state)
		return err
	}
	s.state = state
	return nil
}

func (s *stdinSource) Poll() (byte, bool) {
	buf := make([]byte, 1)
	n, err := unix.Read(s.fd, buf)
	if err != nil || n == 0 {
		return 0, false
	}
	return buf[0], true
}

func (s *stdinSource) Close() error {
	if s.state == nil {
		return nil
	}
	_ = unix.SetNonblock(s.fd, false)
	err := term.Restore(s.fd, s.state)
	s.state = nil
	return err
}
