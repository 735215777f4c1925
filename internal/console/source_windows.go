//go:build windows

package console

import (
	"os"
	"sync"

	"golang.org/x/term"
)

// stdinSource buffers keys from stdin through a single reader goroutine,
// since the console handle has no non-blocking read mode. Raw mode is held
// only between Open and Close.
type stdinSource struct {
	fd    int
	state *term.State
	keys  chan byte
	once  sync.Once
}

// NewStdinSource returns a KeySource over stdin. The terminal is left
// untouched until Open.
func NewStdinSource() KeySource {
	return &stdinSource{fd: int(os.Stdin.Fd()), keys: make(chan byte, 8)}
}

func (s *stdinSource) Open() error {
	state, err := term.MakeRaw(s.fd)
	if err != nil {
		return err
	}
	s.state = state

	// One reader for the life of the process; it parks in Read between
	// windows and ends with the process.
	s.once.Do(func() {
		go func() {
			buf := make([]byte, 1)
			for {
				n, err := os.Stdin.Read(buf)
				if err != nil {
					return
				}
				if n > 0 {
					select {
					case s.keys <- buf[0]:
					default:
					}
				}
			}
		}()
	})
	return nil
}

func (s *stdinSource) Poll() (byte, bool) {
	select {
	case b := <-s.keys:
		return b, true
	default:
		return 0, false
	}
}

func (s *stdinSource) Close() error {
	if s.state == nil {
		return nil
	}
	err := term.Restore(s.fd, s.state)
	s.state = nil
	return err
}
