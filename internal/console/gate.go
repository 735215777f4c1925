package console

import (
	"time"
)

const (
	gateTimeout = 3 * time.Second
	gatePoll    = 50 * time.Millisecond
)

// KeySource yields buffered key presses without blocking. Open prepares the
// underlying input for polling and Close undoes it, so a source only
// disturbs the terminal while a gate window is actually open.
type KeySource interface {
	Open() error
	// Poll consumes and returns the next buffered key, if any.
	Poll() (byte, bool)
	Close() error
}

// KeyGate waits a short window for a single keypress that opts the next
// launch into graphics mode. It polls rather than blocks so the timeout
// boundary is honored to within one poll increment.
type KeyGate struct {
	source  KeySource
	key     byte
	timeout time.Duration
	poll    time.Duration
}

// NewKeyGate returns a gate that matches key (case-insensitive) within the
// standard 3 second window.
func NewKeyGate(source KeySource, key byte) *KeyGate {
	return &KeyGate{source: source, key: key, timeout: gateTimeout, poll: gatePoll}
}

// Await prompts, then polls for a single keypress until the window elapses.
// It reports whether the first consumed key matches the gate key. Any other
// key, or no key at all, declines. The source is open only for the duration
// of the window; an input that cannot be opened declines as well.
func (g *KeyGate) Await() bool {
	Infof("Press '%c' within %d seconds to start with graphics...", g.key, int(g.timeout.Seconds()))

	if err := g.source.Open(); err != nil {
		Errorf("keyboard unavailable (%v); continuing without graphics", err)
		return false
	}
	defer g.source.Close()

	deadline := time.Now().Add(g.timeout)
	for time.Now().Before(deadline) {
		if b, ok := g.source.Poll(); ok {
			return lowerASCII(b) == lowerASCII(g.key)
		}
		time.Sleep(g.poll)
	}
	return false
}

func lowerASCII(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
