package console

import (
	"errors"
	"testing"
	"time"
)

// fakeSource replays a fixed key sequence, optionally holding keys back for
// a number of polls first, and records its open/close lifecycle.
type fakeSource struct {
	delayPolls int
	keys       []byte
	polls      int

	openErr error
	open    bool
	opens   int
	closes  int
}

func (f *fakeSource) Open() error {
	if f.openErr != nil {
		return f.openErr
	}
	f.open = true
	f.opens++
	return nil
}

func (f *fakeSource) Poll() (byte, bool) {
	if !f.open {
		return 0, false
	}
	f.polls++
	if f.polls <= f.delayPolls || len(f.keys) == 0 {
		return 0, false
	}
	b := f.keys[0]
	f.keys = f.keys[1:]
	return b, true
}

func (f *fakeSource) Close() error {
	f.open = false
	f.closes++
	return nil
}

func newTestGate(source KeySource, key byte) *KeyGate {
	g := NewKeyGate(source, key)
	g.timeout = 200 * time.Millisecond
	g.poll = 10 * time.Millisecond
	return g
}

func TestAwaitMatchingKey(t *testing.T) {
	if !newTestGate(&fakeSource{keys: []byte{'g'}}, 'g').Await() {
		t.Fatalf("expected true for matching key")
	}
}

func TestAwaitCaseInsensitive(t *testing.T) {
	if !newTestGate(&fakeSource{keys: []byte{'G'}}, 'g').Await() {
		t.Fatalf("expected true for uppercase match")
	}
}

func TestAwaitWrongKey(t *testing.T) {
	// Only the first key counts, even if the right one is buffered behind it.
	if newTestGate(&fakeSource{keys: []byte{'x', 'g'}}, 'g').Await() {
		t.Fatalf("expected false for non-matching key")
	}
}

func TestAwaitTimeout(t *testing.T) {
	g := newTestGate(&fakeSource{}, 'g')

	start := time.Now()
	if g.Await() {
		t.Fatalf("expected false on timeout")
	}
	elapsed := time.Since(start)

	if elapsed < g.timeout {
		t.Fatalf("returned before timeout: %v", elapsed)
	}
	// One poll increment of overshoot is acceptable, more is not.
	if elapsed > g.timeout+g.poll+50*time.Millisecond {
		t.Fatalf("blocked too long past timeout: %v", elapsed)
	}
}

func TestAwaitKeyArrivesMidWindow(t *testing.T) {
	if !newTestGate(&fakeSource{delayPolls: 5, keys: []byte{'g'}}, 'g').Await() {
		t.Fatalf("expected true for key arriving inside the window")
	}
}

func TestAwaitScopesSourceToWindow(t *testing.T) {
	// The source must be opened for the window and closed again before
	// Await returns, whichever way the window ends.
	cases := []struct {
		name   string
		source *fakeSource
	}{
		{"key consumed", &fakeSource{keys: []byte{'g'}}},
		{"timeout", &fakeSource{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			newTestGate(tc.source, 'g').Await()

			if tc.source.opens != 1 {
				t.Fatalf("source opened %d times, want 1", tc.source.opens)
			}
			if tc.source.closes != 1 {
				t.Fatalf("source closed %d times, want 1", tc.source.closes)
			}
			if tc.source.open {
				t.Fatalf("source left open after Await")
			}
		})
	}
}

func TestAwaitUnopenableSourceDeclines(t *testing.T) {
	source := &fakeSource{openErr: errors.New("no tty")}

	start := time.Now()
	if newTestGate(source, 'g').Await() {
		t.Fatalf("expected false when the source cannot be opened")
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Fatalf("declined too slowly: %v", elapsed)
	}
	if source.closes != 0 {
		t.Fatalf("close called on a source that never opened")
	}
}
