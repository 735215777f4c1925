package supervisor

import (
	"os"
	"sync"
)

// handle tracks the single live child process. The supervisor loop sets it
// on launch and clears it after the exit is observed; the shutdown hook
// reads it concurrently, so access is mutex-guarded.
type handle struct {
	mu   sync.Mutex
	proc *os.Process
}

func (h *handle) set(p *os.Process) {
	h.mu.Lock()
	h.proc = p
	h.mu.Unlock()
}

func (h *handle) clear() {
	h.set(nil)
}

func (h *handle) get() *os.Process {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.proc
}
