package supervisor

import (
	"os"
	"sync"
	"testing"
)

func TestHandleSetClearGet(t *testing.T) {
	var h handle

	if h.get() != nil {
		t.Fatalf("fresh handle should be empty")
	}

	p := &os.Process{Pid: 1234}
	h.set(p)
	if h.get() != p {
		t.Fatalf("get did not return the stored process")
	}

	h.clear()
	if h.get() != nil {
		t.Fatalf("handle not cleared")
	}
}

func TestHandleConcurrentAccess(t *testing.T) {
	var h handle
	p := &os.Process{Pid: 1234}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				h.set(p)
				h.clear()
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				_ = h.get()
			}
		}()
	}
	wg.Wait()
}
