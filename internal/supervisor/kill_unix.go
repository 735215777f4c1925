//go:build !windows

package supervisor

import (
	"os"
	"syscall"

	"golang.org/x/sys/unix"
)

func sysProcAttr(minimized bool) *syscall.SysProcAttr {
	// New process group so the client and its helpers can be killed as a
	// unit. There is no window style to apply on this platform.
	return &syscall.SysProcAttr{Setpgid: true}
}

func killTree(proc *os.Process) {
	// Negative pid addresses the whole process group.
	_ = unix.Kill(-proc.Pid, unix.SIGKILL)
}
