//go:build windows

package supervisor

import (
	"os"
	"os/exec"
	"strconv"
	"syscall"
)

func sysProcAttr(minimized bool) *syscall.SysProcAttr {
	// The closest exec exposes to a minimized window style is hiding the
	// window via STARTF_USESHOWWINDOW.
	return &syscall.SysProcAttr{HideWindow: minimized}
}

func killTree(proc *os.Process) {
	// taskkill /T takes the whole descendant tree down with the client.
	_ = exec.Command("taskkill", "/T", "/F", "/PID", strconv.Itoa(proc.Pid)).Run()
}
