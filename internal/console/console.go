// Package console owns the manager's interactive surface: colored log
// lines, the pre-exit pause prompt, and the graphics keypress gate.
package console

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

const (
	ansiRed   = "\x1b[31m"
	ansiReset = "\x1b[0m"
)

// Infof prints an informational line in the default console color.
func Infof(format string, args ...any) {
	fmt.Fprintf(os.Stdout, format+"\n", args...)
}

// Errorf prints an error line in red.
func Errorf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, ansiRed+format+ansiReset+"\n", args...)
}

// Pause blocks until any key is pressed. Used before fatal exits so the
// message stays readable when the manager was started by double-click.
// On a non-interactive stdin it returns immediately so scripted runs do
// not hang.
func Pause() {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return
	}

	fmt.Fprint(os.Stdout, "Press any key to exit...")
	state, err := term.MakeRaw(fd)
	if err != nil {
		return
	}
	defer term.Restore(fd, state)

	buf := make([]byte, 1)
	_, _ = os.Stdin.Read(buf)
	fmt.Fprintln(os.Stdout)
}
