// Package supervisor drives the watchdog loop for the headless client:
// health check, graphics choice, launch, wait for exit, restart.
package supervisor

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strings"

	"github.com/project-fika/Fika-Headless-Manager/internal/config"
	"github.com/project-fika/Fika-Headless-Manager/internal/lib"
)

var logger = log.New(os.Stdout, "", log.LstdFlags)

// Fixed paths, relative to the game install directory the manager runs
// from.
const (
	ExecutableName = "EscapeFromTarkov.exe"
	PluginPath     = "BepInEx/plugins/Fika.Headless.dll"
	LogPath        = "Logs/headless.log"
)

// HealthChecker reports whether the backend is reachable.
type HealthChecker interface {
	CheckPresence(ctx context.Context) bool
}

// GraphicsGate decides whether the next launch runs with graphics.
type GraphicsGate interface {
	Await() bool
}

// Supervisor owns the single supervised child. Settings are read-only after
// construction; the child handle is the only mutable shared state.
type Supervisor struct {
	settings *config.Settings
	health   HealthChecker
	gate     GraphicsGate
	child    handle

	executable string
	logPath    string
	// command builds the exec.Cmd for one launch; replaced in tests.
	command func(argLine string, minimized bool) *exec.Cmd
}

// New returns a Supervisor for the given settings and collaborators.
func New(settings *config.Settings, health HealthChecker, gate GraphicsGate) *Supervisor {
	s := &Supervisor{
		settings:   settings,
		health:     health,
		gate:       gate,
		executable: ExecutableName,
		logPath:    LogPath,
	}
	s.command = s.newCommand
	return s
}

func (s *Supervisor) newCommand(argLine string, minimized bool) *exec.Cmd {
	cmd := exec.Command(s.executable, strings.Fields(argLine)...)
	cmd.SysProcAttr = sysProcAttr(minimized)
	return cmd
}

// Run drives the supervision loop forever. Every observed child exit, clean
// or crashed, restarts the cycle from the health check. Run returns only on
// a fatal condition (unreachable backend, failed launch) or once ctx is
// cancelled between children.
func (s *Supervisor) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		if !s.health.CheckPresence(ctx) {
			return fmt.Errorf("backend %s is unreachable", s.settings.BackendURL)
		}

		graphics := s.gate.Await()

		if err := s.runOnce(graphics); err != nil {
			return err
		}
	}
}

// runOnce performs a single launch cycle: rotate the old log, start the
// client, and block until it exits.
func (s *Supervisor) runOnce(graphics bool) error {
	launchID := lib.NewLaunchID()

	if err := rotateLog(s.logPath); err != nil {
		logger.Printf("launch %s: log rotation failed: %v", launchID, err)
	}

	argLine := BuildArgs(s.settings, graphics)
	minimized := !graphics && s.settings.StartMinimized
	cmd := s.command(argLine, minimized)

	logger.Printf("launch %s: starting %s %s", launchID, s.executable, argLine)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", s.executable, err)
	}

	s.child.set(cmd.Process)
	status := lib.NewChildStatus(cmd.Process.Pid)

	done := make(chan struct{})
	go monitor(int32(cmd.Process.Pid), launchID, done)

	err := cmd.Wait()
	close(done)
	s.child.clear()

	status.MarkStopped(exitCode(err))
	logger.Printf("launch %s: client exited (%s), restarting", launchID, status)
	return nil
}

// KillChild force-kills the tracked child and its descendants. Killing a
// child that already exited is a no-op. Called from the shutdown path,
// possibly concurrently with the loop.
func (s *Supervisor) KillChild() {
	proc := s.child.get()
	if proc == nil {
		return
	}
	if !pidExists(proc.Pid) {
		return
	}
	killTree(proc)
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
