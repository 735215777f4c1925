package lib

import (
	"fmt"
	"time"
)

// ChildState mirrors the lifecycle of the supervised client process.
// It's intentionally minimal; more states can be added later.
type ChildState int

const (
	ChildStateUnspecified ChildState = iota
	ChildStateRunning
	ChildStateStopped
)

// ChildStatus captures runtime state and timestamps for one launch of the
// headless client.
type ChildStatus struct {
	PID       int
	State     ChildState
	ExitCode  *int
	StartTime time.Time
	EndTime   *time.Time
}

// NewChildStatus returns a status for a child that just started.
func NewChildStatus(pid int) *ChildStatus {
	return &ChildStatus{PID: pid, State: ChildStateRunning, StartTime: time.Now()}
}

// MarkStopped records the observed exit of the child.
func (s *ChildStatus) MarkStopped(code int) {
	now := time.Now()
	s.State = ChildStateStopped
	s.ExitCode = &code
	s.EndTime = &now
}

// Uptime reports how long the child has been (or was) running.
func (s *ChildStatus) Uptime() time.Duration {
	if s.EndTime != nil {
		return s.EndTime.Sub(s.StartTime)
	}
	return time.Since(s.StartTime)
}

func (s *ChildStatus) String() string {
	if s.State == ChildStateRunning {
		return fmt.Sprintf("pid %d, running for %s", s.PID, s.Uptime().Round(time.Second))
	}
	code := "unknown"
	if s.ExitCode != nil {
		code = fmt.Sprintf("%d", *s.ExitCode)
	}
	return fmt.Sprintf("pid %d, exit code %s, uptime %s", s.PID, code, s.Uptime().Round(time.Second))
}
