package supervisor

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// rotateLog moves the previous run's log out of the way so the next child
// starts with a fresh file. The prior rotated copy, if any, is replaced.
// Absence of the log is a no-op. Failures are returned so the caller can
// log them, but a failed rotation must never block a launch.
func rotateLog(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	prev := prevLogPath(path)
	if err := os.Remove(prev); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", prev, err)
	}
	if err := os.Rename(path, prev); err != nil {
		return fmt.Errorf("rotate %s: %w", path, err)
	}
	return nil
}

// prevLogPath inserts the _prev marker ahead of the extension:
// Logs/headless.log becomes Logs/headless_prev.log.
func prevLogPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_prev" + ext
}
