package supervisor

import (
	"time"

	"github.com/shirou/gopsutil/process"
)

const monitorInterval = 30 * time.Second

// monitor periodically logs the child's CPU and memory usage until done is
// closed. Best effort: the first sampling error ends the monitor, since it
// usually means the child is gone.
func monitor(pid int32, launchID string, done <-chan struct{}) {
	proc, err := process.NewProcess(pid)
	if err != nil {
		return
	}

	ticker := time.NewTicker(monitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			cpu, err := proc.CPUPercent()
			if err != nil {
				return
			}
			mem, err := proc.MemoryInfo()
			if err != nil {
				return
			}
			logger.Printf("launch %s: cpu %.1f%%, rss %d MiB", launchID, cpu, mem.RSS/(1024*1024))
		}
	}
}

// pidExists reports whether the process is still present. Errors are read
// as "gone" so the shutdown kill stays a no-op for exited children.
func pidExists(pid int) bool {
	exists, err := process.PidExists(int32(pid))
	return err == nil && exists
}
