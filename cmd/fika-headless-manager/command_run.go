package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/project-fika/Fika-Headless-Manager/internal/backend"
	"github.com/project-fika/Fika-Headless-Manager/internal/config"
	"github.com/project-fika/Fika-Headless-Manager/internal/console"
	"github.com/project-fika/Fika-Headless-Manager/internal/supervisor"
)

// graphicsKey opts the next launch into graphics mode when pressed within
// the gate window.
const graphicsKey = 'g'

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Launch and supervise the headless client",
		RunE: func(cmd *cobra.Command, args []string) error {
			runManager(cmd.Context())
			return nil
		},
	}
}

// runManager wires the components together and parks until shutdown. All
// fatal conditions end in fatalf (red log, pause, exit 1); the function
// itself returns only on an operator-initiated signal.
func runManager(ctx context.Context) {
	checkRequiredFiles()

	settings, err := config.Load(config.DefaultPath)
	if err != nil {
		fatalf("%v", err)
	}

	client := backend.NewClient(settings.BackendURL)
	// The gate opens the source only for each keypress window, so the
	// terminal stays in its normal mode while the client runs.
	gate := console.NewKeyGate(console.NewStdinSource(), graphicsKey)

	sup := supervisor.New(settings, client, gate)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() { errCh <- sup.Run(ctx) }()

	select {
	case sig := <-sigCh:
		console.Infof("received %v, shutting down", sig)
		cancel()
		// No orphaned clients: take the tracked child down with us.
		sup.KillChild()
	case err := <-errCh:
		sup.KillChild()
		fatalf("%v", err)
	}
}

// checkRequiredFiles verifies the install preconditions sequentially; each
// missing file is independently fatal.
func checkRequiredFiles() {
	for _, path := range requiredFiles() {
		if _, err := os.Stat(path); err != nil {
			fatalf("required file %s is missing", path)
		}
	}
}

func requiredFiles() []string {
	return []string{
		supervisor.ExecutableName,
		supervisor.PluginPath,
		config.DefaultPath,
	}
}

func fatalf(format string, args ...any) {
	console.Errorf(format, args...)
	console.Pause()
	os.Exit(1)
}
