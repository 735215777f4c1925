package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/project-fika/Fika-Headless-Manager/internal/backend"
	"github.com/project-fika/Fika-Headless-Manager/internal/config"
	"github.com/project-fika/Fika-Headless-Manager/internal/console"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the install and backend without launching",
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false

			for _, path := range requiredFiles() {
				if _, err := os.Stat(path); err != nil {
					console.Errorf("missing: %s", path)
					failed = true
				} else {
					console.Infof("found: %s", path)
				}
			}

			settings, err := config.Load(config.DefaultPath)
			if err != nil {
				console.Errorf("%v", err)
				return errors.New("install check failed")
			}
			console.Infof("settings ok: profile %s, backend %s", settings.ProfileID, settings.BackendURL)

			if backend.NewClient(settings.BackendURL).CheckPresence(cmd.Context()) {
				console.Infof("backend %s is reachable", settings.BackendURL)
			} else {
				console.Errorf("backend %s is unreachable", settings.BackendURL)
				failed = true
			}

			if failed {
				return errors.New("install check failed")
			}
			return nil
		},
	}
}
