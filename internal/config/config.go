package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// DefaultPath is where the manager looks for its settings, relative to the
// game install directory it runs from.
const DefaultPath = "headless_config.json"

// Settings holds the user-provided headless client configuration. It is
// loaded once at startup and treated as read-only afterwards.
type Settings struct {
	ProfileID      string `json:"ProfileId"`
	BackendURL     string `json:"BackendUrl"`
	StartMinimized bool   `json:"StartMinimized"`
}

// Load reads and parses the settings file at path. Configuration is
// all-or-nothing: any read, parse, or validation failure is returned as an
// error and no partial settings are produced.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse settings %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}

	return &s, nil
}

// Validate checks the required fields. The backend URL must be absolute; the
// client passes it verbatim to the game's -config argument. Neither field
// may contain whitespace, since both are embedded in the whitespace-
// delimited launch argument line.
func (s *Settings) Validate() error {
	if s.ProfileID == "" {
		return errors.New("ProfileId is required")
	}
	if strings.ContainsAny(s.ProfileID, " \t\r\n") {
		return fmt.Errorf("ProfileId must not contain whitespace, got %q", s.ProfileID)
	}
	if s.BackendURL == "" {
		return errors.New("BackendUrl is required")
	}
	if strings.ContainsAny(s.BackendURL, " \t\r\n") {
		return fmt.Errorf("BackendUrl must not contain whitespace, got %q", s.BackendURL)
	}
	u, err := url.Parse(s.BackendURL)
	if err != nil {
		return fmt.Errorf("BackendUrl: %w", err)
	}
	if !u.IsAbs() || (u.Scheme != "http" && u.Scheme != "https") {
		return fmt.Errorf("BackendUrl must be an absolute http(s) URL, got %q", s.BackendURL)
	}
	return nil
}
