package supervisor

import (
	"strings"
	"testing"

	"github.com/project-fika/Fika-Headless-Manager/internal/config"
)

func TestBuildArgsHeadless(t *testing.T) {
	settings := &config.Settings{ProfileID: "abc", BackendURL: "https://localhost:6969/"}

	args := BuildArgs(settings, false)

	if n := strings.Count(args, "-token=abc"); n != 1 {
		t.Fatalf("profile token appears %d times in %q", n, args)
	}
	if n := strings.Count(args, "https://localhost:6969/"); n != 1 {
		t.Fatalf("backend URL appears %d times in %q", n, args)
	}
	if !strings.Contains(args, "-config={'BackendUrl':'https://localhost:6969/','Version':'live'}") {
		t.Fatalf("missing backend config argument in %q", args)
	}
	if !strings.Contains(args, " -nographics -batchmode") {
		t.Fatalf("missing headless flags in %q", args)
	}
	if !strings.HasSuffix(args, "--enable-console true") {
		t.Fatalf("missing console flag in %q", args)
	}
}

func TestBuildArgsWithGraphics(t *testing.T) {
	settings := &config.Settings{ProfileID: "abc", BackendURL: "https://localhost:6969/"}

	args := BuildArgs(settings, true)

	if strings.Contains(args, "-nographics") || strings.Contains(args, "-batchmode") {
		t.Fatalf("headless flags present in graphics launch: %q", args)
	}
	if !strings.Contains(args, "-token=abc") {
		t.Fatalf("missing profile token in %q", args)
	}
}

func TestBuildArgsNilSettings(t *testing.T) {
	if args := BuildArgs(nil, false); args != "" {
		t.Fatalf("expected empty arguments for nil settings, got %q", args)
	}
}
