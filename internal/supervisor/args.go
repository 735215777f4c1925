package supervisor

import (
	"fmt"
	"strings"

	"github.com/project-fika/Fika-Headless-Manager/internal/config"
)

// BuildArgs computes the headless client's command line as a single string.
// The -config value uses the single-quoted form the client parses; the
// backend URL is embedded verbatim. A nil settings value yields an empty
// string and a logged error instead of a panic; callers are expected to
// have validated settings at load time.
func BuildArgs(settings *config.Settings, graphics bool) string {
	if settings == nil {
		logger.Printf("launch arguments requested before settings were loaded")
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "-token=%s", settings.ProfileID)
	fmt.Fprintf(&b, " -config={'BackendUrl':'%s','Version':'live'}", settings.BackendURL)
	if !graphics {
		b.WriteString(" -nographics -batchmode")
	}
	b.WriteString(" --enable-console true")

	return b.String()
}
