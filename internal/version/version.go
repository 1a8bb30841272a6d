// Package version reports build metadata for moqui-agents.
package version

import (
	"fmt"
	"runtime"
	"strings"
)

// Set via ldflags at build time:
//
//	go build -ldflags "-X github.com/moqui-example/moqui-agents/internal/version.Version=1.0.0
//	  -X github.com/moqui-example/moqui-agents/internal/version.Commit=abc123
//	  -X github.com/moqui-example/moqui-agents/internal/version.Date=2026-01-01"
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info returns a formatted version string.
func Info() string {
	return fmt.Sprintf("moqui-agents %s (commit: %s, built: %s, %s/%s)",
		Version, short(Commit), Date, runtime.GOOS, runtime.GOARCH)
}

// ServerVersion is the version reported to MCP clients: the release without
// a leading "v", or "dev+<commit>" for untagged builds.
func ServerVersion() string {
	if Version == "dev" && Commit != "unknown" {
		return "dev+" + short(Commit)
	}
	return strings.TrimPrefix(Version, "v")
}

func short(s string) string {
	if len(s) > 7 {
		return s[:7]
	}
	return s
}
