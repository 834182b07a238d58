package main

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/solvr-dev/solvr-mcp/internal/cmd"
)

func main() {
	cmd.SetVersion(buildVersionString())
	cmd.Execute()
}

const shortHashLength = 7 // Length for short git commit hash

// buildVersionString constructs a version string with build metadata,
// preferring ldflags-injected values and falling back to VCS build info.
func buildVersionString() string {
	parts := []string{Version}

	commit := GitCommit
	date := BuildDate
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range buildInfo.Settings {
			switch setting.Key {
			case "vcs.revision":
				if commit == "" {
					commit = setting.Value
				}
			case "vcs.time":
				if date == "" {
					date = setting.Value
				}
			}
		}
	}

	if commit != "" {
		if len(commit) > shortHashLength {
			commit = commit[:shortHashLength]
		}
		parts = append(parts, fmt.Sprintf("commit: %s", commit))
	}
	if date != "" {
		parts = append(parts, fmt.Sprintf("built: %s", date))
	}

	return strings.Join(parts, ", ")
}
