package main

import (
	"fmt"
	"runtime/debug"
)

const Version = "1.0.0"

// buildDescription reports the tool version plus the toolchain and VCS
// state baked into the binary, when available.
func buildDescription() string {
	out := fmt.Sprintf("%s %s", progName(), Version)

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return out
	}

	commit, commitTime := "", ""
	modified := ""
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
		case "vcs.time":
			commitTime = s.Value
		case "vcs.modified":
			if s.Value == "true" {
				modified = ", modified"
			}
		}
	}

	if commit == "" {
		return fmt.Sprintf("%s (built with %s)", out, info.GoVersion)
	}

	return fmt.Sprintf("%s (built with %s at commit %s, %s%s)", out, info.GoVersion, commit, commitTime, modified)
}
