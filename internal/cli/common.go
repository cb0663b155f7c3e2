// Package cli holds the pieces shared by the seam command line tools:
// version information, the leveled logger and the seam.json configuration.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
)

// Version information for all CLI tools
const (
	Version   = "0.4.0"
	BuildDate = "2026-10-18"
)

// CommitSHA is set during build with -ldflags.
var CommitSHA = "unknown"

// Exit codes.
const (
	ExitOK       = 0
	ExitFailure  = 1 // user errors: bad input, syntax or semantic errors
	ExitInternal = 2 // internal compiler errors
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	BuildDate string `json:"build_date"`
	CommitSHA string `json:"commit_sha"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
	Arch      string `json:"arch"`
}

// GetVersionInfo returns structured version information
func GetVersionInfo() *VersionInfo {
	return &VersionInfo{
		Version:   Version,
		BuildDate: BuildDate,
		CommitSHA: CommitSHA,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS,
		Arch:      runtime.GOARCH,
	}
}

// PrintVersion prints version information in a consistent format
func PrintVersion(w io.Writer, toolName string, jsonOutput bool) {
	info := GetVersionInfo()

	if jsonOutput {
		data, err := json.MarshalIndent(map[string]interface{}{
			"tool":         toolName,
			"version_info": info,
		}, "", "  ")
		if err == nil {
			fmt.Fprintln(w, string(data))
			return
		}
		// Fallback to plain text if JSON marshaling fails
		fmt.Fprintf(os.Stderr, "Error: Failed to marshal version info to JSON: %v\n", err)
	}

	fmt.Fprintf(w, "%s v%s\n", toolName, info.Version)
	fmt.Fprintf(w, "Build Date: %s\n", info.BuildDate)
	if info.CommitSHA != "unknown" && info.CommitSHA != "" {
		fmt.Fprintf(w, "Commit: %s\n", info.CommitSHA)
	}
	fmt.Fprintf(w, "Go Version: %s\n", info.GoVersion)
	fmt.Fprintf(w, "Platform: %s/%s\n", info.Platform, info.Arch)
}

// ExitWithCode exits with code. A non-empty format is printed to stderr
// first, prefixed with "Error: " when code is not ExitOK.
func ExitWithCode(code int, format string, args ...interface{}) {
	if format != "" {
		if code != ExitOK {
			format = "Error: " + format
		}
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
	os.Exit(code)
}

// CommandInfo represents information about a CLI command
type CommandInfo struct {
	Name        string
	Usage       string
	Description string
	Examples    []string
}

// PrintCommandUsage prints the usage header of a command; flag defaults
// follow from the flag package.
func PrintCommandUsage(w io.Writer, cmd CommandInfo) {
	fmt.Fprintf(w, "%s - %s\n\n", cmd.Name, cmd.Description)
	fmt.Fprintf(w, "USAGE:\n")
	fmt.Fprintf(w, "    %s\n\n", cmd.Usage)

	if len(cmd.Examples) > 0 {
		fmt.Fprintf(w, "EXAMPLES:\n")
		for _, example := range cmd.Examples {
			fmt.Fprintf(w, "    %s\n", example)
		}
		fmt.Fprintf(w, "\n")
	}
	fmt.Fprintf(w, "OPTIONS:\n")
}
