// Package version records build information stamped in at link time.
package version

import (
	"encoding/json"
	"fmt"
	"runtime"
)

// These variables are set during build time via -ldflags.
var (
	// Version is the current version.
	Version = "dev"

	// Commit is the short commit hash of the source tree.
	Commit = "none"

	// Date is the build time.
	Date = "unknown"
)

// Info contains version information.
type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"goVersion"`
}

// GetInfo returns version information for the running binary.
func GetInfo() Info {
	return Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}
}

// String returns a string representation of version information.
func (i Info) String() string {
	return fmt.Sprintf("Version: %s\nCommit: %s\nBuilt At: %s\nGo Version: %s",
		i.Version, i.Commit, i.Date, i.GoVersion)
}

// JSON returns a JSON representation of version information.
func (i Info) JSON() (string, error) {
	data, err := json.MarshalIndent(i, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
