// Package version exposes build metadata for the giturl binary.
package version

import (
	"fmt"
	"io"
	"runtime"
)

var (
	// Version is the release version, overridden at build time.
	Version = "dev"
	// Commit is the git commit the binary was built from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)

// Print writes version information to w.
func Print(w io.Writer) error {
	_, err := fmt.Fprintf(w, "giturl %s (commit %s, built %s, %s/%s)\n",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
	return err
}
