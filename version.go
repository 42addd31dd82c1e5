package etherscan

import (
	"fmt"
	"runtime"
)

var (
	// Version is the library semantic version (injected at build time optionally).
	Version = "v2.0.0"
	// GitCommit is the git SHA (inject via -ldflags at build time).
	GitCommit = "unknown"
	// GoVersion records the Go toolchain version used.
	GoVersion = runtime.Version()
)

// UserAgent returns the User-Agent string sent with every request.
func UserAgent() string {
	return fmt.Sprintf("etherscan-v2-sdk/%s (go %s)", Version, GoVersion)
}
