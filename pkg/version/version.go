// Package version carries build identification injected at link time.
package version

// Set via -ldflags at build time.
//
//nolint:gochecknoglobals // Link-time injection targets.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
