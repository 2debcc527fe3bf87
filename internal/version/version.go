// Package version exposes build metadata injected at link time.
package version

// Build metadata, overridden via -ldflags at release time.
//
//nolint:gochecknoglobals // These are set by the linker and must be package-level variables.
var (
	// Version is the semantic version of the build.
	Version = "1.0.0"
	// Commit is the VCS revision the binary was built from.
	Commit = "none"
	// BuildTime is when the binary was built.
	BuildTime = "unknown"
)

// Short returns just the version number.
func Short() string {
	return Version
}

// Full returns the version together with the commit and build time.
func Full() string {
	return "version: " + Version + ", commit: " + Commit + ", built at: " + BuildTime
}
