// Package version holds the tool version. The upgrade subsystem compares
// this against the version recorded in a project's baseline to decide
// whether template reconciliation is needed at all.
package version

// Current is overridden at build time via
// -ldflags "-X github.com/shotforge/shotforge/internal/version.Current=...".
var Current = "dev"
