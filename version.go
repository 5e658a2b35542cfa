// Package snowkit exposes version information for the snowkit toolkit.
//
// The functionality lives in the subpackages: logging holds the tiered
// logging subsystem, warehouse the read-only database access layer,
// toolkit the MCP tool assembly, and telemetry the tracing support.
package snowkit

// Version information for the snowkit toolkit
const (
	// Version is the current toolkit version
	Version = "development"

	// BuildDate is set during build time
	BuildDate = "development"

	// GitCommit is set during build time
	GitCommit = "unknown"
)
