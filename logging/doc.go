// Package logging provides a minimal logging interface and adapters for MindMesh.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the session engine uses for observability. This package
// includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - MindMeshLogger with contextual session/component attributes
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	mesh := mindmesh.New(generator, func(o *mindmesh.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
