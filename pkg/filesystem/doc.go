// Package filesystem provides filesystem implementations for mergeful.
//
// This package contains implementations of the types.FS interface:
// the host OS filesystem used by the CLI and an afero-backed filesystem
// used by tests and by callers that want an in-memory or layered fs.
package filesystem
