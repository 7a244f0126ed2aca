// Package testutil provides utilities for testing mergeful components.
//
// Key components:
//   - MemoryFS: afero-backed in-memory types.FS seeded from a path->content map
//   - FaultFS: wraps any types.FS and injects read/stat/write failures or panics
//   - CreateFile / ReadFile / FileExists: real-disk helpers for CLI tests
//
// Most tests should run against MemoryFS; only the CLI and filesystem
// packages touch the real disk, always under t.TempDir().
package testutil
