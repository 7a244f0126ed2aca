// Package config loads mergeful job files.
//
// Sources are layered in order, later ones winning:
//
//  1. embedded defaults (embedded/defaults.toml)
//  2. the job file (TOML or YAML, chosen by extension)
//  3. MERGEFUL_* environment variables (MERGEFUL_FORMAT -> format)
//  4. explicit overrides, usually from command-line flags
//
// Each job becomes one independent merge invocation.
package config
