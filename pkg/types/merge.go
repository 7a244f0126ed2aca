package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SourceFormat selects how a source file is decoded before transformation
type SourceFormat string

const (
	// SourceFormatText passes the file content through as a string
	SourceFormatText SourceFormat = "text"
	// SourceFormatJSON decodes the file as JSON
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatYAML decodes the file as YAML
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatTOML decodes the file as TOML
	SourceFormatTOML SourceFormat = "toml"
	// SourceFormatAuto picks a decoder from the file extension
	SourceFormatAuto SourceFormat = "auto"
)

// ParseSourceFormat parses a string into a SourceFormat value
func ParseSourceFormat(s string) (SourceFormat, error) {
	switch strings.ToLower(s) {
	case "", "text", "plain":
		return SourceFormatText, nil
	case "json":
		return SourceFormatJSON, nil
	case "yaml", "yml":
		return SourceFormatYAML, nil
	case "toml":
		return SourceFormatTOML, nil
	case "auto":
		return SourceFormatAuto, nil
	default:
		return SourceFormatText, fmt.Errorf("unknown source format: %s", s)
	}
}

// ForPath resolves SourceFormatAuto against a file name. Other formats are
// returned unchanged.
func (f SourceFormat) ForPath(path string) SourceFormat {
	if f != SourceFormatAuto {
		return f
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return SourceFormatJSON
	case ".yaml", ".yml":
		return SourceFormatYAML
	case ".toml":
		return SourceFormatTOML
	default:
		return SourceFormatText
	}
}

// Source is the content to insert: literal text or a path to read.
// Text takes precedence when both are set.
type Source struct {
	Text   string
	Path   string
	Format SourceFormat
}

// TransformFunc rewrites resolved content before substitution. content is a
// string for text sources and a decoded value for structured sources.
type TransformFunc func(content any) (string, error)

// MergeRequest describes one merge invocation
type MergeRequest struct {
	TemplatePath string
	Source       Source
	Label        string
	OutputPath   string
	Transform    TransformFunc
}

// MergeOutcome reports what a merge invocation did. Written is only true
// after the output file was persisted; Failure holds the error that was
// logged and swallowed when the pipeline stopped early.
type MergeOutcome struct {
	OutputPath string
	Bytes      int
	Written    bool
	Failure    error
}

// Recovered reports whether the invocation ended in a logged, non-fatal failure
func (o MergeOutcome) Recovered() bool {
	return o.Failure != nil
}
