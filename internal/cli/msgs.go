package cli

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Insert content into a template at a label"
	MsgIncludeShort    = "Merge one source into a template"
	MsgRunShort        = "Run the jobs from a job file"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Flag descriptions
	MsgFlagVerbose      = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFormat       = "Output format: auto, term, text or json"
	MsgFlagTemplate     = "Template file containing the label"
	MsgFlagLabel        = "Literal label to replace (first occurrence only)"
	MsgFlagOutput       = "Output file, overwritten if it exists"
	MsgFlagText         = "Literal text to insert (takes precedence over --path)"
	MsgFlagPath         = "File whose contents are inserted"
	MsgFlagSourceFormat = "Decode --path as text, json, yaml, toml or auto"
	MsgFlagTransform    = "Transform applied before insertion: %s"
	MsgFlagConfig       = "Job file (default: mergeful.toml in the current directory)"

	// Status messages
	MsgRunSummary = "Ran %d job(s): %d written, %d skipped\n"

	// Error messages
	MsgErrParseFormat = "invalid --format: %w"
	MsgErrWorkingDir  = "failed to get current directory: %w"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/include-long.txt
	msgIncludeLongRaw string
	MsgIncludeLong    = strings.TrimSpace(msgIncludeLongRaw)

	//go:embed msgs/include-example.txt
	msgIncludeExampleRaw string
	MsgIncludeExample    = strings.TrimRight(msgIncludeExampleRaw, "\n")

	//go:embed msgs/run-long.txt
	msgRunLongRaw string
	MsgRunLong    = strings.TrimSpace(msgRunLongRaw)

	//go:embed msgs/run-example.txt
	msgRunExampleRaw string
	MsgRunExample    = strings.TrimRight(msgRunExampleRaw, "\n")

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
