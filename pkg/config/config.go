package config

import (
	"fmt"
	"path/filepath"

	"github.com/teplostanski/mergeful/pkg/errors"
	"github.com/teplostanski/mergeful/pkg/merge"
	"github.com/teplostanski/mergeful/pkg/types"
	"github.com/teplostanski/mergeful/pkg/ui"
)

// Config is a parsed job file
type Config struct {
	Format       string `koanf:"format"`
	SourceFormat string `koanf:"source_format"`
	Transform    string `koanf:"transform"`
	Jobs         []Job  `koanf:"jobs"`

	// Dir is the directory relative job paths are resolved against
	Dir string `koanf:"-"`
}

// Job is one merge invocation
type Job struct {
	Name         string `koanf:"name"`
	Template     string `koanf:"template"`
	Label        string `koanf:"label"`
	Output       string `koanf:"output"`
	Text         string `koanf:"text"`
	Path         string `koanf:"path"`
	SourceFormat string `koanf:"source_format"`
	Transform    string `koanf:"transform"`
}

// DisplayName returns the job name, or its output path when unnamed
func (j Job) DisplayName() string {
	if j.Name != "" {
		return j.Name
	}
	return j.Output
}

// Validate checks the settings that must be right before any job runs.
// Missing sources are left to the merge pipeline, which reports them
// per job without aborting the run.
func (c *Config) Validate() error {
	if _, err := ui.ParseFormat(c.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, err.Error()).WithDetail("key", "format")
	}
	if len(c.Jobs) == 0 {
		return errors.New(errors.ErrConfigValid, "no jobs defined")
	}
	for i, job := range c.Jobs {
		if job.Template == "" || job.Output == "" || job.Label == "" {
			return errors.Newf(errors.ErrConfigValid, "job %d (%s): template, label and output are required", i+1, job.DisplayName()).
				WithDetail("job", i+1)
		}
		if _, err := types.ParseSourceFormat(c.jobSourceFormat(job)); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "job %d (%s): %v", i+1, job.DisplayName(), err)
		}
		if _, err := merge.LookupTransform(c.jobTransform(job)); err != nil {
			return errors.Wrapf(err, errors.ErrConfigValid, "job %d (%s): %v", i+1, job.DisplayName(), err)
		}
	}
	return nil
}

// Request builds the merge request for a job, resolving relative paths
// against the config directory and applying config-level defaults
func (c *Config) Request(job Job) (types.MergeRequest, error) {
	format, err := types.ParseSourceFormat(c.jobSourceFormat(job))
	if err != nil {
		return types.MergeRequest{}, errors.Wrap(err, errors.ErrConfigValid, err.Error())
	}
	transform, err := merge.LookupTransform(c.jobTransform(job))
	if err != nil {
		return types.MergeRequest{}, errors.Wrap(err, errors.ErrConfigValid, err.Error())
	}

	return types.MergeRequest{
		TemplatePath: c.resolve(job.Template),
		Source: types.Source{
			Text:   job.Text,
			Path:   c.resolve(job.Path),
			Format: format,
		},
		Label:      job.Label,
		OutputPath: c.resolve(job.Output),
		Transform:  transform,
	}, nil
}

func (c *Config) jobSourceFormat(job Job) string {
	if job.SourceFormat != "" {
		return job.SourceFormat
	}
	return c.SourceFormat
}

func (c *Config) jobTransform(job Job) string {
	if job.Transform != "" {
		return job.Transform
	}
	return c.Transform
}

func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) || c.Dir == "" {
		return path
	}
	return filepath.Join(c.Dir, path)
}

// String is used in debug logs
func (j Job) String() string {
	return fmt.Sprintf("%s: %s -> %s", j.DisplayName(), j.Template, j.Output)
}
