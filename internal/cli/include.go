package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teplostanski/mergeful/pkg/errors"
	"github.com/teplostanski/mergeful/pkg/filesystem"
	"github.com/teplostanski/mergeful/pkg/logging"
	"github.com/teplostanski/mergeful/pkg/merge"
	"github.com/teplostanski/mergeful/pkg/types"
)

type includeFlags struct {
	template     string
	label        string
	output       string
	text         string
	path         string
	sourceFormat string
	transform    string
}

func newIncludeCmd(root *rootFlags) *cobra.Command {
	flags := &includeFlags{}

	cmd := &cobra.Command{
		Use:     "include",
		Short:   MsgIncludeShort,
		Long:    MsgIncludeLong,
		Example: MsgIncludeExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req, err := flags.request()
			if err != nil {
				return err
			}
			sink, err := sinkFor(cmd, root)
			if err != nil {
				return err
			}
			_, err = runInclude(req, sink)
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.template, "template", "t", "", MsgFlagTemplate)
	f.StringVarP(&flags.label, "label", "l", "", MsgFlagLabel)
	f.StringVarP(&flags.output, "output", "o", "", MsgFlagOutput)
	f.StringVar(&flags.text, "text", "", MsgFlagText)
	f.StringVarP(&flags.path, "path", "p", "", MsgFlagPath)
	f.StringVar(&flags.sourceFormat, "source-format", string(types.SourceFormatText), MsgFlagSourceFormat)
	f.StringVar(&flags.transform, "transform", "none", fmt.Sprintf(MsgFlagTransform, strings.Join(merge.TransformNames(), ", ")))

	_ = cmd.MarkFlagRequired("template")
	_ = cmd.MarkFlagRequired("label")
	_ = cmd.MarkFlagRequired("output")
	_ = cmd.MarkFlagFilename("template")
	_ = cmd.MarkFlagFilename("output")
	_ = cmd.MarkFlagFilename("path")
	_ = cmd.RegisterFlagCompletionFunc("transform", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return merge.TransformNames(), cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.RegisterFlagCompletionFunc("source-format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "json", "yaml", "toml", "auto"}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

func (f *includeFlags) request() (types.MergeRequest, error) {
	format, err := types.ParseSourceFormat(f.sourceFormat)
	if err != nil {
		return types.MergeRequest{}, errors.Wrap(err, errors.ErrInvalidInput, err.Error())
	}
	transform, err := merge.LookupTransform(f.transform)
	if err != nil {
		return types.MergeRequest{}, errors.Wrap(err, errors.ErrInvalidInput, err.Error())
	}
	return types.MergeRequest{
		TemplatePath: f.template,
		Label:        f.label,
		OutputPath:   f.output,
		Source: types.Source{
			Text:   f.text,
			Path:   f.path,
			Format: format,
		},
		Transform: transform,
	}, nil
}

// runInclude merges a single request. Recovered failures have already been
// reported through the sink, so only fatal errors reach the caller.
func runInclude(req types.MergeRequest, sink merge.Sink) (types.MergeOutcome, error) {
	logger := logging.GetLogger("cli.include")
	outcome, err := merge.Include(req, merge.Options{
		FileSystem: filesystem.NewOS(),
		Sink:       sink,
	})
	if err != nil {
		return outcome, err
	}
	logger.Info().
		Str("output", outcome.OutputPath).
		Bool("written", outcome.Written).
		Int("bytes", outcome.Bytes).
		Msg("Include finished")
	return outcome, nil
}
