package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teplostanski/mergeful/pkg/config"
	"github.com/teplostanski/mergeful/pkg/logging"
	"github.com/teplostanski/mergeful/pkg/ui"
)

func newRunCmd(root *rootFlags) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:     "run",
		Short:   MsgRunShort,
		Long:    MsgRunLong,
		Example: MsgRunExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("cli.run")

			if configPath == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf(MsgErrWorkingDir, err)
				}
				configPath, err = config.FindConfigFile(cwd)
				if err != nil {
					return err
				}
			}

			var overrides map[string]interface{}
			if cmd.Flags().Changed("format") {
				overrides = map[string]interface{}{"format": root.format}
			}

			cfg, err := config.Load(configPath, overrides)
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			format, err := ui.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}
			sink, err := ui.NewSink(format, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			written, skipped := 0, 0
			for _, job := range cfg.Jobs {
				req, err := cfg.Request(job)
				if err != nil {
					return err
				}

				logger.Debug().Str("job", job.DisplayName()).Msg("Running job")
				outcome, err := runInclude(req, sink)
				if err != nil {
					logger.Error().Err(err).Str("job", job.DisplayName()).Msg("Job failed")
					return err
				}
				if outcome.Written {
					written++
				} else {
					skipped++
				}
			}

			logger.Info().
				Str("config", configPath).
				Int("written", written).
				Int("skipped", skipped).
				Msg("Run finished")
			if sink.Format() != ui.FormatJSON {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), MsgRunSummary, len(cfg.Jobs), written, skipped)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", MsgFlagConfig)
	_ = cmd.MarkFlagFilename("config", "toml", "yaml", "yml")

	return cmd
}
