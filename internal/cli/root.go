package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/teplostanski/mergeful/internal/version"
	"github.com/teplostanski/mergeful/pkg/logging"
	"github.com/teplostanski/mergeful/pkg/ui"
)

type rootFlags struct {
	verbosity int
	format    string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}

	initTemplateFormatting()

	rootCmd := &cobra.Command{
		Use:     "mergeful",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(flags.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.PersistentFlags().CountVarP(&flags.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&flags.format, "format", ui.FormatAuto.String(), MsgFlagFormat)
	_ = rootCmd.RegisterFlagCompletionFunc("format", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "term", "text", "json"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newIncludeCmd(flags))
	rootCmd.AddCommand(newRunCmd(flags))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "mergeful version %s\n", version.Version)
			_, _ = fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			_, _ = fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: MsgCompletionShort,
		Long: strings.TrimSpace(`
To load completions:

Bash:
  $ source <(mergeful completion bash)

Zsh:
  $ mergeful completion zsh > "${fpath[1]}/_mergeful"

Fish:
  $ mergeful completion fish | source

PowerShell:
  PS> mergeful completion powershell | Out-String | Invoke-Expression`),
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			default:
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
		},
	}
}

// sinkFor builds the console sink for the --format flag value.
func sinkFor(cmd *cobra.Command, flags *rootFlags) (*ui.ConsoleSink, error) {
	format, err := ui.ParseFormat(flags.format)
	if err != nil {
		return nil, fmt.Errorf(MsgErrParseFormat, err)
	}
	return ui.NewSink(format, cmd.OutOrStdout(), cmd.ErrOrStderr())
}
