package specpatch

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/specpatch/specpatch/internal/version"
	"github.com/specpatch/specpatch/pkg/commands/genconfig"
	"github.com/specpatch/specpatch/pkg/commands/insertarg"
	"github.com/specpatch/specpatch/pkg/commands/resetoff"
	"github.com/specpatch/specpatch/pkg/commands/reseton"
	"github.com/specpatch/specpatch/pkg/commands/striparg"
	"github.com/specpatch/specpatch/pkg/logging"
	"github.com/specpatch/specpatch/pkg/output"
	"github.com/specpatch/specpatch/pkg/types"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	// Initialize custom template formatting functions
	initTemplateFormatting()

	var (
		rootDir   string
		verbosity int
		dryRun    bool
		format    string
	)

	rootCmd := &cobra.Command{
		Use:     "specpatch",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", MsgFlagRoot)
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	rootCmd.PersistentFlags().StringVar(&format, "format", "auto", MsgFlagFormat)

	// Define command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "patch",
		Title: "PATCH COMMANDS:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "misc",
		Title: "MISC:",
	})

	// Add all commands
	rootCmd.AddCommand(newStripArgCmd())
	rootCmd.AddCommand(newResetOffCmd())
	rootCmd.AddCommand(newResetOnCmd())
	rootCmd.AddCommand(newInsertArgCmd())
	rootCmd.AddCommand(newGenConfigCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// globalOptions carries the resolved persistent flag values into a
// subcommand run.
type globalOptions struct {
	root   string
	dryRun bool
	format output.Format
}

// resolveGlobals reads the persistent flags and settles the output
// format, detecting the terminal when the flag is left on auto.
func resolveGlobals(cmd *cobra.Command) (globalOptions, error) {
	flags := cmd.Root().PersistentFlags()
	root, _ := flags.GetString("root")
	dryRun, _ := flags.GetBool("dry-run")
	formatName, _ := flags.GetString("format")

	format, err := output.ParseFormat(formatName)
	if err != nil {
		return globalOptions{}, err
	}
	if format == output.FormatAuto {
		format = output.DetectFormat(os.Stdout)
	}

	return globalOptions{root: root, dryRun: dryRun, format: format}, nil
}

func renderRun(cmd *cobra.Command, format output.Format, result *types.RunResult) error {
	return output.NewRenderer(cmd.OutOrStdout(), format).RenderRun(result)
}

func newStripArgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "strip-arg",
		Short:   MsgStripArgShort,
		Long:    MsgStripArgLong,
		Example: MsgStripArgExample,
		GroupID: "patch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveGlobals(cmd)
			if err != nil {
				return err
			}
			backup, _ := cmd.Flags().GetBool("backup")

			result, err := striparg.StripArg(striparg.StripArgOptions{
				Root:   opts.root,
				DryRun: opts.dryRun,
				Backup: backup,
			})
			if err != nil {
				return fmt.Errorf(MsgErrStripArg, err)
			}
			return renderRun(cmd, opts.format, result)
		},
	}
	cmd.Flags().Bool("backup", false, MsgFlagBackup)
	return cmd
}

func newResetOffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reset-off",
		Short:   MsgResetOffShort,
		Long:    MsgResetOffLong,
		Example: MsgResetOffExample,
		GroupID: "patch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveGlobals(cmd)
			if err != nil {
				return err
			}
			backup, _ := cmd.Flags().GetBool("backup")

			result, err := resetoff.ResetOff(resetoff.ResetOffOptions{
				Root:   opts.root,
				DryRun: opts.dryRun,
				Backup: backup,
			})
			if err != nil {
				return fmt.Errorf(MsgErrResetOff, err)
			}
			return renderRun(cmd, opts.format, result)
		},
	}
	cmd.Flags().Bool("backup", false, MsgFlagBackup)
	return cmd
}

func newResetOnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reset-on",
		Short:   MsgResetOnShort,
		Long:    MsgResetOnLong,
		Example: MsgResetOnExample,
		GroupID: "patch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveGlobals(cmd)
			if err != nil {
				return err
			}
			backup, _ := cmd.Flags().GetBool("backup")

			result, err := reseton.ResetOn(reseton.ResetOnOptions{
				Root:   opts.root,
				DryRun: opts.dryRun,
				Backup: backup,
			})
			if err != nil {
				return fmt.Errorf(MsgErrResetOn, err)
			}
			return renderRun(cmd, opts.format, result)
		},
	}
	cmd.Flags().Bool("backup", false, MsgFlagBackup)
	return cmd
}

func newInsertArgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "insert-arg",
		Short:   MsgInsertArgShort,
		Long:    MsgInsertArgLong,
		Example: MsgInsertArgExample,
		GroupID: "patch",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveGlobals(cmd)
			if err != nil {
				return err
			}
			backup, _ := cmd.Flags().GetBool("backup")
			junitReport, _ := cmd.Flags().GetString("junit")

			result, err := insertarg.InsertArg(insertarg.InsertArgOptions{
				Root:        opts.root,
				JUnitReport: junitReport,
				DryRun:      opts.dryRun,
				Backup:      backup,
			})
			if err != nil {
				return fmt.Errorf(MsgErrInsertArg, err)
			}
			return renderRun(cmd, opts.format, result)
		},
	}
	cmd.Flags().Bool("backup", false, MsgFlagBackup)
	cmd.Flags().String("junit", "", MsgFlagJUnit)
	return cmd
}

func newGenConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveGlobals(cmd)
			if err != nil {
				return err
			}
			write, _ := cmd.Flags().GetBool("write")
			effective, _ := cmd.Flags().GetBool("effective")

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Root:      opts.root,
				Write:     write,
				Effective: effective,
			})
			if err != nil {
				return fmt.Errorf(MsgErrGenConfig, err)
			}
			return output.NewRenderer(cmd.OutOrStdout(), opts.format).RenderGenConfig(result)
		},
	}
	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)
	cmd.Flags().Bool("effective", false, MsgFlagEffective)
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Long:    MsgVersionLong,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version)
			if version.Commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), MsgCommitFormat, version.Commit)
			}
			if version.Date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), MsgBuiltFormat, version.Date)
			}
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}
