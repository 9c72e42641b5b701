package app

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/docgap"
	"github.com/agentstation/docgap/pkg/logging"
)

// Execute runs the docgap CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command. The tool takes no
// positional arguments: a bare invocation diffs the fixed relative
// input locations and writes the artifact next to them.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "docgap",
		Short:   "Find API documentation gaps",
		Version: a.version,
		Long: `Docgap reconciles the hand-maintained reference descriptions of an API
against documentation facts extracted from its source comments, and
writes every missing or incomplete description in the reference set's
own layout, ready for manual merge.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
		RunE:              a.run,
	}

	rootCmd.PersistentFlags().StringVar(&a.config.ConfigFile, "config", "", "config file (default is .docgap.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	rootCmd.SetVersionTemplate("docgap {{.Version}}\n")
	rootCmd.AddCommand(a.newVersionCommand())

	return rootCmd
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	logLevel, _ := cmd.Flags().GetString("log-level")

	a.config.UpdateFromFlags(verbose, quiet, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger
	logging.SetDefault(logger)

	return nil
}

// run executes the whole pipeline and prints the one-line completion
// message.
func (a *App) run(cmd *cobra.Command, _ []string) error {
	result, err := docgap.Run(cmd.Context(),
		docgap.WithReferenceFile(a.config.ReferenceFile),
		docgap.WithReferenceDir(a.config.ReferenceDir),
		docgap.WithExtractDir(a.config.ExtractDir),
		docgap.WithOutput(a.config.OutputFile),
	)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Missing descriptions written to %s (%d classes, %d symbols)\n",
		result.OutputPath, result.Classes, result.Symbols)
	return nil
}

// newVersionCommand creates the version subcommand.
func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "docgap %s (commit %s, built %s)\n", a.version, a.commit, a.date)
		},
	}
}
