package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var version = "dev"

// SetVersion sets the version string displayed by --version. It is typically
// called by the main package with a value injected via ldflags.
func SetVersion(v string) {
	version = v
}

// Execute runs the ffnet CLI and returns an error if any command fails.
//
// The root command wires the --verbose flag to the log level and attaches a
// logger to the command context, accessible to all subcommands via
// loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "ffnet",
		Short:        "ffnet stores feed-forward network parameters in text and binary files",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newInspectCmd())
	root.AddCommand(newConvertCmd())
	root.AddCommand(newInitCmd())

	return root.ExecuteContext(context.Background())
}
