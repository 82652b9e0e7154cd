// Package cli implements the kdr command-line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-kdr/kdr/internal/buildinfo"
	"github.com/go-kdr/kdr/internal/logging"
)

// Execute runs the kdr CLI and returns an error if any command fails.
func Execute() error {
	return RootCommand().ExecuteContext(context.Background())
}

// RootCommand creates the root cobra command with all subcommands registered.
// The logger is attached to the command context before any subcommand runs.
func RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "kdr",
		Short:        "kdr stores planar points and answers rectangular range queries",
		Version:      buildinfo.Info.Tag(),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := "info"
			if verbose {
				level = "debug"
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(logging.WithLogger(ctx, logging.NewLogger(level, true)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\nbuilt: %s\n", buildinfo.Info.Name(), buildinfo.Info.Tag(), buildinfo.Info.Time()))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(demoCommand())

	return root
}
