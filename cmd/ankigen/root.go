package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"ankigen/internal/logging"
)

func newRootCommand() *cobra.Command {
	var logLevel string

	rootCmd := &cobra.Command{
		Use:           "ankigen",
		Short:         "Build and inspect flashcard packages",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	logger := func() *slog.Logger {
		return logging.New(logLevel, os.Stderr)
	}

	rootCmd.AddCommand(newBuildCommand(logger))
	rootCmd.AddCommand(newInspectCommand())
	rootCmd.AddCommand(newInitCommand(logger))

	return rootCmd
}
