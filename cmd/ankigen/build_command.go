package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"ankigen/internal/manifest"
)

func newBuildCommand(logger func() *slog.Logger) *cobra.Command {
	var output string
	var timestamp float64

	cmd := &cobra.Command{
		Use:   "build <manifest.toml>",
		Short: "Assemble a package from a build manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()

			m, err := manifest.Load(args[0])
			if err != nil {
				return err
			}
			if output != "" {
				m.Output = output
			}

			pkg, err := manifest.Build(m)
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("timestamp") {
				err = pkg.WriteToFileTimestamp(m.Output, timestamp)
			} else {
				err = pkg.WriteToFile(m.Output)
			}
			if err != nil {
				return fmt.Errorf("build %s: %w", m.Output, err)
			}

			noteCount := 0
			for _, deck := range m.Decks {
				noteCount += len(deck.Notes)
			}
			log.Info("package written",
				"output", m.Output,
				"decks", len(m.Decks),
				"notes", noteCount,
				"media", len(m.Media),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Override the manifest's output path")
	cmd.Flags().Float64Var(&timestamp, "timestamp", 0, "Pin the build timestamp (epoch seconds) for reproducible output")
	return cmd
}
