package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"ankigen/internal/archive"
)

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <package.apkg>",
		Short: "List the members and media manifest of a package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := archive.ReadSummary(args[0])
			if err != nil {
				return err
			}

			memberRows := make([][]string, 0, len(summary.Members))
			for _, member := range summary.Members {
				memberRows = append(memberRows, []string{
					member.Name,
					strconv.FormatUint(member.Size, 10),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Member", "Bytes"},
				memberRows,
				[]columnAlignment{alignLeft, alignRight},
			))

			if len(summary.Manifest) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no media files")
				return nil
			}

			slots := make([]string, 0, len(summary.Manifest))
			for slot := range summary.Manifest {
				slots = append(slots, slot)
			}
			sort.Slice(slots, func(i, j int) bool {
				a, _ := strconv.Atoi(slots[i])
				b, _ := strconv.Atoi(slots[j])
				return a < b
			})
			mediaRows := make([][]string, 0, len(slots))
			for _, slot := range slots {
				mediaRows = append(mediaRows, []string{slot, summary.Manifest[slot]})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Slot", "Name"},
				mediaRows,
				[]columnAlignment{alignRight, alignLeft},
			))
			return nil
		},
	}
}
