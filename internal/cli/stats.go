package cli

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show dashboard numbers for the last refresh",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			out := cmd.OutOrStdout()

			if takenAt := a.store.LoadSnapshot(cmd.Context()); !takenAt.IsZero() {
				fmt.Fprintf(out, "Last refresh: %s\n", humanize.Time(takenAt))
			}

			stats := a.store.Stats()
			fmt.Fprintf(out, "Jobs: %d\nExcellent matches: %d\nGood matches: %d\nSaved: %d\nApplied: %d\n",
				stats.TotalJobs, stats.ExcellentMatches, stats.GoodMatches, stats.SavedCount, stats.AppliedCount)

			if top := a.store.TopSources(); len(top) > 0 {
				fmt.Fprintln(out, "\nTop sources:")
				for _, source := range top {
					fmt.Fprintf(out, "  %s: %d\n", source.Source, source.Count)
				}
			}
			return nil
		},
	}
}
