package cli

import (
	"fmt"

	"github.com/maxaizer/job-hunter/internal/filtering"
	"github.com/spf13/cobra"
)

func newMatchesCommand() *cobra.Command {
	var (
		flags      filterFlags
		saveFilter bool
		explain    bool
	)

	cmd := &cobra.Command{
		Use:   "matches",
		Short: "Show matches from the last refresh narrowed by filters",
		Long: "Show matches from the last refresh. Without filter flags the saved filter is used; " +
			"with flags they replace it for this run, or permanently with --save-filter.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			out := cmd.OutOrStdout()

			if a.store.LoadSnapshot(cmd.Context()).IsZero() {
				fmt.Fprintln(out, "No matches yet, run 'jobhunter refresh' first.")
				return nil
			}

			filter, changed := flags.build(cmd)
			if !changed {
				filter = a.store.Filters()
			} else if err := filter.Validate(); err != nil {
				return err
			}
			if changed && saveFilter {
				if err := a.store.SetFilters(cmd.Context(), filter); err != nil {
					return err
				}
			}

			if explain {
				steps, err := filtering.Explain(a.store.Matches(), filter, nowFunc())
				if err != nil {
					return err
				}
				for _, step := range steps {
					fmt.Fprintf(out, "%-20s %4d -> %4d (dropped %d)\n", step.Name, step.Initial, step.Left, step.Dropped)
				}
				fmt.Fprintln(out)
			}

			matches, err := filtering.ApplyAt(a.store.Matches(), filter, nowFunc())
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%d of %d matches, %d active filters\n\n", len(matches), len(a.store.Matches()), filtering.ActiveCount(filter))
			return writeMatches(out, a, matches)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&saveFilter, "save-filter", false, "keep the given filter flags as the saved filter")
	cmd.Flags().BoolVar(&explain, "explain", false, "print how many matches each filter removed")
	return cmd
}
