package cli

import (
	"fmt"

	"github.com/maxaizer/job-hunter/internal/sources"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newRefreshCommand() *cobra.Command {
	var (
		query string
		srcs  []string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Fetch jobs and score them against the active resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			for _, id := range srcs {
				if _, ok := sources.Default().Lookup(id); !ok {
					log.Warnf("unknown source %q", id)
				}
			}

			matches := a.store.Refresh(cmd.Context(), a.fetchParams(query, srcs, limit))
			if errText := a.store.Err(); errText != "" {
				return errors.New(errText)
			}
			if err := a.store.SaveSnapshot(cmd.Context()); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fetched %d jobs, %d matches.\n", len(a.store.Jobs()), len(matches))
			for _, top := range a.store.TopSources() {
				fmt.Fprintf(out, "  %s: %d\n", top.Source, top.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "search query passed to the aggregator")
	cmd.Flags().StringSliceVarP(&srcs, "source", "s", nil, "restrict to these source ids")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of jobs to fetch")
	return cmd
}
