package cli

import (
	"fmt"
	"slices"

	"github.com/maxaizer/job-hunter/internal/sources"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func newSourcesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "sources",
		Short:       "Inspect the job source catalog",
		Annotations: map[string]string{offlineAnnotation: ""},
	}

	var category string
	var all bool
	list := &cobra.Command{
		Use:   "list",
		Short: "List enabled sources in catalog order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			registry := sources.Default()
			var list []sources.Source
			switch {
			case category != "":
				list = registry.ByCategory(category)
			case all:
				list = registry.All()
			default:
				list = registry.Enabled()
			}

			table := newTable(cmd.OutOrStdout())
			fmt.Fprintln(table, "ID\tNAME\tTYPE\tCATEGORY\tENABLED")
			for _, source := range list {
				fmt.Fprintf(table, "%s\t%s\t%s\t%s\t%t\n", source.ID, source.Name, source.Type, source.Category, source.Enabled)
			}
			return table.Flush()
		},
	}
	list.Flags().StringVar(&category, "category", "", "only enabled sources of this category")
	list.Flags().BoolVar(&all, "all", false, "include disabled sources")

	categories := &cobra.Command{
		Use:   "categories",
		Short: "List source categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, c := range sources.Default().Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}

	stats := &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := sources.Default().Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Total: %d\nEnabled: %d\n\nBy type:\n", s.Total, s.Enabled)

			types := lo.Keys(s.ByType)
			slices.Sort(types)
			for _, t := range types {
				fmt.Fprintf(out, "  %s: %d\n", t, s.ByType[t])
			}

			fmt.Fprintln(out, "\nBy category:")
			for _, c := range sources.Default().Categories() {
				if count, ok := s.ByCategory[c]; ok {
					fmt.Fprintf(out, "  %s: %d\n", c, count)
				}
			}
			return nil
		},
	}

	intervals := &cobra.Command{
		Use:   "intervals",
		Short: "List the posting age buckets accepted by --posted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, interval := range sources.Intervals {
				fmt.Fprintf(cmd.OutOrStdout(), "%-4s %s\n", interval.Bucket, interval.Label)
			}
			return nil
		},
	}

	cmd.AddCommand(list, categories, stats, intervals)
	return cmd
}
