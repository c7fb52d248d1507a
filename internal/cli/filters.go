package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var nowFunc = time.Now

func newFiltersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "filters",
		Short: "Show or reset the saved filter",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the saved filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			fmt.Fprintf(cmd.OutOrStdout(), "Active filters: %d\n", a.store.ActiveFilterCount())
			return writeJSON(cmd.OutOrStdout(), a.store.Filters())
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Reset the saved filter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := appFrom(cmd).store.ClearFilters(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Filters cleared.")
			return nil
		},
	}

	cmd.AddCommand(show, clear)
	return cmd
}
