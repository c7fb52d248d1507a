package cli

import (
	"fmt"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/spf13/cobra"
)

func newSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Manage saved searches and their alerts",
	}

	var (
		flags filterFlags
		alert bool
	)
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Save a search built from filter flags, or from the saved filter if none are given",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)
			filter, changed := flags.build(cmd)
			if !changed {
				filter = a.store.Filters()
			}

			search := models.NewSavedSearch(args[0], filter, alert)
			if err := search.Validate(); err != nil {
				return err
			}
			if err := a.searches.Add(cmd.Context(), search); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved search %s (%d filters, alerts %t).\n", search.ID, filter.ActiveCount(), alert)
			return nil
		},
	}
	flags.register(add)
	add.Flags().BoolVar(&alert, "alert", false, "notify about new matches of this search")

	list := &cobra.Command{
		Use:   "list",
		Short: "List saved searches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			searches, err := appFrom(cmd).searches.GetAll(cmd.Context())
			if err != nil {
				return err
			}

			table := newTable(cmd.OutOrStdout())
			fmt.Fprintln(table, "ID\tNAME\tFILTERS\tALERT\tCREATED")
			for _, s := range searches {
				fmt.Fprintf(table, "%s\t%s\t%d\t%t\t%s\n", s.ID, s.Name, s.Filters.ActiveCount(), s.IsAlertEnabled,
					s.CreatedAt.Format("2006-01-02"))
			}
			return table.Flush()
		},
	}

	remove := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a saved search",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appFrom(cmd).searches.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved search %s removed.\n", args[0])
			return nil
		},
	}

	alertCmd := &cobra.Command{
		Use:       "alert <id> on|off",
		Short:     "Turn alerts for a saved search on or off",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[1] != "on" && args[1] != "off" {
				return fmt.Errorf("expected on or off, got %q", args[1])
			}
			if err := appFrom(cmd).searches.SetAlertEnabled(cmd.Context(), args[0], args[1] == "on"); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Alerts %s for %s.\n", args[1], args[0])
			return nil
		},
	}

	cmd.AddCommand(add, list, remove, alertCmd)
	return cmd
}
