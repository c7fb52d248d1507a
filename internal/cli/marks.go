package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <job-id>",
		Short: "Toggle whether a job is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			saved, err := appFrom(cmd).store.ToggleSaveJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if saved {
				fmt.Fprintf(cmd.OutOrStdout(), "Job %s saved.\n", args[0])
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "Job %s removed from saved.\n", args[0])
			}
			return nil
		},
	}
}

func newApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Mark a job as applied",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appFrom(cmd).store.MarkAsApplied(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Job %s marked as applied.\n", args[0])
			return nil
		},
	}
}
