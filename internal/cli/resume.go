package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/maxaizer/job-hunter/internal/store"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newResumeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resume",
		Short: "Manage the active resume",
	}

	parse := &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a plain-text resume and make it the active one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := appFrom(cmd)

			content, err := os.ReadFile(args[0])
			if err != nil {
				return errors.Wrap(err, "failed to read resume file")
			}

			resume, err := a.resumes.Parse(cmd.Context(), string(content))
			if err != nil {
				return err
			}
			if err = a.store.SetResume(cmd.Context(), resume); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Resume %s saved for %s with %d skills.\n", resume.ID, resume.Name, len(resume.Skills))
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Print the active resume",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			resume := appFrom(cmd).store.Resume()
			if resume == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No resume uploaded.")
				return nil
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID: %s\nName: %s\nCreated: %s\n", resume.ID, resume.Name, resume.CreatedAt.Format("2006-01-02 15:04"))
			if resume.Email != "" {
				fmt.Fprintf(out, "Email: %s\n", resume.Email)
			}
			fmt.Fprintf(out, "Skills: %s\n", strings.Join(resume.Skills, ", "))
			for _, exp := range resume.Experience {
				fmt.Fprintf(out, "  - %s at %s (%s - %s)\n", exp.Title, exp.Company, exp.StartDate, exp.EndDate)
			}
			return nil
		},
	}

	clear := &cobra.Command{
		Use:   "clear",
		Short: "Remove the active resume and its matches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := clearResume(cmd.Context(), appFrom(cmd).store); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Resume cleared.")
			return nil
		},
	}

	cmd.AddCommand(parse, show, clear)
	return cmd
}

// clearResume drops the resume and its matches; the jobs of the last refresh stay in the snapshot.
func clearResume(ctx context.Context, st *store.Store) error {
	st.LoadSnapshot(ctx)
	if err := st.ClearResume(ctx); err != nil {
		return err
	}
	return st.SaveSnapshot(ctx)
}
