package cli

import (
	"context"

	"github.com/maxaizer/job-hunter/internal/config"
	"github.com/maxaizer/job-hunter/internal/logger"
	"github.com/spf13/cobra"
)

type appKey struct{}

const offlineAnnotation = "offline"

// Execute runs the jobhunter command tree and releases everything it opened.
func Execute(ctx context.Context) error {
	var opened *app
	root := newRootCommand(&opened)

	err := root.ExecuteContext(ctx)
	if opened != nil {
		opened.Close()
	}
	logger.Cleanup()
	return err
}

func newRootCommand(opened **app) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "jobhunter",
		Short:         "Fetch jobs, score them against your resume and track what you saved or applied to",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !needsApp(cmd) {
				return nil
			}

			cfg, err := config.Load(config.ResolvePath(configPath))
			if err != nil {
				return err
			}

			logger.Setup(cmd.Context(), cfg.Logger)

			a, err := newApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			*opened = a
			cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "",
		"path to config file (default $CONFIG_PATH or "+config.DefaultPath+")")

	root.AddCommand(
		newSourcesCommand(),
		newResumeCommand(),
		newRefreshCommand(),
		newMatchesCommand(),
		newFiltersCommand(),
		newSaveCommand(),
		newApplyCommand(),
		newStatsCommand(),
		newSearchCommand(),
		newServeCommand(),
	)
	return root
}

// needsApp is false for commands that only read the static source catalog.
func needsApp(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if _, ok := c.Annotations[offlineAnnotation]; ok {
			return false
		}
	}
	return true
}

func appFrom(cmd *cobra.Command) *app {
	return cmd.Context().Value(appKey{}).(*app)
}
