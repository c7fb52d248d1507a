package cli

import (
	"context"
	"time"

	"github.com/maxaizer/job-hunter/internal/bot"
	"github.com/maxaizer/job-hunter/internal/metrics"
	"github.com/maxaizer/job-hunter/internal/services"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServeCommand() *cobra.Command {
	var refreshOnStart bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run scheduled refreshes, saved-search alerts, the Telegram bot and the metrics server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a := appFrom(cmd)
			ctx := cmd.Context()
			a.store.LoadSnapshot(ctx)

			if a.cfg.Metrics.Address != "" {
				server := metrics.StartMetricsServer(a.cfg.Metrics.Address)
				defer func() {
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = server.Shutdown(shutdownCtx)
				}()
			}

			alerts := services.NewAlertService(a.bus, a.searches, a.alerts)
			if err := alerts.Listen(); err != nil {
				return err
			}
			defer func() {
				a.bus.WaitAsync()
				_ = alerts.Stop()
			}()

			if a.cfg.Telegram.Enabled() {
				tgbot, err := bot.NewBot(a.cfg.Telegram.Token, a.cfg.Telegram.ChatID, a.bus, a.store)
				if err != nil {
					return err
				}
				go tgbot.Run(ctx)
				defer tgbot.Stop()
			} else {
				log.Info("telegram is not configured, alerts are only logged")
			}

			params := a.fetchParams("", nil, 0)
			if a.cfg.Refresh.Schedule != "" {
				scheduler, err := services.NewRefreshScheduler(a.store, a.alerts, a.cfg.Refresh.Schedule,
					params, a.cfg.Refresh.AlertRetention)
				if err != nil {
					return err
				}
				scheduler.Start()
				defer scheduler.Stop()
			}

			if refreshOnStart {
				a.store.Refresh(ctx, params)
				if errText := a.store.Err(); errText != "" {
					log.Warnf("initial refresh failed: %s", errText)
				} else if err := a.store.SaveSnapshot(ctx); err != nil {
					log.Errorf("failed to save snapshot: %v", err)
				}
			}

			<-ctx.Done()
			log.Info("Shutting down services...")
			return nil
		},
	}

	cmd.Flags().BoolVar(&refreshOnStart, "refresh-on-start", false, "refresh once before waiting for the schedule")
	return cmd
}
