package services

import (
	"context"
	"time"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

type refresher interface {
	Refresh(ctx context.Context, params FetchParams) []models.JobMatch
	Err() string
	SaveSnapshot(ctx context.Context) error
}

type alertCleanupRepository interface {
	RemoveOlderThan(ctx context.Context, expirationTime time.Time) (int64, error)
}

// RefreshScheduler periodically refreshes jobs and matches and prunes old alert records.
type RefreshScheduler struct {
	refresher refresher
	alerts    alertCleanupRepository
	params    FetchParams
	retention time.Duration
	cron      *cron.Cron
}

func NewRefreshScheduler(refresher refresher, alerts alertCleanupRepository, schedule string,
	params FetchParams, retention time.Duration) (*RefreshScheduler, error) {

	if retention <= 0 {
		return nil, errors.New("alert retention must be greater than zero")
	}

	s := &RefreshScheduler{
		refresher: refresher,
		alerts:    alerts,
		params:    params,
		retention: retention,
		cron:      cron.New(),
	}

	if _, err := s.cron.AddFunc(schedule, s.refresh); err != nil {
		return nil, errors.Wrapf(err, "invalid refresh schedule %q", schedule)
	}
	if _, err := s.cron.AddFunc("0 0 * * *", s.cleanOldAlerts); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *RefreshScheduler) Start() {
	s.cron.Start()
	log.Infof("refresh scheduler started, alert retention: %v", s.retention)
}

// Stop waits for a running refresh to finish.
func (s *RefreshScheduler) Stop() {
	<-s.cron.Stop().Done()
}

// refresh persists the snapshot only after a successful refresh, so other processes
// keep seeing the last good results.
func (s *RefreshScheduler) refresh() {
	ctx := context.Background()
	startTime := time.Now()
	matches := s.refresher.Refresh(ctx, s.params)
	if errText := s.refresher.Err(); errText != "" {
		log.Warnf("scheduled refresh failed: %s", errText)
		return
	}
	log.Infof("scheduled refresh produced %d matches in %v", len(matches), time.Since(startTime))

	if err := s.refresher.SaveSnapshot(ctx); err != nil {
		log.Errorf("failed to save snapshot after scheduled refresh: %v", err)
	}
}

func (s *RefreshScheduler) cleanOldAlerts() {
	expirationTime := time.Now().Add(-s.retention)
	rowsAffected, err := s.alerts.RemoveOlderThan(context.Background(), expirationTime)
	if err != nil {
		log.Errorf("failed to clean old alert records: %v", err)
	} else {
		log.Infof("old alert records were cleaned at %v, affected rows: %v", time.Now(), rowsAffected)
	}
}
