package services

import (
	"context"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/maxaizer/job-hunter/internal/events"
	"github.com/maxaizer/job-hunter/internal/filtering"
	"github.com/maxaizer/job-hunter/internal/logger"
	"github.com/maxaizer/job-hunter/internal/metrics"
	log "github.com/sirupsen/logrus"
)

type alertSearchRepository interface {
	GetAlertEnabled(ctx context.Context) ([]models.SavedSearch, error)
}

type alertRepository interface {
	WasAlerted(ctx context.Context, searchID, jobID string) (bool, error)
	RecordAlerted(ctx context.Context, searchID, jobID string) error
}

// AlertService raises one alert per saved search and job the first time the job passes the search's filters.
type AlertService struct {
	bus      EventBus.Bus
	searches alertSearchRepository
	alerts   alertRepository
}

func NewAlertService(bus EventBus.Bus, searches alertSearchRepository, alerts alertRepository) *AlertService {
	return &AlertService{bus: bus, searches: searches, alerts: alerts}
}

// Listen evaluates every published match list in the background.
func (a *AlertService) Listen() error {
	return a.bus.SubscribeAsync(events.MatchesUpdatedTopic, a.onMatchesUpdated, true)
}

func (a *AlertService) Stop() error {
	return a.bus.Unsubscribe(events.MatchesUpdatedTopic, a.onMatchesUpdated)
}

func (a *AlertService) onMatchesUpdated(event events.MatchesUpdated) {
	if _, err := a.Evaluate(context.Background(), event.Matches); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypePersistence).Errorf("alert evaluation failed: %v", err)
	}
}

// Evaluate returns the number of alerts published.
func (a *AlertService) Evaluate(ctx context.Context, matches []models.JobMatch) (int, error) {
	if len(matches) == 0 {
		return 0, nil
	}

	searches, err := a.searches.GetAlertEnabled(ctx)
	if err != nil {
		return 0, err
	}

	raised := 0
	for _, search := range searches {
		filtered, err := filtering.Apply(matches, search.Filters)
		if err != nil {
			log.Warnf("skipping saved search %s with invalid filters: %v", search.ID, err)
			continue
		}

		for _, match := range filtered {
			alerted, err := a.alerts.WasAlerted(ctx, search.ID, match.Job.ID)
			if err != nil {
				return raised, err
			}
			if alerted {
				continue
			}
			if err = a.alerts.RecordAlerted(ctx, search.ID, match.Job.ID); err != nil {
				return raised, err
			}

			a.bus.Publish(events.AlertMatchTopic, events.AlertMatch{Search: search, Match: match})
			metrics.AlertsCounter.Inc()
			raised++
		}
	}

	if raised > 0 {
		log.Infof("raised %d alerts for %d saved searches", raised, len(searches))
	}
	return raised, nil
}
