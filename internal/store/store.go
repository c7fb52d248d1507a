package store

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/maxaizer/job-hunter/internal/events"
	"github.com/maxaizer/job-hunter/internal/filtering"
	"github.com/maxaizer/job-hunter/internal/logger"
	"github.com/maxaizer/job-hunter/internal/scoring"
	"github.com/maxaizer/job-hunter/internal/services"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const (
	ResumeKey      = "job_hunter_resume"
	SavedJobsKey   = "job_hunter_saved_jobs"
	AppliedJobsKey = "job_hunter_applied_jobs"
	FiltersKey     = "job_hunter_filters"
	SnapshotKey    = "job_hunter_snapshot"

	topSourcesLimit = 10
)

var ErrInvalidFilter = errors.New("invalid filter")

type keyValueStore interface {
	Save(ctx context.Context, key string, data []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}

// Store is the single owner of client state. Every mutation goes through its methods and
// is written to the key-value store right after it is applied in memory.
type Store struct {
	kv     keyValueStore
	bus    EventBus.Bus
	engine *services.MatchEngine

	// writeMu orders each in-memory mutation together with its write, so the stored value of
	// a key is never older than a mutation that already returned.
	writeMu sync.Mutex

	mu          sync.RWMutex
	resume      *models.Resume
	filters     models.JobFilter
	sourceStats map[string]int
}

func New(kv keyValueStore, bus EventBus.Bus, fetcher services.JobFetcher, scorer scoring.Scorer) *Store {
	s := &Store{
		kv:          kv,
		bus:         bus,
		sourceStats: map[string]int{},
	}
	s.engine = services.NewMatchEngine(fetcher, scorer, s.Resume)
	return s
}

// Load restores persisted state. Missing keys mean defaults and unreadable values are logged
// and replaced by defaults, so Load never fails.
func (s *Store) Load(ctx context.Context) {
	// a failed decode may leave a half-filled value behind, so every failure resets to the default
	var resume *models.Resume
	if !s.load(ctx, ResumeKey, &resume) {
		resume = nil
	}

	saved, applied := models.NewIDSet(), models.NewIDSet()
	if !s.load(ctx, SavedJobsKey, &saved) {
		saved = models.NewIDSet()
	}
	if !s.load(ctx, AppliedJobsKey, &applied) {
		applied = models.NewIDSet()
	}

	filters := models.JobFilter{}
	if !s.load(ctx, FiltersKey, &filters) {
		filters = models.JobFilter{}
	} else if err := filters.Validate(); err != nil {
		persistenceError(FiltersKey, err)
		filters = models.JobFilter{}
	}

	s.mu.Lock()
	s.resume = resume
	s.filters = filters
	s.mu.Unlock()
	s.engine.RestoreMarks(saved.Items(), applied.Items())

	log.Debugf("client state loaded: resume=%v saved=%d applied=%d filters=%d",
		resume != nil, saved.Len(), applied.Len(), filters.ActiveCount())
}

func (s *Store) load(ctx context.Context, key string, target any) bool {
	data, err := s.kv.Load(ctx, key)
	if err != nil {
		persistenceError(key, err)
		return false
	}
	if data == nil {
		return false
	}
	if err = json.Unmarshal(data, target); err != nil {
		persistenceError(key, err)
		return false
	}
	return true
}

func (s *Store) save(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err == nil {
		err = s.kv.Save(ctx, key, data)
	}
	if err != nil {
		persistenceError(key, err)
		return &services.Failure{Kind: services.PersistenceFailure, Message: "Failed to save " + key, Cause: err}
	}
	return nil
}

func (s *Store) remove(ctx context.Context, key string) error {
	if err := s.kv.Remove(ctx, key); err != nil {
		persistenceError(key, err)
		return &services.Failure{Kind: services.PersistenceFailure, Message: "Failed to remove " + key, Cause: err}
	}
	return nil
}

func persistenceError(key string, err error) {
	log.WithField(logger.ErrorTypeField, logger.ErrorTypePersistence).Errorf("client state key %s: %v", key, err)
}

func (s *Store) Resume() *models.Resume {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.resume
}

// SetResume replaces the active resume; nil removes it without touching matches.
func (s *Store) SetResume(ctx context.Context, resume *models.Resume) error {
	s.writeMu.Lock()
	s.mu.Lock()
	s.resume = resume
	s.mu.Unlock()

	var err error
	event := events.ResumeChanged{Cleared: resume == nil}
	if resume == nil {
		err = s.remove(ctx, ResumeKey)
	} else {
		event.ResumeID = resume.ID
		err = s.save(ctx, ResumeKey, resume)
	}
	s.writeMu.Unlock()

	s.bus.Publish(events.ResumeChangedTopic, event)
	return err
}

// ClearResume removes the resume and the matches computed for it.
func (s *Store) ClearResume(ctx context.Context) error {
	err := s.SetResume(ctx, nil)
	s.engine.ClearMatches()
	s.bus.Publish(events.MatchesUpdatedTopic, events.MatchesUpdated{Matches: []models.JobMatch{}})
	return err
}

func (s *Store) FetchJobs(ctx context.Context, params services.FetchParams) services.FetchResult {
	result := s.engine.FetchJobs(ctx, params)
	if !result.Stale && s.engine.Failure() == nil {
		s.bus.Publish(events.JobsFetchedTopic, events.JobsFetched{Count: len(result.Jobs), SourceStats: result.SourceStats})
	}
	return result
}

func (s *Store) MatchJobs(ctx context.Context, jobs []models.Job) []models.JobMatch {
	result := s.engine.Match(ctx, jobs)
	if !result.Stale && s.engine.Failure() == nil {
		s.bus.Publish(events.MatchesUpdatedTopic, events.MatchesUpdated{Matches: result.Matches})
	}
	return result.Matches
}

// Refresh fetches jobs and, when any arrived, records per-source counts and matches exactly those jobs.
func (s *Store) Refresh(ctx context.Context, params services.FetchParams) []models.JobMatch {
	result := s.FetchJobs(ctx, params)
	if result.Stale || len(result.Jobs) == 0 {
		return []models.JobMatch{}
	}

	s.mu.Lock()
	s.sourceStats = result.SourceStats
	s.mu.Unlock()

	return s.MatchJobs(ctx, result.Jobs)
}

func (s *Store) ToggleSaveJob(ctx context.Context, jobID string) (bool, error) {
	s.writeMu.Lock()
	saved := s.engine.ToggleSaveJob(jobID)
	err := s.save(ctx, SavedJobsKey, models.NewIDSet(s.engine.SavedJobs()...))
	s.writeMu.Unlock()
	s.bus.Publish(events.SavedJobsChangedTopic, events.JobMarked{JobID: jobID, Marked: saved})
	return saved, err
}

// MarkAsApplied never unmarks; a repeated call changes nothing and writes nothing.
func (s *Store) MarkAsApplied(ctx context.Context, jobID string) error {
	s.writeMu.Lock()
	if !s.engine.MarkAsApplied(jobID) {
		s.writeMu.Unlock()
		return nil
	}
	err := s.save(ctx, AppliedJobsKey, models.NewIDSet(s.engine.AppliedJobs()...))
	s.writeMu.Unlock()
	s.bus.Publish(events.AppliedJobsChangedTopic, events.JobMarked{JobID: jobID, Marked: true})
	return err
}

// SetFilters replaces the filter wholesale. Invalid filters are rejected and leave state unchanged.
func (s *Store) SetFilters(ctx context.Context, filter models.JobFilter) error {
	if err := filter.Validate(); err != nil {
		return errors.Wrap(ErrInvalidFilter, err.Error())
	}

	s.writeMu.Lock()
	s.mu.Lock()
	s.filters = filter
	s.mu.Unlock()
	err := s.save(ctx, FiltersKey, filter)
	s.writeMu.Unlock()

	s.bus.Publish(events.FiltersChangedTopic, events.FiltersChanged{Filters: filter, ActiveCount: filter.ActiveCount()})
	return err
}

func (s *Store) ClearFilters(ctx context.Context) error {
	return s.SetFilters(ctx, models.JobFilter{})
}

func (s *Store) Filters() models.JobFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

func (s *Store) ActiveFilterCount() int {
	return filtering.ActiveCount(s.Filters())
}

// FilteredMatches is the visible subset of the current matches.
func (s *Store) FilteredMatches() []models.JobMatch {
	matches := s.engine.Matches()
	filtered, err := filtering.Apply(matches, s.Filters())
	if err != nil {
		log.Warnf("ignoring invalid filters: %v", err)
		return matches
	}
	return filtered
}

func (s *Store) Jobs() []models.Job {
	return s.engine.Jobs()
}

func (s *Store) Matches() []models.JobMatch {
	return s.engine.Matches()
}

func (s *Store) SavedJobs() []string {
	return s.engine.SavedJobs()
}

func (s *Store) AppliedJobs() []string {
	return s.engine.AppliedJobs()
}

func (s *Store) IsSaved(jobID string) bool {
	return s.engine.IsSaved(jobID)
}

func (s *Store) IsApplied(jobID string) bool {
	return s.engine.IsApplied(jobID)
}

func (s *Store) SourceStats() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Assign(s.sourceStats)
}

func (s *Store) Stats() services.DashboardStats {
	return services.ComputeDashboardStats(s.engine.Matches(), len(s.engine.SavedJobs()), len(s.engine.AppliedJobs()))
}

func (s *Store) TopSources() []services.SourceCount {
	return services.TopSources(s.SourceStats(), topSourcesLimit)
}

func (s *Store) IsLoading() bool {
	return s.engine.IsLoading()
}

func (s *Store) Err() string {
	return s.engine.Err()
}

func (s *Store) Failure() *services.Failure {
	return s.engine.Failure()
}
