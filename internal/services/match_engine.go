package services

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/maxaizer/job-hunter/internal/clients/functions"
	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/maxaizer/job-hunter/internal/logger"
	"github.com/maxaizer/job-hunter/internal/metrics"
	"github.com/maxaizer/job-hunter/internal/scoring"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultFetchLimit = 200

	noResumeMessage = "No resume uploaded"
)

type JobFetcher interface {
	FetchJobs(ctx context.Context, request functions.FetchRequest) (*functions.FetchResponse, error)
}

// ResumeProvider returns the active resume or nil.
type ResumeProvider func() *models.Resume

type FetchParams struct {
	Query   string
	Sources []string
	// Limit of zero means DefaultFetchLimit.
	Limit int
}

func (p FetchParams) key() string {
	sources := slices.Clone(p.Sources)
	slices.Sort(sources)
	return p.Query + "|" + strings.Join(sources, ",") + "|" + strconv.Itoa(p.Limit)
}

type FetchResult struct {
	Jobs        []models.Job
	SourceStats map[string]int
	// Stale is set when a newer fetch started before this one finished, so Jobs were not kept.
	Stale bool
}

// MatchEngine owns the job list, the match list and the saved/applied sets.
// Overlapping fetches and matches may run concurrently; a result only becomes the current
// state if no newer call of the same operation started meanwhile. A match additionally
// loses to any fetch committed after it started, so matches never describe an older job list.
type MatchEngine struct {
	fetcher JobFetcher
	scorer  scoring.Scorer
	resume  ResumeProvider
	group   singleflight.Group

	mu             sync.RWMutex
	jobs           []models.Job
	matches        []models.JobMatch
	saved          models.IDSet
	applied        models.IDSet
	failure        *Failure
	inFlight       int
	fetchGen       uint64
	matchGen       uint64
	fetchCommitSeq uint64
}

func NewMatchEngine(fetcher JobFetcher, scorer scoring.Scorer, resume ResumeProvider) *MatchEngine {
	return &MatchEngine{
		fetcher: fetcher,
		scorer:  scorer,
		resume:  resume,
		jobs:    []models.Job{},
		matches: []models.JobMatch{},
		saved:   models.NewIDSet(),
		applied: models.NewIDSet(),
	}
}

// FetchJobs never returns an error: on failure Err() is set and the result is empty.
func (e *MatchEngine) FetchJobs(ctx context.Context, params FetchParams) FetchResult {
	if params.Limit <= 0 {
		params.Limit = DefaultFetchLimit
	}

	e.mu.Lock()
	e.fetchGen++
	gen := e.fetchGen
	e.begin()
	e.mu.Unlock()

	startTime := time.Now()
	value, err, shared := e.group.Do(params.key(), func() (any, error) {
		return e.fetcher.FetchJobs(ctx, functions.FetchRequest{
			Query:   params.Query,
			Sources: params.Sources,
			Limit:   params.Limit,
		})
	})

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.end()

	current := gen == e.fetchGen
	if err != nil {
		metrics.OperationDuration.WithLabelValues("fetch", "error").Observe(time.Since(startTime).Seconds())
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeFetch).Errorf("failed to fetch jobs: %v", err)
		if current {
			e.failure = newFailure(FetchFailure, fmt.Sprintf("Failed to fetch jobs: %v", err), err)
		}
		return FetchResult{Jobs: []models.Job{}, SourceStats: map[string]int{}, Stale: !current}
	}

	response := value.(*functions.FetchResponse)
	result := FetchResult{Jobs: slices.Clone(response.Jobs), SourceStats: lo.Assign(response.SourceStats)}
	metrics.OperationDuration.WithLabelValues("fetch", "ok").Observe(time.Since(startTime).Seconds())
	if !shared {
		metrics.FetchedJobsCounter.Add(float64(len(result.Jobs)))
	}

	if !current {
		metrics.StaleResultsCounter.WithLabelValues("fetch").Inc()
		log.Infof("discarding stale fetch result of %d jobs", len(result.Jobs))
		result.Stale = true
		return result
	}

	e.jobs = slices.Clone(result.Jobs)
	e.fetchCommitSeq++
	log.Infof("fetched %d jobs from %d sources", len(result.Jobs), len(result.SourceStats))
	return result
}

type MatchResult struct {
	Matches []models.JobMatch
	// Stale is set when a newer match or a fetch overtook this call, so Matches were not kept.
	Stale bool
}

// MatchJobs scores jobs against the active resume. A nil jobs argument means the current job list.
// Like FetchJobs it reports failures through Err() and an empty result.
func (e *MatchEngine) MatchJobs(ctx context.Context, jobs []models.Job) []models.JobMatch {
	return e.Match(ctx, jobs).Matches
}

// Match is MatchJobs that also tells whether the result was kept.
func (e *MatchEngine) Match(ctx context.Context, jobs []models.Job) MatchResult {
	e.mu.Lock()
	e.matchGen++
	gen := e.matchGen
	fetchSeq := e.fetchCommitSeq
	if jobs == nil {
		jobs = slices.Clone(e.jobs)
	}
	e.begin()
	e.mu.Unlock()

	resume := e.resume()
	if resume == nil {
		e.mu.Lock()
		defer e.mu.Unlock()
		defer e.end()
		if gen == e.matchGen {
			e.failure = newFailure(ScoringFailure, noResumeMessage, scoring.ErrNoResume)
		}
		return MatchResult{Matches: []models.JobMatch{}, Stale: gen != e.matchGen}
	}

	startTime := time.Now()
	var (
		matches []models.JobMatch
		err     error
	)
	if len(jobs) > 0 {
		matches, err = e.scorer.Score(ctx, resume, jobs)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	defer e.end()

	current := gen == e.matchGen && fetchSeq == e.fetchCommitSeq
	if err != nil {
		metrics.OperationDuration.WithLabelValues("match", "error").Observe(time.Since(startTime).Seconds())
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeScoring).Errorf("failed to match jobs: %v", err)
		if current {
			e.failure = newFailure(ScoringFailure, fmt.Sprintf("Failed to match jobs: %v", err), err)
		}
		return MatchResult{Matches: []models.JobMatch{}, Stale: !current}
	}

	matches = acceptMatches(jobs, matches)
	metrics.OperationDuration.WithLabelValues("match", "ok").Observe(time.Since(startTime).Seconds())
	metrics.ScoredJobsCounter.Add(float64(len(matches)))

	if !current {
		metrics.StaleResultsCounter.WithLabelValues("match").Inc()
		log.Infof("discarding stale match result of %d matches", len(matches))
		return MatchResult{Matches: matches, Stale: true}
	}

	e.matches = slices.Clone(matches)
	log.Infof("matched %d of %d jobs", len(matches), len(jobs))
	return MatchResult{Matches: matches}
}

// acceptMatches drops matches for jobs that were not requested, repeated matches for the same
// job and matches with out-of-range scores. Accepted matches carry the requested job, and
// experience annotations with an unknown relevance are dropped without rejecting the match.
func acceptMatches(jobs []models.Job, matches []models.JobMatch) []models.JobMatch {
	requested := lo.KeyBy(jobs, func(job models.Job) string { return job.ID })

	seen := make(map[string]struct{}, len(matches))
	accepted := make([]models.JobMatch, 0, len(matches))
	for _, match := range matches {
		id := match.Job.ID
		job, ok := requested[id]
		if !ok {
			rejectMatch(id, "unknown_job", nil)
			continue
		}
		if _, ok = seen[id]; ok {
			rejectMatch(id, "duplicate", nil)
			continue
		}

		match.Job = job
		match.ExperienceMatches = validAnnotations(id, match.ExperienceMatches)
		if err := match.Validate(); err != nil {
			rejectMatch(id, "invalid", err)
			continue
		}
		seen[id] = struct{}{}
		accepted = append(accepted, match)
	}
	return accepted
}

func validAnnotations(jobID string, annotations []models.ExperienceMatch) []models.ExperienceMatch {
	if annotations == nil {
		return nil
	}
	return lo.FilterMap(annotations, func(em models.ExperienceMatch, _ int) (models.ExperienceMatch, bool) {
		relevance, ok := models.ParseRelevance(string(em.Relevance))
		if !ok {
			log.WithField("job_id", jobID).Debugf("ignoring experience match with relevance %q", em.Relevance)
			return em, false
		}
		em.Relevance = relevance
		return em, true
	})
}

func rejectMatch(jobID, reason string, err error) {
	metrics.RejectedMatchesCounter.WithLabelValues(reason).Inc()
	entry := log.WithFields(log.Fields{"job_id": jobID, "reason": reason})
	if err != nil {
		entry = entry.WithError(err)
	}
	entry.Warn("dropping match returned by scorer")
}

// ClearMatches empties the match list, e.g. after the resume is removed.
func (e *MatchEngine) ClearMatches() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.matchGen++
	e.matches = []models.JobMatch{}
}

// ToggleSaveJob flips saved membership and reports whether the job is saved now.
func (e *MatchEngine) ToggleSaveJob(jobID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saved.Toggle(jobID)
}

// MarkAsApplied reports whether the set changed; marking twice is a no-op.
func (e *MatchEngine) MarkAsApplied(jobID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.applied.Add(jobID)
}

// RestoreMarks replaces both sets, used when loading persisted state.
func (e *MatchEngine) RestoreMarks(saved, applied []string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.saved = models.NewIDSet(saved...)
	e.applied = models.NewIDSet(applied...)
}

func (e *MatchEngine) SavedJobs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.saved.Items()
}

func (e *MatchEngine) AppliedJobs() []string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.applied.Items()
}

func (e *MatchEngine) IsSaved(jobID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.saved.Contains(jobID)
}

func (e *MatchEngine) IsApplied(jobID string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.applied.Contains(jobID)
}

func (e *MatchEngine) Jobs() []models.Job {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.jobs)
}

func (e *MatchEngine) Matches() []models.JobMatch {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return slices.Clone(e.matches)
}

func (e *MatchEngine) IsLoading() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.inFlight > 0
}

// Err is the user-visible error of the latest operation, or "".
func (e *MatchEngine) Err() string {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.failure == nil {
		return ""
	}
	return e.failure.Message
}

// Failure returns the typed error state, or nil.
func (e *MatchEngine) Failure() *Failure {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.failure
}

// Restore puts back a previously captured job and match list without running any operation.
func (e *MatchEngine) Restore(jobs []models.Job, matches []models.JobMatch) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.jobs = slices.Clone(jobs)
	e.matches = slices.Clone(matches)
	if e.jobs == nil {
		e.jobs = []models.Job{}
	}
	if e.matches == nil {
		e.matches = []models.JobMatch{}
	}
}

// begin and end must be called with mu held.
func (e *MatchEngine) begin() {
	e.inFlight++
	e.failure = nil
}

func (e *MatchEngine) end() {
	e.inFlight--
}
