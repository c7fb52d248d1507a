package events

import "github.com/maxaizer/job-hunter/internal/domain/models"

const (
	JobsFetchedTopic        = "jobs:fetched"
	MatchesUpdatedTopic     = "matches:updated"
	ResumeChangedTopic      = "resume:changed"
	SavedJobsChangedTopic   = "saved:changed"
	AppliedJobsChangedTopic = "applied:changed"
	FiltersChangedTopic     = "filters:changed"
	AlertMatchTopic         = "alert:match"
)

type JobsFetched struct {
	Count       int
	SourceStats map[string]int
}

type MatchesUpdated struct {
	Matches []models.JobMatch
}

type ResumeChanged struct {
	ResumeID string
	Cleared  bool
}

// JobMarked is published for both saved and applied sets.
type JobMarked struct {
	JobID  string
	Marked bool
}

type FiltersChanged struct {
	Filters     models.JobFilter
	ActiveCount int
}

type AlertMatch struct {
	Search models.SavedSearch
	Match  models.JobMatch
}
