package filtering

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/samber/lo"
)

// Step describes how many matches a single constraint removed.
type Step struct {
	Name    string
	Initial int
	Dropped int
	Left    int
}

type predicate struct {
	name string
	keep func(models.JobMatch) bool
}

// Apply returns the matches that satisfy every set constraint of the filter, in their original order.
// The input slice is never modified.
func Apply(matches []models.JobMatch, filter models.JobFilter) ([]models.JobMatch, error) {
	return ApplyAt(matches, filter, time.Now())
}

// ApplyAt is Apply with an explicit reference time for recency buckets.
func ApplyAt(matches []models.JobMatch, filter models.JobFilter, now time.Time) ([]models.JobMatch, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	predicates := build(filter, now)
	if len(predicates) == 0 {
		return slices.Clone(matches), nil
	}

	return lo.Filter(matches, func(match models.JobMatch, _ int) bool {
		for _, p := range predicates {
			if !p.keep(match) {
				return false
			}
		}
		return true
	}), nil
}

// Explain runs the set constraints one after another and reports what each of them dropped.
func Explain(matches []models.JobMatch, filter models.JobFilter, now time.Time) ([]Step, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	steps := make([]Step, 0)
	left := matches
	for _, p := range build(filter, now) {
		next := lo.Filter(left, func(match models.JobMatch, _ int) bool { return p.keep(match) })
		steps = append(steps, Step{
			Name:    p.name,
			Initial: len(left),
			Dropped: len(left) - len(next),
			Left:    len(next),
		})
		left = next
	}
	return steps, nil
}

// ActiveCount is the number of set filter fields.
func ActiveCount(filter models.JobFilter) int {
	return filter.ActiveCount()
}

func build(filter models.JobFilter, now time.Time) []predicate {
	var predicates []predicate

	if filter.Keywords != "" {
		keywords := strings.ToLower(filter.Keywords)
		predicates = append(predicates, predicate{"keywords", func(m models.JobMatch) bool {
			return strings.Contains(m.Job.SearchText(), keywords)
		}})
	}

	if filter.Title != "" {
		title := strings.ToLower(filter.Title)
		predicates = append(predicates, predicate{"title", func(m models.JobMatch) bool {
			return strings.Contains(strings.ToLower(m.Job.Title), title)
		}})
	}

	if filter.Location != "" {
		location := strings.ToLower(filter.Location)
		predicates = append(predicates, predicate{"location", func(m models.JobMatch) bool {
			return strings.Contains(strings.ToLower(m.Job.Location), location)
		}})
	}

	if len(filter.WorkType) > 0 {
		predicates = append(predicates, predicate{"work_type", func(m models.JobMatch) bool {
			return slices.Contains(filter.WorkType, m.Job.WorkType)
		}})
	}

	if len(filter.JobType) > 0 {
		predicates = append(predicates, predicate{"job_type", func(m models.JobMatch) bool {
			return slices.Contains(filter.JobType, m.Job.JobType)
		}})
	}

	if len(filter.Seniority) > 0 {
		predicates = append(predicates, predicate{"seniority", func(m models.JobMatch) bool {
			return slices.Contains(filter.Seniority, m.Job.Seniority)
		}})
	}

	if len(filter.Sources) > 0 {
		predicates = append(predicates, predicate{"sources", func(m models.JobMatch) bool {
			return slices.Contains(filter.Sources, m.Job.Source)
		}})
	}

	if filter.MinMatchScore != nil {
		minScore := *filter.MinMatchScore
		predicates = append(predicates, predicate{"min_match_score", func(m models.JobMatch) bool {
			return m.OverallScore >= minScore
		}})
	}

	if filter.SalaryMin != nil {
		salaryMin := *filter.SalaryMin
		predicates = append(predicates, predicate{"salary_min", func(m models.JobMatch) bool {
			return m.Job.SalaryMax == nil || *m.Job.SalaryMax >= salaryMin
		}})
	}

	if filter.SalaryMax != nil {
		salaryMax := *filter.SalaryMax
		predicates = append(predicates, predicate{"salary_max", func(m models.JobMatch) bool {
			return m.Job.SalaryMin == nil || *m.Job.SalaryMin <= salaryMax
		}})
	}

	if window, ok := filter.PostedWithin.Window(); ok {
		predicates = append(predicates, predicate{fmt.Sprintf("posted_within_%s", filter.PostedWithin),
			func(m models.JobMatch) bool { return postedWithin(m.Job.PostedDate, window, now) }})
	}

	return predicates
}

// Jobs without a known posting time never satisfy a bounded recency bucket.
func postedWithin(posted models.PostedTime, window time.Duration, now time.Time) bool {
	if !posted.Known() {
		return false
	}
	age := now.Sub(posted.Time)
	if age < 0 {
		age = 0
	}
	return age <= window
}
