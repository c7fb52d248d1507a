package models

import (
	"fmt"
	"time"
)

type RecencyBucket string

const (
	Last3Hours  RecencyBucket = "3h"
	Last24Hours RecencyBucket = "24h"
	Last7Days   RecencyBucket = "7d"
	Last30Days  RecencyBucket = "30d"
	AllTime     RecencyBucket = "all"
)

var recencyWindows = map[RecencyBucket]time.Duration{
	Last3Hours:  3 * time.Hour,
	Last24Hours: 24 * time.Hour,
	Last7Days:   168 * time.Hour,
	Last30Days:  720 * time.Hour,
}

// Window returns the maximum posting age for the bucket; ok is false for "all" and unknown buckets.
func (b RecencyBucket) Window() (window time.Duration, ok bool) {
	window, ok = recencyWindows[b]
	return
}

// JobFilter is a sparse set of constraints. A nil pointer, empty string or empty slice leaves
// that dimension unconstrained.
type JobFilter struct {
	Keywords      string        `json:"keywords,omitempty"`
	Title         string        `json:"title,omitempty"`
	Location      string        `json:"location,omitempty"`
	WorkType      []WorkType    `json:"work_type,omitempty" validate:"omitempty,dive,oneof=remote hybrid onsite"`
	JobType       []JobType     `json:"job_type,omitempty" validate:"omitempty,dive,oneof=full_time part_time contract internship temporary"`
	Seniority     []Seniority   `json:"seniority,omitempty" validate:"omitempty,dive,oneof=entry mid senior lead executive"`
	SalaryMin     *float64      `json:"salary_min,omitempty" validate:"omitempty,gte=0"`
	SalaryMax     *float64      `json:"salary_max,omitempty" validate:"omitempty,gte=0"`
	Sources       []string      `json:"sources,omitempty" validate:"omitempty,dive,required"`
	PostedWithin  RecencyBucket `json:"posted_within,omitempty" validate:"omitempty,oneof=3h 24h 7d 30d all"`
	MinMatchScore *int          `json:"min_match_score,omitempty" validate:"omitempty,gte=0,lte=100"`
}

func (f JobFilter) Validate() error {
	if err := validate.Struct(f); err != nil {
		return fmt.Errorf("invalid filter: %w", err)
	}
	if f.SalaryMin != nil && f.SalaryMax != nil && *f.SalaryMin > *f.SalaryMax {
		return fmt.Errorf("invalid filter: salary_min %v is greater than salary_max %v", *f.SalaryMin, *f.SalaryMax)
	}
	return nil
}

// ActiveCount is the number of fields that are set. Used for the filter badge only.
func (f JobFilter) ActiveCount() int {
	count := 0
	for _, set := range []bool{
		f.Keywords != "",
		f.Title != "",
		f.Location != "",
		len(f.WorkType) > 0,
		len(f.JobType) > 0,
		len(f.Seniority) > 0,
		f.SalaryMin != nil,
		f.SalaryMax != nil,
		len(f.Sources) > 0,
		f.PostedWithin != "",
		f.MinMatchScore != nil,
	} {
		if set {
			count++
		}
	}
	return count
}

func (f JobFilter) IsEmpty() bool {
	return f.ActiveCount() == 0
}
