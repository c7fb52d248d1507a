package models

import (
	"encoding/json"
	"strings"
	"time"
)

type WorkType string

const (
	Remote WorkType = "remote"
	Hybrid WorkType = "hybrid"
	Onsite WorkType = "onsite"
)

type JobType string

const (
	FullTime   JobType = "full_time"
	PartTime   JobType = "part_time"
	Contract   JobType = "contract"
	Internship JobType = "internship"
	Temporary  JobType = "temporary"
)

type Seniority string

const (
	Entry     Seniority = "entry"
	Mid       Seniority = "mid"
	Senior    Seniority = "senior"
	Lead      Seniority = "lead"
	Executive Seniority = "executive"
)

type Job struct {
	ID             string     `json:"id" validate:"required"`
	ExternalID     string     `json:"external_id,omitempty"`
	Source         string     `json:"source" validate:"required"`
	Title          string     `json:"title"`
	Company        string     `json:"company"`
	CompanyLogo    string     `json:"company_logo,omitempty"`
	Location       string     `json:"location"`
	WorkType       WorkType   `json:"work_type"`
	JobType        JobType    `json:"job_type"`
	Seniority      Seniority  `json:"seniority"`
	SalaryMin      *float64   `json:"salary_min,omitempty"`
	SalaryMax      *float64   `json:"salary_max,omitempty"`
	SalaryCurrency string     `json:"salary_currency,omitempty"`
	Description    string     `json:"description"`
	Requirements   []string   `json:"requirements,omitempty"`
	Benefits       []string   `json:"benefits,omitempty"`
	SkillsRequired []string   `json:"skills_required"`
	PostedDate     PostedTime `json:"posted_date"`
	ApplicationURL string     `json:"application_url,omitempty"`
	IsActive       bool       `json:"is_active"`
}

// SearchText is the lowercase haystack used by keyword filters.
func (j Job) SearchText() string {
	return strings.ToLower(j.Title + " " + j.Company + " " + j.Description + " " + strings.Join(j.SkillsRequired, " "))
}

var postedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// PostedTime keeps the zero value when the source sent nothing usable.
type PostedTime struct {
	time.Time
}

func NewPostedTime(t time.Time) PostedTime {
	return PostedTime{Time: t}
}

func (pt *PostedTime) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		// numbers, nulls and objects all end up as "unknown"
		pt.Time = time.Time{}
		return nil
	}

	str = strings.TrimSpace(str)
	for _, layout := range postedLayouts {
		if t, err := time.Parse(layout, str); err == nil {
			pt.Time = t
			return nil
		}
	}

	pt.Time = time.Time{}
	return nil
}

func (pt PostedTime) MarshalJSON() ([]byte, error) {
	if pt.IsZero() {
		return []byte(`""`), nil
	}
	return json.Marshal(pt.Time.Format(time.RFC3339))
}

// Known reports whether the posting time could be determined.
func (pt PostedTime) Known() bool {
	return !pt.IsZero()
}
