package models

import (
	"time"

	"github.com/google/uuid"
)

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

type Education struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	GraduationDate string `json:"graduation_date,omitempty"`
	GPA            string `json:"gpa,omitempty"`
}

// ResumeFields is what the parse collaborator extracts from raw text.
type ResumeFields struct {
	Name           string       `json:"name"`
	Email          string       `json:"email,omitempty"`
	Phone          string       `json:"phone,omitempty"`
	Location       string       `json:"location,omitempty"`
	Summary        string       `json:"summary,omitempty"`
	Skills         []string     `json:"skills"`
	Experience     []Experience `json:"experience"`
	Education      []Education  `json:"education"`
	Certifications []string     `json:"certifications,omitempty"`
	Languages      []string     `json:"languages,omitempty"`
	Keywords       []string     `json:"keywords,omitempty"`
}

type Resume struct {
	ID string `json:"id"`
	ResumeFields
	RawText   string    `json:"rawText"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewResume(fields ResumeFields, rawText string) Resume {
	return Resume{
		ID:           uuid.NewString(),
		ResumeFields: fields,
		RawText:      rawText,
		CreatedAt:    time.Now().UTC(),
	}
}
