package models

type Relevance string

const (
	RelevanceHigh   Relevance = "High"
	RelevanceMedium Relevance = "Medium"
	RelevanceLow    Relevance = "Low"
)

type ExperienceMatch struct {
	JobRequirement   string    `json:"job_requirement"`
	ResumeExperience string    `json:"resume_experience"`
	Relevance        Relevance `json:"relevance" validate:"oneof=High Medium Low"`
}

type JobMatch struct {
	Job               Job               `json:"job"`
	OverallScore      int               `json:"overall_score" validate:"gte=0,lte=100"`
	SkillsScore       int               `json:"skills_score" validate:"gte=0,lte=100"`
	ExperienceScore   int               `json:"experience_score" validate:"gte=0,lte=100"`
	MatchedSkills     []string          `json:"matched_skills"`
	MissingSkills     []string          `json:"missing_skills"`
	ExperienceMatches []ExperienceMatch `json:"experience_matches,omitempty" validate:"dive"`
	KeywordMatches    []string          `json:"keyword_matches,omitempty"`
	Recommendation    string            `json:"recommendation,omitempty"`
}

type ScoreLabel string

const (
	LabelExcellent ScoreLabel = "Excellent"
	LabelGood      ScoreLabel = "Good"
	LabelFair      ScoreLabel = "Fair"
	LabelLow       ScoreLabel = "Low"
)

func LabelFor(score int) ScoreLabel {
	switch {
	case score >= 80:
		return LabelExcellent
	case score >= 60:
		return LabelGood
	case score >= 40:
		return LabelFair
	default:
		return LabelLow
	}
}

func (m JobMatch) Label() ScoreLabel {
	return LabelFor(m.OverallScore)
}
