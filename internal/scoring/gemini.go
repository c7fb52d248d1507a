package scoring

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
)

const (
	geminiBatchSize       = 15
	maxPromptDescription  = 1200
	GeminiRoleInstruction = "You are a recruiter who compares a candidate resume with job postings " +
		"and answers only with JSON."
)

type generator interface {
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

// GeminiScorer asks a Gemini model to rate jobs in batches.
type GeminiScorer struct {
	generator generator
}

func NewGeminiScorer(generator generator) *GeminiScorer {
	return &GeminiScorer{generator: generator}
}

type promptJob struct {
	ID           string   `json:"job_id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Seniority    string   `json:"seniority,omitempty"`
	Skills       []string `json:"skills_required"`
	Requirements []string `json:"requirements,omitempty"`
	Description  string   `json:"description"`
}

type rating struct {
	JobID           string   `json:"job_id"`
	OverallScore    any      `json:"overall_score"`
	SkillsScore     any      `json:"skills_score"`
	ExperienceScore any      `json:"experience_score"`
	MatchedSkills   []string `json:"matched_skills"`
	Recommendation  string   `json:"recommendation"`
}

func (s *GeminiScorer) Score(ctx context.Context, resume *models.Resume, jobs []models.Job) ([]models.JobMatch, error) {
	if resume == nil {
		return nil, ErrNoResume
	}

	resumeJSON, err := json.Marshal(resume.ResumeFields)
	if err != nil {
		return nil, errors.Wrap(err, "can't encode resume")
	}

	matches := make([]models.JobMatch, 0, len(jobs))
	for _, batch := range lo.Chunk(jobs, geminiBatchSize) {
		prompt, err := buildPrompt(string(resumeJSON), batch)
		if err != nil {
			return nil, err
		}

		raw, err := s.generator.GenerateResponse(ctx, prompt)
		if err != nil {
			return nil, errors.Wrap(err, "gemini scoring failed")
		}

		ratings, err := parseRatings(raw)
		if err != nil {
			return nil, err
		}
		matches = append(matches, toMatches(batch, ratings)...)
	}
	return matches, nil
}

func buildPrompt(resumeJSON string, jobs []models.Job) (string, error) {
	payload := lo.Map(jobs, func(job models.Job, _ int) promptJob {
		description := truncate(plainText(job.Description), maxPromptDescription)
		return promptJob{
			ID:           job.ID,
			Title:        job.Title,
			Company:      job.Company,
			Seniority:    string(job.Seniority),
			Skills:       job.SkillsRequired,
			Requirements: job.Requirements,
			Description:  description,
		}
	})
	jobsJSON, err := json.Marshal(payload)
	if err != nil {
		return "", errors.Wrap(err, "can't encode jobs")
	}

	return "Resume:\n" + resumeJSON + "\n\nJobs:\n" + string(jobsJSON) + "\n\n" +
		"Rate how well the resume fits each job. Answer with a JSON array containing one object per job: " +
		`{"job_id": string, "overall_score": 0-100, "skills_score": 0-100, "experience_score": 0-100, ` +
		`"matched_skills": [skills from skills_required the candidate has], "recommendation": one sentence}.` +
		" Use only job_id values from the list.", nil
}

func parseRatings(raw string) ([]rating, error) {
	cleaned := extractJSON(raw)

	var ratings []rating
	if err := json.Unmarshal([]byte(cleaned), &ratings); err != nil {
		var wrapped struct {
			Matches []rating `json:"matches"`
		}
		if wrappedErr := json.Unmarshal([]byte(cleaned), &wrapped); wrappedErr != nil || wrapped.Matches == nil {
			return nil, fmt.Errorf("parse gemini response: %w", err)
		}
		ratings = wrapped.Matches
	}
	return ratings, nil
}

func toMatches(jobs []models.Job, ratings []rating) []models.JobMatch {
	byID := lo.KeyBy(jobs, func(job models.Job) string { return job.ID })
	seen := make(map[string]struct{})

	matches := make([]models.JobMatch, 0, len(ratings))
	for _, r := range ratings {
		job, ok := byID[r.JobID]
		if !ok {
			log.Warnf("gemini rated unknown job %q, ignoring", r.JobID)
			continue
		}
		if _, dup := seen[r.JobID]; dup {
			continue
		}
		seen[r.JobID] = struct{}{}

		matched, missing := partitionSkills(job.SkillsRequired, skillSet(r.MatchedSkills))
		matches = append(matches, models.JobMatch{
			Job:             job,
			OverallScore:    coerceScore(r.OverallScore),
			SkillsScore:     coerceScore(r.SkillsScore),
			ExperienceScore: coerceScore(r.ExperienceScore),
			MatchedSkills:   matched,
			MissingSkills:   missing,
			Recommendation:  strings.TrimSpace(r.Recommendation),
		})
	}
	return matches
}

func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}

func coerceScore(v any) int {
	var f float64
	switch val := v.(type) {
	case float64:
		f = val
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(val), "%"), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	if math.IsNaN(f) {
		return 0
	}
	return clampScore(int(math.Round(f)))
}
