package scoring

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/samber/lo"
)

const (
	defaultSkillsWeight = 0.6
	maxKeywordMatches   = 10
)

// KeywordScorer scores jobs locally from skill overlap and shared vocabulary between
// the resume's experience and the posting.
type KeywordScorer struct {
	skillsWeight float64
}

func NewKeywordScorer() *KeywordScorer {
	return &KeywordScorer{skillsWeight: defaultSkillsWeight}
}

type resumeProfile struct {
	skills      map[string]struct{}
	tokens      map[string]struct{}
	experiences []experienceProfile
}

type experienceProfile struct {
	label  string
	tokens map[string]struct{}
}

func (s *KeywordScorer) Score(ctx context.Context, resume *models.Resume, jobs []models.Job) ([]models.JobMatch, error) {
	if resume == nil {
		return nil, ErrNoResume
	}

	profile := buildProfile(resume)
	matches := make([]models.JobMatch, 0, len(jobs))
	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		matches = append(matches, s.scoreJob(profile, job))
	}
	return matches, nil
}

func buildProfile(resume *models.Resume) resumeProfile {
	texts := []string{resume.Summary, strings.Join(resume.Skills, " "), strings.Join(resume.Keywords, " ")}
	experiences := make([]experienceProfile, 0, len(resume.Experience))
	for _, exp := range resume.Experience {
		texts = append(texts, exp.Title, exp.Description)
		label := exp.Title
		if exp.Company != "" {
			label += " at " + exp.Company
		}
		experiences = append(experiences, experienceProfile{
			label:  label,
			tokens: tokenSet(keywords(exp.Title, exp.Description)),
		})
	}

	return resumeProfile{
		skills:      skillSet(resume.Skills, resume.Keywords),
		tokens:      tokenSet(keywords(texts...)),
		experiences: experiences,
	}
}

func (s *KeywordScorer) scoreJob(profile resumeProfile, job models.Job) models.JobMatch {
	matched, missing := partitionSkills(job.SkillsRequired, profile.skills)

	description := plainText(job.Description)
	titleTokens := keywords(job.Title)
	jobTokens := keywords(append([]string{job.Title, description}, job.Requirements...)...)

	keywordMatches := overlap(jobTokens, profile.tokens)
	sort.Strings(keywordMatches)
	if len(keywordMatches) > maxKeywordMatches {
		keywordMatches = keywordMatches[:maxKeywordMatches]
	}

	titleCoverage := ratio(len(overlap(titleTokens, profile.tokens)), len(titleTokens))
	keywordCoverage := ratio(len(overlap(jobTokens, profile.tokens)), min(len(jobTokens), maxKeywordMatches))
	experienceScore := percent(0.5*titleCoverage + 0.5*math.Min(keywordCoverage, 1))

	var skillsScore, overall int
	if len(matched)+len(missing) > 0 {
		skillsScore = percent(ratio(len(matched), len(matched)+len(missing)))
		overall = percent((s.skillsWeight*float64(skillsScore) + (1-s.skillsWeight)*float64(experienceScore)) / 100)
	} else {
		overall = experienceScore
	}

	match := models.JobMatch{
		Job:               job,
		OverallScore:      clampScore(overall),
		SkillsScore:       clampScore(skillsScore),
		ExperienceScore:   clampScore(experienceScore),
		MatchedSkills:     matched,
		MissingSkills:     missing,
		ExperienceMatches: experienceMatches(profile, job),
		KeywordMatches:    keywordMatches,
	}
	match.Recommendation = recommend(match)
	return match
}

func experienceMatches(profile resumeProfile, job models.Job) []models.ExperienceMatch {
	if len(profile.experiences) == 0 {
		return nil
	}

	requirements := job.Requirements
	if len(requirements) == 0 {
		requirements = []string{job.Title}
	}

	result := make([]models.ExperienceMatch, 0, len(requirements))
	for _, requirement := range requirements {
		reqTokens := keywords(requirement)
		if len(reqTokens) == 0 {
			continue
		}
		best := lo.MaxBy(profile.experiences, func(a, b experienceProfile) bool {
			return len(overlap(reqTokens, a.tokens)) > len(overlap(reqTokens, b.tokens))
		})
		result = append(result, models.ExperienceMatch{
			JobRequirement:   requirement,
			ResumeExperience: best.label,
			Relevance:        relevance(ratio(len(overlap(reqTokens, best.tokens)), len(reqTokens))),
		})
	}
	return result
}

func relevance(coverage float64) models.Relevance {
	switch {
	case coverage >= 0.5:
		return models.RelevanceHigh
	case coverage >= 0.2:
		return models.RelevanceMedium
	default:
		return models.RelevanceLow
	}
}

func recommend(match models.JobMatch) string {
	var advice string
	switch match.Label() {
	case models.LabelExcellent:
		advice = "Excellent fit, apply soon."
	case models.LabelGood:
		advice = "Good fit, tailor your resume to the posting."
	case models.LabelFair:
		advice = "Partial fit, highlight transferable experience."
	default:
		advice = "Weak fit for your current profile."
	}

	if len(match.MissingSkills) > 0 {
		shown := match.MissingSkills
		if len(shown) > 3 {
			shown = shown[:3]
		}
		advice += fmt.Sprintf(" Missing: %s.", strings.Join(shown, ", "))
	}
	return advice
}

func ratio(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total)
}

func percent(fraction float64) int {
	return int(math.Round(fraction * 100))
}
