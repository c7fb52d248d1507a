package scoring

import (
	"context"
	"strings"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

var ErrNoResume = errors.New("no resume uploaded")

// Scorer pairs a resume with jobs. Implementations return at most one match per input job
// and never a match for a job that was not passed in.
type Scorer interface {
	Score(ctx context.Context, resume *models.Resume, jobs []models.Job) ([]models.JobMatch, error)
}

var skillAliases = map[string]string{
	"golang":              "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"reactjs":             "react",
	"react.js":            "react",
	"node":                "node.js",
	"nodejs":              "node.js",
	"postgres":            "postgresql",
	"k8s":                 "kubernetes",
	"amazon web services": "aws",
	"gcp":                 "google cloud",
	"py":                  "python",
}

// NormalizeSkill maps a skill name to the form used for comparisons.
func NormalizeSkill(skill string) string {
	normalized := strings.ToLower(strings.TrimSpace(skill))
	if canonical, ok := skillAliases[normalized]; ok {
		return canonical
	}
	return normalized
}

func skillSet(skills ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, list := range skills {
		for _, skill := range list {
			if normalized := NormalizeSkill(skill); normalized != "" {
				set[normalized] = struct{}{}
			}
		}
	}
	return set
}

// partitionSkills splits required skills into those the resume has and those it lacks,
// keeping the job's spelling and order.
func partitionSkills(required []string, have map[string]struct{}) (matched, missing []string) {
	matched, missing = []string{}, []string{}
	for _, skill := range lo.Uniq(required) {
		if _, ok := have[NormalizeSkill(skill)]; ok {
			matched = append(matched, skill)
		} else {
			missing = append(missing, skill)
		}
	}
	return matched, missing
}

func clampScore(score int) int {
	return lo.Clamp(score, 0, 100)
}
