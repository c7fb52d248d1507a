package services

import (
	"cmp"
	"slices"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/samber/lo"
)

const (
	excellentScore = 80
	goodScore      = 60
)

type DashboardStats struct {
	TotalJobs        int
	ExcellentMatches int
	GoodMatches      int
	SavedCount       int
	AppliedCount     int
}

func ComputeDashboardStats(matches []models.JobMatch, savedCount, appliedCount int) DashboardStats {
	return DashboardStats{
		TotalJobs: len(matches),
		ExcellentMatches: lo.CountBy(matches, func(m models.JobMatch) bool {
			return m.OverallScore >= excellentScore
		}),
		GoodMatches: lo.CountBy(matches, func(m models.JobMatch) bool {
			return m.OverallScore >= goodScore && m.OverallScore < excellentScore
		}),
		SavedCount:   savedCount,
		AppliedCount: appliedCount,
	}
}

type SourceCount struct {
	Source string
	Count  int
}

// TopSources orders sources by job count, ties broken by id, and keeps at most limit of them.
func TopSources(stats map[string]int, limit int) []SourceCount {
	counts := lo.MapToSlice(stats, func(source string, count int) SourceCount {
		return SourceCount{Source: source, Count: count}
	})
	slices.SortFunc(counts, func(a, b SourceCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Source, b.Source)
	})
	if limit >= 0 && len(counts) > limit {
		counts = counts[:limit]
	}
	return counts
}
