package bot

import (
	"fmt"
	"strings"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/maxaizer/job-hunter/internal/services"
)

func formatMatch(match models.JobMatch) string {
	var sb strings.Builder
	job := match.Job

	sb.WriteString(fmt.Sprintf("%s at %s\n", job.Title, job.Company))
	sb.WriteString(fmt.Sprintf("Score: %d (%s)", match.OverallScore, match.Label()))
	if job.Location != "" {
		sb.WriteString("\nLocation: " + job.Location)
	}
	if salary := job.FormatSalary(); salary != "" {
		sb.WriteString("\nSalary: " + salary)
	}
	if len(match.MissingSkills) > 0 {
		sb.WriteString("\nMissing: " + strings.Join(match.MissingSkills, ", "))
	}
	if job.ApplicationURL != "" {
		sb.WriteString("\n" + job.ApplicationURL)
	}
	return sb.String()
}

func formatTopMatches(matches []models.JobMatch, limit int) string {
	if len(matches) == 0 {
		return "No matches yet."
	}

	parts := make([]string, 0, limit)
	for i, match := range matches {
		if i == limit {
			break
		}
		parts = append(parts, fmt.Sprintf("%d. %s", i+1, formatMatch(match)))
	}

	header := fmt.Sprintf("Top %d of %d matches:", len(parts), len(matches))
	return header + "\n\n" + strings.Join(parts, "\n\n")
}

func formatStats(stats services.DashboardStats) string {
	return fmt.Sprintf("Jobs: %d\nExcellent (80+): %d\nGood (60-79): %d\nSaved: %d\nApplied: %d",
		stats.TotalJobs, stats.ExcellentMatches, stats.GoodMatches, stats.SavedCount, stats.AppliedCount)
}
