package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/maxaizer/job-hunter/internal/domain/models"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}

func joinComma(values []string) string {
	return strings.Join(values, ", ")
}

func writeJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}

func postedAgo(job models.Job) string {
	if !job.PostedDate.Known() {
		return "unknown"
	}
	return humanize.Time(job.PostedDate.Time)
}

func marks(a *app, jobID string) string {
	var m []string
	if a.store.IsSaved(jobID) {
		m = append(m, "saved")
	}
	if a.store.IsApplied(jobID) {
		m = append(m, "applied")
	}
	return strings.Join(m, ",")
}

func writeMatches(w io.Writer, a *app, matches []models.JobMatch) error {
	table := newTable(w)
	fmt.Fprintln(table, "ID\tSCORE\tTITLE\tCOMPANY\tWORK\tSALARY\tPOSTED\tMARKS")
	for _, match := range matches {
		job := match.Job
		fmt.Fprintf(table, "%s\t%d %s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			job.ID, match.OverallScore, match.Label(), job.Title, job.Company, job.WorkType,
			job.FormatSalary(), postedAgo(job), marks(a, job.ID))
	}
	return table.Flush()
}
