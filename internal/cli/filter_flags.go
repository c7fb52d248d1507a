package cli

import (
	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/maxaizer/job-hunter/internal/sources"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type filterFlags struct {
	keywords  string
	title     string
	location  string
	workTypes []string
	jobTypes  []string
	seniority []string
	sources   []string
	salaryMin float64
	salaryMax float64
	posted    string
	minScore  int
}

var filterFlagNames = []string{
	"keywords", "title", "location", "work-type", "job-type", "seniority",
	"source", "salary-min", "salary-max", "posted", "min-score",
}

func (f *filterFlags) register(cmd *cobra.Command) {
	buckets := lo.Map(sources.Intervals, func(i sources.Interval, _ int) string { return string(i.Bucket) })

	flags := cmd.Flags()
	flags.StringVarP(&f.keywords, "keywords", "k", "", "text that must appear in title, company, description or skills")
	flags.StringVar(&f.title, "title", "", "text that must appear in the job title")
	flags.StringVar(&f.location, "location", "", "text that must appear in the location")
	flags.StringSliceVar(&f.workTypes, "work-type", nil, "remote, hybrid or onsite")
	flags.StringSliceVar(&f.jobTypes, "job-type", nil, "full_time, part_time, contract, internship or temporary")
	flags.StringSliceVar(&f.seniority, "seniority", nil, "entry, mid, senior, lead or executive")
	flags.StringSliceVar(&f.sources, "source", nil, "source ids, see 'jobhunter sources list'")
	flags.Float64Var(&f.salaryMin, "salary-min", 0, "lowest acceptable salary")
	flags.Float64Var(&f.salaryMax, "salary-max", 0, "highest salary of interest")
	flags.StringVar(&f.posted, "posted", "", "posting age: "+joinComma(buckets))
	flags.IntVar(&f.minScore, "min-score", 0, "minimum overall match score")
}

// build reports changed=false when no filter flag was given on the command line.
func (f *filterFlags) build(cmd *cobra.Command) (filter models.JobFilter, changed bool) {
	flags := cmd.Flags()
	changed = lo.SomeBy(filterFlagNames, func(name string) bool { return flags.Changed(name) })
	if !changed {
		return filter, false
	}

	filter = models.JobFilter{
		Keywords:     f.keywords,
		Title:        f.title,
		Location:     f.location,
		WorkType:     lo.Map(f.workTypes, func(v string, _ int) models.WorkType { return models.WorkType(v) }),
		JobType:      lo.Map(f.jobTypes, func(v string, _ int) models.JobType { return models.JobType(v) }),
		Seniority:    lo.Map(f.seniority, func(v string, _ int) models.Seniority { return models.Seniority(v) }),
		Sources:      f.sources,
		PostedWithin: models.RecencyBucket(f.posted),
	}
	if flags.Changed("salary-min") {
		filter.SalaryMin = lo.ToPtr(f.salaryMin)
	}
	if flags.Changed("salary-max") {
		filter.SalaryMax = lo.ToPtr(f.salaryMax)
	}
	if flags.Changed("min-score") {
		filter.MinMatchScore = lo.ToPtr(f.minScore)
	}
	return filter, true
}
