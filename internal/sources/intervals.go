package sources

import "github.com/maxaizer/job-hunter/internal/domain/models"

type Interval struct {
	Bucket models.RecencyBucket
	Label  string
}

// Intervals are the recency options offered to users, narrowest first.
var Intervals = []Interval{
	{Bucket: models.Last3Hours, Label: "Last 3 hours"},
	{Bucket: models.Last24Hours, Label: "Last 24 hours"},
	{Bucket: models.Last7Days, Label: "Last 7 days"},
	{Bucket: models.Last30Days, Label: "Last 30 days"},
	{Bucket: models.AllTime, Label: "All time"},
}
