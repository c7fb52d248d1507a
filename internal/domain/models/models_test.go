package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_IDSet_ToggleTwice_ShouldRestoreOriginalState(t *testing.T) {
	assert := assert.New(t)

	set := NewIDSet("a", "b")
	assert.True(set.Toggle("c"))
	assert.False(set.Toggle("c"))
	assert.Equal([]string{"a", "b"}, set.Items())

	assert.False(set.Toggle("a"))
	assert.True(set.Toggle("a"))
	assert.Equal([]string{"b", "a"}, set.Items())
}

func Test_IDSet_AddTwice_ShouldKeepSingleEntry(t *testing.T) {
	set := NewIDSet()
	assert.True(t, set.Add("job-1"))
	assert.False(t, set.Add("job-1"))
	assert.Equal(t, []string{"job-1"}, set.Items())
}

func Test_IDSet_JSON_ShouldUseArrayAndDropDuplicates(t *testing.T) {
	var set IDSet
	require.NoError(t, json.Unmarshal([]byte(`["x","y","x"]`), &set))
	assert.Equal(t, []string{"x", "y"}, set.Items())

	data, err := json.Marshal(NewIDSet())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func Test_Job_Unmarshal_ShouldTolerateBadPostedDate(t *testing.T) {
	assert := assert.New(t)

	var jobs []Job
	err := json.Unmarshal([]byte(`[
		{"id":"1","source":"remoteok","posted_date":"2024-05-01T10:00:00Z"},
		{"id":"2","source":"remoteok","posted_date":"yesterday"},
		{"id":"3","source":"remoteok"},
		{"id":"4","source":"remoteok","posted_date":"2024-05-01"}
	]`), &jobs)
	require.NoError(t, err)

	assert.True(jobs[0].PostedDate.Known())
	assert.True(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).Equal(jobs[0].PostedDate.Time))
	assert.False(jobs[1].PostedDate.Known())
	assert.False(jobs[2].PostedDate.Known())
	assert.True(jobs[3].PostedDate.Known())
}

func Test_Job_FormatSalary_ShouldRenderRange(t *testing.T) {
	assert := assert.New(t)

	low, high := 120000.0, 150000.0

	assert.Equal("", Job{}.FormatSalary())
	assert.Equal("$120,000 - $150,000", Job{SalaryMin: &low, SalaryMax: &high}.FormatSalary())
	assert.Equal("From €120,000", Job{SalaryMin: &low, SalaryCurrency: "eur"}.FormatSalary())
	assert.Equal("Up to CHF 150,000", Job{SalaryMax: &high, SalaryCurrency: "CHF"}.FormatSalary())
}

func Test_LabelFor_ShouldUseThresholds(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(LabelExcellent, LabelFor(80))
	assert.Equal(LabelGood, LabelFor(79))
	assert.Equal(LabelGood, LabelFor(60))
	assert.Equal(LabelFair, LabelFor(40))
	assert.Equal(LabelLow, LabelFor(39))
}

func Test_JobMatch_Validate_ShouldRejectOutOfRangeScores(t *testing.T) {
	job := Job{ID: "1", Source: "remoteok"}

	assert.NoError(t, JobMatch{Job: job, OverallScore: 100, SkillsScore: 0, ExperienceScore: 50}.Validate())
	assert.Error(t, JobMatch{Job: job, OverallScore: 101}.Validate())
	assert.Error(t, JobMatch{Job: job, SkillsScore: -1}.Validate())
	assert.Error(t, JobMatch{Job: Job{}, OverallScore: 50}.Validate())
}

func Test_JobMatch_Validate_WithPartialJob_ShouldOnlyRequireID(t *testing.T) {
	assert.NoError(t, JobMatch{Job: Job{ID: "1"}, OverallScore: 72}.Validate())
}

func Test_ParseRelevance_ShouldIgnoreCase(t *testing.T) {
	relevance, ok := ParseRelevance(" high")
	assert.True(t, ok)
	assert.Equal(t, RelevanceHigh, relevance)

	_, ok = ParseRelevance("critical")
	assert.False(t, ok)
}

func Test_NewResume_ShouldAssignIdentity(t *testing.T) {
	resume := NewResume(ResumeFields{Name: "Jane", Skills: []string{"Go"}}, "raw")

	assert.NotEmpty(t, resume.ID)
	assert.False(t, resume.CreatedAt.IsZero())
	assert.Equal(t, "raw", resume.RawText)

	data, err := json.Marshal(resume)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"rawText":"raw"`)
	assert.Contains(t, string(data), `"skills":["Go"]`)
}
