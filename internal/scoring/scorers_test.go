package scoring

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockScorer struct {
	mock.Mock
}

func (m *mockScorer) Score(ctx context.Context, resume *models.Resume, jobs []models.Job) ([]models.JobMatch, error) {
	args := m.Called(ctx, resume, jobs)
	matches, _ := args.Get(0).([]models.JobMatch)
	return matches, args.Error(1)
}

type mockMatchFunction struct {
	mock.Mock
}

func (m *mockMatchFunction) MatchJobs(ctx context.Context, resume models.Resume, jobs []models.Job) ([]models.JobMatch, error) {
	args := m.Called(ctx, resume, jobs)
	matches, _ := args.Get(0).([]models.JobMatch)
	return matches, args.Error(1)
}

type stubGenerator struct {
	responses []string
	prompts   []string
}

func (s *stubGenerator) GenerateResponse(_ context.Context, prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.responses) == 0 {
		return "", errors.New("no response configured")
	}
	response := s.responses[0]
	s.responses = s.responses[1:]
	return response, nil
}

func jobsWithIDs(ids ...string) []models.Job {
	return lo.Map(ids, func(id string, _ int) models.Job {
		return models.Job{ID: id, Source: "remoteok", Title: "Engineer " + id, SkillsRequired: []string{"Go", "AWS"}}
	})
}

func jobIDs(jobs []models.Job) any {
	ids := lo.Map(jobs, func(j models.Job, _ int) string { return j.ID })
	return mock.MatchedBy(func(actual []models.Job) bool {
		return assert.ObjectsAreEqual(ids, lo.Map(actual, func(j models.Job, _ int) string { return j.ID }))
	})
}

func Test_CachedScorer_ShouldOnlyScoreUnseenJobs(t *testing.T) {
	assert := assert.New(t)
	resume := testResume("Go")
	first, second := jobsWithIDs("1", "2"), jobsWithIDs("2", "3")

	inner := &mockScorer{}
	inner.On("Score", mock.Anything, resume, jobIDs(first)).
		Return([]models.JobMatch{{Job: first[0], OverallScore: 10}, {Job: first[1], OverallScore: 20}}, nil).Once()
	inner.On("Score", mock.Anything, resume, jobIDs(jobsWithIDs("3"))).
		Return([]models.JobMatch{{Job: second[1], OverallScore: 30}}, nil).Once()

	scorer := NewCachedScorer(inner, time.Minute)

	matches, err := scorer.Score(context.Background(), resume, first)
	require.NoError(t, err)
	assert.Len(matches, 2)

	matches, err = scorer.Score(context.Background(), resume, second)
	require.NoError(t, err)
	assert.Equal([]int{20, 30}, lo.Map(matches, func(m models.JobMatch, _ int) int { return m.OverallScore }))
	inner.AssertExpectations(t)
}

func Test_CachedScorer_WhenInnerFails_ShouldReturnError(t *testing.T) {
	inner := &mockScorer{}
	inner.On("Score", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("unavailable"))

	_, err := NewCachedScorer(inner, time.Minute).Score(context.Background(), testResume(), jobsWithIDs("1"))
	assert.EqualError(t, err, "unavailable")
}

func Test_RemoteScorer_ShouldDelegateToFunction(t *testing.T) {
	resume := testResume("Go")
	jobs := jobsWithIDs("1")

	client := &mockMatchFunction{}
	client.On("MatchJobs", mock.Anything, *resume, jobs).Return([]models.JobMatch{{Job: jobs[0], OverallScore: 55}}, nil)

	matches, err := NewRemoteScorer(client).Score(context.Background(), resume, jobs)
	require.NoError(t, err)
	assert.Equal(t, 55, matches[0].OverallScore)

	_, err = NewRemoteScorer(client).Score(context.Background(), nil, jobs)
	assert.ErrorIs(t, err, ErrNoResume)
	client.AssertNumberOfCalls(t, "MatchJobs", 1)
}

func Test_RemoteScorer_WhenFunctionFails_ShouldWrapError(t *testing.T) {
	client := &mockMatchFunction{}
	client.On("MatchJobs", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := NewRemoteScorer(client).Score(context.Background(), testResume(), jobsWithIDs("1"))
	assert.EqualError(t, err, "remote scoring failed: timeout")
}

func Test_GeminiScorer_ShouldParseRatingsAndDropUnknownJobs(t *testing.T) {
	assert := assert.New(t)

	generator := &stubGenerator{responses: []string{"```json\n" + `[
		{"job_id": "1", "overall_score": 91.6, "skills_score": "80", "experience_score": 120, "matched_skills": ["go"], "recommendation": " Apply "},
		{"job_id": "ghost", "overall_score": 99},
		{"job_id": "1", "overall_score": 10}
	]` + "\n```"}}

	matches, err := NewGeminiScorer(generator).Score(context.Background(), testResume("Go"), jobsWithIDs("1", "2"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	assert.Equal(92, matches[0].OverallScore)
	assert.Equal(80, matches[0].SkillsScore)
	assert.Equal(100, matches[0].ExperienceScore)
	assert.Equal([]string{"Go"}, matches[0].MatchedSkills)
	assert.Equal([]string{"AWS"}, matches[0].MissingSkills)
	assert.Equal("Apply", matches[0].Recommendation)
	assert.Contains(generator.prompts[0], `"job_id":"2"`)
}

func Test_GeminiScorer_ShouldBatchRequests(t *testing.T) {
	ids := lo.Map(lo.Range(geminiBatchSize+1), func(i int, _ int) string { return strconv.Itoa(i) })
	generator := &stubGenerator{responses: []string{`[]`, `{"matches": []}`}}

	matches, err := NewGeminiScorer(generator).Score(context.Background(), testResume(), jobsWithIDs(ids...))
	require.NoError(t, err)
	assert.Empty(t, matches)
	assert.Len(t, generator.prompts, 2)
}

func Test_GeminiScorer_WhenResponseIsNotJSON_ShouldFail(t *testing.T) {
	generator := &stubGenerator{responses: []string{"I think the candidate fits"}}

	_, err := NewGeminiScorer(generator).Score(context.Background(), testResume(), jobsWithIDs("1"))
	assert.ErrorContains(t, err, "parse gemini response")
}

func Test_Truncate_ShouldNotSplitCharacters(t *testing.T) {
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "aé", truncate("aéé", 4))
	assert.Equal(t, "aé", truncate("aéé", 3))
	assert.Equal(t, "short", truncate("short", 10))
}

func Test_GeminiScorer_WithLongMultibyteDescription_ShouldSendValidText(t *testing.T) {
	job := jobsWithIDs("1")[0]
	job.Description = "a" + strings.Repeat("é", maxPromptDescription)
	generator := &stubGenerator{responses: []string{`[]`}}

	_, err := NewGeminiScorer(generator).Score(context.Background(), testResume(), []models.Job{job})
	require.NoError(t, err)

	require.Len(t, generator.prompts, 1)
	assert.True(t, utf8.ValidString(generator.prompts[0]))
	assert.NotContains(t, generator.prompts[0], "\ufffd")
	assert.NotContains(t, generator.prompts[0], "\uFFFD")
	assert.NotContains(t, generator.prompts[0], string(utf8.RuneError))
}
