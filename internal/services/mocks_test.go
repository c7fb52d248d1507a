package services

import (
	"context"
	"time"

	"github.com/maxaizer/job-hunter/internal/clients/functions"
	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/samber/lo"
	"github.com/stretchr/testify/mock"
)

type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchJobs(ctx context.Context, request functions.FetchRequest) (*functions.FetchResponse, error) {
	args := m.Called(ctx, request)
	response, _ := args.Get(0).(*functions.FetchResponse)
	return response, args.Error(1)
}

type mockScorer struct {
	mock.Mock
}

func (m *mockScorer) Score(ctx context.Context, resume *models.Resume, jobs []models.Job) ([]models.JobMatch, error) {
	args := m.Called(ctx, resume, jobs)
	matches, _ := args.Get(0).([]models.JobMatch)
	return matches, args.Error(1)
}

type mockParser struct {
	mock.Mock
}

func (m *mockParser) ParseResume(ctx context.Context, resumeText string) (*functions.ParseResponse, error) {
	args := m.Called(ctx, resumeText)
	response, _ := args.Get(0).(*functions.ParseResponse)
	return response, args.Error(1)
}

type mockSearches struct {
	mock.Mock
}

func (m *mockSearches) GetAlertEnabled(ctx context.Context) ([]models.SavedSearch, error) {
	args := m.Called(ctx)
	searches, _ := args.Get(0).([]models.SavedSearch)
	return searches, args.Error(1)
}

type mockAlerts struct {
	mock.Mock
}

func (m *mockAlerts) WasAlerted(ctx context.Context, searchID, jobID string) (bool, error) {
	args := m.Called(ctx, searchID, jobID)
	return args.Bool(0), args.Error(1)
}

func (m *mockAlerts) RecordAlerted(ctx context.Context, searchID, jobID string) error {
	return m.Called(ctx, searchID, jobID).Error(0)
}

func (m *mockAlerts) RemoveOlderThan(ctx context.Context, expirationTime time.Time) (int64, error) {
	args := m.Called(ctx, expirationTime)
	return args.Get(0).(int64), args.Error(1)
}

type mockRefresher struct {
	mock.Mock
}

func (m *mockRefresher) Refresh(ctx context.Context, params FetchParams) []models.JobMatch {
	matches, _ := m.Called(ctx, params).Get(0).([]models.JobMatch)
	return matches
}

func (m *mockRefresher) Err() string {
	return m.Called().String(0)
}

func (m *mockRefresher) SaveSnapshot(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func testJobs(ids ...string) []models.Job {
	return lo.Map(ids, func(id string, _ int) models.Job {
		return models.Job{
			ID:             id,
			Source:         "remotive",
			Title:          "Go Developer " + id,
			Company:        "Acme",
			WorkType:       models.Remote,
			SkillsRequired: []string{"Go", "SQL"},
		}
	})
}

func testMatch(job models.Job, score int) models.JobMatch {
	return models.JobMatch{
		Job:             job,
		OverallScore:    score,
		SkillsScore:     score,
		ExperienceScore: score,
		MatchedSkills:   []string{"Go"},
		MissingSkills:   []string{"SQL"},
	}
}

func testResume() *models.Resume {
	resume := models.NewResume(models.ResumeFields{Name: "Jane", Skills: []string{"Go"}}, "Jane, Go developer")
	return &resume
}

func queryIs(query string) any {
	return mock.MatchedBy(func(request functions.FetchRequest) bool { return request.Query == query })
}
