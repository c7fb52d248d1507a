package services

import (
	"context"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/maxaizer/job-hunter/internal/clients/functions"
	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/maxaizer/job-hunter/internal/events"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func Test_ResumeService_Parse_ShouldAssignIdentity(t *testing.T) {
	parser := &mockParser{}
	parser.On("ParseResume", mock.Anything, "resume text").Return(&functions.ParseResponse{
		Success: true,
		Resume:  &models.ResumeFields{Name: "Jane", Skills: []string{"Python", "React"}},
	}, nil)

	resume, err := NewResumeService(parser).Parse(context.Background(), "resume text")

	require.NoError(t, err)
	assert.NotEmpty(t, resume.ID)
	assert.Equal(t, "resume text", resume.RawText)
	assert.Equal(t, []string{"Python", "React"}, resume.Skills)
	assert.WithinDuration(t, time.Now(), resume.CreatedAt, time.Minute)
}

func Test_ResumeService_Parse_WhenRejected_ShouldReturnReason(t *testing.T) {
	parser := &mockParser{}
	parser.On("ParseResume", mock.Anything, mock.Anything).
		Return(&functions.ParseResponse{Success: false, Error: "text too short"}, nil)

	_, err := NewResumeService(parser).Parse(context.Background(), "hi")

	assert.ErrorIs(t, err, ErrResumeNotParsed)
	assert.Contains(t, err.Error(), "text too short")
}

func Test_ResumeService_Parse_WhenTransportFails_ShouldWrap(t *testing.T) {
	parser := &mockParser{}
	cause := errors.New("unreachable")
	parser.On("ParseResume", mock.Anything, mock.Anything).Return(nil, cause)

	_, err := NewResumeService(parser).Parse(context.Background(), "text")

	assert.ErrorIs(t, err, ErrResumeNotParsed)
	assert.ErrorIs(t, err, cause)
}

func Test_ResumeService_Parse_WhenEmpty_ShouldNotCallParser(t *testing.T) {
	parser := &mockParser{}

	_, err := NewResumeService(parser).Parse(context.Background(), "   ")

	assert.ErrorIs(t, err, ErrEmptyResumeText)
	parser.AssertNotCalled(t, "ParseResume", mock.Anything, mock.Anything)
}

func Test_ComputeDashboardStats(t *testing.T) {
	jobs := testJobs("1", "2", "3", "4", "5")
	matches := []models.JobMatch{
		testMatch(jobs[0], 95),
		testMatch(jobs[1], 80),
		testMatch(jobs[2], 79),
		testMatch(jobs[3], 60),
		testMatch(jobs[4], 59),
	}

	stats := ComputeDashboardStats(matches, 2, 1)

	assert.Equal(t, DashboardStats{TotalJobs: 5, ExcellentMatches: 2, GoodMatches: 2, SavedCount: 2, AppliedCount: 1}, stats)
}

func Test_TopSources_ShouldOrderByCountThenID(t *testing.T) {
	stats := map[string]int{"b": 5, "a": 5, "c": 9, "d": 1}

	assert.Equal(t, []SourceCount{{"c", 9}, {"a", 5}, {"b", 5}}, TopSources(stats, 3))
	assert.Len(t, TopSources(stats, 10), 4)
	assert.Empty(t, TopSources(map[string]int{}, 10))
}

func Test_AlertService_Evaluate_ShouldAlertOncePerSearchAndJob(t *testing.T) {
	bus := EventBus.New()
	searches, alerts := &mockSearches{}, &mockAlerts{}
	minScore := 70
	search := models.NewSavedSearch("strong remote", models.JobFilter{
		WorkType:      []models.WorkType{models.Remote},
		MinMatchScore: &minScore,
	}, true)
	jobs := testJobs("1", "2", "3")
	matches := []models.JobMatch{testMatch(jobs[0], 90), testMatch(jobs[1], 50), testMatch(jobs[2], 75)}

	searches.On("GetAlertEnabled", mock.Anything).Return([]models.SavedSearch{search}, nil)
	alerts.On("WasAlerted", mock.Anything, search.ID, "1").Return(true, nil)
	alerts.On("WasAlerted", mock.Anything, search.ID, "3").Return(false, nil)
	alerts.On("RecordAlerted", mock.Anything, search.ID, "3").Return(nil).Once()

	var received []events.AlertMatch
	require.NoError(t, bus.Subscribe(events.AlertMatchTopic, func(event events.AlertMatch) {
		received = append(received, event)
	}))

	raised, err := NewAlertService(bus, searches, alerts).Evaluate(context.Background(), matches)

	require.NoError(t, err)
	assert.Equal(t, 1, raised)
	require.Len(t, received, 1)
	assert.Equal(t, "3", received[0].Match.Job.ID)
	assert.Equal(t, search.ID, received[0].Search.ID)
	alerts.AssertExpectations(t)
}

func Test_AlertService_Evaluate_WhenFilterInvalid_ShouldSkipSearch(t *testing.T) {
	searches, alerts := &mockSearches{}, &mockAlerts{}
	low, high := 1000.0, 10.0
	broken := models.NewSavedSearch("broken", models.JobFilter{SalaryMin: &low, SalaryMax: &high}, true)
	searches.On("GetAlertEnabled", mock.Anything).Return([]models.SavedSearch{broken}, nil)

	raised, err := NewAlertService(EventBus.New(), searches, alerts).
		Evaluate(context.Background(), []models.JobMatch{testMatch(testJobs("1")[0], 90)})

	require.NoError(t, err)
	assert.Zero(t, raised)
	alerts.AssertNotCalled(t, "WasAlerted", mock.Anything, mock.Anything, mock.Anything)
}

func Test_AlertService_Listen_ShouldEvaluatePublishedMatches(t *testing.T) {
	bus := EventBus.New()
	searches, alerts := &mockSearches{}, &mockAlerts{}
	search := models.NewSavedSearch("all", models.JobFilter{}, true)
	searches.On("GetAlertEnabled", mock.Anything).Return([]models.SavedSearch{search}, nil)
	alerts.On("WasAlerted", mock.Anything, search.ID, "1").Return(false, nil)
	alerts.On("RecordAlerted", mock.Anything, search.ID, "1").Return(nil)

	service := NewAlertService(bus, searches, alerts)
	require.NoError(t, service.Listen())

	bus.Publish(events.MatchesUpdatedTopic, events.MatchesUpdated{Matches: []models.JobMatch{testMatch(testJobs("1")[0], 90)}})
	bus.WaitAsync()

	alerts.AssertExpectations(t)
	assert.NoError(t, service.Stop())
}

func Test_RefreshScheduler_ShouldValidateArguments(t *testing.T) {
	_, err := NewRefreshScheduler(&mockRefresher{}, &mockAlerts{}, "@every 1h", FetchParams{}, 0)
	assert.Error(t, err)

	_, err = NewRefreshScheduler(&mockRefresher{}, &mockAlerts{}, "not a schedule", FetchParams{}, time.Hour)
	assert.Error(t, err)
}

func Test_RefreshScheduler_Jobs(t *testing.T) {
	refresher, alerts := &mockRefresher{}, &mockAlerts{}
	params := FetchParams{Query: "go", Sources: []string{"remotive"}, Limit: 50}
	refresher.On("Refresh", mock.Anything, params).Return([]models.JobMatch{}).Once()
	refresher.On("Err").Return("").Once()
	refresher.On("SaveSnapshot", mock.Anything).Return(nil).Once()
	alerts.On("RemoveOlderThan", mock.Anything, mock.MatchedBy(func(expiration time.Time) bool {
		return time.Since(expiration) >= 24*time.Hour
	})).Return(int64(3), nil).Once()

	scheduler, err := NewRefreshScheduler(refresher, alerts, "@every 1h", params, 24*time.Hour)
	require.NoError(t, err)

	scheduler.refresh()
	scheduler.cleanOldAlerts()

	refresher.AssertExpectations(t)
	alerts.AssertExpectations(t)
}

func Test_RefreshScheduler_WhenRefreshFails_ShouldKeepPreviousSnapshot(t *testing.T) {
	refresher := &mockRefresher{}
	refresher.On("Refresh", mock.Anything, mock.Anything).Return([]models.JobMatch{}).Once()
	refresher.On("Err").Return("Failed to fetch jobs: timeout").Once()

	scheduler, err := NewRefreshScheduler(refresher, &mockAlerts{}, "@every 1h", FetchParams{}, time.Hour)
	require.NoError(t, err)

	scheduler.refresh()

	refresher.AssertExpectations(t)
	refresher.AssertNotCalled(t, "SaveSnapshot", mock.Anything)
}
