package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const baseURL = "https://functions.example.com/v1"

type mockHTTPClient struct {
	mock.Mock
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	resp, _ := args.Get(0).(*http.Response)
	return resp, args.Error(1)
}

func fileResponse(t *testing.T, name string) *http.Response {
	file, err := os.ReadFile("testdata/" + name)
	require.NoError(t, err)
	return bodyResponse(http.StatusOK, string(file))
}

func bodyResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func requestTo(function string) any {
	return mock.MatchedBy(func(req *http.Request) bool {
		return req.Method == http.MethodPost && req.URL.String() == baseURL+"/"+function
	})
}

func Test_FunctionsClient_FetchJobs_ShouldBeSuccessful(t *testing.T) {
	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", mock.MatchedBy(func(req *http.Request) bool {
		if req.URL.String() != baseURL+"/fetch-jobs" || req.Header.Get("Authorization") != "Bearer secret" {
			return false
		}
		var payload FetchRequest
		body, _ := io.ReadAll(req.Body)
		req.Body = io.NopCloser(bytes.NewReader(body))
		return json.Unmarshal(body, &payload) == nil && payload.Query == "golang" && payload.Limit == 200
	})).Return(fileResponse(t, "fetch_jobs.json"), nil)

	client := NewClient(baseURL+"/", "secret")
	client.SetHTTPClient(mockClient)

	response, err := client.FetchJobs(context.Background(), FetchRequest{Query: "golang", Limit: 200})
	require.NoError(t, err)

	assert.Len(response.Jobs, 2)
	assert.Equal("remoteok-101", response.Jobs[0].ID)
	assert.Equal(models.Remote, response.Jobs[0].WorkType)
	assert.Equal(150000.0, *response.Jobs[0].SalaryMax)
	assert.True(response.Jobs[0].PostedDate.Known())
	assert.False(response.Jobs[1].PostedDate.Known())
	assert.Nil(response.Jobs[1].SalaryMin)
	assert.Equal(map[string]int{"remoteok": 1, "golangjobs": 1}, response.SourceStats)
	mockClient.AssertExpectations(t)
}

func Test_FunctionsClient_FetchJobs_WhenPayloadMalformed_ShouldFail(t *testing.T) {
	for name, body := range map[string]string{
		"missing jobs":    `{"total": 3}`,
		"job without id":  `{"jobs": [{"source": "remoteok", "title": "x"}]}`,
		"negative stats":  `{"jobs": [], "sourceStats": {"remoteok": -1}}`,
		"not even json":   `<html>oops</html>`,
		"jobs not a list": `{"jobs": {"id": "1"}}`,
	} {
		t.Run(name, func(t *testing.T) {
			mockClient := &mockHTTPClient{}
			mockClient.On("Do", requestTo("fetch-jobs")).Return(bodyResponse(http.StatusOK, body), nil)

			client := NewClient(baseURL, "")
			client.SetHTTPClient(mockClient)

			_, err := client.FetchJobs(context.Background(), FetchRequest{Limit: 10})
			assert.True(t, errors.Is(err, ErrMalformedResponse), "got %v", err)
		})
	}
}

func Test_FunctionsClient_FetchJobs_WhenTransportFails_ShouldReturnError(t *testing.T) {
	mockClient := &mockHTTPClient{}
	mockClient.On("Do", requestTo("fetch-jobs")).Return(nil, errors.New("connection refused"))

	client := NewClient(baseURL, "")
	client.SetHTTPClient(mockClient)

	_, err := client.FetchJobs(context.Background(), FetchRequest{Limit: 10})
	assert.ErrorContains(t, err, "connection refused")
}

func Test_FunctionsClient_WhenServerErrors_ShouldRetry(t *testing.T) {
	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", requestTo("match-jobs")).Return(bodyResponse(http.StatusBadGateway, "upstream"), nil).Once()
	mockClient.On("Do", requestTo("match-jobs")).Return(fileResponse(t, "match_jobs.json"), nil).Once()

	client := NewClient(baseURL, "")
	client.SetHTTPClient(mockClient)
	client.SetRetries(3, time.Millisecond)

	matches, err := client.MatchJobs(context.Background(), models.Resume{ID: "r1"}, []models.Job{{ID: "remoteok-101"}})
	require.NoError(t, err)

	assert.Len(matches, 1)
	assert.Equal(82, matches[0].OverallScore)
	assert.Equal([]string{"Kubernetes"}, matches[0].MissingSkills)
	assert.Equal(models.RelevanceHigh, matches[0].ExperienceMatches[0].Relevance)
	mockClient.AssertNumberOfCalls(t, "Do", 2)
}

func Test_FunctionsClient_WhenClientErrors_ShouldNotRetry(t *testing.T) {
	mockClient := &mockHTTPClient{}
	mockClient.On("Do", requestTo("match-jobs")).Return(bodyResponse(http.StatusBadRequest, "bad resume"), nil)

	client := NewClient(baseURL, "")
	client.SetHTTPClient(mockClient)
	client.SetRetries(3, time.Millisecond)

	_, err := client.MatchJobs(context.Background(), models.Resume{}, nil)

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
	mockClient.AssertNumberOfCalls(t, "Do", 1)
}

func Test_FunctionsClient_ParseResume_ShouldBeSuccessful(t *testing.T) {
	assert := assert.New(t)

	mockClient := &mockHTTPClient{}
	mockClient.On("Do", requestTo("parse-resume")).Return(fileResponse(t, "parse_resume.json"), nil)

	client := NewClient(baseURL, "")
	client.SetHTTPClient(mockClient)

	response, err := client.ParseResume(context.Background(), "Jane Doe, Go developer")
	require.NoError(t, err)

	assert.True(response.Success)
	require.NotNil(t, response.Resume)
	assert.Equal("Jane Doe", response.Resume.Name)
	assert.Equal([]string{"Go", "PostgreSQL"}, response.Resume.Skills)
	assert.Equal("Initech", response.Resume.Experience[0].Company)
}

func Test_FunctionsClient_MatchJobs_ShouldBeSuccessful(t *testing.T) {
	mockClient := &mockHTTPClient{}
	mockClient.On("Do", requestTo("match-jobs")).Return(fileResponse(t, "match_jobs.json"), nil)

	client := NewClient(baseURL, "")
	client.SetHTTPClient(mockClient)

	matches, err := client.MatchJobs(context.Background(), models.Resume{ID: "r1"}, []models.Job{{ID: "remoteok-101"}})
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, 82, matches[0].OverallScore)
	assert.Equal(t, 67, matches[0].SkillsScore)
	assert.Equal(t, 100, matches[0].ExperienceScore)
	assert.Equal(t, models.RelevanceHigh, matches[0].ExperienceMatches[0].Relevance)
}

func Test_FunctionsClient_MatchJobs_WithFractionalScores_ShouldRound(t *testing.T) {
	mockClient := &mockHTTPClient{}
	mockClient.On("Do", requestTo("match-jobs")).Return(bodyResponse(http.StatusOK, `{"matches": [
		{"job": {"id": "1"}, "overall_score": 80},
		{"job": {"id": "2"}, "overall_score": 72.5, "skills_score": 66.4}
	]}`), nil)

	client := NewClient(baseURL, "")
	client.SetHTTPClient(mockClient)

	matches, err := client.MatchJobs(context.Background(), models.Resume{}, []models.Job{{ID: "1"}, {ID: "2"}})
	require.NoError(t, err)

	require.Len(t, matches, 2)
	assert.Equal(t, 80, matches[0].OverallScore)
	assert.Equal(t, 73, matches[1].OverallScore)
	assert.Equal(t, 66, matches[1].SkillsScore)
}

func Test_FunctionsClient_MatchJobs_WhenOneItemUnreadable_ShouldSkipOnlyIt(t *testing.T) {
	mockClient := &mockHTTPClient{}
	mockClient.On("Do", requestTo("match-jobs")).Return(bodyResponse(http.StatusOK, `{"matches": [
		{"job": {"id": "1", "title": 5}, "overall_score": 90},
		{"job": {"id": "2"}, "overall_score": 150}
	]}`), nil)

	client := NewClient(baseURL, "")
	client.SetHTTPClient(mockClient)

	matches, err := client.MatchJobs(context.Background(), models.Resume{}, []models.Job{{ID: "1"}, {ID: "2"}})
	require.NoError(t, err)

	require.Len(t, matches, 1)
	assert.Equal(t, "2", matches[0].Job.ID)
	assert.Equal(t, 150, matches[0].OverallScore)
}
