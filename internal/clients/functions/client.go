package functions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/maxaizer/job-hunter/internal/logger"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	fetchJobsFunction   = "fetch-jobs"
	parseResumeFunction = "parse-resume"
	matchJobsFunction   = "match-jobs"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// StatusError is returned when a function answers with a non-200 status.
type StatusError struct {
	Function   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s failed with status %v, body: %v", e.Function, e.StatusCode, e.Body)
}

// Client calls the hosted functions that aggregate jobs, parse resumes and score matches.
type Client struct {
	baseURL     string
	apiKey      string
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
	attempts    int
	retryDelay  time.Duration
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		attempts:   1,
	}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float32) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// SetRetries makes server-side failures (5xx) retry up to attempts times in total.
func (c *Client) SetRetries(attempts int, delay time.Duration) {
	c.attempts = max(attempts, 1)
	c.retryDelay = delay
}

type FetchRequest struct {
	Query   string   `json:"query,omitempty"`
	Sources []string `json:"sources,omitempty"`
	Limit   int      `json:"limit"`
}

type FetchResponse struct {
	Jobs        []models.Job   `json:"jobs"`
	Total       int            `json:"total"`
	SourceStats map[string]int `json:"sourceStats"`
}

func (c *Client) FetchJobs(ctx context.Context, request FetchRequest) (*FetchResponse, error) {
	body, err := c.invoke(ctx, fetchJobsFunction, request)
	if err != nil {
		return nil, err
	}

	if err = validateBody(fetchJobsSchema, body); err != nil {
		return nil, errors.Wrap(err, fetchJobsFunction)
	}

	var response FetchResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(ErrMalformedResponse, fmt.Sprintf("%s: error decoding JSON response: %v", fetchJobsFunction, err))
	}
	if response.SourceStats == nil {
		response.SourceStats = map[string]int{}
	}
	if response.Jobs == nil {
		response.Jobs = []models.Job{}
	}

	return &response, nil
}

type parseRequest struct {
	ResumeText string `json:"resumeText"`
}

type ParseResponse struct {
	Success bool                 `json:"success"`
	Resume  *models.ResumeFields `json:"resume,omitempty"`
	Error   string               `json:"error,omitempty"`
}

func (c *Client) ParseResume(ctx context.Context, resumeText string) (*ParseResponse, error) {
	body, err := c.invoke(ctx, parseResumeFunction, parseRequest{ResumeText: resumeText})
	if err != nil {
		return nil, err
	}

	if err = validateBody(parseResumeSchema, body); err != nil {
		return nil, errors.Wrap(err, parseResumeFunction)
	}

	var response ParseResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(ErrMalformedResponse, fmt.Sprintf("%s: error decoding JSON response: %v", parseResumeFunction, err))
	}
	return &response, nil
}

type matchRequest struct {
	Resume models.Resume `json:"resume"`
	Jobs   []models.Job  `json:"jobs"`
}

type matchResponse struct {
	Matches []json.RawMessage `json:"matches"`
}

// matchItem reads scores as numbers of any kind; scorers are free to answer with fractions.
type matchItem struct {
	models.JobMatch
	OverallScore    float64 `json:"overall_score"`
	SkillsScore     float64 `json:"skills_score"`
	ExperienceScore float64 `json:"experience_score"`
}

// MatchJobs decodes each match on its own: an item that cannot be read is logged and skipped.
func (c *Client) MatchJobs(ctx context.Context, resume models.Resume, jobs []models.Job) ([]models.JobMatch, error) {
	body, err := c.invoke(ctx, matchJobsFunction, matchRequest{Resume: resume, Jobs: jobs})
	if err != nil {
		return nil, err
	}

	if err = validateBody(matchJobsSchema, body); err != nil {
		return nil, errors.Wrap(err, matchJobsFunction)
	}

	var response matchResponse
	if err = json.Unmarshal(body, &response); err != nil {
		return nil, errors.Wrap(ErrMalformedResponse, fmt.Sprintf("%s: error decoding JSON response: %v", matchJobsFunction, err))
	}

	matches := make([]models.JobMatch, 0, len(response.Matches))
	for i, raw := range response.Matches {
		var item matchItem
		if err = json.Unmarshal(raw, &item); err != nil {
			log.WithField(logger.ErrorTypeField, logger.ErrorTypeScoring).
				Warnf("%s: skipping match #%d: %v", matchJobsFunction, i, err)
			continue
		}
		match := item.JobMatch
		match.OverallScore = roundScore(item.OverallScore)
		match.SkillsScore = roundScore(item.SkillsScore)
		match.ExperienceScore = roundScore(item.ExperienceScore)
		matches = append(matches, match)
	}
	return matches, nil
}

// roundScore keeps out-of-range values out of range so the engine still rejects them.
func roundScore(score float64) int {
	return int(math.Round(math.Max(math.Min(score, 1000), -1000)))
}

func (c *Client) invoke(ctx context.Context, function string, payload any) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: error encoding request", function)
	}

	var body []byte
	_, _, _ = lo.AttemptWhileWithDelay(c.attempts, c.retryDelay, func(i int, _ time.Duration) (error, bool) {
		if i > 0 {
			log.Warnf("%s returned a server error, retrying (attempt %d)", function, i+1)
		}
		body, err = c.sendRequest(ctx, function, data)
		return err, isServerError(err) && ctx.Err() == nil
	})

	return body, err
}

func (c *Client) sendRequest(ctx context.Context, function string, payload []byte) ([]byte, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+function, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrapf(err, "%s: error creating request", function)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: error sending request", function)
	}
	defer resp.Body.Close()

	return c.handleResponse(function, resp)
}

func (c *Client) handleResponse(function string, resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "%s: error reading response body", function)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Function: function, StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func isServerError(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode >= http.StatusInternalServerError
}
