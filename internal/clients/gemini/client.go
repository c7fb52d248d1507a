package gemini

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
)

type Model string

const (
	// Model15Flash is the default: fast and cheap enough to score a full job list.
	Model15Flash Model = "gemini-1.5-flash"
	Model15Pro   Model = "gemini-1.5-pro"
	Model20Flash Model = "gemini-2.0-flash"
)

var ErrEmptyResponse = errors.New("gemini returned no text")

type Client struct {
	client            *genai.Client
	model             *genai.GenerativeModel
	minuteRateLimiter *rate.Limiter
	dayRateLimiter    *rate.Limiter
}

func NewClient(ctx context.Context, apiKey string, model Model) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, errors.Wrap(err, "can't create gemini client")
	}

	genModel := client.GenerativeModel(string(model))
	genModel.SetTemperature(0.2)
	genModel.ResponseMIMEType = "application/json"

	return &Client{client: client, model: genModel}, nil
}

func (c *Client) SetMinuteRateLimit(maxRequestsPerMinute float32) {
	c.minuteRateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerMinute/60), 1)
}

func (c *Client) SetDayRateLimit(maxRequestsPerDay float32) {
	c.dayRateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerDay/86400), max(int(maxRequestsPerDay), 1))
}

// SetSystemInstruction fixes the role prompt sent with every request.
func (c *Client) SetSystemInstruction(text string) {
	c.model.SystemInstruction = genai.NewUserContent(genai.Text(text))
}

func (c *Client) Close() error {
	return c.client.Close()
}

// GenerateResponse sends the prompt and returns the text of the first candidate.
// Transient server errors are retried twice.
func (c *Client) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	var resp string
	var err error

	_, _, _ = lo.AttemptWhileWithDelay(3, 2*time.Second, func(i int, _ time.Duration) (error, bool) {
		if i > 0 {
			log.Warn("gemini api returned a server error, retrying...")
		}
		resp, err = c.waitAndGenerate(ctx, prompt)
		return err, isTransient(err)
	})

	return resp, err
}

func (c *Client) waitAndGenerate(ctx context.Context, prompt string) (string, error) {
	for _, limiter := range []*rate.Limiter{c.minuteRateLimiter, c.dayRateLimiter} {
		if limiter == nil {
			continue
		}
		if err := limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	response, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}

	if len(response.Candidates) == 0 || response.Candidates[0].Content == nil {
		return "", ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range response.Candidates[0].Content.Parts {
		if t, ok := part.(genai.Text); ok {
			text.WriteString(string(t))
		}
	}
	if text.Len() == 0 {
		return "", ErrEmptyResponse
	}
	return text.String(), nil
}

func isTransient(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Error 500") || strings.Contains(msg, "Error 503")
}
