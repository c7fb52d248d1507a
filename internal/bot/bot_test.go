package bot

import (
	"testing"

	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/maxaizer/job-hunter/internal/events"
	"github.com/maxaizer/job-hunter/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApi struct {
	SentMessages []botApi.Chattable
}

func (m *mockApi) Send(chattable botApi.Chattable) (botApi.Message, error) {
	m.SentMessages = append(m.SentMessages, chattable)
	return botApi.Message{}, nil
}

func (m *mockApi) texts() []string {
	var texts []string
	for _, c := range m.SentMessages {
		if msg, ok := c.(botApi.MessageConfig); ok {
			texts = append(texts, msg.Text)
		}
	}
	return texts
}

type stubState struct {
	matches []models.JobMatch
	stats   services.DashboardStats
	err     string
}

func (s stubState) FilteredMatches() []models.JobMatch { return s.matches }
func (s stubState) Stats() services.DashboardStats     { return s.stats }
func (s stubState) Err() string                        { return s.err }

func testMatch(id string, score int) models.JobMatch {
	salary := 120000.0
	return models.JobMatch{
		Job: models.Job{
			ID:             id,
			Source:         "remotive",
			Title:          "Backend Engineer " + id,
			Company:        "Acme",
			Location:       "Berlin",
			SalaryMax:      &salary,
			ApplicationURL: "https://jobs.example.com/" + id,
		},
		OverallScore:  score,
		MissingSkills: []string{"Kafka"},
	}
}

func Test_Bot_OnAlertMatch_ShouldSendToConfiguredChat(t *testing.T) {
	bus := EventBus.New()
	api := &mockApi{}
	_, err := newBot(api, 42, bus, stubState{})
	require.NoError(t, err)

	bus.Publish(events.AlertMatchTopic, events.AlertMatch{
		Search: models.SavedSearch{Name: "berlin backend"},
		Match:  testMatch("1", 85),
	})

	require.Len(t, api.SentMessages, 1)
	msg := api.SentMessages[0].(botApi.MessageConfig)
	assert.Equal(t, int64(42), msg.ChatID)
	assert.Contains(t, msg.Text, `New match for "berlin backend"`)
	assert.Contains(t, msg.Text, "Score: 85 (Excellent)")
	assert.Contains(t, msg.Text, "Salary: Up to $120,000")
	assert.Contains(t, msg.Text, "Missing: Kafka")
	assert.Contains(t, msg.Text, "https://jobs.example.com/1")
}

func Test_Bot_Stop_ShouldUnsubscribe(t *testing.T) {
	bus := EventBus.New()
	api := &mockApi{}
	b, err := newBot(api, 42, bus, stubState{})
	require.NoError(t, err)

	b.Stop()
	bus.Publish(events.AlertMatchTopic, events.AlertMatch{Match: testMatch("1", 85)})

	assert.Empty(t, api.SentMessages)
}

func Test_Bot_HandleCommand(t *testing.T) {
	state := stubState{
		matches: []models.JobMatch{testMatch("1", 91), testMatch("2", 64)},
		stats:   services.DashboardStats{TotalJobs: 2, ExcellentMatches: 1, GoodMatches: 1, SavedCount: 3},
		err:     "Failed to fetch jobs: timeout",
	}
	api := &mockApi{}
	b, err := newBot(api, 7, EventBus.New(), state)
	require.NoError(t, err)

	b.handleCommand("matches")
	b.handleCommand("stats")
	b.handleCommand("unknown")
	b.handleCommand("")

	texts := api.texts()
	require.Len(t, texts, 3)
	assert.Contains(t, texts[0], "Top 2 of 2 matches:")
	assert.Contains(t, texts[0], "2. Backend Engineer 2 at Acme")
	assert.Contains(t, texts[0], "Last error: Failed to fetch jobs: timeout")
	assert.Contains(t, texts[1], "Excellent (80+): 1")
	assert.Contains(t, texts[1], "Saved: 3")
	assert.Contains(t, texts[2], "Unknown command!")
}

func Test_NewBot_WhenDependenciesMissing_ShouldFail(t *testing.T) {
	_, err := newBot(&mockApi{}, 1, nil, stubState{})
	assert.Error(t, err)

	_, err = newBot(&mockApi{}, 1, EventBus.New(), nil)
	assert.Error(t, err)
}
