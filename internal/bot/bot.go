package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asaskevich/EventBus"
	botApi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/maxaizer/job-hunter/internal/domain/models"
	"github.com/maxaizer/job-hunter/internal/events"
	"github.com/maxaizer/job-hunter/internal/logger"
	"github.com/maxaizer/job-hunter/internal/services"
	log "github.com/sirupsen/logrus"
)

const topMatchesCount = 5

type sender interface {
	Send(c botApi.Chattable) (botApi.Message, error)
}

// State is the read side of the client state the bot reports on.
type State interface {
	FilteredMatches() []models.JobMatch
	Stats() services.DashboardStats
	Err() string
}

// Bot delivers saved-search alerts to one chat and answers a few read-only commands there.
type Bot struct {
	api    sender
	self   *botApi.BotAPI
	chatID int64
	bus    EventBus.Bus
	state  State
}

func NewBot(token string, chatID int64, bus EventBus.Bus, state State) (*Bot, error) {
	api, err := botApi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	log.Infof("Authorized on account %s", api.Self.UserName)

	if err = botApi.SetLogger(log.StandardLogger()); err != nil {
		return nil, err
	}

	b, err := newBot(api, chatID, bus, state)
	if err != nil {
		return nil, err
	}
	b.self = api
	return b, nil
}

func newBot(api sender, chatID int64, bus EventBus.Bus, state State) (*Bot, error) {
	if bus == nil {
		return nil, errors.New("bus is nil")
	}
	if state == nil {
		return nil, errors.New("state is nil")
	}

	b := &Bot{api: api, chatID: chatID, bus: bus, state: state}
	if err := bus.Subscribe(events.AlertMatchTopic, b.onAlertMatch); err != nil {
		return nil, err
	}
	return b, nil
}

// Run handles incoming commands until ctx is done.
func (b *Bot) Run(ctx context.Context) {
	if b.self == nil {
		return
	}

	updateConfig := botApi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.self.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.self.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil || update.Message.Chat.ID != b.chatID {
				continue
			}
			b.handleCommand(update.Message.Command())
		}
	}
}

func (b *Bot) Stop() {
	if err := b.bus.Unsubscribe(events.AlertMatchTopic, b.onAlertMatch); err != nil {
		log.Errorf("failed to unsubscribe bot: %v", err)
	}
}

func (b *Bot) handleCommand(command string) {
	var text string

	switch command {
	case "start", "help":
		text = "Commands:\n/matches - top matches for the current filters\n/stats - dashboard numbers"
	case "matches":
		text = formatTopMatches(b.state.FilteredMatches(), topMatchesCount)
	case "stats":
		text = formatStats(b.state.Stats())
	case "":
		return
	default:
		text = "Unknown command!"
	}

	if errText := b.state.Err(); errText != "" && command != "start" && command != "help" {
		text += "\n\nLast error: " + errText
	}
	b.send(text)
}

func (b *Bot) onAlertMatch(event events.AlertMatch) {
	b.send(fmt.Sprintf("New match for \"%s\":\n%s", event.Search.Name, formatMatch(event.Match)))
}

func (b *Bot) send(text string) {
	msg := botApi.NewMessage(b.chatID, strings.TrimSpace(text))
	msg.DisableWebPagePreview = true
	if _, err := b.api.Send(msg); err != nil {
		log.WithField(logger.ErrorTypeField, logger.ErrorTypeTgApi).Errorf("error occured while sending message: %v", err)
	}
}
