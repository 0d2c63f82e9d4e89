package tgbot

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/goserg/puzzleboard/internal/config"
	"github.com/goserg/puzzleboard/internal/service"
	"github.com/goserg/puzzleboard/internal/storage"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

var (
	ErrBadRequest    = errors.New("unknown command, see /help")
	ErrUsage         = errors.New("wrong arguments")
	ErrNothingToSave = errors.New("every time is skipped")
)

const internalError = "Something went wrong, try again later."

// Observer records command and notification outcomes.
type Observer interface {
	ObserveCommand(command string, err error)
	ObserveNotification(err error)
}

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Bot struct {
	api    *tgbotapi.BotAPI
	sender sender
	log    *logrus.Entry
	obs    Observer

	admins   mapset.Set[int64]
	subs     *subscriptions
	commands *Commands

	// done is closed by Stop
	done chan struct{}
	// mu orders wg.Add in NotifySubmit against Stop
	mu      sync.Mutex
	stopped bool
	wg      sync.WaitGroup
}

func New(
	l *logrus.Logger,
	board Board,
	store storage.SubscriberStorage,
	obs Observer,
	cfg config.TgBot,
	debug bool,
) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("telegram api: %w", err)
	}
	api.Debug = debug

	b, err := newBot(l, board, store, obs, cfg.Admins, api)
	if err != nil {
		return nil, err
	}
	b.api = api
	b.log.WithField("username", api.Self.UserName).Info("bot authorized")
	return b, nil
}

func newBot(
	l *logrus.Logger,
	board Board,
	store storage.SubscriberStorage,
	obs Observer,
	admins []int64,
	s sender,
) (*Bot, error) {
	subs, err := newSubs(context.Background(), store)
	if err != nil {
		return nil, fmt.Errorf("load subscribers: %w", err)
	}
	return &Bot{
		sender: s,
		log: l.WithFields(map[string]interface{}{
			"from": "tg_bot",
		}),
		obs:      obs,
		admins:   mapset.NewSet[int64](admins...),
		subs:     subs,
		commands: NewCommands(board, subs),
		done:     make(chan struct{}),
	}, nil
}

// Run polls for updates until ctx is done or Stop is called.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return
		case <-b.done:
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			b.handleUpdate(ctx, update)
		}
	}
}

// Stop ends Run and waits for pending notifications.
func (b *Bot) Stop() {
	b.mu.Lock()
	if !b.stopped {
		b.stopped = true
		close(b.done)
	}
	b.mu.Unlock()
	b.wg.Wait()
}

func (b *Bot) chatOf(msg *tgbotapi.Message) Chat {
	chat := Chat{
		ID:   msg.Chat.ID,
		Role: RoleUser,
	}
	if msg.From != nil {
		chat.UserID = msg.From.ID
		chat.FirstName = msg.From.FirstName
		chat.Username = msg.From.UserName
		if b.admins.Contains(msg.From.ID) {
			chat.Role = RoleAdmin
		}
	}
	return chat
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || !update.Message.IsCommand() {
		return
	}
	chat := b.chatOf(update.Message)
	name := update.Message.Command()
	log := b.log.WithFields(logrus.Fields{
		"chat_id": chat.ID,
		"user_id": chat.UserID,
		"command": name,
	})

	text := b.reply(ctx, chat, name, update.Message.CommandArguments(), log)
	if _, err := b.sender.Send(tgbotapi.NewMessage(chat.ID, text)); err != nil {
		log.WithError(err).Error("send error")
	}
}

// reply runs one command and turns its outcome into the answer text.
func (b *Bot) reply(ctx context.Context, chat Chat, name, args string, log *logrus.Entry) string {
	text, err := b.commands.RunCommand(ctx, chat, name, args)

	label := name
	if !b.commands.Known(name) {
		label = "unknown"
	}
	b.obs.ObserveCommand(label, err)

	switch {
	case err == nil:
		log.Debug("command")
		return text
	case userFacing(err):
		log.WithError(err).Debug("command rejected")
		return err.Error()
	}
	log.WithError(err).Error("command failed")
	return internalError
}

// NotifySubmit tells every subscriber about a saved day without blocking
// the caller. Submissions after Stop are dropped.
func (b *Bot) NotifySubmit(sub service.Submission) {
	text := formatSubmission(sub)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.stopped {
		return
	}
	b.wg.Add(1)
	go func() {
		defer b.wg.Done()
		b.broadcast(text)
	}()
}

func (b *Bot) broadcast(text string) {
	for _, chatID := range b.subs.ChatIDs() {
		_, err := b.sender.Send(tgbotapi.NewMessage(chatID, text))
		b.obs.ObserveNotification(err)
		if err != nil {
			b.log.WithError(err).WithField("chat_id", chatID).Warn("notification not sent")
		}
	}
}
