package telegram

import (
	"context"
	"errors"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/analysis"
)

const defaultBroadcastDelay = 500 * time.Millisecond

// Analyzer is the enrichment pipeline entrypoint.
type Analyzer interface {
	ProcessInvestmentIdea(ctx context.Context, strategyText string) (string, error)
}

// OpinionStore persists inbound ideas per opinion id.
type OpinionStore interface {
	Add(ctx context.Context, opinionId string, opinionText string) (int, error)
}

// OpinionNotifier fans out a notification after an opinion is stored.
type OpinionNotifier interface {
	NotifyAdded(ctx context.Context, opinionId string, opinionText string, totalOpinions int) error
}

// LanguageTools normalizes non-English ideas before persistence.
type LanguageTools interface {
	DetectLanguage(ctx context.Context, text string) (string, error)
	TranslateToEnglish(ctx context.Context, text string, sourceLang string) (string, error)
}

type Config struct {
	Token            string
	BroadcastChatIds []int64
	BroadcastDelay   time.Duration
}

// Bot is the long-polling message transport: one pipeline invocation per
// inbound message, a reply to the sender, and a fan-out to the broadcast chats.
// Opinion persistence and notification are best effort and never block a reply.
type Bot struct {
	api              *tgbotapi.BotAPI
	analyzer         Analyzer
	store            OpinionStore
	notifier         OpinionNotifier
	language         LanguageTools
	broadcastChatIds []int64
	broadcastDelay   time.Duration
	logger           *log.Entry
}

func NewBot(cfg Config, analyzer Analyzer, store OpinionStore, notifier OpinionNotifier, languageTools LanguageTools) (*Bot, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("telegram bot token is not set")
	}
	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, fmt.Errorf("fail to create telegram bot: %w", err)
	}
	if cfg.BroadcastDelay == 0 {
		cfg.BroadcastDelay = defaultBroadcastDelay
	}
	return &Bot{
		api:              api,
		analyzer:         analyzer,
		store:            store,
		notifier:         notifier,
		language:         languageTools,
		broadcastChatIds: cfg.BroadcastChatIds,
		broadcastDelay:   cfg.BroadcastDelay,
		logger:           log.WithFields(log.Fields{"component": "telegram"}),
	}, nil
}

// Run polls for updates until the context is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.logger.Infof("bot '%v' listening for messages", b.api.Self.UserName)

	updateConfig := tgbotapi.NewUpdate(0)
	updateConfig.Timeout = 60
	updates := b.api.GetUpdatesChan(updateConfig)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return nil
		case update := <-updates:
			if update.Message == nil || update.Message.Text == "" {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	logger := b.logger.WithFields(log.Fields{"chat": msg.Chat.ID})
	logger.Info("processing investment idea")

	b.recordOpinion(ctx, opinionIdFor(msg), msg.Text, logger)

	report, err := b.analyzer.ProcessInvestmentIdea(ctx, msg.Text)
	if err != nil {
		if errors.Is(err, analysis.ErrNoCandidates) {
			b.reply(msg.Chat.ID, "No related protocols found for this idea.", logger)
			return
		}
		logger.Errorf("fail to process idea: %v", err)
		b.reply(msg.Chat.ID, "Failed to analyze this idea, please try again later.", logger)
		return
	}

	b.reply(msg.Chat.ID, report, logger)
	b.broadcast(report, msg.Chat.ID, logger)
}

// recordOpinion stores the idea (translated to English when needed) and
// publishes a notification. Failures are logged, never surfaced to the sender.
func (b *Bot) recordOpinion(ctx context.Context, opinionId string, text string, logger *log.Entry) {
	if b.store == nil {
		return
	}

	stored := text
	if b.language != nil {
		lang, err := b.language.DetectLanguage(ctx, text)
		if err != nil {
			logger.Warnf("fail to detect language: %v", err)
		} else if lang != "en" {
			translated, err := b.language.TranslateToEnglish(ctx, text, lang)
			if err != nil {
				logger.Warnf("fail to translate opinion: %v", err)
			} else {
				stored = translated
			}
		}
	}

	total, err := b.store.Add(ctx, opinionId, stored)
	if err != nil {
		logger.Warnf("fail to store opinion: %v", err)
		return
	}
	if b.notifier != nil {
		if err := b.notifier.NotifyAdded(ctx, opinionId, stored, total); err != nil {
			logger.Warnf("fail to notify opinion: %v", err)
		}
	}
}

func (b *Bot) reply(chatId int64, text string, logger *log.Entry) {
	if _, err := b.api.Send(tgbotapi.NewMessage(chatId, text)); err != nil {
		logger.Errorf("fail to send message: %v", err)
	}
}

// broadcast fans the report out to the configured chats, sleeping between sends
// to stay inside Telegram's per-bot rate limits.
func (b *Bot) broadcast(report string, originChatId int64, logger *log.Entry) {
	for _, chatId := range b.broadcastChatIds {
		if chatId == originChatId {
			continue
		}
		b.reply(chatId, report, logger)
		time.Sleep(b.broadcastDelay)
	}
}

func opinionIdFor(msg *tgbotapi.Message) string {
	if msg.From != nil && msg.From.UserName != "" {
		return msg.From.UserName
	}
	return fmt.Sprintf("chat-%v", msg.Chat.ID)
}
