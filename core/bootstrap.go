package core

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/mr-procrastinator/defi-idea-analyse/config"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/ai"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/analysis"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/awsclient"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/language"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/llama"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/opinion"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/telegram"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/utils"
)

// App holds the wired collaborators for one process.
type App struct {
	Analyzer *analysis.Analyzer
	Bot      *telegram.Bot
}

// Bootstrap reads secrets from the environment exactly once, assembles each
// collaborator's config and constructs the object graph. AWS and Telegram
// collaborators are optional: they are wired only when configured.
func Bootstrap(cfg config.Config) (*App, error) {
	log.Info("🦾 Bootstrapping...")

	aiConfig := ai.Config{ApiKey: utils.LoadEnv("OPENAI_API_KEY")}
	if cfg.OpenAI != nil {
		aiConfig.BaseUrl = cfg.OpenAI.BaseUrl
		aiConfig.Model = cfg.OpenAI.Model
	}
	generator, err := ai.NewClient(aiConfig)
	if err != nil {
		return nil, fmt.Errorf("fail to create openai client: %w", err)
	}

	directoryConfig := llama.Config{}
	if cfg.Directory != nil {
		directoryConfig.BaseUrl = cfg.Directory.BaseUrl
	}
	directory := llama.NewClient(directoryConfig)

	analyzer := analysis.NewAnalyzer(generator, directory)
	log.Info("analyzer wired")

	var store telegram.OpinionStore
	var notifier telegram.OpinionNotifier
	var languageTools telegram.LanguageTools
	if cfg.AWS != nil {
		sess, err := awsclient.NewSession(awsclient.Config{
			AccessKey: utils.LoadEnv("AWS_ACCESS_KEY_ID"),
			SecretKey: utils.LoadEnv("AWS_SECRET_ACCESS_KEY"),
			Region:    cfg.AWS.Region,
		})
		if err != nil {
			return nil, fmt.Errorf("fail to create aws session: %w", err)
		}
		if cfg.AWS.OpinionTable != "" {
			store = opinion.NewStore(sess, cfg.AWS.OpinionTable)
		}
		if cfg.AWS.TopicArn != "" {
			notifier = opinion.NewNotifier(sess, cfg.AWS.TopicArn)
		}
		languageTools = language.NewClient(sess)
		log.Info("aws collaborators wired")
	}

	var bot *telegram.Bot
	if cfg.Telegram != nil {
		bot, err = telegram.NewBot(telegram.Config{
			Token:            utils.LoadEnv("TELEGRAM_BOT_TOKEN"),
			BroadcastChatIds: cfg.Telegram.BroadcastChatIds,
			BroadcastDelay:   time.Duration(cfg.Telegram.BroadcastDelayMs) * time.Millisecond,
		}, analyzer, store, notifier, languageTools)
		if err != nil {
			return nil, fmt.Errorf("fail to create telegram bot: %w", err)
		}
		log.Info("telegram bot wired")
	}

	return &App{Analyzer: analyzer, Bot: bot}, nil
}
