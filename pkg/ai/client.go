package ai

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

const (
	defaultBaseUrl = "https://openrouter.ai/api/v1/"
	defaultModel   = "openai/gpt-4o"
)

// Config carries everything the client needs; credentials are injected at boot,
// never read from the environment inside this package.
type Config struct {
	BaseUrl string
	ApiKey  string
	Model   string
}

// Client is the OpenAI-compatible text-generation capability.
type Client struct {
	client *openai.Client
	model  string
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.ApiKey == "" {
		return nil, fmt.Errorf("openai api key is not set")
	}
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = defaultBaseUrl
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	return &Client{
		client: openai.NewClient(
			option.WithBaseURL(cfg.BaseUrl),
			option.WithAPIKey(cfg.ApiKey),
		),
		model: cfg.Model,
	}, nil
}

// Complete runs a plain chat completion and returns the raw text.
func (c *Client) Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	chatCompletion, err := c.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F(buildMessages(systemPrompt, userPrompt)),
			Model:    openai.F(c.model),
		},
	)
	if err != nil {
		return "", err
	}
	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("no completion found")
	}
	return chatCompletion.Choices[0].Message.Content, nil
}

// CompleteStructured runs a completion constrained by a JSON schema and returns
// the raw JSON text. Callers re-validate the payload locally: server-side schema
// enforcement is best effort only.
func (c *Client) CompleteStructured(ctx context.Context, systemPrompt string, userPrompt string, schemaName string, schema any) (string, error) {
	chatCompletion, err := c.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Messages: openai.F(buildMessages(systemPrompt, userPrompt)),
			ResponseFormat: openai.F[openai.ChatCompletionNewParamsResponseFormatUnion](
				openai.ResponseFormatJSONSchemaParam{
					Type: openai.F(openai.ResponseFormatJSONSchemaTypeJSONSchema),
					JSONSchema: openai.F(
						openai.ResponseFormatJSONSchemaJSONSchemaParam{
							Name:   openai.F(schemaName),
							Schema: openai.F(schema),
						},
					),
				},
			),
			Model: openai.F(c.model),
		},
	)
	if err != nil {
		return "", err
	}
	if len(chatCompletion.Choices) == 0 {
		return "", fmt.Errorf("no completion found")
	}
	return chatCompletion.Choices[0].Message.Content, nil
}

func buildMessages(systemPrompt string, userPrompt string) []openai.ChatCompletionMessageParamUnion {
	messages := []openai.ChatCompletionMessageParamUnion{}
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userPrompt))
	return messages
}
