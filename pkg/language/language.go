package language

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/comprehend"
	"github.com/aws/aws-sdk-go/service/translate"
)

// Client detects the dominant language of a text and translates it to English.
// Used by the message transport before persisting opinions; the pipeline itself
// lets the extraction prompt handle translation.
type Client struct {
	comprehend *comprehend.Comprehend
	translate  *translate.Translate
}

func NewClient(sess *session.Session) *Client {
	return &Client{
		comprehend: comprehend.New(sess),
		translate:  translate.New(sess),
	}
}

// DetectLanguage returns the dominant language code, e.g. "pl".
func (c *Client) DetectLanguage(ctx context.Context, text string) (string, error) {
	res, err := c.comprehend.DetectDominantLanguageWithContext(ctx, &comprehend.DetectDominantLanguageInput{
		Text: aws.String(text),
	})
	if err != nil {
		return "", fmt.Errorf("fail to detect language: %w", err)
	}
	if len(res.Languages) == 0 || res.Languages[0].LanguageCode == nil {
		return "", fmt.Errorf("no dominant language detected")
	}
	return *res.Languages[0].LanguageCode, nil
}

func (c *Client) TranslateToEnglish(ctx context.Context, text string, sourceLang string) (string, error) {
	res, err := c.translate.TextWithContext(ctx, &translate.TextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String(sourceLang),
		TargetLanguageCode: aws.String("en"),
	})
	if err != nil {
		return "", fmt.Errorf("fail to translate text: %w", err)
	}
	if res.TranslatedText == nil {
		return "", fmt.Errorf("empty translation result")
	}
	return *res.TranslatedText, nil
}
