package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
)

var markdownLinkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)

// ComposeReport merges the structured extraction and the protocol narrative into
// the final five-section report, then normalizes links. The link rewrite runs
// unconditionally: the "no markdown" instruction to the capability is best effort.
func ComposeReport(ctx context.Context, generator TextGenerator, record *types.StrategyRecord, protocolAnalysis string) (string, error) {
	strategyJson, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrComposition, err)
	}

	prompt := fmt.Sprintf(CompositionPrompt, string(strategyJson), protocolAnalysis)
	text, err := generator.Complete(ctx, NoMarkdownSystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrComposition, err)
	}
	return ConvertMarkdownLinks(text), nil
}

// ConvertMarkdownLinks rewrites every markdown-style link [label](url) to the
// bare url, discarding the label. Idempotent.
func ConvertMarkdownLinks(text string) string {
	return markdownLinkPattern.ReplaceAllString(text, "$2")
}
