package analysis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
)

// SynthesizeProtocolDetails asks the text-generation capability for a per-contract
// narrative (TVL, audit count, audit links, twitter link) over the already
// formatted candidates. The output is opaque text, consumed as-is by the composer.
func SynthesizeProtocolDetails(ctx context.Context, generator TextGenerator, smartContracts []string, tokens []string, displays []types.DisplayProtocol) (string, error) {
	details, err := json.MarshalIndent(displays, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSynthesis, err)
	}

	prompt := fmt.Sprintf(SynthesisPrompt, smartContracts, tokens, string(details))
	text, err := generator.Complete(ctx, NoMarkdownSystemPrompt, prompt)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSynthesis, err)
	}
	return text, nil
}
