package analysis

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
)

// fakeGenerator is the deterministic stand-in for the text-generation
// capability; fakeDirectory for the protocol directory.
type fakeGenerator struct {
	completeFn   func(systemPrompt, userPrompt string) (string, error)
	structuredFn func(systemPrompt, userPrompt, schemaName string, schema any) (string, error)
}

func (f *fakeGenerator) Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error) {
	return f.completeFn(systemPrompt, userPrompt)
}

func (f *fakeGenerator) CompleteStructured(ctx context.Context, systemPrompt string, userPrompt string, schemaName string, schema any) (string, error) {
	return f.structuredFn(systemPrompt, userPrompt, schemaName, schema)
}

type fakeDirectory struct {
	protocols []types.ProtocolRecord
	err       error
}

func (f *fakeDirectory) Protocols(ctx context.Context) ([]types.ProtocolRecord, error) {
	return f.protocols, f.err
}

const usualRecordJson = `{
	"Strategy": "Buy USUAL and short it while holding PT on USUALx",
	"StrategySteps": ["Buy USUAL", "Short USUAL", "Buy PT on USUALx"],
	"SmartContracts": ["USUAL"],
	"Tokens": ["USUALX"],
	"Rewards": "~80% annually",
	"Risks": "Smart contract vulnerabilities",
	"Complexity": "Medium",
	"CostConsiderations": "Funding rate fluctuations"
}`

func TestProcessInvestmentIdeaEndToEnd(t *testing.T) {
	var completeCalls []string
	generator := &fakeGenerator{
		structuredFn: func(systemPrompt, userPrompt, schemaName string, schema any) (string, error) {
			return usualRecordJson, nil
		},
		completeFn: func(systemPrompt, userPrompt string) (string, error) {
			completeCalls = append(completeCalls, userPrompt)
			if len(completeCalls) == 1 {
				return "Usual Protocol: TVL $250,000,000.00, 2 audits, https://twitter.com/usualmoney", nil
			}
			return "4. Protocols' security: Usual Protocol is a Niche Protocols grade ($250,000,000.00 TVL), [twitter](https://twitter.com/usualmoney)", nil
		},
	}
	directory := &fakeDirectory{
		protocols: []types.ProtocolRecord{
			{Name: "Aave", Symbol: "AAVE", TVL: float64(12000000000)},
			{Name: "Usual Protocol", Symbol: "USUALX", TVL: float64(250000000), Twitter: "usualmoney"},
		},
	}

	report, err := NewAnalyzer(generator, directory).ProcessInvestmentIdea(context.Background(), "idea text")
	require.NoError(t, err)

	// two narrative calls: synthesis then composition
	require.Len(t, completeCalls, 2)

	// synthesis saw the formatted candidate twice (contract sweep + token sweep)
	assert.Equal(t, 2, strings.Count(completeCalls[0], `"Usual Protocol"`))
	assert.Contains(t, completeCalls[0], "$250,000,000.00")
	assert.Contains(t, completeCalls[0], "https://twitter.com/usualmoney")
	assert.NotContains(t, completeCalls[0], "Aave")

	// composition saw the strategy record and the synthesized narrative
	assert.Contains(t, completeCalls[1], "Buy USUAL and short it")
	assert.Contains(t, completeCalls[1], "TVL $250,000,000.00")

	// final report cites the tier and carries the bare twitter url
	assert.Contains(t, report, "Niche Protocols")
	assert.Contains(t, report, "https://twitter.com/usualmoney")
	assert.NotContains(t, report, "[twitter]")
}

func TestProcessInvestmentIdeaNoCandidates(t *testing.T) {
	generator := &fakeGenerator{
		structuredFn: func(systemPrompt, userPrompt, schemaName string, schema any) (string, error) {
			return usualRecordJson, nil
		},
		completeFn: func(systemPrompt, userPrompt string) (string, error) {
			t.Fatal("synthesis must not run without candidates")
			return "", nil
		},
	}
	directory := &fakeDirectory{
		protocols: []types.ProtocolRecord{
			{Name: "Aave", Symbol: "AAVE"},
			{Name: "Compound", Symbol: "COMP"},
		},
	}

	report, err := NewAnalyzer(generator, directory).ProcessInvestmentIdea(context.Background(), "idea text")
	require.ErrorIs(t, err, ErrNoCandidates)
	assert.Empty(t, report)
}

func TestProcessInvestmentIdeaDirectoryUnavailable(t *testing.T) {
	generator := &fakeGenerator{
		structuredFn: func(systemPrompt, userPrompt, schemaName string, schema any) (string, error) {
			return usualRecordJson, nil
		},
	}
	directory := &fakeDirectory{err: fmt.Errorf("status 503")}

	_, err := NewAnalyzer(generator, directory).ProcessInvestmentIdea(context.Background(), "idea text")
	require.ErrorIs(t, err, ErrDirectoryUnavailable)
}

func TestProcessInvestmentIdeaExtractionFailureAborts(t *testing.T) {
	generator := &fakeGenerator{
		structuredFn: func(systemPrompt, userPrompt, schemaName string, schema any) (string, error) {
			return `{"Strategy": "s", "Extra": true}`, nil
		},
	}
	_, err := NewAnalyzer(generator, &fakeDirectory{}).ProcessInvestmentIdea(context.Background(), "idea text")
	require.ErrorIs(t, err, ErrExtraction)
}

func TestProcessInvestmentIdeaSynthesisFailureAborts(t *testing.T) {
	generator := &fakeGenerator{
		structuredFn: func(systemPrompt, userPrompt, schemaName string, schema any) (string, error) {
			return usualRecordJson, nil
		},
		completeFn: func(systemPrompt, userPrompt string) (string, error) {
			return "", fmt.Errorf("capability down")
		},
	}
	directory := &fakeDirectory{
		protocols: []types.ProtocolRecord{{Name: "Usual Protocol", Symbol: "USUALX"}},
	}

	_, err := NewAnalyzer(generator, directory).ProcessInvestmentIdea(context.Background(), "idea text")
	require.ErrorIs(t, err, ErrSynthesis)
}
