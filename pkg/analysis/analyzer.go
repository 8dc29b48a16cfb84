package analysis

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
)

// TextGenerator is the external text-generation capability. When a schema is
// supplied the response must conform exactly; callers still re-validate locally.
type TextGenerator interface {
	Complete(ctx context.Context, systemPrompt string, userPrompt string) (string, error)
	CompleteStructured(ctx context.Context, systemPrompt string, userPrompt string, schemaName string, schema any) (string, error)
}

// ProtocolDirectory supplies a fresh directory snapshot per call.
type ProtocolDirectory interface {
	Protocols(ctx context.Context) ([]types.ProtocolRecord, error)
}

// Analyzer runs the enrichment pipeline: extraction, snapshot fetch, matching,
// formatting, synthesis, composition. Strictly sequential; any failing stage
// aborts the request. Holds no mutable state, so concurrent invocations need no
// synchronization as long as the injected capabilities are concurrency-safe.
type Analyzer struct {
	generator TextGenerator
	directory ProtocolDirectory
	logger    *log.Entry
}

func NewAnalyzer(generator TextGenerator, directory ProtocolDirectory) *Analyzer {
	return &Analyzer{
		generator: generator,
		directory: directory,
		logger:    log.WithFields(log.Fields{"component": "analyzer"}),
	}
}

// ProcessInvestmentIdea turns a free-text strategy into the final report.
// Returns ErrNoCandidates when no directory protocol relates to the extracted
// entities; callers distinguish that from the fatal error kinds via errors.Is.
func (a *Analyzer) ProcessInvestmentIdea(ctx context.Context, strategyText string) (string, error) {
	record, err := ExtractStrategy(ctx, a.generator, strategyText)
	if err != nil {
		return "", err
	}
	a.logger.Debugf("extracted strategy with %v contracts and %v tokens", len(record.SmartContracts), len(record.Tokens))

	protocols, err := a.directory.Protocols(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDirectoryUnavailable, err)
	}
	a.logger.Debugf("fetched %v protocols from directory", len(protocols))

	candidates := FindRelatedProtocols(record, protocols)
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	a.logger.Debugf("matched %v candidate protocols", len(candidates))

	displays := DisplayProtocols(limitCandidates(candidates))
	protocolAnalysis, err := SynthesizeProtocolDetails(ctx, a.generator, record.SmartContracts, record.Tokens, displays)
	if err != nil {
		return "", err
	}

	return ComposeReport(ctx, a.generator, record, protocolAnalysis)
}
