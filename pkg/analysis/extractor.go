package analysis

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/utils"
)

var strategyRecordSchema, _ = utils.GenerateSchema[types.StrategyRecord]()

var strategyRecordKeys = []string{
	"Strategy",
	"StrategySteps",
	"SmartContracts",
	"Tokens",
	"Rewards",
	"Risks",
	"Complexity",
	"CostConsiderations",
}

// ExtractStrategy turns a raw strategy string (possibly non-English) into a
// validated StrategyRecord via a schema-constrained capability call. The record
// is re-validated locally even though the schema is enforced server-side.
func ExtractStrategy(ctx context.Context, generator TextGenerator, strategyText string) (*types.StrategyRecord, error) {
	raw, err := generator.CompleteStructured(ctx, ExtractionSystemPrompt, strategyText, "investment_strategy_response", strategyRecordSchema)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	record, err := ValidateStrategyRecord([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExtraction, err)
	}
	return record, nil
}

// ValidateStrategyRecord enforces the closed record shape: exactly the eight
// required keys, no extras, no null values. SmartContracts and Tokens may be
// empty arrays.
func ValidateStrategyRecord(raw []byte) (*types.StrategyRecord, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("fail to decode strategy record: %w", err)
	}
	for _, key := range strategyRecordKeys {
		value, ok := fields[key]
		if !ok {
			return nil, fmt.Errorf("strategy record is missing required field '%v'", key)
		}
		if string(value) == "null" {
			return nil, fmt.Errorf("strategy record field '%v' must not be null", key)
		}
	}
	for key := range fields {
		if !slices.Contains(strategyRecordKeys, key) {
			return nil, fmt.Errorf("strategy record has unexpected field '%v'", key)
		}
	}

	var record types.StrategyRecord
	if err := json.Unmarshal(raw, &record); err != nil {
		return nil, fmt.Errorf("fail to decode strategy record: %w", err)
	}
	return &record, nil
}
