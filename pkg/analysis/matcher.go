package analysis

import (
	"strings"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
)

// at most this many candidates reach metadata synthesis; a hard cutoff in sweep
// order, not a top-K-by-relevance selection
const maxSynthesisCandidates = 10

// FindRelatedProtocols links extracted strategy entities to directory protocols
// by case-insensitive substring containment, a deliberate low-precision /
// high-recall policy: cheap, tolerant of naming variants ("USUAL" matches
// "USUAL Protocol"), over-generating candidates that downstream stages narrow
// by truncation and LLM judgment.
//
// Two independent sweeps over the snapshot, concatenated contract-sweep first:
// contract short names against protocol names, then token symbols against
// protocol symbols. Within a sweep the first matching entity wins per protocol,
// but a protocol matched by both sweeps is emitted twice. The duplication is
// intentional and preserved; deduplicating by protocol identity before
// truncation would change which protocols reach synthesis.
func FindRelatedProtocols(record *types.StrategyRecord, protocols []types.ProtocolRecord) []types.MatchCandidate {
	candidates := []types.MatchCandidate{}

	for _, protocol := range protocols {
		protocolName := strings.ToUpper(protocol.Name)
		for _, contract := range record.SmartContracts {
			if strings.Contains(protocolName, strings.ToUpper(contract)) {
				candidates = append(candidates, types.MatchCandidate{Protocol: protocol, Entity: contract})
				break
			}
		}
	}

	for _, protocol := range protocols {
		protocolSymbol := strings.ToUpper(protocol.Symbol)
		for _, token := range record.Tokens {
			if strings.Contains(protocolSymbol, strings.ToUpper(token)) {
				candidates = append(candidates, types.MatchCandidate{Protocol: protocol, Entity: token})
				break
			}
		}
	}

	return candidates
}

func limitCandidates(candidates []types.MatchCandidate) []types.MatchCandidate {
	if len(candidates) > maxSynthesisCandidates {
		return candidates[:maxSynthesisCandidates]
	}
	return candidates
}
