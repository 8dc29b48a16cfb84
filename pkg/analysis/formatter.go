package analysis

import (
	"encoding/json"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
)

var currencyPrinter = message.NewPrinter(language.English)

// FormatTVL renders a nullable TVL as a currency string with two decimals and
// thousands separators (1234567.8 -> "$1,234,567.80"). Anything that cannot be
// read as a number formats to "N/A"; conversion failures never propagate.
func FormatTVL(tvl any) string {
	switch v := tvl.(type) {
	case nil:
		return "N/A"
	case float64:
		return currencyPrinter.Sprintf("$%.2f", v)
	case int:
		return currencyPrinter.Sprintf("$%.2f", float64(v))
	case int64:
		return currencyPrinter.Sprintf("$%.2f", float64(v))
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return "N/A"
		}
		return currencyPrinter.Sprintf("$%.2f", f)
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return "N/A"
		}
		return currencyPrinter.Sprintf("$%.2f", f)
	default:
		return "N/A"
	}
}

// TwitterURL derives a full profile link from a handle.
func TwitterURL(handle string) string {
	if handle == "" {
		return "No Twitter handle"
	}
	return "https://twitter.com/" + handle
}

// DisplayProtocols builds the formatted, request-scoped view of the candidates
// handed to metadata synthesis.
func DisplayProtocols(candidates []types.MatchCandidate) []types.DisplayProtocol {
	displays := make([]types.DisplayProtocol, 0, len(candidates))
	for _, candidate := range candidates {
		protocol := candidate.Protocol
		name := protocol.Name
		if name == "" {
			name = "Unknown"
		}
		symbol := protocol.Symbol
		if symbol == "" {
			symbol = "Unknown"
		}
		audits := protocol.Audits
		if audits == nil {
			audits = "No audit information"
		}
		displays = append(displays, types.DisplayProtocol{
			Name:       name,
			Symbol:     symbol,
			TVL:        FormatTVL(protocol.TVL),
			Audits:     audits,
			AuditLinks: protocol.AuditLinks,
			Twitter:    TwitterURL(protocol.Twitter),
		})
	}
	return displays
}
