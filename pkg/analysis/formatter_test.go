package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
)

func TestFormatTVL(t *testing.T) {
	tests := []struct {
		name string
		tvl  any
		want string
	}{
		{"simple", 1234.5, "$1,234.50"},
		{"millions", 1234567.8, "$1,234,567.80"},
		{"large round", float64(250000000), "$250,000,000.00"},
		{"nil", nil, "N/A"},
		{"numeric string", "1234.5", "$1,234.50"},
		{"non-numeric string", "abc", "N/A"},
		{"unexpected type", []string{"x"}, "N/A"},
		{"zero", float64(0), "$0.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTVL(tt.tvl))
		})
	}
}

func TestTwitterURL(t *testing.T) {
	assert.Equal(t, "https://twitter.com/cryptoproj", TwitterURL("cryptoproj"))
	assert.Equal(t, "No Twitter handle", TwitterURL(""))
}

func TestDisplayProtocols(t *testing.T) {
	candidates := []types.MatchCandidate{
		{
			Protocol: types.ProtocolRecord{
				Name:       "Usual Protocol",
				Symbol:     "USUALX",
				TVL:        float64(250000000),
				Audits:     "2",
				AuditLinks: []string{"https://audits.example/usual"},
				Twitter:    "usualmoney",
			},
			Entity: "USUAL",
		},
		{
			Protocol: types.ProtocolRecord{},
			Entity:   "GHOST",
		},
	}

	displays := DisplayProtocols(candidates)
	require.Len(t, displays, 2)

	assert.Equal(t, "Usual Protocol", displays[0].Name)
	assert.Equal(t, "$250,000,000.00", displays[0].TVL)
	assert.Equal(t, "2", displays[0].Audits)
	assert.Equal(t, []string{"https://audits.example/usual"}, displays[0].AuditLinks)
	assert.Equal(t, "https://twitter.com/usualmoney", displays[0].Twitter)

	// missing fields degrade, never fail
	assert.Equal(t, "Unknown", displays[1].Name)
	assert.Equal(t, "Unknown", displays[1].Symbol)
	assert.Equal(t, "N/A", displays[1].TVL)
	assert.Equal(t, "No audit information", displays[1].Audits)
	assert.Equal(t, "No Twitter handle", displays[1].Twitter)
}
