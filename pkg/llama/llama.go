package llama

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mr-procrastinator/defi-idea-analyse/pkg/http"
	"github.com/mr-procrastinator/defi-idea-analyse/pkg/types"
)

const defaultBaseUrl = "https://api.llama.fi"

type Config struct {
	BaseUrl string
}

// Client fetches the protocol directory from DeFi Llama. One GET per call, no
// retries and no caching: the pipeline wants a fresh snapshot per request and
// treats any failure as terminal.
type Client struct {
	baseUrl string
}

func NewClient(cfg Config) *Client {
	if cfg.BaseUrl == "" {
		cfg.BaseUrl = defaultBaseUrl
	}
	return &Client{baseUrl: cfg.BaseUrl}
}

// Protocols returns the full directory snapshot. Only the fields the pipeline
// reads are decoded; unknown fields are ignored and missing ones stay zero.
func (c *Client) Protocols(ctx context.Context) ([]types.ProtocolRecord, error) {
	statusCode, resBody, err := http.GetRequest(ctx, c.baseUrl+"/protocols", "")
	if err != nil {
		return nil, fmt.Errorf("fail to fetch protocols: %w", err)
	}
	if statusCode != 200 {
		return nil, fmt.Errorf("fail to fetch protocols: status %v", statusCode)
	}

	var protocols []types.ProtocolRecord
	if err := json.Unmarshal(resBody, &protocols); err != nil {
		return nil, fmt.Errorf("fail to decode protocols payload: %w", err)
	}
	return protocols, nil
}
