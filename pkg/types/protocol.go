package types

// ProtocolRecord is one entry of the DeFi Llama protocol directory. The payload
// is owned by the directory service: names and symbols are not unique keys, and
// the pipeline only reads the fields below. TVL and Audits stay untyped because
// the source mixes numbers, strings and nulls; a malformed value must degrade at
// formatting time, never fail the fetch.
type ProtocolRecord struct {
	Name       string   `json:"name"`
	Symbol     string   `json:"symbol"`
	TVL        any      `json:"tvl"`
	Audits     any      `json:"audits"`
	AuditLinks []string `json:"audit_links"`
	Twitter    string   `json:"twitter"`
}

// MatchCandidate tags a protocol with the strategy entity (contract short name
// or token symbol) that matched it. Candidates are not deduplicated by protocol
// identity: a protocol matched by both the contract sweep and the token sweep
// appears once per sweep.
type MatchCandidate struct {
	Protocol ProtocolRecord
	Entity   string
}

// DisplayProtocol is the formatted, request-scoped view handed to metadata
// synthesis. Never persisted.
type DisplayProtocol struct {
	Name       string   `json:"name"`
	Symbol     string   `json:"symbol"`
	TVL        string   `json:"tvl"`
	Audits     any      `json:"audits"`
	AuditLinks []string `json:"audit_links"`
	Twitter    string   `json:"twitter"`
}
