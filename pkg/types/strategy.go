package types

// StrategyRecord is the structured extraction of a free-text DeFi strategy.
// The field set is closed: the extraction schema rejects any extra property,
// and every field is required (SmartContracts and Tokens may be empty, not null).
type StrategyRecord struct {
	Strategy           string   `json:"Strategy" jsonschema_description:"Strategy description"`
	StrategySteps      []string `json:"StrategySteps" jsonschema_description:"Array of strategy steps"`
	SmartContracts     []string `json:"SmartContracts" jsonschema_description:"Array of smart contracts involved short name single word only (e.g., USUAL)"`
	Tokens             []string `json:"Tokens" jsonschema_description:"Array of tokens involved"`
	Rewards            string   `json:"Rewards" jsonschema_description:"Potential rewards"`
	Risks              string   `json:"Risks" jsonschema_description:"Potential risks"`
	Complexity         string   `json:"Complexity" jsonschema_description:"Complexity level"`
	CostConsiderations string   `json:"CostConsiderations" jsonschema_description:"Cost considerations"`
}
