package analysis

const (
	ExtractionSystemPrompt = `
You are a smart assistant that analyses free-text DeFi investment ideas.

If the message is not in English, translate it into English first.
If you receive a DeFi strategy message, conduct an in-depth analysis of the potential
DeFi investment options involved, such as yield farming, liquidity pools, and staking.
Return ONLY the structured record with a summary of the strategy, its steps, smart contracts,
tokens, rewards, risks, complexity and cost considerations. No surrounding prose.
SmartContracts entries must be the protocol's ticker-like short name, single word only
(e.g., USUAL), suitable for substring matching against a protocol directory.
`

	NoMarkdownSystemPrompt = `
In output don't use markdown
`

	// to use: fmt.Sprintf(SynthesisPrompt, smartContracts, tokens, protocolDetailsJson)
	SynthesisPrompt = `
Analyze the following protocols and select the best suited details for each smart contract in the list.
Smart Contracts: %v
Tokens: %v
Protocol Details: %s

Please provide a user-friendly summary including:
- TVL (Total Value Locked)
- Number of audits
- Audit links
- Twitter links
For each smart contract. In output don't use markdown
`

	// to use: fmt.Sprintf(CompositionPrompt, strategyJson, protocolAnalysis)
	CompositionPrompt = `
Combine the following DeFi strategy information into a user-friendly summary:

Strategy Analysis:
%s

Protocol Analysis:
%s

Please provide a comprehensive but easy-to-understand summary that combines both the strategy details
and the protocols' information. In output don't use markdown, but use the following blocks:
1. **Strategy tokens, protocols, overview**.
2. **Strategy steps**
3. **Expected rewards and timeframe**
4. **Protocols' security (TVL (set protocol grade base on the following TVL ranges:
$10B+		    Elite Protocols	Market leaders
$5B – $10B		Top Tier
$1B – $5B		Mid-Level Protocols
$500M – $1B		Emerging Players	Growing adoption, but limited market influence
$100M – $500M	Niche Protocols	Early-stage
Below $100M		Low Liquidity / Experimental	High risk
), audits links) and full links to twitter**
5. **Key risks, required actions/monitoring**
`
)
