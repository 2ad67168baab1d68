package repository

// MatchOffer is a featured challenge.
type MatchOffer struct {
	ID             string
	OpponentName   string
	OpponentRating int
	LatencyMs      int
	WagerToken     string
	WagerAmount    float64
}

// Highlight is the dashboard banner.
type Highlight struct {
	Title    string
	Subtitle string
}

// Opening is a recommended opening line.
type Opening struct {
	Name string
	Note string
}

// WalletProfile describes the demo wallet on one network.
type WalletProfile struct {
	Network            string
	PlaceholderAddress string
	EstimatedBalance   float64
	BalanceToken       string
}

// Deposit is a deposit history row.
type Deposit struct {
	Amount float64
	Token  string
}

// SwapPair is the quote for one token pair.
type SwapPair struct {
	FromToken  string
	ToToken    string
	Rate       float64
	NetworkFee float64
}

// LiquidityQuote is one aggregated liquidity rate for a pair.
type LiquidityQuote struct {
	FromToken string
	ToToken   string
	Rate      float64
}

// SecurityCheck is one anti-fraud checklist item.
type SecurityCheck struct {
	Label  string
	Passed bool
}

// SecurityReport is the anti-fraud panel content.
type SecurityReport struct {
	RiskScore int
	Checks    []SecurityCheck
}
