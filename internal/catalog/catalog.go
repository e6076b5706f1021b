// Package catalog holds the course list as fixed in-application
// reference data. Courses are not stored in the database; purchase and
// cart rows reference them by ID.
package catalog

// Module is one unit of a course curriculum.
type Module struct {
	Title   string   `json:"title"`
	Lessons []string `json:"lessons"`
}

// Course describes a sellable course.
type Course struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Price     float64  `json:"price"`
	Duration  string   `json:"duration"`
	Level     string   `json:"level"`
	ShortDesc string   `json:"short_desc"`
	Modules   []Module `json:"modules"`
}

var courses = []Course{
	{
		ID:        "basics-of-trading",
		Title:     "Basics of Trading",
		Price:     7000,
		Duration:  "6 Weeks",
		Level:     "Beginner",
		ShortDesc: "Master the fundamentals of trading from scratch",
		Modules: []Module{
			{Title: "Introduction to Financial Markets", Lessons: []string{
				"Understanding Stock Markets",
				"Types of Financial Instruments",
				"Market Participants and Their Roles",
				"Trading Sessions and Market Hours",
			}},
			{Title: "Technical Analysis Fundamentals", Lessons: []string{
				"Reading Candlestick Charts",
				"Support and Resistance Levels",
				"Trend Lines and Chart Patterns",
				"Popular Technical Indicators (MA, RSI, MACD)",
			}},
			{Title: "Risk Management", Lessons: []string{
				"Position Sizing Strategies",
				"Stop Loss and Take Profit",
				"Risk-Reward Ratio Calculation",
				"Portfolio Diversification Basics",
			}},
			{Title: "Developing Your Trading Plan", Lessons: []string{
				"Setting Trading Goals",
				"Creating a Trading Journal",
				"Backtesting Strategies",
				"Psychology of Trading",
			}},
		},
	},
	{
		ID:        "btc-master",
		Title:     "BTC Master",
		Price:     8000,
		Duration:  "8 Weeks",
		Level:     "Intermediate",
		ShortDesc: "Become a Bitcoin trading expert",
		Modules: []Module{
			{Title: "Bitcoin Fundamentals", Lessons: []string{
				"History and Evolution of Bitcoin",
				"Blockchain Technology Explained",
				"Bitcoin Halving and Supply Economics",
				"On-Chain Analysis Basics",
			}},
			{Title: "Bitcoin Market Dynamics", Lessons: []string{
				"Crypto Exchanges and Liquidity",
				"Order Types and Market Microstructure",
				"Volatility Patterns in Crypto",
				"Funding Rates and Open Interest",
			}},
			{Title: "Advanced Technical Analysis for BTC", Lessons: []string{
				"Bitcoin-Specific Chart Patterns",
				"Fibonacci Retracements in Crypto",
				"Volume Profile Analysis",
				"Multi-Timeframe Confluence",
			}},
			{Title: "Bitcoin Trading Strategies", Lessons: []string{
				"Swing Trading Bitcoin Cycles",
				"Scalping Strategies",
				"Position Trading the Halving Cycle",
				"Managing Leverage Safely",
			}},
			{Title: "Wallet Security & Management", Lessons: []string{
				"Hot vs Cold Storage",
				"Hardware Wallet Setup",
				"Exchange Security Practices",
				"Protecting Against Common Scams",
			}},
		},
	},
	{
		ID:        "crypto-market",
		Title:     "Crypto Market (Basic to Advance)",
		Price:     8000,
		Duration:  "10 Weeks",
		Level:     "All Levels",
		ShortDesc: "Complete cryptocurrency trading mastery",
		Modules: []Module{
			{Title: "Cryptocurrency Ecosystem Overview", Lessons: []string{
				"Major Blockchains and Their Tokens",
				"Stablecoins and Their Role",
				"Centralized vs Decentralized Exchanges",
				"Reading Whitepapers Critically",
			}},
			{Title: "Altcoin Trading Strategies", Lessons: []string{
				"Altcoin Season Indicators",
				"Market Cap and Liquidity Analysis",
				"Narrative-Driven Trading",
				"Rotation Strategies",
			}},
			{Title: "DeFi and Yield Farming", Lessons: []string{
				"Lending and Borrowing Protocols",
				"Liquidity Pools and Impermanent Loss",
				"Staking Strategies",
				"Evaluating Protocol Risk",
			}},
			{Title: "NFTs and Emerging Trends", Lessons: []string{
				"NFT Market Mechanics",
				"Identifying Emerging Sectors",
				"On-Chain Metrics for Trends",
				"Avoiding Hype Traps",
			}},
			{Title: "Advanced Portfolio Management", Lessons: []string{
				"Crypto Portfolio Construction",
				"Rebalancing Strategies",
				"Correlation Analysis",
				"Tax-Aware Position Management",
			}},
			{Title: "Risk Management in Crypto", Lessons: []string{
				"Exchange Counterparty Risk",
				"Drawdown Control",
				"Hedging With Derivatives",
				"Building a Risk Checklist",
			}},
		},
	},
	{
		ID:        "gold-digger",
		Title:     "Gold Digger Strategy",
		Price:     10000,
		Duration:  "12 Weeks",
		Level:     "Advanced",
		ShortDesc: "Elite momentum trading strategies",
		Modules: []Module{
			{Title: "Institutional Trading Mindset", Lessons: []string{
				"How Institutions Move Markets",
				"Order Flow Basics",
				"Liquidity Hunting",
				"Smart Money Concepts",
			}},
			{Title: "Advanced Momentum Strategies", Lessons: []string{
				"Breakout Momentum Systems",
				"Relative Strength Screening",
				"Momentum Divergence Signals",
				"Entry and Exit Timing",
			}},
			{Title: "High-Frequency Trading Techniques", Lessons: []string{
				"Tape Reading Essentials",
				"Level 2 and Order Book Analysis",
				"Scalping the Open",
				"Latency and Execution Quality",
			}},
			{Title: "Market Microstructure", Lessons: []string{
				"Auction Market Theory",
				"Volume at Price",
				"Market Maker Behavior",
				"Spread and Slippage Management",
			}},
			{Title: "Options and Derivatives for Momentum", Lessons: []string{
				"Options Greeks for Traders",
				"Directional Options Strategies",
				"Futures for Momentum Capture",
				"Managing Derivative Risk",
			}},
			{Title: "Risk Management for Aggressive Trading", Lessons: []string{
				"Sizing for High-Volatility Setups",
				"Daily Loss Limits",
				"Recovering From Drawdowns",
				"Performance Review Cadence",
			}},
			{Title: "Building Trading Systems", Lessons: []string{
				"Rule-Based System Design",
				"Backtesting and Forward Testing",
				"Automation Basics",
				"Continuous Improvement Loops",
			}},
		},
	},
}

// Courses returns the full course list.
func Courses() []Course {
	return courses
}

// Find returns the course with the given ID.
func Find(id string) (Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return Course{}, false
}
