package ui

import (
	"time"

	"alphadash/internal/filter"
)

// Coin is one row of the market overview table.
type Coin struct {
	Symbol string
	Name   string
	Price  float64
	// Change maps a timeframe label ("1h", "24h", "7d") to percent change.
	Change map[string]float64
	Cap    string
	Sector string
	Chain  string
}

var mockCoins = []Coin{
	{"BTC", "Bitcoin", 67321.55, map[string]float64{"1h": 0.4, "24h": 2.1, "7d": -3.2}, "$1.32T", "", "Bitcoin"},
	{"ETH", "Ethereum", 3512.08, map[string]float64{"1h": -0.2, "24h": 1.4, "7d": 5.9}, "$421B", "DeFi", "Ethereum"},
	{"USDT", "Tether", 1.00, map[string]float64{"1h": 0.0, "24h": 0.01, "7d": -0.02}, "$110B", "RWA", "Tron"},
	{"XRP", "XRP", 0.52, map[string]float64{"1h": 0.9, "24h": -1.8, "7d": 4.4}, "$28.7B", "RWA", "Ethereum"},
	{"BNB", "BNB", 584.11, map[string]float64{"1h": 0.1, "24h": 0.7, "7d": 1.2}, "$86.1B", "DeFi", "BNB Chain"},
	{"SOL", "Solana", 171.42, map[string]float64{"1h": 1.3, "24h": 6.2, "7d": 11.8}, "$79.4B", "DeFi", "Solana"},
	{"ARB", "Arbitrum", 0.91, map[string]float64{"1h": -0.6, "24h": -3.1, "7d": -7.5}, "$3.1B", "DeFi", "Arbitrum"},
	{"FET", "Fetch.ai", 1.62, map[string]float64{"1h": 2.2, "24h": 9.4, "7d": 21.0}, "$4.1B", "AI", "Ethereum"},
	{"BONK", "Bonk", 0.000023, map[string]float64{"1h": 3.8, "24h": 14.2, "7d": -9.1}, "$1.5B", "Meme", "Solana"},
	{"RNDR", "Render", 7.85, map[string]float64{"1h": 0.5, "24h": 4.0, "7d": 2.6}, "$3.0B", "DePIN", "Solana"},
	{"IMX", "Immutable", 1.74, map[string]float64{"1h": -1.1, "24h": -0.4, "7d": 3.3}, "$2.6B", "Gaming", "Ethereum"},
	{"POL", "Polygon", 0.56, map[string]float64{"1h": 0.2, "24h": -2.2, "7d": -4.0}, "$5.2B", "DeFi", "Polygon"},
}

// Post is one entry of the KOL feed.
type Post struct {
	Author     string
	Handle     string
	Platform   string
	Followers  int // bucket index into the followers vocabulary
	Tier       string
	Narrative  string
	Engagement string
	Sentiment  string
	Text       string
	Ago        string
}

var mockPosts = []Post{
	{"Ansem", "@blknoiz06", "X", 3, "Mega influencer", "Meme", "Viral", "Bullish",
		"SOL memes are just getting started, rotation incoming", "12m"},
	{"Cobie", "@cobie", "X", 3, "Macro influencer", "AI", "Organic", "Bearish",
		"AI agent tokens priced like they already won", "41m"},
	{"RWA Weekly", "t.me/rwaweekly", "Telegram", 2, "Researcher and analyst", "RWA", "Organic", "Bullish",
		"Treasury tokenization crossed $2B this week", "1h"},
	{"degen_mike", "u/degen_mike", "Reddit", 0, "Micro influencer", "Meme", "Controversial", "Bullish",
		"Aped the new dog coin, 40x or zero", "2h"},
	{"Nansen Alpha", "@nansen_alpha", "X", 2, "Smart money influencer", "DePin", "Organic", "Bullish",
		"Smart wallets accumulating RNDR for 5 straight days", "3h"},
	{"ChainGuild", "ChainGuild#0420", "Discord", 1, "Micro influencer", "RWA", "Paid/Promo", "Bullish",
		"Partnered launch: tokenized real estate pool opens Friday", "5h"},
	{"The Block Res.", "@TheBlockRes", "X", 3, "Researcher and analyst", "AI", "Organic", "Bearish",
		"Compute token unlocks will add 8% supply next month", "7h"},
}

// Event is one row of the on-chain detection grid.
type Event struct {
	Date     filter.Date
	Time     string
	Chain    string
	Type     string
	Severity string
	Token    string
	Detail   string
}

// mockEvents are dated relative to now so the grid never looks stale.
func mockEvents(now time.Time) []Event {
	day := func(back int) filter.Date { return filter.DateOf(now.AddDate(0, 0, -back)) }
	return []Event{
		{day(0), "14:02", "Solana", "Whale Buy", "Medium", "BONK", "Wallet 7xKp… bought 1.2B BONK"},
		{day(0), "13:47", "Ethereum", "Smart Money", "Low", "FET", "3 tracked funds added FET"},
		{day(0), "13:15", "Base", "Sniper Bot", "High", "BRETT2", "Bot bought 18% supply in first block"},
		{day(1), "22:40", "BNB Chain", "Liquidity Removal", "High", "PEPE2", "92% of LP pulled by deployer"},
		{day(2), "09:12", "Arbitrum", "Token Launch", "Low", "GMXV3", "New pair GMXV3/WETH, 40 ETH liquidity"},
		{day(3), "17:55", "Solana", "Risk Spike", "Medium", "WIFHAT", "Holder concentration jumped to 61%"},
		{day(6), "11:03", "Ethereum", "Whale Buy", "Low", "ONDO", "Whale 0x3f… bought $4.8M ONDO"},
		{day(9), "08:30", "Base", "Risk Spike", "High", "DEGEN", "Mint authority re-enabled"},
	}
}

// Transfer is one row of the detection screen's live wallet feed.
type Transfer struct {
	Chain  string
	Wallet string
	Action string
	Amount string
}

var mockTransfers = []Transfer{
	{"Solana", "7xKp…3Qm", "buy", "$214k BONK"},
	{"Ethereum", "0x3f…a91", "buy", "$4.8M ONDO"},
	{"Base", "0x9c…11e", "sell", "$61k DEGEN"},
	{"Arbitrum", "0x7d…be2", "add LP", "$120k GMXV3"},
	{"BNB Chain", "0x44…0f3", "remove LP", "$890k PEPE2"},
}
