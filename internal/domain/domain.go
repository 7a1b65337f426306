package domain

// Asset identifies one tracked crypto asset and the names the upstream
// APIs know it by.
type Asset struct {
	Symbol       string   // short symbol, e.g. "BTC"
	CoinGeckoID  string   // CoinGecko coin id, e.g. "bitcoin"
	SpotTicker   string   // spot/linear-perp ticker, e.g. "BTCUSDT"
	PerpVariants []string // perp instrument names, USDT- and USD-margined
}

// Assets is the fixed asset set, in dataset column order.
var Assets = []Asset{
	{Symbol: "BTC", CoinGeckoID: "bitcoin", SpotTicker: "BTCUSDT", PerpVariants: []string{"BTCUSDT", "BTCUSD_PERP"}},
	{Symbol: "ETH", CoinGeckoID: "ethereum", SpotTicker: "ETHUSDT", PerpVariants: []string{"ETHUSDT", "ETHUSD_PERP"}},
	{Symbol: "SOL", CoinGeckoID: "solana", SpotTicker: "SOLUSDT", PerpVariants: []string{"SOLUSDT", "SOLUSD_PERP"}},
}
