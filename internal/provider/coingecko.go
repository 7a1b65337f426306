package provider

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"crypto-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoProvider fetches spot prices from the CoinGecko free API.
// It is the primary price source.
type CoinGeckoProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewCoinGeckoProvider(tracer trace.Tracer) *CoinGeckoProvider {
	return &CoinGeckoProvider{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: coingeckoBaseURL,
		tracer:  tracer,
	}
}

// FetchPrices fetches USD prices for every tracked asset in one call,
// keyed by asset symbol. All-or-nothing: a missing asset in the
// response fails the whole fetch so the caller can fall back without
// carrying partial state.
func (p *CoinGeckoProvider) FetchPrices(ctx context.Context) (map[string]float64, error) {
	_, span := p.tracer.Start(ctx, "coingecko.fetch-prices")
	defer span.End()

	ids := make([]string, 0, len(domain.Assets))
	for _, asset := range domain.Assets {
		ids = append(ids, asset.CoinGeckoID)
	}
	url := fmt.Sprintf("%s/simple/price?ids=%s&vs_currencies=usd",
		p.baseURL, strings.Join(ids, ","))

	// Response shape: {"bitcoin": {"usd": 65000}, ...}
	var raw map[string]map[string]float64
	if err := getJSON(ctx, p.client, url, &raw); err != nil {
		return nil, fmt.Errorf("fetch prices: %w", err)
	}

	result := make(map[string]float64, len(domain.Assets))
	for _, asset := range domain.Assets {
		quote, ok := raw[asset.CoinGeckoID]
		if !ok {
			return nil, fmt.Errorf("price response missing %s", asset.CoinGeckoID)
		}
		usd, ok := quote["usd"]
		if !ok {
			return nil, fmt.Errorf("price response missing usd quote for %s", asset.CoinGeckoID)
		}
		result[asset.Symbol] = usd
	}
	return result, nil
}
