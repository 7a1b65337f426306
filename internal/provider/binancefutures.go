package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
)

const binanceFuturesBaseURL = "https://fapi.binance.com/fapi/v1"

// BinanceFuturesProvider fetches premium-index data for every perp
// instrument in one bulk call. It serves as the funding-rate fallback
// when the per-instrument source yields nothing at all.
type BinanceFuturesProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewBinanceFuturesProvider(tracer trace.Tracer) *BinanceFuturesProvider {
	return &BinanceFuturesProvider{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: binanceFuturesBaseURL,
		tracer:  tracer,
	}
}

// FetchFundingRates returns current funding-rate fractions keyed by
// instrument name for the whole exchange. Entries with unparseable
// rates are omitted.
func (p *BinanceFuturesProvider) FetchFundingRates(ctx context.Context) (map[string]decimal.Decimal, error) {
	_, span := p.tracer.Start(ctx, "binance-futures.fetch-funding-rates")
	defer span.End()

	url := p.baseURL + "/premiumIndex"

	var entries []struct {
		Symbol          string `json:"symbol"`
		LastFundingRate string `json:"lastFundingRate"`
	}
	if err := getJSON(ctx, p.client, url, &entries); err != nil {
		return nil, fmt.Errorf("fetch premium index: %w", err)
	}

	rates := make(map[string]decimal.Decimal, len(entries))
	for _, entry := range entries {
		rate, err := decimal.NewFromString(entry.LastFundingRate)
		if err != nil {
			continue
		}
		rates[entry.Symbol] = rate
	}
	return rates, nil
}
