package provider

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"crypto-pulse/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

const binanceBaseURL = "https://api.binance.com"

// BinanceProvider fetches spot ticker prices from the Binance public
// API. It serves as the per-symbol price fallback when the primary
// source is unavailable.
type BinanceProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewBinanceProvider(tracer trace.Tracer) *BinanceProvider {
	return &BinanceProvider{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: binanceBaseURL,
		tracer:  tracer,
	}
}

// FetchTickerPrices returns last prices keyed by asset symbol for every
// tracked asset present in the full ticker list. Assets whose ticker is
// absent or unparseable are simply omitted.
func (p *BinanceProvider) FetchTickerPrices(ctx context.Context) (map[string]float64, error) {
	_, span := p.tracer.Start(ctx, "binance.fetch-ticker-prices")
	defer span.End()

	url := p.baseURL + "/api/v3/ticker/price"

	var entries []struct {
		Symbol string `json:"symbol"`
		Price  string `json:"price"`
	}
	if err := getJSON(ctx, p.client, url, &entries); err != nil {
		return nil, fmt.Errorf("fetch ticker prices: %w", err)
	}

	wanted := make(map[string]string, len(domain.Assets)) // ticker -> symbol
	for _, asset := range domain.Assets {
		wanted[asset.SpotTicker] = asset.Symbol
	}

	result := make(map[string]float64, len(domain.Assets))
	for _, entry := range entries {
		symbol, ok := wanted[entry.Symbol]
		if !ok {
			continue
		}
		price, err := strconv.ParseFloat(entry.Price, 64)
		if err != nil {
			continue
		}
		result[symbol] = price
	}
	return result, nil
}
