package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
)

const bybitBaseURL = "https://api.bybit.com"

// BybitProvider fetches perpetual-futures funding history from the
// Bybit v5 public API, one instrument per call. It is the primary
// funding-rate source.
type BybitProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewBybitProvider(tracer trace.Tracer) *BybitProvider {
	return &BybitProvider{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: bybitBaseURL,
		tracer:  tracer,
	}
}

// FetchFundingRate returns the most recent funding-rate fraction for
// one linear perp instrument.
func (p *BybitProvider) FetchFundingRate(ctx context.Context, instrument string) (decimal.Decimal, error) {
	_, span := p.tracer.Start(ctx, "bybit.fetch-funding-rate")
	defer span.End()

	url := fmt.Sprintf("%s/v5/market/funding/history?category=linear&symbol=%s&limit=1",
		p.baseURL, instrument)

	var payload struct {
		RetCode int    `json:"retCode"`
		RetMsg  string `json:"retMsg"`
		Result  struct {
			List []struct {
				Symbol      string `json:"symbol"`
				FundingRate string `json:"fundingRate"`
			} `json:"list"`
		} `json:"result"`
	}
	if err := getJSON(ctx, p.client, url, &payload); err != nil {
		return decimal.Zero, fmt.Errorf("fetch funding history for %s: %w", instrument, err)
	}
	if payload.RetCode != 0 {
		return decimal.Zero, fmt.Errorf("funding history error %d for %s: %s",
			payload.RetCode, instrument, payload.RetMsg)
	}
	if len(payload.Result.List) == 0 {
		return decimal.Zero, fmt.Errorf("no funding history rows for %s", instrument)
	}

	rate, err := decimal.NewFromString(payload.Result.List[0].FundingRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse funding rate for %s: %w", instrument, err)
	}
	return rate, nil
}
