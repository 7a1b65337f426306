package provider

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"
)

const fearGreedBaseURL = "https://api.alternative.me"

// FearGreedProvider fetches the crypto Fear & Greed index from
// alternative.me. There is no fallback source for this metric.
type FearGreedProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
}

func NewFearGreedProvider(tracer trace.Tracer) *FearGreedProvider {
	return &FearGreedProvider{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: fearGreedBaseURL,
		tracer:  tracer,
	}
}

// FetchIndex returns the latest published index value. The value is
// passed through as reported, without range validation.
func (p *FearGreedProvider) FetchIndex(ctx context.Context) (int, error) {
	_, span := p.tracer.Start(ctx, "feargreed.fetch-index")
	defer span.End()

	url := strings.TrimRight(p.baseURL, "/") + "/fng/"

	var payload struct {
		Data []struct {
			Value string `json:"value"`
		} `json:"data"`
	}
	if err := getJSON(ctx, p.client, url, &payload); err != nil {
		return 0, fmt.Errorf("fetch fear & greed index: %w", err)
	}
	if len(payload.Data) == 0 {
		return 0, fmt.Errorf("fear & greed response has no rows")
	}

	value, err := strconv.Atoi(strings.TrimSpace(payload.Data[0].Value))
	if err != nil {
		return 0, fmt.Errorf("parse fear & greed value: %w", err)
	}
	return value, nil
}
