package collector

import (
	"context"
	"log"
	"time"

	"crypto-pulse/internal/domain"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/trace"
)

// SentimentProvider yields the market sentiment index.
type SentimentProvider interface {
	FetchIndex(ctx context.Context) (int, error)
}

// PriceProvider yields USD spot prices for all tracked assets at once.
type PriceProvider interface {
	FetchPrices(ctx context.Context) (map[string]float64, error)
}

// PriceFallback yields per-symbol spot prices from an exchange ticker
// list, best effort.
type PriceFallback interface {
	FetchTickerPrices(ctx context.Context) (map[string]float64, error)
}

// FundingProvider yields one instrument's funding-rate fraction.
type FundingProvider interface {
	FetchFundingRate(ctx context.Context, instrument string) (decimal.Decimal, error)
}

// FundingFallback yields funding-rate fractions for all instruments in
// one bulk call.
type FundingFallback interface {
	FetchFundingRates(ctx context.Context) (map[string]decimal.Decimal, error)
}

// Collector runs one collection cycle: sentiment, prices, funding
// rates, each through its own fallback chain. A source failure degrades
// the affected fields to sentinels and never aborts the cycle.
type Collector struct {
	tracer          trace.Tracer
	sentiment       SentimentProvider
	prices          PriceProvider
	priceFallback   PriceFallback
	funding         FundingProvider
	fundingFallback FundingFallback
	location        *time.Location
	phaseSleep      time.Duration
	sleep           func(time.Duration)
}

func New(
	tracer trace.Tracer,
	sentiment SentimentProvider,
	prices PriceProvider,
	priceFallback PriceFallback,
	funding FundingProvider,
	fundingFallback FundingFallback,
	location *time.Location,
	phaseSleep time.Duration,
) *Collector {
	return &Collector{
		tracer:          tracer,
		sentiment:       sentiment,
		prices:          prices,
		priceFallback:   priceFallback,
		funding:         funding,
		fundingFallback: fundingFallback,
		location:        location,
		phaseSleep:      phaseSleep,
		sleep:           time.Sleep,
	}
}

// Collect assembles one fully populated record. Every column is set
// before this returns; fields whose sources failed carry sentinels.
func (c *Collector) Collect(ctx context.Context) *domain.MetricRecord {
	ctx, span := c.tracer.Start(ctx, "collector.collect")
	defer span.End()

	now := time.Now().In(c.location)
	log.Printf("Collection started at %s %s (%s)",
		now.Format("2006-01-02"), now.Format("15:04:05"), c.location)

	record := domain.NewMetricRecord(now)

	log.Println("Fetching fear & greed index...")
	record.Sentiment = c.collectSentiment(ctx)

	log.Println("Fetching spot prices...")
	c.collectPrices(ctx, record)

	// Courtesy pause between phases, not rate-limit handling.
	c.sleep(c.phaseSleep)

	log.Println("Fetching funding rates...")
	c.collectFundingRates(ctx, record)

	return record
}

func (c *Collector) collectSentiment(ctx context.Context) domain.Metric {
	value, err := c.sentiment.FetchIndex(ctx)
	if err != nil {
		log.Printf("Fear & greed index unavailable: %v", err)
		return domain.Unavailable()
	}
	return domain.IndexMetric(value)
}

// collectPrices tries the primary source all-or-nothing, then falls
// back to per-symbol ticker lookup.
func (c *Collector) collectPrices(ctx context.Context, record *domain.MetricRecord) {
	prices, err := c.prices.FetchPrices(ctx)
	if err == nil {
		for _, asset := range domain.Assets {
			record.Prices[asset.Symbol] = domain.PriceMetric(prices[asset.Symbol])
		}
		return
	}
	log.Printf("Primary price source failed: %v", err)

	log.Println("Trying exchange ticker fallback...")
	tickers, err := c.priceFallback.FetchTickerPrices(ctx)
	if err != nil {
		log.Printf("Price fallback failed: %v", err)
		for _, asset := range domain.Assets {
			record.Prices[asset.Symbol] = domain.Unavailable()
		}
		return
	}
	for _, asset := range domain.Assets {
		price, ok := tickers[asset.Symbol]
		if !ok {
			record.Prices[asset.Symbol] = domain.Unavailable()
			continue
		}
		record.Prices[asset.Symbol] = domain.PriceMetric(price)
	}
}

// collectFundingRates walks the funding tiers: per-instrument primary
// calls, then one bulk fallback only when no asset resolved at all,
// then the terminal sentinel. A resolved asset is never overwritten by
// a later tier.
func (c *Collector) collectFundingRates(ctx context.Context, record *domain.MetricRecord) {
	resolved := 0
	for _, asset := range domain.Assets {
		rate, err := c.funding.FetchFundingRate(ctx, asset.SpotTicker)
		if err != nil {
			log.Printf("Funding rate for %s unavailable: %v", asset.Symbol, err)
			record.FundingRates[asset.Symbol] = domain.Unavailable()
			continue
		}
		record.FundingRates[asset.Symbol] = domain.FundingMetric(rate)
		resolved++
	}
	if resolved > 0 {
		return
	}

	log.Println("All primary funding sources failed, trying bulk fallback...")
	rates, err := c.fundingFallback.FetchFundingRates(ctx)
	if err != nil {
		log.Printf("Funding fallback failed: %v", err)
	}
	for _, asset := range domain.Assets {
		if record.FundingRates[asset.Symbol].Resolved() {
			continue
		}
		metric := domain.Blocked()
		for _, instrument := range asset.PerpVariants {
			if rate, ok := rates[instrument]; ok {
				metric = domain.FundingMetric(rate)
				break
			}
		}
		record.FundingRates[asset.Symbol] = metric
	}
}
