package domain

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Availability classifies why a metric value may be missing.
type Availability int

const (
	AvailabilityOK Availability = iota
	AvailabilityNotAttempted // no source is wired for this metric
	AvailabilityUnavailable  // every source was tried and failed
	AvailabilityBlocked      // sources unreachable, check the exchange manually
)

const (
	sentinelNA      = "N/A"
	sentinelBlocked = "Check Exchange"
)

// Metric is a single record field: either a concrete rendered value or
// a sentinel describing why none could be obtained.
type Metric struct {
	Availability Availability
	Value        string
}

func OKMetric(value string) Metric {
	return Metric{Availability: AvailabilityOK, Value: value}
}

func NotAttempted() Metric { return Metric{Availability: AvailabilityNotAttempted} }
func Unavailable() Metric  { return Metric{Availability: AvailabilityUnavailable} }
func Blocked() Metric      { return Metric{Availability: AvailabilityBlocked} }

// Resolved reports whether the metric carries a real value.
func (m Metric) Resolved() bool { return m.Availability == AvailabilityOK }

// String renders the dataset cell for the metric.
func (m Metric) String() string {
	switch m.Availability {
	case AvailabilityOK:
		return m.Value
	case AvailabilityBlocked:
		return sentinelBlocked
	default:
		return sentinelNA
	}
}

// IndexMetric renders a sentiment index value.
func IndexMetric(value int) Metric {
	return OKMetric(strconv.Itoa(value))
}

// PriceMetric renders a USD spot price the way the upstream reported it.
func PriceMetric(price float64) Metric {
	return OKMetric(strconv.FormatFloat(price, 'f', -1, 64))
}

// FundingMetric converts a funding-rate fraction, as reported by the
// exchange, to a percentage with exactly four decimal places.
func FundingMetric(fraction decimal.Decimal) Metric {
	return OKMetric(fraction.Mul(decimal.NewFromInt(100)).StringFixed(4) + "%")
}

// MetricRecord is one fully populated collection row. Every column is
// always present; missing data is carried as a sentinel, never as an
// absent field.
type MetricRecord struct {
	Date         string
	Time         string
	Sentiment    Metric
	Prices       map[string]Metric // keyed by asset symbol
	FundingRates map[string]Metric
	OpenInterest map[string]Metric
}

// NewMetricRecord captures the collection timestamp and starts every
// metric as not attempted.
func NewMetricRecord(now time.Time) *MetricRecord {
	r := &MetricRecord{
		Date:         now.Format("2006-01-02"),
		Time:         now.Format("15:04:05"),
		Sentiment:    NotAttempted(),
		Prices:       make(map[string]Metric, len(Assets)),
		FundingRates: make(map[string]Metric, len(Assets)),
		OpenInterest: make(map[string]Metric, len(Assets)),
	}
	for _, asset := range Assets {
		r.Prices[asset.Symbol] = NotAttempted()
		r.FundingRates[asset.Symbol] = NotAttempted()
		// Open interest needs a paid API, left unimplemented.
		r.OpenInterest[asset.Symbol] = NotAttempted()
	}
	return r
}

// Header is the dataset column order.
func Header() []string {
	cols := []string{"Date", "Time", "Fear_Greed_Index"}
	for _, asset := range Assets {
		cols = append(cols,
			asset.Symbol+"_Price",
			asset.Symbol+"_Funding_Rate",
			asset.Symbol+"_Open_Interest",
		)
	}
	return cols
}

// Row renders the record cells in Header order.
func (r *MetricRecord) Row() []string {
	cells := []string{r.Date, r.Time, r.Sentiment.String()}
	for _, asset := range Assets {
		cells = append(cells,
			r.Prices[asset.Symbol].String(),
			r.FundingRates[asset.Symbol].String(),
			r.OpenInterest[asset.Symbol].String(),
		)
	}
	return cells
}
