package domain

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestMetricString(t *testing.T) {
	tests := []struct {
		metric   Metric
		expected string
	}{
		{OKMetric("42"), "42"},
		{NotAttempted(), "N/A"},
		{Unavailable(), "N/A"},
		{Blocked(), "Check Exchange"},
	}
	for _, tt := range tests {
		if got := tt.metric.String(); got != tt.expected {
			t.Fatalf("expected %q, got %q", tt.expected, got)
		}
	}
}

func TestFundingMetricFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^-?\d+\.\d{4}%$`)
	tests := map[string]string{
		"0.0001":    "0.0100%",
		"-0.000375": "-0.0375%",
		"0":         "0.0000%",
		"0.01":      "1.0000%",
	}
	for fraction, expected := range tests {
		d, err := decimal.NewFromString(fraction)
		if err != nil {
			t.Fatalf("parse %s: %v", fraction, err)
		}
		m := FundingMetric(d)
		if m.Value != expected {
			t.Fatalf("%s: expected %q, got %q", fraction, expected, m.Value)
		}
		if !pattern.MatchString(m.Value) {
			t.Fatalf("%s: %q does not match funding-rate pattern", fraction, m.Value)
		}
	}
}

func TestPriceMetric(t *testing.T) {
	if got := PriceMetric(65000).Value; got != "65000" {
		t.Fatalf("expected 65000, got %s", got)
	}
	if got := PriceMetric(150.25).Value; got != "150.25" {
		t.Fatalf("expected 150.25, got %s", got)
	}
}

func TestNewMetricRecordDefaults(t *testing.T) {
	now := time.Date(2026, 2, 14, 3, 0, 5, 0, time.UTC)
	r := NewMetricRecord(now)

	if r.Date != "2026-02-14" || r.Time != "03:00:05" {
		t.Fatalf("unexpected timestamp columns: %s %s", r.Date, r.Time)
	}
	for _, asset := range Assets {
		if r.Prices[asset.Symbol].Availability != AvailabilityNotAttempted {
			t.Fatalf("%s price should start not attempted", asset.Symbol)
		}
		if r.OpenInterest[asset.Symbol].String() != "N/A" {
			t.Fatalf("%s open interest should render N/A", asset.Symbol)
		}
	}
}

func TestRowMatchesHeader(t *testing.T) {
	r := NewMetricRecord(time.Now())
	header := Header()
	row := r.Row()
	if len(header) != len(row) {
		t.Fatalf("header has %d columns, row has %d", len(header), len(row))
	}
	if header[2] != "Fear_Greed_Index" {
		t.Fatalf("unexpected header: %v", header)
	}
	if header[3] != "BTC_Price" || header[len(header)-1] != "SOL_Open_Interest" {
		t.Fatalf("unexpected column order: %v", header)
	}
}
