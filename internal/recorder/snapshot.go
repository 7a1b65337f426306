package recorder

import (
	"encoding/json"
	"os"

	"crypto-pulse/internal/domain"
)

// snapshot mirrors the dataset columns as a flat JSON object, in the
// same field order.
type snapshot struct {
	Date            string `json:"Date"`
	Time            string `json:"Time"`
	FearGreedIndex  string `json:"Fear_Greed_Index"`
	BTCPrice        string `json:"BTC_Price"`
	BTCFundingRate  string `json:"BTC_Funding_Rate"`
	BTCOpenInterest string `json:"BTC_Open_Interest"`
	ETHPrice        string `json:"ETH_Price"`
	ETHFundingRate  string `json:"ETH_Funding_Rate"`
	ETHOpenInterest string `json:"ETH_Open_Interest"`
	SOLPrice        string `json:"SOL_Price"`
	SOLFundingRate  string `json:"SOL_Funding_Rate"`
	SOLOpenInterest string `json:"SOL_Open_Interest"`
}

func snapshotFrom(record *domain.MetricRecord) snapshot {
	return snapshot{
		Date:            record.Date,
		Time:            record.Time,
		FearGreedIndex:  record.Sentiment.String(),
		BTCPrice:        record.Prices["BTC"].String(),
		BTCFundingRate:  record.FundingRates["BTC"].String(),
		BTCOpenInterest: record.OpenInterest["BTC"].String(),
		ETHPrice:        record.Prices["ETH"].String(),
		ETHFundingRate:  record.FundingRates["ETH"].String(),
		ETHOpenInterest: record.OpenInterest["ETH"].String(),
		SOLPrice:        record.Prices["SOL"].String(),
		SOLFundingRate:  record.FundingRates["SOL"].String(),
		SOLOpenInterest: record.OpenInterest["SOL"].String(),
	}
}

// writeSnapshot replaces the latest-snapshot file with this record.
func (r *Recorder) writeSnapshot(record *domain.MetricRecord) error {
	data, err := json.MarshalIndent(snapshotFrom(record), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(r.snapshotPath, append(data, '\n'), 0o644)
}
