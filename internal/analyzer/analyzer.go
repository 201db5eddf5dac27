package analyzer

import (
	"time"

	"CryptoLive/internal/calculator"
	"CryptoLive/internal/model"
)

// TopN is the number of assets reported by market cap.
const TopN = 5

// Analyze computes the market summary for one table. The caller guards
// against an empty table; given one, Analyze returns a zero analysis.
func Analyze(table model.SnapshotTable) *model.MarketAnalysis {
	a := &model.MarketAnalysis{
		AssetCount:  len(table),
		GeneratedAt: time.Now(),
	}
	if table.Empty() {
		return a
	}

	// Every error below is either ErrEmptyTable, ruled out above, or
	// ErrNoChangeData, which leaves the field nil.
	a.TopByMarketCap, _ = calculator.TopByMarketCap(table, TopN)
	a.AveragePrice, _ = calculator.CalculateMeanPrice(table)
	a.HighestChange, _ = calculator.HighestChange(table)
	a.LowestChange, _ = calculator.LowestChange(table)

	return a
}
