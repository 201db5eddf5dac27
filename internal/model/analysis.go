package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MarketAnalysis is the summary computed for one SnapshotTable.
type MarketAnalysis struct {
	TopByMarketCap []AssetSnapshot
	AveragePrice   decimal.Decimal
	HighestChange  *AssetSnapshot // nil when no asset reports a 24h change
	LowestChange   *AssetSnapshot
	AssetCount     int
	GeneratedAt    time.Time
}
