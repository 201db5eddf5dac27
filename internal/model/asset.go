package model

import "github.com/shopspring/decimal"

// MaxAssets is the page size requested from the market data API.
const MaxAssets = 50

// AssetSnapshot is one cryptocurrency's market data at fetch time.
type AssetSnapshot struct {
	Name           string
	Symbol         string // upper-cased
	Price          decimal.NullDecimal // Valid=false when upstream sends null
	MarketCap      decimal.Decimal
	Volume24h      decimal.Decimal
	PriceChange24h decimal.NullDecimal // Valid=false when upstream omits it
}

// SnapshotTable holds the assets from one poll cycle, in upstream order.
type SnapshotTable []AssetSnapshot

// Empty reports whether the table has no rows.
func (t SnapshotTable) Empty() bool { return len(t) == 0 }
