package reporter

import (
	"CryptoLive/internal/model"

	"github.com/shopspring/decimal"
)

// Reporter persists the latest market table for the user to look at.
type Reporter interface {
	// Write replaces the previous report with table and returns the path
	// written, or "" when nothing was written.
	Write(table model.SnapshotTable) (string, error)
	Close() error
}

// Column headers, in row order.
var Header = []string{
	"Name",
	"Symbol",
	"Price (USD)",
	"Market Cap (USD)",
	"24h Volume (USD)",
	"24h Price Change (%)",
}

// Row flattens an asset into spreadsheet cell values matching Header.
// A missing price or 24h change becomes an empty cell.
func Row(a model.AssetSnapshot) []interface{} {
	return []interface{}{
		a.Name,
		a.Symbol,
		nullCell(a.Price),
		a.MarketCap.InexactFloat64(),
		a.Volume24h.InexactFloat64(),
		nullCell(a.PriceChange24h),
	}
}

func nullCell(d decimal.NullDecimal) interface{} {
	if !d.Valid {
		return nil
	}
	return d.Decimal.InexactFloat64()
}
