package calculator

import (
	"errors"

	"CryptoLive/internal/model"
)

// ErrNoChangeData means no asset in the table reported a 24h change.
var ErrNoChangeData = errors.New("no 24h change data")

// HighestChange returns the asset with the largest 24h price change.
// Assets without a change value are skipped; the first of equal values wins.
func HighestChange(table model.SnapshotTable) (*model.AssetSnapshot, error) {
	return extremeChange(table, func(candidate, best model.AssetSnapshot) bool {
		return candidate.PriceChange24h.Decimal.GreaterThan(best.PriceChange24h.Decimal)
	})
}

// LowestChange returns the asset with the smallest 24h price change.
// Assets without a change value are skipped; the first of equal values wins.
func LowestChange(table model.SnapshotTable) (*model.AssetSnapshot, error) {
	return extremeChange(table, func(candidate, best model.AssetSnapshot) bool {
		return candidate.PriceChange24h.Decimal.LessThan(best.PriceChange24h.Decimal)
	})
}

func extremeChange(table model.SnapshotTable, better func(candidate, best model.AssetSnapshot) bool) (*model.AssetSnapshot, error) {
	if table.Empty() {
		return nil, ErrEmptyTable
	}
	best := -1
	for i, a := range table {
		if !a.PriceChange24h.Valid {
			continue
		}
		if best < 0 || better(a, table[best]) {
			best = i
		}
	}
	if best < 0 {
		return nil, ErrNoChangeData
	}
	picked := table[best]
	return &picked, nil
}
