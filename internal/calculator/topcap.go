package calculator

import (
	"errors"
	"sort"

	"CryptoLive/internal/model"
)

// TopByMarketCap returns the n assets with the largest market cap, largest
// first. Equal caps keep their table order. The input is not modified.
func TopByMarketCap(table model.SnapshotTable, n int) ([]model.AssetSnapshot, error) {
	if n <= 0 {
		return nil, errors.New("n must be positive")
	}
	if table.Empty() {
		return nil, ErrEmptyTable
	}
	sorted := make([]model.AssetSnapshot, len(table))
	copy(sorted, table)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MarketCap.GreaterThan(sorted[j].MarketCap)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted, nil
}
