package collector

import (
	"context"

	"CryptoLive/internal/model"
)

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchMarkets(ctx context.Context) (model.SnapshotTable, error)
	Name() string
}
