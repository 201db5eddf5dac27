package collector

import (
	"context"

	"CryptoLive/internal/model"

	"go.uber.org/zap"
)

// MockFetcher returns a fixed table or error, for development and testing.
type MockFetcher struct {
	Table model.SnapshotTable
	Err   error
	Calls int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchMarkets(_ context.Context) (model.SnapshotTable, error) {
	m.Calls++
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Table, nil
}

// Collector wraps a Fetcher and turns every failure into an empty table.
type Collector struct {
	Fetcher Fetcher
	log     *zap.Logger
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher, log *zap.Logger) *Collector {
	return &Collector{Fetcher: fetcher, log: log.Named("collector")}
}

// Collect fetches the current market table. It never fails: a fetch error is
// logged and reported as an empty table so the caller can skip the cycle.
func (c *Collector) Collect(ctx context.Context) model.SnapshotTable {
	table, err := c.Fetcher.FetchMarkets(ctx)
	if err != nil {
		c.log.Warn("Failed to fetch data", zap.String("source", c.Fetcher.Name()), zap.Error(err))
		return model.SnapshotTable{}
	}
	c.log.Debug("fetched market data", zap.String("source", c.Fetcher.Name()), zap.Int("assets", len(table)))
	return table
}
