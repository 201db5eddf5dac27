package reporter

import "CryptoLive/internal/model"

// NoopReporter discards tables; used for dry runs.
type NoopReporter struct{}

func NewNoopReporter() *NoopReporter { return &NoopReporter{} }

func (n *NoopReporter) Write(_ model.SnapshotTable) (string, error) { return "", nil }
func (n *NoopReporter) Close() error                                { return nil }
