package analyzer

import (
	"testing"

	"CryptoLive/internal/model"

	"github.com/shopspring/decimal"
)

func snapshot(name string, price, mcap, vol int64, chg float64) model.AssetSnapshot {
	return model.AssetSnapshot{
		Name:           name,
		Symbol:         name,
		Price:          decimal.NewNullDecimal(decimal.NewFromInt(price)),
		MarketCap:      decimal.NewFromInt(mcap),
		Volume24h:      decimal.NewFromInt(vol),
		PriceChange24h: decimal.NewNullDecimal(decimal.NewFromFloat(chg)),
	}
}

func TestAnalyze_ThreeAssets(t *testing.T) {
	table := model.SnapshotTable{
		snapshot("A", 10, 100, 5, 2.0),
		snapshot("B", 20, 300, 7, -1.0),
		snapshot("C", 30, 200, 9, 5.0),
	}
	a := Analyze(table)

	if !a.AveragePrice.Equal(decimal.NewFromInt(20)) {
		t.Errorf("average price: got %s, want 20", a.AveragePrice)
	}
	want := []string{"B", "C", "A"}
	if len(a.TopByMarketCap) != len(want) {
		t.Fatalf("top: got %d entries", len(a.TopByMarketCap))
	}
	for i, name := range want {
		if a.TopByMarketCap[i].Name != name {
			t.Errorf("top[%d]: got %s, want %s", i, a.TopByMarketCap[i].Name, name)
		}
	}
	if a.HighestChange == nil || a.HighestChange.Name != "C" {
		t.Errorf("highest change: got %+v", a.HighestChange)
	}
	if a.LowestChange == nil || a.LowestChange.Name != "B" {
		t.Errorf("lowest change: got %+v", a.LowestChange)
	}
	if a.AssetCount != 3 {
		t.Errorf("asset count: got %d", a.AssetCount)
	}
	if a.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestAnalyze_TopCappedAtFive(t *testing.T) {
	var table model.SnapshotTable
	for i := int64(1); i <= 8; i++ {
		table = append(table, snapshot(string(rune('A'+i-1)), i, i*10, 1, 0))
	}
	a := Analyze(table)
	if len(a.TopByMarketCap) != TopN {
		t.Fatalf("expected %d, got %d", TopN, len(a.TopByMarketCap))
	}
	if a.TopByMarketCap[0].Name != "H" || a.TopByMarketCap[4].Name != "D" {
		t.Errorf("unexpected order: first=%s last=%s", a.TopByMarketCap[0].Name, a.TopByMarketCap[4].Name)
	}
}

func TestAnalyze_AllChangesMissing(t *testing.T) {
	table := model.SnapshotTable{snapshot("A", 10, 100, 5, 0)}
	table[0].PriceChange24h = decimal.NullDecimal{}

	a := Analyze(table)
	if a.HighestChange != nil || a.LowestChange != nil {
		t.Errorf("expected nil extremes, got %+v / %+v", a.HighestChange, a.LowestChange)
	}
	if !a.AveragePrice.Equal(decimal.NewFromInt(10)) {
		t.Errorf("average price: got %s", a.AveragePrice)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	a := Analyze(nil)
	if a.AssetCount != 0 || a.TopByMarketCap != nil || a.HighestChange != nil {
		t.Errorf("expected zero analysis, got %+v", a)
	}
}
