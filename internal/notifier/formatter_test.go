package notifier

import (
	"strings"
	"testing"
	"time"

	"CryptoLive/internal/model"

	"github.com/shopspring/decimal"
)

func TestFormatAnalysis(t *testing.T) {
	c := model.AssetSnapshot{
		Name: "Gamma", Symbol: "GAM",
		Price: decimal.NewNullDecimal(decimal.NewFromInt(30)), MarketCap: decimal.NewFromInt(200), Volume24h: decimal.NewFromInt(9),
		PriceChange24h: decimal.NewNullDecimal(decimal.NewFromInt(5)),
	}
	b := model.AssetSnapshot{
		Name: "Beta", Symbol: "BET",
		Price: decimal.NewNullDecimal(decimal.NewFromInt(20)), MarketCap: decimal.NewFromInt(1234567), Volume24h: decimal.NewFromInt(7),
		PriceChange24h: decimal.NewNullDecimal(decimal.RequireFromString("-1.5")),
	}
	a := &model.MarketAnalysis{
		TopByMarketCap: []model.AssetSnapshot{b, c},
		AveragePrice:   decimal.RequireFromString("25"),
		HighestChange:  &c,
		LowestChange:   &b,
		AssetCount:     2,
		GeneratedAt:    time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC),
	}

	out := FormatAnalysis(a)
	for _, want := range []string{
		"2026-10-17 09:30:00",
		"Top 2 Cryptos by Market Cap:",
		"1. Beta (BET): $1,234,567",
		"2. Gamma (GAM): $200",
		"Average Price of Top 2 Cryptos: $25",
		"Highest 24h Change: Gamma (GAM) +5.00%",
		"Lowest 24h Change: Beta (BET) -1.50%",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatAnalysis_NoMovers(t *testing.T) {
	out := FormatAnalysis(&model.MarketAnalysis{AssetCount: 1})
	if !strings.Contains(out, "Highest 24h Change: n/a") || !strings.Contains(out, "Lowest 24h Change: n/a") {
		t.Errorf("expected n/a movers:\n%s", out)
	}
}

func TestFormatAnalysis_SubDollarPrices(t *testing.T) {
	pepe := model.AssetSnapshot{
		Name: "Pepe", Symbol: "PEPE",
		Price: decimal.NewNullDecimal(decimal.RequireFromString("0.00001234")), MarketCap: decimal.NewFromInt(5000000000),
		Volume24h: decimal.NewFromInt(900000000), PriceChange24h: decimal.NewNullDecimal(decimal.NewFromInt(12)),
	}
	ghost := model.AssetSnapshot{Name: "Ghost", Symbol: "GST", PriceChange24h: decimal.NewNullDecimal(decimal.NewFromInt(-3))}
	a := &model.MarketAnalysis{
		TopByMarketCap: []model.AssetSnapshot{pepe},
		AveragePrice:   decimal.RequireFromString("0.5"),
		HighestChange:  &pepe,
		LowestChange:   &ghost,
		AssetCount:     2,
	}

	out := FormatAnalysis(a)
	for _, want := range []string{
		"price $0.00001234",
		"Average Price of Top 2 Cryptos: $0.5",
		"Lowest 24h Change: Ghost (GST) -3.00% | price $n/a",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestMoney(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"0.00001234", "0.00001234"},
		{"-0.25", "-0.25"},
		{"1", "1"},
		{"1234567.891", "1,234,567.89"},
	}
	for _, tt := range tests {
		if got := money(decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("money(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
