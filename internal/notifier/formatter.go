package notifier

import (
	"fmt"
	"strings"

	"CryptoLive/internal/model"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// FormatAnalysis renders the market analysis for the console.
func FormatAnalysis(a *model.MarketAnalysis) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 CryptoLive | %s\n\n", a.GeneratedAt.Format("2006-01-02 15:04:05")))

	b.WriteString(fmt.Sprintf("Top %d Cryptos by Market Cap:\n", len(a.TopByMarketCap)))
	for i, asset := range a.TopByMarketCap {
		b.WriteString(fmt.Sprintf("  %d. %s (%s): $%s\n", i+1, asset.Name, asset.Symbol, money(asset.MarketCap)))
	}

	b.WriteString(fmt.Sprintf("\nAverage Price of Top %d Cryptos: $%s\n", a.AssetCount, money(a.AveragePrice)))
	b.WriteString(fmt.Sprintf("Highest 24h Change: %s\n", formatMover(a.HighestChange)))
	b.WriteString(fmt.Sprintf("Lowest 24h Change: %s\n", formatMover(a.LowestChange)))

	return b.String()
}

func formatMover(a *model.AssetSnapshot) string {
	if a == nil {
		return "n/a"
	}
	return fmt.Sprintf("%s (%s) %s%% | price $%s | volume $%s",
		a.Name, a.Symbol, signed(a.PriceChange24h.Decimal), nullMoney(a.Price), money(a.Volume24h))
}

// money groups thousands with two decimals. Values under one dollar keep
// every digit so sub-cent prices do not print as $0.
func money(d decimal.Decimal) string {
	if !d.IsZero() && d.Abs().LessThan(decimal.NewFromInt(1)) {
		return d.String()
	}
	return humanize.CommafWithDigits(d.InexactFloat64(), 2)
}

func nullMoney(d decimal.NullDecimal) string {
	if !d.Valid {
		return "n/a"
	}
	return money(d.Decimal)
}

func signed(d decimal.Decimal) string {
	s := d.StringFixed(2)
	if d.IsPositive() {
		return "+" + s
	}
	return s
}
