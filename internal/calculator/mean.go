package calculator

import (
	"errors"

	"CryptoLive/internal/model"

	"github.com/shopspring/decimal"
)

var (
	// ErrEmptyTable is returned by every calculation given no assets.
	ErrEmptyTable = errors.New("no assets provided")
	// ErrNoPriceData means no asset in the table reported a price.
	ErrNoPriceData = errors.New("no price data")
)

// CalculateMean returns the arithmetic mean of values.
func CalculateMean(values []decimal.Decimal) (decimal.Decimal, error) {
	if len(values) == 0 {
		return decimal.Zero, errors.New("not enough data for mean calculation")
	}
	return decimal.Avg(values[0], values[1:]...), nil
}

// CalculateMeanPrice returns the mean USD price across the table. Assets
// without a price are left out of both the sum and the count.
func CalculateMeanPrice(table model.SnapshotTable) (decimal.Decimal, error) {
	if table.Empty() {
		return decimal.Zero, ErrEmptyTable
	}
	prices := extractPrices(table)
	if len(prices) == 0 {
		return decimal.Zero, ErrNoPriceData
	}
	return CalculateMean(prices)
}

func extractPrices(table model.SnapshotTable) []decimal.Decimal {
	prices := make([]decimal.Decimal, 0, len(table))
	for _, a := range table {
		if a.Price.Valid {
			prices = append(prices, a.Price.Decimal)
		}
	}
	return prices
}
