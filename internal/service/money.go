package service

import "github.com/shopspring/decimal"

var cents = decimal.NewFromInt(100)

// minorUnits converts a catalog price in currency units to minor units,
// rounding half-up at the cent boundary (19.995 → 2000).
func minorUnits(price float64) int64 {
	return decimal.NewFromFloat(price).Mul(cents).Round(0).IntPart()
}

// majorUnits converts a provider-reported minor-unit amount back to currency
// units (6998 → 69.98).
func majorUnits(amount int64) float64 {
	return decimal.NewFromInt(amount).Div(cents).InexactFloat64()
}
