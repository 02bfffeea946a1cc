package country

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

const (
	minScale = 1000
	maxScale = 2000
)

// ScaleFunc draws the per-refresh GDP multiplier.
type ScaleFunc func() decimal.Decimal

// RandomScale returns a value drawn uniformly from [1000, 2000).
func RandomScale() decimal.Decimal {
	return decimal.NewFromFloat(minScale + rand.Float64()*(maxScale-minScale))
}

// EstimateGDP returns round(population * scale / rate).
// ok is false when rate is not positive, meaning no rate is quoted.
func EstimateGDP(population int64, scale, rate decimal.Decimal) (gdp int64, ok bool) {
	if !rate.IsPositive() {
		return 0, false
	}
	return decimal.NewFromInt(population).
		Mul(scale).
		DivRound(rate, 8).
		Round(0).
		IntPart(), true
}

// ApplyRate resolves exchange data on c from rates using c's currency code.
// Rate and GDP are left nil when the code is missing, unknown, or quoted as zero.
func ApplyRate(c *Country, rates map[string]decimal.Decimal, scale decimal.Decimal) {
	c.ExchangeRate = nil
	c.EstimatedGDP = nil
	if c.CurrencyCode == nil {
		return
	}
	rate, found := rates[*c.CurrencyCode]
	if !found {
		return
	}
	gdp, ok := EstimateGDP(c.Population, scale, rate)
	if !ok {
		return
	}
	c.ExchangeRate = &rate
	c.EstimatedGDP = &gdp
}
