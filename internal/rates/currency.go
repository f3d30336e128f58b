package rates

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/ratepulse/internal/domain/models"
)

// FactorSource resolves a display currency to its conversion factor
// relative to the base currency (EUR). The static table below is the
// production source; a live FX provider can implement this interface
// without touching the merger or splitter.
type FactorSource interface {
	Factor(cur models.Currency) (float64, bool)
}

// StaticFactors is a fixed conversion table keyed by currency code.
type StaticFactors map[models.Currency]float64

// DefaultFactors holds the hardcoded conversion rates, base EUR = 1.0.
// TODO: replace with a live FX lookup once a rate feed is provisioned.
var DefaultFactors = StaticFactors{
	models.EUR: 1,
	models.USD: 1.0816,
	models.GBP: 0.8335,
	models.JPY: 165.5816,
	models.CAD: 1.5024,
}

// Factor implements FactorSource.
func (f StaticFactors) Factor(cur models.Currency) (float64, bool) {
	v, ok := f[cur]
	return v, ok
}

// ConvertCurrency scales every populated price cell in place by the
// factor for cur, rounded to 2 decimal places before multiplication.
// Empty cells and dates pass through. Unknown currencies are rejected
// at the request-validation boundary; here they leave the rows
// untouched.
func ConvertCurrency(rows []models.MatrixRow, cur models.Currency, src FactorSource) {
	raw, ok := src.Factor(cur)
	if !ok {
		return
	}
	factor, _ := decimal.NewFromFloat(raw).Round(2).Float64()
	if factor == 1 {
		return
	}

	for _, row := range rows {
		for i, p := range row.Prices {
			if p == nil {
				continue
			}
			v := *p * factor
			row.Prices[i] = &v
		}
	}
}
