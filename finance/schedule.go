package finance

import "github.com/shopspring/decimal"

// =============================================================================
// CHARGE - A single month-indexed monetary contribution
// =============================================================================

// Charge attributes one amount to one month. Asset depreciation and
// fixed-cost recognition both produce ordered Charge series; the
// projector only ever consumes them by summation per month.
type Charge struct {
	Month  Month
	Amount decimal.Decimal
}

// sumCharges totals a charge series.
func sumCharges(charges []Charge) decimal.Decimal {
	total := decimal.Zero
	for _, c := range charges {
		total = total.Add(c.Amount)
	}
	return total
}
