/*
asset.go - Asset depreciation scheduler

PURPOSE:
  Turns one asset record into a per-month straight-line depreciation
  series: purchase_amount / amortization_months for exactly
  amortization_months consecutive months starting at the purchase month.

INVARIANT:
  The charges sum to the purchase amount exactly. The monthly charge is
  rounded to the cent and the final month absorbs the residual.
*/
package finance

import "github.com/shopspring/decimal"

// DepreciationSchedule produces the straight-line charge series for an
// asset. Exactly AmortizationMonths entries, zero months elsewhere.
func DepreciationSchedule(asset Asset) ([]Charge, error) {
	if asset.AmortizationMonths <= 0 {
		return nil, &InvalidScheduleError{
			Entity: "asset", ID: string(asset.ID),
			Field: "amortization_months", Reason: "must be positive",
		}
	}
	if asset.PurchaseAmount.IsNegative() {
		return nil, &InvalidScheduleError{
			Entity: "asset", ID: string(asset.ID),
			Field: "purchase_amount", Reason: "must not be negative",
		}
	}

	months := decimal.NewFromInt(int64(asset.AmortizationMonths))
	monthly := asset.PurchaseAmount.Div(months).Round(2)
	start := MonthOf(asset.PurchaseDate)

	charges := make([]Charge, 0, asset.AmortizationMonths)
	for k := 0; k < asset.AmortizationMonths; k++ {
		amount := monthly
		if k == asset.AmortizationMonths-1 {
			// Final month absorbs cent-level residual so the series
			// sums to the purchase amount exactly.
			amount = asset.PurchaseAmount.Sub(monthly.Mul(months.Sub(decimal.NewFromInt(1))))
		}
		charges = append(charges, Charge{Month: start.Add(k), Amount: amount})
	}
	return charges, nil
}
