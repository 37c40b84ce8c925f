/*
projector.go - Monthly projector

PURPOSE:
  Merges the contribution series of every contract, fixed cost, asset and
  loan in the snapshot into one ordered sequence of MonthlyRows over the
  requested horizon, carrying a running cash balance forward.

ALGORITHM:
  1. Validate the horizon, then every loan and asset schedule, then every
     contract's offer reference. Any failure aborts before a single row
     is produced.
  2. Accumulate contributions into a month-indexed accumulator: one pass
     per entity series, linear in (entities x months).
  3. Walk the horizon in order, rounding each primitive category to the
     cent and deriving ebt and cash from the rounded figures.

P&L vs CASH:
  - ebt  = revenue - variable_costs - fixed_costs - amortization - loan_interest.
    Loan principal is a balance-sheet movement, not a P&L charge.
  - cash = previous cash + revenue - variable_costs - fixed_costs
           - loan_interest - loan_principal.
    Amortization is a non-cash charge and never touches cash.

  Both formulas live here, in one place, and the budget-vs-actual
  comparator reuses them verbatim so the two can never drift apart.

SEE ALSO:
  - comparison.go: consumes Project output as the budget side
*/
package finance

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// =============================================================================
// INPUT / OUTPUT TYPES
// =============================================================================

// ProjectionInput carries everything a projection needs. The Book is a
// read-only snapshot materialized by the persistence collaborator.
type ProjectionInput struct {
	StartYear   int
	Years       int
	InitialCash decimal.Decimal
	Book        Book
}

// MonthlyRow is one month of the projection. Derived, never persisted;
// recomputed in full on every invocation.
type MonthlyRow struct {
	Month         Month
	Revenue       decimal.Decimal
	VariableCosts decimal.Decimal
	FixedCosts    decimal.Decimal
	Amortization  decimal.Decimal
	LoanInterest  decimal.Decimal
	LoanPrincipal decimal.Decimal
	EBT           decimal.Decimal
	Cash          decimal.Decimal
}

// Projection is the full engine output for one request.
type Projection struct {
	Periods  []MonthlyRow
	Metadata map[string]string
}

// =============================================================================
// SHARED DERIVATION FORMULAS
// =============================================================================

// EarningsBeforeTax derives ebt from the primitive P&L categories.
func EarningsBeforeTax(revenue, variableCosts, fixedCosts, amortization, loanInterest decimal.Decimal) decimal.Decimal {
	return revenue.Sub(variableCosts).Sub(fixedCosts).Sub(amortization).Sub(loanInterest)
}

// CashMovement derives one month's net cash flow from the primitive
// categories. Amortization is deliberately absent.
func CashMovement(revenue, variableCosts, fixedCosts, loanInterest, loanPrincipal decimal.Decimal) decimal.Decimal {
	return revenue.Sub(variableCosts).Sub(fixedCosts).Sub(loanInterest).Sub(loanPrincipal)
}

// =============================================================================
// PROJECTOR
// =============================================================================

// monthTotals accumulates the primitive categories for one month.
type monthTotals struct {
	revenue       decimal.Decimal
	variableCosts decimal.Decimal
	fixedCosts    decimal.Decimal
	amortization  decimal.Decimal
	loanInterest  decimal.Decimal
	loanPrincipal decimal.Decimal
}

// Project computes the monthly projection for the requested horizon.
// It is a pure function of its input: no caching, no shared state, safe
// for concurrent invocations.
func Project(in ProjectionInput) (*Projection, error) {
	if err := validateHorizon(in.StartYear, in.Years); err != nil {
		return nil, err
	}
	horizon := FiscalHorizon(in.StartYear, in.Years)

	acc := make(map[Month]*monthTotals, len(horizon))
	for _, m := range horizon {
		acc[m] = &monthTotals{
			revenue:       decimal.Zero,
			variableCosts: decimal.Zero,
			fixedCosts:    decimal.Zero,
			amortization:  decimal.Zero,
			loanInterest:  decimal.Zero,
			loanPrincipal: decimal.Zero,
		}
	}

	// Contracts. A missing offer surfaces as an error, never as a
	// silent zero contribution.
	for _, contract := range in.Book.Contracts {
		offer, ok := in.Book.OfferByID(contract.OfferID)
		if !ok {
			return nil, &DanglingReferenceError{ContractID: contract.ID, OfferID: contract.OfferID}
		}
		for _, rec := range RecognitionSchedule(contract, offer, horizon) {
			if t, ok := acc[rec.Month]; ok {
				t.revenue = t.revenue.Add(rec.Revenue)
				t.variableCosts = t.variableCosts.Add(rec.VariableCost)
			}
		}
	}

	// Fixed costs.
	for _, cost := range in.Book.FixedCosts {
		for _, c := range FixedCostSchedule(cost, horizon) {
			if t, ok := acc[c.Month]; ok {
				t.fixedCosts = t.fixedCosts.Add(c.Amount)
			}
		}
	}

	// Assets.
	for _, asset := range in.Book.Assets {
		charges, err := DepreciationSchedule(asset)
		if err != nil {
			return nil, err
		}
		for _, c := range charges {
			if t, ok := acc[c.Month]; ok {
				t.amortization = t.amortization.Add(c.Amount)
			}
		}
	}

	// Loans.
	for _, loan := range in.Book.Loans {
		schedule, err := AmortizationSchedule(loan)
		if err != nil {
			return nil, err
		}
		for _, inst := range schedule {
			if t, ok := acc[inst.Month]; ok {
				t.loanInterest = t.loanInterest.Add(inst.Interest)
				t.loanPrincipal = t.loanPrincipal.Add(inst.Principal)
			}
		}
	}

	// Reduce, strictly in chronological order.
	periods := make([]MonthlyRow, 0, len(horizon))
	cash := in.InitialCash.Round(2)
	for _, m := range horizon {
		t := acc[m]
		revenue := t.revenue.Round(2)
		variableCosts := t.variableCosts.Round(2)
		fixedCosts := t.fixedCosts.Round(2)
		amortization := t.amortization.Round(2)
		loanInterest := t.loanInterest.Round(2)
		loanPrincipal := t.loanPrincipal.Round(2)

		cash = cash.Add(CashMovement(revenue, variableCosts, fixedCosts, loanInterest, loanPrincipal))

		periods = append(periods, MonthlyRow{
			Month:         m,
			Revenue:       revenue,
			VariableCosts: variableCosts,
			FixedCosts:    fixedCosts,
			Amortization:  amortization,
			LoanInterest:  loanInterest,
			LoanPrincipal: loanPrincipal,
			EBT:           EarningsBeforeTax(revenue, variableCosts, fixedCosts, amortization, loanInterest),
			Cash:          cash,
		})
	}

	return &Projection{
		Periods:  periods,
		Metadata: horizonMetadata(in.StartYear, in.Years),
	}, nil
}

func validateHorizon(startYear, years int) error {
	if years <= 0 {
		return &InvalidHorizonError{StartYear: startYear, Years: years, Reason: "years must be at least 1"}
	}
	if startYear <= 0 {
		return &InvalidHorizonError{StartYear: startYear, Years: years, Reason: "start year must be a calendar year"}
	}
	return nil
}

func horizonMetadata(startYear, years int) map[string]string {
	return map[string]string{
		"start_year": strconv.Itoa(startYear),
		"years":      strconv.Itoa(years),
	}
}
