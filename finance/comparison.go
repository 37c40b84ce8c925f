/*
comparison.go - Budget-vs-actual comparator

PURPOSE:
  Pairs the monthly projection (the budget) with recorded actual entries,
  month by month and category by category, and computes the variance.

GROUPING:
  Actual entries are grouped by (month, category), summing amounts. A
  month/category with no entries defaults to zero. Actual ebt and cash
  are never recorded directly: they are recomputed from the actual
  primitive categories with the exact same formulas the projector uses
  (EarningsBeforeTax, CashMovement), starting from the same initial cash.

SIGN CONVENTION:
  variance = actual - budget for every category. A positive revenue
  variance is favorable; a positive cost variance means more was spent
  than budgeted. The comparator never inverts signs for cost categories;
  interpretation belongs to the presentation layer.
*/
package finance

import "github.com/shopspring/decimal"

// CategorySet holds one value per reported category. Used three times
// per comparison row: budget, actual, variance.
type CategorySet struct {
	Revenue       decimal.Decimal
	VariableCosts decimal.Decimal
	FixedCosts    decimal.Decimal
	Amortization  decimal.Decimal
	LoanInterest  decimal.Decimal
	LoanPrincipal decimal.Decimal
	EBT           decimal.Decimal
	Cash          decimal.Decimal
}

func (s CategorySet) sub(other CategorySet) CategorySet {
	return CategorySet{
		Revenue:       s.Revenue.Sub(other.Revenue),
		VariableCosts: s.VariableCosts.Sub(other.VariableCosts),
		FixedCosts:    s.FixedCosts.Sub(other.FixedCosts),
		Amortization:  s.Amortization.Sub(other.Amortization),
		LoanInterest:  s.LoanInterest.Sub(other.LoanInterest),
		LoanPrincipal: s.LoanPrincipal.Sub(other.LoanPrincipal),
		EBT:           s.EBT.Sub(other.EBT),
		Cash:          s.Cash.Sub(other.Cash),
	}
}

// ComparisonRow pairs budget and actual figures for one month.
type ComparisonRow struct {
	Month    Month
	Budget   CategorySet
	Actual   CategorySet
	Variance CategorySet
}

// Comparison is the comparator's full output for one request.
type Comparison struct {
	Rows     []ComparisonRow
	Metadata map[string]string
}

// CompareBudgetVsActual projects the budget for the horizon and pairs it
// with the recorded actuals. Actual entries outside the horizon are
// ignored; budget months without actuals compare against zero.
func CompareBudgetVsActual(in ProjectionInput, actuals []ActualEntry) (*Comparison, error) {
	projection, err := Project(in)
	if err != nil {
		return nil, err
	}

	grouped := groupActuals(actuals)

	rows := make([]ComparisonRow, 0, len(projection.Periods))
	actualCash := in.InitialCash.Round(2)
	for _, budget := range projection.Periods {
		byCategory := grouped[budget.Month]

		revenue := byCategory[CategoryRevenue].Round(2)
		variableCosts := byCategory[CategoryVariableCosts].Round(2)
		fixedCosts := byCategory[CategoryFixedCosts].Round(2)
		amortization := byCategory[CategoryAmortization].Round(2)
		loanInterest := byCategory[CategoryLoanInterest].Round(2)
		loanPrincipal := byCategory[CategoryLoanPrincipal].Round(2)

		actualCash = actualCash.Add(CashMovement(revenue, variableCosts, fixedCosts, loanInterest, loanPrincipal))

		actual := CategorySet{
			Revenue:       revenue,
			VariableCosts: variableCosts,
			FixedCosts:    fixedCosts,
			Amortization:  amortization,
			LoanInterest:  loanInterest,
			LoanPrincipal: loanPrincipal,
			EBT:           EarningsBeforeTax(revenue, variableCosts, fixedCosts, amortization, loanInterest),
			Cash:          actualCash,
		}
		budgetSet := CategorySet{
			Revenue:       budget.Revenue,
			VariableCosts: budget.VariableCosts,
			FixedCosts:    budget.FixedCosts,
			Amortization:  budget.Amortization,
			LoanInterest:  budget.LoanInterest,
			LoanPrincipal: budget.LoanPrincipal,
			EBT:           budget.EBT,
			Cash:          budget.Cash,
		}

		rows = append(rows, ComparisonRow{
			Month:    budget.Month,
			Budget:   budgetSet,
			Actual:   actual,
			Variance: actual.sub(budgetSet),
		})
	}

	return &Comparison{Rows: rows, Metadata: projection.Metadata}, nil
}

// groupActuals sums entry amounts by (month, category). Missing keys
// read back as decimal.Zero, which is exactly the default the
// comparator wants.
func groupActuals(entries []ActualEntry) map[Month]map[ActualCategory]decimal.Decimal {
	grouped := make(map[Month]map[ActualCategory]decimal.Decimal)
	for _, e := range entries {
		m := MonthOf(e.EntryDate)
		if grouped[m] == nil {
			grouped[m] = make(map[ActualCategory]decimal.Decimal)
		}
		grouped[m][e.Category] = grouped[m][e.Category].Add(e.Amount)
	}
	return grouped
}
