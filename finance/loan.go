/*
loan.go - Loan amortization scheduler

PURPOSE:
  Turns one loan record into a per-month (interest, principal, balance)
  series using the standard constant-payment annuity:

    i       = annual_rate / 12
    payment = P * i / (1 - (1+i)^-N)     (payment = P / N when rate is 0)

  then for each month k = 1..N:

    interest_k  = balance_{k-1} * i
    principal_k = payment - interest_k
    balance_k   = balance_{k-1} - principal_k

INVARIANT:
  The sum of principal_k over the full term equals the original principal
  exactly, at cent precision. Interest and principal are rounded to the
  cent as they are produced, and the final installment's principal is
  clamped to the remaining rounded balance, so no later rounding of the
  rows can reintroduce drift.

SEE ALSO:
  - projector.go: sums installments into loan_interest / loan_principal
*/
package finance

import (
	"github.com/shopspring/decimal"
)

// Installment is one month of an amortizing loan schedule.
type Installment struct {
	Month     Month
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Balance   decimal.Decimal // remaining balance after this installment
}

var twelve = decimal.NewFromInt(12)

// AmortizationSchedule produces the full installment series for a loan.
// The series is finite: exactly TermMonths entries starting at the month
// of StartDate. Validation happens before any installment is computed.
func AmortizationSchedule(loan Loan) ([]Installment, error) {
	if loan.TermMonths <= 0 {
		return nil, &InvalidScheduleError{
			Entity: "loan", ID: string(loan.ID),
			Field: "term_months", Reason: "must be positive",
		}
	}
	if !loan.Principal.IsPositive() {
		return nil, &InvalidScheduleError{
			Entity: "loan", ID: string(loan.ID),
			Field: "principal", Reason: "must be positive",
		}
	}
	if loan.AnnualRate.IsNegative() {
		return nil, &InvalidScheduleError{
			Entity: "loan", ID: string(loan.ID),
			Field: "annual_rate", Reason: "must not be negative",
		}
	}

	term := decimal.NewFromInt(int64(loan.TermMonths))
	monthlyRate := loan.AnnualRate.Div(twelve)

	var payment decimal.Decimal
	if monthlyRate.IsZero() {
		payment = loan.Principal.Div(term)
	} else {
		// payment = P * i / (1 - (1+i)^-N), computed through the growth
		// factor (1+i)^N to keep the exponent integral for decimal.Pow.
		growth := decimal.NewFromInt(1).Add(monthlyRate).Pow(term)
		payment = loan.Principal.Mul(monthlyRate).Mul(growth).Div(growth.Sub(decimal.NewFromInt(1)))
	}

	start := MonthOf(loan.StartDate)
	balance := loan.Principal

	schedule := make([]Installment, 0, loan.TermMonths)
	for k := 0; k < loan.TermMonths; k++ {
		interest := balance.Mul(monthlyRate).Round(2)
		principal := payment.Sub(interest).Round(2)
		if k == loan.TermMonths-1 {
			// Final installment zeroes out the balance exactly.
			principal = balance
		}
		balance = balance.Sub(principal)

		schedule = append(schedule, Installment{
			Month:     start.Add(k),
			Interest:  interest,
			Principal: principal,
			Balance:   balance,
		})
	}
	return schedule, nil
}
