/*
contract.go - Revenue and variable-cost recognizer

PURPOSE:
  Turns one contract (plus its resolved offer and optional payment
  events) into a per-month (revenue, variable cost) series.

RECOGNITION RULES:
  - Explicit payments, when present, override the synthetic plan:
    each payment's amount is recognized at its due month.
  - one_time without payments: the full total value is recognized once
    at the contract's start month.
  - monthly: the total value is recognized every month from the start
    month through the horizon end. There is no contract end date:
    open-ended recognition is a deliberate simplification.
  - annual: the total value is recognized on the start month's
    anniversary each year within the horizon.

  Synthetic plans multiply by the contract quantity; explicit payments
  are taken at face value.

  Variable cost for a month = recognized revenue x offer cost rate.
*/
package finance

import "github.com/shopspring/decimal"

// Recognition is one month of a contract's contribution.
type Recognition struct {
	Month        Month
	Revenue      decimal.Decimal
	VariableCost decimal.Decimal
}

// RecognitionSchedule produces the contract's contribution over the
// horizon. Months outside the horizon contribute nothing; a contract
// starting after the horizon end yields an empty series.
func RecognitionSchedule(contract Contract, offer Offer, horizon []Month) []Recognition {
	if len(horizon) == 0 {
		return nil
	}
	first, last := horizon[0], horizon[len(horizon)-1]
	rate := offer.CostRate()
	start := MonthOf(contract.StartDate)

	var recognitions []Recognition
	recognize := func(m Month, amount decimal.Decimal) {
		if m.Before(first) || m.After(last) {
			return
		}
		recognitions = append(recognitions, Recognition{
			Month:        m,
			Revenue:      amount,
			VariableCost: amount.Mul(rate),
		})
	}

	if len(contract.Payments) > 0 {
		for _, p := range contract.Payments {
			recognize(MonthOf(p.DueDate), p.Amount)
		}
		return recognitions
	}

	value := contract.TotalValue.Mul(contract.Units())
	switch contract.Recurrence {
	case RecurrenceOneTime:
		recognize(start, value)
	case RecurrenceMonthly:
		for _, m := range horizon {
			if m.AfterOrEqual(start) {
				recognize(m, value)
			}
		}
	case RecurrenceAnnual:
		for _, m := range horizon {
			if m.Month == start.Month && m.AfterOrEqual(start) {
				recognize(m, value)
			}
		}
	}
	return recognitions
}
