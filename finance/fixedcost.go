package finance

// FixedCostSchedule produces the fixed cost's contribution over the
// horizon: the monthly amount every month from the start month through
// the horizon end, nothing before. Fixed costs have no natural end date
// in this model; recognition is open-ended.
func FixedCostSchedule(cost FixedCost, horizon []Month) []Charge {
	start := MonthOf(cost.StartDate)

	var charges []Charge
	for _, m := range horizon {
		if m.AfterOrEqual(start) {
			charges = append(charges, Charge{Month: m, Amount: cost.MonthlyAmount})
		}
	}
	return charges
}
