package finance

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLoan() Loan {
	return Loan{
		ID:         "loan-1",
		Name:       "Equipment loan",
		Principal:  decimal.NewFromInt(50000),
		AnnualRate: decimal.NewFromFloat(0.03),
		StartDate:  time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		TermMonths: 36,
	}
}

func TestAmortizationSchedule(t *testing.T) {
	schedule, err := AmortizationSchedule(testLoan())
	require.NoError(t, err)
	require.Len(t, schedule, 36)

	// First installment: interest on the full principal at 0.25%/month.
	first := schedule[0]
	assert.True(t, first.Month.Equal(NewMonth(2024, time.October)))
	assert.True(t, first.Interest.Equal(decimal.NewFromInt(125)),
		"first interest should be 50000 * 0.0025 = 125, got %s", first.Interest)

	// Interest decreases, principal increases, month after month.
	for k := 1; k < len(schedule); k++ {
		assert.True(t, schedule[k].Interest.LessThan(schedule[k-1].Interest),
			"interest should decrease at installment %d", k)
		assert.True(t, schedule[k].Principal.GreaterThan(schedule[k-1].Principal),
			"principal should increase at installment %d", k)
	}

	// Balance reaches exactly zero.
	last := schedule[len(schedule)-1]
	assert.True(t, last.Balance.IsZero(), "final balance should be zero, got %s", last.Balance)
	assert.True(t, last.Month.Equal(NewMonth(2027, time.September)))
}

func TestAmortizationSchedulePrincipalSumsToLoan(t *testing.T) {
	// Awkward principals and rates where per-month cent rounding would
	// otherwise drift off the principal by a cent or two.
	loans := []Loan{
		testLoan(),
		{ID: "loan-a", Principal: decimal.NewFromFloat(12345.67), AnnualRate: decimal.NewFromFloat(0.047), StartDate: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), TermMonths: 60},
		{ID: "loan-b", Principal: decimal.NewFromFloat(99999.99), AnnualRate: decimal.NewFromFloat(0.085), StartDate: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), TermMonths: 84},
		{ID: "loan-c", Principal: decimal.NewFromInt(10000), AnnualRate: decimal.NewFromFloat(0.10), StartDate: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), TermMonths: 7},
	}

	for _, loan := range loans {
		schedule, err := AmortizationSchedule(loan)
		require.NoError(t, err)

		total := decimal.Zero
		for _, inst := range schedule {
			// Installments carry cent precision already; rounding the
			// rows again must not change anything.
			assert.True(t, inst.Principal.Equal(inst.Principal.Round(2)),
				"%s installment %s principal %s not at cent precision", loan.ID, inst.Month, inst.Principal)
			assert.True(t, inst.Interest.Equal(inst.Interest.Round(2)),
				"%s installment %s interest %s not at cent precision", loan.ID, inst.Month, inst.Interest)
			total = total.Add(inst.Principal)
		}
		assert.True(t, total.Equal(loan.Principal),
			"%s: principal repayments should sum to %s exactly, got %s", loan.ID, loan.Principal, total)
	}
}

func TestAmortizationScheduleZeroRate(t *testing.T) {
	loan := testLoan()
	loan.AnnualRate = decimal.Zero
	loan.TermMonths = 10

	schedule, err := AmortizationSchedule(loan)
	require.NoError(t, err)
	require.Len(t, schedule, 10)

	// Interest-free: equal principal installments, no interest at all.
	for k, inst := range schedule {
		assert.True(t, inst.Interest.IsZero(), "installment %d interest should be zero", k)
		assert.True(t, inst.Principal.Equal(decimal.NewFromInt(5000)),
			"installment %d principal should be 5000, got %s", k, inst.Principal)
	}
	assert.True(t, schedule[9].Balance.IsZero())
}

func TestAmortizationScheduleValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Loan)
	}{
		{"zero term", func(l *Loan) { l.TermMonths = 0 }},
		{"negative term", func(l *Loan) { l.TermMonths = -12 }},
		{"zero principal", func(l *Loan) { l.Principal = decimal.Zero }},
		{"negative principal", func(l *Loan) { l.Principal = decimal.NewFromInt(-1000) }},
		{"negative rate", func(l *Loan) { l.AnnualRate = decimal.NewFromFloat(-0.01) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			loan := testLoan()
			tc.mutate(&loan)

			_, err := AmortizationSchedule(loan)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidSchedule))

			var schedErr *InvalidScheduleError
			require.True(t, errors.As(err, &schedErr))
			assert.Equal(t, "loan", schedErr.Entity)
		})
	}
}

func TestAmortizationScheduleMidMonthStart(t *testing.T) {
	// Start date anywhere in a month anchors the schedule to that month.
	loan := testLoan()
	loan.StartDate = time.Date(2025, time.January, 17, 0, 0, 0, 0, time.UTC)

	schedule, err := AmortizationSchedule(loan)
	require.NoError(t, err)
	assert.True(t, schedule[0].Month.Equal(NewMonth(2025, time.January)))
}
