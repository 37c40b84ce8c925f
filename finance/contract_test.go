package finance

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func consultingOffer() Offer {
	return Offer{
		ID:           "offer-consulting",
		Name:         "ERP Implementation",
		Type:         OfferOneOff,
		DefaultPrice: decimal.NewFromInt(18000),
	}
}

func licenseOffer() Offer {
	return Offer{
		ID:           "offer-license",
		Name:         "Platform License",
		Type:         OfferLicense,
		DefaultPrice: decimal.NewFromInt(250),
	}
}

func TestRecognitionSchedulePaymentPlan(t *testing.T) {
	// GIVEN: A one-time contract with an explicit milestone plan
	contract := Contract{
		ID:         "contract-1",
		ClientName: "Acme Industries",
		OfferID:    "offer-consulting",
		StartDate:  time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: RecurrenceOneTime,
		TotalValue: decimal.NewFromInt(18000),
		Quantity:   1,
		Payments: []Payment{
			{ID: "p1", ContractID: "contract-1", DueDate: time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(7200)},
			{ID: "p2", ContractID: "contract-1", DueDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(7200)},
			{ID: "p3", ContractID: "contract-1", DueDate: time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(3600)},
		},
	}

	// WHEN: Recognized over fiscal year 2024
	schedule := RecognitionSchedule(contract, consultingOffer(), FiscalHorizon(2024, 1))

	// THEN: Revenue lands at the payment due months, not the start month
	require.Len(t, schedule, 3)
	assert.True(t, schedule[0].Month.Equal(NewMonth(2024, time.October)))
	assert.True(t, schedule[0].Revenue.Equal(decimal.NewFromInt(7200)))
	assert.True(t, schedule[1].Month.Equal(NewMonth(2025, time.January)))
	assert.True(t, schedule[2].Month.Equal(NewMonth(2025, time.March)))
	assert.True(t, schedule[2].Revenue.Equal(decimal.NewFromInt(3600)))

	// One-off offers carry no variable cost rate.
	for _, rec := range schedule {
		assert.True(t, rec.VariableCost.IsZero())
	}
}

func TestRecognitionSchedulePaymentsOverrideRecurrence(t *testing.T) {
	// Explicit payments win even on a monthly contract.
	contract := Contract{
		ID:         "contract-2",
		OfferID:    "offer-license",
		StartDate:  time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: RecurrenceMonthly,
		TotalValue: decimal.NewFromInt(250),
		Quantity:   12,
		Payments: []Payment{
			{ID: "p1", ContractID: "contract-2", DueDate: time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(9000)},
		},
	}

	schedule := RecognitionSchedule(contract, licenseOffer(), FiscalHorizon(2024, 1))
	require.Len(t, schedule, 1)
	assert.True(t, schedule[0].Month.Equal(NewMonth(2024, time.December)))
	assert.True(t, schedule[0].Revenue.Equal(decimal.NewFromInt(9000)))
}

func TestRecognitionScheduleOneTime(t *testing.T) {
	// No payment plan: the full value lands at the start month.
	contract := Contract{
		ID:         "contract-3",
		OfferID:    "offer-consulting",
		StartDate:  time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC),
		Recurrence: RecurrenceOneTime,
		TotalValue: decimal.NewFromInt(18000),
		Quantity:   1,
	}

	schedule := RecognitionSchedule(contract, consultingOffer(), FiscalHorizon(2024, 1))
	require.Len(t, schedule, 1)
	assert.True(t, schedule[0].Month.Equal(NewMonth(2025, time.February)))
	assert.True(t, schedule[0].Revenue.Equal(decimal.NewFromInt(18000)))
}

func TestRecognitionScheduleMonthlyOpenEnded(t *testing.T) {
	// GIVEN: Twelve seats billed monthly starting November 2024
	contract := Contract{
		ID:         "contract-4",
		OfferID:    "offer-license",
		StartDate:  time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: RecurrenceMonthly,
		TotalValue: decimal.NewFromInt(250),
		Quantity:   12,
	}

	horizon := FiscalHorizon(2024, 1)
	schedule := RecognitionSchedule(contract, licenseOffer(), horizon)

	// THEN: Nothing in October, then every month through the horizon end.
	require.Len(t, schedule, 11)
	assert.True(t, schedule[0].Month.Equal(NewMonth(2024, time.November)))
	assert.True(t, schedule[10].Month.Equal(NewMonth(2025, time.September)))

	// Quantity multiplies the per-unit value: 250 x 12 seats = 3000/month.
	monthly := decimal.NewFromInt(3000)
	for _, rec := range schedule {
		assert.True(t, rec.Revenue.Equal(monthly), "got %s", rec.Revenue)
	}
}

func TestRecognitionScheduleLicenseCostRate(t *testing.T) {
	// License offers without an explicit rate default to 0.88.
	contract := Contract{
		ID:         "contract-5",
		OfferID:    "offer-license",
		StartDate:  time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: RecurrenceMonthly,
		TotalValue: decimal.NewFromInt(1000),
		Quantity:   1,
	}

	schedule := RecognitionSchedule(contract, licenseOffer(), FiscalHorizon(2024, 1))
	require.NotEmpty(t, schedule)
	assert.True(t, schedule[0].VariableCost.Equal(decimal.NewFromInt(880)),
		"license cost should default to 88%% of revenue, got %s", schedule[0].VariableCost)
}

func TestRecognitionScheduleExplicitCostRate(t *testing.T) {
	rate := decimal.NewFromFloat(0.4)
	offer := licenseOffer()
	offer.VariableCostRate = &rate

	contract := Contract{
		ID:         "contract-6",
		OfferID:    offer.ID,
		StartDate:  time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: RecurrenceOneTime,
		TotalValue: decimal.NewFromInt(1000),
		Quantity:   1,
	}

	schedule := RecognitionSchedule(contract, offer, FiscalHorizon(2024, 1))
	require.Len(t, schedule, 1)
	assert.True(t, schedule[0].VariableCost.Equal(decimal.NewFromInt(400)))
}

func TestRecognitionScheduleAnnual(t *testing.T) {
	// Annual renewal on the start month's anniversary.
	contract := Contract{
		ID:         "contract-7",
		OfferID:    "offer-license",
		StartDate:  time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: RecurrenceAnnual,
		TotalValue: decimal.NewFromInt(12000),
		Quantity:   1,
	}

	schedule := RecognitionSchedule(contract, licenseOffer(), FiscalHorizon(2024, 3))
	require.Len(t, schedule, 3)
	assert.True(t, schedule[0].Month.Equal(NewMonth(2025, time.January)))
	assert.True(t, schedule[1].Month.Equal(NewMonth(2026, time.January)))
	assert.True(t, schedule[2].Month.Equal(NewMonth(2027, time.January)))
}

func TestRecognitionScheduleOutsideHorizon(t *testing.T) {
	// Contract starting after the horizon contributes nothing.
	contract := Contract{
		ID:         "contract-8",
		OfferID:    "offer-consulting",
		StartDate:  time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: RecurrenceOneTime,
		TotalValue: decimal.NewFromInt(5000),
		Quantity:   1,
	}

	schedule := RecognitionSchedule(contract, consultingOffer(), FiscalHorizon(2024, 1))
	assert.Empty(t, schedule)

	// Payments outside the horizon are dropped too.
	contract.StartDate = time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)
	contract.Payments = []Payment{
		{ID: "p1", ContractID: "contract-8", DueDate: time.Date(2030, time.June, 1, 0, 0, 0, 0, time.UTC), Amount: decimal.NewFromInt(5000)},
	}
	schedule = RecognitionSchedule(contract, consultingOffer(), FiscalHorizon(2024, 1))
	assert.Empty(t, schedule)
}

func TestContractUnitsDefault(t *testing.T) {
	c := Contract{Quantity: 0}
	if !c.Units().Equal(decimal.NewFromInt(1)) {
		t.Errorf("zero quantity should count as one unit, got %s", c.Units())
	}
	c.Quantity = 5
	if !c.Units().Equal(decimal.NewFromInt(5)) {
		t.Errorf("got %s, want 5", c.Units())
	}
}
