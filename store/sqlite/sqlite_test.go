package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekonum/finance-engine/finance"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestOfferRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rate := decimal.NewFromFloat(0.88)
	offer := finance.Offer{
		ID:               "offer-1",
		Name:             "Platform License",
		Type:             finance.OfferLicense,
		DefaultPrice:     decimal.NewFromFloat(249.99),
		VariableCostRate: &rate,
	}
	require.NoError(t, store.SaveOffer(ctx, offer))

	got, err := store.GetOffer(ctx, "offer-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, offer.Name, got.Name)
	assert.Equal(t, offer.Type, got.Type)
	assert.True(t, got.DefaultPrice.Equal(offer.DefaultPrice), "price %s", got.DefaultPrice)
	require.NotNil(t, got.VariableCostRate)
	assert.True(t, got.VariableCostRate.Equal(rate))

	// Upsert overwrites in place.
	offer.Name = "Platform License v2"
	require.NoError(t, store.SaveOffer(ctx, offer))
	got, err = store.GetOffer(ctx, "offer-1")
	require.NoError(t, err)
	assert.Equal(t, "Platform License v2", got.Name)

	offers, err := store.ListOffers(ctx)
	require.NoError(t, err)
	assert.Len(t, offers, 1)
}

func TestContractWithPayments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveOffer(ctx, finance.Offer{
		ID: "offer-1", Name: "Consulting", Type: finance.OfferOneOff, DefaultPrice: decimal.NewFromInt(18000),
	}))

	contract := finance.Contract{
		ID:         "contract-1",
		ClientName: "Acme Industries",
		OfferID:    "offer-1",
		StartDate:  time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: finance.RecurrenceOneTime,
		TotalValue: decimal.NewFromInt(18000),
		Quantity:   1,
		TaxRate:    decimal.NewFromFloat(0.25),
	}
	require.NoError(t, store.SaveContract(ctx, contract))

	require.NoError(t, store.SavePayment(ctx, finance.Payment{
		ID: "p2", ContractID: "contract-1", Label: "Milestone 1",
		DueDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		Amount:  decimal.NewFromInt(7200),
	}))
	require.NoError(t, store.SavePayment(ctx, finance.Payment{
		ID: "p1", ContractID: "contract-1", Label: "Kickoff",
		DueDate: time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
		Amount:  decimal.NewFromInt(7200),
	}))

	got, err := store.GetContract(ctx, "contract-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Acme Industries", got.ClientName)
	assert.True(t, got.StartDate.Equal(contract.StartDate))

	// Payments come back attached, sorted by due date.
	require.Len(t, got.Payments, 2)
	assert.Equal(t, finance.PaymentID("p1"), got.Payments[0].ID)
	assert.Equal(t, finance.PaymentID("p2"), got.Payments[1].ID)
}

func TestDeleteContractCascadesPayments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveOffer(ctx, finance.Offer{
		ID: "offer-1", Name: "Consulting", Type: finance.OfferOneOff, DefaultPrice: decimal.NewFromInt(100),
	}))
	require.NoError(t, store.SaveContract(ctx, finance.Contract{
		ID: "contract-1", OfferID: "offer-1",
		StartDate:  time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: finance.RecurrenceOneTime,
		TotalValue: decimal.NewFromInt(100), Quantity: 1,
	}))
	require.NoError(t, store.SavePayment(ctx, finance.Payment{
		ID: "p1", ContractID: "contract-1",
		DueDate: time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
		Amount:  decimal.NewFromInt(100),
	}))

	require.NoError(t, store.DeleteContract(ctx, "contract-1"))

	payments, err := store.ListPayments(ctx)
	require.NoError(t, err)
	assert.Empty(t, payments, "payments should cascade with their contract")
}

func TestLoadBookFeedsProjector(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveOffer(ctx, finance.Offer{
		ID: "offer-1", Name: "License", Type: finance.OfferLicense, DefaultPrice: decimal.NewFromInt(250),
	}))
	require.NoError(t, store.SaveContract(ctx, finance.Contract{
		ID: "contract-1", ClientName: "Globex", OfferID: "offer-1",
		StartDate:  time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: finance.RecurrenceMonthly,
		TotalValue: decimal.NewFromInt(250), Quantity: 12,
	}))
	require.NoError(t, store.SaveFixedCost(ctx, finance.FixedCost{
		ID: "cost-1", Name: "Salaries", MonthlyAmount: decimal.NewFromInt(8500),
		StartDate: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, store.SaveAsset(ctx, finance.Asset{
		ID: "asset-1", Name: "Server",
		PurchaseDate:   time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		PurchaseAmount: decimal.NewFromInt(18000), AmortizationMonths: 36,
	}))
	require.NoError(t, store.SaveLoan(ctx, finance.Loan{
		ID: "loan-1", Name: "Seed loan",
		Principal: decimal.NewFromInt(50000), AnnualRate: decimal.NewFromFloat(0.03),
		StartDate: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), TermMonths: 36,
	}))

	book, err := store.LoadBook(ctx)
	require.NoError(t, err)

	projection, err := finance.Project(finance.ProjectionInput{StartYear: 2024, Years: 1, Book: *book})
	require.NoError(t, err)
	require.Len(t, projection.Periods, 12)

	// November: 12 seats x 250 revenue, 500 depreciation from the server.
	nov := projection.Periods[1]
	assert.True(t, nov.Revenue.Equal(decimal.NewFromInt(3000)), "revenue %s", nov.Revenue)
	assert.True(t, nov.Amortization.Equal(decimal.NewFromInt(500)))
}

func TestActualEntriesRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	entry := finance.ActualEntry{
		ID:        "actual-1",
		EntryDate: time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC),
		Category:  finance.CategoryFixedCosts,
		Amount:    decimal.NewFromFloat(8700.50),
		Label:     "Salaries incl. overtime",
	}
	require.NoError(t, store.SaveActual(ctx, entry))

	entries, err := store.ListActuals(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entry.Category, entries[0].Category)
	assert.True(t, entries[0].Amount.Equal(entry.Amount), "amount %s", entries[0].Amount)
	assert.True(t, entries[0].EntryDate.Equal(entry.EntryDate))

	require.NoError(t, store.DeleteActual(ctx, "actual-1"))
	entries, err = store.ListActuals(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestReset(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveOffer(ctx, finance.Offer{
		ID: "offer-1", Name: "X", Type: finance.OfferOneOff, DefaultPrice: decimal.NewFromInt(1),
	}))
	require.NoError(t, store.SaveLoan(ctx, finance.Loan{
		ID: "loan-1", Principal: decimal.NewFromInt(1000), AnnualRate: decimal.Zero,
		StartDate: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), TermMonths: 12,
	}))

	require.NoError(t, store.Reset(ctx))

	offers, err := store.ListOffers(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)
	loans, err := store.ListLoans(ctx)
	require.NoError(t, err)
	assert.Empty(t, loans)
}
