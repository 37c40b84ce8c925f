package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ekonum/finance-engine/finance"
)

func TestMemoryOfferRoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	offer := finance.Offer{
		ID:           "offer-1",
		Name:         "Consulting",
		Type:         finance.OfferOneOff,
		DefaultPrice: decimal.NewFromInt(18000),
	}
	require.NoError(t, m.SaveOffer(ctx, offer))

	got, err := m.GetOffer(ctx, "offer-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, offer.Name, got.Name)

	missing, err := m.GetOffer(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, m.DeleteOffer(ctx, "offer-1"))
	got, err = m.GetOffer(ctx, "offer-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryContractPayments(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	contract := finance.Contract{
		ID:         "contract-1",
		ClientName: "Acme",
		OfferID:    "offer-1",
		StartDate:  time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: finance.RecurrenceOneTime,
		TotalValue: decimal.NewFromInt(18000),
		Quantity:   1,
	}
	require.NoError(t, m.SaveContract(ctx, contract))

	// Payments stored out of order come back sorted by due date.
	require.NoError(t, m.SavePayment(ctx, finance.Payment{
		ID: "p2", ContractID: "contract-1",
		DueDate: time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		Amount:  decimal.NewFromInt(7200),
	}))
	require.NoError(t, m.SavePayment(ctx, finance.Payment{
		ID: "p1", ContractID: "contract-1",
		DueDate: time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
		Amount:  decimal.NewFromInt(7200),
	}))

	got, err := m.GetContract(ctx, "contract-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Len(t, got.Payments, 2)
	assert.Equal(t, finance.PaymentID("p1"), got.Payments[0].ID)
	assert.Equal(t, finance.PaymentID("p2"), got.Payments[1].ID)
}

func TestMemoryLoadBook(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveOffer(ctx, finance.Offer{ID: "offer-1", Name: "License", Type: finance.OfferLicense, DefaultPrice: decimal.NewFromInt(250)}))
	require.NoError(t, m.SaveContract(ctx, finance.Contract{
		ID: "contract-1", OfferID: "offer-1",
		StartDate:  time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: finance.RecurrenceMonthly,
		TotalValue: decimal.NewFromInt(250), Quantity: 12,
	}))
	require.NoError(t, m.SaveFixedCost(ctx, finance.FixedCost{ID: "cost-1", Name: "Rent", MonthlyAmount: decimal.NewFromInt(1200), StartDate: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC)}))
	require.NoError(t, m.SaveAsset(ctx, finance.Asset{ID: "asset-1", Name: "Server", PurchaseDate: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), PurchaseAmount: decimal.NewFromInt(18000), AmortizationMonths: 36}))
	require.NoError(t, m.SaveLoan(ctx, finance.Loan{ID: "loan-1", Name: "Loan", Principal: decimal.NewFromInt(50000), AnnualRate: decimal.NewFromFloat(0.03), StartDate: time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC), TermMonths: 36}))

	book, err := m.LoadBook(ctx)
	require.NoError(t, err)
	assert.Len(t, book.Offers, 1)
	assert.Len(t, book.Contracts, 1)
	assert.Len(t, book.FixedCosts, 1)
	assert.Len(t, book.Assets, 1)
	assert.Len(t, book.Loans, 1)

	// The snapshot feeds the projector directly.
	projection, err := finance.Project(finance.ProjectionInput{StartYear: 2024, Years: 1, Book: *book})
	require.NoError(t, err)
	assert.Len(t, projection.Periods, 12)
}

func TestMemoryActualsOrdering(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveActual(ctx, finance.ActualEntry{
		ID: "a2", EntryDate: time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
		Category: finance.CategoryRevenue, Amount: decimal.NewFromInt(2750),
	}))
	require.NoError(t, m.SaveActual(ctx, finance.ActualEntry{
		ID: "a1", EntryDate: time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC),
		Category: finance.CategoryFixedCosts, Amount: decimal.NewFromInt(8700),
	}))

	entries, err := m.ListActuals(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, finance.ActualID("a1"), entries[0].ID)
}

func TestMemoryReset(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.SaveOffer(ctx, finance.Offer{ID: "offer-1", Name: "X", Type: finance.OfferOneOff, DefaultPrice: decimal.NewFromInt(1)}))
	require.NoError(t, m.Reset(ctx))

	offers, err := m.ListOffers(ctx)
	require.NoError(t, err)
	assert.Empty(t, offers)
}

func TestMemoryImplementsEntityStore(t *testing.T) {
	var _ finance.EntityStore = NewMemory()
}
