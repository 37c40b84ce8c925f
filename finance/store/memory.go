// Package store provides EntityStore implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/ekonum/finance-engine/finance"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu         sync.RWMutex
	offers     map[finance.OfferID]finance.Offer
	contracts  map[finance.ContractID]finance.Contract
	payments   map[finance.PaymentID]finance.Payment
	fixedCosts map[finance.FixedCostID]finance.FixedCost
	assets     map[finance.AssetID]finance.Asset
	loans      map[finance.LoanID]finance.Loan
	actuals    map[finance.ActualID]finance.ActualEntry
}

func NewMemory() *Memory {
	m := &Memory{}
	m.reset()
	return m
}

func (m *Memory) reset() {
	m.offers = make(map[finance.OfferID]finance.Offer)
	m.contracts = make(map[finance.ContractID]finance.Contract)
	m.payments = make(map[finance.PaymentID]finance.Payment)
	m.fixedCosts = make(map[finance.FixedCostID]finance.FixedCost)
	m.assets = make(map[finance.AssetID]finance.Asset)
	m.loans = make(map[finance.LoanID]finance.Loan)
	m.actuals = make(map[finance.ActualID]finance.ActualEntry)
}

// =============================================================================
// OFFERS
// =============================================================================

func (m *Memory) SaveOffer(_ context.Context, offer finance.Offer) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.offers[offer.ID] = offer
	return nil
}

func (m *Memory) GetOffer(_ context.Context, id finance.OfferID) (*finance.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if o, ok := m.offers[id]; ok {
		return &o, nil
	}
	return nil, nil
}

func (m *Memory) ListOffers(_ context.Context) ([]finance.Offer, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]finance.Offer, 0, len(m.offers))
	for _, o := range m.offers {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) DeleteOffer(_ context.Context, id finance.OfferID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.offers, id)
	return nil
}

// =============================================================================
// CONTRACTS & PAYMENTS
// =============================================================================

func (m *Memory) SaveContract(_ context.Context, contract finance.Contract) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	// Payments live in their own table; the embedded slice is only
	// populated on load.
	contract.Payments = nil
	m.contracts[contract.ID] = contract
	return nil
}

func (m *Memory) GetContract(_ context.Context, id finance.ContractID) (*finance.Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.contracts[id]; ok {
		c.Payments = m.paymentsForLocked(id)
		return &c, nil
	}
	return nil, nil
}

func (m *Memory) ListContracts(_ context.Context) ([]finance.Contract, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]finance.Contract, 0, len(m.contracts))
	for _, c := range m.contracts {
		c.Payments = m.paymentsForLocked(c.ID)
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) DeleteContract(_ context.Context, id finance.ContractID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.contracts, id)
	for pid, p := range m.payments {
		if p.ContractID == id {
			delete(m.payments, pid)
		}
	}
	return nil
}

func (m *Memory) SavePayment(_ context.Context, payment finance.Payment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.payments[payment.ID] = payment
	return nil
}

func (m *Memory) ListPayments(_ context.Context) ([]finance.Payment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]finance.Payment, 0, len(m.payments))
	for _, p := range m.payments {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) paymentsForLocked(id finance.ContractID) []finance.Payment {
	var out []finance.Payment
	for _, p := range m.payments {
		if p.ContractID == id {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	return out
}

// =============================================================================
// FIXED COSTS
// =============================================================================

func (m *Memory) SaveFixedCost(_ context.Context, cost finance.FixedCost) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fixedCosts[cost.ID] = cost
	return nil
}

func (m *Memory) ListFixedCosts(_ context.Context) ([]finance.FixedCost, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]finance.FixedCost, 0, len(m.fixedCosts))
	for _, c := range m.fixedCosts {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) DeleteFixedCost(_ context.Context, id finance.FixedCostID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.fixedCosts, id)
	return nil
}

// =============================================================================
// ASSETS
// =============================================================================

func (m *Memory) SaveAsset(_ context.Context, asset finance.Asset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assets[asset.ID] = asset
	return nil
}

func (m *Memory) ListAssets(_ context.Context) ([]finance.Asset, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]finance.Asset, 0, len(m.assets))
	for _, a := range m.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) DeleteAsset(_ context.Context, id finance.AssetID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.assets, id)
	return nil
}

// =============================================================================
// LOANS
// =============================================================================

func (m *Memory) SaveLoan(_ context.Context, loan finance.Loan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loans[loan.ID] = loan
	return nil
}

func (m *Memory) ListLoans(_ context.Context) ([]finance.Loan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]finance.Loan, 0, len(m.loans))
	for _, l := range m.loans {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *Memory) DeleteLoan(_ context.Context, id finance.LoanID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.loans, id)
	return nil
}

// =============================================================================
// ACTUAL ENTRIES
// =============================================================================

func (m *Memory) SaveActual(_ context.Context, entry finance.ActualEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.actuals[entry.ID] = entry
	return nil
}

func (m *Memory) ListActuals(_ context.Context) ([]finance.ActualEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]finance.ActualEntry, 0, len(m.actuals))
	for _, e := range m.actuals {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].EntryDate.Equal(out[j].EntryDate) {
			return out[i].EntryDate.Before(out[j].EntryDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) DeleteActual(_ context.Context, id finance.ActualID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.actuals, id)
	return nil
}

// =============================================================================
// SNAPSHOT & RESET
// =============================================================================

func (m *Memory) LoadBook(ctx context.Context) (*finance.Book, error) {
	offers, _ := m.ListOffers(ctx)
	contracts, _ := m.ListContracts(ctx)
	fixedCosts, _ := m.ListFixedCosts(ctx)
	assets, _ := m.ListAssets(ctx)
	loans, _ := m.ListLoans(ctx)
	return &finance.Book{
		Offers:     offers,
		Contracts:  contracts,
		FixedCosts: fixedCosts,
		Assets:     assets,
		Loans:      loans,
	}, nil
}

func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reset()
	return nil
}
