/*
Package finance provides the financial projection and variance engine.

PURPOSE:
  This package turns a small set of business entities (revenue offers,
  client contracts, fixed costs, depreciable assets, loans) into a
  multi-year monthly profit-and-loss and cash projection, and optionally
  compares that projection against recorded actual figures.

KEY CONCEPTS:
  - Month: the time granularity of everything (month.go)
  - Schedulers: pure functions that turn one entity into a finite
    month-indexed contribution series (loan.go, asset.go, contract.go,
    fixedcost.go)
  - Projector: merges all contributions into ordered MonthlyRows
    (projector.go)
  - Comparator: budget vs actual with variance per category
    (comparison.go)

DESIGN PRINCIPLES:
  1. Purity: the engine never mutates its inputs and holds no state
     between invocations; identical inputs produce identical output.
  2. Precision: uses decimal.Decimal for all monetary math to avoid
     floating-point drift; schedules carry exact invariants (a loan's
     principal payments sum to its principal, an asset's charges sum
     to its purchase amount).
  3. Fail-fast: invalid entities are rejected before any row is
     produced; the engine never returns a partial projection.

SEE ALSO:
  - store.go: persistence collaborator interface
  - store/memory.go: in-memory implementation
  - store/sqlite (repo root): SQLite implementation
*/
package finance

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// IDENTIFIERS
// =============================================================================

type (
	OfferID     string
	ContractID  string
	PaymentID   string
	FixedCostID string
	AssetID     string
	LoanID      string
	ActualID    string
)

// =============================================================================
// OFFER - A sellable product or service
// =============================================================================

type OfferType string

const (
	OfferOneOff    OfferType = "one_off"
	OfferRecurring OfferType = "recurring"
	OfferLicense   OfferType = "license"
	OfferHardware  OfferType = "hardware"
)

// defaultLicenseCostRate applies to license offers whose variable cost
// rate was left unset: resold licenses carry an 88% supplier cost.
var defaultLicenseCostRate = decimal.NewFromFloat(0.88)

// Offer describes something the business sells. Offers are immutable
// once referenced by a contract, as far as projections are concerned.
type Offer struct {
	ID           OfferID
	Name         string
	Type         OfferType
	DefaultPrice decimal.Decimal

	// VariableCostRate is the fraction of recognized revenue spent to
	// deliver it (0 <= rate <= 1). Nil means unset: zero for most offer
	// types, defaultLicenseCostRate for licenses.
	VariableCostRate *decimal.Decimal
}

// CostRate resolves the effective variable cost rate for the offer.
func (o Offer) CostRate() decimal.Decimal {
	if o.VariableCostRate != nil {
		return *o.VariableCostRate
	}
	if o.Type == OfferLicense {
		return defaultLicenseCostRate
	}
	return decimal.Zero
}

// =============================================================================
// CONTRACT - A client engagement referencing exactly one offer
// =============================================================================

type Recurrence string

const (
	RecurrenceOneTime Recurrence = "one_time"
	RecurrenceMonthly Recurrence = "monthly"
	RecurrenceAnnual  Recurrence = "annual"
)

// Payment is an explicit invoicing milestone on a contract. When a
// contract carries payments, they override the synthetic recognition
// plan derived from its recurrence.
type Payment struct {
	ID         PaymentID
	ContractID ContractID
	Label      string
	DueDate    time.Time
	Amount     decimal.Decimal
}

// Contract links a client to an offer over time. The contract references
// the offer, it does not own it: the offer must exist for the contract
// to contribute to a projection.
type Contract struct {
	ID         ContractID
	ClientName string
	OfferID    OfferID
	StartDate  time.Time
	Recurrence Recurrence
	TotalValue decimal.Decimal
	Quantity   int

	// TaxRate is the VAT rate applied on invoices. Informational only:
	// the P&L and cash projections are computed excluding taxes.
	TaxRate decimal.Decimal

	Payments []Payment
}

// Units returns the contract quantity, defaulting to one.
func (c Contract) Units() decimal.Decimal {
	if c.Quantity <= 0 {
		return decimal.NewFromInt(1)
	}
	return decimal.NewFromInt(int64(c.Quantity))
}

// =============================================================================
// FIXED COST - An open-ended monthly charge
// =============================================================================

type FixedCost struct {
	ID            FixedCostID
	Name          string
	MonthlyAmount decimal.Decimal
	StartDate     time.Time
}

// =============================================================================
// ASSET - A purchase depreciated straight-line over a fixed duration
// =============================================================================

type Asset struct {
	ID                 AssetID
	Name               string
	PurchaseDate       time.Time
	PurchaseAmount     decimal.Decimal
	AmortizationMonths int
}

// =============================================================================
// LOAN - Borrowed principal repaid via a constant-payment annuity
// =============================================================================

type Loan struct {
	ID         LoanID
	Name       string
	Principal  decimal.Decimal
	AnnualRate decimal.Decimal
	StartDate  time.Time
	TermMonths int
}

// =============================================================================
// ACTUAL ENTRY - A recorded real-world figure, used only by the comparator
// =============================================================================

type ActualCategory string

const (
	CategoryRevenue       ActualCategory = "revenue"
	CategoryVariableCosts ActualCategory = "variable_costs"
	CategoryFixedCosts    ActualCategory = "fixed_costs"
	CategoryAmortization  ActualCategory = "amortization"
	CategoryLoanInterest  ActualCategory = "loan_interest"
	CategoryLoanPrincipal ActualCategory = "loan_principal"
)

// ActualCategories lists the recordable categories in reporting order.
var ActualCategories = []ActualCategory{
	CategoryRevenue,
	CategoryVariableCosts,
	CategoryFixedCosts,
	CategoryAmortization,
	CategoryLoanInterest,
	CategoryLoanPrincipal,
}

// ValidActualCategory reports whether s names a recordable category.
func ValidActualCategory(s string) bool {
	for _, c := range ActualCategories {
		if string(c) == s {
			return true
		}
	}
	return false
}

type ActualEntry struct {
	ID        ActualID
	EntryDate time.Time
	Category  ActualCategory
	Amount    decimal.Decimal
	Label     string
}

// =============================================================================
// BOOK - The materialized entity snapshot a projection is computed from
// =============================================================================

// Book is the read-only snapshot of all projection inputs. The engine
// receives it already materialized; fetching it is the persistence
// collaborator's job (see EntityStore).
type Book struct {
	Offers     []Offer
	Contracts  []Contract
	FixedCosts []FixedCost
	Assets     []Asset
	Loans      []Loan
}

// OfferByID resolves an offer reference within the snapshot.
func (b *Book) OfferByID(id OfferID) (Offer, bool) {
	for _, o := range b.Offers {
		if o.ID == id {
			return o, true
		}
	}
	return Offer{}, false
}
