/*
store.go - Persistence collaborator interface

PURPOSE:
  Defines the boundary between the pure engine and entity persistence.
  The engine itself never touches storage: handlers load a Book snapshot
  through this interface and hand it to Project/CompareBudgetVsActual.

IMPLEMENTATIONS:
  - store/sqlite (repo root): production SQLite store
  - finance/store: in-memory store for tests and development

CONTRACT:
  - List* methods return entities in a stable, deterministic order.
  - LoadBook returns contracts with their payment events embedded.
  - The engine treats everything returned here as immutable input.
*/
package finance

import "context"

// EntityStore persists the business entities the engine projects from.
type EntityStore interface {
	SaveOffer(ctx context.Context, offer Offer) error
	GetOffer(ctx context.Context, id OfferID) (*Offer, error)
	ListOffers(ctx context.Context) ([]Offer, error)
	DeleteOffer(ctx context.Context, id OfferID) error

	SaveContract(ctx context.Context, contract Contract) error
	GetContract(ctx context.Context, id ContractID) (*Contract, error)
	ListContracts(ctx context.Context) ([]Contract, error)
	DeleteContract(ctx context.Context, id ContractID) error

	SavePayment(ctx context.Context, payment Payment) error
	ListPayments(ctx context.Context) ([]Payment, error)

	SaveFixedCost(ctx context.Context, cost FixedCost) error
	ListFixedCosts(ctx context.Context) ([]FixedCost, error)
	DeleteFixedCost(ctx context.Context, id FixedCostID) error

	SaveAsset(ctx context.Context, asset Asset) error
	ListAssets(ctx context.Context) ([]Asset, error)
	DeleteAsset(ctx context.Context, id AssetID) error

	SaveLoan(ctx context.Context, loan Loan) error
	ListLoans(ctx context.Context) ([]Loan, error)
	DeleteLoan(ctx context.Context, id LoanID) error

	SaveActual(ctx context.Context, entry ActualEntry) error
	ListActuals(ctx context.Context) ([]ActualEntry, error)
	DeleteActual(ctx context.Context, id ActualID) error

	// LoadBook materializes the full read-only snapshot a projection
	// consumes, with payment events embedded in their contracts.
	LoadBook(ctx context.Context) (*Book, error)

	// Reset clears every entity. Development and demo use only.
	Reset(ctx context.Context) error
}
