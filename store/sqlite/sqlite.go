/*
Package sqlite provides a SQLite-backed implementation of finance.EntityStore.

PURPOSE:
  Persists the business entities (offers, contracts, payments, fixed
  costs, assets, loans, actual entries) the projection engine consumes.
  In production the same patterns apply to PostgreSQL - only minor SQL
  dialect differences.

KEY TABLES:
  offers, contracts, payments, fixed_costs, assets, loans, actual_entries

STORAGE CONVENTIONS:
  - Monetary values are stored as TEXT holding the decimal string form,
    never as floating point.
  - Dates are stored as TEXT in the 2006-01-02 form.
  - Nullable columns map to nil pointers on load.

CONCURRENCY:
  Uses sync.RWMutex for thread-safety on top of SQLite's own locking.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better concurrency:
  multiple readers don't block and crash recovery improves.

USAGE:
  store, err := sqlite.New("./data/planner.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper
  migration tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - finance/store.go: interface definition
  - finance/store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/ekonum/finance-engine/finance"
)

const dateFormat = "2006-01-02"

// Store implements finance.EntityStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS offers (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		offer_type TEXT NOT NULL,
		default_price TEXT NOT NULL,
		variable_cost_rate TEXT,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS contracts (
		id TEXT PRIMARY KEY,
		client_name TEXT NOT NULL,
		offer_id TEXT NOT NULL,
		start_date TEXT NOT NULL,
		recurrence TEXT NOT NULL,
		total_value TEXT NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 1,
		tax_rate TEXT NOT NULL DEFAULT '0.2',
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_contracts_offer
		ON contracts(offer_id);

	CREATE TABLE IF NOT EXISTS payments (
		id TEXT PRIMARY KEY,
		contract_id TEXT NOT NULL REFERENCES contracts(id) ON DELETE CASCADE,
		label TEXT NOT NULL,
		due_date TEXT NOT NULL,
		amount TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_payments_contract
		ON payments(contract_id);
	CREATE INDEX IF NOT EXISTS idx_payments_due_date
		ON payments(due_date);

	CREATE TABLE IF NOT EXISTS fixed_costs (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		monthly_amount TEXT NOT NULL,
		start_date TEXT NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS assets (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		purchase_date TEXT NOT NULL,
		purchase_amount TEXT NOT NULL,
		amortization_months INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS loans (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		principal TEXT NOT NULL,
		annual_rate TEXT NOT NULL,
		start_date TEXT NOT NULL,
		term_months INTEGER NOT NULL,
		created_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS actual_entries (
		id TEXT PRIMARY KEY,
		entry_date TEXT NOT NULL,
		category TEXT NOT NULL,
		amount TEXT NOT NULL,
		label TEXT,
		created_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_actual_entries_date
		ON actual_entries(entry_date);
	CREATE INDEX IF NOT EXISTS idx_actual_entries_category
		ON actual_entries(category);
	`

	_, err := s.db.Exec(schema)
	return err
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// =============================================================================
// OFFERS
// =============================================================================

func (s *Store) SaveOffer(ctx context.Context, offer finance.Offer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var rate *string
	if offer.VariableCostRate != nil {
		v := offer.VariableCostRate.String()
		rate = &v
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO offers (id, name, offer_type, default_price, variable_cost_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			offer_type = excluded.offer_type,
			default_price = excluded.default_price,
			variable_cost_rate = excluded.variable_cost_rate`,
		offer.ID, offer.Name, offer.Type, offer.DefaultPrice.String(), rate, now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save offer: %w", err)
	}
	return nil
}

func (s *Store) GetOffer(ctx context.Context, id finance.OfferID) (*finance.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, offer_type, default_price, variable_cost_rate
		FROM offers WHERE id = ?`, id)

	offer, err := scanOffer(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return offer, nil
}

func (s *Store) ListOffers(ctx context.Context) ([]finance.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, offer_type, default_price, variable_cost_rate
		FROM offers ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list offers: %w", err)
	}
	defer rows.Close()

	var offers []finance.Offer
	for rows.Next() {
		offer, err := scanOffer(rows)
		if err != nil {
			return nil, err
		}
		offers = append(offers, *offer)
	}
	return offers, rows.Err()
}

func (s *Store) DeleteOffer(ctx context.Context, id finance.OfferID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM offers WHERE id = ?`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanOffer(r rowScanner) (*finance.Offer, error) {
	var (
		offer finance.Offer
		price string
		rate  sql.NullString
	)
	if err := r.Scan(&offer.ID, &offer.Name, &offer.Type, &price, &rate); err != nil {
		return nil, err
	}

	var err error
	if offer.DefaultPrice, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("corrupt default_price for offer %s: %w", offer.ID, err)
	}
	if rate.Valid {
		d, err := decimal.NewFromString(rate.String)
		if err != nil {
			return nil, fmt.Errorf("corrupt variable_cost_rate for offer %s: %w", offer.ID, err)
		}
		offer.VariableCostRate = &d
	}
	return &offer, nil
}

// =============================================================================
// CONTRACTS
// =============================================================================

func (s *Store) SaveContract(ctx context.Context, contract finance.Contract) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO contracts (id, client_name, offer_id, start_date, recurrence, total_value, quantity, tax_rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			client_name = excluded.client_name,
			offer_id = excluded.offer_id,
			start_date = excluded.start_date,
			recurrence = excluded.recurrence,
			total_value = excluded.total_value,
			quantity = excluded.quantity,
			tax_rate = excluded.tax_rate`,
		contract.ID, contract.ClientName, contract.OfferID,
		contract.StartDate.Format(dateFormat), contract.Recurrence,
		contract.TotalValue.String(), contract.Quantity, contract.TaxRate.String(), now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save contract: %w", err)
	}
	return nil
}

func (s *Store) GetContract(ctx context.Context, id finance.ContractID) (*finance.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, client_name, offer_id, start_date, recurrence, total_value, quantity, tax_rate
		FROM contracts WHERE id = ?`, id)

	contract, err := scanContract(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get contract: %w", err)
	}

	payments, err := s.paymentsFor(ctx, id)
	if err != nil {
		return nil, err
	}
	contract.Payments = payments
	return contract, nil
}

func (s *Store) ListContracts(ctx context.Context) ([]finance.Contract, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_name, offer_id, start_date, recurrence, total_value, quantity, tax_rate
		FROM contracts ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	defer rows.Close()

	var contracts []finance.Contract
	for rows.Next() {
		c, err := scanContract(rows)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range contracts {
		payments, err := s.paymentsFor(ctx, contracts[i].ID)
		if err != nil {
			return nil, err
		}
		contracts[i].Payments = payments
	}
	return contracts, nil
}

func (s *Store) DeleteContract(ctx context.Context, id finance.ContractID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM contracts WHERE id = ?`, id)
	return err
}

func scanContract(r rowScanner) (*finance.Contract, error) {
	var (
		contract  finance.Contract
		startDate string
		value     string
		taxRate   string
	)
	if err := r.Scan(&contract.ID, &contract.ClientName, &contract.OfferID,
		&startDate, &contract.Recurrence, &value, &contract.Quantity, &taxRate); err != nil {
		return nil, err
	}

	var err error
	if contract.StartDate, err = time.Parse(dateFormat, startDate); err != nil {
		return nil, fmt.Errorf("corrupt start_date for contract %s: %w", contract.ID, err)
	}
	if contract.TotalValue, err = decimal.NewFromString(value); err != nil {
		return nil, fmt.Errorf("corrupt total_value for contract %s: %w", contract.ID, err)
	}
	if contract.TaxRate, err = decimal.NewFromString(taxRate); err != nil {
		return nil, fmt.Errorf("corrupt tax_rate for contract %s: %w", contract.ID, err)
	}
	return &contract, nil
}

// =============================================================================
// PAYMENTS
// =============================================================================

func (s *Store) SavePayment(ctx context.Context, payment finance.Payment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO payments (id, contract_id, label, due_date, amount, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			contract_id = excluded.contract_id,
			label = excluded.label,
			due_date = excluded.due_date,
			amount = excluded.amount`,
		payment.ID, payment.ContractID, payment.Label,
		payment.DueDate.Format(dateFormat), payment.Amount.String(), now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	return nil
}

func (s *Store) ListPayments(ctx context.Context) ([]finance.Payment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.queryPayments(ctx, `
		SELECT id, contract_id, label, due_date, amount
		FROM payments ORDER BY due_date ASC, id ASC`)
}

func (s *Store) paymentsFor(ctx context.Context, id finance.ContractID) ([]finance.Payment, error) {
	return s.queryPayments(ctx, `
		SELECT id, contract_id, label, due_date, amount
		FROM payments WHERE contract_id = ? ORDER BY due_date ASC, id ASC`, id)
}

func (s *Store) queryPayments(ctx context.Context, query string, args ...any) ([]finance.Payment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	var payments []finance.Payment
	for rows.Next() {
		var (
			p       finance.Payment
			dueDate string
			amount  string
		)
		if err := rows.Scan(&p.ID, &p.ContractID, &p.Label, &dueDate, &amount); err != nil {
			return nil, err
		}
		if p.DueDate, err = time.Parse(dateFormat, dueDate); err != nil {
			return nil, fmt.Errorf("corrupt due_date for payment %s: %w", p.ID, err)
		}
		if p.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("corrupt amount for payment %s: %w", p.ID, err)
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}

// =============================================================================
// FIXED COSTS
// =============================================================================

func (s *Store) SaveFixedCost(ctx context.Context, cost finance.FixedCost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fixed_costs (id, name, monthly_amount, start_date, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			monthly_amount = excluded.monthly_amount,
			start_date = excluded.start_date`,
		cost.ID, cost.Name, cost.MonthlyAmount.String(), cost.StartDate.Format(dateFormat), now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save fixed cost: %w", err)
	}
	return nil
}

func (s *Store) ListFixedCosts(ctx context.Context) ([]finance.FixedCost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, monthly_amount, start_date
		FROM fixed_costs ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list fixed costs: %w", err)
	}
	defer rows.Close()

	var costs []finance.FixedCost
	for rows.Next() {
		var (
			c         finance.FixedCost
			amount    string
			startDate string
		)
		if err := rows.Scan(&c.ID, &c.Name, &amount, &startDate); err != nil {
			return nil, err
		}
		if c.MonthlyAmount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("corrupt monthly_amount for fixed cost %s: %w", c.ID, err)
		}
		if c.StartDate, err = time.Parse(dateFormat, startDate); err != nil {
			return nil, fmt.Errorf("corrupt start_date for fixed cost %s: %w", c.ID, err)
		}
		costs = append(costs, c)
	}
	return costs, rows.Err()
}

func (s *Store) DeleteFixedCost(ctx context.Context, id finance.FixedCostID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM fixed_costs WHERE id = ?`, id)
	return err
}

// =============================================================================
// ASSETS
// =============================================================================

func (s *Store) SaveAsset(ctx context.Context, asset finance.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO assets (id, name, purchase_date, purchase_amount, amortization_months, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			purchase_date = excluded.purchase_date,
			purchase_amount = excluded.purchase_amount,
			amortization_months = excluded.amortization_months`,
		asset.ID, asset.Name, asset.PurchaseDate.Format(dateFormat),
		asset.PurchaseAmount.String(), asset.AmortizationMonths, now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save asset: %w", err)
	}
	return nil
}

func (s *Store) ListAssets(ctx context.Context) ([]finance.Asset, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, purchase_date, purchase_amount, amortization_months
		FROM assets ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list assets: %w", err)
	}
	defer rows.Close()

	var assets []finance.Asset
	for rows.Next() {
		var (
			a            finance.Asset
			purchaseDate string
			amount       string
		)
		if err := rows.Scan(&a.ID, &a.Name, &purchaseDate, &amount, &a.AmortizationMonths); err != nil {
			return nil, err
		}
		if a.PurchaseDate, err = time.Parse(dateFormat, purchaseDate); err != nil {
			return nil, fmt.Errorf("corrupt purchase_date for asset %s: %w", a.ID, err)
		}
		if a.PurchaseAmount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("corrupt purchase_amount for asset %s: %w", a.ID, err)
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

func (s *Store) DeleteAsset(ctx context.Context, id finance.AssetID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM assets WHERE id = ?`, id)
	return err
}

// =============================================================================
// LOANS
// =============================================================================

func (s *Store) SaveLoan(ctx context.Context, loan finance.Loan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO loans (id, name, principal, annual_rate, start_date, term_months, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			principal = excluded.principal,
			annual_rate = excluded.annual_rate,
			start_date = excluded.start_date,
			term_months = excluded.term_months`,
		loan.ID, loan.Name, loan.Principal.String(), loan.AnnualRate.String(),
		loan.StartDate.Format(dateFormat), loan.TermMonths, now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save loan: %w", err)
	}
	return nil
}

func (s *Store) ListLoans(ctx context.Context) ([]finance.Loan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, principal, annual_rate, start_date, term_months
		FROM loans ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []finance.Loan
	for rows.Next() {
		var (
			l         finance.Loan
			principal string
			rate      string
			startDate string
		)
		if err := rows.Scan(&l.ID, &l.Name, &principal, &rate, &startDate, &l.TermMonths); err != nil {
			return nil, err
		}
		if l.Principal, err = decimal.NewFromString(principal); err != nil {
			return nil, fmt.Errorf("corrupt principal for loan %s: %w", l.ID, err)
		}
		if l.AnnualRate, err = decimal.NewFromString(rate); err != nil {
			return nil, fmt.Errorf("corrupt annual_rate for loan %s: %w", l.ID, err)
		}
		if l.StartDate, err = time.Parse(dateFormat, startDate); err != nil {
			return nil, fmt.Errorf("corrupt start_date for loan %s: %w", l.ID, err)
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

func (s *Store) DeleteLoan(ctx context.Context, id finance.LoanID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM loans WHERE id = ?`, id)
	return err
}

// =============================================================================
// ACTUAL ENTRIES
// =============================================================================

func (s *Store) SaveActual(ctx context.Context, entry finance.ActualEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO actual_entries (id, entry_date, category, amount, label, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			entry_date = excluded.entry_date,
			category = excluded.category,
			amount = excluded.amount,
			label = excluded.label`,
		entry.ID, entry.EntryDate.Format(dateFormat), entry.Category,
		entry.Amount.String(), entry.Label, now(),
	)
	if err != nil {
		return fmt.Errorf("failed to save actual entry: %w", err)
	}
	return nil
}

func (s *Store) ListActuals(ctx context.Context) ([]finance.ActualEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, entry_date, category, amount, label
		FROM actual_entries ORDER BY entry_date ASC, id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list actual entries: %w", err)
	}
	defer rows.Close()

	var entries []finance.ActualEntry
	for rows.Next() {
		var (
			e         finance.ActualEntry
			entryDate string
			amount    string
			label     sql.NullString
		)
		if err := rows.Scan(&e.ID, &entryDate, &e.Category, &amount, &label); err != nil {
			return nil, err
		}
		if e.EntryDate, err = time.Parse(dateFormat, entryDate); err != nil {
			return nil, fmt.Errorf("corrupt entry_date for actual %s: %w", e.ID, err)
		}
		if e.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("corrupt amount for actual %s: %w", e.ID, err)
		}
		e.Label = label.String
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *Store) DeleteActual(ctx context.Context, id finance.ActualID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.ExecContext(ctx, `DELETE FROM actual_entries WHERE id = ?`, id)
	return err
}

// =============================================================================
// SNAPSHOT & RESET
// =============================================================================

// LoadBook materializes the full projection snapshot in one call.
func (s *Store) LoadBook(ctx context.Context) (*finance.Book, error) {
	offers, err := s.ListOffers(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.ListContracts(ctx)
	if err != nil {
		return nil, err
	}
	fixedCosts, err := s.ListFixedCosts(ctx)
	if err != nil {
		return nil, err
	}
	assets, err := s.ListAssets(ctx)
	if err != nil {
		return nil, err
	}
	loans, err := s.ListLoans(ctx)
	if err != nil {
		return nil, err
	}

	return &finance.Book{
		Offers:     offers,
		Contracts:  contracts,
		FixedCosts: fixedCosts,
		Assets:     assets,
		Loans:      loans,
	}, nil
}

// Reset clears every table. Development and demo use only.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tables := []string{"payments", "contracts", "offers", "fixed_costs", "assets", "loans", "actual_entries"}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin reset: %w", err)
	}
	defer tx.Rollback()

	for _, table := range tables {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}
	return tx.Commit()
}
