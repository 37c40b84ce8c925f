/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract, allowing:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

MONEY ON THE WIRE:
  Monetary fields serialize as JSON numbers rounded to the cent. The
  engine works in decimal internally; float64 conversion happens only
  here, at the serialization boundary.

VALIDATION:
  Validation is done in handlers, not in DTOs. DTOs are pure data carriers.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"github.com/shopspring/decimal"

	"github.com/ekonum/finance-engine/finance"
)

const dateFormat = "2006-01-02"

// =============================================================================
// ENTITY TYPES
// =============================================================================

// OfferDTO represents an offer in API responses.
type OfferDTO struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	OfferType        string   `json:"offer_type"`
	DefaultPrice     float64  `json:"default_price"`
	VariableCostRate *float64 `json:"variable_cost_rate,omitempty"`
}

// CreateOfferRequest is the request to create an offer.
type CreateOfferRequest struct {
	ID               string   `json:"id,omitempty"`
	Name             string   `json:"name"`
	OfferType        string   `json:"offer_type"`
	DefaultPrice     float64  `json:"default_price"`
	VariableCostRate *float64 `json:"variable_cost_rate,omitempty"`
}

// ContractDTO represents a contract in API responses.
type ContractDTO struct {
	ID         string       `json:"id"`
	ClientName string       `json:"client_name"`
	OfferID    string       `json:"offer_id"`
	StartDate  string       `json:"start_date"`
	Recurrence string       `json:"recurrence"`
	TotalValue float64      `json:"total_value"`
	Quantity   int          `json:"quantity"`
	TaxRate    float64      `json:"tax_rate"`
	Payments   []PaymentDTO `json:"payments,omitempty"`
}

// CreateContractRequest is the request to create a contract.
type CreateContractRequest struct {
	ID         string  `json:"id,omitempty"`
	ClientName string  `json:"client_name"`
	OfferID    string  `json:"offer_id"`
	StartDate  string  `json:"start_date"`
	Recurrence string  `json:"recurrence"`
	TotalValue float64 `json:"total_value"`
	Quantity   int     `json:"quantity,omitempty"`
	TaxRate    float64 `json:"tax_rate,omitempty"`
}

// PaymentDTO represents a payment event in API responses.
type PaymentDTO struct {
	ID         string  `json:"id"`
	ContractID string  `json:"contract_id"`
	Label      string  `json:"label"`
	DueDate    string  `json:"due_date"`
	Amount     float64 `json:"amount"`
}

// CreatePaymentRequest is the request to attach a payment to a contract.
type CreatePaymentRequest struct {
	ID         string  `json:"id,omitempty"`
	ContractID string  `json:"contract_id"`
	Label      string  `json:"label"`
	DueDate    string  `json:"due_date"`
	Amount     float64 `json:"amount"`
}

// FixedCostDTO represents a fixed cost in API responses.
type FixedCostDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	MonthlyAmount float64 `json:"monthly_amount"`
	StartDate     string  `json:"start_date"`
}

// CreateFixedCostRequest is the request to create a fixed cost.
type CreateFixedCostRequest struct {
	ID            string  `json:"id,omitempty"`
	Name          string  `json:"name"`
	MonthlyAmount float64 `json:"monthly_amount"`
	StartDate     string  `json:"start_date"`
}

// AssetDTO represents a depreciable asset in API responses.
type AssetDTO struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	PurchaseDate       string  `json:"purchase_date"`
	PurchaseAmount     float64 `json:"purchase_amount"`
	AmortizationMonths int     `json:"amortization_months"`
}

// CreateAssetRequest is the request to create an asset.
type CreateAssetRequest struct {
	ID                 string  `json:"id,omitempty"`
	Name               string  `json:"name"`
	PurchaseDate       string  `json:"purchase_date"`
	PurchaseAmount     float64 `json:"purchase_amount"`
	AmortizationMonths int     `json:"amortization_months"`
}

// LoanDTO represents a loan in API responses.
type LoanDTO struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	StartDate  string  `json:"start_date"`
	TermMonths int     `json:"term_months"`
}

// CreateLoanRequest is the request to create a loan.
type CreateLoanRequest struct {
	ID         string  `json:"id,omitempty"`
	Name       string  `json:"name"`
	Principal  float64 `json:"principal"`
	AnnualRate float64 `json:"annual_rate"`
	StartDate  string  `json:"start_date"`
	TermMonths int     `json:"term_months"`
}

// ActualEntryDTO represents a recorded actual figure in API responses.
type ActualEntryDTO struct {
	ID        string  `json:"id"`
	EntryDate string  `json:"entry_date"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Label     string  `json:"label,omitempty"`
}

// CreateActualRequest is the request to record an actual figure.
type CreateActualRequest struct {
	ID        string  `json:"id,omitempty"`
	EntryDate string  `json:"entry_date"`
	Category  string  `json:"category"`
	Amount    float64 `json:"amount"`
	Label     string  `json:"label,omitempty"`
}

// =============================================================================
// PROJECTION TYPES
// =============================================================================

// MonthlyRowDTO is one month of the projection on the wire.
type MonthlyRowDTO struct {
	Month         string  `json:"month"`
	Revenue       float64 `json:"revenue"`
	VariableCosts float64 `json:"variable_costs"`
	FixedCosts    float64 `json:"fixed_costs"`
	Amortization  float64 `json:"amortization"`
	LoanInterest  float64 `json:"loan_interest"`
	LoanPrincipal float64 `json:"loan_principal"`
	EBT           float64 `json:"ebt"`
	Cash          float64 `json:"cash"`
}

// ProjectionResponse wraps the projection rows with request metadata.
type ProjectionResponse struct {
	Periods  []MonthlyRowDTO   `json:"periods"`
	Metadata map[string]string `json:"metadata"`
}

// ComparisonRowDTO is one month of the budget-vs-actual comparison,
// flattened to budget_/actual_/variance_ triplets per category.
type ComparisonRowDTO struct {
	Month string `json:"month"`

	BudgetRevenue   float64 `json:"budget_revenue"`
	ActualRevenue   float64 `json:"actual_revenue"`
	VarianceRevenue float64 `json:"variance_revenue"`

	BudgetVariableCosts   float64 `json:"budget_variable_costs"`
	ActualVariableCosts   float64 `json:"actual_variable_costs"`
	VarianceVariableCosts float64 `json:"variance_variable_costs"`

	BudgetFixedCosts   float64 `json:"budget_fixed_costs"`
	ActualFixedCosts   float64 `json:"actual_fixed_costs"`
	VarianceFixedCosts float64 `json:"variance_fixed_costs"`

	BudgetAmortization   float64 `json:"budget_amortization"`
	ActualAmortization   float64 `json:"actual_amortization"`
	VarianceAmortization float64 `json:"variance_amortization"`

	BudgetLoanInterest   float64 `json:"budget_loan_interest"`
	ActualLoanInterest   float64 `json:"actual_loan_interest"`
	VarianceLoanInterest float64 `json:"variance_loan_interest"`

	BudgetLoanPrincipal   float64 `json:"budget_loan_principal"`
	ActualLoanPrincipal   float64 `json:"actual_loan_principal"`
	VarianceLoanPrincipal float64 `json:"variance_loan_principal"`

	BudgetEBT   float64 `json:"budget_ebt"`
	ActualEBT   float64 `json:"actual_ebt"`
	VarianceEBT float64 `json:"variance_ebt"`

	BudgetCash   float64 `json:"budget_cash"`
	ActualCash   float64 `json:"actual_cash"`
	VarianceCash float64 `json:"variance_cash"`
}

// ComparisonResponse wraps the comparison rows with request metadata.
type ComparisonResponse struct {
	Rows     []ComparisonRowDTO `json:"rows"`
	Metadata map[string]string  `json:"metadata"`
}

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toOfferDTO(o finance.Offer) OfferDTO {
	dto := OfferDTO{
		ID:           string(o.ID),
		Name:         o.Name,
		OfferType:    string(o.Type),
		DefaultPrice: toFloat(o.DefaultPrice),
	}
	if o.VariableCostRate != nil {
		v := toFloat(*o.VariableCostRate)
		dto.VariableCostRate = &v
	}
	return dto
}

func toContractDTO(c finance.Contract) ContractDTO {
	dto := ContractDTO{
		ID:         string(c.ID),
		ClientName: c.ClientName,
		OfferID:    string(c.OfferID),
		StartDate:  c.StartDate.Format(dateFormat),
		Recurrence: string(c.Recurrence),
		TotalValue: toFloat(c.TotalValue),
		Quantity:   c.Quantity,
		TaxRate:    toFloat(c.TaxRate),
	}
	for _, p := range c.Payments {
		dto.Payments = append(dto.Payments, toPaymentDTO(p))
	}
	return dto
}

func toPaymentDTO(p finance.Payment) PaymentDTO {
	return PaymentDTO{
		ID:         string(p.ID),
		ContractID: string(p.ContractID),
		Label:      p.Label,
		DueDate:    p.DueDate.Format(dateFormat),
		Amount:     toFloat(p.Amount),
	}
}

func toFixedCostDTO(c finance.FixedCost) FixedCostDTO {
	return FixedCostDTO{
		ID:            string(c.ID),
		Name:          c.Name,
		MonthlyAmount: toFloat(c.MonthlyAmount),
		StartDate:     c.StartDate.Format(dateFormat),
	}
}

func toAssetDTO(a finance.Asset) AssetDTO {
	return AssetDTO{
		ID:                 string(a.ID),
		Name:               a.Name,
		PurchaseDate:       a.PurchaseDate.Format(dateFormat),
		PurchaseAmount:     toFloat(a.PurchaseAmount),
		AmortizationMonths: a.AmortizationMonths,
	}
}

func toLoanDTO(l finance.Loan) LoanDTO {
	return LoanDTO{
		ID:         string(l.ID),
		Name:       l.Name,
		Principal:  toFloat(l.Principal),
		AnnualRate: toFloat(l.AnnualRate),
		StartDate:  l.StartDate.Format(dateFormat),
		TermMonths: l.TermMonths,
	}
}

func toActualDTO(e finance.ActualEntry) ActualEntryDTO {
	return ActualEntryDTO{
		ID:        string(e.ID),
		EntryDate: e.EntryDate.Format(dateFormat),
		Category:  string(e.Category),
		Amount:    toFloat(e.Amount),
		Label:     e.Label,
	}
}

func toMonthlyRowDTO(row finance.MonthlyRow) MonthlyRowDTO {
	return MonthlyRowDTO{
		Month:         row.Month.String(),
		Revenue:       toFloat(row.Revenue),
		VariableCosts: toFloat(row.VariableCosts),
		FixedCosts:    toFloat(row.FixedCosts),
		Amortization:  toFloat(row.Amortization),
		LoanInterest:  toFloat(row.LoanInterest),
		LoanPrincipal: toFloat(row.LoanPrincipal),
		EBT:           toFloat(row.EBT),
		Cash:          toFloat(row.Cash),
	}
}

func toComparisonRowDTO(row finance.ComparisonRow) ComparisonRowDTO {
	return ComparisonRowDTO{
		Month: row.Month.String(),

		BudgetRevenue:   toFloat(row.Budget.Revenue),
		ActualRevenue:   toFloat(row.Actual.Revenue),
		VarianceRevenue: toFloat(row.Variance.Revenue),

		BudgetVariableCosts:   toFloat(row.Budget.VariableCosts),
		ActualVariableCosts:   toFloat(row.Actual.VariableCosts),
		VarianceVariableCosts: toFloat(row.Variance.VariableCosts),

		BudgetFixedCosts:   toFloat(row.Budget.FixedCosts),
		ActualFixedCosts:   toFloat(row.Actual.FixedCosts),
		VarianceFixedCosts: toFloat(row.Variance.FixedCosts),

		BudgetAmortization:   toFloat(row.Budget.Amortization),
		ActualAmortization:   toFloat(row.Actual.Amortization),
		VarianceAmortization: toFloat(row.Variance.Amortization),

		BudgetLoanInterest:   toFloat(row.Budget.LoanInterest),
		ActualLoanInterest:   toFloat(row.Actual.LoanInterest),
		VarianceLoanInterest: toFloat(row.Variance.LoanInterest),

		BudgetLoanPrincipal:   toFloat(row.Budget.LoanPrincipal),
		ActualLoanPrincipal:   toFloat(row.Actual.LoanPrincipal),
		VarianceLoanPrincipal: toFloat(row.Variance.LoanPrincipal),

		BudgetEBT:   toFloat(row.Budget.EBT),
		ActualEBT:   toFloat(row.Actual.EBT),
		VarianceEBT: toFloat(row.Variance.EBT),

		BudgetCash:   toFloat(row.Budget.Cash),
		ActualCash:   toFloat(row.Actual.Cash),
		VarianceCash: toFloat(row.Variance.Cash),
	}
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Round(2).Float64()
	return f
}
