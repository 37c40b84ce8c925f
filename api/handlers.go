/*
handlers.go - HTTP API handlers for the financial planning service

PURPOSE:
  Exposes the projection engine and entity persistence via REST API.
  Handles HTTP request/response, JSON serialization, and delegates to
  the finance package.

ENDPOINTS:
  Entities:
    POST/GET   /api/offers           Create / list offers
    GET/DELETE /api/offers/{id}      Get / delete one offer
    POST/GET   /api/contracts        Create / list contracts
    GET/DELETE /api/contracts/{id}   Get / delete one contract
    POST/GET   /api/payments         Attach / list payment events
    POST/GET   /api/fixed-costs      Create / list fixed costs
    DELETE     /api/fixed-costs/{id}
    POST/GET   /api/assets           Create / list assets
    DELETE     /api/assets/{id}
    POST/GET   /api/loans            Create / list loans
    DELETE     /api/loans/{id}
    POST/GET   /api/actuals          Record / list actual figures
    DELETE     /api/actuals/{id}

  Reports:
    GET /api/projections?start_year=&years=&initial_cash=
    GET /api/budget-vs-actual?start_year=&years=&initial_cash=

  Scenarios:
    GET  /api/scenarios              List demo scenarios
    POST /api/scenarios/load         Load a demo scenario
    POST /api/scenarios/reset        Clear the database

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Load the entity snapshot, call the engine
  4. Serialize response
  5. Handle errors

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Resource not found
  - 422: Inconsistent entity graph (dangling offer reference)
  - 500: Internal errors

SECURITY NOTE:
  Currently NO authentication or authorization. All endpoints are public.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo scenario loaders
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ekonum/finance-engine/finance"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store finance.EntityStore
}

// NewHandler creates a new handler backed by the given store.
func NewHandler(store finance.EntityStore) *Handler {
	return &Handler{Store: store}
}

// =============================================================================
// OFFER HANDLERS
// =============================================================================

// CreateOffer creates a new offer.
func (h *Handler) CreateOffer(w http.ResponseWriter, r *http.Request) {
	var req CreateOfferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}

	offer := finance.Offer{
		ID:           finance.OfferID(orNewID(req.ID)),
		Name:         req.Name,
		Type:         finance.OfferType(req.OfferType),
		DefaultPrice: decimal.NewFromFloat(req.DefaultPrice),
	}
	if req.VariableCostRate != nil {
		rate := decimal.NewFromFloat(*req.VariableCostRate)
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
			writeError(w, http.StatusBadRequest, "variable_cost_rate must be between 0 and 1", nil)
			return
		}
		offer.VariableCostRate = &rate
	}

	if err := h.Store.SaveOffer(r.Context(), offer); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create offer", err)
		return
	}
	writeJSON(w, http.StatusCreated, toOfferDTO(offer))
}

// ListOffers returns all offers.
func (h *Handler) ListOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Store.ListOffers(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list offers", err)
		return
	}
	dtos := make([]OfferDTO, len(offers))
	for i, o := range offers {
		dtos[i] = toOfferDTO(o)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetOffer returns a single offer.
func (h *Handler) GetOffer(w http.ResponseWriter, r *http.Request) {
	id := finance.OfferID(chi.URLParam(r, "id"))
	offer, err := h.Store.GetOffer(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get offer", err)
		return
	}
	if offer == nil {
		writeError(w, http.StatusNotFound, "Offer not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toOfferDTO(*offer))
}

// DeleteOffer removes an offer.
func (h *Handler) DeleteOffer(w http.ResponseWriter, r *http.Request) {
	id := finance.OfferID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteOffer(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete offer", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// CONTRACT HANDLERS
// =============================================================================

// CreateContract creates a new contract referencing an existing offer.
func (h *Handler) CreateContract(w http.ResponseWriter, r *http.Request) {
	var req CreateContractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	startDate, err := time.Parse(dateFormat, req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start_date format (use YYYY-MM-DD)", err)
		return
	}

	offer, err := h.Store.GetOffer(r.Context(), finance.OfferID(req.OfferID))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to resolve offer", err)
		return
	}
	if offer == nil {
		writeError(w, http.StatusNotFound, "Offer not found", nil)
		return
	}

	contract := finance.Contract{
		ID:         finance.ContractID(orNewID(req.ID)),
		ClientName: req.ClientName,
		OfferID:    offer.ID,
		StartDate:  startDate,
		Recurrence: finance.Recurrence(req.Recurrence),
		TotalValue: decimal.NewFromFloat(req.TotalValue),
		Quantity:   req.Quantity,
		TaxRate:    decimal.NewFromFloat(req.TaxRate),
	}
	if contract.Recurrence == "" {
		contract.Recurrence = finance.RecurrenceOneTime
	}
	if contract.Quantity == 0 {
		contract.Quantity = 1
	}

	if err := h.Store.SaveContract(r.Context(), contract); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create contract", err)
		return
	}
	writeJSON(w, http.StatusCreated, toContractDTO(contract))
}

// ListContracts returns all contracts with their payment events.
func (h *Handler) ListContracts(w http.ResponseWriter, r *http.Request) {
	contracts, err := h.Store.ListContracts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list contracts", err)
		return
	}
	dtos := make([]ContractDTO, len(contracts))
	for i, c := range contracts {
		dtos[i] = toContractDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// GetContract returns a single contract.
func (h *Handler) GetContract(w http.ResponseWriter, r *http.Request) {
	id := finance.ContractID(chi.URLParam(r, "id"))
	contract, err := h.Store.GetContract(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to get contract", err)
		return
	}
	if contract == nil {
		writeError(w, http.StatusNotFound, "Contract not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, toContractDTO(*contract))
}

// DeleteContract removes a contract and its payment events.
func (h *Handler) DeleteContract(w http.ResponseWriter, r *http.Request) {
	id := finance.ContractID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteContract(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete contract", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PAYMENT HANDLERS
// =============================================================================

// CreatePayment attaches a payment event to an existing contract.
func (h *Handler) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	dueDate, err := time.Parse(dateFormat, req.DueDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid due_date format (use YYYY-MM-DD)", err)
		return
	}

	contract, err := h.Store.GetContract(r.Context(), finance.ContractID(req.ContractID))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to resolve contract", err)
		return
	}
	if contract == nil {
		writeError(w, http.StatusNotFound, "Contract not found", nil)
		return
	}

	payment := finance.Payment{
		ID:         finance.PaymentID(orNewID(req.ID)),
		ContractID: contract.ID,
		Label:      req.Label,
		DueDate:    dueDate,
		Amount:     decimal.NewFromFloat(req.Amount),
	}

	if err := h.Store.SavePayment(r.Context(), payment); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create payment", err)
		return
	}
	writeJSON(w, http.StatusCreated, toPaymentDTO(payment))
}

// ListPayments returns all payment events.
func (h *Handler) ListPayments(w http.ResponseWriter, r *http.Request) {
	payments, err := h.Store.ListPayments(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list payments", err)
		return
	}
	dtos := make([]PaymentDTO, len(payments))
	for i, p := range payments {
		dtos[i] = toPaymentDTO(p)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// FIXED COST HANDLERS
// =============================================================================

// CreateFixedCost creates a new fixed cost.
func (h *Handler) CreateFixedCost(w http.ResponseWriter, r *http.Request) {
	var req CreateFixedCostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	startDate, err := time.Parse(dateFormat, req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start_date format (use YYYY-MM-DD)", err)
		return
	}

	cost := finance.FixedCost{
		ID:            finance.FixedCostID(orNewID(req.ID)),
		Name:          req.Name,
		MonthlyAmount: decimal.NewFromFloat(req.MonthlyAmount),
		StartDate:     startDate,
	}

	if err := h.Store.SaveFixedCost(r.Context(), cost); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create fixed cost", err)
		return
	}
	writeJSON(w, http.StatusCreated, toFixedCostDTO(cost))
}

// ListFixedCosts returns all fixed costs.
func (h *Handler) ListFixedCosts(w http.ResponseWriter, r *http.Request) {
	costs, err := h.Store.ListFixedCosts(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list fixed costs", err)
		return
	}
	dtos := make([]FixedCostDTO, len(costs))
	for i, c := range costs {
		dtos[i] = toFixedCostDTO(c)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// DeleteFixedCost removes a fixed cost.
func (h *Handler) DeleteFixedCost(w http.ResponseWriter, r *http.Request) {
	id := finance.FixedCostID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteFixedCost(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete fixed cost", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// ASSET HANDLERS
// =============================================================================

// CreateAsset creates a new depreciable asset.
func (h *Handler) CreateAsset(w http.ResponseWriter, r *http.Request) {
	var req CreateAssetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	purchaseDate, err := time.Parse(dateFormat, req.PurchaseDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid purchase_date format (use YYYY-MM-DD)", err)
		return
	}
	if req.AmortizationMonths <= 0 {
		writeError(w, http.StatusBadRequest, "amortization_months must be positive", nil)
		return
	}

	asset := finance.Asset{
		ID:                 finance.AssetID(orNewID(req.ID)),
		Name:               req.Name,
		PurchaseDate:       purchaseDate,
		PurchaseAmount:     decimal.NewFromFloat(req.PurchaseAmount),
		AmortizationMonths: req.AmortizationMonths,
	}

	if err := h.Store.SaveAsset(r.Context(), asset); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create asset", err)
		return
	}
	writeJSON(w, http.StatusCreated, toAssetDTO(asset))
}

// ListAssets returns all assets.
func (h *Handler) ListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := h.Store.ListAssets(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list assets", err)
		return
	}
	dtos := make([]AssetDTO, len(assets))
	for i, a := range assets {
		dtos[i] = toAssetDTO(a)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// DeleteAsset removes an asset.
func (h *Handler) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	id := finance.AssetID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteAsset(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete asset", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// LOAN HANDLERS
// =============================================================================

// CreateLoan creates a new loan.
func (h *Handler) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var req CreateLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	startDate, err := time.Parse(dateFormat, req.StartDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid start_date format (use YYYY-MM-DD)", err)
		return
	}
	if req.TermMonths <= 0 {
		writeError(w, http.StatusBadRequest, "term_months must be positive", nil)
		return
	}
	if req.Principal <= 0 {
		writeError(w, http.StatusBadRequest, "principal must be positive", nil)
		return
	}
	if req.AnnualRate < 0 {
		writeError(w, http.StatusBadRequest, "annual_rate must not be negative", nil)
		return
	}

	loan := finance.Loan{
		ID:         finance.LoanID(orNewID(req.ID)),
		Name:       req.Name,
		Principal:  decimal.NewFromFloat(req.Principal),
		AnnualRate: decimal.NewFromFloat(req.AnnualRate),
		StartDate:  startDate,
		TermMonths: req.TermMonths,
	}

	if err := h.Store.SaveLoan(r.Context(), loan); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to create loan", err)
		return
	}
	writeJSON(w, http.StatusCreated, toLoanDTO(loan))
}

// ListLoans returns all loans.
func (h *Handler) ListLoans(w http.ResponseWriter, r *http.Request) {
	loans, err := h.Store.ListLoans(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list loans", err)
		return
	}
	dtos := make([]LoanDTO, len(loans))
	for i, l := range loans {
		dtos[i] = toLoanDTO(l)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// DeleteLoan removes a loan.
func (h *Handler) DeleteLoan(w http.ResponseWriter, r *http.Request) {
	id := finance.LoanID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteLoan(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete loan", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// ACTUAL ENTRY HANDLERS
// =============================================================================

// CreateActual records an actual figure.
func (h *Handler) CreateActual(w http.ResponseWriter, r *http.Request) {
	var req CreateActualRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	entryDate, err := time.Parse(dateFormat, req.EntryDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid entry_date format (use YYYY-MM-DD)", err)
		return
	}
	if !finance.ValidActualCategory(req.Category) {
		writeError(w, http.StatusBadRequest, "Unknown category: "+req.Category, nil)
		return
	}

	entry := finance.ActualEntry{
		ID:        finance.ActualID(orNewID(req.ID)),
		EntryDate: entryDate,
		Category:  finance.ActualCategory(req.Category),
		Amount:    decimal.NewFromFloat(req.Amount),
		Label:     req.Label,
	}

	if err := h.Store.SaveActual(r.Context(), entry); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to record actual entry", err)
		return
	}
	writeJSON(w, http.StatusCreated, toActualDTO(entry))
}

// ListActuals returns all recorded actual figures.
func (h *Handler) ListActuals(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Store.ListActuals(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list actual entries", err)
		return
	}
	dtos := make([]ActualEntryDTO, len(entries))
	for i, e := range entries {
		dtos[i] = toActualDTO(e)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// DeleteActual removes a recorded actual figure.
func (h *Handler) DeleteActual(w http.ResponseWriter, r *http.Request) {
	id := finance.ActualID(chi.URLParam(r, "id"))
	if err := h.Store.DeleteActual(r.Context(), id); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete actual entry", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// PROJECTION ENDPOINTS
// =============================================================================

// maxProjectionYears bounds the horizon the request layer will accept.
const maxProjectionYears = 10

// GetProjection computes the monthly projection for the requested horizon.
// GET /api/projections?start_year=2024&years=3&initial_cash=10000
func (h *Handler) GetProjection(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parseProjectionQuery(w, r)
	if !ok {
		return
	}

	projection, err := finance.Project(*input)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	periods := make([]MonthlyRowDTO, len(projection.Periods))
	for i, row := range projection.Periods {
		periods[i] = toMonthlyRowDTO(row)
	}
	writeJSON(w, http.StatusOK, ProjectionResponse{Periods: periods, Metadata: projection.Metadata})
}

// GetBudgetVsActual computes the budget-vs-actual comparison.
// GET /api/budget-vs-actual?start_year=2024&years=3&initial_cash=10000
func (h *Handler) GetBudgetVsActual(w http.ResponseWriter, r *http.Request) {
	input, ok := h.parseProjectionQuery(w, r)
	if !ok {
		return
	}

	actuals, err := h.Store.ListActuals(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load actual entries", err)
		return
	}

	comparison, err := finance.CompareBudgetVsActual(*input, actuals)
	if err != nil {
		writeEngineError(w, err)
		return
	}

	rows := make([]ComparisonRowDTO, len(comparison.Rows))
	for i, row := range comparison.Rows {
		rows[i] = toComparisonRowDTO(row)
	}
	writeJSON(w, http.StatusOK, ComparisonResponse{Rows: rows, Metadata: comparison.Metadata})
}

// parseProjectionQuery validates the shared query parameters and loads
// the entity snapshot. On failure it writes the error response and
// returns ok=false.
func (h *Handler) parseProjectionQuery(w http.ResponseWriter, r *http.Request) (*finance.ProjectionInput, bool) {
	q := r.URL.Query()

	startYear, err := strconv.Atoi(q.Get("start_year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "start_year must be a calendar year", err)
		return nil, false
	}

	years := 3
	if v := q.Get("years"); v != "" {
		years, err = strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "years must be an integer", err)
			return nil, false
		}
	}
	if years < 1 || years > maxProjectionYears {
		writeError(w, http.StatusBadRequest, "years must be between 1 and 10", nil)
		return nil, false
	}

	initialCash := decimal.Zero
	if v := q.Get("initial_cash"); v != "" {
		initialCash, err = decimal.NewFromString(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "initial_cash must be a number", err)
			return nil, false
		}
	}

	book, err := h.Store.LoadBook(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load entities", err)
		return nil, false
	}

	return &finance.ProjectionInput{
		StartYear:   startYear,
		Years:       years,
		InitialCash: initialCash,
		Book:        *book,
	}, true
}

// =============================================================================
// HELPERS
// =============================================================================

func writeEngineError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, finance.ErrDanglingReference):
		writeError(w, http.StatusUnprocessableEntity, "Inconsistent entities", err)
	case finance.IsClientError(err):
		writeError(w, http.StatusBadRequest, "Invalid projection input", err)
	default:
		writeError(w, http.StatusInternalServerError, "Projection failed", err)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}

func orNewID(id string) string {
	if id != "" {
		return id
	}
	return uuid.NewString()
}
