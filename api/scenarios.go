/*
scenarios.go - Demo scenario loaders for testing and demonstrations

PURPOSE:

	Provides pre-built scenarios that populate the database with realistic
	data for testing and demos. Each scenario creates offers, contracts,
	payment plans, fixed costs, assets, and loans that demonstrate specific
	features of the projection engine.

AVAILABLE SCENARIOS:

	consulting-firm:  One-off consulting deal with a milestone payment plan
	saas-startup:     Recurring licenses, a depreciating server, and a loan
	budget-review:    Full plan plus recorded actuals for variance analysis

HOW SCENARIOS WORK:
 1. Reset database (clear all data)
 2. Create offers
 3. Create contracts referencing them, with payment events where relevant
 4. Add fixed costs, assets, loans
 5. Optionally record actual figures

USAGE VIA API:

	POST /api/scenarios/load
	{"scenario_id": "saas-startup"}

ADDING NEW SCENARIOS:
 1. Add to 'scenarios' slice with ID, name, description
 2. Create loader function: loadXxxScenario(ctx, h)
 3. Add case to LoadScenario handler

NOTE:

	Scenarios reset the database. Only use in development/demo environments.

SEE ALSO:
  - handlers.go: writeJSON/writeError helpers
  - finance/projector.go: The engine these scenarios exercise
*/
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ekonum/finance-engine/finance"
)

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

// ScenarioDTO describes a loadable demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var scenarios = []ScenarioDTO{
	{
		ID:          "consulting-firm",
		Name:        "Consulting Firm",
		Description: "One-off consulting engagement with a milestone payment plan",
	},
	{
		ID:          "saas-startup",
		Name:        "SaaS Startup",
		Description: "Recurring license revenue, a depreciating server, and a bank loan",
	},
	{
		ID:          "budget-review",
		Name:        "Budget Review",
		Description: "Full plan plus recorded actuals for variance analysis",
	},
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// LoadScenario resets the database and loads a predefined scenario.
func (h *Handler) LoadScenario(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ScenarioID string `json:"scenario_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	ctx := r.Context()

	// Reset first
	if err := h.Store.Reset(ctx); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}

	var err error
	switch req.ScenarioID {
	case "consulting-firm":
		err = h.loadConsultingFirmScenario(ctx)
	case "saas-startup":
		err = h.loadSaaSStartupScenario(ctx)
	case "budget-review":
		err = h.loadBudgetReviewScenario(ctx)
	default:
		writeError(w, http.StatusBadRequest, "Unknown scenario", nil)
		return
	}

	if err != nil {
		writeError(w, http.StatusInternalServerError, fmt.Sprintf("Failed to load scenario: %v", err), err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "loaded", "scenario": req.ScenarioID})
}

// ResetDatabase clears all entities.
func (h *Handler) ResetDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.Reset(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to reset database", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
}

// =============================================================================
// SCENARIO LOADERS
// =============================================================================

func (h *Handler) loadConsultingFirmScenario(ctx context.Context) error {
	offer := finance.Offer{
		ID:           "offer-consulting",
		Name:         "ERP Implementation",
		Type:         finance.OfferOneOff,
		DefaultPrice: decimal.NewFromInt(18000),
	}
	if err := h.Store.SaveOffer(ctx, offer); err != nil {
		return err
	}

	// One engagement, invoiced in three milestones across the fiscal year.
	contract := finance.Contract{
		ID:         "contract-acme",
		ClientName: "Acme Industries",
		OfferID:    offer.ID,
		StartDate:  time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: finance.RecurrenceOneTime,
		TotalValue: decimal.NewFromInt(18000),
		Quantity:   1,
		TaxRate:    decimal.NewFromFloat(0.25),
	}
	if err := h.Store.SaveContract(ctx, contract); err != nil {
		return err
	}

	payments := []finance.Payment{
		{
			ID:         "pay-acme-1",
			ContractID: contract.ID,
			Label:      "Kickoff",
			DueDate:    time.Date(2024, time.October, 15, 0, 0, 0, 0, time.UTC),
			Amount:     decimal.NewFromInt(7200),
		},
		{
			ID:         "pay-acme-2",
			ContractID: contract.ID,
			Label:      "Milestone 1",
			DueDate:    time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
			Amount:     decimal.NewFromInt(7200),
		},
		{
			ID:         "pay-acme-3",
			ContractID: contract.ID,
			Label:      "Final delivery",
			DueDate:    time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC),
			Amount:     decimal.NewFromInt(3600),
		},
	}
	for _, p := range payments {
		if err := h.Store.SavePayment(ctx, p); err != nil {
			return err
		}
	}

	rent := finance.FixedCost{
		ID:            "cost-office",
		Name:          "Office rent",
		MonthlyAmount: decimal.NewFromInt(1200),
		StartDate:     time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
	}
	return h.Store.SaveFixedCost(ctx, rent)
}

func (h *Handler) loadSaaSStartupScenario(ctx context.Context) error {
	license := finance.Offer{
		ID:           "offer-license",
		Name:         "Platform License",
		Type:         finance.OfferLicense,
		DefaultPrice: decimal.NewFromInt(250),
	}
	if err := h.Store.SaveOffer(ctx, license); err != nil {
		return err
	}

	// Twelve seats billed monthly, open-ended.
	contract := finance.Contract{
		ID:         "contract-globex",
		ClientName: "Globex Corp",
		OfferID:    license.ID,
		StartDate:  time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
		Recurrence: finance.RecurrenceMonthly,
		TotalValue: decimal.NewFromInt(250),
		Quantity:   12,
		TaxRate:    decimal.NewFromFloat(0.25),
	}
	if err := h.Store.SaveContract(ctx, contract); err != nil {
		return err
	}

	server := finance.Asset{
		ID:                 "asset-server",
		Name:               "Production server",
		PurchaseDate:       time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		PurchaseAmount:     decimal.NewFromInt(18000),
		AmortizationMonths: 36,
	}
	if err := h.Store.SaveAsset(ctx, server); err != nil {
		return err
	}

	loan := finance.Loan{
		ID:         "loan-seed",
		Name:       "Equipment loan",
		Principal:  decimal.NewFromInt(50000),
		AnnualRate: decimal.NewFromFloat(0.03),
		StartDate:  time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
		TermMonths: 36,
	}
	if err := h.Store.SaveLoan(ctx, loan); err != nil {
		return err
	}

	salaries := finance.FixedCost{
		ID:            "cost-salaries",
		Name:          "Salaries",
		MonthlyAmount: decimal.NewFromInt(8500),
		StartDate:     time.Date(2024, time.October, 1, 0, 0, 0, 0, time.UTC),
	}
	return h.Store.SaveFixedCost(ctx, salaries)
}

func (h *Handler) loadBudgetReviewScenario(ctx context.Context) error {
	if err := h.loadSaaSStartupScenario(ctx); err != nil {
		return err
	}

	// Recorded figures for the first two fiscal months.
	actuals := []finance.ActualEntry{
		{
			ID:        "actual-1",
			EntryDate: time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC),
			Category:  finance.CategoryFixedCosts,
			Amount:    decimal.NewFromInt(8700),
			Label:     "Salaries incl. overtime",
		},
		{
			ID:        "actual-2",
			EntryDate: time.Date(2024, time.November, 28, 0, 0, 0, 0, time.UTC),
			Category:  finance.CategoryRevenue,
			Amount:    decimal.NewFromInt(2750),
			Label:     "Globex invoice, one seat churned",
		},
		{
			ID:        "actual-3",
			EntryDate: time.Date(2024, time.November, 28, 0, 0, 0, 0, time.UTC),
			Category:  finance.CategoryVariableCosts,
			Amount:    decimal.NewFromInt(2420),
			Label:     "Hosting and support",
		},
		{
			ID:        "actual-4",
			EntryDate: time.Date(2024, time.November, 30, 0, 0, 0, 0, time.UTC),
			Category:  finance.CategoryFixedCosts,
			Amount:    decimal.NewFromInt(8500),
			Label:     "Salaries",
		},
	}
	for _, a := range actuals {
		if err := h.Store.SaveActual(ctx, a); err != nil {
			return err
		}
	}
	return nil
}
