/*
server.go - HTTP router and middleware configuration

PURPOSE:
  Configures the HTTP router (chi), middleware stack, and route definitions.
  This is the wiring layer that connects URLs to handlers.

ROUTER: chi
  Chi was chosen for:
  - Lightweight and fast
  - Context-based
  - Middleware support
  - RESTful route patterns

MIDDLEWARE STACK:
  1. Logger:     Request logging
  2. Recoverer:  Panic recovery (500 instead of crash)
  3. RequestID:  Unique ID per request for tracing
  4. CORS:       Cross-origin requests for frontend

ROUTE GROUPS:
  /api/offers/*            Offer catalog
  /api/contracts/*         Contracts and their payment events
  /api/fixed-costs/*       Recurring fixed costs
  /api/assets/*            Depreciable assets
  /api/loans/*             Loans
  /api/actuals/*           Recorded actual figures
  /api/projections         Monthly budget projection
  /api/budget-vs-actual    Budget vs actual comparison
  /api/scenarios/*         Demo scenarios

SECURITY NOTE:
  No authentication middleware currently. All endpoints are public.

SEE ALSO:
  - handlers.go: Handler implementations
  - cmd/server/main.go: Server startup
*/
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates a new router with all routes configured.
func NewRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:8080"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Offer routes
		r.Route("/offers", func(r chi.Router) {
			r.Get("/", h.ListOffers)
			r.Post("/", h.CreateOffer)
			r.Get("/{id}", h.GetOffer)
			r.Delete("/{id}", h.DeleteOffer)
		})

		// Contract routes
		r.Route("/contracts", func(r chi.Router) {
			r.Get("/", h.ListContracts)
			r.Post("/", h.CreateContract)
			r.Get("/{id}", h.GetContract)
			r.Delete("/{id}", h.DeleteContract)
		})

		// Payment event routes
		r.Route("/payments", func(r chi.Router) {
			r.Get("/", h.ListPayments)
			r.Post("/", h.CreatePayment)
		})

		// Fixed cost routes
		r.Route("/fixed-costs", func(r chi.Router) {
			r.Get("/", h.ListFixedCosts)
			r.Post("/", h.CreateFixedCost)
			r.Delete("/{id}", h.DeleteFixedCost)
		})

		// Asset routes
		r.Route("/assets", func(r chi.Router) {
			r.Get("/", h.ListAssets)
			r.Post("/", h.CreateAsset)
			r.Delete("/{id}", h.DeleteAsset)
		})

		// Loan routes
		r.Route("/loans", func(r chi.Router) {
			r.Get("/", h.ListLoans)
			r.Post("/", h.CreateLoan)
			r.Delete("/{id}", h.DeleteLoan)
		})

		// Actual entry routes
		r.Route("/actuals", func(r chi.Router) {
			r.Get("/", h.ListActuals)
			r.Post("/", h.CreateActual)
			r.Delete("/{id}", h.DeleteActual)
		})

		// Report routes
		r.Get("/projections", h.GetProjection)
		r.Get("/budget-vs-actual", h.GetBudgetVsActual)

		// Scenario routes
		r.Route("/scenarios", func(r chi.Router) {
			r.Get("/", h.ListScenarios)
			r.Post("/load", h.LoadScenario)
			r.Post("/reset", h.ResetDatabase)
		})
	})

	// Landing page for anyone poking the server with a browser.
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Finance Engine</title></head>
<body style="font-family: system-ui; max-width: 800px; margin: 50px auto; padding: 20px;">
<h1>Finance Engine API</h1>
<h2>API Endpoints</h2>
<ul>
<li><a href="/api/offers">/api/offers</a> - List offers</li>
<li><a href="/api/contracts">/api/contracts</a> - List contracts</li>
<li><a href="/api/projections?start_year=2024">/api/projections</a> - Monthly projection</li>
<li><a href="/api/budget-vs-actual?start_year=2024">/api/budget-vs-actual</a> - Budget vs actual</li>
<li><a href="/api/scenarios">/api/scenarios</a> - List demo scenarios</li>
</ul>
</body>
</html>`))
	})

	return r
}
