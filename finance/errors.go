/*
errors.go - Centralized error types for the projection engine

PURPOSE:
  All engine error types in one place. Every failure is detected
  synchronously before any row is produced: the engine never returns a
  partially computed projection alongside an error.

ERROR CATEGORIES:
  1. Schedule errors  - An entity cannot produce a valid schedule
  2. Reference errors - A contract points at a missing offer
  3. Horizon errors   - The requested projection span is invalid

USAGE:
  Callers match with errors.Is/errors.As:

    if errors.Is(err, finance.ErrInvalidSchedule) { ... }

    var dangling *finance.DanglingReferenceError
    if errors.As(err, &dangling) {
        log.Printf("contract %s has no offer", dangling.ContractID)
    }
*/
package finance

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidSchedule is returned when an entity's parameters cannot
	// produce a schedule (zero-length amortization, negative principal...).
	ErrInvalidSchedule = errors.New("invalid schedule")

	// ErrDanglingReference is returned when a contract references an
	// offer that does not exist in the snapshot.
	ErrDanglingReference = errors.New("contract references unknown offer")

	// ErrInvalidHorizon is returned when the requested projection span
	// is empty or malformed.
	ErrInvalidHorizon = errors.New("invalid projection horizon")
)

// =============================================================================
// STRUCTURED ERRORS - Carry the offending entity and constraint
// =============================================================================

// InvalidScheduleError identifies the entity whose parameters violate a
// schedule constraint.
type InvalidScheduleError struct {
	Entity string // "loan" or "asset"
	ID     string
	Field  string
	Reason string
}

func (e *InvalidScheduleError) Error() string {
	return fmt.Sprintf("%s %s: %s %s", e.Entity, e.ID, e.Field, e.Reason)
}

func (e *InvalidScheduleError) Unwrap() error { return ErrInvalidSchedule }

// DanglingReferenceError identifies a contract whose offer is missing.
// The contract's contribution is never silently dropped to zero.
type DanglingReferenceError struct {
	ContractID ContractID
	OfferID    OfferID
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("contract %s references unknown offer %s", e.ContractID, e.OfferID)
}

func (e *DanglingReferenceError) Unwrap() error { return ErrDanglingReference }

// InvalidHorizonError identifies a malformed projection request.
type InvalidHorizonError struct {
	StartYear int
	Years     int
	Reason    string
}

func (e *InvalidHorizonError) Error() string {
	return fmt.Sprintf("horizon start_year=%d years=%d: %s", e.StartYear, e.Years, e.Reason)
}

func (e *InvalidHorizonError) Unwrap() error { return ErrInvalidHorizon }

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsClientError returns true if the error is due to invalid input rather
// than an internal failure. The transport layer maps these to 4xx.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidSchedule) ||
		errors.Is(err, ErrInvalidHorizon) ||
		errors.Is(err, ErrDanglingReference)
}
