package finance

import (
	"fmt"
	"time"
)

// =============================================================================
// MONTH - The time granularity of the whole engine
// =============================================================================

// Month identifies one calendar month. It is the key every schedule and
// every projection row is indexed by; the engine never works at a finer
// granularity than this.
type Month struct {
	Year  int
	Month time.Month
}

// MonthOf truncates a date to the month that contains it.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// NewMonth builds a Month from its components.
func NewMonth(year int, month time.Month) Month {
	// Normalize out-of-range months (e.g. month 13) through time.Date.
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return Month{Year: t.Year(), Month: t.Month()}
}

// index maps the month onto a single monotonically increasing integer,
// which makes comparison and arithmetic trivial.
func (m Month) index() int { return m.Year*12 + int(m.Month) - 1 }

// Comparison
func (m Month) Before(other Month) bool        { return m.index() < other.index() }
func (m Month) After(other Month) bool         { return m.index() > other.index() }
func (m Month) Equal(other Month) bool         { return m.index() == other.index() }
func (m Month) BeforeOrEqual(other Month) bool { return m.index() <= other.index() }
func (m Month) AfterOrEqual(other Month) bool  { return m.index() >= other.index() }

// Add returns the month n months later (n may be negative).
func (m Month) Add(n int) Month {
	return MonthOf(m.Date().AddDate(0, n, 0))
}

// Date returns the first day of the month in UTC.
func (m Month) Date() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) String() string {
	return m.Date().Format("2006-01")
}

// ParseMonth parses the "2006-01" form produced by String.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return MonthOf(t), nil
}

// =============================================================================
// HORIZON - The bounded span of months a projection covers
// =============================================================================

// FiscalStartMonth is the first month of the business's fiscal year.
// Fiscal year N runs October N through September N+1.
const FiscalStartMonth = time.October

// FiscalHorizon returns the ordered months covered by a projection:
// years x 12 months starting at October of startYear.
//
// The horizon is always materialized fully; callers are expected to have
// validated the year count before reaching the engine, but Project guards
// it again so no partial horizon can ever be produced.
func FiscalHorizon(startYear, years int) []Month {
	months := make([]Month, 0, years*12)
	start := NewMonth(startYear, FiscalStartMonth)
	for i := 0; i < years*12; i++ {
		months = append(months, start.Add(i))
	}
	return months
}
