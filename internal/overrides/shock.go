// Package overrides translates a scenario's stress-test inputs into
// additive schedule entries appended to a freshly cloned Accounts arena
// and transaction set, per spec.md §4.5. Application always runs against
// a deep copy; it never mutates the scenario a caller passed in.
package overrides

import (
	"github.com/areumfire/wealthsim/internal/timeaxis"
)

// Shock is one time-windowed additive adjustment: {pct, start?, end?}.
type Shock struct {
	Pct        float64
	StartYear  int
	StartMonth int
	EndYear    int
	EndMonth   int
	HasStart   bool
	HasEnd     bool
}

// Window converts the shock's optional bounds into a timeaxis.Window.
func (s Shock) Window() timeaxis.Window {
	w := timeaxis.Window{}
	if s.HasStart {
		k := timeaxis.New(s.StartYear, s.StartMonth)
		w.Start = &k
	}
	if s.HasEnd {
		k := timeaxis.New(s.EndYear, s.EndMonth)
		w.End = &k
	}
	return w
}

// Overrides is the full set of stress inputs a caller may attach to a
// Simulate call. Each shock list is additive: every entry in PortfolioGrowth,
// for instance, appends one growth_schedule entry to every Portfolio
// account, in list order. Schedule lookup is first-match-wins, so where
// two entries cover the same month the earlier one in the list applies.
type Overrides struct {
	PortfolioGrowth []Shock
	RealEstateGrowth []Shock
	MortgageRate     []Shock
	Inflation        []Shock
	IncomeTax        []Shock

	// Legacy single-shock fields, synthesized into one Shock each when
	// the corresponding list above is empty (spec.md §4.5).
	LegacyPortfolioGrowthPct *float64
	LegacyPortfolioStartYear int
	LegacyPortfolioStartMonth int
	LegacyPortfolioEndYear   int
	LegacyPortfolioEndMonth  int
}

// resolvedPortfolioGrowth returns PortfolioGrowth, or a single synthesized
// shock built from the legacy fields when the list is empty.
func (o Overrides) resolvedPortfolioGrowth() []Shock {
	if len(o.PortfolioGrowth) > 0 || o.LegacyPortfolioGrowthPct == nil {
		return o.PortfolioGrowth
	}
	return []Shock{{
		Pct:        *o.LegacyPortfolioGrowthPct,
		StartYear:  o.LegacyPortfolioStartYear,
		StartMonth: o.LegacyPortfolioStartMonth,
		EndYear:    o.LegacyPortfolioEndYear,
		EndMonth:   o.LegacyPortfolioEndMonth,
		HasStart:   o.LegacyPortfolioStartYear != 0,
		HasEnd:     o.LegacyPortfolioEndYear != 0,
	}}
}
