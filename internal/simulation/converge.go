package simulation

import (
	"github.com/areumfire/wealthsim/internal/domain"
	"github.com/areumfire/wealthsim/internal/obslog"
	"github.com/areumfire/wealthsim/internal/tax"
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
)

// maxConvergenceIterations bounds the tax fixed-point loop (spec.md
// §4.7): it exists to cut off pathological oscillation on discontinuous
// tariff boundaries, not because convergence is expected to take this
// long for realistic inputs.
const maxConvergenceIterations = 10

// convergenceTolerance is the per-year total_all delta below which two
// consecutive rounds are considered the same fixed point (spec.md §4.7).
const convergenceTolerance = 0.01

// converge runs the tax fixed-point iteration: simulate, derive yearly
// taxes from the result, inject next round's December charges, repeat
// until the per-year total stabilizes or the iteration cap is hit.
// original supplies the non-overridden transactions the yearly
// aggregation must scan (spec.md §4.6); working is the (possibly
// override-applied) scenario the loop actually simulates.
func converge(working, original *domain.Scenario, checkCancelled func() error) (*pass, []tax.Row, error) {
	taxCharges := map[int]float64{}
	var prevRows []tax.Row
	var lastPass *pass
	var lastRows []tax.Row

	for iter := 1; iter <= maxConvergenceIterations; iter++ {
		if err := checkCancelled(); err != nil {
			return nil, nil, err
		}

		iterationID := uuid.New().String()
		obslog.Iteration("tax convergence iteration %d (%s): %d charge years", iter, iterationID, len(taxCharges))

		p, err := run(working, taxCharges, checkCancelled)
		if err != nil {
			return nil, nil, err
		}

		cashFlows := tax.AggregateByYear(original.Transactions, p.mortgageExpenseByYear, int(original.StartKey()), int(original.EndKey()))
		rows := tax.ComputeAll(cashFlows, p.decWealthByYear, original.Tax)

		lastPass, lastRows = p, rows

		if sameYears(rows, prevRows) && withinTolerance(rows, prevRows, convergenceTolerance) {
			break
		}

		prevRows = rows
		taxCharges = make(map[int]float64, len(rows))
		for _, r := range rows {
			taxCharges[r.Year] = -absf(r.TotalAll)
		}
	}

	return lastPass, lastRows, nil
}

func sameYears(a, b []tax.Row) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Year != b[i].Year {
			return false
		}
	}
	return true
}

func withinTolerance(a, b []tax.Row, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.EqualWithinAbs(a[i].TotalAll, b[i].TotalAll, tol) {
			return false
		}
	}
	return true
}
