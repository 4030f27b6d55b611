package overrides

import (
	"github.com/areumfire/wealthsim/internal/domain"
	"github.com/areumfire/wealthsim/internal/timeaxis"
)

// Apply clones scenario and injects every configured shock as an additive
// schedule entry onto the clone, per spec.md §4.5. The input scenario is
// never mutated; the returned scenario is safe for the simulation loop to
// run and discard.
func Apply(scenario *domain.Scenario, o Overrides) *domain.Scenario {
	clone := scenario.Clone()

	applyGrowthShocks(clone.Accounts, domain.KindPortfolio, o.resolvedPortfolioGrowth())
	applyGrowthShocks(clone.Accounts, domain.KindRealEstate, o.RealEstateGrowth)
	applyMortgageRateShocks(clone.Transactions, o.MortgageRate)
	applyInflationShocks(clone.Transactions, o.Inflation)
	applyIncomeTaxShock(&clone.Tax, scenario, o.IncomeTax)

	return clone
}

func applyGrowthShocks(accounts *domain.Accounts, kind domain.Kind, shocks []Shock) {
	if len(shocks) == 0 {
		return
	}
	for _, acc := range accounts.All() {
		if domain.NormalizeKind(acc.Kind) != kind {
			continue
		}
		for _, s := range shocks {
			acc.GrowthSchedule.Append(s.Window(), acc.AnnualGrowthRate+s.Pct)
		}
	}
}

func applyMortgageRateShocks(txs []domain.Transaction, shocks []Shock) {
	if len(shocks) == 0 {
		return
	}
	for i := range txs {
		if txs[i].Kind != domain.TxMortgageInterest {
			continue
		}
		m := txs[i].MortgageInterest
		for _, s := range shocks {
			m.RateSchedule.Append(s.Window(), m.AnnualRate+s.Pct)
		}
	}
}

func applyInflationShocks(txs []domain.Transaction, shocks []Shock) {
	if len(shocks) == 0 {
		return
	}
	for i := range txs {
		if txs[i].Kind == domain.TxMortgageInterest {
			continue
		}
		r := txs[i].Regular
		if r == nil {
			continue
		}
		for _, s := range shocks {
			r.InflationSchedule.Append(s.Window(), s.Pct)
		}
	}
}

// applyIncomeTaxShock adjusts income_tax_rate additively using only the
// first shock whose window overlaps the scenario's own window, per
// spec.md §4.5 ("no time-varying income-tax application in simulation;
// only one effective rate"). Overlap, not single-point containment: a
// shock window that overlaps the scenario without covering its start key
// must still apply. Checked against the original scenario's own window
// so the check is independent of any prior override pass.
func applyIncomeTaxShock(tax *domain.TaxConfig, original *domain.Scenario, shocks []Shock) {
	if len(shocks) == 0 {
		return
	}
	scenarioWindow := timeaxis.Closed(original.StartKey(), original.EndKey())
	for _, s := range shocks {
		if s.Window().Overlaps(scenarioWindow) {
			tax.IncomeTaxRate += s.Pct
			return
		}
	}
}
