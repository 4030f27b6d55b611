package domain

import "github.com/areumfire/wealthsim/internal/timeaxis"

// TaxConfig names the tables and multipliers a scenario's yearly tax
// computation evaluates against (spec.md §3, §4.6). IncomeTariff and
// WealthTariff are canton-level progressive tables; FederalTable layers
// on top. The three rate factors and PersonalTax compose into the
// cantonal/municipal total; UseLegacyBrackets selects the flat-rate
// Brackets path instead, for scenarios without a tariff table.
type TaxConfig struct {
	IncomeTariff TariffTable
	WealthTariff TariffTable
	Federal      FederalTable
	Brackets     BracketTable
	UseLegacyBrackets bool

	MunicipalFactor float64
	CantonalFactor  float64
	ChurchFactor    float64
	PersonalTax     float64
	HouseholdSize   int
	NumChildren     int

	// Flat scenario-level rates. The simulation and the yearly tax
	// computation do not read them; overrides.Apply shifts IncomeTaxRate
	// additively (§4.5).
	InflationRate float64
	IncomeTaxRate float64
	WealthTaxRate float64

	TaxAccountID AccountID
}

// Scenario is the complete, repository-loaded input to a simulation run:
// the account arena, every transaction, the tax configuration, and the
// horizon to simulate over. It is the unit original_source/backend's
// get_scenario + list_assets_for_scenario + list_transactions_for_scenario
// calls collectively assemble (spec.md §6).
type Scenario struct {
	ID           string
	Name         string
	Accounts     *Accounts
	Transactions []Transaction
	Tax          TaxConfig
	HorizonYears int
	StartYear    int
	StartMonth   int
}

// StartKey returns the scenario's first simulated month.
func (s *Scenario) StartKey() timeaxis.Key { return timeaxis.New(s.StartYear, s.StartMonth) }

// EndKey returns the scenario's last simulated month: HorizonYears*12-1
// months after StartKey, i.e. an inclusive whole-year span (spec.md §3,
// "inclusive [start_key, end_key]").
func (s *Scenario) EndKey() timeaxis.Key {
	end := s.StartKey()
	for i := 0; i < s.HorizonYears*12-1; i++ {
		end = end.Next()
	}
	return end
}

// Clone deep-copies the account arena and every transaction (so override
// application — which appends entries to a transaction's rate/inflation
// schedule — never mutates the loaded scenario, per spec.md §4.5).
func (s *Scenario) Clone() *Scenario {
	clone := *s
	clone.Accounts = s.Accounts.Clone()
	clone.Transactions = make([]Transaction, len(s.Transactions))
	for i, t := range s.Transactions {
		clone.Transactions[i] = t.Clone()
	}
	return &clone
}
