package simulation

import (
	"github.com/areumfire/wealthsim/internal/domain"
	"github.com/areumfire/wealthsim/internal/tax"
)

// DatedValue pairs an ISO-8601 month (day fixed at 1, per spec.md §6) with
// a numeric value. Used for both per-account balance history and total
// wealth history.
type DatedValue struct {
	DateISO string  `json:"date_iso"`
	Value   float64 `json:"value"`
}

// LineItem is one entry in a cash-flow record's income/expense/growth/tax
// detail lists.
type LineItem struct {
	Name          string  `json:"name"`
	Amount        float64 `json:"amount"`
	Account       string  `json:"account"`
	TxType        string  `json:"tx_type,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
}

// CashFlowRecord is one month's income/expense/growth/tax summary, per
// spec.md §6's wire shape. Net excludes growth, since growth is a
// non-cash marker (spec.md §4.4 rationale).
type CashFlowRecord struct {
	DateISO string  `json:"date_iso"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expenses"`
	Growth  float64 `json:"growth"`
	Taxes   float64 `json:"taxes"`
	Net     float64 `json:"net"`

	IncomeDetails []LineItem `json:"income_details"`
	ExpenseDetails []LineItem `json:"expense_details"`
	GrowthDetails []LineItem `json:"growth_details"`
	TaxDetails    []LineItem `json:"tax_details"`
}

// TaxYearRow mirrors tax.Row in the wire field names spec.md §6 names
// for SimulationResult.taxes.
type TaxYearRow struct {
	Year        int     `json:"year"`
	Net         float64 `json:"net"`
	Wealth      float64 `json:"wealth"`
	IncomeTax   float64 `json:"incomeTax"`
	WealthTax   float64 `json:"wealthTax"`
	BaseTax     float64 `json:"baseTax"`
	PersonalTax float64 `json:"personalTax"`
	TaxTotal    float64 `json:"taxTotal"`
	FederalTax  float64 `json:"federalTax"`
	TotalAll    float64 `json:"totalAll"`
}

func taxRowToWire(r tax.Row) TaxYearRow {
	return TaxYearRow{
		Year: r.Year, Net: r.Net, Wealth: r.Wealth,
		IncomeTax: r.IncomeTax, WealthTax: r.WealthTax, BaseTax: r.BaseTax,
		PersonalTax: r.PersonalTax, TaxTotal: r.TaxTotal, FederalTax: r.FederalTax,
		TotalAll: r.TotalAll,
	}
}

// Result is the full wire shape of a completed simulation run.
type Result struct {
	ScenarioID      string                  `json:"scenario"`
	Accounts        []string                `json:"accounts"`
	AccountBalances map[string][]DatedValue `json:"account_balances"`
	TotalWealth     []DatedValue            `json:"total_wealth"`
	CashFlows       []CashFlowRecord        `json:"cash_flows"`
	Taxes           []TaxYearRow            `json:"taxes"`
}

func buildResult(scenarioID string, scenario *domain.Scenario, p *pass, rows []tax.Row) *Result {
	names := make([]string, 0, scenario.Accounts.Len())
	for _, acc := range scenario.Accounts.All() {
		names = append(names, acc.Name)
	}

	taxRows := make([]TaxYearRow, 0, len(rows))
	for _, r := range rows {
		taxRows = append(taxRows, taxRowToWire(r))
	}

	return &Result{
		ScenarioID:      scenarioID,
		Accounts:        names,
		AccountBalances: p.balances,
		TotalWealth:     p.totalWealth,
		CashFlows:       p.cashFlows,
		Taxes:           taxRows,
	}
}
