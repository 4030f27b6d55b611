package simulation

import (
	"fmt"

	"github.com/areumfire/wealthsim/internal/domain"
	"github.com/areumfire/wealthsim/internal/obslog"
	"github.com/areumfire/wealthsim/internal/tax"
	"github.com/areumfire/wealthsim/internal/timeaxis"
	"gonum.org/v1/gonum/floats"
)

// pass is the mutable output of one run through the monthly state
// machine (spec.md §4.4). It is rebuilt from scratch on every fixed-point
// iteration, since converge re-simulates with updated December tax
// charges each round.
type pass struct {
	balances              map[string][]DatedValue
	totalWealth           []DatedValue
	cashFlows             []CashFlowRecord
	decWealthByYear       map[int]float64
	mortgageExpenseByYear tax.MortgageExpenseByYear
}

func newPass(scenario *domain.Scenario) *pass {
	balances := make(map[string][]DatedValue, scenario.Accounts.Len())
	for _, acc := range scenario.Accounts.All() {
		balances[acc.Name] = nil
	}
	return &pass{
		balances:              balances,
		decWealthByYear:       make(map[int]float64),
		mortgageExpenseByYear: make(tax.MortgageExpenseByYear),
	}
}

// standardTransactionsByAccount groups OneTime/Regular transactions by
// their target AccountID, preserving the original scenario order within
// each group — spec.md §4.4 step 3 requires "iterate T[a] in insertion
// order".
func standardTransactionsByAccount(scenario *domain.Scenario) map[domain.AccountID][]domain.Transaction {
	out := make(map[domain.AccountID][]domain.Transaction)
	for _, t := range scenario.Transactions {
		var id domain.AccountID
		switch t.Kind {
		case domain.TxOneTime:
			id = t.OneTime.AccountID
		case domain.TxRegular:
			id = t.Regular.AccountID
		default:
			continue
		}
		out[id] = append(out[id], t)
	}
	return out
}

// mortgageTransactions returns every MortgageInterest transaction in
// scenario order (spec.md §4.4 step 4, "list order").
func mortgageTransactions(scenario *domain.Scenario) []domain.Transaction {
	var out []domain.Transaction
	for _, t := range scenario.Transactions {
		if t.Kind == domain.TxMortgageInterest {
			out = append(out, t)
		}
	}
	return out
}

// resolveTaxTarget returns the configured tax account if it is active at
// key, else the first active account in insertion order (spec.md §4.4
// step 3, "tax_target_account (configured or active fallback)").
func resolveTaxTarget(scenario *domain.Scenario, key timeaxis.Key) (domain.AccountID, bool) {
	accounts := scenario.Accounts
	if int(scenario.Tax.TaxAccountID) < accounts.Len() {
		acc := accounts.Get(scenario.Tax.TaxAccountID)
		if acc.ActiveWindow.Contains(key) {
			return scenario.Tax.TaxAccountID, true
		}
	}
	for i, acc := range accounts.All() {
		if acc.ActiveWindow.Contains(key) {
			return domain.AccountID(i), true
		}
	}
	return 0, false
}

// run executes the monthly state machine over scenario's full horizon,
// injecting taxCharges (year → negative amount) in December of the
// matching year. It returns an *Error with Kind Cancelled if ctx is
// cancelled at a month boundary.
func run(scenario *domain.Scenario, taxCharges map[int]float64, checkCancelled func() error) (*pass, error) {
	scenario.Accounts.Reset()

	byAccount := standardTransactionsByAccount(scenario)
	mortgages := mortgageTransactions(scenario)
	p := newPass(scenario)

	accounts := scenario.Accounts.All()

	for key := scenario.StartKey(); key <= scenario.EndKey(); key = key.Next() {
		if err := checkCancelled(); err != nil {
			return nil, err
		}

		var growthDetails, incomeDetails, expenseDetails, taxDetails []LineItem
		var monthlyGrowth, monthlyIncome, monthlyExpense, monthlyTax float64

		// Step 1+2: active set + compounding.
		activeByID := make(map[domain.AccountID]bool, len(accounts))
		for i, acc := range accounts {
			id := domain.AccountID(i)
			growth := acc.Step(key)
			activeByID[id] = acc.ActiveWindow.Contains(key)
			if growth != 0 {
				growthDetails = append(growthDetails, LineItem{Name: acc.Name, Amount: growth, Account: acc.Name})
				monthlyGrowth += growth
			}
			obslog.Step("account %s step at %s: growth=%v balance=%v", acc.Name, key, growth, acc.Balance())
		}

		// Step 3: standard transactions, per account insertion order.
		for i, acc := range accounts {
			id := domain.AccountID(i)
			if !activeByID[id] {
				continue
			}
			for _, t := range byAccount[id] {
				if !t.Applicable(key) {
					continue
				}
				eff := t.EffectiveAmount(key)
				acc.Apply(eff)

				if !t.Meta.Internal {
					item := LineItem{Name: t.Meta.Name, Amount: eff, Account: acc.Name, TxType: string(t.Kind), TransactionID: t.Meta.ID}
					if eff >= 0 {
						incomeDetails = append(incomeDetails, item)
						monthlyIncome += eff
					} else {
						expenseDetails = append(expenseDetails, item)
						monthlyExpense += eff
					}
				}

				if t.Meta.TaxEffect != nil {
					if targetID, ok := resolveTaxTarget(scenario, key); ok {
						target := scenario.Accounts.Get(targetID)
						target.Apply(*t.Meta.TaxEffect)
						monthlyTax += *t.Meta.TaxEffect
						taxDetails = append(taxDetails, LineItem{Name: t.Meta.Name + " tax effect", Amount: *t.Meta.TaxEffect, Account: target.Name, TransactionID: t.Meta.ID})
					}
				}
			}
		}

		// Step 4: mortgage interest, strictly after step 3.
		for _, t := range mortgages {
			m := t.MortgageInterest
			if !t.Applicable(key) {
				continue
			}
			if !activeByID[m.MortgageAccountID] || !activeByID[m.PayerAccountID] {
				continue
			}
			mortgageBalance := scenario.Accounts.Get(m.MortgageAccountID).Balance()
			amount := t.EffectiveInterest(key, mortgageBalance)
			payer := scenario.Accounts.Get(m.PayerAccountID)
			payer.Apply(amount)
			monthlyExpense += amount
			expenseDetails = append(expenseDetails, LineItem{Name: t.Meta.Name, Amount: amount, Account: payer.Name, TxType: string(domain.TxMortgageInterest), TransactionID: t.Meta.ID})

			if t.Meta.ID != "" {
				byYear := p.mortgageExpenseByYear[t.Meta.ID]
				if byYear == nil {
					byYear = make(map[int]float64)
					p.mortgageExpenseByYear[t.Meta.ID] = byYear
				}
				byYear[key.Year()] += amount
			}

			if t.Meta.Taxable && m.TaxCreditRate != 0 {
				if targetID, ok := resolveTaxTarget(scenario, key); ok {
					target := scenario.Accounts.Get(targetID)
					credit := absf(amount) * m.TaxCreditRate
					target.Apply(credit)
					monthlyTax += credit
					taxDetails = append(taxDetails, LineItem{Name: t.Meta.Name + " tax credit", Amount: credit, Account: target.Name, TransactionID: t.Meta.ID})
				}
			}
		}

		// Step 5: December tax-schedule charge.
		if key.Month() == 12 {
			if amount, ok := taxCharges[key.Year()]; ok {
				if targetID, ok := resolveTaxTarget(scenario, key); ok {
					target := scenario.Accounts.Get(targetID)
					target.Apply(amount)
					monthlyTax += amount
					taxDetails = append(taxDetails, LineItem{Name: "annual tax charge", Amount: amount, Account: target.Name})
				}
			}
		}

		// Step 6: snapshot.
		dateISO := isoDate(key)
		balanceValues := make([]float64, len(accounts))
		for i, acc := range accounts {
			p.balances[acc.Name] = append(p.balances[acc.Name], DatedValue{DateISO: dateISO, Value: acc.Balance()})
			balanceValues[i] = acc.Balance()
		}
		total := floats.Sum(balanceValues)
		p.totalWealth = append(p.totalWealth, DatedValue{DateISO: dateISO, Value: total})
		if key.Month() == 12 {
			p.decWealthByYear[key.Year()] = total
		}

		p.cashFlows = append(p.cashFlows, CashFlowRecord{
			DateISO: dateISO,
			Income:  monthlyIncome,
			Expense: monthlyExpense,
			Growth:  monthlyGrowth,
			Taxes:   monthlyTax,
			Net:     monthlyIncome + monthlyExpense + monthlyTax,

			IncomeDetails:  incomeDetails,
			ExpenseDetails: expenseDetails,
			GrowthDetails:  growthDetails,
			TaxDetails:     taxDetails,
		})

		obslog.Month("month %s: income=%v expense=%v growth=%v tax=%v", key, monthlyIncome, monthlyExpense, monthlyGrowth, monthlyTax)
	}

	return p, nil
}

func absf(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func isoDate(key timeaxis.Key) string {
	return fmt.Sprintf("%04d-%02d-01", key.Year(), key.Month())
}
