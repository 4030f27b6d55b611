// Command simulate is a minimal, non-networked demonstration harness: it
// wires a literal scenario into an in-memory repository.Fixture, runs it
// through simulation.Simulate, and prints the resulting wire JSON. It
// plays the part the teacher's cmd/server/main.go plays for the MCP
// server — a thin composition root — without opening a listener, since
// transport and persistence are explicitly out of scope here (spec.md §6
// Non-goals).
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/areumfire/wealthsim/internal/domain"
	"github.com/areumfire/wealthsim/internal/overrides"
	"github.com/areumfire/wealthsim/internal/repository"
	"github.com/areumfire/wealthsim/internal/simulation"
	"github.com/areumfire/wealthsim/internal/tax"
	"github.com/areumfire/wealthsim/internal/timeaxis"
)

func main() {
	fixture, scenarioID := demoFixture()

	result, err := simulation.Simulate(context.Background(), scenarioID, fixture, overrides.Overrides{})
	if err != nil {
		log.Fatalf("simulate: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("encode result: %v", err)
	}
	fmt.Fprintln(os.Stderr, "ran", scenarioID, "to", len(result.Taxes), "tax years")
}

// demoFixture builds a small literal household: a bank account earning a
// flat rate, a portfolio compounding monthly, and a monthly salary
// deposit. It exercises the embedded ZH tariff/federal tables loaded by
// internal/tax.
func demoFixture() (*repository.Fixture, string) {
	const scenarioID = "demo"

	accounts := domain.NewAccounts()
	bank := accounts.Add(&domain.Account{
		Name:             "checking",
		Kind:             domain.KindBankAccount,
		InitialBalance:   20000,
		AnnualGrowthRate: 0.005,
	})
	accounts.Add(&domain.Account{
		Name:             "brokerage",
		Kind:             domain.KindPortfolio,
		InitialBalance:   150000,
		AnnualGrowthRate: 0.06,
	})

	salary := domain.NewRegular(domain.Meta{
		ID: "salary", Name: "Salary", Taxable: true,
	}, domain.Regular{
		AccountID:       bank,
		BaseAmount:      9000,
		StartKey:        timeaxis.New(2025, 1),
		FrequencyMonths: 1,
	})

	federal, err := tax.LoadEmbeddedFederalTable()
	if err != nil {
		log.Fatalf("load federal table: %v", err)
	}
	zh, err := tax.LoadEmbeddedTariffTable("ZH")
	if err != nil {
		log.Fatalf("load ZH tariff table: %v", err)
	}
	zhWealth, err := tax.LoadEmbeddedWealthTariffTable("ZH")
	if err != nil {
		log.Fatalf("load ZH wealth tariff table: %v", err)
	}

	scenario := &domain.Scenario{
		ID:           scenarioID,
		Name:         "Demo household",
		Accounts:     accounts,
		Transactions: []domain.Transaction{salary},
		Tax: domain.TaxConfig{
			IncomeTariff:    zh,
			WealthTariff:    zhWealth,
			Federal:         federal,
			MunicipalFactor: 1.19,
			CantonalFactor:  1.0,
			PersonalTax:     24,
			HouseholdSize:   2,
			NumChildren:     1,
			TaxAccountID:    bank,
		},
		HorizonYears: 3,
		StartYear:    2025,
		StartMonth:   1,
	}

	fixture := &repository.Fixture{
		Scenario:     scenario,
		Assets:       accounts.All(),
		Transactions: scenario.Transactions,
		Tariff:       zh,
		Federal:      federal,
	}
	return fixture, scenarioID
}
