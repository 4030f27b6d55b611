// Package repository defines the external collaborator boundary the
// simulation core consumes (spec.md §6): the core performs no I/O of its
// own, and the only channel in or out is this port. Method names mirror
// the original Python repository's get_scenario/list_assets_for_scenario
// family so a host implementation can be written by a straight read of
// a SQL or document store against the same shape.
package repository

import (
	"context"
	"errors"

	"github.com/areumfire/wealthsim/internal/domain"
)

// ErrNotFound is returned by GetScenario when no scenario matches the
// given id. Simulate maps it onto simulation.KindScenarioNotFound.
var ErrNotFound = errors.New("repository: not found")

// Repository is the read-only data access port the core depends on.
// A host application supplies a concrete implementation (SQL, HTTP
// client, in-memory fixture); the core never imports a storage driver
// directly.
type Repository interface {
	// GetScenario loads a scenario's identity, horizon, and tax
	// configuration. It does not populate Accounts or Transactions —
	// those come from the two list methods below, mirroring the
	// original source's separate asset/transaction list calls.
	GetScenario(ctx context.Context, id string) (*domain.Scenario, error)

	// ListAssetsForScenario returns every account attached to id, in
	// the display/insertion order the simulation loop must preserve.
	ListAssetsForScenario(ctx context.Context, id string) ([]*domain.Account, error)

	// ListTransactionsForScenario returns every transaction attached to
	// id, in the order the simulation loop must preserve for standard
	// and mortgage-interest processing alike.
	ListTransactionsForScenario(ctx context.Context, id string) ([]domain.Transaction, error)

	// GetStateTaxRateForCanton returns a flat legacy rate percentage for
	// a canton code, or ErrNotFound if the canton has no such rate on
	// file. Load and the simulation core do not call it; yearly tax is
	// computed from the scenario's tariff tables.
	GetStateTaxRateForCanton(ctx context.Context, code string) (float64, error)

	// GetStateTaxTariff returns the canton-level progressive tariff
	// table for the given id.
	GetStateTaxTariff(ctx context.Context, id string) (domain.TariffTable, error)

	// GetFederalTaxTable returns the federal tariff layer for the given
	// id.
	GetFederalTaxTable(ctx context.Context, id string) (domain.FederalTable, error)
}

// Load assembles a complete *domain.Scenario from the three Repository
// calls spec.md §6 lists as the scenario-construction path: get_scenario
// plus the two list_* calls, wired together with the account arena the
// transactions reference by AccountID.
func Load(ctx context.Context, repo Repository, scenarioID string) (*domain.Scenario, error) {
	scenario, err := repo.GetScenario(ctx, scenarioID)
	if err != nil {
		return nil, err
	}

	assets, err := repo.ListAssetsForScenario(ctx, scenarioID)
	if err != nil {
		return nil, err
	}
	accounts := domain.NewAccounts()
	for _, a := range assets {
		accounts.Add(a)
	}
	scenario.Accounts = accounts

	txs, err := repo.ListTransactionsForScenario(ctx, scenarioID)
	if err != nil {
		return nil, err
	}
	scenario.Transactions = txs

	return scenario, nil
}
