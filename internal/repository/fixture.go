package repository

import (
	"context"

	"github.com/areumfire/wealthsim/internal/domain"
)

// Fixture is an in-memory Repository backing tests and the cmd/simulate
// demo harness. It holds exactly one scenario plus its accounts and
// transactions, keyed by scenario id.
type Fixture struct {
	Scenario      *domain.Scenario
	Assets        []*domain.Account
	Transactions  []domain.Transaction
	Tariff        domain.TariffTable
	Federal       domain.FederalTable
	CantonRate    float64
	HasCantonRate bool
}

var _ Repository = (*Fixture)(nil)

func (f *Fixture) GetScenario(ctx context.Context, id string) (*domain.Scenario, error) {
	if f.Scenario == nil || f.Scenario.ID != id {
		return nil, ErrNotFound
	}
	clone := *f.Scenario
	return &clone, nil
}

func (f *Fixture) ListAssetsForScenario(ctx context.Context, id string) ([]*domain.Account, error) {
	if f.Scenario == nil || f.Scenario.ID != id {
		return nil, ErrNotFound
	}
	return f.Assets, nil
}

func (f *Fixture) ListTransactionsForScenario(ctx context.Context, id string) ([]domain.Transaction, error) {
	if f.Scenario == nil || f.Scenario.ID != id {
		return nil, ErrNotFound
	}
	return f.Transactions, nil
}

func (f *Fixture) GetStateTaxRateForCanton(ctx context.Context, code string) (float64, error) {
	if !f.HasCantonRate {
		return 0, ErrNotFound
	}
	return f.CantonRate, nil
}

func (f *Fixture) GetStateTaxTariff(ctx context.Context, id string) (domain.TariffTable, error) {
	return f.Tariff, nil
}

func (f *Fixture) GetFederalTaxTable(ctx context.Context, id string) (domain.FederalTable, error) {
	return f.Federal, nil
}
