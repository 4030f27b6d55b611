package simulation

import (
	"context"
	"errors"
	"fmt"

	"github.com/areumfire/wealthsim/internal/domain"
	"github.com/areumfire/wealthsim/internal/obslog"
	"github.com/areumfire/wealthsim/internal/overrides"
	"github.com/areumfire/wealthsim/internal/repository"
	"github.com/google/uuid"
)

// Simulate is the core's single entry point (spec.md §6): it loads a
// scenario through repo, applies ov (if any), runs the monthly state
// machine to tax fixed-point convergence, and serializes the result.
// The core performs no I/O beyond calling repo.
func Simulate(ctx context.Context, scenarioID string, repo repository.Repository, ov overrides.Overrides) (*Result, error) {
	runID := uuid.New().String()
	obslog.Step("simulate run %s: scenario=%s", runID, scenarioID)

	checkCancelled := func() error {
		select {
		case <-ctx.Done():
			return newError(KindCancelled, "context cancelled")
		default:
			return nil
		}
	}

	if err := checkCancelled(); err != nil {
		return nil, err
	}

	original, err := loadScenario(ctx, repo, scenarioID)
	if err != nil {
		return nil, err
	}

	if original.Accounts == nil || original.Accounts.Len() == 0 {
		return nil, newError(KindNoAssets, fmt.Sprintf("scenario %s has no accounts", scenarioID))
	}

	working := overrides.Apply(original, ov)

	p, rows, err := converge(working, original, checkCancelled)
	if err != nil {
		return nil, err
	}

	return buildResult(scenarioID, working, p, rows), nil
}

func loadScenario(ctx context.Context, repo repository.Repository, scenarioID string) (*domain.Scenario, error) {
	scenario, err := repository.Load(ctx, repo, scenarioID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, wrapError(KindScenarioNotFound, fmt.Sprintf("scenario %s", scenarioID), err)
		}
		return nil, wrapError(KindScenarioNotFound, "loading scenario", err)
	}
	return scenario, nil
}
