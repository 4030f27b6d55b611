package tax

import (
	"embed"
	"encoding/json"
	"fmt"

	"github.com/areumfire/wealthsim/internal/domain"
)

// Embedded seed tariff data, following the teacher's pattern of compiling
// financial config into the binary rather than loading it at runtime
// (spec.md §7, SPEC_FULL.md §A.3).
//
//go:embed config/*.json
var embeddedConfigs embed.FS

type tariffRowJSON struct {
	From       float64 `json:"from"`
	Base       float64 `json:"base"`
	PerHundred float64 `json:"per_100_amount"`
}

type federalConfigJSON struct {
	Rows                   []tariffRowJSON `json:"rows"`
	ChildDeductionPerChild float64         `json:"child_deduction_per_child"`
}

func readEmbeddedJSON(name string, v interface{}) error {
	data, err := embeddedConfigs.ReadFile("config/" + name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return nil
}

func toDomainRows(rows []tariffRowJSON) []domain.TariffRow {
	out := make([]domain.TariffRow, len(rows))
	for i, r := range rows {
		out[i] = domain.TariffRow{From: r.From, Base: r.Base, PerHundred: r.PerHundred}
	}
	return out
}

// ValidateTariffRows enforces spec.md §7's load-time data-quality defense:
// a per_100_amount above 20 is corrupt input, clamped down to the federal
// ceiling; a negative rate is clamped to 0. This runs once at load time
// and is distinct from the evaluation-time last-row ceiling domain.FederalTable
// already applies on every Evaluate call.
func ValidateTariffRows(rows []domain.TariffRow) []domain.TariffRow {
	cleaned := make([]domain.TariffRow, len(rows))
	for i, r := range rows {
		switch {
		case r.PerHundred > 20:
			r.PerHundred = domain.FederalCeiling
		case r.PerHundred < 0:
			r.PerHundred = 0
		}
		cleaned[i] = r
	}
	return cleaned
}

// LoadEmbeddedFederalTable loads the federal tariff table and per-child
// deduction from the embedded config/federal.json fixture.
func LoadEmbeddedFederalTable() (domain.FederalTable, error) {
	var cfg federalConfigJSON
	if err := readEmbeddedJSON("federal.json", &cfg); err != nil {
		return domain.FederalTable{}, err
	}
	rows := ValidateTariffRows(toDomainRows(cfg.Rows))
	return domain.NewFederalTable(rows, domain.FederalChildDeduction{AmountPerChild: cfg.ChildDeductionPerChild}), nil
}

// LoadEmbeddedTariffTable loads the income tariff table for canton from
// the embedded config/tariffs.json fixture.
func LoadEmbeddedTariffTable(canton string) (domain.TariffTable, error) {
	return loadCantonTable("tariffs.json", canton)
}

// LoadEmbeddedWealthTariffTable loads the wealth tariff table for canton
// from the embedded config/wealth_tariffs.json fixture.
func LoadEmbeddedWealthTariffTable(canton string) (domain.TariffTable, error) {
	return loadCantonTable("wealth_tariffs.json", canton)
}

func loadCantonTable(file, canton string) (domain.TariffTable, error) {
	var byCanton map[string][]tariffRowJSON
	if err := readEmbeddedJSON(file, &byCanton); err != nil {
		return domain.TariffTable{}, err
	}
	rows, ok := byCanton[canton]
	if !ok {
		return domain.TariffTable{}, fmt.Errorf("%s: no tariff rows for canton %q", file, canton)
	}
	return domain.NewTariffTable(canton, ValidateTariffRows(toDomainRows(rows))), nil
}

// MustLoadEmbeddedFederalTable loads the embedded federal table, falling
// back to domain.DefaultFederalTariffTable if the fixture cannot be read.
// Used by callers that would rather degrade than fail a simulation over
// a missing config asset.
func MustLoadEmbeddedFederalTable() domain.FederalTable {
	table, err := LoadEmbeddedFederalTable()
	if err != nil {
		return domain.DefaultFederalTariffTable()
	}
	return table
}

// MustLoadEmbeddedTariffTable loads the embedded income tariff table for
// canton, falling back to domain.DefaultTariffTable on error.
func MustLoadEmbeddedTariffTable(canton string) domain.TariffTable {
	table, err := LoadEmbeddedTariffTable(canton)
	if err != nil {
		return domain.DefaultTariffTable(canton)
	}
	return table
}

// MustLoadEmbeddedWealthTariffTable loads the embedded wealth tariff table
// for canton, falling back to domain.DefaultTariffTable on error.
func MustLoadEmbeddedWealthTariffTable(canton string) domain.TariffTable {
	table, err := LoadEmbeddedWealthTariffTable(canton)
	if err != nil {
		return domain.DefaultTariffTable(canton)
	}
	return table
}
