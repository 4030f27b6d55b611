package tax

import (
	"math"

	"github.com/areumfire/wealthsim/internal/domain"
)

// Row is one year's progressive tax computation, matching the wire shape
// spec.md §6 names for SimulationResult.taxes.
type Row struct {
	Year        int
	Net         float64
	Wealth      float64
	IncomeTax   float64
	WealthTax   float64
	BaseTax     float64
	PersonalTax float64
	TaxTotal    float64 // cantonal_municipal total
	FederalTax  float64
	TotalAll    float64
}

// ComputeYear applies spec.md §4.6's per-year formula to one year's
// aggregated cash flow and December wealth snapshot.
func ComputeYear(year int, cf YearlyCashFlow, decWealth float64, cfg domain.TaxConfig) Row {
	net := cf.Income + cf.Expense

	var incomeTax, wealthTax float64
	if cfg.UseLegacyBrackets {
		incomeTax = cfg.Brackets.Evaluate(net)
		wealthTax = cfg.Brackets.Evaluate(decWealth)
	} else {
		incomeTax = cfg.IncomeTariff.Evaluate(net)
		wealthTax = cfg.WealthTariff.Evaluate(decWealth)
	}

	base := incomeTax + wealthTax
	personal := cfg.PersonalTax * float64(cfg.HouseholdSize)
	cantonalMunicipal := base*(cfg.MunicipalFactor+cfg.CantonalFactor+cfg.ChurchFactor) + personal

	federal := math.Max(0, cfg.Federal.Evaluate(net)-cfg.Federal.ChildDeduction.AmountPerChild*float64(cfg.NumChildren))

	return Row{
		Year:        year,
		Net:         net,
		Wealth:      decWealth,
		IncomeTax:   incomeTax,
		WealthTax:   wealthTax,
		BaseTax:     base,
		PersonalTax: personal,
		TaxTotal:    cantonalMunicipal,
		FederalTax:  federal,
		TotalAll:    cantonalMunicipal + federal,
	}
}

// ComputeAll computes one Row per year present in either the cash-flow
// aggregation or the December-wealth map, so a year with wealth but no
// taxable transactions (or vice versa) still gets a row.
func ComputeAll(cashFlows map[int]YearlyCashFlow, decWealthByYear map[int]float64, cfg domain.TaxConfig) []Row {
	years := make(map[int]struct{})
	for y := range cashFlows {
		years[y] = struct{}{}
	}
	for y := range decWealthByYear {
		years[y] = struct{}{}
	}

	rows := make([]Row, 0, len(years))
	for y := range years {
		rows = append(rows, ComputeYear(y, cashFlows[y], decWealthByYear[y], cfg))
	}
	sortRowsByYear(rows)
	return rows
}

func sortRowsByYear(rows []Row) {
	for i := 1; i < len(rows); i++ {
		for j := i; j > 0 && rows[j].Year < rows[j-1].Year; j-- {
			rows[j], rows[j-1] = rows[j-1], rows[j]
		}
	}
}
