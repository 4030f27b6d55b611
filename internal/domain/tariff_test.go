package domain

import "testing"

func TestTariffTableBoundaryFormula(t *testing.T) {
	table := NewTariffTable("ZH", []TariffRow{
		{From: 0, Base: 0, PerHundred: 2},
		{From: 50000, Base: 1000, PerHundred: 5},
		{From: 100000, Base: 3500, PerHundred: 8},
	})

	got := table.Evaluate(75000)
	want := 1000 + (75000-50000)*5.0/100
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTariffTableZeroIncome(t *testing.T) {
	table := NewTariffTable("ZH", []TariffRow{{From: 0, Base: 0, PerHundred: 2}})
	if got := table.Evaluate(0); got != 0 {
		t.Fatalf("expected zero tax on zero income, got %v", got)
	}
}

func TestFederalTableClampsLastRowAt11_5(t *testing.T) {
	unclamped := NewTariffTable("ZH", []TariffRow{{From: 0, Base: 0, PerHundred: 40}})
	federal := NewFederalTable([]TariffRow{{From: 0, Base: 0, PerHundred: 40}}, FederalChildDeduction{})

	if federal.Evaluate(100000) >= unclamped.Evaluate(100000) {
		t.Fatalf("expected federal ceiling to reduce tax vs an unclamped table with the same rate")
	}
	want := 0 + 100000*11.5/100
	if got := federal.Evaluate(100000); got != want {
		t.Fatalf("expected %v (40%% clamped to 11.5%%), got %v", want, got)
	}
}

func TestTariffTableRowsAreNeverMutatedByEvaluate(t *testing.T) {
	federal := NewFederalTable([]TariffRow{{From: 0, Base: 0, PerHundred: 40}}, FederalChildDeduction{})
	federal.Evaluate(100000)
	if federal.Rows[0].PerHundred != 40 {
		t.Fatalf("expected stored row untouched by evaluation-time clamp, got %v", federal.Rows[0].PerHundred)
	}
}

func TestFederalTableChildDeductionAppliesToResult(t *testing.T) {
	table := NewFederalTable([]TariffRow{
		{From: 0, Base: 0, PerHundred: 10},
	}, FederalChildDeduction{AmountPerChild: 6500})

	result := table.Evaluate(100000)
	federalWithChildren := result - float64(2)*table.ChildDeduction.AmountPerChild
	federalWithoutChildren := result
	if federalWithChildren >= federalWithoutChildren {
		t.Fatalf("expected child deduction to reduce tax: with=%v without=%v", federalWithChildren, federalWithoutChildren)
	}
}

func TestBracketTableFlatRatesSumAcrossBrackets(t *testing.T) {
	table := BracketTable{Rows: []BracketRow{
		{From: 0, To: 10000, Rate: 0.0},
		{From: 10000, To: 50000, Rate: 0.10},
		{From: 50000, To: 0, Rate: 0.20},
	}}

	got := table.Evaluate(60000)
	want := (50000-10000)*0.10 + (60000-50000)*0.20
	if got != want {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
