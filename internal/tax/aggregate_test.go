package tax

import (
	"testing"

	"github.com/areumfire/wealthsim/internal/domain"
	"github.com/areumfire/wealthsim/internal/timeaxis"
)

func TestAggregateByYearOneTimeTaxable(t *testing.T) {
	tx := domain.NewOneTime(domain.Meta{Taxable: true}, domain.AccountID(0), 5000, timeaxis.New(2024, 3))

	out := AggregateByYear([]domain.Transaction{tx}, nil, 202401, 202412)
	if out[2024].Income != 5000 {
		t.Fatalf("expected 5000 income credited to 2024, got %+v", out[2024])
	}
}

func TestAggregateByYearIgnoresNonTaxable(t *testing.T) {
	tx := domain.NewOneTime(domain.Meta{Taxable: false}, domain.AccountID(0), 5000, timeaxis.New(2024, 3))
	out := AggregateByYear([]domain.Transaction{tx}, nil, 202401, 202412)
	if len(out) != 0 {
		t.Fatalf("expected no aggregation for non-taxable transaction, got %+v", out)
	}
}

func TestAggregateByYearRegularSpreadsAcrossYears(t *testing.T) {
	tx := domain.NewRegular(domain.Meta{Taxable: true}, domain.Regular{
		BaseAmount:      10000,
		Window:          timeaxis.Open(),
		StartKey:        timeaxis.New(2024, 1),
		FrequencyMonths: 12,
		IndexationRate:  0.10,
	})

	out := AggregateByYear([]domain.Transaction{tx}, nil, 202401, 202612)
	if out[2024].Income != 10000 || out[2025].Income <= 10000 {
		t.Fatalf("expected indexed growth across years, got %+v", out)
	}
	if _, ok := out[2026]; !ok {
		t.Fatalf("expected a third occurrence credited to 2026")
	}
}

func TestAggregateByYearMortgageInterestUsesEmittedExpense(t *testing.T) {
	tx := domain.NewMortgageInterest(domain.Meta{ID: "mtg-1", Taxable: true}, domain.MortgageInterest{
		Window:          timeaxis.Open(),
		StartKey:        timeaxis.New(2024, 1),
		FrequencyMonths: 1,
	})

	mortgageExpense := MortgageExpenseByYear{"mtg-1": {2024: -15000}}
	out := AggregateByYear([]domain.Transaction{tx}, mortgageExpense, 202401, 202412)
	if out[2024].Expense != -15000 {
		t.Fatalf("expected emitted expense credited, got %+v", out[2024])
	}
}

func TestAggregateByYearOutboundOneTimeCreditsExpense(t *testing.T) {
	tx := domain.NewOneTime(domain.Meta{Taxable: true}, domain.AccountID(0), -2000, timeaxis.New(2024, 3))
	out := AggregateByYear([]domain.Transaction{tx}, nil, 202401, 202412)
	if out[2024].Expense != -2000 {
		t.Fatalf("expected -2000 expense credited, got %+v", out[2024])
	}
}
