package domain

import (
	"testing"

	"github.com/areumfire/wealthsim/internal/schedule"
	"github.com/areumfire/wealthsim/internal/timeaxis"
)

func TestOneTimeApplicableOnlyAtKey(t *testing.T) {
	tx := NewOneTime(Meta{Name: "bonus"}, AccountID(0), 5000, timeaxis.New(2024, 6))

	if tx.Applicable(timeaxis.New(2024, 5)) {
		t.Fatalf("should not be applicable before its month")
	}
	if !tx.Applicable(timeaxis.New(2024, 6)) {
		t.Fatalf("should be applicable at its month")
	}
	if tx.Applicable(timeaxis.New(2024, 7)) {
		t.Fatalf("should not be applicable after its month")
	}
	if got := tx.EffectiveAmount(timeaxis.New(2024, 6)); got != 5000 {
		t.Fatalf("expected amount 5000, got %v", got)
	}
}

func TestRegularFrequencyAndWindow(t *testing.T) {
	start := timeaxis.New(2024, 1)
	tx := NewRegular(Meta{Name: "salary"}, Regular{
		AccountID:       AccountID(0),
		BaseAmount:      1000,
		Window:          timeaxis.From(start),
		StartKey:        start,
		FrequencyMonths: 3,
	})

	if !tx.Applicable(timeaxis.New(2024, 1)) {
		t.Fatalf("expected applicable at start key")
	}
	if tx.Applicable(timeaxis.New(2024, 2)) {
		t.Fatalf("expected not applicable one month later (quarterly frequency)")
	}
	if !tx.Applicable(timeaxis.New(2024, 4)) {
		t.Fatalf("expected applicable 3 months later")
	}
	if tx.Applicable(timeaxis.New(2023, 12)) {
		t.Fatalf("expected not applicable before the window starts")
	}
}

func TestRegularIndexationCompoundsPerOccurrence(t *testing.T) {
	start := timeaxis.New(2024, 1)
	tx := NewRegular(Meta{Name: "rent"}, Regular{
		AccountID:       AccountID(0),
		BaseAmount:      1000,
		Window:          timeaxis.Open(),
		StartKey:        start,
		FrequencyMonths: 12,
		IndexationRate:  0.10,
	})

	first := tx.EffectiveAmount(timeaxis.New(2024, 1))
	second := tx.EffectiveAmount(timeaxis.New(2025, 1))
	if first != 1000 {
		t.Fatalf("expected first occurrence at base amount, got %v", first)
	}
	if second <= first {
		t.Fatalf("expected second occurrence indexed above first, got %v vs %v", second, first)
	}
}

func TestRegularZeroFrequencyClampsToOne(t *testing.T) {
	tx := NewRegular(Meta{}, Regular{FrequencyMonths: 0, Window: timeaxis.Open()})
	if tx.Regular.FrequencyMonths != 1 {
		t.Fatalf("expected clamp to 1, got %d", tx.Regular.FrequencyMonths)
	}
}

func TestRegularInflationScheduleAppliesOncePerOccurrence(t *testing.T) {
	start := timeaxis.New(2024, 1)
	var infl schedule.Schedule[float64]
	infl.Append(timeaxis.From(timeaxis.New(2024, 1)), 0.02)

	tx := NewRegular(Meta{}, Regular{
		BaseAmount:        1000,
		Window:            timeaxis.Open(),
		StartKey:          start,
		FrequencyMonths:   1,
		InflationSchedule: infl,
	})

	got := tx.EffectiveAmount(timeaxis.New(2024, 3))
	want := 1000 * 1.02
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMortgageInterestUsesLiveBalance(t *testing.T) {
	start := timeaxis.New(2024, 1)
	tx := NewMortgageInterest(Meta{Name: "mortgage interest"}, MortgageInterest{
		MortgageAccountID: AccountID(0),
		PayerAccountID:    AccountID(1),
		AnnualRate:        0.06,
		FrequencyMonths:   1,
		Window:            timeaxis.Open(),
		StartKey:          start,
	})

	got := tx.EffectiveInterest(timeaxis.New(2024, 1), -200000)
	want := -200000 * (0.06 / 12.0)
	if diff := got - want; diff > 1e-6 || diff < -1e-6 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestMortgageInterestRateScheduleOverridesAnnualRate(t *testing.T) {
	start := timeaxis.New(2024, 1)
	var rates schedule.Schedule[float64]
	rates.Append(timeaxis.From(timeaxis.New(2024, 6)), 0.09)

	tx := NewMortgageInterest(Meta{}, MortgageInterest{
		AnnualRate:      0.06,
		RateSchedule:    rates,
		FrequencyMonths: 1,
		Window:          timeaxis.Open(),
		StartKey:        start,
	})

	before := tx.EffectiveInterest(timeaxis.New(2024, 3), -100000)
	after := tx.EffectiveInterest(timeaxis.New(2024, 6), -100000)
	if before >= 0 || after >= 0 {
		t.Fatalf("interest must post negative, got before=%v after=%v", before, after)
	}
	if after >= before {
		t.Fatalf("expected higher scheduled rate to produce larger-magnitude interest, got before=%v after=%v", before, after)
	}
}
