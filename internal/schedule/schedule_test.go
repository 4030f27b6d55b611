package schedule

import (
	"testing"

	"github.com/areumfire/wealthsim/internal/timeaxis"
)

func TestLookupFirstMatchWins(t *testing.T) {
	var s Schedule[float64]
	s.Append(timeaxis.From(timeaxis.New(2024, 1)), 0.05)
	s.Append(timeaxis.Closed(timeaxis.New(2024, 7), timeaxis.New(2024, 12)), 0.09)

	got, ok := s.Lookup(timeaxis.New(2024, 8), 0)
	if !ok || got != 0.05 {
		t.Fatalf("expected first matching entry (0.05) to win, got %v ok=%v", got, ok)
	}
}

func TestLookupDefaultWhenNoMatch(t *testing.T) {
	var s Schedule[float64]
	s.Append(timeaxis.Closed(timeaxis.New(2024, 1), timeaxis.New(2024, 6)), 0.1)

	got, ok := s.Lookup(timeaxis.New(2025, 1), -1)
	if ok || got != -1 {
		t.Fatalf("expected no match and default returned, got %v ok=%v", got, ok)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	var s Schedule[float64]
	s.Append(timeaxis.Open(), 0.03)

	clone := s.Clone()
	clone.Append(timeaxis.Open(), 0.10)

	if s.Len() != 1 {
		t.Fatalf("expected original schedule untouched, len=%d", s.Len())
	}
	if clone.Len() != 2 {
		t.Fatalf("expected clone to have the appended entry, len=%d", clone.Len())
	}
}
