package domain

import (
	"math"

	"github.com/areumfire/wealthsim/internal/schedule"
	"github.com/areumfire/wealthsim/internal/timeaxis"
)

// Kind of transaction. The simulation loop dispatches on this tag rather
// than through virtual dispatch (spec.md §9): each variant carries shared
// Meta plus a per-variant payload pointer, and exactly one payload is
// non-nil for a given Kind.
type TxKind string

const (
	TxOneTime          TxKind = "one_time"
	TxRegular          TxKind = "regular"
	TxMortgageInterest TxKind = "mortgage_interest"
)

// Meta holds the fields every transaction variant shares.
type Meta struct {
	ID       string // stable identifier used for tax-year attribution of MortgageInterest (§4.6)
	Name     string
	Internal bool // double-entry bookkeeping leg: excluded from income/expense cash-flow lines
	Taxable  bool

	// TaxableAmount, when set, is the economic figure tax aggregation
	// should use instead of the nominal amount (spec.md §3 invariant iv).
	TaxableAmount *float64

	// LinkID ties together the two legs of a double-entry transfer pair.
	// Both legs share one LinkID, mirror window/frequency, and carry
	// equal magnitude with opposite sign.
	LinkID string

	// TaxEffect, when set, is a pre-computed flat-rate tax credit/debit
	// posted to the tax target account every time this transaction
	// fires (spec.md §4.4 step 3) — distinct from Taxable, which only
	// controls yearly taxable-income aggregation.
	TaxEffect *float64
}

// EffectiveTaxableAmount returns TaxableAmount when present, else |amount|.
func (m Meta) EffectiveTaxableAmount(amount float64) float64 {
	if m.TaxableAmount != nil {
		return *m.TaxableAmount
	}
	return math.Abs(amount)
}

// OneTime fires exactly once, at At.
type OneTime struct {
	AccountID AccountID
	Amount    float64
	At        timeaxis.Key
}

// Regular repeats every FrequencyMonths months within Window, with
// optional indexation (compounded per occurrence, not per month) and an
// optional inflation-schedule factor (applied once per occurrence,
// per spec.md §9's Open Question resolution — not compounded across
// months).
type Regular struct {
	AccountID       AccountID
	BaseAmount      float64
	Window          timeaxis.Window
	StartKey        timeaxis.Key // anchor for period counting; normally Window.Start
	FrequencyMonths int
	IndexationRate  float64 // annual
	InflationSchedule schedule.Schedule[float64]
}

// MortgageInterest is computed from the live balance of a Mortgage
// account rather than from a fixed amount — it must be evaluated after
// all other transactions that could move that balance within the month
// (spec.md §4.4 step 4).
type MortgageInterest struct {
	MortgageAccountID AccountID
	PayerAccountID    AccountID
	AnnualRate        float64
	RateSchedule      schedule.Schedule[float64]
	FrequencyMonths   int
	Window            timeaxis.Window
	StartKey          timeaxis.Key

	// TaxCreditRate is the flat rate applied to |interest| to produce a
	// tax credit/debit on the tax target account when Meta.Taxable is
	// set (spec.md §4.4 step 4). Zero disables the credit even if
	// Taxable is true.
	TaxCreditRate float64
}

// Transaction is a tagged variant over the three transaction kinds.
type Transaction struct {
	Kind TxKind
	Meta Meta

	OneTime          *OneTime
	Regular          *Regular
	MortgageInterest *MortgageInterest
}

// Clone returns a deep-enough copy for override application: the
// variant payload gets its own pointer and the payload's schedule (for
// Regular/MortgageInterest) gets its own backing slice, so appended
// override entries never leak back into the original transaction.
func (t Transaction) Clone() Transaction {
	clone := t
	switch t.Kind {
	case TxOneTime:
		ot := *t.OneTime
		clone.OneTime = &ot
	case TxRegular:
		r := *t.Regular
		r.InflationSchedule = *t.Regular.InflationSchedule.Clone()
		clone.Regular = &r
	case TxMortgageInterest:
		m := *t.MortgageInterest
		m.RateSchedule = *t.MortgageInterest.RateSchedule.Clone()
		clone.MortgageInterest = &m
	}
	return clone
}

// NewOneTime builds a one-time transaction.
func NewOneTime(meta Meta, accountID AccountID, amount float64, at timeaxis.Key) Transaction {
	return Transaction{Kind: TxOneTime, Meta: meta, OneTime: &OneTime{AccountID: accountID, Amount: amount, At: at}}
}

// NewRegular builds a regular transaction, clamping a non-positive
// frequency up to 1 per spec.md §7 ("frequency <= 0 is clamped to 1
// silently").
func NewRegular(meta Meta, p Regular) Transaction {
	if p.FrequencyMonths <= 0 {
		p.FrequencyMonths = 1
	}
	return Transaction{Kind: TxRegular, Meta: meta, Regular: &p}
}

// NewMortgageInterest builds a mortgage-interest transaction, with the
// same frequency clamp as Regular.
func NewMortgageInterest(meta Meta, p MortgageInterest) Transaction {
	if p.FrequencyMonths <= 0 {
		p.FrequencyMonths = 1
	}
	return Transaction{Kind: TxMortgageInterest, Meta: meta, MortgageInterest: &p}
}

// Applicable reports whether the transaction fires at key. For
// MortgageInterest this only checks window/frequency — the simulation
// loop additionally requires both linked accounts to be active, since
// that check needs account state this package doesn't carry.
func (t Transaction) Applicable(key timeaxis.Key) bool {
	switch t.Kind {
	case TxOneTime:
		return key == t.OneTime.At
	case TxRegular:
		return t.Regular.Window.Contains(key) &&
			modFrequency(key.MonthsSince(t.Regular.StartKey), t.Regular.FrequencyMonths) == 0
	case TxMortgageInterest:
		return t.MortgageInterest.Window.Contains(key) &&
			modFrequency(key.MonthsSince(t.MortgageInterest.StartKey), t.MortgageInterest.FrequencyMonths) == 0
	default:
		return false
	}
}

func modFrequency(monthsSince, frequency int) int {
	if monthsSince < 0 || frequency <= 0 {
		return -1 // never matches; a negative window is treated as empty (§7)
	}
	return monthsSince % frequency
}

// monthlyIndexationRate converts an annual rate to the equivalent monthly rate.
func monthlyIndexationRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/12.0) - 1
}

// EffectiveAmount returns the signed amount to post for a OneTime or
// Regular transaction at key. Callers must have already checked
// Applicable. MortgageInterest uses EffectiveInterest instead, since it
// needs the live mortgage balance.
func (t Transaction) EffectiveAmount(key timeaxis.Key) float64 {
	switch t.Kind {
	case TxOneTime:
		return t.OneTime.Amount
	case TxRegular:
		r := t.Regular
		periodsElapsed := key.MonthsSince(r.StartKey) / r.FrequencyMonths
		amount := r.BaseAmount * math.Pow(1+monthlyIndexationRate(r.IndexationRate), float64(periodsElapsed))
		if pct, ok := r.InflationSchedule.Lookup(key, 0); ok {
			amount *= 1 + pct
		}
		return amount
	default:
		return 0
	}
}

// EffectiveInterest returns the signed (negative) interest amount for a
// MortgageInterest transaction at key, given the mortgage account's live
// balance. rate*frequency/12 is the periodic rate spec.md §4.3 defines;
// the amount posts negative on the payer account.
func (t Transaction) EffectiveInterest(key timeaxis.Key, mortgageBalance float64) float64 {
	m := t.MortgageInterest
	rate, _ := m.RateSchedule.Lookup(key, m.AnnualRate)
	periodic := rate * float64(m.FrequencyMonths) / 12.0
	return -math.Abs(mortgageBalance) * periodic
}
