// Package domain holds the scenario/account/transaction data model: the
// entities a simulation run is built from. Lifecycle: loaded once per
// run, deep-copied before override application, and the runtime balance
// state that the simulation loop mutates belongs solely to the Account value
// — nothing here is process-wide shared state.
package domain

import (
	"math"

	"github.com/areumfire/wealthsim/internal/schedule"
	"github.com/areumfire/wealthsim/internal/timeaxis"
)

// Kind classifies an account for stress-override targeting (§4.5:
// portfolio and real-estate shocks only touch accounts of the matching
// kind) and for the mortgage-interest invariant that the mortgage side of
// the pair must be Kind Mortgage.
type Kind string

const (
	KindGeneric     Kind = "generic"
	KindBankAccount Kind = "bank_account"
	KindRealEstate  Kind = "real_estate"
	KindMortgage    Kind = "mortgage"
	KindPortfolio   Kind = "portfolio"
)

// NormalizeKind maps an unrecognized or empty kind to Generic, per
// spec.md §7 ("unknown asset kinds are treated as Generic").
func NormalizeKind(k Kind) Kind {
	switch k {
	case KindBankAccount, KindRealEstate, KindMortgage, KindPortfolio:
		return k
	default:
		return KindGeneric
	}
}

// AccountID is a stable handle into an Accounts arena. Transactions hold
// AccountIDs rather than *Account pointers so a deep copy for override
// application is just "copy the slice, indices still line up" instead of
// pointer-chasing and remapping cyclic references (a MortgageInterest
// transaction refers to two accounts at once, which is what motivates
// this handle indirection — see spec.md §9, "Cyclic references").
type AccountID int

// Account is a single asset or liability that compounds monthly and
// accumulates transaction deltas. Balance is runtime state, reset to
// InitialBalance at the start of every simulation run.
type Account struct {
	Name             string
	Kind             Kind
	InitialBalance   float64
	AnnualGrowthRate float64
	ActiveWindow     timeaxis.Window
	GrowthSchedule   schedule.Schedule[float64]

	balance   float64
	activated bool // true once the first active month has restored InitialBalance
}

// Reset restores runtime state to the start-of-run condition: balance
// set to InitialBalance, activation tracking cleared. Called once before
// a simulation pass, and again before each tax fixed-point re-run.
func (a *Account) Reset() {
	a.balance = a.InitialBalance
	a.activated = false
}

// Balance returns the current runtime balance.
func (a *Account) Balance() float64 { return a.balance }

// Apply adds delta to the runtime balance (a transaction posting).
func (a *Account) Apply(delta float64) { a.balance += delta }

// monthlyRate converts an annual rate to the equivalent monthly
// compounding rate: (1+r)^(1/12) - 1.
func monthlyRate(annual float64) float64 {
	return math.Pow(1+annual, 1.0/12.0) - 1
}

// Step advances the account by one month at key: it resolves activation
// (zeroing the balance outside the active window, restoring
// InitialBalance on the first month the account becomes active) and then
// compounds growth exactly once. It returns the growth amount applied
// this month (zero when inactive), matching spec.md §4.4 step 2's
// growth-detail bookkeeping.
func (a *Account) Step(key timeaxis.Key) (growth float64) {
	if !a.ActiveWindow.Contains(key) {
		a.balance = 0
		a.activated = false
		return 0
	}
	if !a.activated {
		a.balance = a.InitialBalance
		a.activated = true
	}

	rate, _ := a.GrowthSchedule.Lookup(key, a.AnnualGrowthRate)
	before := a.balance
	a.balance += a.balance * monthlyRate(rate)
	return a.balance - before
}

// Clone returns a deep-enough copy for override application: the growth
// schedule gets its own backing slice so appended override entries never
// leak back into the original account.
func (a *Account) Clone() *Account {
	clone := *a
	clone.GrowthSchedule = *a.GrowthSchedule.Clone()
	return &clone
}
