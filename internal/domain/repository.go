package domain

import "errors"

// ErrUnknownJurisdiction is returned by strict rate lookups when the
// given state code is not in the rate table. The general Jurisdiction
// lookup does not return it, so callers that must not abort on a bad
// code can degrade gracefully.
var ErrUnknownJurisdiction = errors.New("unknown jurisdiction code")

// RateRepository defines the interface for jurisdiction rate lookups.
// Implementations load their data once at construction and are read-only
// thereafter.
type RateRepository interface {
	// Jurisdiction retrieves the full rate profile for a state code.
	// Lookup is case-insensitive. The second return value reports
	// whether the code was found.
	Jurisdiction(code string) (*JurisdictionRate, bool)

	// BaseRate returns the state-level sales tax rate as a fraction.
	// Returns ErrUnknownJurisdiction for unrecognized codes.
	BaseRate(code string) (float64, error)

	// CombinedRate returns the state plus local rate as a fraction.
	// If a city is given and has a recorded local rate, that rate is
	// used; otherwise the state average combined rate applies.
	// Returns ErrUnknownJurisdiction for unrecognized codes.
	CombinedRate(code, city string) (float64, error)

	// LocalRate looks up a specific local jurisdiction rate by city
	// name (case-insensitive exact match). The second return value
	// reports whether a rate was found.
	LocalRate(code, city string) (*LocalRate, bool)

	// IsExempt reports whether a category is exempt from sales tax in
	// a state. Returns ErrUnknownJurisdiction for unrecognized codes.
	IsExempt(code string, category ExemptionCategory) (bool, error)

	// NoTaxJurisdictions returns the codes of states with no
	// state-level sales tax, sorted by code.
	NoTaxJurisdictions() []string

	// StatesExempting returns the codes of states that exempt the
	// given category, sorted by code.
	StatesExempting(category ExemptionCategory) []string

	// AllJurisdictions returns every rate profile sorted by state code.
	AllJurisdictions() []*JurisdictionRate

	// HighestRates returns the n jurisdictions with the highest
	// average combined rate, descending.
	HighestRates(n int) []*JurisdictionRate

	// LowestNonzeroRates returns the n jurisdictions with the lowest
	// average combined rate among states that levy a sales tax,
	// ascending.
	LowestNonzeroRates(n int) []*JurisdictionRate

	// Count returns the number of jurisdictions loaded.
	Count() int
}
