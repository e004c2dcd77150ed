package static

import (
	"fmt"
	"sort"
	"strings"

	"github.com/taxweave/taxweave/internal/domain"
)

// rateRepository implements domain.RateRepository backed by the embedded
// state rate table. Data is copied once at construction and read-only
// thereafter, so a single instance can be shared freely.
type rateRepository struct {
	states map[string]*domain.JurisdictionRate
	codes  []string // sorted state codes
}

// NewRateRepository creates a rate repository from the embedded 2024
// state rate table
func NewRateRepository() domain.RateRepository {
	states := make(map[string]*domain.JurisdictionRate, len(stateData))
	codes := make([]string, 0, len(stateData))

	for i := range stateData {
		state := stateData[i]

		// Copy local rates so the package-level table stays pristine
		locals := make([]domain.LocalRate, len(state.LocalRates))
		copy(locals, state.LocalRates)
		for j := range locals {
			if locals[j].JurisdictionType == "" {
				locals[j].JurisdictionType = "city"
			}
		}
		state.LocalRates = locals

		states[state.StateCode] = &state
		codes = append(codes, state.StateCode)
	}
	sort.Strings(codes)

	return &rateRepository{states: states, codes: codes}
}

// Jurisdiction retrieves the full rate profile for a state code
func (r *rateRepository) Jurisdiction(code string) (*domain.JurisdictionRate, bool) {
	state, ok := r.states[strings.ToUpper(strings.TrimSpace(code))]
	return state, ok
}

// BaseRate returns the state-level sales tax rate as a fraction
func (r *rateRepository) BaseRate(code string) (float64, error) {
	state, ok := r.Jurisdiction(code)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownJurisdiction, code)
	}
	return state.BaseRate, nil
}

// CombinedRate returns the state plus local rate as a fraction.
// A recorded city rate wins; otherwise the state average combined rate.
func (r *rateRepository) CombinedRate(code, city string) (float64, error) {
	state, ok := r.Jurisdiction(code)
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownJurisdiction, code)
	}

	if city != "" {
		if local := state.FindLocalRate(city); local != nil {
			return state.BaseRate + local.Rate, nil
		}
	}
	return state.AvgCombinedRate, nil
}

// LocalRate looks up a specific local jurisdiction rate by city name
func (r *rateRepository) LocalRate(code, city string) (*domain.LocalRate, bool) {
	state, ok := r.Jurisdiction(code)
	if !ok {
		return nil, false
	}

	local := state.FindLocalRate(city)
	if local == nil {
		return nil, false
	}
	return local, true
}

// IsExempt reports whether a category is exempt from sales tax in a state
func (r *rateRepository) IsExempt(code string, category domain.ExemptionCategory) (bool, error) {
	state, ok := r.Jurisdiction(code)
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrUnknownJurisdiction, code)
	}
	return state.Exempts(category), nil
}

// NoTaxJurisdictions returns the codes of states with no state-level
// sales tax, sorted by code
func (r *rateRepository) NoTaxJurisdictions() []string {
	result := make([]string, 0, 4)
	for _, code := range r.codes {
		if r.states[code].BaseRate == 0 {
			result = append(result, code)
		}
	}
	return result
}

// StatesExempting returns the codes of states that exempt a category,
// sorted by code
func (r *rateRepository) StatesExempting(category domain.ExemptionCategory) []string {
	result := make([]string, 0)
	for _, code := range r.codes {
		if r.states[code].Exempts(category) {
			result = append(result, code)
		}
	}
	return result
}

// AllJurisdictions returns every rate profile sorted by state code
func (r *rateRepository) AllJurisdictions() []*domain.JurisdictionRate {
	result := make([]*domain.JurisdictionRate, 0, len(r.codes))
	for _, code := range r.codes {
		result = append(result, r.states[code])
	}
	return result
}

// HighestRates returns the n jurisdictions with the highest average
// combined rate, descending
func (r *rateRepository) HighestRates(n int) []*domain.JurisdictionRate {
	all := r.AllJurisdictions()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].AvgCombinedRate > all[j].AvgCombinedRate
	})
	if n < len(all) {
		all = all[:n]
	}
	return all
}

// LowestNonzeroRates returns the n taxing jurisdictions with the lowest
// average combined rate, ascending. No-tax states are excluded.
func (r *rateRepository) LowestNonzeroRates(n int) []*domain.JurisdictionRate {
	taxed := make([]*domain.JurisdictionRate, 0, len(r.codes))
	for _, code := range r.codes {
		if r.states[code].BaseRate > 0 {
			taxed = append(taxed, r.states[code])
		}
	}
	sort.SliceStable(taxed, func(i, j int) bool {
		return taxed[i].AvgCombinedRate < taxed[j].AvgCombinedRate
	})
	if n < len(taxed) {
		taxed = taxed[:n]
	}
	return taxed
}

// Count returns the number of jurisdictions loaded
func (r *rateRepository) Count() int {
	return len(r.states)
}
