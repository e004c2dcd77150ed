package static

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taxweave/taxweave/internal/domain"
)

func TestNewRateRepository_LoadsAllJurisdictions(t *testing.T) {
	repo := NewRateRepository()

	// 50 states plus DC
	assert.Equal(t, 51, repo.Count())

	all := repo.AllJurisdictions()
	require.Len(t, all, 51)
	// Sorted by state code
	assert.Equal(t, "AK", all[0].StateCode)
	assert.Equal(t, "WY", all[len(all)-1].StateCode)
}

func TestRateRepository_Jurisdiction(t *testing.T) {
	repo := NewRateRepository()

	state, ok := repo.Jurisdiction("TX")
	require.True(t, ok)
	assert.Equal(t, "Texas", state.StateName)
	assert.InDelta(t, 0.0625, state.BaseRate, 1e-9)

	// Case-insensitive with whitespace tolerance
	lower, ok := repo.Jurisdiction(" tx ")
	require.True(t, ok)
	assert.Equal(t, state.StateCode, lower.StateCode)

	_, ok = repo.Jurisdiction("ZZ")
	assert.False(t, ok)
}

func TestRateRepository_BaseRate_UnknownCode(t *testing.T) {
	repo := NewRateRepository()

	_, err := repo.BaseRate("ZZ")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownJurisdiction)
}

func TestRateRepository_CombinedRate(t *testing.T) {
	repo := NewRateRepository()

	// Recorded city rate wins
	rate, err := repo.CombinedRate("TX", "Houston")
	require.NoError(t, err)
	assert.InDelta(t, 0.0825, rate, 1e-9)

	// Unknown city falls back to the state average combined rate
	rate, err = repo.CombinedRate("TX", "Nowheresville")
	require.NoError(t, err)
	assert.InDelta(t, 0.082, rate, 1e-9)

	_, err = repo.CombinedRate("ZZ", "Houston")
	assert.ErrorIs(t, err, domain.ErrUnknownJurisdiction)
}

func TestRateRepository_LocalRate(t *testing.T) {
	repo := NewRateRepository()

	local, ok := repo.LocalRate("CA", "los angeles")
	require.True(t, ok)
	assert.Equal(t, "Los Angeles", local.Jurisdiction)
	assert.InDelta(t, 0.025, local.Rate, 1e-9)
	assert.Equal(t, "city", local.JurisdictionType)

	_, ok = repo.LocalRate("CA", "Gotham")
	assert.False(t, ok)
}

func TestRateRepository_NoTaxJurisdictions(t *testing.T) {
	repo := NewRateRepository()

	assert.Equal(t, []string{"AK", "DE", "MT", "NH", "OR"}, repo.NoTaxJurisdictions())
}

func TestRateRepository_IsExempt(t *testing.T) {
	repo := NewRateRepository()

	exempt, err := repo.IsExempt("TX", domain.ExemptionGrocery)
	require.NoError(t, err)
	assert.True(t, exempt)

	exempt, err = repo.IsExempt("TX", domain.ExemptionClothing)
	require.NoError(t, err)
	assert.False(t, exempt)

	_, err = repo.IsExempt("ZZ", domain.ExemptionGrocery)
	assert.ErrorIs(t, err, domain.ErrUnknownJurisdiction)
}

func TestRateRepository_StatesExempting(t *testing.T) {
	repo := NewRateRepository()

	states := repo.StatesExempting(domain.ExemptionGrocery)
	assert.Contains(t, states, "TX")
	assert.Contains(t, states, "CA")
	// Sorted ascending
	for i := 1; i < len(states); i++ {
		assert.Less(t, states[i-1], states[i])
	}
}

func TestRateRepository_RateRankings(t *testing.T) {
	repo := NewRateRepository()

	highest := repo.HighestRates(5)
	require.Len(t, highest, 5)
	for i := 1; i < len(highest); i++ {
		assert.GreaterOrEqual(t, highest[i-1].AvgCombinedRate, highest[i].AvgCombinedRate)
	}

	lowest := repo.LowestNonzeroRates(5)
	require.Len(t, lowest, 5)
	for _, state := range lowest {
		assert.Greater(t, state.BaseRate, 0.0, "no-tax states must be excluded")
	}
	for i := 1; i < len(lowest); i++ {
		assert.LessOrEqual(t, lowest[i-1].AvgCombinedRate, lowest[i].AvgCombinedRate)
	}
}
