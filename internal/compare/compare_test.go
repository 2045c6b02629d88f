package compare

import (
	"strings"
	"testing"

	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/rgehrsitz/taxengine/internal/states"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compareSet(t *testing.T, codes []string) *ComparisonSet {
	t.Helper()
	fed := &domain.FederalResult{
		Year:         2025,
		FilingStatus: domain.Single,
		AGI:          money.FromDollars(100000),
		TotalTax:     money.FromDollars(14000),
	}
	set, err := NewCompareEngine(states.NewRegistry()).Compare(fed, codes)
	require.NoError(t, err)
	return set
}

func TestCompare_AllStatesRanked(t *testing.T) {
	set := compareSet(t, nil)

	require.Len(t, set.Results, 50)
	assert.True(t, set.Results[0].TotalLiability.IsZero(),
		"a no-income-tax state ranks first")
	assert.True(t, set.Results[0].DiffFromLowest.IsZero())

	for i := 1; i < len(set.Results); i++ {
		assert.GreaterOrEqual(t,
			int64(set.Results[i].TotalLiability),
			int64(set.Results[i-1].TotalLiability),
			"results must sort by ascending liability")
	}
}

func TestCompare_SelectedStates(t *testing.T) {
	set := compareSet(t, []string{"NC", "TX", "CA"})

	require.Len(t, set.Results, 3)
	assert.Equal(t, "TX", set.Results[0].StateCode)

	// NC at a flat 4.25% of 87,250 undercuts California here.
	assert.Equal(t, "NC", set.Results[1].StateCode)
	assert.Equal(t, "CA", set.Results[2].StateCode)
	assert.Equal(t, set.Results[2].TotalLiability, set.Results[2].DiffFromLowest)
}

func TestCompare_UnknownState(t *testing.T) {
	fed := &domain.FederalResult{Year: 2025, FilingStatus: domain.Single}
	_, err := NewCompareEngine(states.NewRegistry()).Compare(fed, []string{"ZZ"})
	assert.Error(t, err)
}

func TestFormatters(t *testing.T) {
	set := compareSet(t, []string{"NC", "TX"})

	t.Run("table", func(t *testing.T) {
		f, err := NewFormatter("table")
		require.NoError(t, err)
		out, err := f.Format(set)
		require.NoError(t, err)
		assert.Contains(t, out, "North Carolina")
		assert.Contains(t, out, "vs lowest")
	})
	t.Run("csv", func(t *testing.T) {
		f, err := NewFormatter("csv")
		require.NoError(t, err)
		out, err := f.Format(set)
		require.NoError(t, err)
		lines := strings.Split(strings.TrimSpace(out), "\n")
		assert.Len(t, lines, 3)
	})
	t.Run("json", func(t *testing.T) {
		f, err := NewFormatter("json")
		require.NoError(t, err)
		out, err := f.Format(set)
		require.NoError(t, err)
		assert.Contains(t, out, `"state_code": "TX"`)
	})
	t.Run("unknown", func(t *testing.T) {
		_, err := NewFormatter("xml")
		assert.Error(t, err)
	})
}
