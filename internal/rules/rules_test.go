package rules

import (
	"testing"

	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFederalForYear(t *testing.T) {
	fr, err := FederalForYear(2025)
	require.NoError(t, err)
	assert.Equal(t, 2025, fr.Year)

	_, err = FederalForYear(1999)
	require.Error(t, err)
	var unsupported *ErrUnsupportedYear
	assert.ErrorAs(t, err, &unsupported)
	assert.Equal(t, 1999, unsupported.Year)
}

func TestFederal2025_StandardDeductions(t *testing.T) {
	fr, err := FederalForYear(2025)
	require.NoError(t, err)

	assert.Equal(t, money.FromDollars(15000), fr.StandardDeduction[domain.Single])
	assert.Equal(t, money.FromDollars(30000), fr.StandardDeduction[domain.MarriedFilingJointly])
	assert.Equal(t, money.FromDollars(22500), fr.StandardDeduction[domain.HeadOfHousehold])
}

func TestFederal2025_BracketTablesValid(t *testing.T) {
	fr, err := FederalForYear(2025)
	require.NoError(t, err)

	for _, fs := range allStatuses {
		require.NoError(t, fr.Brackets[fs].Validate(), "ordinary brackets for %s", fs)
		require.NoError(t, fr.AMT.Brackets(fs).Validate(), "AMT brackets for %s", fs)
		assert.True(t, fr.Brackets[fs][0].Rate.Equal(decimal.NewFromFloat(0.10)),
			"bottom federal rate for %s", fs)
	}
}

func TestFederal2025_JointThresholdsNotBelowSingle(t *testing.T) {
	fr, err := FederalForYear(2025)
	require.NoError(t, err)

	single := fr.Brackets[domain.Single]
	joint := fr.Brackets[domain.MarriedFilingJointly]
	require.Equal(t, len(single), len(joint))
	for i := range single {
		assert.GreaterOrEqual(t, int64(joint[i].Threshold), int64(single[i].Threshold),
			"joint threshold %d", i)
	}
}

func TestStatesForYear_CoversAllFifty(t *testing.T) {
	states, err := StatesForYear(2025)
	require.NoError(t, err)
	assert.Len(t, states, 50)

	families := map[domain.StateRegime]int{}
	for _, s := range states {
		families[s.Regime]++
	}
	assert.Equal(t, 9, families[domain.RegimeNoIncomeTax])
	assert.Equal(t, 14, families[domain.RegimeFlat])
	assert.Equal(t, 1, families[domain.RegimeFlatSurtax])
	assert.Equal(t, 26, families[domain.RegimeProgressive])
}

func TestStates2025_SelectedRates(t *testing.T) {
	states, err := StatesForYear(2025)
	require.NoError(t, err)

	nc := states["NC"]
	require.NotNil(t, nc)
	assert.True(t, nc.FlatRate.Equal(decimal.NewFromFloat(0.0425)))
	assert.Equal(t, money.FromDollars(12750), nc.StandardDeductionFor(domain.Single))

	pa := states["PA"]
	require.NotNil(t, pa)
	assert.True(t, pa.FlatRate.Equal(decimal.NewFromFloat(0.0307)))

	ma := states["MA"]
	require.NotNil(t, ma)
	assert.Equal(t, domain.RegimeFlatSurtax, ma.Regime)
	assert.True(t, ma.SurtaxRate.Equal(decimal.NewFromFloat(0.04)))
}

func TestStateSpec_StatusFallbacks(t *testing.T) {
	states, err := StatesForYear(2025)
	require.NoError(t, err)

	ca := states["CA"]
	require.NotNil(t, ca)
	assert.Equal(t, ca.BracketsFor(domain.Single), ca.BracketsFor(domain.MarriedFilingSeparate),
		"separate filers fall back to the single table")
	assert.Equal(t, ca.BracketsFor(domain.Single), ca.BracketsFor(domain.HeadOfHousehold))

	nc := states["NC"]
	assert.Equal(t, nc.StandardDeductionFor(domain.Single), nc.StandardDeductionFor(domain.HeadOfHousehold))
}

func TestStates2025_ProgressiveTablesValid(t *testing.T) {
	states, err := StatesForYear(2025)
	require.NoError(t, err)

	for code, s := range states {
		if s.Regime != domain.RegimeProgressive {
			continue
		}
		for fs, table := range s.Brackets {
			require.NoError(t, table.Validate(), "state %s brackets for %s", code, fs)
		}
	}
}
