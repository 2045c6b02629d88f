package states

import (
	"testing"

	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/rgehrsitz/taxengine/internal/rules"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func federalResult(fs domain.FilingStatus, agiDollars int64) *domain.FederalResult {
	return &domain.FederalResult{
		Year:         2025,
		FilingStatus: fs,
		AGI:          money.FromDollars(agiDollars),
	}
}

func compute(t *testing.T, fed *domain.FederalResult, in domain.StateInput) *domain.StateResult {
	t.Helper()
	result, err := NewRegistry().Compute(fed, in)
	require.NoError(t, err)
	return result
}

func TestRegistry_CoversAllFiftyStates(t *testing.T) {
	codes := NewRegistry().Codes(2025)
	assert.Len(t, codes, 50)
}

func TestRegistry_UnknownState(t *testing.T) {
	_, err := NewRegistry().Compute(federalResult(domain.Single, 50000), domain.StateInput{StateCode: "ZZ"})
	require.Error(t, err)
	var unknown *ErrUnknownState
	assert.ErrorAs(t, err, &unknown)
}

func TestRegistry_CodeNormalization(t *testing.T) {
	calc, err := NewRegistry().Lookup(2025, " nc ")
	require.NoError(t, err)
	assert.Equal(t, "NC", calc.Code())
	assert.Equal(t, "North Carolina", calc.Name())
}

func TestRegistry_UnsupportedYear(t *testing.T) {
	fed := federalResult(domain.Single, 50000)
	fed.Year = 1999
	_, err := NewRegistry().Compute(fed, domain.StateInput{StateCode: "NC"})
	require.Error(t, err)
	var unsupported *rules.ErrUnsupportedYear
	assert.ErrorAs(t, err, &unsupported)
}

func TestFlatState_NorthCarolina(t *testing.T) {
	result := compute(t, federalResult(domain.Single, 50000), domain.StateInput{StateCode: "NC"})

	assert.Equal(t, domain.RegimeFlat, result.Regime)
	assert.Equal(t, money.FromDollars(50000), result.StateAGI)
	assert.Equal(t, money.FromDollars(37250), result.StateTaxableIncome)
	// 4.25% of 37,250 rounds half-up on the half cent.
	assert.Equal(t, money.Cents(158313), result.StateTax)
	assert.Equal(t, money.Cents(-158313), result.RefundOrOwed)
}

func TestFlatState_SeparateFilersUseSingleDeduction(t *testing.T) {
	result := compute(t, federalResult(domain.MarriedFilingSeparate, 50000), domain.StateInput{StateCode: "NC"})
	assert.Equal(t, money.FromDollars(37250), result.StateTaxableIncome)
}

func TestFlatState_AdditionsAndSubtractions(t *testing.T) {
	result := compute(t, federalResult(domain.Single, 50000), domain.StateInput{
		StateCode:    "NC",
		Additions:    money.FromDollars(5000),
		Subtractions: money.FromDollars(8000),
	})
	assert.Equal(t, money.FromDollars(47000), result.StateAGI)
	assert.Equal(t, money.FromDollars(34250), result.StateTaxableIncome)
}

func TestFlatState_ExemptionsReduceTaxableIncome(t *testing.T) {
	// Illinois has no standard deduction; the taxable base is AGI less a
	// $2,775 exemption per filer and per dependent.
	fed := federalResult(domain.Single, 50000)
	fed.Dependents = 2
	result := compute(t, fed, domain.StateInput{StateCode: "IL"})

	assert.Equal(t, money.FromDollars(41675), result.StateTaxableIncome)
	assert.Equal(t, money.Cents(206291), result.StateTax)
}

func TestFlatState_JointFilersClaimTwoPersonalExemptions(t *testing.T) {
	result := compute(t, federalResult(domain.MarriedFilingJointly, 50000), domain.StateInput{StateCode: "IL"})

	assert.Equal(t, money.FromDollars(44450), result.StateTaxableIncome)
	// 4.95% of 44,450 rounds half-up on the half cent.
	assert.Equal(t, money.Cents(220028), result.StateTax)
}

func TestProgressiveState_AlabamaExemptions(t *testing.T) {
	fed := federalResult(domain.Single, 20000)
	fed.Dependents = 1
	result := compute(t, fed, domain.StateInput{StateCode: "AL"})

	// 20,000 less the 3,000 deduction, 1,500 personal exemption, and
	// 1,000 dependent exemption.
	assert.Equal(t, money.FromDollars(14500), result.StateTaxableIncome)
	assert.Equal(t, money.FromDollars(685), result.StateTax)
}

func TestNoIncomeTaxState(t *testing.T) {
	result := compute(t, federalResult(domain.Single, 500000), domain.StateInput{
		StateCode:   "TX",
		Withholding: money.FromDollars(100),
	})

	assert.Equal(t, domain.RegimeNoIncomeTax, result.Regime)
	assert.True(t, result.StateTax.IsZero())
	assert.True(t, result.StateTaxableIncome.IsZero())
	assert.Equal(t, money.FromDollars(100), result.RefundOrOwed,
		"anything withheld comes straight back")
	assert.NotEmpty(t, result.Notes)
}

func TestFlatSurtaxState_Massachusetts(t *testing.T) {
	t.Run("below the surtax threshold", func(t *testing.T) {
		result := compute(t, federalResult(domain.Single, 100000), domain.StateInput{StateCode: "MA"})
		assert.Equal(t, money.FromDollars(5000), result.StateTax)
		assert.True(t, result.Surtax.IsZero())
	})
	t.Run("above the surtax threshold", func(t *testing.T) {
		result := compute(t, federalResult(domain.Single, 2000000), domain.StateInput{StateCode: "MA"})
		assert.Equal(t, money.FromDollars(100000), result.StateTax)
		// 4% of the 916,850 over the threshold.
		assert.Equal(t, money.FromDollars(36674), result.Surtax)
	})
}

func TestProgressiveState_California(t *testing.T) {
	result := compute(t, federalResult(domain.Single, 50000), domain.StateInput{StateCode: "CA"})

	assert.Equal(t, domain.RegimeProgressive, result.Regime)
	assert.Equal(t, money.FromDollars(44460), result.StateTaxableIncome)
	assert.Equal(t, money.Cents(124516), result.StateTax)
	assert.True(t, result.Surtax.IsZero())
}

func TestProgressiveState_CaliforniaMillionaireSurtax(t *testing.T) {
	result := compute(t, federalResult(domain.Single, 1200000), domain.StateInput{StateCode: "CA"})

	assert.Equal(t, money.FromDollars(1194460), result.StateTaxableIncome)
	// 1% of taxable income over 1,000,000.
	assert.Equal(t, money.Cents(194460), result.Surtax)
	assert.Greater(t, int64(result.StateTax), int64(0))
}

func TestProgressiveState_MarylandCountyTax(t *testing.T) {
	fed := federalResult(domain.Single, 100000)

	t.Run("default county rate", func(t *testing.T) {
		result := compute(t, fed, domain.StateInput{StateCode: "MD"})
		assert.Equal(t, money.FromDollars(97300), result.StateTaxableIncome)
		assert.Equal(t, money.Cents(456925), result.StateTax)
		assert.Equal(t, money.Cents(311360), result.LocalTax)
	})
	t.Run("supplied county rate", func(t *testing.T) {
		result := compute(t, fed, domain.StateInput{StateCode: "MD", CountyRate: "0.0250"})
		assert.Equal(t, money.Cents(243250), result.LocalTax)
	})
	t.Run("garbage county rate falls back to default", func(t *testing.T) {
		result := compute(t, fed, domain.StateInput{StateCode: "MD", CountyRate: "three percent"})
		assert.Equal(t, money.Cents(311360), result.LocalTax)
	})
}

func TestProgressiveState_NewYorkDeductionAddback(t *testing.T) {
	t.Run("below the addback threshold", func(t *testing.T) {
		result := compute(t, federalResult(domain.Single, 900000), domain.StateInput{StateCode: "NY"})
		assert.Equal(t, money.FromDollars(892000), result.StateTaxableIncome)
	})
	t.Run("above the addback threshold", func(t *testing.T) {
		result := compute(t, federalResult(domain.Single, 1100000), domain.StateInput{StateCode: "NY"})
		assert.Equal(t, money.FromDollars(1100000), result.StateTaxableIncome,
			"no standard deduction once state AGI exceeds the threshold")
	})
}

func TestStateCredits_Nonrefundable(t *testing.T) {
	t.Run("partial offset", func(t *testing.T) {
		result := compute(t, federalResult(domain.Single, 50000), domain.StateInput{
			StateCode: "NC",
			Credits:   money.FromDollars(500),
		})
		assert.Equal(t, money.FromDollars(500), result.CreditsApplied)
		assert.Equal(t, money.Cents(-108313), result.RefundOrOwed)
	})
	t.Run("credits cannot exceed liability", func(t *testing.T) {
		result := compute(t, federalResult(domain.Single, 50000), domain.StateInput{
			StateCode:   "NC",
			Credits:     money.FromDollars(5000),
			Withholding: money.FromDollars(200),
		})
		assert.Equal(t, result.StateTax, result.CreditsApplied)
		assert.Equal(t, money.FromDollars(200), result.RefundOrOwed,
			"excess credits are lost, not refunded")
	})
}

func TestStatePayments_Refund(t *testing.T) {
	result := compute(t, federalResult(domain.Single, 50000), domain.StateInput{
		StateCode:         "NC",
		Withholding:       money.FromDollars(1500),
		EstimatedPayments: money.FromDollars(500),
	})
	assert.Equal(t, money.FromDollars(2000), result.TotalPayments)
	assert.Equal(t, money.Cents(41687), result.RefundOrOwed)
}
