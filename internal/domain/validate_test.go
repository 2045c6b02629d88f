package domain

import (
	"testing"

	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *TaxpayerInput {
	return &TaxpayerInput{
		Year:         2025,
		FilingStatus: Single,
		Income: Income{
			Wages:              money.FromDollars(60000),
			OrdinaryDividends:  money.FromDollars(1000),
			QualifiedDividends: money.FromDollars(800),
		},
	}
}

func TestValidate_AcceptsWellFormedInput(t *testing.T) {
	assert.NoError(t, validInput().Validate())
}

func TestValidate_LossesAreAllowedWhereLossesHappen(t *testing.T) {
	in := validInput()
	in.Income.ShortTermGains = money.FromDollars(-15000)
	in.Income.LongTermGains = money.FromDollars(-5000)
	in.Income.BusinessNetIncome = money.FromDollars(-20000)
	in.AMTItems.DepreciationAdjustment = money.FromDollars(-3000)
	assert.NoError(t, in.Validate())
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TaxpayerInput)
		field  string
	}{
		{
			"negative wages",
			func(in *TaxpayerInput) { in.Income.Wages = money.FromDollars(-1) },
			"Wages",
		},
		{
			"negative withholding",
			func(in *TaxpayerInput) { in.Payments.Withholding = money.FromDollars(-100) },
			"Withholding",
		},
		{
			"negative dependents",
			func(in *TaxpayerInput) { in.QualifyingChildren = -1 },
			"QualifyingChildren",
		},
		{
			"unknown filing status",
			func(in *TaxpayerInput) { in.FilingStatus = "common_law" },
			"filing_status",
		},
		{
			"qualified dividends exceed ordinary",
			func(in *TaxpayerInput) { in.Income.QualifiedDividends = money.FromDollars(5000) },
			"qualified_dividends",
		},
		{
			"unknown foreign category",
			func(in *TaxpayerInput) {
				in.Foreign.Sources = []ForeignIncomeSource{{Category: "offshore"}}
			},
			"category",
		},
		{
			"unknown foreign carryover category",
			func(in *TaxpayerInput) {
				in.Foreign.PriorYearCarryover = map[ForeignCategory]money.Cents{
					"pasive": money.FromDollars(200),
				}
			},
			"prior_year_carryover",
		},
		{
			"one-letter state code",
			func(in *TaxpayerInput) { in.State = &StateInput{StateCode: "N"} },
			"StateCode",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(in)

			err := in.Validate()
			require.Error(t, err)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Field, tt.field)
		})
	}
}

func TestFilingStatus(t *testing.T) {
	for _, fs := range []FilingStatus{Single, MarriedFilingJointly, MarriedFilingSeparate, HeadOfHousehold} {
		assert.True(t, fs.Valid(), string(fs))
	}
	assert.False(t, FilingStatus("").Valid())
	assert.True(t, MarriedFilingJointly.IsJoint())
	assert.False(t, MarriedFilingSeparate.IsJoint())
}
