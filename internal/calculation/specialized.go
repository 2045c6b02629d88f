package calculation

import (
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/rgehrsitz/taxengine/internal/rules"
)

// SelfEmploymentTaxCalculator computes SE tax from net business profit.
type SelfEmploymentTaxCalculator struct {
	Rules rules.SelfEmploymentRules
}

// seTaxFloor is the net-earnings amount below which no SE tax is due.
var seTaxFloor = money.FromDollars(400)

// Calculate returns the self-employment tax and its deductible half. The
// Social Security portion shares a wage base with W-2 wages, so wages
// already subject to withholding shrink the base available to SE earnings.
func (c *SelfEmploymentTaxCalculator) Calculate(businessNetIncome, wages money.Cents) (seTax, deductibleHalf money.Cents) {
	if businessNetIncome <= 0 {
		return 0, 0
	}
	netEarnings := businessNetIncome.MulRate(c.Rules.NetEarningsFactor)
	if netEarnings < seTaxFloor {
		return 0, 0
	}
	ssBaseRemaining := (c.Rules.WageBase - wages).NonNegative()
	ssPortion := money.Min(netEarnings, ssBaseRemaining).MulRate(c.Rules.SocialSecurityRate)
	medicarePortion := netEarnings.MulRate(c.Rules.MedicareRate)
	seTax = ssPortion + medicarePortion
	return seTax, seTax / 2
}

// AdditionalMedicareTaxCalculator computes the 0.9% surtax on earned
// income above the status threshold.
type AdditionalMedicareTaxCalculator struct {
	Rules rules.SurtaxRules
}

// Calculate applies the surtax to combined wages and SE net earnings.
func (c *AdditionalMedicareTaxCalculator) Calculate(fs domain.FilingStatus, wages, seNetEarnings money.Cents) money.Cents {
	earned := wages + seNetEarnings.NonNegative()
	excess := (earned - c.Rules.Threshold[fs]).NonNegative()
	return excess.MulRate(c.Rules.Rate)
}

// NetInvestmentIncomeTaxCalculator computes the 3.8% NIIT.
type NetInvestmentIncomeTaxCalculator struct {
	Rules rules.SurtaxRules
}

// Calculate taxes the lesser of net investment income and the MAGI excess
// over the status threshold.
func (c *NetInvestmentIncomeTaxCalculator) Calculate(fs domain.FilingStatus, netInvestmentIncome, magi money.Cents) money.Cents {
	if netInvestmentIncome <= 0 {
		return 0
	}
	excess := (magi - c.Rules.Threshold[fs]).NonNegative()
	base := money.Min(netInvestmentIncome, excess)
	return base.MulRate(c.Rules.Rate)
}
