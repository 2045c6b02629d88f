package states

import (
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/rgehrsitz/taxengine/internal/rules"
	"github.com/shopspring/decimal"
)

// stateBase computes the parts shared by every taxing family: state AGI
// from the federal result plus state additions/subtractions, the taxable
// base after the state's own deduction and exemptions, and the payments
// total.
func stateBase(spec *rules.StateSpec, fed domain.FederalResult, in domain.StateInput) (stateAGI, taxable, payments money.Cents) {
	stateAGI = fed.AGI + in.Additions - in.Subtractions
	deduction := spec.StandardDeductionFor(fed.FilingStatus)
	if spec.DeductionAddbackThreshold > 0 && stateAGI > spec.DeductionAddbackThreshold {
		deduction = 0
	}
	exemptions := spec.ExemptionsFor(fed.FilingStatus, fed.Dependents)
	taxable = (stateAGI - deduction - exemptions).NonNegative()
	payments = in.Withholding + in.EstimatedPayments
	return stateAGI, taxable, payments
}

// finishResult applies credits nonrefundably and settles the balance.
func finishResult(result domain.StateResult, credits money.Cents) domain.StateResult {
	liability := result.StateTax + result.LocalTax + result.Surtax
	applied := money.Min(credits, liability)
	result.CreditsApplied = applied
	result.RefundOrOwed = result.TotalPayments - (liability - applied)
	return result
}

// noIncomeTaxState returns an all-zero result while echoing the state's
// explanatory note.
type noIncomeTaxState struct {
	spec *rules.StateSpec
}

func (s *noIncomeTaxState) Code() string { return s.spec.Code }
func (s *noIncomeTaxState) Name() string { return s.spec.Name }

func (s *noIncomeTaxState) Compute(fed domain.FederalResult, in domain.StateInput) domain.StateResult {
	payments := in.Withholding + in.EstimatedPayments
	return domain.StateResult{
		StateCode:     s.spec.Code,
		StateName:     s.spec.Name,
		Regime:        domain.RegimeNoIncomeTax,
		TotalPayments: payments,
		RefundOrOwed:  payments,
		Notes:         []string{s.spec.Note},
	}
}

// flatRateState applies one rate to the state taxable-income base.
type flatRateState struct {
	spec *rules.StateSpec
}

func (s *flatRateState) Code() string { return s.spec.Code }
func (s *flatRateState) Name() string { return s.spec.Name }

func (s *flatRateState) Compute(fed domain.FederalResult, in domain.StateInput) domain.StateResult {
	stateAGI, taxable, payments := stateBase(s.spec, fed, in)
	result := domain.StateResult{
		StateCode:          s.spec.Code,
		StateName:          s.spec.Name,
		Regime:             domain.RegimeFlat,
		StateAGI:           stateAGI,
		StateTaxableIncome: taxable,
		StateTax:           taxable.MulRate(s.spec.FlatRate),
		TotalPayments:      payments,
	}
	return finishResult(result, in.Credits)
}

// flatSurtaxState is the dual-rate family: a flat base rate plus a surtax
// on taxable income above the threshold (the Massachusetts shape).
type flatSurtaxState struct {
	spec *rules.StateSpec
}

func (s *flatSurtaxState) Code() string { return s.spec.Code }
func (s *flatSurtaxState) Name() string { return s.spec.Name }

func (s *flatSurtaxState) Compute(fed domain.FederalResult, in domain.StateInput) domain.StateResult {
	stateAGI, taxable, payments := stateBase(s.spec, fed, in)
	result := domain.StateResult{
		StateCode:          s.spec.Code,
		StateName:          s.spec.Name,
		Regime:             domain.RegimeFlatSurtax,
		StateAGI:           stateAGI,
		StateTaxableIncome: taxable,
		StateTax:           taxable.MulRate(s.spec.FlatRate),
		Surtax:             (taxable - s.spec.SurtaxThreshold).NonNegative().MulRate(s.spec.SurtaxRate),
		TotalPayments:      payments,
	}
	if s.spec.Note != "" {
		result.Notes = append(result.Notes, s.spec.Note)
	}
	return finishResult(result, in.Credits)
}

// progressiveState applies status-keyed bracket tables, plus any special
// provisions the state's rule data carries: a millionaire surtax
// (California) or a county-rate local tax (Maryland).
type progressiveState struct {
	spec *rules.StateSpec
}

func (s *progressiveState) Code() string { return s.spec.Code }
func (s *progressiveState) Name() string { return s.spec.Name }

func (s *progressiveState) Compute(fed domain.FederalResult, in domain.StateInput) domain.StateResult {
	stateAGI, taxable, payments := stateBase(s.spec, fed, in)

	result := domain.StateResult{
		StateCode:          s.spec.Code,
		StateName:          s.spec.Name,
		Regime:             domain.RegimeProgressive,
		StateAGI:           stateAGI,
		StateTaxableIncome: taxable,
		StateTax:           s.spec.BracketsFor(fed.FilingStatus).Tax(taxable),
		TotalPayments:      payments,
	}

	if !s.spec.SurtaxRate.IsZero() && s.spec.SurtaxThreshold > 0 {
		result.Surtax = (taxable - s.spec.SurtaxThreshold).NonNegative().MulRate(s.spec.SurtaxRate)
	}
	if !s.spec.DefaultCountyRate.IsZero() {
		result.LocalTax = taxable.MulRate(countyRate(s.spec, in))
	}
	if s.spec.Note != "" {
		result.Notes = append(result.Notes, s.spec.Note)
	}
	return finishResult(result, in.Credits)
}

// countyRate resolves the local rate: the input's county rate when it
// parses, the state default otherwise.
func countyRate(spec *rules.StateSpec, in domain.StateInput) decimal.Decimal {
	if in.CountyRate != "" {
		if r, err := decimal.NewFromString(in.CountyRate); err == nil && !r.IsNegative() {
			return r
		}
	}
	return spec.DefaultCountyRate
}
