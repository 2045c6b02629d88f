package rules

import (
	"fmt"

	"github.com/rgehrsitz/taxengine/internal/brackets"
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/shopspring/decimal"
)

// StateSpec is the pure-data description of one state's income tax regime
// for one year. The states package turns a spec into a calculator; this
// package only stores and validates it.
type StateSpec struct {
	Code   string
	Name   string
	Regime domain.StateRegime

	// Note is echoed into results for regimes that need explanation
	// (no-income-tax states, modeled simplifications).
	Note string

	// FlatRate applies to flat and flat-with-surtax regimes.
	FlatRate decimal.Decimal

	// Brackets applies to progressive regimes. Statuses without an entry
	// fall back per fallbackStatus.
	Brackets map[domain.FilingStatus]brackets.Table

	StandardDeduction  map[domain.FilingStatus]money.Cents
	PersonalExemption  money.Cents
	DependentExemption money.Cents

	// SurtaxRate/SurtaxThreshold model millionaire-style surtaxes layered
	// on the base computation (MA dual rate, CA mental health tax).
	SurtaxRate      decimal.Decimal
	SurtaxThreshold money.Cents

	// DefaultCountyRate is the local income-tax rate used when the input
	// does not supply one (Maryland counties).
	DefaultCountyRate decimal.Decimal

	// DeductionAddbackThreshold, when set, disallows the state standard
	// deduction once state AGI exceeds it (high-earner addback).
	DeductionAddbackThreshold money.Cents
}

// fallbackStatus maps a filing status to the table row used when a state
// publishes no row of its own. Separate filers use single tables; head of
// household uses single unless the state defines one.
func fallbackStatus(fs domain.FilingStatus) domain.FilingStatus {
	switch fs {
	case domain.MarriedFilingSeparate, domain.HeadOfHousehold:
		return domain.Single
	}
	return fs
}

// BracketsFor returns the bracket table for a filing status, applying the
// fallback rules. Only meaningful for progressive regimes.
func (s *StateSpec) BracketsFor(fs domain.FilingStatus) brackets.Table {
	if t, ok := s.Brackets[fs]; ok {
		return t
	}
	if t, ok := s.Brackets[fallbackStatus(fs)]; ok {
		return t
	}
	return s.Brackets[domain.Single]
}

// StandardDeductionFor returns the state standard deduction for a filing
// status, applying the fallback rules.
func (s *StateSpec) StandardDeductionFor(fs domain.FilingStatus) money.Cents {
	if d, ok := s.StandardDeduction[fs]; ok {
		return d
	}
	if d, ok := s.StandardDeduction[fallbackStatus(fs)]; ok {
		return d
	}
	return s.StandardDeduction[domain.Single]
}

// ExemptionsFor totals the state's personal and dependent exemption
// deductions for one return. Joint filers claim two personal exemptions;
// states without exemptions carry zeros and subtract nothing.
func (s *StateSpec) ExemptionsFor(fs domain.FilingStatus, dependents int) money.Cents {
	personal := s.PersonalExemption
	if fs.IsJoint() {
		personal *= 2
	}
	return personal + s.DependentExemption*money.Cents(dependents)
}

func (s *StateSpec) validate() error {
	if len(s.Code) != 2 {
		return fmt.Errorf("state code %q must be two letters", s.Code)
	}
	if s.Name == "" {
		return fmt.Errorf("state name is required")
	}
	switch s.Regime {
	case domain.RegimeNoIncomeTax:
		if !s.FlatRate.IsZero() || len(s.Brackets) != 0 {
			return fmt.Errorf("no-income-tax state must carry no rates")
		}
	case domain.RegimeFlat:
		if s.FlatRate.LessThanOrEqual(decimal.Zero) {
			return fmt.Errorf("flat state needs a positive rate")
		}
	case domain.RegimeFlatSurtax:
		if s.FlatRate.LessThanOrEqual(decimal.Zero) || s.SurtaxRate.LessThanOrEqual(decimal.Zero) || s.SurtaxThreshold <= 0 {
			return fmt.Errorf("flat-with-surtax state needs base rate, surtax rate, and threshold")
		}
	case domain.RegimeProgressive:
		if len(s.Brackets) == 0 {
			return fmt.Errorf("progressive state needs bracket tables")
		}
		if _, ok := s.Brackets[domain.Single]; !ok {
			return fmt.Errorf("progressive state needs at least a single-filer table")
		}
		for fs, table := range s.Brackets {
			if err := table.Validate(); err != nil {
				return fmt.Errorf("brackets for %s: %w", fs, err)
			}
		}
	default:
		return fmt.Errorf("unknown regime %q", s.Regime)
	}
	return nil
}
