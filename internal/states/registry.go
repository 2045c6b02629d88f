// Package states implements the per-state tax computations behind one
// shared contract: every state module consumes the federal result plus
// state-specific input and returns the same StateResult shape. The set of
// states is closed and known at compile time; dispatch is a plain lookup,
// no reflection.
package states

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/rules"
)

// Calculator is the single capability every state module implements.
type Calculator interface {
	Code() string
	Name() string
	Compute(fed domain.FederalResult, in domain.StateInput) domain.StateResult
}

// ErrUnknownState is returned for a state code with no registered module.
type ErrUnknownState struct {
	Code string
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("unknown state code %q", e.Code)
}

// Registry maps state codes to their calculators, built per supported
// year from the rule tables.
type Registry struct {
	byYear map[int]map[string]Calculator
}

// NewRegistry builds calculators for every state in every supported rule
// year. Rule data is validated at rules-package init, so construction
// cannot fail.
func NewRegistry() *Registry {
	r := &Registry{byYear: make(map[int]map[string]Calculator)}
	for _, year := range rules.SupportedYears() {
		specs, err := rules.StatesForYear(year)
		if err != nil {
			panic(fmt.Sprintf("states: %v", err))
		}
		calcs := make(map[string]Calculator, len(specs))
		for code, spec := range specs {
			calcs[code] = newCalculator(spec)
		}
		r.byYear[year] = calcs
	}
	return r
}

// Lookup returns the calculator for a state code in a given year.
func (r *Registry) Lookup(year int, code string) (Calculator, error) {
	calcs, ok := r.byYear[year]
	if !ok {
		return nil, &rules.ErrUnsupportedYear{Year: year}
	}
	calc, ok := calcs[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, &ErrUnknownState{Code: code}
	}
	return calc, nil
}

// Codes lists the registered state codes for a year, for display surfaces.
func (r *Registry) Codes(year int) []string {
	calcs := r.byYear[year]
	codes := make([]string, 0, len(calcs))
	for code := range calcs {
		codes = append(codes, code)
	}
	return codes
}

// Compute dispatches to the state selected by the input.
func (r *Registry) Compute(fed *domain.FederalResult, in domain.StateInput) (*domain.StateResult, error) {
	calc, err := r.Lookup(fed.Year, in.StateCode)
	if err != nil {
		return nil, err
	}
	result := calc.Compute(*fed, in)
	return &result, nil
}

// newCalculator turns a pure-data state spec into its behavioral family.
func newCalculator(spec *rules.StateSpec) Calculator {
	switch spec.Regime {
	case domain.RegimeNoIncomeTax:
		return &noIncomeTaxState{spec: spec}
	case domain.RegimeFlat:
		return &flatRateState{spec: spec}
	case domain.RegimeFlatSurtax:
		return &flatSurtaxState{spec: spec}
	case domain.RegimeProgressive:
		return &progressiveState{spec: spec}
	}
	panic(fmt.Sprintf("states: no calculator family for regime %q", spec.Regime))
}
