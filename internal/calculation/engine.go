// Package calculation implements the federal tax computation pipeline,
// the AMT sub-engine, specialized taxes, and the credit calculators. The
// engine is purely functional: identical input always yields identical
// output, and concurrent invocations need no coordination.
package calculation

import (
	"fmt"

	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/rules"
	"github.com/rgehrsitz/taxengine/internal/states"
)

// Engine orchestrates a complete calculation request: validation, the
// federal pipeline, and optional state computation.
type Engine struct {
	States *states.Registry
}

// NewEngine creates an engine with the full state registry.
func NewEngine() *Engine {
	return &Engine{States: states.NewRegistry()}
}

// Calculate validates the input and runs the federal pipeline.
func (e *Engine) Calculate(in *domain.TaxpayerInput) (*domain.FederalResult, error) {
	result, _, err := e.calculate(in, false)
	return result, err
}

// CalculateWithTrace is Calculate plus an ordered audit trace of named
// steps for external report formatting.
func (e *Engine) CalculateWithTrace(in *domain.TaxpayerInput) (*domain.FederalResult, *Trace, error) {
	return e.calculate(in, true)
}

func (e *Engine) calculate(in *domain.TaxpayerInput, traced bool) (*domain.FederalResult, *Trace, error) {
	if err := in.Validate(); err != nil {
		return nil, nil, err
	}
	fr, err := rules.FederalForYear(in.Year)
	if err != nil {
		return nil, nil, fmt.Errorf("loading federal rules: %w", err)
	}

	var trace *Trace
	if traced {
		trace = NewTrace()
	}
	result := NewFederalCalculator(fr).Calculate(in, trace)
	return &result, trace, nil
}

// CalculateState runs the selected state's computation against an already
// produced federal result. The federal result is passed by value into the
// state module and never mutated.
func (e *Engine) CalculateState(fed *domain.FederalResult, in *domain.StateInput) (*domain.StateResult, error) {
	if in == nil {
		return nil, fmt.Errorf("no state selected")
	}
	return e.States.Compute(fed, *in)
}
