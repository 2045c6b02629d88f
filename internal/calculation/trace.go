package calculation

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rgehrsitz/taxengine/internal/money"
)

// Trace is an optional, ordered record of named calculation steps for
// external audit formatting. It is observational only: recording never
// feeds back into the calculation, and an absent (nil) trace changes
// nothing. Steps carry logical inputs and results, no timestamps, so two
// runs over identical input produce identical traces apart from the ID.
type Trace struct {
	ID    uuid.UUID   `json:"id"`
	Steps []TraceStep `json:"steps"`
}

// TraceStep is one named calculation step.
type TraceStep struct {
	ID          string            `json:"id"`
	Description string            `json:"description"`
	Inputs      map[string]string `json:"inputs,omitempty"`
	Result      money.Cents       `json:"result"`
}

// NewTrace creates an empty trace with a fresh identifier.
func NewTrace() *Trace {
	return &Trace{ID: uuid.New()}
}

// Record appends a step. Safe to call on a nil trace.
func (t *Trace) Record(id, description string, result money.Cents, inputs map[string]string) {
	if t == nil {
		return
	}
	t.Steps = append(t.Steps, TraceStep{
		ID:          id,
		Description: description,
		Inputs:      inputs,
		Result:      result,
	})
}

// Recordf is Record with a formatted description and no inputs map.
func (t *Trace) Recordf(id string, result money.Cents, format string, args ...any) {
	if t == nil {
		return
	}
	t.Record(id, fmt.Sprintf(format, args...), result, nil)
}
