package domain

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError reports a structurally invalid input field. Validation
// failures are fatal to the request; calculations never run on
// partially-invalid input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the input's structure: tag constraints first, then the
// cross-field rules tags cannot express. It returns the first violation as
// a *ValidationError.
func (in *TaxpayerInput) Validate() error {
	if err := validate.Struct(in); err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok || len(verrs) == 0 {
			return &ValidationError{Field: "input", Reason: err.Error()}
		}
		v := verrs[0]
		return &ValidationError{
			Field:  v.Namespace(),
			Reason: fmt.Sprintf("failed %q constraint", v.Tag()),
		}
	}

	if !in.FilingStatus.Valid() {
		return &ValidationError{
			Field:  "filing_status",
			Reason: fmt.Sprintf("unknown filing status %q", in.FilingStatus),
		}
	}
	if in.Income.QualifiedDividends > in.Income.OrdinaryDividends {
		return &ValidationError{
			Field:  "income.qualified_dividends",
			Reason: "qualified dividends cannot exceed ordinary dividends",
		}
	}
	for i, src := range in.Foreign.Sources {
		switch src.Category {
		case ForeignGeneral, ForeignPassive:
		default:
			return &ValidationError{
				Field:  fmt.Sprintf("foreign.sources[%d].category", i),
				Reason: fmt.Sprintf("unknown category %q", src.Category),
			}
		}
	}
	for cat := range in.Foreign.PriorYearCarryover {
		switch cat {
		case ForeignGeneral, ForeignPassive:
		default:
			return &ValidationError{
				Field:  "foreign.prior_year_carryover",
				Reason: fmt.Sprintf("unknown category %q", cat),
			}
		}
	}
	return nil
}
