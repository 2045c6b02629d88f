package compare

import (
	"fmt"
	"sort"

	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/states"
)

// CompareEngine fans a federal result out across state modules.
type CompareEngine struct {
	Registry *states.Registry
}

// NewCompareEngine creates a comparison engine over the full state registry.
func NewCompareEngine(registry *states.Registry) *CompareEngine {
	return &CompareEngine{Registry: registry}
}

// Compare computes the state liability the federal result would produce in
// each of the given states. An empty code list means every registered
// state. State-specific input (additions, payments, county rate) is left
// zero so states differ only by their own rules.
func (ce *CompareEngine) Compare(fed *domain.FederalResult, codes []string) (*ComparisonSet, error) {
	if len(codes) == 0 {
		codes = ce.Registry.Codes(fed.Year)
	}
	if len(codes) == 0 {
		return nil, fmt.Errorf("no states registered for year %d", fed.Year)
	}

	set := &ComparisonSet{
		Year:       fed.Year,
		FederalAGI: fed.AGI,
		FederalTax: fed.TotalTax,
		Results:    make([]StateComparison, 0, len(codes)),
	}
	for _, code := range codes {
		result, err := ce.Registry.Compute(fed, domain.StateInput{StateCode: code})
		if err != nil {
			return nil, fmt.Errorf("comparing state %s: %w", code, err)
		}
		set.Results = append(set.Results, StateComparison{
			StateCode:      result.StateCode,
			StateName:      result.StateName,
			Regime:         result.Regime,
			StateTax:       result.StateTax,
			LocalTax:       result.LocalTax,
			Surtax:         result.Surtax,
			TotalLiability: result.StateTax + result.LocalTax + result.Surtax,
		})
	}

	sort.Slice(set.Results, func(i, j int) bool {
		if set.Results[i].TotalLiability != set.Results[j].TotalLiability {
			return set.Results[i].TotalLiability < set.Results[j].TotalLiability
		}
		return set.Results[i].StateCode < set.Results[j].StateCode
	})
	lowest := set.Results[0].TotalLiability
	for i := range set.Results {
		set.Results[i].DiffFromLowest = set.Results[i].TotalLiability - lowest
	}
	return set, nil
}
