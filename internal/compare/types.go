// Package compare runs one federal result through many state modules and
// ranks the outcomes, for residency what-if questions like "what would
// this return owe in each of these states".
package compare

import (
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
)

// StateComparison is one state's outcome for the shared federal result.
type StateComparison struct {
	StateCode string             `json:"state_code"`
	StateName string             `json:"state_name"`
	Regime    domain.StateRegime `json:"regime"`

	StateTax money.Cents `json:"state_tax"`
	LocalTax money.Cents `json:"local_tax"`
	Surtax   money.Cents `json:"surtax"`
	// TotalLiability is state plus local plus surtax, the ranking key.
	TotalLiability money.Cents `json:"total_liability"`

	// DiffFromLowest is how much more this state costs than the cheapest
	// state in the set.
	DiffFromLowest money.Cents `json:"diff_from_lowest"`
}

// ComparisonSet is the ranked outcome of one comparison run.
type ComparisonSet struct {
	Year       int         `json:"year"`
	FederalAGI money.Cents `json:"federal_agi"`
	FederalTax money.Cents `json:"federal_tax"`

	// Results are sorted by ascending total liability, ties by code.
	Results []StateComparison `json:"results"`
}
