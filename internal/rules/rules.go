// Package rules holds the versioned, year-scoped rule tables for federal
// and state tax computation: brackets, deductions, exemptions, phase-outs,
// and credit parameters. Pure data, loaded once at init and validated
// loudly; nothing here computes tax.
package rules

import (
	"fmt"

	"github.com/rgehrsitz/taxengine/internal/brackets"
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/shopspring/decimal"
)

// ErrUnsupportedYear is returned when no rule set exists for the requested
// tax year.
type ErrUnsupportedYear struct {
	Year int
}

func (e *ErrUnsupportedYear) Error() string {
	return fmt.Sprintf("no rule tables for tax year %d", e.Year)
}

// FederalRules is the complete federal rule set for one tax year.
type FederalRules struct {
	Year int

	StandardDeduction map[domain.FilingStatus]money.Cents
	Brackets          map[domain.FilingStatus]brackets.Table

	// Preferential-rate breakpoints for qualified dividends and net
	// long-term gains under the stacking method.
	Preferential map[domain.FilingStatus]PreferentialThresholds

	SALTCap map[domain.FilingStatus]money.Cents

	AMT                AMTRules
	SelfEmployment     SelfEmploymentRules
	AdditionalMedicare SurtaxRules
	NIIT               SurtaxRules

	EIC       EICRules
	CTC       CTCRules
	Education EducationRules
	Savers    SaversRules
	FTC       FTCRules
	Care      DependentCareRules
}

// PreferentialThresholds are the taxable-income breakpoints at which
// preferential income moves from the 0% to 15% to 20% rate.
type PreferentialThresholds struct {
	ZeroRateMax    money.Cents
	FifteenRateMax money.Cents
}

// AMTRules parameterizes the alternative minimum tax sub-engine.
type AMTRules struct {
	Exemption         map[domain.FilingStatus]money.Cents
	PhaseoutThreshold map[domain.FilingStatus]money.Cents
	PhaseoutRate      decimal.Decimal

	LowRate            decimal.Decimal
	HighRate           decimal.Decimal
	HighRateBreakpoint map[domain.FilingStatus]money.Cents
}

// Brackets builds the two-tier AMT bracket table for a filing status.
func (a AMTRules) Brackets(fs domain.FilingStatus) brackets.Table {
	return brackets.Table{
		{Threshold: 0, Rate: a.LowRate},
		{Threshold: a.HighRateBreakpoint[fs], Rate: a.HighRate},
	}
}

// SelfEmploymentRules parameterizes self-employment tax.
type SelfEmploymentRules struct {
	// NetEarningsFactor converts net SE profit to net earnings (0.9235).
	NetEarningsFactor  decimal.Decimal
	SocialSecurityRate decimal.Decimal
	MedicareRate       decimal.Decimal
	WageBase           money.Cents
}

// SurtaxRules is a flat surtax above a status-specific threshold, used by
// both additional Medicare tax and net investment income tax.
type SurtaxRules struct {
	Rate      decimal.Decimal
	Threshold map[domain.FilingStatus]money.Cents
}

// EICParams is the earned income credit parameter row for one
// qualifying-children count.
type EICParams struct {
	PhaseInRate        decimal.Decimal
	EarnedIncomeAmount money.Cents
	MaxCredit          money.Cents
	PhaseoutRate       decimal.Decimal
	PhaseoutStart      money.Cents
	PhaseoutStartJoint money.Cents
}

// EICRules is the earned income credit table, indexed by qualifying
// children (capped at three).
type EICRules struct {
	ByChildren            [4]EICParams
	InvestmentIncomeLimit money.Cents
}

// CTCRules parameterizes the child tax credit and credit for other
// dependents, including the refundable additional child tax credit.
type CTCRules struct {
	PerChild     money.Cents
	PerDependent money.Cents

	PhaseoutThreshold map[domain.FilingStatus]money.Cents
	PhaseoutStep      money.Cents
	ReductionPerStep  money.Cents

	RefundableLimitPerChild money.Cents
	EarnedIncomeFloor       money.Cents
	RefundableRate          decimal.Decimal
}

// EducationRules parameterizes the American opportunity and lifetime
// learning credits, which share a MAGI phase-out range.
type EducationRules struct {
	AOTCFullExpenseCap    money.Cents
	AOTCPartialExpenseCap money.Cents
	AOTCPartialRate       decimal.Decimal
	AOTCRefundableShare   decimal.Decimal

	LLCRate       decimal.Decimal
	LLCExpenseCap money.Cents

	PhaseoutStart map[domain.FilingStatus]money.Cents
	PhaseoutEnd   map[domain.FilingStatus]money.Cents
}

// SaversTier is one AGI bucket of the saver's credit rate schedule.
type SaversTier struct {
	AGILimit money.Cents
	Rate     decimal.Decimal
}

// SaversRules parameterizes the retirement savings contributions credit.
type SaversRules struct {
	ContributionCapPerPerson money.Cents
	// Tiers are in ascending AGI order; income above the last limit gets
	// no credit.
	Tiers map[domain.FilingStatus][]SaversTier
}

// FTCRules parameterizes the foreign tax credit.
type FTCRules struct {
	// SimplifiedElectionLimit is the maximum foreign tax for which the
	// full-credit election (no limitation computation) is allowed.
	SimplifiedElectionLimit money.Cents
}

// DependentCareRules parameterizes the child and dependent care credit.
type DependentCareRules struct {
	MaxRate        decimal.Decimal
	MinRate        decimal.Decimal
	RateStepAGI    money.Cents
	RateStep       decimal.Decimal
	RatePhaseStart money.Cents
	ExpenseCapOne  money.Cents
	ExpenseCapTwo  money.Cents
}

// FederalForYear returns the immutable federal rule set for a tax year.
func FederalForYear(year int) (*FederalRules, error) {
	fr, ok := federalByYear[year]
	if !ok {
		return nil, &ErrUnsupportedYear{Year: year}
	}
	return fr, nil
}

// StatesForYear returns the state rule specs for a tax year, keyed by
// two-letter state code.
func StatesForYear(year int) (map[string]*StateSpec, error) {
	ss, ok := statesByYear[year]
	if !ok {
		return nil, &ErrUnsupportedYear{Year: year}
	}
	return ss, nil
}

// SupportedYears lists the years rule tables exist for.
func SupportedYears() []int {
	years := make([]int, 0, len(federalByYear))
	for y := range federalByYear {
		years = append(years, y)
	}
	return years
}

var federalByYear = map[int]*FederalRules{}
var statesByYear = map[int]map[string]*StateSpec{}

var allStatuses = []domain.FilingStatus{
	domain.Single,
	domain.MarriedFilingJointly,
	domain.MarriedFilingSeparate,
	domain.HeadOfHousehold,
}

// registerFederal validates and installs a federal rule set. Invalid rule
// data is a programming error: fail loudly at init, never compute with it.
func registerFederal(fr *FederalRules) {
	for _, fs := range allStatuses {
		table, ok := fr.Brackets[fs]
		if !ok {
			panic(fmt.Sprintf("rules: year %d missing brackets for %s", fr.Year, fs))
		}
		if err := table.Validate(); err != nil {
			panic(fmt.Sprintf("rules: year %d brackets for %s: %v", fr.Year, fs, err))
		}
		if _, ok := fr.StandardDeduction[fs]; !ok {
			panic(fmt.Sprintf("rules: year %d missing standard deduction for %s", fr.Year, fs))
		}
		if err := fr.AMT.Brackets(fs).Validate(); err != nil {
			panic(fmt.Sprintf("rules: year %d AMT brackets for %s: %v", fr.Year, fs, err))
		}
	}
	federalByYear[fr.Year] = fr
}

// registerStates validates and installs a year's state specs.
func registerStates(year int, specs []*StateSpec) {
	byCode := make(map[string]*StateSpec, len(specs))
	for _, s := range specs {
		if err := s.validate(); err != nil {
			panic(fmt.Sprintf("rules: year %d state %s: %v", year, s.Code, err))
		}
		if _, dup := byCode[s.Code]; dup {
			panic(fmt.Sprintf("rules: year %d duplicate state %s", year, s.Code))
		}
		byCode[s.Code] = s
	}
	statesByYear[year] = byCode
}
