// Package domain defines the value types exchanged with the tax engine:
// the taxpayer input record, federal and state results, and their
// validation. Everything here is plain data with yaml/json tags; no tax
// law lives in this package.
package domain

import (
	"github.com/rgehrsitz/taxengine/internal/money"
)

// FilingStatus is the closed set of federal filing statuses. It selects
// the row of every rule table that applies.
type FilingStatus string

const (
	Single                FilingStatus = "single"
	MarriedFilingJointly  FilingStatus = "married_filing_jointly"
	MarriedFilingSeparate FilingStatus = "married_filing_separately"
	HeadOfHousehold       FilingStatus = "head_of_household"
)

// Valid reports whether the status is one of the four recognized values.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case Single, MarriedFilingJointly, MarriedFilingSeparate, HeadOfHousehold:
		return true
	}
	return false
}

// IsJoint reports whether the return covers two filers.
func (fs FilingStatus) IsJoint() bool {
	return fs == MarriedFilingJointly
}

// TaxpayerInput is the complete description of one tax year for one
// return. All monetary fields are integer cents; a zero value means the
// item is absent, never an error.
type TaxpayerInput struct {
	Year         int          `yaml:"year" json:"year" validate:"required"`
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status" validate:"required"`

	QualifyingChildren  int `yaml:"qualifying_children" json:"qualifying_children" validate:"gte=0"`
	QualifyingRelatives int `yaml:"qualifying_relatives" json:"qualifying_relatives" validate:"gte=0"`

	Income      Income      `yaml:"income" json:"income"`
	Adjustments Adjustments `yaml:"adjustments" json:"adjustments"`
	Itemized    Itemized    `yaml:"itemized" json:"itemized"`
	Payments    Payments    `yaml:"payments" json:"payments"`

	AMTItems   AMTItems              `yaml:"amt_items" json:"amt_items"`
	Foreign    ForeignIncome         `yaml:"foreign" json:"foreign"`
	Retirement RetirementSaverInput  `yaml:"retirement" json:"retirement"`
	Education  []EducationExpense    `yaml:"education" json:"education"`
	Care       DependentCareExpenses `yaml:"dependent_care" json:"dependent_care"`

	State *StateInput `yaml:"state,omitempty" json:"state,omitempty"`
}

// Income holds the per-category income amounts that aggregate into gross
// income. Qualified dividends must not exceed ordinary dividends; qualified
// dividends and net long-term gains receive preferential rates.
type Income struct {
	Wages              money.Cents `yaml:"wages" json:"wages" validate:"gte=0"`
	Interest           money.Cents `yaml:"interest" json:"interest" validate:"gte=0"`
	OrdinaryDividends  money.Cents `yaml:"ordinary_dividends" json:"ordinary_dividends" validate:"gte=0"`
	QualifiedDividends money.Cents `yaml:"qualified_dividends" json:"qualified_dividends" validate:"gte=0"`
	ShortTermGains     money.Cents `yaml:"short_term_gains" json:"short_term_gains"`
	LongTermGains      money.Cents `yaml:"long_term_gains" json:"long_term_gains"`
	BusinessNetIncome  money.Cents `yaml:"business_net_income" json:"business_net_income"`
	PassthroughIncome  money.Cents `yaml:"passthrough_income" json:"passthrough_income"`
	OtherIncome        money.Cents `yaml:"other_income" json:"other_income"`
}

// Adjustments are the above-the-line subtractions from gross income. The
// deductible half of self-employment tax is computed by the pipeline, not
// supplied here.
type Adjustments struct {
	IRAContributions    money.Cents `yaml:"ira_contributions" json:"ira_contributions" validate:"gte=0"`
	HSAContributions    money.Cents `yaml:"hsa_contributions" json:"hsa_contributions" validate:"gte=0"`
	StudentLoanInterest money.Cents `yaml:"student_loan_interest" json:"student_loan_interest" validate:"gte=0"`
	EducatorExpenses    money.Cents `yaml:"educator_expenses" json:"educator_expenses" validate:"gte=0"`
	OtherAdjustments    money.Cents `yaml:"other_adjustments" json:"other_adjustments" validate:"gte=0"`
}

// Itemized holds itemized-deduction components. The state/local tax
// components are capped jointly before summing (the SALT cap).
type Itemized struct {
	StateLocalIncomeTax   money.Cents `yaml:"state_local_income_tax" json:"state_local_income_tax" validate:"gte=0"`
	StateLocalPropertyTax money.Cents `yaml:"state_local_property_tax" json:"state_local_property_tax" validate:"gte=0"`
	MortgageInterest      money.Cents `yaml:"mortgage_interest" json:"mortgage_interest" validate:"gte=0"`
	Charitable            money.Cents `yaml:"charitable" json:"charitable" validate:"gte=0"`
	MedicalExpenses       money.Cents `yaml:"medical_expenses" json:"medical_expenses" validate:"gte=0"`
	OtherItemized         money.Cents `yaml:"other_itemized" json:"other_itemized" validate:"gte=0"`
}

// Payments are amounts already remitted toward the year's liability.
type Payments struct {
	Withholding       money.Cents `yaml:"withholding" json:"withholding" validate:"gte=0"`
	EstimatedPayments money.Cents `yaml:"estimated_payments" json:"estimated_payments" validate:"gte=0"`
}

// AMTItems carries the AMT-specific adjustment and preference amounts.
// Adjustment items are signed (timing differences can run either way);
// preference items are add-only.
type AMTItems struct {
	ISOExerciseSpread            money.Cents `yaml:"iso_exercise_spread" json:"iso_exercise_spread" validate:"gte=0"`
	DepreciationAdjustment       money.Cents `yaml:"depreciation_adjustment" json:"depreciation_adjustment"`
	PassiveActivityAdjustment    money.Cents `yaml:"passive_activity_adjustment" json:"passive_activity_adjustment"`
	InvestmentInterestAdjustment money.Cents `yaml:"investment_interest_adjustment" json:"investment_interest_adjustment"`
	PrivateActivityBondInterest  money.Cents `yaml:"private_activity_bond_interest" json:"private_activity_bond_interest" validate:"gte=0"`
	ExcessDepletion              money.Cents `yaml:"excess_depletion" json:"excess_depletion" validate:"gte=0"`
	PriorYearMinimumTaxCredit    money.Cents `yaml:"prior_year_minimum_tax_credit" json:"prior_year_minimum_tax_credit" validate:"gte=0"`
}

// ForeignCategory is the foreign tax credit income category. General and
// passive category income are limited independently.
type ForeignCategory string

const (
	ForeignGeneral ForeignCategory = "general"
	ForeignPassive ForeignCategory = "passive"
)

// ForeignIncomeSource is one foreign-source income item with the foreign
// tax paid on it.
type ForeignIncomeSource struct {
	Category       ForeignCategory `yaml:"category" json:"category"`
	Income         money.Cents     `yaml:"income" json:"income"`
	ForeignTaxPaid money.Cents     `yaml:"foreign_tax_paid" json:"foreign_tax_paid" validate:"gte=0"`
}

// ForeignIncome aggregates foreign-source items and the foreign tax credit
// election/carryover state.
type ForeignIncome struct {
	Sources            []ForeignIncomeSource           `yaml:"sources" json:"sources"`
	SimplifiedElection bool                            `yaml:"simplified_election" json:"simplified_election"`
	PriorYearCarryover map[ForeignCategory]money.Cents `yaml:"prior_year_carryover" json:"prior_year_carryover"`
}

// RetirementSaverInput holds the retirement-contribution amounts that feed
// the saver's credit. Distributions during the testing window reduce the
// eligible contribution.
type RetirementSaverInput struct {
	ContributionsSelf   money.Cents `yaml:"contributions_self" json:"contributions_self" validate:"gte=0"`
	ContributionsSpouse money.Cents `yaml:"contributions_spouse" json:"contributions_spouse" validate:"gte=0"`
	RecentDistributions money.Cents `yaml:"recent_distributions" json:"recent_distributions" validate:"gte=0"`
}

// EducationExpense is one student's qualified education spending.
type EducationExpense struct {
	Student           string      `yaml:"student" json:"student"`
	QualifiedExpenses money.Cents `yaml:"qualified_expenses" json:"qualified_expenses" validate:"gte=0"`
	AOTCEligible      bool        `yaml:"aotc_eligible" json:"aotc_eligible"`
}

// DependentCareExpenses feeds the child and dependent care credit.
type DependentCareExpenses struct {
	Expenses          money.Cents `yaml:"expenses" json:"expenses" validate:"gte=0"`
	QualifyingPersons int         `yaml:"qualifying_persons" json:"qualifying_persons" validate:"gte=0"`
}

// StateInput selects a state and carries state-specific return data.
type StateInput struct {
	StateCode         string      `yaml:"state_code" json:"state_code" validate:"required,len=2"`
	Additions         money.Cents `yaml:"additions" json:"additions" validate:"gte=0"`
	Subtractions      money.Cents `yaml:"subtractions" json:"subtractions" validate:"gte=0"`
	Withholding       money.Cents `yaml:"withholding" json:"withholding" validate:"gte=0"`
	EstimatedPayments money.Cents `yaml:"estimated_payments" json:"estimated_payments" validate:"gte=0"`
	Credits           money.Cents `yaml:"credits" json:"credits" validate:"gte=0"`
	// CountyRate is the local income-tax rate for states that levy one
	// (Maryland counties). Expressed as a decimal string, e.g. "0.0320";
	// empty uses the state default.
	CountyRate string `yaml:"county_rate,omitempty" json:"county_rate,omitempty"`
}
