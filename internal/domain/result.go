package domain

import (
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/shopspring/decimal"
)

// DeductionType records which deduction the pipeline actually used.
type DeductionType string

const (
	DeductionStandard DeductionType = "standard"
	DeductionItemized DeductionType = "itemized"
)

// FederalResult is the fully itemized outcome of the federal pipeline. It
// is produced once, never mutated, and passed by value into state
// computations.
type FederalResult struct {
	Year         int          `yaml:"year" json:"year"`
	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`
	Dependents   int          `yaml:"dependents" json:"dependents"`

	GrossIncome      money.Cents   `yaml:"gross_income" json:"gross_income"`
	TotalAdjustments money.Cents   `yaml:"total_adjustments" json:"total_adjustments"`
	AGI              money.Cents   `yaml:"agi" json:"agi"`
	DeductionUsed    money.Cents   `yaml:"deduction_used" json:"deduction_used"`
	DeductionType    DeductionType `yaml:"deduction_type" json:"deduction_type"`
	ItemizedTotal    money.Cents   `yaml:"itemized_total" json:"itemized_total"`
	TaxableIncome    money.Cents   `yaml:"taxable_income" json:"taxable_income"`

	OrdinaryTax         money.Cents `yaml:"ordinary_tax" json:"ordinary_tax"`
	PreferentialRateTax money.Cents `yaml:"preferential_rate_tax" json:"preferential_rate_tax"`
	RegularTax          money.Cents `yaml:"regular_tax" json:"regular_tax"`

	SelfEmploymentTax      money.Cents `yaml:"self_employment_tax" json:"self_employment_tax"`
	AdditionalMedicareTax  money.Cents `yaml:"additional_medicare_tax" json:"additional_medicare_tax"`
	NetInvestmentIncomeTax money.Cents `yaml:"net_investment_income_tax" json:"net_investment_income_tax"`

	AMT AMTCalculationDetails `yaml:"amt" json:"amt"`

	TaxBeforeCredits money.Cents `yaml:"tax_before_credits" json:"tax_before_credits"`

	Credits                  []CreditResult `yaml:"credits" json:"credits"`
	NonRefundableCreditsUsed money.Cents    `yaml:"nonrefundable_credits_used" json:"nonrefundable_credits_used"`
	RefundableCredits        money.Cents    `yaml:"refundable_credits" json:"refundable_credits"`

	TotalTax      money.Cents     `yaml:"total_tax" json:"total_tax"`
	EffectiveRate decimal.Decimal `yaml:"effective_rate" json:"effective_rate"`
	MarginalRate  decimal.Decimal `yaml:"marginal_rate" json:"marginal_rate"`

	TotalPayments money.Cents `yaml:"total_payments" json:"total_payments"`
	// RefundOrOwed is payments minus final tax: positive means a refund.
	RefundOrOwed money.Cents `yaml:"refund_or_owed" json:"refund_or_owed"`
}

// AMTCalculationDetails itemizes the parallel AMT computation.
type AMTCalculationDetails struct {
	Adjustments money.Cents `yaml:"adjustments" json:"adjustments"`
	Preferences money.Cents `yaml:"preferences" json:"preferences"`
	AMTI        money.Cents `yaml:"amti" json:"amti"`

	ExemptionBase      money.Cents `yaml:"exemption_base" json:"exemption_base"`
	ExemptionReduction money.Cents `yaml:"exemption_reduction" json:"exemption_reduction"`
	ExemptionAllowed   money.Cents `yaml:"exemption_allowed" json:"exemption_allowed"`

	AMTTaxableIncome    money.Cents `yaml:"amt_taxable_income" json:"amt_taxable_income"`
	TentativeMinimumTax money.Cents `yaml:"tentative_minimum_tax" json:"tentative_minimum_tax"`
	RegularTaxCompared  money.Cents `yaml:"regular_tax_compared" json:"regular_tax_compared"`

	AMTBeforeCredit     money.Cents `yaml:"amt_before_credit" json:"amt_before_credit"`
	PriorYearCreditUsed money.Cents `yaml:"prior_year_credit_used" json:"prior_year_credit_used"`
	AMT                 money.Cents `yaml:"amt" json:"amt"`

	// CreditCarryforward is the portion of this year's AMT attributable to
	// timing-difference items, available as next year's minimum tax credit.
	CreditCarryforward money.Cents `yaml:"credit_carryforward" json:"credit_carryforward"`
}

// CreditResult is the outcome of one credit calculator.
type CreditResult struct {
	Name         string      `yaml:"name" json:"name"`
	Amount       money.Cents `yaml:"amount" json:"amount"`
	IsRefundable bool        `yaml:"is_refundable" json:"is_refundable"`
	Carryforward money.Cents `yaml:"carryforward,omitempty" json:"carryforward,omitempty"`
	Notes        []string    `yaml:"notes,omitempty" json:"notes,omitempty"`
}

// StateRegime names the behavioral family a state module belongs to.
type StateRegime string

const (
	RegimeNoIncomeTax StateRegime = "no_income_tax"
	RegimeFlat        StateRegime = "flat"
	RegimeProgressive StateRegime = "progressive"
	RegimeFlatSurtax  StateRegime = "flat_with_surtax"
)

// StateResult is the uniform outcome shape every state module returns,
// regardless of internal rule complexity.
type StateResult struct {
	StateCode string      `yaml:"state_code" json:"state_code"`
	StateName string      `yaml:"state_name" json:"state_name"`
	Regime    StateRegime `yaml:"regime" json:"regime"`

	StateAGI           money.Cents `yaml:"state_agi" json:"state_agi"`
	StateTaxableIncome money.Cents `yaml:"state_taxable_income" json:"state_taxable_income"`
	StateTax           money.Cents `yaml:"state_tax" json:"state_tax"`
	LocalTax           money.Cents `yaml:"local_tax" json:"local_tax"`
	Surtax             money.Cents `yaml:"surtax" json:"surtax"`
	CreditsApplied     money.Cents `yaml:"credits_applied" json:"credits_applied"`

	TotalPayments money.Cents `yaml:"total_payments" json:"total_payments"`
	// RefundOrOwed is payments minus liability: positive means a refund.
	RefundOrOwed money.Cents `yaml:"refund_or_owed" json:"refund_or_owed"`

	Notes []string `yaml:"notes,omitempty" json:"notes,omitempty"`
}
