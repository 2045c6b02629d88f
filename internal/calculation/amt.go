package calculation

import (
	"github.com/rgehrsitz/taxengine/internal/brackets"
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/rgehrsitz/taxengine/internal/rules"
)

// AMTCalculator runs the parallel alternative-minimum-tax computation and
// reconciles it against the regular-tax result.
//
// Adjustment and preference items are split into two classes:
//
//   - exclusion items (standard-deduction addback, state/local tax
//     addback, private-activity-bond interest, excess depletion) represent
//     permanent differences and never generate a minimum tax credit;
//   - timing items (ISO spread, depreciation, passive-activity and
//     investment-interest differences) reverse in later years, and the AMT
//     they cause carries forward as next year's credit.
//
// The carryforward is the AMT computed with all items minus the AMT
// recomputed with exclusion items only, floored at zero.
type AMTCalculator struct {
	Rules rules.AMTRules
}

// amtInputs captures what the sub-engine needs from the main pipeline.
type amtInputs struct {
	TaxableIncome money.Cents
	RegularTax    money.Cents

	// StandardDeductionUsed is the deduction amount when the standard
	// deduction was chosen, zero when itemizing.
	StandardDeductionUsed money.Cents
	// SALTClaimed is the state/local tax deduction actually claimed when
	// itemizing, zero otherwise.
	SALTClaimed money.Cents

	Items domain.AMTItems
}

// timingAdjustments sums the signed timing-difference items.
func timingAdjustments(items domain.AMTItems) money.Cents {
	return money.Sum(
		items.ISOExerciseSpread,
		items.DepreciationAdjustment,
		items.PassiveActivityAdjustment,
		items.InvestmentInterestAdjustment,
	)
}

// exclusionItems sums the permanent-difference addbacks, excluding the
// deduction addbacks which depend on pipeline state.
func exclusionItems(items domain.AMTItems) money.Cents {
	return items.PrivateActivityBondInterest + items.ExcessDepletion
}

// Calculate produces the full AMT detail record.
func (c *AMTCalculator) Calculate(fs domain.FilingStatus, in amtInputs, trace *Trace) domain.AMTCalculationDetails {
	deductionAddbacks := in.StandardDeductionUsed + in.SALTClaimed
	timing := timingAdjustments(in.Items)
	preferences := exclusionItems(in.Items)

	adjustments := deductionAddbacks + timing
	amti := in.TaxableIncome + adjustments + preferences

	exemption, reduction := c.exemption(fs, amti)
	amtTaxable := (amti - exemption).NonNegative()
	tmt := c.bracketsFor(fs).Tax(amtTaxable)
	amtBeforeCredit := (tmt - in.RegularTax).NonNegative()

	creditUsed := money.Min(in.Items.PriorYearMinimumTaxCredit, amtBeforeCredit)
	amt := amtBeforeCredit - creditUsed

	carryforward := c.timingPortion(fs, in, amtBeforeCredit)

	trace.Record("amt.amti", "AMTI = taxable income + adjustments + preferences", amti, map[string]string{
		"taxable_income": in.TaxableIncome.String(),
		"adjustments":    adjustments.String(),
		"preferences":    preferences.String(),
	})
	trace.Recordf("amt.exemption", exemption, "AMT exemption after phase-out (reduced by %s)", reduction)
	trace.Recordf("amt.tmt", tmt, "tentative minimum tax on %s", amtTaxable)
	trace.Recordf("amt.owed", amt, "AMT = max(0, TMT - regular tax) - prior-year credit")

	return domain.AMTCalculationDetails{
		Adjustments:         adjustments,
		Preferences:         preferences,
		AMTI:                amti,
		ExemptionBase:       c.Rules.Exemption[fs],
		ExemptionReduction:  reduction,
		ExemptionAllowed:    exemption,
		AMTTaxableIncome:    amtTaxable,
		TentativeMinimumTax: tmt,
		RegularTaxCompared:  in.RegularTax,
		AMTBeforeCredit:     amtBeforeCredit,
		PriorYearCreditUsed: creditUsed,
		AMT:                 amt,
		CreditCarryforward:  carryforward,
	}
}

// exemption applies the 25%-of-excess phase-out, clamped to nonnegative.
func (c *AMTCalculator) exemption(fs domain.FilingStatus, amti money.Cents) (allowed, reduction money.Cents) {
	base := c.Rules.Exemption[fs]
	excess := (amti - c.Rules.PhaseoutThreshold[fs]).NonNegative()
	allowed = brackets.LinearPhaseout(base, excess, c.Rules.PhaseoutRate)
	return allowed, base - allowed
}

func (c *AMTCalculator) bracketsFor(fs domain.FilingStatus) brackets.Table {
	return c.Rules.Brackets(fs)
}

// timingPortion recomputes AMT with exclusion items only; the difference
// from the full AMT is the timing-attributable portion that becomes next
// year's minimum tax credit.
func (c *AMTCalculator) timingPortion(fs domain.FilingStatus, in amtInputs, fullAMT money.Cents) money.Cents {
	if fullAMT == 0 {
		return 0
	}
	exclusionAMTI := in.TaxableIncome +
		in.StandardDeductionUsed + in.SALTClaimed +
		exclusionItems(in.Items)

	exemption, _ := c.exemption(fs, exclusionAMTI)
	amtTaxable := (exclusionAMTI - exemption).NonNegative()
	tmt := c.bracketsFor(fs).Tax(amtTaxable)
	exclusionAMT := (tmt - in.RegularTax).NonNegative()

	return (fullAMT - exclusionAMT).NonNegative()
}
