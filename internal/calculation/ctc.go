package calculation

import (
	"github.com/rgehrsitz/taxengine/internal/brackets"
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
)

// calculateChildTaxCredit runs the child tax credit / credit for other
// dependents worksheet. The combined credit phases out in $1,000 steps of
// AGI over the status threshold. The portion of the per-child credit the
// liability cannot absorb becomes the refundable additional child tax
// credit, limited per child and by 15% of earned income over the floor.
func calculateChildTaxCredit(ctx *CreditContext, remainingLiability money.Cents) (ctc, actc domain.CreditResult) {
	ctc = domain.CreditResult{Name: "child_tax_credit"}
	actc = domain.CreditResult{Name: "additional_child_tax_credit", IsRefundable: true}

	r := ctx.Rules.CTC
	children := int64(ctx.Input.QualifyingChildren)
	relatives := int64(ctx.Input.QualifyingRelatives)
	if children == 0 && relatives == 0 {
		return ctc, actc
	}

	base := money.Cents(children)*r.PerChild + money.Cents(relatives)*r.PerDependent
	excess := (ctx.AGI - r.PhaseoutThreshold[ctx.Input.FilingStatus]).NonNegative()
	allowed := brackets.SteppedPhaseout(base, excess, r.PhaseoutStep, r.ReductionPerStep)
	if allowed < base {
		ctc.Notes = append(ctc.Notes, "phased out by AGI over threshold")
	}
	ctc.Amount = allowed

	// The refundable portion covers only the child part of whatever the
	// liability cannot absorb.
	unused := (allowed - remainingLiability).NonNegative()
	if unused == 0 || children == 0 {
		return ctc, actc
	}
	childPortion := money.Min(unused, money.Cents(children)*r.PerChild)
	perChildCap := money.Cents(children) * r.RefundableLimitPerChild
	earnedCap := (ctx.EarnedIncome - r.EarnedIncomeFloor).NonNegative().MulRate(r.RefundableRate)
	actc.Amount = money.Min(childPortion, money.Min(perChildCap, earnedCap))
	return ctc, actc
}
