package calculation

import (
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/shopspring/decimal"
)

// calculateEducationCredits computes the American opportunity credit (per
// eligible student, 40% refundable) and the lifetime learning credit (20%
// of pooled non-AOTC expenses). Both share one MAGI phase-out range; the
// ratio is applied to each credit after the per-student math.
func calculateEducationCredits(ctx *CreditContext) (nonRefundable, refundable domain.CreditResult) {
	nonRefundable = domain.CreditResult{Name: "education_credits"}
	refundable = domain.CreditResult{Name: "education_credits_refundable", IsRefundable: true}

	if len(ctx.Input.Education) == 0 {
		return nonRefundable, refundable
	}
	r := ctx.Rules.Education
	fs := ctx.Input.FilingStatus

	ratio := phaseoutRatio(ctx.AGI, r.PhaseoutStart[fs], r.PhaseoutEnd[fs])
	if ratio.IsZero() {
		nonRefundable.Notes = append(nonRefundable.Notes, "phased out by MAGI")
		return nonRefundable, refundable
	}

	var aotcTotal money.Cents
	var llcExpenses money.Cents
	for _, e := range ctx.Input.Education {
		if e.AOTCEligible {
			full := money.Min(e.QualifiedExpenses, r.AOTCFullExpenseCap)
			partial := money.Min((e.QualifiedExpenses - r.AOTCFullExpenseCap).NonNegative(), r.AOTCPartialExpenseCap)
			aotcTotal += full + partial.MulRate(r.AOTCPartialRate)
		} else {
			llcExpenses += e.QualifiedExpenses
		}
	}
	aotc := aotcTotal.MulRate(ratio)
	llc := money.Min(llcExpenses, r.LLCExpenseCap).MulRate(r.LLCRate).MulRate(ratio)

	refundable.Amount = aotc.MulRate(r.AOTCRefundableShare)
	nonRefundable.Amount = aotc - refundable.Amount + llc
	if ratio.LessThan(decimal.NewFromInt(1)) {
		nonRefundable.Notes = append(nonRefundable.Notes, "partially phased out by MAGI")
	}
	return nonRefundable, refundable
}

// phaseoutRatio returns the surviving fraction of a credit whose benefit
// phases out linearly between start and end MAGI, clamped to [0, 1].
func phaseoutRatio(magi, start, end money.Cents) decimal.Decimal {
	if magi <= start {
		return decimal.NewFromInt(1)
	}
	if magi >= end || end <= start {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(end - magi)).Div(decimal.NewFromInt(int64(end - start)))
}
