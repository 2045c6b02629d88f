package calculation

import (
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
)

// calculateEarnedIncomeCredit computes the refundable earned income
// credit: phase-in at the per-children rate up to the maximum, a plateau,
// then a linear phase-out of the greater of AGI and earned income past the
// status-dependent start. Investment income above the limit disqualifies
// entirely, as does filing separately.
func calculateEarnedIncomeCredit(ctx *CreditContext) domain.CreditResult {
	result := domain.CreditResult{Name: "earned_income_credit", IsRefundable: true}

	if ctx.Input.FilingStatus == domain.MarriedFilingSeparate {
		result.Notes = append(result.Notes, "not available to separate filers")
		return result
	}
	if ctx.EarnedIncome <= 0 {
		return result
	}
	r := ctx.Rules.EIC
	if ctx.InvestmentIncome > r.InvestmentIncomeLimit {
		result.Notes = append(result.Notes, "disqualified: investment income over limit")
		return result
	}

	children := ctx.Input.QualifyingChildren
	if children > 3 {
		children = 3
	}
	params := r.ByChildren[children]

	phaseIn := money.Min(ctx.EarnedIncome, params.EarnedIncomeAmount).MulRate(params.PhaseInRate)
	credit := money.Min(phaseIn, params.MaxCredit)

	phaseoutStart := params.PhaseoutStart
	if ctx.Input.FilingStatus.IsJoint() {
		phaseoutStart = params.PhaseoutStartJoint
	}
	phaseoutIncome := money.Max(ctx.AGI, ctx.EarnedIncome)
	if excess := phaseoutIncome - phaseoutStart; excess > 0 {
		credit = (credit - excess.MulRate(params.PhaseoutRate)).NonNegative()
	}

	result.Amount = credit
	return result
}
