package calculation

import (
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
)

// calculateSaversCredit computes the retirement savings contributions
// credit. AGI falls into a discrete 50/20/10/0% tier per filing status;
// the eligible contribution is capped per person and reduced by
// distributions taken during the testing window. Strictly nonrefundable,
// no carryforward.
func calculateSaversCredit(ctx *CreditContext) domain.CreditResult {
	result := domain.CreditResult{Name: "savers_credit"}

	in := ctx.Input.Retirement
	if in.ContributionsSelf == 0 && in.ContributionsSpouse == 0 {
		return result
	}

	r := ctx.Rules.Savers
	var creditRate = decimalZero
	for _, tier := range r.Tiers[ctx.Input.FilingStatus] {
		if ctx.AGI <= tier.AGILimit {
			creditRate = tier.Rate
			break
		}
	}
	if creditRate.IsZero() {
		result.Notes = append(result.Notes, "AGI over the top tier limit")
		return result
	}

	// Distributions during the testing window reduce contributions before
	// the per-person cap applies.
	distributions := in.RecentDistributions
	eligible := func(contributions money.Cents) money.Cents {
		reduced := (contributions - distributions).NonNegative()
		distributions = (distributions - contributions).NonNegative()
		return money.Min(reduced, r.ContributionCapPerPerson)
	}

	total := eligible(in.ContributionsSelf)
	if ctx.Input.FilingStatus.IsJoint() {
		total += eligible(in.ContributionsSpouse)
	}
	result.Amount = total.MulRate(creditRate)
	return result
}
