package calculation

import (
	"fmt"

	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
)

// calculateForeignTaxCredit computes the foreign tax credit, either under
// the simplified election (full credit, no limitation) or the full
// per-category limitation:
//
//	limitation = US tax before credits x (category foreign income / total taxable income)
//	credit     = min(taxes paid in category + prior-year carryover, limitation)
//
// General and passive categories are limited independently, then summed.
// Unused foreign tax carries forward, bounded by the remaining limitation
// room. Foreign losses floor category income at zero.
func calculateForeignTaxCredit(ctx *CreditContext) domain.CreditResult {
	result := domain.CreditResult{Name: "foreign_tax_credit"}
	foreign := ctx.Input.Foreign
	if len(foreign.Sources) == 0 && len(foreign.PriorYearCarryover) == 0 {
		return result
	}

	type categoryTotals struct {
		income money.Cents
		paid   money.Cents
	}
	byCategory := map[domain.ForeignCategory]*categoryTotals{
		domain.ForeignGeneral: {},
		domain.ForeignPassive: {},
	}
	var totalPaid money.Cents
	allPassive := true
	for _, src := range foreign.Sources {
		totals := byCategory[src.Category]
		totals.income += src.Income.NonNegative()
		totals.paid += src.ForeignTaxPaid
		totalPaid += src.ForeignTaxPaid
		if src.Category != domain.ForeignPassive {
			allPassive = false
		}
	}

	if foreign.SimplifiedElection {
		if totalPaid <= ctx.Rules.FTC.SimplifiedElectionLimit && allPassive {
			result.Amount = totalPaid
			result.Notes = append(result.Notes, "simplified election: full credit without limitation")
			return result
		}
		result.Notes = append(result.Notes,
			"simplified election unavailable: requires passive-only income within the foreign tax threshold")
	}

	if ctx.TaxableIncome <= 0 {
		// No US tax to offset; everything carries forward.
		var carry money.Cents
		for cat, totals := range byCategory {
			carry += totals.paid + foreign.PriorYearCarryover[cat]
		}
		result.Carryforward = carry
		return result
	}

	for _, cat := range []domain.ForeignCategory{domain.ForeignGeneral, domain.ForeignPassive} {
		totals := byCategory[cat]
		available := totals.paid + foreign.PriorYearCarryover[cat]
		if available == 0 {
			continue
		}
		limitation := ctx.IncomeTaxBeforeCredits.MulFrac(totals.income, ctx.TaxableIncome)
		credit := money.Min(available, limitation)
		result.Amount += credit
		result.Carryforward += available - credit
		if credit < available {
			result.Notes = append(result.Notes,
				fmt.Sprintf("%s category limited to %s, %s carried forward", cat, credit, available-credit))
		}
	}
	return result
}
