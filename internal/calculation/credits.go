package calculation

import (
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/rgehrsitz/taxengine/internal/rules"
)

// CreditContext is the read-only aggregated-income context every credit
// calculator consumes. Each calculator is a pure function of this context.
type CreditContext struct {
	Rules *rules.FederalRules
	Input *domain.TaxpayerInput

	AGI              money.Cents
	TaxableIncome    money.Cents
	EarnedIncome     money.Cents
	InvestmentIncome money.Cents

	// IncomeTaxBeforeCredits is the regular tax plus AMT, the portion of
	// liability nonrefundable credits may offset.
	IncomeTaxBeforeCredits money.Cents
}

// appliedCredits is the outcome of running the ordered credit sequence.
type appliedCredits struct {
	Results           []domain.CreditResult
	NonRefundableUsed money.Cents
	Refundable        money.Cents
}

// applyCredits runs every credit calculator in the fixed precedence order:
// foreign tax credit, child/dependent credits, education, saver's, other
// nonrefundable, refundable last. Ordering matters because nonrefundable
// credits cannot push liability below zero; a credit evaluated late may be
// wasted where an earlier one would carry forward.
func applyCredits(ctx *CreditContext, trace *Trace) appliedCredits {
	var out appliedCredits
	remaining := ctx.IncomeTaxBeforeCredits

	useNonRefundable := func(r domain.CreditResult) {
		applied := money.Min(r.Amount, remaining)
		if applied != r.Amount {
			r.Notes = append(r.Notes, "limited by remaining income tax")
		}
		r.Amount = applied
		remaining -= applied
		out.NonRefundableUsed += applied
		out.Results = append(out.Results, r)
		trace.Recordf("credit."+r.Name, applied, "%s applied (nonrefundable)", r.Name)
	}

	// 1. Foreign tax credit.
	useNonRefundable(calculateForeignTaxCredit(ctx))

	// 2. Child tax credit + credit for other dependents. The refundable
	// additional child tax credit depends on how much of the child portion
	// the liability could absorb, so both halves come from one worksheet.
	ctc, actc := calculateChildTaxCredit(ctx, remaining)
	useNonRefundable(ctc)

	// 3. Dependent care credit (nonrefundable).
	useNonRefundable(calculateDependentCareCredit(ctx))

	// 4. Education credits; the AOTC's 40% refundable share bypasses the
	// liability limit.
	educationNonRef, educationRef := calculateEducationCredits(ctx)
	useNonRefundable(educationNonRef)

	// 5. Saver's credit: strictly nonrefundable, no carryforward.
	useNonRefundable(calculateSaversCredit(ctx))

	// Refundable credits last.
	for _, r := range []domain.CreditResult{
		calculateEarnedIncomeCredit(ctx),
		actc,
		educationRef,
	} {
		out.Refundable += r.Amount
		out.Results = append(out.Results, r)
		trace.Recordf("credit."+r.Name, r.Amount, "%s (refundable)", r.Name)
	}

	return out
}
