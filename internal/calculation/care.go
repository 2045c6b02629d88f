package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
)

var decimalZero = decimal.Zero

// calculateDependentCareCredit computes the child and dependent care
// credit: qualifying expenses capped by the number of qualifying persons
// and by earned income, multiplied by a rate that steps down from 35% to
// 20% as AGI rises.
func calculateDependentCareCredit(ctx *CreditContext) domain.CreditResult {
	result := domain.CreditResult{Name: "dependent_care_credit"}

	care := ctx.Input.Care
	if care.Expenses == 0 || care.QualifyingPersons == 0 {
		return result
	}
	r := ctx.Rules.Care

	cap := r.ExpenseCapOne
	if care.QualifyingPersons >= 2 {
		cap = r.ExpenseCapTwo
	}
	expenses := money.Min(care.Expenses, cap)
	expenses = money.Min(expenses, ctx.EarnedIncome.NonNegative())
	if expenses == 0 {
		return result
	}

	creditRate := r.MaxRate
	if excess := ctx.AGI - r.RatePhaseStart; excess > 0 {
		steps := int64(excess) / int64(r.RateStepAGI)
		if int64(excess)%int64(r.RateStepAGI) != 0 {
			steps++
		}
		creditRate = creditRate.Sub(r.RateStep.Mul(decimal.NewFromInt(steps)))
		if creditRate.LessThan(r.MinRate) {
			creditRate = r.MinRate
		}
	}

	result.Amount = expenses.MulRate(creditRate)
	return result
}
