package calculation

import (
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/rgehrsitz/taxengine/internal/rules"
	"github.com/shopspring/decimal"
)

// FederalCalculator runs the fixed linear federal pipeline: income
// aggregation, adjustments, deduction selection, taxable income, regular
// tax with the preferential-rate carve-out, specialized taxes, AMT,
// ordered credit application, final liability. Every stage is a pure
// function of its inputs; the calculator holds only immutable rule tables.
type FederalCalculator struct {
	Rules *rules.FederalRules

	SETax    *SelfEmploymentTaxCalculator
	Medicare *AdditionalMedicareTaxCalculator
	NIIT     *NetInvestmentIncomeTaxCalculator
	AMT      *AMTCalculator
}

// NewFederalCalculator builds a calculator over one year's rule set.
func NewFederalCalculator(fr *rules.FederalRules) *FederalCalculator {
	return &FederalCalculator{
		Rules:    fr,
		SETax:    &SelfEmploymentTaxCalculator{Rules: fr.SelfEmployment},
		Medicare: &AdditionalMedicareTaxCalculator{Rules: fr.AdditionalMedicare},
		NIIT:     &NetInvestmentIncomeTaxCalculator{Rules: fr.NIIT},
		AMT:      &AMTCalculator{Rules: fr.AMT},
	}
}

// capitalLossLimit is the maximum net capital loss deductible against
// other income ($1,500 for separate filers).
func capitalLossLimit(fs domain.FilingStatus) money.Cents {
	if fs == domain.MarriedFilingSeparate {
		return money.FromDollars(1500)
	}
	return money.FromDollars(3000)
}

// Calculate runs the whole pipeline. Input must already be validated;
// the pipeline is total over its valid domain and never errors.
func (fc *FederalCalculator) Calculate(in *domain.TaxpayerInput, trace *Trace) domain.FederalResult {
	fs := in.FilingStatus
	income := in.Income

	// Stage 1: aggregate income categories into gross income. Net capital
	// losses are deductible only up to the statutory limit.
	netCapital := income.ShortTermGains + income.LongTermGains
	if netCapital < 0 {
		netCapital = money.Max(netCapital, capitalLossLimit(fs).Neg())
	}
	grossIncome := money.Sum(
		income.Wages,
		income.Interest,
		income.OrdinaryDividends,
		netCapital,
		income.BusinessNetIncome,
		income.PassthroughIncome,
		income.OtherIncome,
	)
	trace.Recordf("federal.gross_income", grossIncome, "gross income across all categories")

	// Self-employment tax is computed before AGI because half of it is an
	// above-the-line deduction.
	seTax, halfSE := fc.SETax.Calculate(income.BusinessNetIncome, income.Wages)

	// Stage 2: above-the-line adjustments.
	adjustments := money.Sum(
		in.Adjustments.IRAContributions,
		in.Adjustments.HSAContributions,
		in.Adjustments.StudentLoanInterest,
		in.Adjustments.EducatorExpenses,
		in.Adjustments.OtherAdjustments,
		halfSE,
	)
	agi := grossIncome - adjustments
	trace.Recordf("federal.agi", agi, "AGI = gross income - adjustments (%s)", adjustments)

	// Stage 3: deduction selection. The SALT components are capped jointly
	// before summing; medical expenses count only above the AGI floor.
	saltClaimed := money.Min(
		in.Itemized.StateLocalIncomeTax+in.Itemized.StateLocalPropertyTax,
		fc.Rules.SALTCap[fs],
	)
	medicalFloor := agi.NonNegative().MulRate(decimal.NewFromFloat(0.075))
	medicalAllowed := (in.Itemized.MedicalExpenses - medicalFloor).NonNegative()
	itemizedTotal := money.Sum(
		saltClaimed,
		in.Itemized.MortgageInterest,
		in.Itemized.Charitable,
		medicalAllowed,
		in.Itemized.OtherItemized,
	)
	standardDeduction := fc.Rules.StandardDeduction[fs]

	deduction := standardDeduction
	deductionType := domain.DeductionStandard
	if itemizedTotal > standardDeduction {
		deduction = itemizedTotal
		deductionType = domain.DeductionItemized
	}
	trace.Recordf("federal.deduction", deduction, "%s deduction selected", deductionType)

	// Stage 4: taxable income.
	taxableIncome := (agi - deduction).NonNegative()

	// Stage 5: regular tax with the preferential-rate carve-out.
	preferential := fc.preferentialIncome(income)
	preferential = money.Min(preferential, taxableIncome)
	ordinaryTaxable := taxableIncome - preferential

	ordinaryTax := fc.Rules.Brackets[fs].Tax(ordinaryTaxable)
	preferentialTax := fc.stackedPreferentialTax(fs, ordinaryTaxable, preferential)
	regularTax := ordinaryTax + preferentialTax
	trace.Record("federal.regular_tax", "ordinary tax plus stacked preferential-rate tax", regularTax,
		map[string]string{
			"ordinary_taxable":    ordinaryTaxable.String(),
			"preferential_income": preferential.String(),
		})

	// Stage 6: specialized taxes, each computed independently.
	seNetEarnings := income.BusinessNetIncome.NonNegative().MulRate(fc.Rules.SelfEmployment.NetEarningsFactor)
	additionalMedicare := fc.Medicare.Calculate(fs, income.Wages, seNetEarnings)

	netInvestmentIncome := money.Sum(income.Interest, income.OrdinaryDividends, netCapital.NonNegative())
	niit := fc.NIIT.Calculate(fs, netInvestmentIncome, agi)

	var stdDedForAMT money.Cents
	var saltForAMT money.Cents
	if deductionType == domain.DeductionStandard {
		stdDedForAMT = deduction
	} else {
		saltForAMT = saltClaimed
	}
	amtDetail := fc.AMT.Calculate(fs, amtInputs{
		TaxableIncome:         taxableIncome,
		RegularTax:            regularTax,
		StandardDeductionUsed: stdDedForAMT,
		SALTClaimed:           saltForAMT,
		Items:                 in.AMTItems,
	}, trace)

	taxBeforeCredits := money.Sum(regularTax, seTax, additionalMedicare, niit, amtDetail.AMT)
	trace.Recordf("federal.tax_before_credits", taxBeforeCredits,
		"regular + SE + additional Medicare + NIIT + AMT")

	// Stage 7: ordered credit application.
	earnedIncome := income.Wages + (seNetEarnings - halfSE).NonNegative()
	creditCtx := &CreditContext{
		Rules:                  fc.Rules,
		Input:                  in,
		AGI:                    agi,
		TaxableIncome:          taxableIncome,
		EarnedIncome:           earnedIncome,
		InvestmentIncome:       netInvestmentIncome,
		IncomeTaxBeforeCredits: regularTax + amtDetail.AMT,
	}
	credits := applyCredits(creditCtx, trace)

	// Stage 8: final liability and balance. Nonrefundable credits stop at
	// zero; refundable credits act like payments.
	totalTax := (taxBeforeCredits - credits.NonRefundableUsed).NonNegative()
	totalPayments := in.Payments.Withholding + in.Payments.EstimatedPayments
	refundOrOwed := totalPayments + credits.Refundable - totalTax
	trace.Recordf("federal.total_tax", totalTax, "final liability after nonrefundable credits")
	trace.Recordf("federal.refund_or_owed", refundOrOwed, "payments plus refundable credits minus liability")

	return domain.FederalResult{
		Year:         in.Year,
		FilingStatus: fs,
		Dependents:   in.QualifyingChildren + in.QualifyingRelatives,

		GrossIncome:      grossIncome,
		TotalAdjustments: adjustments,
		AGI:              agi,
		DeductionUsed:    deduction,
		DeductionType:    deductionType,
		ItemizedTotal:    itemizedTotal,
		TaxableIncome:    taxableIncome,

		OrdinaryTax:         ordinaryTax,
		PreferentialRateTax: preferentialTax,
		RegularTax:          regularTax,

		SelfEmploymentTax:      seTax,
		AdditionalMedicareTax:  additionalMedicare,
		NetInvestmentIncomeTax: niit,

		AMT: amtDetail,

		TaxBeforeCredits: taxBeforeCredits,

		Credits:                  credits.Results,
		NonRefundableCreditsUsed: credits.NonRefundableUsed,
		RefundableCredits:        credits.Refundable,

		TotalTax:      totalTax,
		EffectiveRate: effectiveRate(totalTax, taxableIncome),
		MarginalRate:  fc.Rules.Brackets[fs].MarginalRate(taxableIncome),

		TotalPayments: totalPayments,
		RefundOrOwed:  refundOrOwed,
	}
}

// preferentialIncome is the income taxed at capital-gains rates: qualified
// dividends plus net long-term gain after short-term losses net against
// it, floored at zero.
func (fc *FederalCalculator) preferentialIncome(income domain.Income) money.Cents {
	netLT := income.LongTermGains
	if netLT > 0 && income.ShortTermGains < 0 {
		netLT += income.ShortTermGains
	}
	return income.QualifiedDividends + netLT.NonNegative()
}

var (
	fifteenPct = decimal.NewFromFloat(0.15)
	twentyPct  = decimal.NewFromFloat(0.20)
)

// stackedPreferentialTax taxes preferential income stacked on top of
// ordinary income: the slice falling below the 0% breakpoint is untaxed,
// the slice up to the 15% breakpoint is taxed at 15%, the rest at 20%.
// Each layer is rounded to cents independently.
func (fc *FederalCalculator) stackedPreferentialTax(fs domain.FilingStatus, ordinaryTaxable, preferential money.Cents) money.Cents {
	if preferential <= 0 {
		return 0
	}
	thresholds := fc.Rules.Preferential[fs]

	position := ordinaryTaxable
	remaining := preferential

	zeroLayer := money.Min(remaining, (thresholds.ZeroRateMax - position).NonNegative())
	position += zeroLayer
	remaining -= zeroLayer

	fifteenLayer := money.Min(remaining, (thresholds.FifteenRateMax - position).NonNegative())
	remaining -= fifteenLayer

	return fifteenLayer.MulRate(fifteenPct) + remaining.MulRate(twentyPct)
}

// effectiveRate is total tax over taxable income, zero when there is no
// taxable income.
func effectiveRate(totalTax, taxableIncome money.Cents) decimal.Decimal {
	if taxableIncome <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(totalTax)).
		Div(decimal.NewFromInt(int64(taxableIncome))).
		Round(4)
}
