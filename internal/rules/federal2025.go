package rules

import (
	"github.com/rgehrsitz/taxengine/internal/brackets"
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/shopspring/decimal"
)

// usd converts whole dollars to cents; table values are published in whole
// dollars.
func usd(dollars int64) money.Cents { return money.FromDollars(dollars) }

func rate(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func bracketTable(rungs ...brackets.Bracket) brackets.Table { return brackets.Table(rungs) }

func rung(thresholdDollars int64, r float64) brackets.Bracket {
	return brackets.Bracket{Threshold: usd(thresholdDollars), Rate: rate(r)}
}

func init() {
	registerFederal(federal2025())
	registerStates(2025, states2025())
}

// federal2025 is the 2025 federal rule set (Rev. Proc. 2024-40 amounts).
func federal2025() *FederalRules {
	return &FederalRules{
		Year: 2025,

		StandardDeduction: map[domain.FilingStatus]money.Cents{
			domain.Single:                usd(15000),
			domain.MarriedFilingJointly:  usd(30000),
			domain.MarriedFilingSeparate: usd(15000),
			domain.HeadOfHousehold:       usd(22500),
		},

		Brackets: map[domain.FilingStatus]brackets.Table{
			domain.Single: bracketTable(
				rung(0, 0.10),
				rung(11925, 0.12),
				rung(48475, 0.22),
				rung(103350, 0.24),
				rung(197300, 0.32),
				rung(250525, 0.35),
				rung(626350, 0.37),
			),
			domain.MarriedFilingJointly: bracketTable(
				rung(0, 0.10),
				rung(23850, 0.12),
				rung(96950, 0.22),
				rung(206700, 0.24),
				rung(394600, 0.32),
				rung(501050, 0.35),
				rung(751600, 0.37),
			),
			domain.MarriedFilingSeparate: bracketTable(
				rung(0, 0.10),
				rung(11925, 0.12),
				rung(48475, 0.22),
				rung(103350, 0.24),
				rung(197300, 0.32),
				rung(250525, 0.35),
				rung(375800, 0.37),
			),
			domain.HeadOfHousehold: bracketTable(
				rung(0, 0.10),
				rung(17000, 0.12),
				rung(64850, 0.22),
				rung(103350, 0.24),
				rung(197300, 0.32),
				rung(250500, 0.35),
				rung(626350, 0.37),
			),
		},

		Preferential: map[domain.FilingStatus]PreferentialThresholds{
			domain.Single:                {ZeroRateMax: usd(48350), FifteenRateMax: usd(533400)},
			domain.MarriedFilingJointly:  {ZeroRateMax: usd(96700), FifteenRateMax: usd(600050)},
			domain.MarriedFilingSeparate: {ZeroRateMax: usd(48350), FifteenRateMax: usd(300000)},
			domain.HeadOfHousehold:       {ZeroRateMax: usd(64750), FifteenRateMax: usd(566700)},
		},

		SALTCap: map[domain.FilingStatus]money.Cents{
			domain.Single:                usd(10000),
			domain.MarriedFilingJointly:  usd(10000),
			domain.MarriedFilingSeparate: usd(5000),
			domain.HeadOfHousehold:       usd(10000),
		},

		AMT: AMTRules{
			Exemption: map[domain.FilingStatus]money.Cents{
				domain.Single:                usd(88100),
				domain.MarriedFilingJointly:  usd(137000),
				domain.MarriedFilingSeparate: usd(68500),
				domain.HeadOfHousehold:       usd(88100),
			},
			PhaseoutThreshold: map[domain.FilingStatus]money.Cents{
				domain.Single:                usd(626350),
				domain.MarriedFilingJointly:  usd(1252700),
				domain.MarriedFilingSeparate: usd(626350),
				domain.HeadOfHousehold:       usd(626350),
			},
			PhaseoutRate: rate(0.25),
			LowRate:      rate(0.26),
			HighRate:     rate(0.28),
			HighRateBreakpoint: map[domain.FilingStatus]money.Cents{
				domain.Single:                usd(239100),
				domain.MarriedFilingJointly:  usd(239100),
				domain.MarriedFilingSeparate: usd(119550),
				domain.HeadOfHousehold:       usd(239100),
			},
		},

		SelfEmployment: SelfEmploymentRules{
			NetEarningsFactor:  rate(0.9235),
			SocialSecurityRate: rate(0.124),
			MedicareRate:       rate(0.029),
			WageBase:           usd(176100),
		},

		AdditionalMedicare: SurtaxRules{
			Rate: rate(0.009),
			Threshold: map[domain.FilingStatus]money.Cents{
				domain.Single:                usd(200000),
				domain.MarriedFilingJointly:  usd(250000),
				domain.MarriedFilingSeparate: usd(125000),
				domain.HeadOfHousehold:       usd(200000),
			},
		},

		NIIT: SurtaxRules{
			Rate: rate(0.038),
			Threshold: map[domain.FilingStatus]money.Cents{
				domain.Single:                usd(200000),
				domain.MarriedFilingJointly:  usd(250000),
				domain.MarriedFilingSeparate: usd(125000),
				domain.HeadOfHousehold:       usd(200000),
			},
		},

		EIC: EICRules{
			InvestmentIncomeLimit: usd(11950),
			ByChildren: [4]EICParams{
				{
					PhaseInRate:        rate(0.0765),
					EarnedIncomeAmount: usd(8490),
					MaxCredit:          usd(649),
					PhaseoutRate:       rate(0.0765),
					PhaseoutStart:      usd(10620),
					PhaseoutStartJoint: usd(17730),
				},
				{
					PhaseInRate:        rate(0.34),
					EarnedIncomeAmount: usd(12730),
					MaxCredit:          usd(4328),
					PhaseoutRate:       rate(0.1598),
					PhaseoutStart:      usd(23350),
					PhaseoutStartJoint: usd(30470),
				},
				{
					PhaseInRate:        rate(0.40),
					EarnedIncomeAmount: usd(17880),
					MaxCredit:          usd(7152),
					PhaseoutRate:       rate(0.2106),
					PhaseoutStart:      usd(23350),
					PhaseoutStartJoint: usd(30470),
				},
				{
					PhaseInRate:        rate(0.45),
					EarnedIncomeAmount: usd(17880),
					MaxCredit:          usd(8046),
					PhaseoutRate:       rate(0.2106),
					PhaseoutStart:      usd(23350),
					PhaseoutStartJoint: usd(30470),
				},
			},
		},

		CTC: CTCRules{
			PerChild:     usd(2000),
			PerDependent: usd(500),
			PhaseoutThreshold: map[domain.FilingStatus]money.Cents{
				domain.Single:                usd(200000),
				domain.MarriedFilingJointly:  usd(400000),
				domain.MarriedFilingSeparate: usd(200000),
				domain.HeadOfHousehold:       usd(200000),
			},
			PhaseoutStep:            usd(1000),
			ReductionPerStep:        usd(50),
			RefundableLimitPerChild: usd(1700),
			EarnedIncomeFloor:       usd(2500),
			RefundableRate:          rate(0.15),
		},

		Education: EducationRules{
			AOTCFullExpenseCap:    usd(2000),
			AOTCPartialExpenseCap: usd(2000),
			AOTCPartialRate:       rate(0.25),
			AOTCRefundableShare:   rate(0.40),
			LLCRate:               rate(0.20),
			LLCExpenseCap:         usd(10000),
			PhaseoutStart: map[domain.FilingStatus]money.Cents{
				domain.Single:                usd(80000),
				domain.MarriedFilingJointly:  usd(160000),
				domain.MarriedFilingSeparate: usd(80000),
				domain.HeadOfHousehold:       usd(80000),
			},
			PhaseoutEnd: map[domain.FilingStatus]money.Cents{
				domain.Single:                usd(90000),
				domain.MarriedFilingJointly:  usd(180000),
				domain.MarriedFilingSeparate: usd(90000),
				domain.HeadOfHousehold:       usd(90000),
			},
		},

		Savers: SaversRules{
			ContributionCapPerPerson: usd(2000),
			Tiers: map[domain.FilingStatus][]SaversTier{
				domain.Single: {
					{AGILimit: usd(23750), Rate: rate(0.50)},
					{AGILimit: usd(25500), Rate: rate(0.20)},
					{AGILimit: usd(39500), Rate: rate(0.10)},
				},
				domain.MarriedFilingJointly: {
					{AGILimit: usd(47500), Rate: rate(0.50)},
					{AGILimit: usd(51000), Rate: rate(0.20)},
					{AGILimit: usd(79000), Rate: rate(0.10)},
				},
				domain.MarriedFilingSeparate: {
					{AGILimit: usd(23750), Rate: rate(0.50)},
					{AGILimit: usd(25500), Rate: rate(0.20)},
					{AGILimit: usd(39500), Rate: rate(0.10)},
				},
				domain.HeadOfHousehold: {
					{AGILimit: usd(35625), Rate: rate(0.50)},
					{AGILimit: usd(38250), Rate: rate(0.20)},
					{AGILimit: usd(59250), Rate: rate(0.10)},
				},
			},
		},

		FTC: FTCRules{
			SimplifiedElectionLimit: usd(600),
		},

		Care: DependentCareRules{
			MaxRate:        rate(0.35),
			MinRate:        rate(0.20),
			RatePhaseStart: usd(15000),
			RateStepAGI:    usd(2000),
			RateStep:       rate(0.01),
			ExpenseCapOne:  usd(3000),
			ExpenseCapTwo:  usd(6000),
		},
	}
}
