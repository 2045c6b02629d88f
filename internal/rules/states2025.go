package rules

import (
	"github.com/rgehrsitz/taxengine/internal/brackets"
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
)

func noTaxState(code, name, note string) *StateSpec {
	return &StateSpec{Code: code, Name: name, Regime: domain.RegimeNoIncomeTax, Note: note}
}

func flatState(code, name string, flatRate float64, stdSingle, stdJoint int64) *StateSpec {
	return &StateSpec{
		Code:     code,
		Name:     name,
		Regime:   domain.RegimeFlat,
		FlatRate: rate(flatRate),
		StandardDeduction: map[domain.FilingStatus]money.Cents{
			domain.Single:               usd(stdSingle),
			domain.MarriedFilingJointly: usd(stdJoint),
		},
	}
}

// withExemptions sets the per-filer and per-dependent exemption amounts on
// states that deduct them from the taxable base.
func withExemptions(s *StateSpec, personal, dependent int64) *StateSpec {
	s.PersonalExemption = usd(personal)
	s.DependentExemption = usd(dependent)
	return s
}

// singleJoint builds status-keyed bracket maps for the common case where a
// state publishes single and joint tables; separate and head-of-household
// filers fall back to the single table.
func singleJoint(single, joint brackets.Table) map[domain.FilingStatus]brackets.Table {
	return map[domain.FilingStatus]brackets.Table{
		domain.Single:               single,
		domain.MarriedFilingJointly: joint,
	}
}

// allStatusesSame is for states with one schedule regardless of status.
func allStatusesSame(t brackets.Table) map[domain.FilingStatus]brackets.Table {
	return map[domain.FilingStatus]brackets.Table{domain.Single: t, domain.MarriedFilingJointly: t}
}

// states2025 lists all fifty state regimes for tax year 2025. Brackets are
// the published schedules rounded to whole dollars; states that key only
// some statuses use the fallback rules in StateSpec.
func states2025() []*StateSpec {
	return []*StateSpec{
		// --- no income tax ---
		noTaxState("AK", "Alaska", "Alaska levies no individual income tax."),
		noTaxState("FL", "Florida", "Florida levies no individual income tax."),
		noTaxState("NV", "Nevada", "Nevada levies no individual income tax."),
		noTaxState("NH", "New Hampshire", "New Hampshire levies no tax on wage income; the interest and dividends tax is repealed as of 2025."),
		noTaxState("SD", "South Dakota", "South Dakota levies no individual income tax."),
		noTaxState("TN", "Tennessee", "Tennessee levies no individual income tax."),
		noTaxState("TX", "Texas", "Texas levies no individual income tax."),
		noTaxState("WA", "Washington", "Washington levies no individual income tax; the capital gains excise tax is outside this model."),
		noTaxState("WY", "Wyoming", "Wyoming levies no individual income tax."),

		// --- flat rate ---
		flatState("AZ", "Arizona", 0.025, 14600, 29200),
		flatState("CO", "Colorado", 0.044, 15000, 30000),
		withExemptions(flatState("GA", "Georgia", 0.0539, 12000, 24000), 0, 4000),
		flatState("IA", "Iowa", 0.038, 0, 0),
		flatState("ID", "Idaho", 0.05695, 15000, 30000),
		withExemptions(flatState("IL", "Illinois", 0.0495, 0, 0), 2775, 2775),
		withExemptions(flatState("IN", "Indiana", 0.03, 0, 0), 1000, 1000),
		flatState("KY", "Kentucky", 0.04, 3270, 6540),
		flatState("LA", "Louisiana", 0.03, 12500, 25000),
		flatState("MI", "Michigan", 0.0425, 5800, 11600),
		flatState("MS", "Mississippi", 0.044, 2300, 4600),
		flatState("NC", "North Carolina", 0.0425, 12750, 25500),
		flatState("PA", "Pennsylvania", 0.0307, 0, 0),
		flatState("UT", "Utah", 0.0455, 0, 0),

		// --- dual rate with surtax ---
		{
			Code:            "MA",
			Name:            "Massachusetts",
			Regime:          domain.RegimeFlatSurtax,
			FlatRate:        rate(0.05),
			SurtaxRate:      rate(0.04),
			SurtaxThreshold: usd(1083150),
			Note:            "Short-term gains are modeled at the base rate.",
		},

		// --- progressive ---
		{
			Code: "AL", Name: "Alabama", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(rung(0, 0.02), rung(500, 0.04), rung(3000, 0.05)),
				bracketTable(rung(0, 0.02), rung(1000, 0.04), rung(6000, 0.05)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(3000), domain.MarriedFilingJointly: usd(8500),
			},
			PersonalExemption:  usd(1500),
			DependentExemption: usd(1000),
		},
		{
			Code: "AR", Name: "Arkansas", Regime: domain.RegimeProgressive,
			Brackets: allStatusesSame(
				bracketTable(rung(0, 0.02), rung(4500, 0.039)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(2410), domain.MarriedFilingJointly: usd(4820),
			},
		},
		{
			Code: "CA", Name: "California", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(
					rung(0, 0.01), rung(10756, 0.02), rung(25499, 0.04),
					rung(40245, 0.06), rung(55866, 0.08), rung(70606, 0.093),
					rung(360659, 0.103), rung(432787, 0.113), rung(721314, 0.123),
				),
				bracketTable(
					rung(0, 0.01), rung(21512, 0.02), rung(50998, 0.04),
					rung(80490, 0.06), rung(111732, 0.08), rung(141212, 0.093),
					rung(721318, 0.103), rung(865574, 0.113), rung(1442628, 0.123),
				),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(5540), domain.MarriedFilingJointly: usd(11080),
			},
			SurtaxRate:      rate(0.01),
			SurtaxThreshold: usd(1000000),
			Note:            "Includes the 1% mental health services surtax on taxable income over $1,000,000.",
		},
		{
			Code: "CT", Name: "Connecticut", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(
					rung(0, 0.02), rung(10000, 0.045), rung(50000, 0.055),
					rung(100000, 0.06), rung(200000, 0.065), rung(250000, 0.069),
					rung(500000, 0.0699),
				),
				bracketTable(
					rung(0, 0.02), rung(20000, 0.045), rung(100000, 0.055),
					rung(200000, 0.06), rung(400000, 0.065), rung(500000, 0.069),
					rung(1000000, 0.0699),
				),
			),
		},
		{
			Code: "DE", Name: "Delaware", Regime: domain.RegimeProgressive,
			Brackets: allStatusesSame(
				bracketTable(
					rung(0, 0.0), rung(2000, 0.022), rung(5000, 0.039),
					rung(10000, 0.048), rung(20000, 0.052), rung(25000, 0.0555),
					rung(60000, 0.066),
				),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(3250), domain.MarriedFilingJointly: usd(6500),
			},
		},
		{
			Code: "HI", Name: "Hawaii", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(
					rung(0, 0.014), rung(9600, 0.032), rung(14400, 0.055),
					rung(19200, 0.064), rung(24000, 0.068), rung(36000, 0.072),
					rung(48000, 0.076), rung(125000, 0.0825), rung(175000, 0.09),
					rung(225000, 0.10), rung(275000, 0.11),
				),
				bracketTable(
					rung(0, 0.014), rung(19200, 0.032), rung(28800, 0.055),
					rung(38400, 0.064), rung(48000, 0.068), rung(72000, 0.072),
					rung(96000, 0.076), rung(250000, 0.0825), rung(350000, 0.09),
					rung(450000, 0.10), rung(550000, 0.11),
				),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(4400), domain.MarriedFilingJointly: usd(8800),
			},
		},
		{
			Code: "KS", Name: "Kansas", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(rung(0, 0.052), rung(23000, 0.0558)),
				bracketTable(rung(0, 0.052), rung(46000, 0.0558)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(3605), domain.MarriedFilingJointly: usd(8240),
			},
		},
		{
			Code: "ME", Name: "Maine", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(rung(0, 0.058), rung(26800, 0.0675), rung(63450, 0.0715)),
				bracketTable(rung(0, 0.058), rung(53600, 0.0675), rung(126900, 0.0715)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(15000), domain.MarriedFilingJointly: usd(30000),
			},
		},
		{
			Code: "MD", Name: "Maryland", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(
					rung(0, 0.02), rung(1000, 0.03), rung(2000, 0.04),
					rung(3000, 0.0475), rung(100000, 0.05), rung(125000, 0.0525),
					rung(150000, 0.055), rung(250000, 0.0575),
				),
				bracketTable(
					rung(0, 0.02), rung(1000, 0.03), rung(2000, 0.04),
					rung(3000, 0.0475), rung(150000, 0.05), rung(175000, 0.0525),
					rung(225000, 0.055), rung(300000, 0.0575),
				),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(2700), domain.MarriedFilingJointly: usd(5450),
			},
			DefaultCountyRate: rate(0.0320),
			Note:              "County income tax applied at the supplied county rate (default 3.20%).",
		},
		{
			Code: "MN", Name: "Minnesota", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(rung(0, 0.0535), rung(32570, 0.068), rung(106990, 0.0785), rung(198630, 0.0985)),
				bracketTable(rung(0, 0.0535), rung(47620, 0.068), rung(189180, 0.0785), rung(330410, 0.0985)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(14950), domain.MarriedFilingJointly: usd(29900),
			},
		},
		{
			Code: "MO", Name: "Missouri", Regime: domain.RegimeProgressive,
			Brackets: allStatusesSame(
				bracketTable(
					rung(0, 0.0), rung(1313, 0.02), rung(2626, 0.025),
					rung(3939, 0.03), rung(5252, 0.035), rung(6565, 0.04),
					rung(7878, 0.045), rung(9191, 0.047),
				),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(15000), domain.MarriedFilingJointly: usd(30000),
			},
		},
		{
			Code: "MT", Name: "Montana", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(rung(0, 0.047), rung(21100, 0.059)),
				bracketTable(rung(0, 0.047), rung(42200, 0.059)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(15000), domain.MarriedFilingJointly: usd(30000),
			},
		},
		{
			Code: "NE", Name: "Nebraska", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(rung(0, 0.0246), rung(4030, 0.0351), rung(24120, 0.0501), rung(38870, 0.052)),
				bracketTable(rung(0, 0.0246), rung(8040, 0.0351), rung(48250, 0.0501), rung(77730, 0.052)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(8350), domain.MarriedFilingJointly: usd(16700),
			},
		},
		{
			Code: "NJ", Name: "New Jersey", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(
					rung(0, 0.014), rung(20000, 0.0175), rung(35000, 0.035),
					rung(40000, 0.05525), rung(75000, 0.0637), rung(500000, 0.0897),
					rung(1000000, 0.1075),
				),
				bracketTable(
					rung(0, 0.014), rung(20000, 0.0175), rung(50000, 0.0245),
					rung(70000, 0.035), rung(80000, 0.05525), rung(150000, 0.0637),
					rung(500000, 0.0897), rung(1000000, 0.1075),
				),
			),
		},
		{
			Code: "NM", Name: "New Mexico", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(
					rung(0, 0.015), rung(5500, 0.032), rung(16500, 0.043),
					rung(33500, 0.047), rung(66500, 0.049), rung(210000, 0.059),
				),
				bracketTable(
					rung(0, 0.015), rung(8000, 0.032), rung(25000, 0.043),
					rung(50000, 0.047), rung(100000, 0.049), rung(315000, 0.059),
				),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(15000), domain.MarriedFilingJointly: usd(30000),
			},
		},
		{
			Code: "NY", Name: "New York", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(
					rung(0, 0.04), rung(8500, 0.045), rung(11700, 0.0525),
					rung(13900, 0.055), rung(80650, 0.06), rung(215400, 0.0685),
					rung(1077550, 0.0965), rung(5000000, 0.103), rung(25000000, 0.109),
				),
				bracketTable(
					rung(0, 0.04), rung(17150, 0.045), rung(23600, 0.0525),
					rung(27900, 0.055), rung(161550, 0.06), rung(323200, 0.0685),
					rung(2155350, 0.0965), rung(5000000, 0.103), rung(25000000, 0.109),
				),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(8000), domain.MarriedFilingJointly: usd(16050),
			},
			DeductionAddbackThreshold: usd(1000000),
			Note:                      "Standard deduction is added back for state AGI above $1,000,000.",
		},
		{
			Code: "ND", Name: "North Dakota", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(rung(0, 0.0), rung(48475, 0.0195), rung(244825, 0.025)),
				bracketTable(rung(0, 0.0), rung(80975, 0.0195), rung(296575, 0.025)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(15000), domain.MarriedFilingJointly: usd(30000),
			},
		},
		{
			Code: "OH", Name: "Ohio", Regime: domain.RegimeProgressive,
			Brackets: allStatusesSame(
				bracketTable(rung(0, 0.0), rung(26050, 0.0275), rung(100000, 0.035)),
			),
		},
		{
			Code: "OK", Name: "Oklahoma", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(
					rung(0, 0.0025), rung(1000, 0.0075), rung(2500, 0.0175),
					rung(3750, 0.0275), rung(4900, 0.0375), rung(7200, 0.0475),
				),
				bracketTable(
					rung(0, 0.0025), rung(2000, 0.0075), rung(5000, 0.0175),
					rung(7500, 0.0275), rung(9800, 0.0375), rung(12200, 0.0475),
				),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(6350), domain.MarriedFilingJointly: usd(12700),
			},
		},
		{
			Code: "OR", Name: "Oregon", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(rung(0, 0.0475), rung(4400, 0.0675), rung(11050, 0.0875), rung(125000, 0.099)),
				bracketTable(rung(0, 0.0475), rung(8800, 0.0675), rung(22100, 0.0875), rung(250000, 0.099)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(2800), domain.MarriedFilingJointly: usd(5600),
			},
		},
		{
			Code: "RI", Name: "Rhode Island", Regime: domain.RegimeProgressive,
			Brackets: allStatusesSame(
				bracketTable(rung(0, 0.0375), rung(79900, 0.0475), rung(181650, 0.0599)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(10900), domain.MarriedFilingJointly: usd(21800),
			},
		},
		{
			Code: "SC", Name: "South Carolina", Regime: domain.RegimeProgressive,
			Brackets: allStatusesSame(
				bracketTable(rung(0, 0.0), rung(3560, 0.03), rung(17830, 0.062)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(15000), domain.MarriedFilingJointly: usd(30000),
			},
		},
		{
			Code: "VT", Name: "Vermont", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(rung(0, 0.0335), rung(47900, 0.066), rung(116000, 0.076), rung(242000, 0.0875)),
				bracketTable(rung(0, 0.0335), rung(79950, 0.066), rung(193300, 0.076), rung(294600, 0.0875)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(7400), domain.MarriedFilingJointly: usd(14850),
			},
		},
		{
			Code: "VA", Name: "Virginia", Regime: domain.RegimeProgressive,
			Brackets: allStatusesSame(
				bracketTable(rung(0, 0.02), rung(3000, 0.03), rung(5000, 0.05), rung(17000, 0.0575)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(8500), domain.MarriedFilingJointly: usd(17000),
			},
		},
		{
			Code: "WV", Name: "West Virginia", Regime: domain.RegimeProgressive,
			Brackets: allStatusesSame(
				bracketTable(
					rung(0, 0.0222), rung(10000, 0.0296), rung(25000, 0.0333),
					rung(40000, 0.0444), rung(60000, 0.0482),
				),
			),
		},
		{
			Code: "WI", Name: "Wisconsin", Regime: domain.RegimeProgressive,
			Brackets: singleJoint(
				bracketTable(rung(0, 0.035), rung(14320, 0.044), rung(28640, 0.053), rung(315310, 0.0765)),
				bracketTable(rung(0, 0.035), rung(19090, 0.044), rung(38190, 0.053), rung(420420, 0.0765)),
			),
			StandardDeduction: map[domain.FilingStatus]money.Cents{
				domain.Single: usd(13230), domain.MarriedFilingJointly: usd(24490),
			},
		},
	}
}
