// Package brackets implements the generic progressive-bracket and linear
// phase-out evaluators shared by the federal pipeline, the AMT sub-engine,
// and every state module.
package brackets

import (
	"fmt"

	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/shopspring/decimal"
)

// Bracket is one rung of a progressive rate table. Threshold is the lower
// bound of the rung; the upper bound is the next rung's threshold, or
// infinity for the last rung.
type Bracket struct {
	Threshold money.Cents     `json:"threshold" yaml:"threshold"`
	Rate      decimal.Decimal `json:"rate" yaml:"rate"`
}

// Table is an ordered bracket table covering [0, inf) with no gaps or
// overlaps. The first threshold must be zero and thresholds must strictly
// increase.
type Table []Bracket

// Validate checks the table invariants. Invalid tables are programming
// errors in rule data; rule loading panics on a non-nil result rather than
// silently producing wrong tax amounts.
func (t Table) Validate() error {
	if len(t) == 0 {
		return fmt.Errorf("bracket table is empty")
	}
	if t[0].Threshold != 0 {
		return fmt.Errorf("bracket table must start at zero, got %s", t[0].Threshold)
	}
	for i, b := range t {
		if b.Rate.IsNegative() {
			return fmt.Errorf("bracket %d has negative rate %s", i, b.Rate)
		}
		if i > 0 && b.Threshold <= t[i-1].Threshold {
			return fmt.Errorf("bracket %d threshold %s does not increase past %s",
				i, b.Threshold, t[i-1].Threshold)
		}
	}
	return nil
}

// Tax computes the progressive tax on income. The slice of income falling
// in each bracket is taxed at that bracket's rate and rounded to cents
// before summing; published worksheets round per bracket, so matching them
// requires per-bracket rounding rather than one rounding of the total.
func (t Table) Tax(income money.Cents) money.Cents {
	if income <= 0 {
		return 0
	}
	var tax money.Cents
	for i, b := range t {
		if income <= b.Threshold {
			break
		}
		upper := income
		if i+1 < len(t) && t[i+1].Threshold < upper {
			upper = t[i+1].Threshold
		}
		slice := upper - b.Threshold
		if slice > 0 {
			tax += slice.MulRate(b.Rate)
		}
	}
	return tax
}

// MarginalRate returns the rate of the bracket the given income falls in.
func (t Table) MarginalRate(income money.Cents) decimal.Decimal {
	if len(t) == 0 {
		return decimal.Zero
	}
	rate := t[0].Rate
	for _, b := range t {
		if income < b.Threshold {
			break
		}
		rate = b.Rate
	}
	return rate
}

// LinearPhaseout reduces base by rate cents per cent of excess over the
// threshold, clamped to [0, base]. A non-positive excess leaves the base
// untouched.
func LinearPhaseout(base money.Cents, amountOverThreshold money.Cents, rate decimal.Decimal) money.Cents {
	if amountOverThreshold <= 0 {
		return base
	}
	reduction := amountOverThreshold.MulRate(rate)
	if reduction >= base {
		return 0
	}
	return base - reduction
}

// SteppedPhaseout reduces base by reductionPerStep for each full or partial
// step of excess over the threshold, clamped to [0, base]. Several federal
// credits (child tax credit among them) phase out in $1,000 steps rather
// than linearly.
func SteppedPhaseout(base money.Cents, amountOverThreshold money.Cents, step money.Cents, reductionPerStep money.Cents) money.Cents {
	if amountOverThreshold <= 0 || step <= 0 {
		return base
	}
	steps := int64(amountOverThreshold) / int64(step)
	if int64(amountOverThreshold)%int64(step) != 0 {
		steps++
	}
	reduction := money.Cents(steps * int64(reductionPerStep))
	if reduction >= base {
		return 0
	}
	return base - reduction
}
