// Package money provides exact integer-cents arithmetic for tax
// calculations. All amounts cross package boundaries as Cents (int64);
// decimal.Decimal is used internally so no binary floating-point error can
// reach a computed tax amount.
package money

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a monetary amount in integer US cents.
type Cents int64

// MaxMagnitude is the largest absolute dollar amount accepted by Parse and
// conversion helpers. Inputs beyond it are treated as corruption, not data.
// Overridable for callers that legitimately handle larger figures.
var MaxMagnitude = FromDollars(1_000_000_000)

var hundred = decimal.NewFromInt(100)

// ParseError reports an unparsable dollar string. It carries the original
// input so strict call sites can surface it with the offending field.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse %q as a dollar amount: %s", e.Input, e.Reason)
}

// FromDollars converts a whole-dollar amount to cents.
func FromDollars(dollars int64) Cents {
	return Cents(dollars * 100)
}

// FromDecimal converts a decimal dollar amount to cents, rounding half-up
// to the nearest cent.
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Mul(hundred).Round(0).IntPart())
}

// Decimal returns the amount as decimal dollars.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.NewFromInt(int64(c)).Div(hundred)
}

// Add returns c + other.
func (c Cents) Add(other Cents) Cents { return c + other }

// Sub returns c - other.
func (c Cents) Sub(other Cents) Cents { return c - other }

// Neg returns -c.
func (c Cents) Neg() Cents { return -c }

// MulRate multiplies the amount by a decimal rate and rounds half-up to the
// nearest cent. Rounding happens exactly once, on the final product.
func (c Cents) MulRate(rate decimal.Decimal) Cents {
	return Cents(decimal.NewFromInt(int64(c)).Mul(rate).Round(0).IntPart())
}

// MulFrac multiplies the amount by num/den in a single exact step, rounding
// the quotient half-up to the nearest cent. den must be nonzero.
func (c Cents) MulFrac(num, den Cents) Cents {
	if den == 0 {
		return 0
	}
	product := decimal.NewFromInt(int64(c)).Mul(decimal.NewFromInt(int64(num)))
	return Cents(product.Div(decimal.NewFromInt(int64(den))).Round(0).IntPart())
}

// NonNegative clamps negative amounts to zero. Tax law clamps most
// intermediate results rather than letting negatives propagate.
func (c Cents) NonNegative() Cents {
	if c < 0 {
		return 0
	}
	return c
}

// IsNegative reports whether the amount is below zero.
func (c Cents) IsNegative() bool { return c < 0 }

// IsZero reports whether the amount is exactly zero.
func (c Cents) IsZero() bool { return c == 0 }

// Min returns the smaller of a and b.
func Min(a, b Cents) Cents {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a and b.
func Max(a, b Cents) Cents {
	if a > b {
		return a
	}
	return b
}

// Sum adds any number of amounts.
func Sum(amounts ...Cents) Cents {
	var total Cents
	for _, a := range amounts {
		total += a
	}
	return total
}

// String formats the amount as a plain dollar string, e.g. "1583.13" or
// "-0.05". No currency symbol, no grouping.
func (c Cents) String() string {
	neg := c < 0
	v := int64(c)
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%d.%02d", v/100, v%100)
	if neg {
		return "-" + s
	}
	return s
}

// ParseDollars converts a decimal-dollar string to cents, rounding half-up
// if the input carries sub-cent precision. Currency symbols, grouping
// commas, and surrounding whitespace are stripped; parenthesized amounts
// are treated as negative. An empty string is zero. Anything else that
// fails to parse returns a *ParseError, never a silent zero.
func ParseDollars(s string) (Cents, error) {
	cleaned := strings.TrimSpace(s)
	if cleaned == "" {
		return 0, nil
	}
	negative := false
	if strings.HasPrefix(cleaned, "(") && strings.HasSuffix(cleaned, ")") {
		negative = true
		cleaned = cleaned[1 : len(cleaned)-1]
	}
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return 0, &ParseError{Input: s, Reason: "no digits"}
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "not a decimal number"}
	}
	if negative {
		d = d.Neg()
	}
	// Bound-check on the decimal before narrowing to int64 cents so
	// absurd inputs cannot overflow.
	if d.Abs().GreaterThan(MaxMagnitude.Decimal()) {
		return 0, &ParseError{Input: s, Reason: "exceeds maximum supported magnitude"}
	}
	return FromDecimal(d), nil
}

// ParseDollarsLenient is the legacy-compatibility wrapper around
// ParseDollars: unparsable input is logged and becomes zero instead of an
// error. New call sites should use ParseDollars.
func ParseDollarsLenient(s string, logger *slog.Logger) Cents {
	c, err := ParseDollars(s)
	if err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Warn("unparsable dollar amount treated as zero", "input", s, "error", err)
		return 0
	}
	return c
}
