package money

import (
	"log/slog"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDollars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Cents
	}{
		{"plain", "1234.56", 123456},
		{"whole dollars", "50000", 5000000},
		{"currency symbol", "$1,583.13", 158313},
		{"grouping commas", "1,000,000.00", 100000000},
		{"leading whitespace", "  42.00 ", 4200},
		{"negative sign", "-12.34", -1234},
		{"parenthesized negative", "($12.34)", -1234},
		{"sub-cent rounds half up", "0.005", 1},
		{"empty is zero", "", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDollars(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDollars_Errors(t *testing.T) {
	for _, input := range []string{"abc", "$", "12.3.4", "1e999", "5000000000.00"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseDollars(input)
			require.Error(t, err)
			var perr *ParseError
			assert.ErrorAs(t, err, &perr)
			assert.Equal(t, input, perr.Input, "error should carry original input")
		})
	}
}

func TestParseDollarsLenient(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	assert.Equal(t, Cents(158313), ParseDollarsLenient("$1,583.13", logger))
	assert.Equal(t, Cents(0), ParseDollarsLenient("not money", logger), "unparsable input defaults to zero")
}

func TestMulRate_RoundsOnceHalfUp(t *testing.T) {
	// 37,250.00 * 0.0425 = 1,583.125 -> 1,583.13
	taxable := FromDollars(37250)
	rate := decimal.NewFromFloat(0.0425)

	assert.Equal(t, Cents(158313), taxable.MulRate(rate))
}

func TestMulFrac(t *testing.T) {
	// 10,000 * 20,000/80,000 = 2,500 exactly
	assert.Equal(t, FromDollars(2500), FromDollars(10000).MulFrac(FromDollars(20000), FromDollars(80000)))
	assert.Equal(t, Cents(0), FromDollars(10).MulFrac(FromDollars(1), 0), "zero denominator yields zero")
}

func TestNonNegative(t *testing.T) {
	assert.Equal(t, Cents(0), Cents(-500).NonNegative())
	assert.Equal(t, Cents(500), Cents(500).NonNegative())
}

func TestStringRoundTrip(t *testing.T) {
	for _, c := range []Cents{0, 1, 99, 100, 158313, -1234, 100000000} {
		parsed, err := ParseDollars(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed, "String/ParseDollars should round-trip %d", c)
	}
}

func TestFromDecimal(t *testing.T) {
	assert.Equal(t, Cents(12345), FromDecimal(decimal.NewFromFloat(123.45)))
	assert.Equal(t, Cents(12346), FromDecimal(decimal.NewFromFloat(123.455)), "half rounds up")
}
