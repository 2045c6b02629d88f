package brackets

import (
	"testing"

	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTable() Table {
	return Table{
		{Threshold: 0, Rate: decimal.NewFromFloat(0.10)},
		{Threshold: money.FromDollars(10000), Rate: decimal.NewFromFloat(0.20)},
		{Threshold: money.FromDollars(50000), Rate: decimal.NewFromFloat(0.30)},
	}
}

func TestTableValidate(t *testing.T) {
	require.NoError(t, testTable().Validate())

	assert.Error(t, Table{}.Validate(), "empty table")
	assert.Error(t, Table{{Threshold: money.FromDollars(1), Rate: decimal.NewFromFloat(0.1)}}.Validate(),
		"table must start at zero")
	assert.Error(t, Table{
		{Threshold: 0, Rate: decimal.NewFromFloat(0.1)},
		{Threshold: 0, Rate: decimal.NewFromFloat(0.2)},
	}.Validate(), "thresholds must strictly increase")
	assert.Error(t, Table{{Threshold: 0, Rate: decimal.NewFromFloat(-0.1)}}.Validate(),
		"negative rate")
}

func TestTableTax(t *testing.T) {
	table := testTable()

	tests := []struct {
		name   string
		income money.Cents
		want   money.Cents
	}{
		{"zero income", 0, 0},
		{"negative income", money.FromDollars(-100), 0},
		{"inside first bracket", money.FromDollars(5000), money.FromDollars(500)},
		{"at first boundary", money.FromDollars(10000), money.FromDollars(1000)},
		{"spanning two brackets", money.FromDollars(30000), money.FromDollars(5000)},
		{"into top bracket", money.FromDollars(60000), money.FromDollars(12000)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Tax(tt.income))
		})
	}
}

func TestTableTax_PerBracketRounding(t *testing.T) {
	// Each bracket slice rounds to cents independently before summing.
	table := Table{
		{Threshold: 0, Rate: decimal.NewFromFloat(0.6)},
		{Threshold: 1, Rate: decimal.NewFromFloat(0.6)},
		{Threshold: 2, Rate: decimal.NewFromFloat(0.6)},
	}
	// Three 1-cent slices, each 0.6 cents rounded half-up to 1 cent.
	// Rounding once at the end would give round(1.8) = 2 cents.
	assert.Equal(t, money.Cents(3), table.Tax(3))
}

func TestTableTax_ContinuityAtBoundaries(t *testing.T) {
	table := testTable()
	for _, boundary := range []money.Cents{money.FromDollars(10000), money.FromDollars(50000)} {
		below := table.Tax(boundary - 1)
		above := table.Tax(boundary + 1)
		assert.LessOrEqual(t, int64(above-below), int64(2),
			"tax must be continuous at boundary %s", boundary)
	}
}

func TestTableTax_Monotonic(t *testing.T) {
	table := testTable()
	prev := money.Cents(-1)
	for income := money.Cents(0); income <= money.FromDollars(100000); income += money.FromDollars(997) {
		tax := table.Tax(income)
		assert.GreaterOrEqual(t, int64(tax), int64(prev), "tax non-decreasing at income %s", income)
		prev = tax
	}
}

func TestMarginalRate(t *testing.T) {
	table := testTable()

	assert.True(t, decimal.NewFromFloat(0.10).Equal(table.MarginalRate(money.FromDollars(5000))))
	assert.True(t, decimal.NewFromFloat(0.20).Equal(table.MarginalRate(money.FromDollars(10000))))
	assert.True(t, decimal.NewFromFloat(0.30).Equal(table.MarginalRate(money.FromDollars(1000000))))
}

func TestLinearPhaseout(t *testing.T) {
	base := money.FromDollars(85700)
	quarter := decimal.NewFromFloat(0.25)

	assert.Equal(t, base, LinearPhaseout(base, 0, quarter), "no excess leaves base intact")
	assert.Equal(t, base, LinearPhaseout(base, money.FromDollars(-10), quarter))
	assert.Equal(t, money.FromDollars(60700), LinearPhaseout(base, money.FromDollars(100000), quarter))
	assert.Equal(t, money.Cents(0), LinearPhaseout(base, money.FromDollars(400000), quarter),
		"phase-out clamps at zero, never negative")
}

func TestSteppedPhaseout(t *testing.T) {
	base := money.FromDollars(2000)
	step := money.FromDollars(1000)
	per := money.FromDollars(50)

	assert.Equal(t, base, SteppedPhaseout(base, 0, step, per))
	assert.Equal(t, money.FromDollars(1950), SteppedPhaseout(base, money.FromDollars(1000), step, per))
	assert.Equal(t, money.FromDollars(1900), SteppedPhaseout(base, money.FromDollars(1001), step, per),
		"partial step counts as a full step")
	assert.Equal(t, money.Cents(0), SteppedPhaseout(base, money.FromDollars(100000), step, per))
}
