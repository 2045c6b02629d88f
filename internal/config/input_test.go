package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `
year: 2025
filing_status: married_filing_jointly
qualifying_children: 2
income:
  wages: "185,000.00"
  interest: 1200
  ordinary_dividends: "3500.50"
  qualified_dividends: "3000"
itemized:
  state_local_income_tax: "$9,800"
  mortgage_interest: 12000
payments:
  withholding: 21000
state:
  state_code: NC
  withholding: 4200
`

func TestParse_FullInput(t *testing.T) {
	parser := NewInputParser()

	input, err := parser.Parse([]byte(sampleInput))
	require.NoError(t, err)

	assert.Equal(t, 2025, input.Year)
	assert.Equal(t, domain.MarriedFilingJointly, input.FilingStatus)
	assert.Equal(t, 2, input.QualifyingChildren)

	// Dollar strings, currency symbols, grouping commas, and bare
	// numbers all land as cents.
	assert.Equal(t, money.FromDollars(185000), input.Income.Wages)
	assert.Equal(t, money.FromDollars(1200), input.Income.Interest)
	assert.Equal(t, money.Cents(350050), input.Income.OrdinaryDividends)
	assert.Equal(t, money.FromDollars(9800), input.Itemized.StateLocalIncomeTax)

	require.NotNil(t, input.State)
	assert.Equal(t, "NC", input.State.StateCode)
	assert.Equal(t, money.FromDollars(4200), input.State.Withholding)
}

func TestParse_OmittedSectionsDefaultToZero(t *testing.T) {
	input, err := NewInputParser().Parse([]byte("year: 2025\nfiling_status: single\n"))
	require.NoError(t, err)

	assert.True(t, input.Income.Wages.IsZero())
	assert.Empty(t, input.Education)
	assert.Nil(t, input.State)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"malformed yaml", "year: [unclosed"},
		{"unparsable amount", "year: 2025\nfiling_status: single\nincome:\n  wages: lots\n"},
		{"invalid filing status", "year: 2025\nfiling_status: partnered\n"},
		{"negative wages", "year: 2025\nfiling_status: single\nincome:\n  wages: (500)\n"},
		{"missing year", "filing_status: single\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().Parse([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleInput), 0o644))

	input, err := NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, money.FromDollars(185000), input.Income.Wages)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
