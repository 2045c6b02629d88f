// Package output renders calculation results for display surfaces. The
// engine produces plain result structs; everything presentational lives
// here.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/rgehrsitz/taxengine/internal/calculation"
	"github.com/rgehrsitz/taxengine/internal/domain"
	"github.com/rgehrsitz/taxengine/internal/money"
	"github.com/shopspring/decimal"
)

// Report bundles everything one calculation run produced.
type Report struct {
	Federal *domain.FederalResult `json:"federal"`
	State   *domain.StateResult   `json:"state,omitempty"`
	Trace   *calculation.Trace    `json:"trace,omitempty"`
}

// ReportGenerator renders a Report in the supported output formats.
type ReportGenerator struct{}

// NewReportGenerator creates a new report generator.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// Generate writes the report in the requested format: console, json, or csv.
func (rg *ReportGenerator) Generate(w io.Writer, report *Report, format string) error {
	switch format {
	case "console":
		return rg.writeConsole(w, report)
	case "json":
		return rg.writeJSON(w, report)
	case "csv":
		return rg.writeCSV(w, report)
	}
	return fmt.Errorf("unsupported format: %s", format)
}

// FormatCurrency renders cents as a display dollar amount.
func FormatCurrency(c money.Cents) string {
	return "$" + c.String()
}

func (rg *ReportGenerator) writeJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func (rg *ReportGenerator) writeConsole(w io.Writer, report *Report) error {
	fed := report.Federal

	fmt.Fprintf(w, "Federal (%d, %s)\n", fed.Year, fed.FilingStatus)
	fmt.Fprintln(w, strings.Repeat("=", 48))
	line(w, "Gross income", fed.GrossIncome)
	line(w, "Adjustments", fed.TotalAdjustments)
	line(w, "AGI", fed.AGI)
	line(w, fmt.Sprintf("Deduction (%s)", fed.DeductionType), fed.DeductionUsed)
	line(w, "Taxable income", fed.TaxableIncome)
	fmt.Fprintln(w)
	line(w, "Ordinary tax", fed.OrdinaryTax)
	if !fed.PreferentialRateTax.IsZero() {
		line(w, "Capital gains tax", fed.PreferentialRateTax)
	}
	if !fed.SelfEmploymentTax.IsZero() {
		line(w, "Self-employment tax", fed.SelfEmploymentTax)
	}
	if !fed.AdditionalMedicareTax.IsZero() {
		line(w, "Additional Medicare tax", fed.AdditionalMedicareTax)
	}
	if !fed.NetInvestmentIncomeTax.IsZero() {
		line(w, "Net investment income tax", fed.NetInvestmentIncomeTax)
	}
	if !fed.AMT.AMT.IsZero() {
		line(w, "Alternative minimum tax", fed.AMT.AMT)
	}
	if !fed.AMT.CreditCarryforward.IsZero() {
		line(w, "AMT credit carryforward", fed.AMT.CreditCarryforward)
	}
	line(w, "Tax before credits", fed.TaxBeforeCredits)

	for _, c := range fed.Credits {
		if c.Amount.IsZero() && c.Carryforward.IsZero() {
			continue
		}
		kind := "nonrefundable"
		if c.IsRefundable {
			kind = "refundable"
		}
		line(w, fmt.Sprintf("Credit %s (%s)", c.Name, kind), c.Amount)
		if !c.Carryforward.IsZero() {
			line(w, fmt.Sprintf("  %s carryforward", c.Name), c.Carryforward)
		}
	}

	fmt.Fprintln(w)
	line(w, "Total tax", fed.TotalTax)
	fmt.Fprintf(w, "%-36s %s\n", "Effective rate", fed.EffectiveRate.Mul(hundredPct).StringFixed(2)+"%")
	fmt.Fprintf(w, "%-36s %s\n", "Marginal rate", fed.MarginalRate.Mul(hundredPct).StringFixed(2)+"%")
	line(w, "Payments", fed.TotalPayments)
	balance(w, fed.RefundOrOwed)

	if report.State != nil {
		rg.writeConsoleState(w, report.State)
	}
	if report.Trace != nil {
		fmt.Fprintf(w, "\nAudit trace %s\n", report.Trace.ID)
		for _, step := range report.Trace.Steps {
			fmt.Fprintf(w, "  %-28s %12s  %s\n", step.ID, FormatCurrency(step.Result), step.Description)
		}
	}
	return nil
}

func (rg *ReportGenerator) writeConsoleState(w io.Writer, state *domain.StateResult) {
	fmt.Fprintf(w, "\n%s (%s)\n", state.StateName, state.Regime)
	fmt.Fprintln(w, strings.Repeat("=", 48))
	line(w, "State AGI", state.StateAGI)
	line(w, "Taxable income", state.StateTaxableIncome)
	line(w, "State tax", state.StateTax)
	if !state.LocalTax.IsZero() {
		line(w, "Local tax", state.LocalTax)
	}
	if !state.Surtax.IsZero() {
		line(w, "Surtax", state.Surtax)
	}
	if !state.CreditsApplied.IsZero() {
		line(w, "Credits applied", state.CreditsApplied)
	}
	line(w, "Payments", state.TotalPayments)
	balance(w, state.RefundOrOwed)
	for _, note := range state.Notes {
		fmt.Fprintf(w, "Note: %s\n", note)
	}
}

// writeCSV emits one labeled row per line item, federal then state.
func (rg *ReportGenerator) writeCSV(w io.Writer, report *Report) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"Scope", "Item", "Amount"}); err != nil {
		return err
	}

	fed := report.Federal
	rows := [][]string{
		{"federal", "gross_income", fed.GrossIncome.String()},
		{"federal", "agi", fed.AGI.String()},
		{"federal", "deduction", fed.DeductionUsed.String()},
		{"federal", "taxable_income", fed.TaxableIncome.String()},
		{"federal", "regular_tax", fed.RegularTax.String()},
		{"federal", "self_employment_tax", fed.SelfEmploymentTax.String()},
		{"federal", "additional_medicare_tax", fed.AdditionalMedicareTax.String()},
		{"federal", "net_investment_income_tax", fed.NetInvestmentIncomeTax.String()},
		{"federal", "amt", fed.AMT.AMT.String()},
		{"federal", "tax_before_credits", fed.TaxBeforeCredits.String()},
		{"federal", "nonrefundable_credits", fed.NonRefundableCreditsUsed.String()},
		{"federal", "refundable_credits", fed.RefundableCredits.String()},
		{"federal", "total_tax", fed.TotalTax.String()},
		{"federal", "payments", fed.TotalPayments.String()},
		{"federal", "refund_or_owed", fed.RefundOrOwed.String()},
	}
	if state := report.State; state != nil {
		scope := strings.ToLower(state.StateCode)
		rows = append(rows,
			[]string{scope, "state_agi", state.StateAGI.String()},
			[]string{scope, "taxable_income", state.StateTaxableIncome.String()},
			[]string{scope, "state_tax", state.StateTax.String()},
			[]string{scope, "local_tax", state.LocalTax.String()},
			[]string{scope, "surtax", state.Surtax.String()},
			[]string{scope, "refund_or_owed", state.RefundOrOwed.String()},
		)
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

var hundredPct = decimal.NewFromInt(100)

func line(w io.Writer, label string, amount money.Cents) {
	fmt.Fprintf(w, "%-36s %12s\n", label, FormatCurrency(amount))
}

func balance(w io.Writer, refundOrOwed money.Cents) {
	if refundOrOwed.IsNegative() {
		line(w, "Balance due", refundOrOwed.Neg())
		return
	}
	line(w, "Refund", refundOrOwed)
}
