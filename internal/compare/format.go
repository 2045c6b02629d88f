package compare

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"
)

// Formatter renders a comparison set in one output format.
type Formatter interface {
	Format(set *ComparisonSet) (string, error)
}

// NewFormatter returns the formatter for a format name: table, csv, or json.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "table":
		return &TableFormatter{}, nil
	case "csv":
		return &CSVFormatter{}, nil
	case "json":
		return &JSONFormatter{}, nil
	}
	return nil, fmt.Errorf("unsupported format: %s", format)
}

// TableFormatter renders an aligned text table.
type TableFormatter struct{}

func (tf *TableFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "State comparison for %d (federal AGI $%s, federal tax $%s)\n\n",
		set.Year, set.FederalAGI, set.FederalTax)

	w := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "State\tRegime\tState tax\tLocal\tSurtax\tTotal\tvs lowest")
	for _, r := range set.Results {
		fmt.Fprintf(w, "%s %s\t%s\t$%s\t$%s\t$%s\t$%s\t+$%s\n",
			r.StateCode, r.StateName, r.Regime,
			r.StateTax, r.LocalTax, r.Surtax, r.TotalLiability, r.DiffFromLowest)
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// CSVFormatter renders one row per state.
type CSVFormatter struct{}

func (cf *CSVFormatter) Format(set *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{"State", "Name", "Regime", "State Tax", "Local Tax", "Surtax", "Total", "Diff From Lowest"}
	if err := writer.Write(header); err != nil {
		return "", err
	}
	for _, r := range set.Results {
		row := []string{
			r.StateCode, r.StateName, string(r.Regime),
			r.StateTax.String(), r.LocalTax.String(), r.Surtax.String(),
			r.TotalLiability.String(), r.DiffFromLowest.String(),
		}
		if err := writer.Write(row); err != nil {
			return "", err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// JSONFormatter renders the whole set as indented JSON.
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(set *ComparisonSet) (string, error) {
	out, err := json.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
