package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"sort"

	"github.com/rgehrsitz/taxengine/internal/calculation"
	"github.com/rgehrsitz/taxengine/internal/compare"
	"github.com/rgehrsitz/taxengine/internal/config"
	"github.com/rgehrsitz/taxengine/internal/output"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "taxengine",
	Short: "US income tax calculation engine",
	Long:  "Computes federal and state income-tax liability from a structured taxpayer input file",
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(os.Stdout, "taxengine %s (commit %s, built %s)\n", version, commit, date)
			if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
				fmt.Fprintln(os.Stdout, bi.Main.Path)
			}
		},
	}
}

func calculateCmd() *cobra.Command {
	var (
		showTrace bool
		format    string
	)
	cmd := &cobra.Command{
		Use:   "calculate [input-file]",
		Short: "Calculate federal and state tax from an input file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			report := &output.Report{}
			if showTrace {
				report.Federal, report.Trace, err = engine.CalculateWithTrace(input)
			} else {
				report.Federal, err = engine.Calculate(input)
			}
			if err != nil {
				return err
			}

			if input.State != nil {
				report.State, err = engine.CalculateState(report.Federal, input.State)
				if err != nil {
					return err
				}
			}
			return output.NewReportGenerator().Generate(os.Stdout, report, format)
		},
	}
	cmd.Flags().BoolVar(&showTrace, "trace", false, "Include the audit trace of calculation steps")
	cmd.Flags().StringVar(&format, "format", "console", "Output format: console, json, or csv")
	return cmd
}

func compareCmd() *cobra.Command {
	var (
		codes  []string
		format string
	)
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare state tax liability across states for one return",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := config.NewInputParser().LoadFromFile(args[0])
			if err != nil {
				return err
			}

			engine := calculation.NewEngine()
			fed, err := engine.Calculate(input)
			if err != nil {
				return err
			}

			set, err := compare.NewCompareEngine(engine.States).Compare(fed, codes)
			if err != nil {
				return err
			}
			formatter, err := compare.NewFormatter(format)
			if err != nil {
				return err
			}
			out, err := formatter.Format(set)
			if err != nil {
				return err
			}
			fmt.Fprint(os.Stdout, out)
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&codes, "states", nil, "State codes to compare (default: all states)")
	cmd.Flags().StringVar(&format, "format", "table", "Output format: table, csv, or json")
	return cmd
}

func statesCmd() *cobra.Command {
	var year int
	cmd := &cobra.Command{
		Use:   "states",
		Short: "List supported state codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := calculation.NewEngine()
			codes := engine.States.Codes(year)
			if len(codes) == 0 {
				return fmt.Errorf("no states for year %d", year)
			}
			sort.Strings(codes)
			for _, code := range codes {
				calc, err := engine.States.Lookup(year, code)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "%s  %s\n", code, calc.Name())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&year, "year", 2025, "Tax year")
	return cmd
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	rootCmd.AddCommand(calculateCmd(), compareCmd(), statesCmd(), versionCmd())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
