package main

import (
	"fmt"
	"os"
	"path/filepath"

	"bill-forecast/internal/analysis"
	"bill-forecast/internal/config"
	"bill-forecast/internal/data"
	"bill-forecast/internal/forecast"
	"bill-forecast/internal/model"
	"bill-forecast/internal/scenario"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	cfgPath  string
	billPath string
	outPath  string
	showRows bool
)

func main() {
	root := &cobra.Command{
		Use:   "billforecast",
		Short: "Project an energy bill forward under per-carrier price escalation",
	}

	projectCmd := &cobra.Command{
		Use:   "project",
		Short: "Run the base scenario and print its trajectory summary",
		RunE:  runProject,
	}
	projectCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML scenario config (required)")
	projectCmd.Flags().StringVar(&billPath, "bill", "", "Optional JSON bill file overriding the configured bill")
	projectCmd.Flags().StringVarP(&outPath, "out", "o", "", "Optional CSV output path")
	projectCmd.Flags().BoolVar(&showRows, "rows", false, "Print the year-by-year table")
	_ = projectCmd.MarkFlagRequired("config")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "Run base and alternative scenarios and print the economy",
		RunE:  runCompare,
	}
	compareCmd.Flags().StringVarP(&cfgPath, "config", "c", "", "Path to YAML scenario config with an alternative block (required)")
	_ = compareCmd.MarkFlagRequired("config")

	carriersCmd := &cobra.Command{
		Use:   "carriers",
		Short: "List known energy carriers and their default escalation rates",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Printf("%-14s %-14s %s\n", "carrier", "label", "default %/yr")
			for _, c := range model.Carriers() {
				fmt.Printf("%-14s %-14s %.1f\n", c, c.Label(), c.DefaultEscalationPct())
			}
			fmt.Println("\npresets:", scenario.Names())
		},
	}

	root.AddCommand(projectCmd, compareCmd, carriersCmd)

	if err := root.Execute(); err != nil {
		log := logger()
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func logger() zerolog.Logger {
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
}

func runProject(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	req, err := cfg.Scenario.ToRequest()
	if err != nil {
		return err
	}

	// A bill file from the form layer replaces the configured bill.
	if billPath != "" {
		billFile, err := data.LoadBillFile(billPath)
		if err != nil {
			return err
		}
		bill, err := billFile.Bill()
		if err != nil {
			return err
		}
		req.Bill = bill
		if err := req.Validate(); err != nil {
			return err
		}
	}

	engine := forecast.New()
	traj, err := engine.Project(req)
	if err != nil {
		return err
	}
	summary := forecast.Summarize(traj)

	fmt.Printf("Scenario %q: %d line items, %d..%d\n",
		cfg.Scenario.Name, len(req.Bill), req.StartYear, req.StartYear+req.HorizonYears)
	fmt.Printf("Base total     %10.2f\n", summary.BaseTotal)
	fmt.Printf("Final total    %10.2f  (x%.3f, %+.1f%%)\n",
		summary.FinalTotal, summary.GrowthFactor, summary.GrowthPercent)
	fmt.Printf("CAGR           %9.2f%%\n", summary.CAGRPercent)
	fmt.Printf("Cumulative     %10.2f  (avg %.2f/yr, surplus %.2f)\n",
		summary.CumulativeTotal, summary.AnnualAverage, summary.CumulativeSurplus)

	if showRows {
		fmt.Printf("\n%-6s %12s\n", "year", "total")
		for _, row := range traj.Rows {
			fmt.Printf("%-6d %12.2f\n", row.Year, row.Total)
		}
	}

	fmt.Println("\nCarrier shares of cumulative cost:")
	for _, s := range analysis.RankByCumulativeCost(traj) {
		fmt.Printf("  %-14s %10.2f  %5.1f%%\n", s.Carrier.Label(), s.CumulativeCost, s.SharePct)
	}

	exportPath := outPath
	if exportPath == "" {
		exportPath = cfg.Export
	}
	if exportPath != "" {
		if err := os.MkdirAll(filepath.Dir(exportPath), 0o755); err != nil {
			return err
		}
		label := cfg.Scenario.Name
		if label == "" {
			label = "scenario"
		}
		if err := forecast.WriteTrajectoryCSV(exportPath, label, traj); err != nil {
			return err
		}
		fmt.Printf("\nWrote %d rows to %s\n", len(traj.Rows), exportPath)
	}

	return nil
}

func runCompare(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg.Alternative == nil {
		return fmt.Errorf("config %s has no alternative scenario", cfgPath)
	}

	baseReq, err := cfg.Scenario.ToRequest()
	if err != nil {
		return err
	}
	altReq, err := cfg.AlternativeRequest()
	if err != nil {
		return err
	}

	engine := forecast.New()
	baseTraj, err := engine.Project(baseReq)
	if err != nil {
		return err
	}
	altTraj, err := engine.Project(altReq)
	if err != nil {
		return err
	}

	cmp := forecast.Compare(baseTraj, altTraj)

	fmt.Printf("%-6s %12s %12s %12s\n", "year", "base", "alternative", "economy")
	for _, d := range cmp.Deltas {
		fmt.Printf("%-6d %12.2f %12.2f %+12.2f\n", d.Year, d.Base, d.Alt, d.Delta)
	}
	fmt.Printf("\nCumulative base        %12.2f\n", cmp.CumulativeBase)
	fmt.Printf("Cumulative alternative %12.2f\n", cmp.CumulativeAlt)
	fmt.Printf("Economy                %+12.2f (%.1f%%)\n", cmp.CumulativeDelta, cmp.CumulativePercent)

	return nil
}
