package main

import (
	"flag"
	"fmt"

	"bill-forecast/internal/config"
	"bill-forecast/internal/forecast"
	"bill-forecast/internal/model"
)

// Demo:
// - Build a typical household bill (or load one from --config)
// - Project it over a couple of decades with catalog escalation defaults
// - Print the trajectory to show how the pieces fit together
func main() {
	cfgPath := flag.String("config", "", "Path to YAML scenario config (optional)")
	outCSV := flag.String("out", "", "Optional path to write trajectory CSV (e.g. results/trajectory.csv)")
	flag.Parse()

	// Defaults (can be overridden via --config).
	req := model.ProjectionRequest{
		StartYear:    2024,
		HorizonYears: 20,
		Bill: model.Bill{
			{Carrier: model.CarrierElectricity, AnnualKWh: 3500, UnitPrice: 0.32},
			{Carrier: model.CarrierNaturalGas, AnnualKWh: 18000, UnitPrice: 0.11},
		},
		Rates: model.RateMap{},
	}

	if *cfgPath != "" {
		cfg, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		req, err = cfg.Scenario.ToRequest()
		if err != nil {
			panic(err)
		}
	}

	if err := req.Validate(); err != nil {
		panic(err)
	}

	engine := forecast.New()
	traj, err := engine.Project(req)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Projecting %d line items over %d years from %d\n\n",
		len(req.Bill), req.HorizonYears, req.StartYear)

	for _, row := range traj.Rows {
		fmt.Printf("%d  total=%9.2f", row.Year, row.Total)
		for _, item := range row.Items {
			fmt.Printf("  %s=%8.2f @%.4f", item.Carrier, item.Cost, item.UnitPrice)
		}
		fmt.Println()
	}

	s := forecast.Summarize(traj)
	fmt.Printf("\nGrowth x%.3f (%+.1f%%)  CAGR=%.2f%%  cumulative=%.2f  surplus=%.2f\n",
		s.GrowthFactor, s.GrowthPercent, s.CAGRPercent, s.CumulativeTotal, s.CumulativeSurplus)

	if *outCSV != "" {
		if err := forecast.WriteTrajectoryCSV(*outCSV, "demo", traj); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}
}
