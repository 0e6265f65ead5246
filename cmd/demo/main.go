package main

import (
	"flag"
	"fmt"

	"sgm-simulator/internal/analysis"
	"sgm-simulator/internal/config"
	"sgm-simulator/internal/model"
	"sgm-simulator/internal/scenario"
	"sgm-simulator/internal/sgm"
)

// Demo:
// - Build a scenario from a built-in usage preset (or a YAML config)
// - Run the SGM engine over it
// - Print a few periods to show how the models fit together
func main() {
	presetName := flag.String("preset", "developer_mistake", "Built-in usage preset")
	cfgPath := flag.String("config", "", "Path to YAML config (optional, overrides --preset)")
	n := flag.Int("n", 12, "Number of periods to print")
	outCSV := flag.String("out", "", "Optional path to write trajectory CSV")
	flag.Parse()

	var sc *model.Scenario
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			panic(err)
		}
		sc = loaded
	} else {
		usage, err := scenario.Preset(*presetName)
		if err != nil {
			panic(err)
		}
		sc, err = model.NewScenario(model.Scenario{
			Name: *presetName,
			Policy: model.Policy{
				Growth:         model.GrowthMultiplicative,
				GrowthRate:     0.10,
				BootstrapLimit: 100,
				MinLimit:       0,
				MaxLimit:       1000,
			},
			Periods: len(usage),
			Usage:   usage,
			Reserved: model.ReservedVolumes{
				Constant: 25,
			},
		})
		if err != nil {
			panic(err)
		}
	}

	runner := sgm.NewRunner()
	res, err := runner.Run(sc)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Scenario %q: %d periods\n\n", sc.Name, sc.Periods)
	for i := 0; i < min(*n, len(res.Trajectory)); i++ {
		r := res.Trajectory[i]
		floorMark := ""
		if r.ReservedFloorApplied {
			floorMark = " floor"
		}
		fmt.Printf(
			"p%02d usage=%7.2f  limit=%7.2f->%7.2f  wallet=%8.2f->%8.2f  %-7s%s\n",
			r.PeriodIndex, r.Usage, r.LimitBefore, r.LimitAfter,
			r.WalletBefore, r.WalletAfter, r.Action, floorMark,
		)
	}

	if *outCSV != "" {
		if err := sgm.WriteTrajectoryCSV(*outCSV, res.Trajectory); err != nil {
			panic(err)
		}
		fmt.Printf("\nWrote CSV: %s\n", *outCSV)
	}

	s := analysis.Summarize(sc, res)
	fmt.Printf("\nDone. Final limit=$%.2f  Final wallet=$%.2f  Peak debt=$%.2f\n",
		s.FinalLimit, s.FinalWallet, s.PeakWalletDebt)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
