package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"sgm-simulator/internal/analysis"
	"sgm-simulator/internal/api/models"
	"sgm-simulator/internal/config"
	"sgm-simulator/internal/sgm"
)

func newSimulateCmd() *cobra.Command {
	var (
		cfgPath      string
		outPath      string
		outputFormat string
		billingCycle int
	)

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run one scenario and report the trajectory",
		Long: `Run a scenario described by a YAML config and print a summary,
a per-period table, or JSON. Optionally write the trajectory as CSV.

Examples:
  sgmsim simulate --config examples/scenarios/baseline.yaml
  sgmsim simulate --config examples/scenarios/spike_with_floor.yaml --output detailed --out results/trajectory.csv
  sgmsim simulate --config examples/scenarios/synthetic.yaml --output json --billing-cycle 30`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			runner := sgm.NewRunner()
			res, runErr := runner.Run(sc)
			if runErr != nil {
				if _, ok := runErr.(*sgm.InvariantError); ok && res != nil {
					// Show what we have up to the failing period.
					printDetailed(res.Trajectory)
				}
				return runErr
			}

			switch outputFormat {
			case "json":
				payload := map[string]interface{}{
					"summary":    models.SummaryFromAnalysis(analysis.Summarize(sc, res)),
					"trajectory": models.RowsFromTrajectory(res.Trajectory),
				}
				if billingCycle > 0 {
					payload["invoices"] = models.InvoicesFromAnalysis(
						analysis.BuildInvoices(res.Trajectory, billingCycle))
				}
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(payload); err != nil {
					return err
				}
			case "detailed":
				fmt.Printf("SGM simulation: %s\n", sc.Name)
				printDetailed(res.Trajectory)
				printSummary(analysis.Summarize(sc, res))
			default:
				printSummary(analysis.Summarize(sc, res))
				if billingCycle > 0 {
					printInvoices(analysis.BuildInvoices(res.Trajectory, billingCycle))
				}
			}

			if outPath != "" {
				if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
					return err
				}
				if err := sgm.WriteTrajectoryCSV(outPath, res.Trajectory); err != nil {
					return err
				}
				fmt.Printf("Wrote %d rows to %s\n", len(res.Trajectory), outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to YAML scenario config (required)")
	cmd.Flags().StringVar(&outPath, "out", "", "Optional CSV output path")
	cmd.Flags().StringVar(&outputFormat, "output", "summary", "Output format: summary|detailed|json")
	cmd.Flags().IntVar(&billingCycle, "billing-cycle", 0, "Billing cycle length in periods (0 = no invoices)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func printDetailed(trajectory []sgm.PeriodResult) {
	fmt.Println("-------------------------------------------------------------------------------------------")
	fmt.Println("Period | Limit-> | Usage    | Candidate | Limit    | Wallet    | Floor | Override | Action")
	fmt.Println("-------------------------------------------------------------------------------------------")
	for _, r := range trajectory {
		floorMark := " "
		if r.ReservedFloorApplied {
			floorMark = "*"
		}
		fmt.Printf("%6d | %7.2f | %8.2f | %9.2f | %8.2f | %9.2f | %5s | %8.2f | %s\n",
			r.PeriodIndex, r.LimitBefore, r.Usage, r.GrowthCandidate, r.LimitAfter,
			r.WalletAfter, floorMark, r.ManualOverrideApplied, r.Action)
	}
}

func printSummary(s analysis.Summary) {
	fmt.Printf("SIMULATION SUMMARY: %s\n", s.Name)
	fmt.Printf("Periods: %d\n", s.Periods)
	fmt.Printf("Total usage: $%.2f\n", s.TotalUsage)
	fmt.Printf("Banked: $%.2f over %d periods\n", s.TotalBanked, s.BankingPeriods)
	fmt.Printf("Drawn: $%.2f over %d periods\n", s.TotalDrawn, s.DrawingPeriods)
	if s.TotalForfeited > 0 {
		fmt.Printf("Forfeited by wallet cap: $%.2f\n", s.TotalForfeited)
	}
	fmt.Printf("Floor periods: %d  Cap periods: %d  Override periods: %d\n",
		s.FloorPeriods, s.CapPeriods, s.OverridePeriods)
	fmt.Printf("Final limit: $%.2f  Final wallet: $%.2f  Peak debt: $%.2f\n",
		s.FinalLimit, s.FinalWallet, s.PeakWalletDebt)
}

func printInvoices(invoices []analysis.Invoice) {
	if len(invoices) == 0 {
		return
	}
	fmt.Println("\nInvoices:")
	for _, inv := range invoices {
		fmt.Printf("  cycle %d (periods %d-%d): prepaid $%.2f + metered $%.2f = $%.2f\n",
			inv.Cycle, inv.StartPeriod, inv.EndPeriod, inv.PrepaidReserved, inv.MeteredUsage, inv.Total)
	}
}
