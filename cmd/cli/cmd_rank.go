package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"sgm-simulator/internal/analysis"
	"sgm-simulator/internal/model"
)

func newRankCmd() *cobra.Command {
	var (
		bootstrap   float64
		growthRate  float64
		minLimit    float64
		maxLimit    float64
		walletModel string
	)

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Run every preset under one policy and rank by wallet outcome",
		RunE: func(cmd *cobra.Command, args []string) error {
			policy := model.Policy{
				Growth:         model.GrowthMultiplicative,
				GrowthRate:     growthRate,
				BootstrapLimit: bootstrap,
				MinLimit:       minLimit,
				MaxLimit:       maxLimit,
			}
			wallet := model.WalletPolicy{Model: model.WalletModel(walletModel)}

			ranked, err := analysis.RankPresets(policy, wallet)
			if err != nil {
				return err
			}

			fmt.Printf("%-4s %-20s %-8s %-12s %-12s %-12s %-10s\n",
				"rank", "preset", "periods", "usage$", "final-limit", "final-wallet", "draw-days")
			for i, r := range ranked {
				fmt.Printf("%-4d %-20s %-8d %-12.2f %-12.2f %-12.2f %-10d\n",
					i+1, r.Name, r.Periods, r.TotalUsage, r.FinalLimit, r.FinalWallet, r.DrawingPeriods)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&bootstrap, "bootstrap", 100, "Bootstrap allowance limit")
	cmd.Flags().Float64Var(&growthRate, "growth-rate", 0.10, "Fractional growth per period")
	cmd.Flags().Float64Var(&minLimit, "min", 0, "Absolute minimum limit")
	cmd.Flags().Float64Var(&maxLimit, "max", 10000, "Absolute maximum limit")
	cmd.Flags().StringVar(&walletModel, "wallet-model", "unlimited", "Wallet cap model: unlimited|limit_2x|three_period")
	return cmd
}
