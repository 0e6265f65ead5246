package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sgmsim",
		Short: "SGM allowance-growth simulator",
		Long: `sgmsim simulates a periodic usage-allowance growth scheme: given a
subscriber's usage series and a set of policy parameters it computes,
period by period, the allowance limit, the banked wallet balance, the
reserved-volume floor and any manual adjustments.`,
	}

	rootCmd.AddCommand(
		newSimulateCmd(),
		newScenariosCmd(),
		newRankCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
