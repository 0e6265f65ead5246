package analysis

import (
	"sort"

	"sgm-simulator/internal/model"
	"sgm-simulator/internal/scenario"
	"sgm-simulator/internal/sgm"
)

type RankedScenario struct {
	Summary
}

// RankPresets runs every built-in usage preset under one policy and sorts
// descending by ending wallet balance, so the scenarios that leave the
// subscriber deepest in debt surface at the bottom.
func RankPresets(policy model.Policy, wallet model.WalletPolicy) ([]RankedScenario, error) {
	runner := sgm.NewRunner()
	presets := scenario.Presets()

	out := make([]RankedScenario, 0, len(presets))
	for name, usage := range presets {
		sc, err := model.NewScenario(model.Scenario{
			Name:    name,
			Policy:  policy,
			Wallet:  wallet,
			Periods: len(usage),
			Usage:   usage,
		})
		if err != nil {
			return nil, err
		}
		res, err := runner.Run(sc)
		if err != nil {
			return nil, err
		}
		out = append(out, RankedScenario{Summary: Summarize(sc, res)})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].FinalWallet != out[j].FinalWallet {
			return out[i].FinalWallet > out[j].FinalWallet
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}
