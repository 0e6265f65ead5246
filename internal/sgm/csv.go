package sgm

import (
	"encoding/csv"
	"os"
	"strconv"
)

func WriteTrajectoryCSV(path string, trajectory []PeriodResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{
		"period_index",
		"limit_before",
		"usage",
		"growth_candidate",
		"limit_after",
		"wallet_before",
		"wallet_after",
		"wallet_forfeited",
		"reserved_floor",
		"reserved_floor_applied",
		"manual_override_applied",
		"action",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, r := range trajectory {
		row := []string{
			strconv.Itoa(r.PeriodIndex),
			fmtFloat(r.LimitBefore),
			fmtFloat(r.Usage),
			fmtFloat(r.GrowthCandidate),
			fmtFloat(r.LimitAfter),
			fmtFloat(r.WalletBefore),
			fmtFloat(r.WalletAfter),
			fmtFloat(r.WalletForfeited),
			fmtFloat(r.ReservedFloor),
			strconv.FormatBool(r.ReservedFloorApplied),
			fmtFloat(r.ManualOverrideApplied),
			string(r.Action),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}

func fmtFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
