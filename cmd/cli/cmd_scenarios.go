package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sgm-simulator/internal/scenario"
)

func newScenariosCmd() *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List built-in usage presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := scenario.Presets()
			names := scenario.PresetNames()

			if jsonOut {
				type entry struct {
					Name    string `json:"name"`
					Periods int    `json:"periods"`
				}
				entries := make([]entry, 0, len(names))
				for _, name := range names {
					entries = append(entries, entry{Name: name, Periods: len(presets[name])})
				}
				return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
					"presets": entries,
				})
			}

			fmt.Printf("%-20s %s\n", "preset", "periods")
			for _, name := range names {
				fmt.Printf("%-20s %d\n", name, len(presets[name]))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON")
	return cmd
}
