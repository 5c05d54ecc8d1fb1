package main

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Print internal state as JSON (for debugging)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(map[string]any{
			"component": svc.ComponentType(),
			"state":     svc.State(),
		})
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
