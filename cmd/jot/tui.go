package main

import (
	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive terminal UI",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		return tui.Run(cmd.Context(), svc)
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
