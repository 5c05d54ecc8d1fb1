package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		view, err := svc.Dispatch(context.Background(), core.Command{Kind: core.CmdOpenView, ID: id})
		if err != nil {
			return err
		}
		if !view.Viewing.Open {
			return fmt.Errorf("%w: %d", core.ErrNotFound, id)
		}
		n := view.Viewing.Note

		out := cmd.OutOrStdout()
		if showJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(n)
		}

		fmt.Fprintf(out, "%s\n[%s]\n", n.Title, n.Category)
		if n.Description != "" {
			fmt.Fprintf(out, "\n%s\n", n.Description)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
}
