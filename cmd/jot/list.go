package main

import (
	"context"
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
	"github.com/aretw0/jot/pkg/tui"
)

var (
	listJSON     bool
	listSearch   string
	listCategory string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes, optionally filtered",
	Long: `List notes in creation order. --search matches titles case-insensitively;
--category restricts the list to one category ("all" disables the filter).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		ctx := context.Background()
		if _, err := svc.Dispatch(ctx, core.Command{Kind: core.CmdSetQuery, Text: listSearch}); err != nil {
			return err
		}
		view, err := svc.Dispatch(ctx, core.Command{Kind: core.CmdSelectCategory, Text: listCategory})
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if listJSON {
			encoder := json.NewEncoder(out)
			encoder.SetIndent("", "  ")
			return encoder.Encode(view.Notes)
		}

		if view.Empty {
			fmt.Fprintln(out, tui.NoResults)
			return nil
		}

		w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		for _, n := range view.Notes {
			fmt.Fprintf(w, "%d\t%s\t%s\n", n.ID, n.Category, n.Title)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	listCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Only notes whose title contains this text")
	listCmd.Flags().StringVarP(&listCategory, "category", "c", core.AllCategories, "Only notes of this category")
}
