package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var (
	addTitle       string
	addDescription string
	addCategory    string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a note",
	Long: `Create a note from a title and a description. At least one of them must
contain something other than whitespace. Without --category the first
registered category is used.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		ctx := context.Background()
		cmds := []core.Command{
			{Kind: core.CmdSetTitle, Text: addTitle},
			{Kind: core.CmdSetDescription, Text: addDescription},
		}
		if addCategory != "" {
			if !svc.Categories().Has(addCategory) {
				slog.Warn("category is not registered", "category", addCategory)
			}
			cmds = append(cmds, core.Command{Kind: core.CmdSetCategory, Text: addCategory})
		}
		cmds = append(cmds, core.Command{Kind: core.CmdSaveDraft})

		var view core.View
		for _, c := range cmds {
			if view, err = svc.Dispatch(ctx, c); err != nil {
				return fmt.Errorf("failed to save note: %w", err)
			}
		}

		if view.Created == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "Nothing to save: title and description are empty")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Note created: %d\n", view.Created)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addTitle, "title", "t", "", "Note title")
	addCmd.Flags().StringVarP(&addDescription, "desc", "d", "", "Note description")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "Note category")
}
