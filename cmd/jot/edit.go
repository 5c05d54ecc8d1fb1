package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var (
	editTitle       string
	editDescription string
	editCategory    string
)

var editCmd = &cobra.Command{
	Use:   "edit [id]",
	Short: "Change the fields of a note",
	Long:  `Edit replaces only the fields given as flags and keeps the others.`,
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

		ctx := context.Background()
		view, err := svc.Dispatch(ctx, core.Command{Kind: core.CmdOpenEdit, ID: id})
		if err != nil {
			return err
		}
		if !view.Edit.Open {
			return fmt.Errorf("%w: %d", core.ErrNotFound, id)
		}

		flags := cmd.Flags()
		var cmds []core.Command
		if flags.Changed("title") {
			cmds = append(cmds, core.Command{Kind: core.CmdEditTitle, Text: editTitle})
		}
		if flags.Changed("desc") {
			cmds = append(cmds, core.Command{Kind: core.CmdEditDescription, Text: editDescription})
		}
		if flags.Changed("category") {
			cmds = append(cmds, core.Command{Kind: core.CmdEditCategory, Text: editCategory})
		}
		if len(cmds) == 0 {
			return errors.New("nothing to change: pass --title, --desc or --category")
		}
		cmds = append(cmds, core.Command{Kind: core.CmdCommitEdit})

		for _, c := range cmds {
			if view, err = svc.Dispatch(ctx, c); err != nil {
				return fmt.Errorf("failed to update note: %w", err)
			}
		}
		if view.Edit.Open {
			return errors.New("title and description cannot both be empty")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Note updated: %d\n", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(editCmd)
	editCmd.Flags().StringVarP(&editTitle, "title", "t", "", "New title")
	editCmd.Flags().StringVarP(&editDescription, "desc", "d", "", "New description")
	editCmd.Flags().StringVarP(&editCategory, "category", "c", "", "New category")
}
