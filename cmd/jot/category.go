package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/core"
)

var categoryCmd = &cobra.Command{
	Use:     "category",
	Aliases: []string{"categories"},
	Short:   "Manage note categories",
}

var categoryAddCmd = &cobra.Command{
	Use:   "add [label]",
	Short: "Register a new category",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		label := strings.TrimSpace(args[0])
		if label == "" || label == core.AllCategories {
			return fmt.Errorf("invalid category label %q", args[0])
		}

		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		if svc.Categories().Has(label) {
			fmt.Fprintf(cmd.OutOrStdout(), "Category already exists: %s\n", label)
			return nil
		}
		if _, err := svc.Dispatch(context.Background(), core.Command{Kind: core.CmdAddCategory, Text: label}); err != nil {
			return fmt.Errorf("failed to add category: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Category added: %s\n", label)
		return nil
	},
}

var categoryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List categories in the order they were added",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		for _, label := range svc.View().Categories {
			fmt.Fprintln(cmd.OutOrStdout(), label)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(categoryCmd)
	categoryCmd.AddCommand(categoryAddCmd)
	categoryCmd.AddCommand(categoryListCmd)
}
