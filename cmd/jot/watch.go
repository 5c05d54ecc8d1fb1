package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/jot/pkg/adapters/lifecycle"
	"github.com/aretw0/jot/pkg/core"
)

var (
	watchPattern string
	watchTypes   []string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print changes made to the data by other processes",
	Long: `Watch follows the data directory and prints one line per change until
interrupted. Only the fs adapter supports watching.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService()
		if err != nil {
			return err
		}
		defer svc.Close()

		watchable, ok := svc.Store().(core.Watchable)
		if !ok {
			return fmt.Errorf("the %T store does not support watching", svc.Store())
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watch(ctx, cmd, watchable)
	},
}

func watch(ctx context.Context, cmd *cobra.Command, watchable core.Watchable) error {
	events, err := watchable.Watch(ctx, watchPattern)
	if err != nil {
		return err
	}

	var opts []lifecycle.SourceOption
	if len(watchTypes) > 0 {
		types := make([]core.EventType, 0, len(watchTypes))
		for _, t := range watchTypes {
			types = append(types, core.EventType(strings.ToUpper(t)))
		}
		opts = append(opts, lifecycle.WithTypes(types...))
	}

	src := lifecycle.NewSource(events, opts...)
	if err := src.Start(ctx); err != nil {
		return err
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "Watching %q (Ctrl+C to stop)\n", watchPattern)
	for e := range src.Events() {
		fmt.Fprintln(cmd.OutOrStdout(), e.String())
	}
	return nil
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVarP(&watchPattern, "pattern", "p", "*", "Only report keys matching this glob")
	watchCmd.Flags().StringSliceVar(&watchTypes, "type", nil, "Only report these change types (create, modify, delete)")
}
