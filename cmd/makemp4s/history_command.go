package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabaoth87/MakeMP4s/internal/history"
)

func newHistoryCommand(opts *globalOptions) *cobra.Command {
	var (
		limit  int
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent conversion results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.buildConfig("", "")
			if err != nil {
				return err
			}
			path := dbPath
			if path == "" {
				path = cfg.ResolvedHistoryPath()
			}

			store, err := history.Open(path)
			if err != nil {
				return err
			}
			defer store.Close()

			entries, err := store.Recent(context.Background(), limit)
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Println("No conversions recorded yet.")
				return nil
			}
			fmt.Println(history.RenderTable(entries))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of entries to show")
	cmd.Flags().StringVar(&dbPath, "db", "", "History database path")
	return cmd
}
