package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sabaoth87/MakeMP4s/internal/logging"
	"github.com/sabaoth87/MakeMP4s/internal/pipeline"
)

func newAnalyzeCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <scan-dir>",
		Short: "Probe the files a run would process and print the plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.buildConfig(args[0], "")
			if err != nil {
				return err
			}
			if _, err := os.Stat(cfg.ScanDir); err != nil {
				return fmt.Errorf("scan directory not found: %s", cfg.ScanDir)
			}
			log := logging.New(cfg.Verbose)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pipeline.Analyze(ctx, &cfg, log)
			return nil
		},
	}
}
