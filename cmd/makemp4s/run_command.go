package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sabaoth87/MakeMP4s/internal/check"
	"github.com/sabaoth87/MakeMP4s/internal/config"
	"github.com/sabaoth87/MakeMP4s/internal/display"
	"github.com/sabaoth87/MakeMP4s/internal/history"
	"github.com/sabaoth87/MakeMP4s/internal/logging"
	"github.com/sabaoth87/MakeMP4s/internal/pipeline"
)

func newRunCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scan-dir> <output-dir>",
		Short: "Convert every non-playable video under scan-dir into output-dir",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.buildConfig(args[0], args[1])
			if err != nil {
				return err
			}
			return runPipeline(&cfg)
		},
	}
}

func runPipeline(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logging.NewWithFile(cfg.LogDir, cfg.Verbose)
	if err != nil {
		return err
	}
	defer log.Close()

	display.PrintBanner()
	log.Infof("=== MakeMP4s v%s ===", version)
	if log.FilePath() != "" {
		log.Infof("Log file: %s", log.FilePath())
	}

	// Resolve and compare paths so the pipeline never discovers its own
	// output files.
	scanAbs, err := absPath(cfg.ScanDir)
	if err != nil {
		return fmt.Errorf("scan directory not found: %s", cfg.ScanDir)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %s", cfg.OutputDir)
	}
	outputAbs, err := absPath(cfg.OutputDir)
	if err != nil {
		return fmt.Errorf("cannot resolve output path: %s", cfg.OutputDir)
	}
	if err := cfg.ValidatePaths(scanAbs, outputAbs); err != nil {
		return err
	}
	cfg.ScanDir = scanAbs
	cfg.OutputDir = outputAbs

	if err := check.CheckDeps(cfg); err != nil {
		return err
	}

	var store *history.Store
	if !cfg.DryRun {
		store, err = history.Open(cfg.ResolvedHistoryPath())
		if err != nil {
			log.Warnf("History disabled: %v", err)
		} else {
			defer store.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stats := pipeline.Run(ctx, cfg, log, store)
	if stats.Failed > 0 {
		return fmt.Errorf("%d of %d files failed", stats.Failed, stats.Total)
	}
	return nil
}

// absPath returns the absolute path with symlinks resolved, for
// comparing the scan vs output hierarchy.
func absPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}
