package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sabaoth87/MakeMP4s/internal/check"
	"github.com/sabaoth87/MakeMP4s/internal/history"
	"github.com/sabaoth87/MakeMP4s/internal/logging"
	"github.com/sabaoth87/MakeMP4s/internal/tui"
)

func newTUICommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui <scan-dir> <output-dir>",
		Short: "Run the conversion batch in an interactive terminal UI",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.buildConfig(args[0], args[1])
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

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
			// ffmpeg stderr passthrough would corrupt the alt screen.
			cfg.ShowProgress = false

			if err := check.CheckDeps(&cfg); err != nil {
				return err
			}

			// The TUI owns the terminal, so logging goes to the file
			// sink only.
			log, err := logging.NewFileOnly(cfg.LogDir)
			if err != nil {
				return err
			}
			defer log.Close()

			var store *history.Store
			if !cfg.DryRun {
				store, err = history.Open(cfg.ResolvedHistoryPath())
				if err == nil {
					defer store.Close()
				}
			}

			p := tea.NewProgram(tui.NewModel(&cfg, log, store), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}
}
