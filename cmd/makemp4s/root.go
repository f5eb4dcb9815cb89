package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sabaoth87/MakeMP4s/internal/config"
)

// globalOptions holds the persistent flag values shared by subcommands.
type globalOptions struct {
	configPath     string
	verbose        bool
	dryRun         bool
	container      string
	logDir         string
	strict         bool
	noStreamCopy   bool
	noSkipExisting bool
	noProgress     bool
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:           "makemp4s",
		Short:         "Convert video collections into a cleanly named MP4 library",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Configuration file path")
	pf.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output (ffmpeg stderr, debug logs)")
	pf.BoolVar(&opts.dryRun, "dry-run", false, "Show what would happen without writing files")
	pf.StringVar(&opts.container, "container", "", "Output container: mp4 or mkv")
	pf.StringVar(&opts.logDir, "log-dir", "", "Directory for per-run log files")
	pf.BoolVar(&opts.strict, "strict", false, "Fail on first ffmpeg error instead of retrying")
	pf.BoolVar(&opts.noStreamCopy, "no-stream-copy", false, "Always re-encode, even compatible streams")
	pf.BoolVar(&opts.noSkipExisting, "no-skip-existing", false, "Overwrite outputs that already exist")
	pf.BoolVar(&opts.noProgress, "no-progress", false, "Disable live ffmpeg progress output")

	rootCmd.AddCommand(newRunCommand(opts))
	rootCmd.AddCommand(newCheckCommand(opts))
	rootCmd.AddCommand(newAnalyzeCommand(opts))
	rootCmd.AddCommand(newHistoryCommand(opts))
	rootCmd.AddCommand(newTUICommand(opts))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

// buildConfig layers defaults, the optional YAML file, and flag
// overrides into a Config. Directory arguments may be empty for
// commands that do not need them.
func (o *globalOptions) buildConfig(scanDir, outputDir string) (config.Config, error) {
	cfg := config.DefaultConfig()

	path := o.configPath
	if path == "" {
		path = config.DefaultFilePath()
	}
	fc, err := config.LoadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := config.ApplyFile(&cfg, fc); err != nil {
		return cfg, err
	}

	if o.container != "" {
		cfg.OutputContainer = config.Container(o.container)
	}
	if o.logDir != "" {
		cfg.LogDir = o.logDir
	}
	cfg.Verbose = o.verbose
	cfg.DryRun = o.dryRun
	cfg.StrictMode = o.strict
	if o.noStreamCopy {
		cfg.StreamCopy = false
	}
	if o.noSkipExisting {
		cfg.SkipExisting = false
	}
	if o.noProgress {
		cfg.ShowProgress = false
	}

	cfg.ScanDir = config.NormalizeDirArg(scanDir)
	cfg.OutputDir = config.NormalizeDirArg(outputDir)
	return cfg, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("makemp4s %s (%s)\n", version, commit)
		},
	}
}

// version and commit are set at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)
