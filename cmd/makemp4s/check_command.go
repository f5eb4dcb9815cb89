package main

import (
	"github.com/spf13/cobra"

	"github.com/sabaoth87/MakeMP4s/internal/check"
	"github.com/sabaoth87/MakeMP4s/internal/logging"
)

func newCheckCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify ffmpeg, ffprobe and the configured encoders work",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.buildConfig("", "")
			if err != nil {
				return err
			}
			log := logging.New(cfg.Verbose)
			check.RunCheck(&cfg, log)
			return nil
		},
	}
}
