// Package ffmpeg builds and executes ffmpeg commands with a shared
// argument skeleton and stderr-classified retry logic.
package ffmpeg

import (
	"strconv"

	"github.com/sabaoth87/MakeMP4s/internal/config"
	"github.com/sabaoth87/MakeMP4s/internal/planner"
)

// Build constructs the complete ffmpeg argument slice for a file.
//
// The retry parameter supplies the current values for mux queue size and
// timestamp fix, which may differ from the plan's initial values after
// retry adjustments.
func Build(cfg *config.Config, plan *planner.FilePlan, rs *RetryState) []string {
	args := make([]string, 0, 32)

	// --- Preamble ---
	args = append(args, "ffmpeg", "-hide_banner", "-nostdin", "-y")

	if cfg.Verbose {
		args = append(args, "-loglevel", "info", "-stats", "-stats_period", "1")
	} else if cfg.ShowProgress {
		args = append(args, "-loglevel", "error", "-stats", "-stats_period", "1")
	} else {
		args = append(args, "-loglevel", "error")
	}

	// --- Pre-input flags (timestamp fix) ---
	if rs.TimestampFix {
		args = append(args, "-fflags", "+genpts+discardcorrupt")
	}

	// --- Input ---
	args = append(args, "-i", plan.InputPath)

	// --- Stream maps ---
	args = append(args, "-map", "0:v:0")
	if plan.NoAudio {
		args = append(args, "-an")
	} else {
		args = append(args, "-map", "0:a:0")
	}

	// Data streams never survive the container change.
	args = append(args,
		"-dn", "-sn",
		"-max_muxing_queue_size", strconv.Itoa(rs.MuxQueueSize),
	)

	// --- Codecs ---
	args = append(args, "-c:v", plan.VideoCodec)
	if !plan.NoAudio {
		args = append(args, "-c:a", plan.AudioCodec)
	}

	// --- Post-input timestamp flag ---
	if rs.TimestampFix {
		args = append(args, "-avoid_negative_ts", "make_zero")
	}

	// --- Container opts (e.g. -movflags +faststart) ---
	args = append(args, plan.ContainerOpts...)

	// --- Output ---
	args = append(args, plan.OutputPath)

	return args
}
