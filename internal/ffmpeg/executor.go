package ffmpeg

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/mattn/go-isatty"

	"github.com/sabaoth87/MakeMP4s/internal/config"
	"github.com/sabaoth87/MakeMP4s/internal/planner"
)

// ExecResult holds the outcome of a single ffmpeg invocation.
type ExecResult struct {
	Stderr string
	Err    error
}

// Execute builds and runs the ffmpeg command for a file. Stderr is
// tee'd to os.Stderr in real time when verbose, or when progress
// display is on and stderr is a terminal; otherwise it is captured
// silently for retry classification.
func Execute(ctx context.Context, cfg *config.Config, plan *planner.FilePlan, rs *RetryState) ExecResult {
	args := Build(cfg, plan, rs)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)

	var stderrBuf bytes.Buffer
	if cfg.Verbose || (cfg.ShowProgress && isatty.IsTerminal(os.Stderr.Fd())) {
		cmd.Stderr = io.MultiWriter(&stderrBuf, os.Stderr)
	} else {
		cmd.Stderr = &stderrBuf
	}

	err := cmd.Run()
	return ExecResult{
		Stderr: stderrBuf.String(),
		Err:    err,
	}
}
