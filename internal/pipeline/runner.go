// Package pipeline orchestrates file discovery, per-file conversion, and
// batch summary reporting.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sabaoth87/MakeMP4s/internal/config"
	"github.com/sabaoth87/MakeMP4s/internal/display"
	"github.com/sabaoth87/MakeMP4s/internal/ffmpeg"
	"github.com/sabaoth87/MakeMP4s/internal/history"
	"github.com/sabaoth87/MakeMP4s/internal/logging"
	"github.com/sabaoth87/MakeMP4s/internal/naming"
	"github.com/sabaoth87/MakeMP4s/internal/planner"
	"github.com/sabaoth87/MakeMP4s/internal/probe"
)

// Files smaller than this are treated as corrupt stubs.
const minFileSize = 1000

// EventType identifies a progress notification.
type EventType int

const (
	EventFileStarted EventType = iota
	EventFileFinished
)

// Event is a per-file progress notification delivered to an optional
// observer (the TUI uses this).
type Event struct {
	Type   EventType
	Index  int
	Total  int
	Input  string
	Output string
	Status string // history status for finished events
	Err    error
}

// Notifier receives progress events. It is called from the pipeline
// goroutine; observers must not block for long.
type Notifier func(Event)

// Run is the top-level batch entry point. It discovers candidate files,
// processes each one sequentially, and returns aggregate stats. Outcomes
// are recorded to store when it is non-nil.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger, store *history.Store) RunStats {
	return RunWithNotify(ctx, cfg, log, store, nil)
}

// RunWithNotify is Run with a progress observer attached.
func RunWithNotify(ctx context.Context, cfg *config.Config, log *logging.Logger, store *history.Store, notify Notifier) RunStats {
	stats := RunStats{DryRun: cfg.DryRun}

	files, err := Discover(cfg.ScanDir, cfg)
	if err != nil {
		log.Errorf("File discovery failed: %v", err)
		return stats
	}

	stats.Total = len(files)
	resolver := naming.NewCollisionResolver()

	logBatchHeader(cfg, log, &stats)

	for i, path := range files {
		stats.Current = i + 1

		if ctx.Err() != nil {
			log.Warnf("Interrupted")
			break
		}

		if notify != nil {
			notify(Event{Type: EventFileStarted, Index: stats.Current, Total: stats.Total, Input: path})
		}
		entry := processFile(ctx, cfg, log, path, &stats, resolver)
		if store != nil && entry.Status != "" {
			if _, recErr := store.Record(ctx, entry); recErr != nil {
				log.Warnf("History record failed: %v", recErr)
			}
		}
		if notify != nil {
			notify(Event{
				Type: EventFileFinished, Index: stats.Current, Total: stats.Total,
				Input: path, Output: entry.OutputPath, Status: entry.Status,
			})
		}
	}

	logSummary(log, &stats)
	return stats
}

// processFile handles one media file: validate, probe, name, plan,
// execute. The returned entry's Status is "" when nothing should be
// recorded (dry run).
func processFile(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	path string,
	stats *RunStats,
	resolver *naming.CollisionResolver,
) history.Entry {
	basename := filepath.Base(path)
	log.Infof("[%d/%d] %s", stats.Current, stats.Total, basename)

	info := naming.ParseFilename(basename)
	entry := history.Entry{
		InputPath: path,
		Title:     info.Title,
		Kind:      info.Kind.String(),
	}

	fail := func(format string, args ...any) history.Entry {
		log.Errorf(format, args...)
		stats.Failed++
		entry.Status = history.StatusFailed
		entry.Error = fmt.Sprintf(format, args...)
		return entry
	}
	skip := func(reason string) history.Entry {
		stats.Skipped++
		entry.Status = history.StatusSkipped
		entry.Error = reason
		return entry
	}

	// --- Validate ---
	fi, err := os.Stat(path)
	if err != nil {
		return fail("File not found: %s", path)
	}
	if fi.Size() < minFileSize {
		return fail("File too small (possibly corrupt): %s", path)
	}
	entry.InputSize = fi.Size()

	// --- Probe ---
	pr, err := probe.Probe(ctx, path)
	if err != nil {
		return fail("Cannot probe file (possibly corrupt): %v", err)
	}

	// --- Plan ---
	if subs := pr.SubtitleSummary(); subs != "" {
		log.Debugf("Dropping subtitle streams (%s): %s", subs, basename)
	}
	plan := planner.BuildPlan(cfg, pr)
	if plan.Action == planner.ActionSkip {
		log.Warnf("Skip (%s): %s", plan.SkipReason, basename)
		return skip(plan.SkipReason)
	}

	// --- Resolve output path ---
	outputPath := naming.OutputPath(info, cfg.OutputDir, string(cfg.OutputContainer))
	outputPath = resolver.Resolve(path, outputPath)
	plan.InputPath = path
	plan.OutputPath = outputPath
	entry.OutputPath = outputPath
	entry.Action = plan.Action.String()

	// --- Skip-existing check ---
	if cfg.SkipExisting {
		if _, err := os.Stat(outputPath); err == nil {
			log.Warnf("Skip (exists): %s", filepath.Base(outputPath))
			return skip("output exists")
		}
	}

	log.Infof("%s: %s", actionLabel(plan), basename)
	log.Infof("  -> %s", filepath.Base(outputPath))

	// --- Dry-run ---
	if cfg.DryRun {
		log.Successf("[DRY] Would %s", plan.Action)
		countSuccess(stats, plan)
		entry.Status = ""
		return entry
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0o755); err != nil {
		return fail("Cannot create output directory: %v", err)
	}

	// --- Execute with retry ---
	start := time.Now()
	rs := ffmpeg.NewRetryState(plan, cfg.StrictMode)
	if ok := executeWithRetry(ctx, cfg, log, plan, rs); !ok {
		os.Remove(outputPath)
		return fail("%s failed: %s", strings.ToUpper(entry.Action[:1])+entry.Action[1:], basename)
	}

	// --- Verify output (missing or empty file means ffmpeg lied) ---
	outInfo, err := os.Stat(outputPath)
	if err != nil || outInfo.Size() == 0 {
		os.Remove(outputPath)
		return fail("Output file missing or empty: %s", filepath.Base(outputPath))
	}

	// --- Update stats ---
	elapsed := time.Since(start)
	entry.OutputSize = outInfo.Size()
	entry.Duration = elapsed
	entry.Status = history.StatusSuccess

	stats.TotalInputBytes += entry.InputSize
	stats.TotalOutputBytes += entry.OutputSize
	countSuccess(stats, plan)

	ratio := int64(100)
	if entry.InputSize > 0 {
		ratio = entry.OutputSize * 100 / entry.InputSize
	}
	log.Successf("%sed in %ds (%d%% of original)",
		strings.ToUpper(entry.Action[:1])+entry.Action[1:], int(elapsed.Seconds()), ratio)
	return entry
}

func countSuccess(stats *RunStats, plan *planner.FilePlan) {
	if plan.Action == planner.ActionRemux {
		stats.Remuxed++
	} else {
		stats.Converted++
	}
}

func actionLabel(plan *planner.FilePlan) string {
	if plan.Action == planner.ActionRemux {
		return "Remuxing (streams already compatible)"
	}
	return fmt.Sprintf("Converting (video %s, audio %s)", plan.VideoCodec, plan.AudioCodec)
}

// executeWithRetry runs the retry loop: execute ffmpeg, classify stderr
// on failure, apply the first matching fix, and retry. Returns true if
// ffmpeg eventually succeeds.
func executeWithRetry(
	ctx context.Context,
	cfg *config.Config,
	log *logging.Logger,
	plan *planner.FilePlan,
	rs *ffmpeg.RetryState,
) bool {
	for {
		result := ffmpeg.Execute(ctx, cfg, plan, rs)
		if result.Err == nil {
			return true
		}

		// Stop retrying if the context has been cancelled (e.g. SIGINT).
		if ctx.Err() != nil {
			log.Warnf("Interrupted, aborting retries")
			return false
		}

		action := rs.Advance(result.Stderr)
		if action == ffmpeg.RetryNone {
			if cfg.StrictMode {
				log.Errorf("ffmpeg failed (strict mode, no retry)")
			} else {
				log.Errorf("ffmpeg failed (no applicable retry)")
			}
			logStderr(log, result.Stderr)
			return false
		}

		log.Warnf("Retry %d: %s", rs.Attempt, action)
		os.Remove(plan.OutputPath)
	}
}

func logStderr(log *logging.Logger, stderr string) {
	if stderr == "" {
		return
	}
	log.Errorf("Last ffmpeg output:")
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	start := 0
	if len(lines) > 20 {
		start = len(lines) - 20
	}
	for _, l := range lines[start:] {
		log.Errorf("  %s", l)
	}
}

// --- Logging helpers ---

func logBatchHeader(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Infof("Found %d files to process in %s", stats.Total, cfg.ScanDir)
	log.Infof("Output: %s (container %s)", cfg.OutputDir, strings.ToUpper(string(cfg.OutputContainer)))
	log.Infof("Codecs: video %s, audio %s", cfg.VideoEncoder, cfg.AudioEncoder)
	if cfg.StreamCopy {
		log.Infof("Stream copy: passthrough streams already in the target codec")
	}
	if cfg.StrictMode {
		log.Infof("Retry policy: strict mode (no auto-retry)")
	}
	if cfg.DryRun {
		log.Infof("Dry run: no files will be written")
	}
}

func logSummary(log *logging.Logger, stats *RunStats) {
	log.Infof("Done: %d converted, %d remuxed, %d skipped, %d failed",
		stats.Converted, stats.Remuxed, stats.Skipped, stats.Failed)
	fmt.Println(stats.SummaryTable())

	if stats.DryRun {
		return
	}
	saved := stats.SpaceSaved()
	if saved >= 0 {
		log.Successf("Total space saved: %s (input %s -> output %s)",
			display.FormatBytes(saved),
			display.FormatBytes(stats.TotalInputBytes),
			display.FormatBytes(stats.TotalOutputBytes))
	} else {
		log.Warnf("Total space saved: -%s (overall output is larger)",
			display.FormatBytes(-saved))
	}
}
