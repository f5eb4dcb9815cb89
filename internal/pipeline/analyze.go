package pipeline

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/sabaoth87/MakeMP4s/internal/config"
	"github.com/sabaoth87/MakeMP4s/internal/display"
	"github.com/sabaoth87/MakeMP4s/internal/logging"
	"github.com/sabaoth87/MakeMP4s/internal/naming"
	"github.com/sabaoth87/MakeMP4s/internal/planner"
	"github.com/sabaoth87/MakeMP4s/internal/probe"
)

// analyzeRow holds the probed per-file data for the analysis report.
type analyzeRow struct {
	Name       string
	NewName    string
	Resolution string
	Video      string
	Audio      string
	Subtitles  string
	Size       int64
	Planned    string
}

// Analyze discovers candidate files, probes each one, and prints a
// preview table of codecs and the conversion each file would get.
func Analyze(ctx context.Context, cfg *config.Config, log *logging.Logger) {
	files, err := Discover(cfg.ScanDir, cfg)
	if err != nil {
		log.Errorf("File discovery failed: %v", err)
		return
	}
	if len(files) == 0 {
		log.Warnf("No candidate files found in %s", cfg.ScanDir)
		return
	}

	log.Infof("Analyzing %d files in %s ...", len(files), cfg.ScanDir)

	var rows []analyzeRow
	var failed int
	for _, path := range files {
		if ctx.Err() != nil {
			log.Warnf("Interrupted")
			return
		}

		base := filepath.Base(path)
		pr, err := probe.Probe(ctx, path)
		if err != nil {
			failed++
			log.Warnf("Skip (probe failed): %s", base)
			continue
		}

		plan := planner.BuildPlan(cfg, pr)
		info := naming.ParseFilename(base)

		row := analyzeRow{
			Name:       base,
			NewName:    info.Render() + "." + string(cfg.OutputContainer),
			Resolution: pr.Resolution(),
			Video:      pr.VideoCodec(),
			Audio:      pr.AudioCodec(),
			Subtitles:  pr.SubtitleSummary(),
			Size:       pr.Format.Size,
			Planned:    plan.Action.String(),
		}
		if plan.Action == planner.ActionSkip {
			row.Planned = "skip: " + plan.SkipReason
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		log.Warnf("No files could be probed")
		return
	}

	fmt.Println(renderAnalysisTable(rows))
	log.Infof("Analyzed %d files (%d unreadable)", len(rows), failed)
}

func renderAnalysisTable(rows []analyzeRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"File", "New Name", "Resolution", "Video", "Audio", "Subs", "Size", "Action"})

	for _, r := range rows {
		video := r.Video
		if video == "" {
			video = "-"
		}
		audio := r.Audio
		if audio == "" {
			audio = "-"
		}
		subs := r.Subtitles
		if subs == "" {
			subs = "-"
		}
		tw.AppendRow(table.Row{
			r.Name, r.NewName, r.Resolution, video, audio, subs,
			display.FormatBytes(r.Size), r.Planned,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 7, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
