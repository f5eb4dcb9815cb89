package planner

import (
	"github.com/sabaoth87/MakeMP4s/internal/config"
	"github.com/sabaoth87/MakeMP4s/internal/probe"
)

// BuildPlan produces a FilePlan from config and probe data. This is the
// per-file decision matrix the pipeline calls before invoking ffmpeg.
//
// Flow:
//  1. Skip files with no real video stream.
//  2. Per-stream copy: when StreamCopy is enabled and a stream already
//     matches the target codec, pass it through instead of re-encoding.
//  3. Remux when both streams end up copied; convert otherwise.
//  4. Container opts (MP4 gets faststart for streaming playback).
func BuildPlan(cfg *config.Config, pr *probe.ProbeResult) *FilePlan {
	plan := &FilePlan{
		MuxQueueSize: 4096,
		Container:    cfg.OutputContainer,
	}

	if !pr.HasVideo() {
		plan.Action = ActionSkip
		plan.SkipReason = "no video stream"
		return plan
	}

	plan.VideoCodec = cfg.VideoEncoder
	if cfg.StreamCopy && codecMatchesEncoder(pr.VideoCodec(), cfg.VideoEncoder) {
		plan.VideoCodec = "copy"
	}

	if len(pr.AudioStreams) == 0 {
		plan.NoAudio = true
	} else {
		plan.AudioCodec = cfg.AudioEncoder
		if cfg.StreamCopy && codecMatchesEncoder(pr.AudioCodec(), cfg.AudioEncoder) {
			plan.AudioCodec = "copy"
		}
	}

	if plan.VideoCodec == "copy" && (plan.NoAudio || plan.AudioCodec == "copy") {
		plan.Action = ActionRemux
	} else {
		plan.Action = ActionConvert
	}

	if cfg.OutputContainer == config.ContainerMP4 {
		plan.ContainerOpts = []string{"-movflags", "+faststart"}
	}

	return plan
}

// codecMatchesEncoder reports whether a probed codec name is what the
// configured encoder would produce (libx264 emits h264, aac emits aac).
func codecMatchesEncoder(codec, encoder string) bool {
	if codec == "" {
		return false
	}
	switch encoder {
	case "libx264", "h264":
		return codec == "h264"
	case "libx265", "hevc":
		return codec == "hevc"
	case "aac":
		return codec == "aac"
	}
	return codec == encoder
}
