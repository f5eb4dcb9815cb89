// Package planner turns probe results into per-file conversion plans.
package planner

import "github.com/sabaoth87/MakeMP4s/internal/config"

// Action describes the per-file processing decision.
type Action int

const (
	ActionConvert Action = iota
	ActionRemux
	ActionSkip
)

// String returns the action name used in logs and reports.
func (a Action) String() string {
	switch a {
	case ActionConvert:
		return "convert"
	case ActionRemux:
		return "remux"
	case ActionSkip:
		return "skip"
	}
	return "unknown"
}

// FilePlan holds the complete set of decisions for processing a single
// media file. It is produced by BuildPlan and consumed by the ffmpeg
// package to construct command arguments and seed retry state.
type FilePlan struct {
	Action     Action
	SkipReason string

	// Codecs: "copy" or the configured encoder names.
	VideoCodec string
	AudioCodec string
	NoAudio    bool

	// Container-specific flags, e.g. -movflags +faststart for MP4.
	ContainerOpts []string

	// Retry initial state.
	MuxQueueSize int
	TimestampFix bool

	InputPath  string
	OutputPath string
	Container  config.Container
}
