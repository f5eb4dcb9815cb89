package ffmpeg

import "github.com/sabaoth87/MakeMP4s/internal/planner"

// RetryAction identifies which fix was applied (or none).
type RetryAction int

const (
	RetryNone          RetryAction = iota
	RetryIncreaseMux               // Raise max_muxing_queue_size to 16384.
	RetryFixTimestamps             // Enable +genpts+discardcorrupt.
)

// String returns the action name used in logs.
func (a RetryAction) String() string {
	switch a {
	case RetryIncreaseMux:
		return "increase mux queue"
	case RetryFixTimestamps:
		return "fix timestamps"
	}
	return "none"
}

const (
	maxAttempts      = 3
	muxQueueEscalate = 16384
)

// RetryState tracks which fallback fixes have been applied across ffmpeg
// retry attempts for a single file.
type RetryState struct {
	Attempt     int
	MaxAttempts int

	MuxQueueSize int
	TimestampFix bool

	// Strict disables stderr-based retries entirely; the first failure
	// is final.
	Strict bool
}

// NewRetryState initializes a RetryState from the plan's initial values.
func NewRetryState(plan *planner.FilePlan, strict bool) *RetryState {
	return &RetryState{
		MaxAttempts:  maxAttempts,
		MuxQueueSize: plan.MuxQueueSize,
		TimestampFix: plan.TimestampFix,
		Strict:       strict,
	}
}

// Advance inspects stderr from a failed ffmpeg run, finds the first
// matching error pattern whose fix has not yet been applied, applies
// that fix, and returns the action taken. Returns RetryNone when no
// fixable pattern matches, strict mode is on, or the attempt limit is
// reached. One fix per call.
func (s *RetryState) Advance(stderr string) RetryAction {
	s.Attempt++
	if s.Strict || s.Attempt >= s.MaxAttempts {
		return RetryNone
	}

	if s.MuxQueueSize < muxQueueEscalate && MatchMuxQueueOverflow(stderr) {
		s.MuxQueueSize = muxQueueEscalate
		return RetryIncreaseMux
	}
	if !s.TimestampFix && MatchTimestampIssue(stderr) {
		s.TimestampFix = true
		return RetryFixTimestamps
	}

	return RetryNone
}
