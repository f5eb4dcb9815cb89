// Package check provides system diagnostics (the check command) and
// pre-pipeline dependency validation for ffmpeg, ffprobe, libx264, and
// the AAC encoder.
package check

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/sabaoth87/MakeMP4s/internal/config"
)

// Sentinel errors returned by CheckDeps when a required tool or encoder
// is missing.
var (
	ErrFfmpegNotFound    = errors.New("ffmpeg not found on PATH")
	ErrFfprobeNotFound   = errors.New("ffprobe not found on PATH")
	ErrVideoEncodeFailed = errors.New("video encoder test failed")
	ErrAudioEncodeFailed = errors.New("audio encoder test failed")
)

// Logger is the minimal logging interface needed by RunCheck. Defined
// here (rather than importing the logging package) so that check remains
// dependency-light and testable with a mock logger.
type Logger interface {
	Infof(string, ...any)
	Successf(string, ...any)
	Warnf(string, ...any)
	Errorf(string, ...any)
}

// RunCheck runs the interactive check flow: prints availability of
// ffmpeg, ffprobe, the configured video encoder, and the AAC encoder.
// This is informational only, it does not stop on failure.
func RunCheck(cfg *config.Config, log Logger) {
	log.Infof("=== System Check ===")

	checkFfmpeg(log)
	checkFfprobe(log)
	checkH264Encoders(log)
	checkVideoEncoder(cfg.VideoEncoder, log)
	checkAAC(cfg.AudioEncoder, log)
}

// checkFfmpeg verifies ffmpeg is on PATH and logs its version string.
func checkFfmpeg(log Logger) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		log.Errorf("ffmpeg not found")
		return
	}
	cmd := exec.Command("ffmpeg", "-version")
	out, err := cmd.Output()
	if err != nil {
		log.Warnf("ffmpeg found but -version failed: %v", err)
		return
	}
	firstLine := strings.TrimSpace(string(out))
	if idx := strings.Index(firstLine, "\n"); idx > 0 {
		firstLine = firstLine[:idx]
	}
	log.Successf("ffmpeg: %s", firstLine)
}

func checkFfprobe(log Logger) {
	if _, err := exec.LookPath("ffprobe"); err != nil {
		log.Errorf("ffprobe not found")
		return
	}
	log.Successf("ffprobe: found")
}

// checkH264Encoders lists all H.264-related encoders reported by ffmpeg.
func checkH264Encoders(log Logger) {
	log.Infof("H.264 encoders:")
	cmd := exec.Command("ffmpeg", "-hide_banner", "-encoders")
	out, err := cmd.Output()
	if err != nil {
		log.Warnf("Could not list encoders: %v", err)
		return
	}
	for _, line := range strings.Split(string(out), "\n") {
		lower := strings.ToLower(line)
		if strings.Contains(lower, "h264") || strings.Contains(lower, "264") {
			log.Infof("  %s", strings.TrimSpace(line))
		}
	}
}

// checkVideoEncoder runs a minimal test encode with the configured
// video encoder.
func checkVideoEncoder(encoder string, log Logger) {
	log.Infof("Testing video encoder %s...", encoder)
	if runSilent("ffmpeg", videoTestArgs(encoder)...) {
		log.Successf("%s works", encoder)
	} else {
		log.Errorf("%s test encode failed", encoder)
	}
}

// checkAAC runs a minimal audio encode to verify the audio encoder works.
func checkAAC(encoder string, log Logger) {
	log.Infof("Testing audio encoder %s...", encoder)
	if runSilent("ffmpeg", audioTestArgs(encoder)...) {
		log.Successf("%s works", encoder)
	} else {
		log.Errorf("%s test failed", encoder)
	}
}

// CheckDeps is the pre-pipeline validation: it verifies that ffmpeg and
// ffprobe are on PATH and that the configured encoders actually work.
// Returns a sentinel error on failure.
func CheckDeps(cfg *config.Config) error {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return ErrFfmpegNotFound
	}
	if _, err := exec.LookPath("ffprobe"); err != nil {
		return ErrFfprobeNotFound
	}
	if !runSilent("ffmpeg", videoTestArgs(cfg.VideoEncoder)...) {
		return ErrVideoEncodeFailed
	}
	if !runSilent("ffmpeg", audioTestArgs(cfg.AudioEncoder)...) {
		return ErrAudioEncodeFailed
	}
	return nil
}

// --- internal helpers ---

// videoTestArgs returns the ffmpeg arguments for a minimal video test
// encode. Shared by RunCheck and CheckDeps.
func videoTestArgs(encoder string) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "color=black:s=256x256:d=0.1",
		"-c:v", encoder,
		"-f", "null", "-",
	}
}

func audioTestArgs(encoder string) []string {
	return []string{
		"-hide_banner", "-nostdin", "-loglevel", "error",
		"-f", "lavfi", "-i", "sine=frequency=1000:duration=0.1",
		"-c:a", encoder,
		"-f", "null", "-",
	}
}

// runSilent runs a command and returns true if it exits with status 0.
// Both stdout and stderr are discarded.
func runSilent(name string, args ...string) bool {
	cmd := exec.Command(name, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	return cmd.Run() == nil
}
