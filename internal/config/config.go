// Package config holds runtime configuration: defaults, the optional
// YAML config file, and validation. Defaults match the legacy converter
// for parity: scan for videos Windows Media Player cannot play and
// convert them to H.264/AAC MP4s.
package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Container is the output container format.
type Container string

const (
	ContainerMP4 Container = "mp4" // MP4 with faststart (default).
	ContainerMKV Container = "mkv" // Matroska, for callers that want it.
)

// DefaultPlayableExts are the container extensions the target player
// handles natively. Files already in this set are never converted.
var DefaultPlayableExts = []string{
	".wmv", ".asf", ".avi", ".mp4", ".m4v", ".mov", ".3gp", ".3g2",
}

// DefaultVideoExts are the extensions considered video candidates when
// scanning. Anything outside this set is ignored entirely.
var DefaultVideoExts = []string{
	".mkv", ".mp4", ".avi", ".m4v", ".mov", ".wmv", ".asf", ".flv",
	".webm", ".ts", ".m2ts", ".mpg", ".mpeg", ".vob", ".ogv", ".3gp", ".3g2",
}

// Config holds all runtime settings. It is populated by [DefaultConfig],
// optionally overlaid by [ApplyFile], and then mutated by CLI flags
// before being passed (by pointer) to packages that need it.
type Config struct {
	// Paths (set from positional args).
	ScanDir   string
	OutputDir string

	// Output format.
	OutputContainer Container
	VideoEncoder    string // Fixed default: "libx264".
	AudioEncoder    string // Fixed default: "aac".

	// Extension sets (lowercase, with leading dot).
	PlayableExts []string
	VideoExts    []string

	// Behavior flags.
	DryRun       bool
	SkipExisting bool // Default: true. Cleared by --force.
	StreamCopy   bool // Default: true. Copy H.264/AAC streams instead of re-encoding.
	StrictMode   bool // Disable ffmpeg retry fallbacks.

	// Display and logging.
	Verbose      bool
	ShowProgress bool   // Default: true. Live ffmpeg -stats output on a TTY.
	LogDir       string // Default: "logs". Timestamped run logs.
	HistoryPath  string // Conversion history DB. Empty: <LogDir>/history.db.
}

// DefaultConfig returns a Config with all defaults matching the legacy
// converter's behavior.
func DefaultConfig() Config {
	return Config{
		OutputContainer: ContainerMP4,
		VideoEncoder:    "libx264",
		AudioEncoder:    "aac",
		PlayableExts:    append([]string(nil), DefaultPlayableExts...),
		VideoExts:       append([]string(nil), DefaultVideoExts...),
		SkipExisting:    true,
		StreamCopy:      true,
		ShowProgress:    true,
		LogDir:          "logs",
	}
}

// NormalizeDirArg strips trailing slashes from a directory path. The
// filesystem root "/" is returned unchanged so we don't produce an
// empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// Validate checks enum fields and requires both directory paths.
func (c *Config) Validate() error {
	switch c.OutputContainer {
	case ContainerMP4, ContainerMKV:
		// valid
	default:
		return errors.New("invalid container (use 'mp4' or 'mkv')")
	}
	if len(c.VideoExts) == 0 {
		return errors.New("video extension list must not be empty")
	}
	if c.ScanDir == "" || c.OutputDir == "" {
		return errors.New("need exactly scan_dir and output_dir")
	}
	return nil
}

// ValidatePaths ensures the resolved output directory is not inside (or
// equal to) the resolved scan directory, so the pipeline never discovers
// its own output files. Both arguments must be absolute, symlink-resolved
// paths.
func (c *Config) ValidatePaths(scanAbs, outputAbs string) error {
	sep := string(filepath.Separator)
	if outputAbs == scanAbs || strings.HasPrefix(outputAbs+sep, scanAbs+sep) {
		return errors.New("output directory must not be inside scan directory")
	}
	return nil
}

// ResolvedHistoryPath returns the history database location, defaulting
// to history.db inside the log directory.
func (c *Config) ResolvedHistoryPath() string {
	if c.HistoryPath != "" {
		return c.HistoryPath
	}
	return filepath.Join(c.LogDir, "history.db")
}

// IsPlayable reports whether ext (lowercase, with dot) is in the
// natively-playable set.
func (c *Config) IsPlayable(ext string) bool {
	return containsExt(c.PlayableExts, ext)
}

// IsVideo reports whether ext (lowercase, with dot) is a video candidate.
func (c *Config) IsVideo(ext string) bool {
	return containsExt(c.VideoExts, ext)
}

func containsExt(exts []string, ext string) bool {
	for _, e := range exts {
		if e == ext {
			return true
		}
	}
	return false
}
