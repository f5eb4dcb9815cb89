package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileConfig is the shape of the optional YAML config file
// (~/.config/makemp4s/config.yml). Zero values mean "keep the default".
type FileConfig struct {
	Container    string   `yaml:"container,omitempty"`
	PlayableExts []string `yaml:"playable_formats,omitempty"`
	VideoExts    []string `yaml:"video_formats,omitempty"`
	LogDir       string   `yaml:"log_dir,omitempty"`
	HistoryPath  string   `yaml:"history_db,omitempty"`
	StreamCopy   *bool    `yaml:"stream_copy,omitempty"`
	ShowProgress *bool    `yaml:"show_progress,omitempty"`
}

// DefaultFilePath returns the conventional config file location, or ""
// when the user config directory cannot be determined.
func DefaultFilePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "makemp4s", "config.yml")
}

// LoadFile reads and decodes a YAML config file. A missing file is not
// an error; it returns (nil, nil) so the defaults stand.
func LoadFile(path string) (*FileConfig, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &fc, nil
}

// ApplyFile overlays non-zero file values onto cfg. CLI flags are
// applied after this, so the precedence is defaults < file < flags.
func ApplyFile(cfg *Config, fc *FileConfig) error {
	if fc == nil {
		return nil
	}
	if fc.Container != "" {
		cfg.OutputContainer = Container(strings.ToLower(fc.Container))
	}
	if len(fc.PlayableExts) > 0 {
		cfg.PlayableExts = normalizeExts(fc.PlayableExts)
	}
	if len(fc.VideoExts) > 0 {
		cfg.VideoExts = normalizeExts(fc.VideoExts)
	}
	if fc.LogDir != "" {
		cfg.LogDir = fc.LogDir
	}
	if fc.HistoryPath != "" {
		cfg.HistoryPath = fc.HistoryPath
	}
	if fc.StreamCopy != nil {
		cfg.StreamCopy = *fc.StreamCopy
	}
	if fc.ShowProgress != nil {
		cfg.ShowProgress = *fc.ShowProgress
	}
	return nil
}

// normalizeExts lowercases extensions and ensures each has a leading dot,
// accepting both "mkv" and ".mkv" spellings in the file.
func normalizeExts(exts []string) []string {
	out := make([]string, 0, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}
