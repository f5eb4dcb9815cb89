// Package logging wraps charmbracelet/log with the converter's level
// styling and a per-run plain-text file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// fileTimeFormat names the per-run log file, converter_YYYYMMDD_HHMMSS.log.
const fileTimeFormat = "20060102_150405"

var successMark = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("78")).
	SetString("✓")

// Logger fans each record out to a styled console logger and, when a log
// directory is configured, a plain timestamped file.
type Logger struct {
	console  *log.Logger
	sink     *log.Logger
	file     *os.File
	filePath string
}

// New returns a console-only logger. Verbose enables debug records.
func New(verbose bool) *Logger {
	console := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
	})
	if verbose {
		console.SetLevel(log.DebugLevel)
	}
	applyStyles(console)
	return &Logger{console: console}
}

// NewWithFile returns a logger that also appends to a fresh
// converter_<timestamp>.log inside logDir, creating the directory if
// needed. The file sink always records debug lines regardless of
// verbose. Call Close when done.
func NewWithFile(logDir string, verbose bool) (*Logger, error) {
	l := New(verbose)
	if logDir == "" {
		return l, nil
	}
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	path := filepath.Join(logDir, fmt.Sprintf("converter_%s.log", time.Now().Format(fileTimeFormat)))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	sink := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02 15:04:05",
	})
	sink.SetLevel(log.DebugLevel)
	l.sink = sink
	l.file = f
	l.filePath = path
	return l, nil
}

// NewFileOnly logs to the per-run file alone, for callers that own the
// terminal.
func NewFileOnly(logDir string) (*Logger, error) {
	l, err := NewWithFile(logDir, false)
	if err != nil {
		return nil, err
	}
	l.console.SetOutput(io.Discard)
	return l, nil
}

// FilePath returns the path of the file sink, or "" when console-only.
func (l *Logger) FilePath() string {
	return l.filePath
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		l.sink = nil
		return err
	}
	return nil
}

func applyStyles(logger *log.Logger) {
	styles := log.DefaultStyles()

	styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
		SetString("DEBUG").
		Bold(true).
		Foreground(lipgloss.Color("63"))

	styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
		SetString("INFO ").
		Bold(true).
		Foreground(lipgloss.Color("86"))

	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN ").
		Bold(true).
		Foreground(lipgloss.Color("192"))

	styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Bold(true).
		Foreground(lipgloss.Color("204"))

	logger.SetStyles(styles)
}

// Debugf logs at debug level.
func (l *Logger) Debugf(format string, args ...any) {
	l.console.Debugf(format, args...)
	if l.sink != nil {
		l.sink.Debugf(format, args...)
	}
}

// Infof logs at info level.
func (l *Logger) Infof(format string, args ...any) {
	l.console.Infof(format, args...)
	if l.sink != nil {
		l.sink.Infof(format, args...)
	}
}

// Warnf logs at warn level.
func (l *Logger) Warnf(format string, args ...any) {
	l.console.Warnf(format, args...)
	if l.sink != nil {
		l.sink.Warnf(format, args...)
	}
}

// Errorf logs at error level.
func (l *Logger) Errorf(format string, args ...any) {
	l.console.Errorf(format, args...)
	if l.sink != nil {
		l.sink.Errorf(format, args...)
	}
}

// Successf logs a completed step at info level with a check mark on the
// console.
func (l *Logger) Successf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	l.console.Info(successMark.String() + " " + msg)
	if l.sink != nil {
		l.sink.Info("done: " + msg)
	}
}
