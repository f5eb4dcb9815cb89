package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"testing"
)

func TestNew_NoFile(t *testing.T) {
	l := New(false)
	defer l.Close()
	if l.FilePath() != "" {
		t.Errorf("FilePath() = %q, want empty", l.FilePath())
	}
	l.Infof("test message")
}

func TestNewWithFile(t *testing.T) {
	dir := t.TempDir()
	l, err := NewWithFile(filepath.Join(dir, "logs"), false)
	if err != nil {
		t.Fatal(err)
	}

	name := filepath.Base(l.FilePath())
	if ok, _ := regexp.MatchString(`^converter_\d{8}_\d{6}\.log$`, name); !ok {
		t.Errorf("log file name = %q, want converter_YYYYMMDD_HHMMSS.log", name)
	}

	l.Infof("to file")
	l.Debugf("debug goes to file even when console is quiet")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(filepath.Join(dir, "logs", name))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("to file")) {
		t.Errorf("log file missing info line: %s", b)
	}
	if !bytes.Contains(b, []byte("debug goes to file")) {
		t.Errorf("log file missing debug line: %s", b)
	}
}

func TestNewFileOnly(t *testing.T) {
	dir := t.TempDir()
	l, err := NewFileOnly(dir)
	if err != nil {
		t.Fatal(err)
	}

	l.Infof("quiet console")
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	b, err := os.ReadFile(l.FilePath())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(b, []byte("quiet console")) {
		t.Errorf("log file missing line: %s", b)
	}
}

func TestNewWithFile_EmptyDirIsConsoleOnly(t *testing.T) {
	l, err := NewWithFile("", true)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()
	if l.FilePath() != "" {
		t.Errorf("FilePath() = %q, want empty", l.FilePath())
	}
}
