package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sabaoth87/MakeMP4s/internal/config"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
}

func basenames(paths []string) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = filepath.Base(p)
	}
	return out
}

func sliceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestDiscover_SkipsPlayableFormats(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "movie.mkv")
	touch(t, dir, "already.mp4")
	touch(t, dir, "clip.avi")
	touch(t, dir, "portable.m4v")
	touch(t, dir, "music.mp3")
	touch(t, dir, "readme.txt")

	cfg := config.DefaultConfig()
	files, err := Discover(dir, &cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}

	// .mp4, .m4v, and .avi are natively playable; only .mkv needs work.
	want := []string{"movie.mkv"}
	if got := basenames(files); !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDiscover_ConvertibleExtensions(t *testing.T) {
	dir := t.TempDir()
	convertible := []string{".mkv", ".flv", ".webm", ".ts", ".m2ts", ".mpg", ".mpeg", ".vob", ".ogv"}
	for _, ext := range convertible {
		touch(t, dir, "file"+ext)
	}
	touch(t, dir, "file.jpg")
	touch(t, dir, "file.mp4")

	cfg := config.DefaultConfig()
	files, err := Discover(dir, &cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != len(convertible) {
		t.Errorf("got %d files, want %d: %v", len(files), len(convertible), basenames(files))
	}
}

func TestDiscover_PrunesExtras(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "main.mkv")
	os.MkdirAll(filepath.Join(dir, "Extras"), 0o755)
	touch(t, filepath.Join(dir, "Extras"), "bonus.mkv")
	os.MkdirAll(filepath.Join(dir, "extras"), 0o755)
	touch(t, filepath.Join(dir, "extras"), "deleted_scenes.webm")

	cfg := config.DefaultConfig()
	files, err := Discover(dir, &cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 1 {
		t.Errorf("got %d files, want 1 (extras should be pruned)", len(files))
	}
}

func TestDiscover_RecursiveAndSorted(t *testing.T) {
	dir := t.TempDir()
	os.MkdirAll(filepath.Join(dir, "Show", "Season 01"), 0o755)
	os.MkdirAll(filepath.Join(dir, "Show", "Season 02"), 0o755)
	touch(t, filepath.Join(dir, "Show", "Season 02"), "ep01.mkv")
	touch(t, filepath.Join(dir, "Show", "Season 01"), "ep02.mkv")
	touch(t, filepath.Join(dir, "Show", "Season 01"), "ep01.mkv")

	cfg := config.DefaultConfig()
	files, err := Discover(dir, &cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}
	for i := 1; i < len(files); i++ {
		if files[i] < files[i-1] {
			t.Errorf("not sorted: %q before %q", files[i-1], files[i])
		}
	}
}

func TestDiscover_CaseInsensitiveExtension(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "MOVIE.MKV")
	touch(t, dir, "Clip.WebM")

	cfg := config.DefaultConfig()
	files, err := Discover(dir, &cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 2 {
		t.Errorf("got %d files, want 2 (case-insensitive ext matching)", len(files))
	}
}

func TestDiscover_EmptyDir(t *testing.T) {
	cfg := config.DefaultConfig()
	files, err := Discover(t.TempDir(), &cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("got %d files, want 0", len(files))
	}
}

func TestDiscover_CustomPlayableSet(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "a.mkv")
	touch(t, dir, "b.avi")

	cfg := config.DefaultConfig()
	// Narrow the playable set so .avi becomes a candidate too.
	cfg.PlayableExts = []string{".mp4"}

	files, err := Discover(dir, &cfg)
	if err != nil {
		t.Fatalf("Discover: %v", err)
	}
	want := []string{"a.mkv", "b.avi"}
	if got := basenames(files); !sliceEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestRunStats(t *testing.T) {
	s := RunStats{
		Converted:        3,
		Remuxed:          1,
		Skipped:          2,
		Failed:           1,
		TotalInputBytes:  10 * 1024 * 1024,
		TotalOutputBytes: 6 * 1024 * 1024,
	}

	if got := s.Succeeded(); got != 4 {
		t.Errorf("Succeeded() = %d, want 4", got)
	}
	if got := s.SpaceSaved(); got != 4*1024*1024 {
		t.Errorf("SpaceSaved() = %d, want %d", got, 4*1024*1024)
	}

	out := s.SummaryTable()
	for _, want := range []string{"Converted", "Remuxed", "Skipped", "Failed", "Space saved", "+ 4.0 MiB"} {
		if !strings.Contains(out, want) {
			t.Errorf("SummaryTable missing %q:\n%s", want, out)
		}
	}
	// The footer row must not be uppercased by the table style.
	if strings.Contains(out, "SPACE SAVED") {
		t.Errorf("SummaryTable footer should keep its case:\n%s", out)
	}
}

func TestRunStats_DryRunHidesSavings(t *testing.T) {
	s := RunStats{Converted: 1, DryRun: true}
	if strings.Contains(s.SummaryTable(), "Space saved") {
		t.Error("dry-run summary should not report space saved")
	}
}

func TestRenderAnalysisTable(t *testing.T) {
	out := renderAnalysisTable([]analyzeRow{
		{
			Name:       "Show.Name.S01E02.mkv",
			NewName:    "Show Name - S01E02.mp4",
			Resolution: "1920x1080",
			Video:      "h264",
			Audio:      "aac",
			Subtitles:  "eng, ger",
			Size:       700 * 1024 * 1024,
			Planned:    "remux",
		},
		{
			Name:       "audio_only.webm",
			NewName:    "Audio Only.mp4",
			Resolution: "unknown",
			Video:      "",
			Audio:      "opus",
			Size:       1024,
			Planned:    "skip: no video stream",
		},
	})

	for _, want := range []string{
		"Show Name - S01E02.mp4", "1920x1080", "remux",
		"eng, ger", "skip: no video stream", "700.0 MiB",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("table missing %q:\n%s", want, out)
		}
	}
}
