package naming

import (
	"path/filepath"
	"testing"
)

func TestOutputPath(t *testing.T) {
	cases := []struct {
		name string
		info MediaInfo
		want string
	}{
		{
			name: "tv episode",
			info: MediaInfo{Kind: KindTV, Title: "Show Name", Season: 1, Episode: 2},
			want: filepath.Join("/out", "Show Name - S01E02.mp4"),
		},
		{
			name: "movie",
			info: MediaInfo{Kind: KindMovie, Title: "Movie Name", Year: "2024"},
			want: filepath.Join("/out", "Movie Name (2024).mp4"),
		},
		{
			name: "unknown",
			info: MediaInfo{Kind: KindUnknown, Title: "Random File Name"},
			want: filepath.Join("/out", "Random File Name.mp4"),
		},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			if got := OutputPath(tt.info, "/out", "mp4"); got != tt.want {
				t.Errorf("OutputPath() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCollisionResolver(t *testing.T) {
	cr := NewCollisionResolver()
	out := filepath.Join("/out", "Show Name - S01E02.mp4")

	first := cr.Resolve("/in/a.wmv", out)
	if first != out {
		t.Errorf("first claim = %q, want %q", first, out)
	}

	// Same input asking again keeps its claim.
	again := cr.Resolve("/in/a.wmv", out)
	if again != out {
		t.Errorf("repeat claim = %q, want %q", again, out)
	}

	second := cr.Resolve("/in/b.flv", out)
	want2 := filepath.Join("/out", "Show Name - S01E02 - dup1.mp4")
	if second != want2 {
		t.Errorf("second claim = %q, want %q", second, want2)
	}

	third := cr.Resolve("/in/c.mpg", out)
	want3 := filepath.Join("/out", "Show Name - S01E02 - dup2.mp4")
	if third != want3 {
		t.Errorf("third claim = %q, want %q", third, want3)
	}
}
