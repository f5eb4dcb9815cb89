package naming

import "fmt"

// Kind classifies a parsed stem. The tag makes the year/season-episode
// exclusivity structural: a TV record never carries a year and a movie
// record never carries season or episode numbers.
type Kind int

const (
	KindUnknown Kind = iota
	KindTV
	KindMovie
)

// String returns a human-readable kind name for logs and reports.
func (k Kind) String() string {
	switch k {
	case KindTV:
		return "tv"
	case KindMovie:
		return "movie"
	default:
		return "unknown"
	}
}

// MediaInfo is the structured result of parsing a media stem. It is a
// value type: constructed once by [Parse], never mutated, consumed by
// [MediaInfo.Render].
type MediaInfo struct {
	Kind    Kind
	Title   string
	Year    string // 4-digit release year; movies only
	Season  int    // TV only
	Episode int    // TV only
}

// Render produces the display stem for a MediaInfo:
//
//	TV:      <Title> - SxxEyy   (season/episode zero-padded to 2 digits)
//	Movie:   <Title> (<Year>)
//	Unknown: <Title>
func (m MediaInfo) Render() string {
	switch m.Kind {
	case KindTV:
		return fmt.Sprintf("%s - S%02dE%02d", m.Title, m.Season, m.Episode)
	case KindMovie:
		return fmt.Sprintf("%s (%s)", m.Title, m.Year)
	default:
		return m.Title
	}
}
