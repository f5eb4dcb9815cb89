package naming

import (
	"regexp"
	"strconv"
	"strings"
)

// ParseRule pairs a compiled regex with an extraction function. Rules are
// evaluated in order by [Parse]; first match wins.
type ParseRule struct {
	Name    string
	Pattern *regexp.Regexp
	Extract func(matches []string) MediaInfo
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

// --- Compiled rule patterns (order matters: TV before movie) ---

var (
	// SxxEyy episode marker, 1-2 digit season and episode fields.
	reSxxEyy = regexp.MustCompile(
		`^(.*?)[\s._\-]*[Ss]([0-9]{1,2})[Ee]([0-9]{1,2})(?:[^0-9].*)?$`)

	// NxNN episode marker (e.g. 1x02). The season field must not be the
	// tail of a longer number, so anything before it has to be a non-digit.
	reNxNN = regexp.MustCompile(
		`^(.*?)(?:^|[^0-9])([0-9]{1,2})[xX]([0-9]{1,2})(?:[^0-9].*)?$`)

	// Bare release year, optionally in square brackets, separated from the
	// title by at least one dot/underscore/space/hyphen.
	reBareYear = regexp.MustCompile(
		`^(.*?)[\s._\-]+\[?((?:19|20)[0-9]{2})\]?(?:[^0-9].*)?$`)

	// Parenthesized release year.
	reParenYear = regexp.MustCompile(
		`^(.*?)[\s._\-]*\(((?:19|20)[0-9]{2})\)(?:.*)?$`)
)

// Rules is the ordered parse-rule table. TV markers are always tried
// before movie years, so a stem carrying both is classified as TV.
var Rules = []ParseRule{
	{"SxxEyy", reSxxEyy, extractEpisode},
	{"NxNN", reNxNN, extractEpisode},
	{"Bare-year", reBareYear, extractYear},
	{"Paren-year", reParenYear, extractYear},
}

// Parse classifies a media stem (filename with extension already
// stripped) into a MediaInfo. It never fails: a stem matching no rule
// comes back as KindUnknown with the cleaned stem as its title.
func Parse(stem string) MediaInfo {
	for _, rule := range Rules {
		if m := rule.Pattern.FindStringSubmatch(stem); m != nil {
			return rule.Extract(m)
		}
	}
	return MediaInfo{Kind: KindUnknown, Title: CleanTitle(stem)}
}

// ParseFilename is a convenience wrapper for callers holding a full
// filename: it strips the extension and parses the remaining stem.
func ParseFilename(basename string) MediaInfo {
	if i := strings.LastIndexByte(basename, '.'); i > 0 {
		basename = basename[:i]
	}
	return Parse(basename)
}

// extractEpisode builds a TV record from an episode-marker match. Integer
// parsing normalizes leading zeros, so S1E2 and S01E02 agree.
func extractEpisode(matches []string) MediaInfo {
	return MediaInfo{
		Kind:    KindTV,
		Title:   CleanTitle(matches[1]),
		Season:  atoi(matches[2]),
		Episode: atoi(matches[3]),
	}
}

// extractYear builds a movie record from a year-token match. The year is
// kept as the captured 4-digit string.
func extractYear(matches []string) MediaInfo {
	return MediaInfo{
		Kind:  KindMovie,
		Title: CleanTitle(matches[1]),
		Year:  matches[2],
	}
}
