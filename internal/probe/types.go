// Package probe provides ffprobe-based media inspection with typed
// result structures. One JSON call per file covers format and streams.
package probe

import (
	"strconv"
	"strings"
)

// FormatInfo holds container-level metadata from ffprobe's format section.
type FormatInfo struct {
	Filename       string
	NbStreams      int
	FormatName     string
	FormatLongName string
	Duration       float64
	Size           int64
	BitRate        int64
	Tags           map[string]string
}

// VideoStream holds the parsed properties of a single video stream.
type VideoStream struct {
	Index         int
	Codec         string
	Profile       string
	PixFmt        string
	Width         int
	Height        int
	BitRate       int64
	AvgFrameRate  string
	IsAttachedPic bool
}

// AudioStream holds the parsed properties of a single audio stream.
type AudioStream struct {
	Index         int
	Codec         string
	Channels      int
	ChannelLayout string
	SampleRate    int
	BitRate       int64
	Language      string
	IsDefault     bool
}

// SubtitleStream holds the parsed properties of a single subtitle stream.
type SubtitleStream struct {
	Index    int
	Codec    string
	Language string
}

// ProbeResult is the fully parsed output of a single ffprobe JSON call.
// PrimaryVideo is the first non-attached-pic video stream (nil if none).
type ProbeResult struct {
	Format          FormatInfo
	PrimaryVideo    *VideoStream
	AudioStreams    []AudioStream
	SubtitleStreams []SubtitleStream
}

// HasVideo reports whether the file carries a real video stream.
func (p *ProbeResult) HasVideo() bool {
	return p.PrimaryVideo != nil
}

// VideoCodec returns the primary video codec name, or "" when the file
// has no video stream.
func (p *ProbeResult) VideoCodec() string {
	if p.PrimaryVideo == nil {
		return ""
	}
	return p.PrimaryVideo.Codec
}

// AudioCodec returns the codec of the first audio stream, or "".
func (p *ProbeResult) AudioCodec() string {
	if len(p.AudioStreams) == 0 {
		return ""
	}
	return p.AudioStreams[0].Codec
}

// VideoBitRate returns the primary video stream bitrate in bits/sec,
// falling back to the format-level bitrate when the stream value is
// unavailable or zero.
func (p *ProbeResult) VideoBitRate() int64 {
	if p.PrimaryVideo != nil && p.PrimaryVideo.BitRate > 0 {
		return p.PrimaryVideo.BitRate
	}
	return p.Format.BitRate
}

// SubtitleSummary returns a comma-separated list of subtitle stream
// languages (codec name when the language tag is missing), or "" when
// the file carries no subtitles.
func (p *ProbeResult) SubtitleSummary() string {
	parts := make([]string, 0, len(p.SubtitleStreams))
	for _, s := range p.SubtitleStreams {
		if s.Language != "" {
			parts = append(parts, s.Language)
		} else {
			parts = append(parts, s.Codec)
		}
	}
	return strings.Join(parts, ", ")
}

// Resolution returns "WxH" for the primary video stream, or "unknown".
func (p *ProbeResult) Resolution() string {
	if p.PrimaryVideo == nil || p.PrimaryVideo.Width <= 0 || p.PrimaryVideo.Height <= 0 {
		return "unknown"
	}
	return strconv.Itoa(p.PrimaryVideo.Width) + "x" + strconv.Itoa(p.PrimaryVideo.Height)
}
