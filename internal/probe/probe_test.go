package probe

import (
	"testing"
)

// Realistic ffprobe JSON for an AVI file needing conversion:
//   - 1 MPEG-4 part 2 video stream (720x480)
//   - 1 MP3 stereo audio stream
const sampleAVI = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mpeg4",
      "codec_type": "video",
      "profile": "Advanced Simple Profile",
      "pix_fmt": "yuv420p",
      "width": 720,
      "height": 480,
      "bit_rate": "1200000",
      "avg_frame_rate": "30000/1001",
      "disposition": { "default": 1, "attached_pic": 0 },
      "tags": {}
    },
    {
      "index": 1,
      "codec_name": "mp3",
      "codec_type": "audio",
      "channels": 2,
      "channel_layout": "stereo",
      "sample_rate": "44100",
      "bit_rate": "128000",
      "disposition": { "default": 1, "attached_pic": 0 },
      "tags": {}
    }
  ],
  "format": {
    "filename": "/media/in/Holiday.Clip.avi",
    "nb_streams": 2,
    "format_name": "avi",
    "format_long_name": "AVI (Audio Video Interleaved)",
    "duration": "612.500000",
    "size": "104857600",
    "bit_rate": "1369600",
    "tags": {}
  }
}`

// MKV already carrying h264/aac, remux-copy candidate, with a cover art
// stream ahead of the real video and an embedded subtitle.
const sampleMKV = `{
  "streams": [
    {
      "index": 0,
      "codec_name": "mjpeg",
      "codec_type": "video",
      "width": 600,
      "height": 900,
      "disposition": { "default": 0, "attached_pic": 1 },
      "tags": { "comment": "Cover (front)" }
    },
    {
      "index": 1,
      "codec_name": "h264",
      "codec_type": "video",
      "profile": "High",
      "pix_fmt": "yuv420p",
      "width": 1920,
      "height": 1080,
      "avg_frame_rate": "24000/1001",
      "disposition": { "default": 1, "attached_pic": 0 },
      "tags": { "BPS": "5000000" }
    },
    {
      "index": 2,
      "codec_name": "aac",
      "codec_type": "audio",
      "channels": 2,
      "channel_layout": "stereo",
      "sample_rate": "48000",
      "disposition": { "default": 1, "attached_pic": 0 },
      "tags": { "language": "eng", "BPS": "192000" }
    },
    {
      "index": 3,
      "codec_name": "ass",
      "codec_type": "subtitle",
      "disposition": { "default": 0 },
      "tags": { "language": "eng" }
    }
  ],
  "format": {
    "filename": "/media/in/Show.Name.S01E02.mkv",
    "nb_streams": 4,
    "format_name": "matroska,webm",
    "format_long_name": "Matroska / WebM",
    "duration": "1437.123000",
    "size": "1234567890",
    "bit_rate": "6873456",
    "tags": { "title": "Episode 2" }
  }
}`

func TestParseJSON_AVIFile(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleAVI))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	if pr.Format.Filename != "/media/in/Holiday.Clip.avi" {
		t.Errorf("filename: got %q", pr.Format.Filename)
	}
	if pr.Format.FormatName != "avi" {
		t.Errorf("format_name: got %q", pr.Format.FormatName)
	}
	if pr.Format.Duration != 612.5 {
		t.Errorf("duration: got %f, want 612.5", pr.Format.Duration)
	}
	if pr.Format.Size != 104857600 {
		t.Errorf("size: got %d", pr.Format.Size)
	}

	if !pr.HasVideo() {
		t.Fatal("HasVideo() = false")
	}
	if pr.VideoCodec() != "mpeg4" {
		t.Errorf("VideoCodec() = %q", pr.VideoCodec())
	}
	if pr.PrimaryVideo.Width != 720 || pr.PrimaryVideo.Height != 480 {
		t.Errorf("resolution: got %dx%d", pr.PrimaryVideo.Width, pr.PrimaryVideo.Height)
	}
	if pr.PrimaryVideo.BitRate != 1200000 {
		t.Errorf("video bitrate: got %d", pr.PrimaryVideo.BitRate)
	}

	if len(pr.AudioStreams) != 1 {
		t.Fatalf("audio streams: got %d, want 1", len(pr.AudioStreams))
	}
	a := pr.AudioStreams[0]
	if a.Codec != "mp3" || a.Channels != 2 || a.SampleRate != 44100 {
		t.Errorf("audio: codec=%q ch=%d sr=%d", a.Codec, a.Channels, a.SampleRate)
	}
	if pr.AudioCodec() != "mp3" {
		t.Errorf("AudioCodec() = %q", pr.AudioCodec())
	}
}

func TestParseJSON_SkipsAttachedPic(t *testing.T) {
	pr, err := ParseJSON([]byte(sampleMKV))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}

	if pr.PrimaryVideo == nil {
		t.Fatal("PrimaryVideo is nil")
	}
	if pr.PrimaryVideo.Index != 1 {
		t.Errorf("primary video index: got %d, want 1 (cover art skipped)", pr.PrimaryVideo.Index)
	}
	if pr.VideoCodec() != "h264" {
		t.Errorf("VideoCodec() = %q", pr.VideoCodec())
	}

	if len(pr.SubtitleStreams) != 1 {
		t.Fatalf("subtitle streams: got %d, want 1", len(pr.SubtitleStreams))
	}
	if pr.SubtitleStreams[0].Codec != "ass" || pr.SubtitleStreams[0].Language != "eng" {
		t.Errorf("subtitle: %+v", pr.SubtitleStreams[0])
	}
}

func TestSubtitleSummary(t *testing.T) {
	pr, _ := ParseJSON([]byte(sampleMKV))
	if got := pr.SubtitleSummary(); got != "eng" {
		t.Errorf("SubtitleSummary() = %q, want eng", got)
	}

	// Codec name stands in when the language tag is missing.
	pr.SubtitleStreams = append(pr.SubtitleStreams, SubtitleStream{Index: 4, Codec: "subrip"})
	if got := pr.SubtitleSummary(); got != "eng, subrip" {
		t.Errorf("SubtitleSummary() = %q, want %q", got, "eng, subrip")
	}

	empty := &ProbeResult{}
	if got := empty.SubtitleSummary(); got != "" {
		t.Errorf("SubtitleSummary() = %q, want empty", got)
	}
}

func TestStreamBitRate_BPSTagFallback(t *testing.T) {
	pr, _ := ParseJSON([]byte(sampleMKV))

	// Video has no bit_rate field, only the Matroska BPS tag.
	if pr.PrimaryVideo.BitRate != 5000000 {
		t.Errorf("video BitRate: got %d, want 5000000 (from tags.BPS)", pr.PrimaryVideo.BitRate)
	}
	if pr.AudioStreams[0].BitRate != 192000 {
		t.Errorf("audio BitRate: got %d, want 192000 (from tags.BPS)", pr.AudioStreams[0].BitRate)
	}
}

func TestVideoBitRate_FormatFallback(t *testing.T) {
	// Stream bitrate available → use it.
	pr, _ := ParseJSON([]byte(sampleAVI))
	if got := pr.VideoBitRate(); got != 1200000 {
		t.Errorf("with stream bitrate: got %d, want 1200000", got)
	}

	// No stream bitrate anywhere → fall back to format.
	pr, _ = ParseJSON([]byte(`{
		"streams": [
			{"index": 0, "codec_name": "h264", "codec_type": "video",
			 "width": 1280, "height": 720,
			 "disposition": {"default": 1, "attached_pic": 0}, "tags": {}}
		],
		"format": {"filename": "a.mp4", "nb_streams": 1, "bit_rate": "400000", "tags": {}}
	}`))
	if got := pr.VideoBitRate(); got != 400000 {
		t.Errorf("fallback to format: got %d, want 400000", got)
	}
}

func TestResolution(t *testing.T) {
	pr, _ := ParseJSON([]byte(sampleMKV))
	if got := pr.Resolution(); got != "1920x1080" {
		t.Errorf("got %q, want 1920x1080", got)
	}

	empty := &ProbeResult{}
	if got := empty.Resolution(); got != "unknown" {
		t.Errorf("got %q, want unknown", got)
	}
}

func TestParseJSON_NoVideo(t *testing.T) {
	j := `{
		"streams": [
			{"index": 0, "codec_name": "mjpeg", "codec_type": "video",
			 "width": 300, "height": 300, "disposition": {"attached_pic": 1}},
			{"index": 1, "codec_name": "aac", "codec_type": "audio",
			 "channels": 2, "sample_rate": "44100", "disposition": {"default": 1}}
		],
		"format": {"filename": "audio_only.m4a", "nb_streams": 2}
	}`
	pr, err := ParseJSON([]byte(j))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if pr.HasVideo() {
		t.Error("HasVideo() = true when only stream is attached_pic")
	}
	if pr.VideoCodec() != "" {
		t.Errorf("VideoCodec() = %q, want empty", pr.VideoCodec())
	}
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	_, err := ParseJSON([]byte(`{invalid`))
	if err == nil {
		t.Error("expected error for invalid JSON")
	}
}

func TestParseJSON_EmptyStreams(t *testing.T) {
	pr, err := ParseJSON([]byte(`{"streams":[],"format":{"filename":"empty.mkv","nb_streams":0}}`))
	if err != nil {
		t.Fatalf("ParseJSON: %v", err)
	}
	if pr.PrimaryVideo != nil {
		t.Error("expected nil PrimaryVideo")
	}
	if len(pr.AudioStreams) != 0 {
		t.Errorf("audio: got %d", len(pr.AudioStreams))
	}
	if pr.AudioCodec() != "" {
		t.Errorf("AudioCodec() = %q, want empty", pr.AudioCodec())
	}
}
