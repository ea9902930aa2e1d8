package video

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	ffmpegbin "github.com/FanLemon/Subtitle/internal/ffmpeg"
)

func TestParseSubtitleStreams(t *testing.T) {
	data := []byte(`{
  "streams": [
    {"index": 2, "codec_name": "subrip", "tags": {"language": "eng", "title": "English"}},
    {"index": 3, "codec_name": "ass", "tags": {"language": "chi"}},
    {"index": 4, "codec_name": "mov_text"}
  ]
}`)

	streams, err := parseSubtitleStreams(data)
	if err != nil {
		t.Fatalf("parseSubtitleStreams failed: %v", err)
	}
	if len(streams) != 3 {
		t.Fatalf("expected 3 streams, got %d", len(streams))
	}

	want := []SubtitleStream{
		{Index: 0, Codec: "subrip", Language: "eng", Title: "English"},
		{Index: 1, Codec: "ass", Language: "chi"},
		{Index: 2, Codec: "mov_text"},
	}
	for i := range want {
		if streams[i] != want[i] {
			t.Errorf("stream %d: got %+v, want %+v", i, streams[i], want[i])
		}
	}

	if _, err := parseSubtitleStreams([]byte("not json")); err == nil {
		t.Error("expected error for invalid ffprobe output")
	}
}

func TestExtractStreamArgs(t *testing.T) {
	args := extractStream("movie.mkv", "out.srt", 1).GetArgs()
	joined := strings.Join(args, " ")

	for _, want := range []string{"-i movie.mkv", "-map 0:s:1", "-c:s srt", "-f srt", "out.srt", "-y"} {
		if !strings.Contains(joined, want) {
			t.Errorf("expected %q in ffmpeg args: %v", want, args)
		}
	}
}

func TestExtractMissingMedia(t *testing.T) {
	e := NewExtractor(ffmpegbin.BinaryPaths{FFmpeg: "ffmpeg", FFprobe: "ffprobe"})
	dir := t.TempDir()

	err := e.ExtractSubtitles(context.Background(), filepath.Join(dir, "missing.mkv"), filepath.Join(dir, "out.srt"), 0)
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}

	_, err = e.ListSubtitleStreams(context.Background(), filepath.Join(dir, "missing.mkv"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestIsVideoFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"movie.mkv", true},
		{"MOVIE.MP4", true},
		{"clip.webm", true},
		{"subs.srt", false},
		{"song.mp3", false},
		{"noext", false},
	}
	for _, tt := range tests {
		if got := IsVideoFile(tt.path); got != tt.want {
			t.Errorf("IsVideoFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
