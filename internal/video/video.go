package video

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	ffmpegbin "github.com/FanLemon/Subtitle/internal/ffmpeg"
)

// subtitle track inside a media container
type SubtitleStream struct {
	Index    int // position among the subtitle streams, as used by -map 0:s:N
	Codec    string
	Language string
	Title    string
}

// pulls embedded subtitle tracks out of media files
type Extractor interface {
	ListSubtitleStreams(ctx context.Context, mediaPath string) ([]SubtitleStream, error)
	ExtractSubtitles(ctx context.Context, mediaPath, outputPath string, stream int) error
}

// ffmpeg backed implementation
type DefaultExtractor struct {
	paths ffmpegbin.BinaryPaths
}

func NewExtractor(paths ffmpegbin.BinaryPaths) *DefaultExtractor {
	return &DefaultExtractor{paths: paths}
}

// JSON output from ffprobe -show_streams
type ffprobeStreams struct {
	Streams []struct {
		CodecName string            `json:"codec_name"`
		Tags      map[string]string `json:"tags"`
	} `json:"streams"`
}

// lists the subtitle streams of a media file
func (e *DefaultExtractor) ListSubtitleStreams(
	ctx context.Context,
	mediaPath string,
) ([]SubtitleStream, error) {
	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("media file not found: %s", mediaPath)
	}

	cmd := exec.CommandContext(ctx, e.paths.FFprobe,
		"-v", "quiet",
		"-print_format", "json",
		"-show_streams",
		"-select_streams", "s",
		mediaPath,
	)

	var out bytes.Buffer
	cmd.Stdout = &out

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w", err)
	}

	return parseSubtitleStreams(out.Bytes())
}

func parseSubtitleStreams(data []byte) ([]SubtitleStream, error) {
	var probe ffprobeStreams
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse ffprobe output: %w", err)
	}

	streams := make([]SubtitleStream, 0, len(probe.Streams))
	for i, s := range probe.Streams {
		streams = append(streams, SubtitleStream{
			Index:    i,
			Codec:    s.CodecName,
			Language: s.Tags["language"],
			Title:    s.Tags["title"],
		})
	}
	return streams, nil
}

// extracts one subtitle stream converted to SubRip
func (e *DefaultExtractor) ExtractSubtitles(
	ctx context.Context,
	mediaPath, outputPath string,
	stream int,
) error {
	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("media file not found: %s", mediaPath)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	outputDir := filepath.Dir(outputPath)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	err := extractStream(mediaPath, outputPath, stream).
		SetFfmpegPath(e.paths.FFmpeg).
		Run()
	if err != nil {
		return fmt.Errorf("ffmpeg extraction failed: %w", err)
	}

	return nil
}

func extractStream(mediaPath, outputPath string, stream int) *ffmpeg.Stream {
	kwargs := ffmpeg.KwArgs{
		"map": fmt.Sprintf("0:s:%d", stream), // Nth subtitle stream
		"c:s": "srt",                         // convert to SubRip
		"f":   "srt",
	}

	return ffmpeg.Input(mediaPath).
		Output(outputPath, kwargs).
		OverWriteOutput()
}

// checks if the file is a video container based on extension
func IsVideoFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	videoExts := map[string]bool{
		".mp4":  true,
		".mkv":  true,
		".avi":  true,
		".mov":  true,
		".webm": true,
		".m4v":  true,
		".ts":   true,
		".mpeg": true,
		".mpg":  true,
	}
	return videoExts[ext]
}
