package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/FanLemon/Subtitle/internal/ffmpeg"
	"github.com/FanLemon/Subtitle/internal/subtitle"
	"github.com/FanLemon/Subtitle/internal/video"
)

var extractCmd = &cobra.Command{
	Use:   "extract [media_file]",
	Short: "Extract an embedded subtitle track from a video file",
	Long: `Extract a subtitle stream from a media container and save it as SubRip.

The extracted track is parsed and re-serialized, so the output is numbered
1..N and can be shifted in the same step with --offset.

Examples:
  subriptext extract movie.mkv --list
  subriptext extract movie.mkv
  subriptext extract movie.mkv -s 1 -o movie.en.srt
  subriptext extract movie.mkv --offset -1200`,
	Args: cobra.ExactArgs(1),
	RunE: runExtract,
}

var newExtractor = func(paths ffmpeg.BinaryPaths) video.Extractor {
	return video.NewExtractor(paths)
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().
		StringP("output", "o", "", "Output file path (default: next to the media file)")
	extractCmd.Flags().
		IntP("stream", "s", 0, "Subtitle stream number, counting subtitle streams only")
	extractCmd.Flags().
		Int("offset", 0, "Shift the extracted subtitles by this many milliseconds")
	extractCmd.Flags().
		Bool("list", false, "List the subtitle streams instead of extracting")
}

func runExtract(cmd *cobra.Command, args []string) error {
	mediaPath := args[0]
	ctx := cmd.Context()

	outputPath, _ := cmd.Flags().GetString("output")
	stream, _ := cmd.Flags().GetInt("stream")
	offset, _ := cmd.Flags().GetInt("offset")
	list, _ := cmd.Flags().GetBool("list")

	if _, err := os.Stat(mediaPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", mediaPath)
	}
	if stream < 0 {
		return fmt.Errorf("invalid stream %d: must not be negative", stream)
	}
	if !video.IsVideoFile(mediaPath) {
		logger.Warnw("Unrecognized video extension, trying anyway", "file", mediaPath)
	}

	paths, err := ffmpeg.Resolve(ffmpeg.BinaryPaths{
		FFmpeg:  cfg.FFmpegPath,
		FFprobe: cfg.FFprobePath,
	})
	if err != nil {
		return fmt.Errorf("ffmpeg is required for extract: %w", err)
	}
	logger.Debugw("Using ffmpeg", "ffmpeg", paths.FFmpeg, "ffprobe", paths.FFprobe)

	extractor := newExtractor(paths)

	if list {
		streams, err := extractor.ListSubtitleStreams(ctx, mediaPath)
		if err != nil {
			return fmt.Errorf("failed to list subtitle streams: %w", err)
		}
		printStreams(cmd, streams)
		return nil
	}

	if outputPath == "" {
		outputPath = defaultExtractOutput(mediaPath, stream)
	}

	tempDir, err := os.MkdirTemp("", "subriptext-extract-*")
	if err != nil {
		return fmt.Errorf("failed to create temp directory: %w", err)
	}
	defer func() {
		_ = os.RemoveAll(tempDir)
	}()
	rawPath := filepath.Join(tempDir, "stream.srt")

	logger.Infow("Extracting subtitles",
		"media", mediaPath,
		"stream", stream,
		"output", outputPath,
		"offset_ms", offset,
	)

	if err := extractor.ExtractSubtitles(ctx, mediaPath, rawPath, stream); err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	doc, issues, err := subtitle.Load(rawPath, logger.SugaredLogger)
	if err != nil {
		return err
	}
	if len(issues) > 0 {
		logger.Warnw("Malformed interval lines in extracted track", "count", len(issues))
	}

	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	if err := subtitle.NewWriter(mode).Write(doc.Shift(offset), outputPath); err != nil {
		return fmt.Errorf("failed to write output file [%s]: %w", outputPath, err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(cmd.OutOrStdout(), "Subtitles extracted successfully: %s (%d subtitles)\n", absOutput, doc.Len())

	return nil
}

// defaultExtractOutput names the output after the media file: movie.srt for
// the first stream, movie.2.srt for stream 2.
func defaultExtractOutput(mediaPath string, stream int) string {
	base := strings.TrimSuffix(mediaPath, filepath.Ext(mediaPath))
	if stream == 0 {
		return base + ".srt"
	}
	return fmt.Sprintf("%s.%d.srt", base, stream)
}

func printStreams(cmd *cobra.Command, streams []video.SubtitleStream) {
	out := cmd.OutOrStdout()
	if len(streams) == 0 {
		fmt.Fprintln(out, "No subtitle streams found")
		return
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STREAM\tCODEC\tLANGUAGE\tTITLE")
	for _, s := range streams {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", s.Index, s.Codec, orDash(s.Language), orDash(s.Title))
	}
	_ = w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
