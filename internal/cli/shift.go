package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FanLemon/Subtitle/internal/subtitle"
)

const intervalArrow = "-->"

const usage = `
subriptext version ` + version + `

usage: subriptext INPUT_FILE OUTPUT_FILE SHIFT_MS
       subriptext INPUT_FILE OUTPUT_FILE "hh:mm:ss,mmm --> hh:mm:ss,mmm"
       subriptext INPUT_FILE OUTPUT_FILE SHIFT_MS SEPARATED_FILE
       subriptext INPUT_FILE OUTPUT_FILE "hh:mm:ss,mmm --> hh:mm:ss,mmm" SEPARATED_FILE

`

func runShift(cmd *cobra.Command, args []string) error {
	args = joinIntervalArgs(args)
	if len(args) != 3 && len(args) != 4 {
		fmt.Fprint(cmd.OutOrStdout(), usage)
		return nil
	}

	inputPath := args[0]
	outputPath := args[1]

	offset, err := parseOffset(args[2])
	if err != nil {
		return err
	}
	logger.Infof("Offset %d Milliseconds", offset)

	var separatedPath string
	if len(args) == 4 {
		separatedPath = args[3]
		logger.Infof("Separated File: [%s]", separatedPath)
	}

	doc, issues, err := subtitle.Load(inputPath, logger.SugaredLogger)
	if err != nil {
		return fmt.Errorf("failed to read input file [%s]: %w", inputPath, err)
	}
	if len(issues) > 0 {
		logger.Warnw("Malformed interval lines were merged into neighbouring subtitles",
			"count", len(issues),
		)
	}
	if n := doc.Len(); n > 0 {
		logger.Debugw("Parsed input",
			"file", inputPath,
			"subtitles", n,
			"last_end", doc.Records[n-1].Interval.End.Duration(),
		)
	}

	mode, err := cfg.Mode()
	if err != nil {
		return err
	}
	writer := subtitle.NewWriter(mode)

	shifted := doc.Shift(offset)

	if separatedPath != "" {
		left, right := shifted.Split()
		if err := writer.Write(right, separatedPath); err != nil {
			return fmt.Errorf("failed to write separated file [%s]: %w", separatedPath, err)
		}
		shifted = left
	}

	if err := writer.Write(shifted, outputPath); err != nil {
		return fmt.Errorf("failed to write output file [%s]: %w", outputPath, err)
	}

	logger.Infof("Completed. %d Subtitles.", shifted.Len())
	return nil
}

// parseOffset reads OFFSET as signed milliseconds, or as an interval whose
// start minus end is the offset.
func parseOffset(s string) (int, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, intervalArrow) {
		iv, ok, err := subtitle.ParseInterval(s)
		if err != nil {
			return 0, fmt.Errorf("invalid offset interval %q: %w", s, err)
		}
		if !ok {
			return 0, fmt.Errorf("invalid offset interval %q: expected hh:mm:ss,mmm --> hh:mm:ss,mmm", s)
		}
		return iv.Offset(), nil
	}

	ms, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("offset %q can not be converted to an integer number of milliseconds", s)
	}
	return ms, nil
}

// joinIntervalArgs merges an unquoted "start --> end" offset, which the
// shell passes as three arguments, back into one.
func joinIntervalArgs(args []string) []string {
	if len(args) < 5 || args[3] != intervalArrow {
		return args
	}
	joined := make([]string, 0, len(args)-2)
	joined = append(joined, args[0], args[1], strings.Join(args[2:5], " "))
	return append(joined, args[5:]...)
}
