package subtitle

import (
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Two lines appended after the input so the last real record is followed
// by something that opens a "next" record.
var sentinelLines = []string{"99999", "00:02:19,482 --> 00:02:21,609"}

// LineError is a malformed interval line found while parsing.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Parser rebuilds records from loosely delimited SubRip text.
type Parser struct {
	logger *zap.SugaredLogger
}

// NewParser returns a parser that reports malformed interval lines to
// logger. A nil logger discards them.
func NewParser(logger *zap.SugaredLogger) *Parser {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Parser{logger: logger}
}

// Parse parses content with a parser that does not log.
func Parse(content string) *Document {
	doc, _ := NewParser(nil).Parse(content)
	return doc
}

// Parse rebuilds the records of content in a single forward pass.
//
// Record boundaries come from interval lines, not blank lines. Every line
// is buffered; when an interval line arrives and the non-blank buffered
// lines hold at least five lines and two intervals, the buffer is
// number, interval, text..., next number, next interval. The record is
// emitted and the buffer restarts from the next number and interval.
// Records are numbered by position; input numbering is ignored.
//
// Malformed interval lines never abort the parse. They are logged and
// returned as diagnostics, and the buffer keeps growing until the next
// well-formed boundary.
func (p *Parser) Parse(content string) (*Document, []*LineError) {
	lines := append(splitLines(content), sentinelLines...)
	realLines := len(lines) - len(sentinelLines)

	var (
		pending []string
		records []Record
		issues  []*LineError
	)

	for i, line := range lines {
		pending = append(pending, line)

		_, ok, err := ParseInterval(line)
		if err != nil && i < realLines {
			issue := &LineError{Line: i + 1, Err: err}
			issues = append(issues, issue)
			p.logTimecodeError(issue)
		}
		if !ok {
			continue
		}

		stripped := nonEmpty(pending)
		intervals := embeddedIntervals(stripped)
		if len(stripped) < 5 || len(intervals) < 2 {
			continue
		}

		var text strings.Builder
		for _, s := range stripped[2 : len(stripped)-2] {
			text.WriteString(s)
			text.WriteString("\n")
		}
		records = append(records, Record{
			Number:   len(records) + 1,
			Interval: intervals[0],
			Text:     text.String(),
		})

		pending = append([]string(nil), stripped[len(stripped)-2:]...)
	}

	return &Document{Records: records}, issues
}

func (p *Parser) logTimecodeError(issue *LineError) {
	var tcErr *TimecodeError
	if !errors.As(issue.Err, &tcErr) {
		p.logger.Warnw("Unparsable timecode line", "line", issue.Line, "error", issue.Err)
		return
	}
	if errors.Is(tcErr, ErrStartTimecodeInvalid) {
		p.logger.Warnw("Start timecode parsing fails", "timecode", tcErr.Raw, "line", issue.Line)
		return
	}
	p.logger.Warnw("End timecode parsing fails", "timecode", tcErr.Raw, "line", issue.Line)
}

// splitLines splits on "\n", "\r\n" and "\r". A CRLF pair counts as a
// single break.
func splitLines(content string) []string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.Split(content, "\n")
}

func nonEmpty(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return out
}

func embeddedIntervals(lines []string) []Interval {
	var out []Interval
	for _, l := range lines {
		if iv, ok, _ := ParseInterval(l); ok {
			out = append(out, iv)
		}
	}
	return out
}
