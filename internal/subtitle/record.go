package subtitle

import (
	"strconv"
	"strings"
)

// Record is one subtitle block. Text holds one or more lines, each
// terminated by a newline.
type Record struct {
	Number   int
	Interval Interval
	Text     string
}

// Shift moves the record by ms milliseconds; negative values move it
// earlier. Results before zero clamp to 00:00:00,000.
func (r Record) Shift(ms int) Record {
	r.Interval = r.Interval.AddMilliseconds(ms)
	return r
}

// Split divides the text into two records that keep the number and the
// interval of r. See DivideText for the division rules.
func (r Record) Split() (Record, Record) {
	left, right := DivideText(r.Text)
	return Record{Number: r.Number, Interval: r.Interval, Text: left},
		Record{Number: r.Number, Interval: r.Interval, Text: right}
}

// DivideText splits text into a left and a right half keyed on the number
// of "\n"-separated pieces. Newline-terminated text yields a trailing empty
// piece, so a single line counts as 2 and is duplicated on both sides.
//
//	pieces  left        right
//	2       0           0
//	3       0           1
//	4       0           1+2
//	5       0+1         2+3
//	6       0+1+2       3+4+5
//	other   0           each of 1.. on its own line
//
// Pieces joined on one side are concatenated without a separator and the
// side gets a single trailing newline.
func DivideText(text string) (left, right string) {
	lines := strings.Split(text, "\n")

	switch len(lines) {
	case 2:
		return lines[0] + "\n", lines[0] + "\n"
	case 3:
		return lines[0] + "\n", lines[1] + "\n"
	case 4:
		return lines[0] + "\n", lines[1] + lines[2] + "\n"
	case 5:
		return lines[0] + lines[1] + "\n", lines[2] + lines[3] + "\n"
	case 6:
		return lines[0] + lines[1] + lines[2] + "\n", lines[3] + lines[4] + lines[5] + "\n"
	}

	var sb strings.Builder
	for _, line := range lines[1:] {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return lines[0] + "\n", sb.String()
}

// String renders the block followed by a blank line.
func (r Record) String() string {
	var sb strings.Builder
	r.writeTo(&sb)
	return sb.String()
}

func (r Record) writeTo(sb *strings.Builder) {
	sb.WriteString(strconv.Itoa(r.Number))
	sb.WriteString("\n")
	sb.WriteString(r.Interval.String())
	sb.WriteString("\n")
	sb.WriteString(r.Text)
	sb.WriteString("\n")
}
