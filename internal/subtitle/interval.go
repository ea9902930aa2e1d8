package subtitle

import (
	"errors"
	"fmt"
	"regexp"
)

const intervalDelimiter = "-->"

var (
	ErrStartTimecodeInvalid = errors.New("start timecode invalid")
	ErrEndTimecodeInvalid   = errors.New("end timecode invalid")
)

// TimecodeError reports an interval line that has the right shape but a
// field out of range. Err is ErrStartTimecodeInvalid or
// ErrEndTimecodeInvalid.
type TimecodeError struct {
	Err error
	Raw string
}

func (e *TimecodeError) Error() string {
	return fmt.Sprintf("%v: [%s]", e.Err, e.Raw)
}

func (e *TimecodeError) Unwrap() error {
	return e.Err
}

var intervalRegex = regexp.MustCompile(
	`^((\d{2}):(\d{2}):(\d{2}),(\d{3}))\s+-->\s+((\d{2}):(\d{2}):(\d{2}),(\d{3}))$`,
)

// Interval is the on-screen span of a subtitle. Start is not required to
// precede End.
type Interval struct {
	Start Timecode
	End   Timecode
}

// ParseInterval matches a whole line of the form
// "00:02:19,482 --> 00:02:21,609". A line of any other shape is reported
// with ok == false and a nil error.
func ParseInterval(line string) (iv Interval, ok bool, err error) {
	m := intervalRegex.FindStringSubmatch(line)
	if m == nil {
		return Interval{}, false, nil
	}

	start, valid := scanTimecode(m[2], m[3], m[4], m[5])
	if !valid {
		return Interval{}, false, &TimecodeError{Err: ErrStartTimecodeInvalid, Raw: m[1]}
	}
	end, valid := scanTimecode(m[7], m[8], m[9], m[10])
	if !valid {
		return Interval{}, false, &TimecodeError{Err: ErrEndTimecodeInvalid, Raw: m[6]}
	}

	return Interval{Start: start, End: end}, true, nil
}

func scanTimecode(hh, mm, ss, mmm string) (Timecode, bool) {
	h, okH := ScanDigits[Sexagesimal](hh)
	m, okM := ScanDigits[Sexagesimal](mm)
	s, okS := ScanDigits[Sexagesimal](ss)
	ms, okMs := ScanDigits[Millis](mmm)
	if !okH || !okM || !okS || !okMs {
		return Timecode{}, false
	}
	return Timecode{Hours: h, Minutes: m, Seconds: s, Millis: ms}, true
}

func (iv Interval) AddMilliseconds(ms int) Interval {
	return Interval{Start: iv.Start.AddMilliseconds(ms), End: iv.End.AddMilliseconds(ms)}
}

func (iv Interval) SubtractMilliseconds(ms int) Interval {
	return Interval{Start: iv.Start.SubtractMilliseconds(ms), End: iv.End.SubtractMilliseconds(ms)}
}

// Offset is Start minus End in milliseconds. It is negative for an
// ordinary forward interval.
func (iv Interval) Offset() int {
	return iv.Start.Milliseconds() - iv.End.Milliseconds()
}

func (iv Interval) String() string {
	return iv.Start.String() + " " + intervalDelimiter + " " + iv.End.String()
}
