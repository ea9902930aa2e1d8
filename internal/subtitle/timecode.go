package subtitle

import (
	"math"
	"time"
)

const (
	millisecondsPerSecond = 1000
	millisecondsPerMinute = 60 * millisecondsPerSecond
	millisecondsPerHour   = 60 * millisecondsPerMinute
)

// Timecode is a point in time written as hh:mm:ss,mmm.
//
// Hours share the two-digit 0-59 field with minutes and seconds, so any
// time past 59:59:59,999 saturates at 59 hours.
type Timecode struct {
	Hours   Digits[Sexagesimal]
	Minutes Digits[Sexagesimal]
	Seconds Digits[Sexagesimal]
	Millis  Digits[Millis]
}

// NewTimecode builds a timecode from explicit fields, clamping each one.
func NewTimecode(h, m, s, ms int) Timecode {
	return Timecode{
		Hours:   NewDigits[Sexagesimal](h),
		Minutes: NewDigits[Sexagesimal](m),
		Seconds: NewDigits[Sexagesimal](s),
		Millis:  NewDigits[Millis](ms),
	}
}

// TimecodeFromMilliseconds decomposes an absolute millisecond count.
// Negative counts clamp to zero.
func TimecodeFromMilliseconds(total int) Timecode {
	rest := max(total, 0)

	h := rest / millisecondsPerHour
	rest -= h * millisecondsPerHour

	m := rest / millisecondsPerMinute
	rest -= m * millisecondsPerMinute

	s := rest / millisecondsPerSecond
	rest -= s * millisecondsPerSecond

	return NewTimecode(h, m, s, rest)
}

// Milliseconds returns the absolute millisecond count.
func (t Timecode) Milliseconds() int {
	return t.Hours.Value()*millisecondsPerHour +
		t.Minutes.Value()*millisecondsPerMinute +
		t.Seconds.Value()*millisecondsPerSecond +
		t.Millis.Value()
}

func (t Timecode) Duration() time.Duration {
	return time.Duration(t.Milliseconds()) * time.Millisecond
}

// AddMilliseconds moves the timecode by ms, which may be negative.
func (t Timecode) AddMilliseconds(ms int) Timecode {
	return TimecodeFromMilliseconds(saturatingAdd(t.Milliseconds(), ms))
}

func (t Timecode) SubtractMilliseconds(ms int) Timecode {
	if ms == math.MinInt {
		// -MinInt is not representable
		return TimecodeFromMilliseconds(math.MaxInt)
	}
	return TimecodeFromMilliseconds(saturatingAdd(t.Milliseconds(), -ms))
}

func (t Timecode) AddTimecode(o Timecode) Timecode {
	return TimecodeFromMilliseconds(t.Milliseconds() + o.Milliseconds())
}

func (t Timecode) SubtractTimecode(o Timecode) Timecode {
	return TimecodeFromMilliseconds(t.Milliseconds() - o.Milliseconds())
}

// String renders the timecode as 00:00:00,000.
func (t Timecode) String() string {
	return t.Hours.String() + ":" +
		t.Minutes.String() + ":" +
		t.Seconds.String() + "," +
		t.Millis.String()
}

// saturatingAdd pins a+b to the int range instead of wrapping.
func saturatingAdd(a, b int) int {
	sum := a + b
	switch {
	case b > 0 && sum < a:
		return math.MaxInt
	case b < 0 && sum > a:
		return math.MinInt
	}
	return sum
}
