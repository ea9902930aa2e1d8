package subtitle

import (
	"strconv"
	"strings"
)

// DigitKind fixes the upper bound and printed width of a Digits field.
type DigitKind interface {
	maxValue() int
	width() int
}

// hours, minutes and seconds: 00-59
type Sexagesimal struct{}

func (Sexagesimal) maxValue() int { return 59 }
func (Sexagesimal) width() int    { return 2 }

// milliseconds: 000-999
type Millis struct{}

func (Millis) maxValue() int { return 999 }
func (Millis) width() int    { return 3 }

// Digits is a zero-padded fixed-width decimal field. The zero value is a
// valid field holding 0.
type Digits[K DigitKind] struct {
	value int
}

// NewDigits clamps n into [0, max] of the kind.
func NewDigits[K DigitKind](n int) Digits[K] {
	var k K
	return Digits[K]{value: max(min(n, k.maxValue()), 0)}
}

// ScanDigits parses s as a field of kind K. s must be exactly width
// decimal digits with a value no greater than the kind's max.
func ScanDigits[K DigitKind](s string) (Digits[K], bool) {
	var k K
	if len(s) != k.width() {
		return Digits[K]{}, false
	}
	if strings.IndexFunc(s, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return Digits[K]{}, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n > k.maxValue() {
		return Digits[K]{}, false
	}
	return Digits[K]{value: n}, true
}

func (d Digits[K]) Value() int {
	return d.value
}

func (d Digits[K]) String() string {
	var k K
	s := strconv.Itoa(d.value)
	if pad := k.width() - len(s); pad > 0 {
		s = strings.Repeat("0", pad) + s
	}
	return s
}
