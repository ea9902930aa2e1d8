package subtitle

import "strings"

// represents a complete SubRip document in display order
type Document struct {
	Records []Record
}

func (d *Document) Len() int {
	return len(d.Records)
}

// Shift returns a copy with every interval moved by ms milliseconds.
func (d *Document) Shift(ms int) *Document {
	records := make([]Record, len(d.Records))
	for i, r := range d.Records {
		records[i] = r.Shift(ms)
	}
	return &Document{Records: records}
}

// Split divides every record's text and returns the two parallel tracks.
// Both documents have the same length, numbering and intervals as d.
func (d *Document) Split() (*Document, *Document) {
	left := make([]Record, len(d.Records))
	right := make([]Record, len(d.Records))
	for i, r := range d.Records {
		left[i], right[i] = r.Split()
	}
	return &Document{Records: left}, &Document{Records: right}
}

// String serializes the document in SubRip text form.
func (d *Document) String() string {
	var sb strings.Builder
	for _, r := range d.Records {
		r.writeTo(&sb)
	}
	return sb.String()
}

func (d *Document) Bytes() []byte {
	return []byte(d.String())
}
