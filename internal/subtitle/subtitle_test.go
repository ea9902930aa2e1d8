package subtitle

import "testing"

func TestDocumentString(t *testing.T) {
	doc := &Document{Records: []Record{
		{Number: 1, Interval: Interval{End: NewTimecode(0, 0, 1, 0)}, Text: "A\n"},
		{Number: 2, Interval: Interval{Start: NewTimecode(0, 0, 2, 0), End: NewTimecode(0, 0, 3, 0)}, Text: "B\nC\n"},
	}}

	want := "1\n00:00:00,000 --> 00:00:01,000\nA\n\n" +
		"2\n00:00:02,000 --> 00:00:03,000\nB\nC\n\n"
	if doc.String() != want {
		t.Errorf("got %q, want %q", doc.String(), want)
	}
	if string(doc.Bytes()) != want {
		t.Errorf("Bytes() differs from String()")
	}
	if (&Document{}).String() != "" {
		t.Errorf("empty document should serialize to an empty string")
	}
}

func TestDocumentShift(t *testing.T) {
	doc := Parse(wellFormed)
	shifted := doc.Shift(3000)

	if shifted.Len() != doc.Len() {
		t.Fatalf("record count changed: %d -> %d", doc.Len(), shifted.Len())
	}
	for i, r := range shifted.Records {
		orig := doc.Records[i]
		if r.Number != i+1 {
			t.Errorf("record %d: number %d", i, r.Number)
		}
		if r.Interval.Start.Milliseconds() != orig.Interval.Start.Milliseconds()+3000 {
			t.Errorf("record %d: start %s not shifted from %s", i, r.Interval.Start, orig.Interval.Start)
		}
		if r.Interval.End.Milliseconds() != orig.Interval.End.Milliseconds()+3000 {
			t.Errorf("record %d: end %s not shifted from %s", i, r.Interval.End, orig.Interval.End)
		}
		if r.Text != orig.Text {
			t.Errorf("record %d: text changed", i)
		}
	}

	if doc.Records[0].Interval.Start.String() != "00:00:01,000" {
		t.Errorf("Shift modified the source document")
	}
}

func TestDocumentShiftNegativeClamps(t *testing.T) {
	shifted := Parse(wellFormed).Shift(-5000)
	want := []string{
		"00:00:00,000 --> 00:00:00,000",
		"00:00:00,500 --> 00:00:03,200",
		"00:00:05,000 --> 00:00:07,500",
	}
	for i, w := range want {
		if got := shifted.Records[i].Interval.String(); got != w {
			t.Errorf("record %d: got %s, want %s", i, got, w)
		}
	}
}

func TestDocumentSplit(t *testing.T) {
	doc := Parse(wellFormed)
	left, right := doc.Split()

	if left.Len() != doc.Len() || right.Len() != doc.Len() {
		t.Fatalf("split lengths %d/%d, want %d", left.Len(), right.Len(), doc.Len())
	}
	for i := range doc.Records {
		if left.Records[i].Number != doc.Records[i].Number || right.Records[i].Number != doc.Records[i].Number {
			t.Errorf("record %d: numbers differ", i)
		}
		if left.Records[i].Interval != doc.Records[i].Interval || right.Records[i].Interval != doc.Records[i].Interval {
			t.Errorf("record %d: intervals differ", i)
		}
	}

	if left.Records[1].Text != "This is a test.\n" || right.Records[1].Text != "With multiple lines.\n" {
		t.Errorf("record 2 split: %q / %q", left.Records[1].Text, right.Records[1].Text)
	}
	if left.Records[0].Text != "Hello, world!\n" || right.Records[0].Text != "Hello, world!\n" {
		t.Errorf("single line record should be duplicated: %q / %q", left.Records[0].Text, right.Records[0].Text)
	}
}
