package wordify

import "testing"

func TestPlainTextAndCounts(t *testing.T) {
	doc := Document{
		Heading{Level: 1, Runs: []Run{{Text: "Quarterly "}, {Text: "report"}}},
		Paragraph{},
		ListItem{Runs: []Run{{Text: "one two"}, {Text: " three"}}},
	}

	if got, want := PlainText(doc), "Quarterly report\n\none two three"; got != want {
		t.Errorf("PlainText() = %q, want %q", got, want)
	}
	if got := CountWords(doc); got != 5 {
		t.Errorf("CountWords() = %d, want 5", got)
	}
	if got := CountRuns(doc); got != 4 {
		t.Errorf("CountRuns() = %d, want 4", got)
	}
}

func TestCountWords_RunBoundaryInsideWord(t *testing.T) {
	doc := Document{Paragraph{Runs: []Run{{Text: "wo"}, {Text: "rd", Style: StyleSet{Bold: true}}}}}
	if got := CountWords(doc); got != 1 {
		t.Errorf("CountWords() = %d, want 1", got)
	}
}
