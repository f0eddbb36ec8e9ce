package parser

import (
	"strings"
	"testing"
)

func TestParse_WellFormedLines(t *testing.T) {
	input := strings.Join([]string{
		"00:00:01 | Agent | Hello, how can I help?",
		"00:00:02 | Customer | I'm really frustrated with this",
		"00:00:03 | Agent | I understand, let's fix it",
	}, "\n")

	p := &PipeParser{}
	tr, err := p.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tr.Utterances) != 3 {
		t.Fatalf("expected 3 utterances, got %d", len(tr.Utterances))
	}
	if tr.Dropped != 0 {
		t.Errorf("expected 0 dropped lines, got %d", tr.Dropped)
	}

	first := tr.Utterances[0]
	if first.Timestamp != "00:00:01" {
		t.Errorf("expected timestamp '00:00:01', got %q", first.Timestamp)
	}
	if first.Speaker != "Agent" {
		t.Errorf("expected speaker 'Agent', got %q", first.Speaker)
	}
	if first.Text != "Hello, how can I help?" {
		t.Errorf("expected trimmed text, got %q", first.Text)
	}

	// Original line order is preserved
	if tr.Utterances[1].Speaker != "Customer" || tr.Utterances[2].Speaker != "Agent" {
		t.Errorf("utterance order not preserved: %+v", tr.Utterances)
	}
}

func TestParse_MalformedLinesDropped(t *testing.T) {
	input := strings.Join([]string{
		"this line has no delimiter at all",
		"00:00:01 | Agent | Hello",
		"only | one pipe",
		" | Agent | missing timestamp",
		"00:00:02 |  | missing speaker",
		"00:00:03 | Agent | Goodbye",
	}, "\n")

	p := &PipeParser{}
	tr, err := p.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tr.Utterances) != 2 {
		t.Fatalf("expected 2 utterances, got %d", len(tr.Utterances))
	}
	if tr.Dropped != 4 {
		t.Errorf("expected 4 dropped lines, got %d", tr.Dropped)
	}
	if tr.Utterances[0].Text != "Hello" || tr.Utterances[1].Text != "Goodbye" {
		t.Errorf("wrong utterances survived: %+v", tr.Utterances)
	}
}

func TestParse_BlankLinesSkippedSilently(t *testing.T) {
	input := "\n00:00:01 | Agent | Hello\n\n   \n00:00:02 | Customer | Hi\n"

	p := &PipeParser{}
	tr, err := p.Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tr.Utterances) != 2 {
		t.Errorf("expected 2 utterances, got %d", len(tr.Utterances))
	}
	// Blank lines are not malformed
	if tr.Dropped != 0 {
		t.Errorf("expected 0 dropped lines, got %d", tr.Dropped)
	}
}

func TestParse_EmptyInput(t *testing.T) {
	p := &PipeParser{}
	tr, err := p.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tr.Utterances) != 0 || tr.Dropped != 0 {
		t.Errorf("expected empty transcript, got %+v", tr)
	}
}

func TestParseLine_ExtraPipesBelongToText(t *testing.T) {
	u, ok := ParseLine("00:00:01 | Agent | options are A | B | C")
	if !ok {
		t.Fatal("expected line to parse")
	}
	if u.Text != "options are A | B | C" {
		t.Errorf("expected pipes kept in text, got %q", u.Text)
	}
}

func TestParseLine_Malformed(t *testing.T) {
	cases := []string{
		"",
		"no pipes here",
		"a | b",
		"|  | ",
		"00:00:01 | Agent |   ",
	}
	for _, line := range cases {
		if _, ok := ParseLine(line); ok {
			t.Errorf("expected %q to be rejected", line)
		}
	}
}
