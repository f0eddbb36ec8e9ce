package domain

import (
	"testing"
	"time"
)

func TestTranscript_Speakers(t *testing.T) {
	tr := &Transcript{Utterances: []Utterance{
		{Timestamp: "00:01", Speaker: "Alice", Text: "hi"},
		{Timestamp: "00:02", Speaker: "Bob", Text: "hey"},
		{Timestamp: "00:03", Speaker: "Alice", Text: "so"},
		{Timestamp: "00:04", Speaker: "Carol", Text: "hello"},
	}}

	got := tr.Speakers()
	want := []string{"Alice", "Bob", "Carol"}
	if len(got) != len(want) {
		t.Fatalf("expected %d speakers, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("speaker[%d] = %q, want %q (first-appearance order)", i, got[i], want[i])
		}
	}
}

func TestTranscript_Filter(t *testing.T) {
	tr := &Transcript{
		Utterances: []Utterance{
			{Timestamp: "00:00:01", Speaker: "A", Text: "one"},
			{Timestamp: "00:00:05", Speaker: "B", Text: "two"},
			{Timestamp: "00:00:10", Speaker: "A", Text: "three"},
		},
		Dropped: 2,
	}

	from := 3 * time.Second
	to := 9 * time.Second
	got := tr.Filter(&from, &to)

	if len(got.Utterances) != 1 {
		t.Fatalf("expected 1 utterance, got %d", len(got.Utterances))
	}
	if got.Utterances[0].Text != "two" {
		t.Errorf("expected 'two' to survive, got %q", got.Utterances[0].Text)
	}
	if got.Dropped != 2 {
		t.Errorf("expected dropped count carried over, got %d", got.Dropped)
	}
}

func TestTranscript_FilterNilBounds(t *testing.T) {
	tr := &Transcript{Utterances: []Utterance{
		{Timestamp: "00:00:01", Speaker: "A", Text: "one"},
		{Timestamp: "00:00:05", Speaker: "B", Text: "two"},
	}}

	got := tr.Filter(nil, nil)
	if len(got.Utterances) != 2 {
		t.Errorf("expected all utterances with nil bounds, got %d", len(got.Utterances))
	}
}

func TestTranscript_FilterKeepsUnparseableTimestamps(t *testing.T) {
	tr := &Transcript{Utterances: []Utterance{
		{Timestamp: "around noon", Speaker: "A", Text: "one"},
		{Timestamp: "00:00:20", Speaker: "B", Text: "two"},
	}}

	from := 10 * time.Second
	got := tr.Filter(&from, nil)

	if len(got.Utterances) != 2 {
		t.Fatalf("expected unparseable timestamp to be kept, got %d utterances", len(got.Utterances))
	}
}
