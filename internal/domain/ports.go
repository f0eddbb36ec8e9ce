package domain

import "io"

// TranscriptParser parses raw transcript text into a Transcript.
type TranscriptParser interface {
	Parse(r io.Reader) (*Transcript, error)
}

// Analyzer derives a Report from a Transcript.
type Analyzer interface {
	Analyze(t *Transcript) *Report
}

// ReportRenderer renders a Report to an output writer.
type ReportRenderer interface {
	Render(w io.Writer, rep *Report) error
}
