package domain

// Utterance is one parsed transcript line. Values are immutable once created
// by the parser; ordering within a Transcript matches the original line order.
type Utterance struct {
	Timestamp string // raw timestamp token, format-unvalidated
	Speaker   string // aggregation key, case-preserved
	Text      string // remaining line content, trimmed
}
