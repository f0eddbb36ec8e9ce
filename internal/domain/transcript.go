package domain

import "time"

// Transcript holds the ordered utterances of one conversation plus the number
// of raw lines that failed to parse (for the outer layer to report).
type Transcript struct {
	Utterances []Utterance
	Dropped    int
}

// Speakers returns the distinct speakers in first-appearance order.
func (t *Transcript) Speakers() []string {
	seen := make(map[string]bool)
	var speakers []string
	for _, u := range t.Utterances {
		if !seen[u.Speaker] {
			seen[u.Speaker] = true
			speakers = append(speakers, u.Speaker)
		}
	}
	return speakers
}

// Filter returns a new Transcript containing only utterances whose timestamp
// parses as a clock offset within the given range. nil values for from/to mean
// no lower/upper bound. Utterances with unparseable timestamps are kept, since
// no bound can be proven to exclude them.
func (t *Transcript) Filter(from, to *time.Duration) *Transcript {
	filtered := &Transcript{Dropped: t.Dropped}
	for _, u := range t.Utterances {
		if offset, ok := ParseClock(u.Timestamp); ok {
			if from != nil && offset < *from {
				continue
			}
			if to != nil && offset > *to {
				continue
			}
		}
		filtered.Utterances = append(filtered.Utterances, u)
	}
	return filtered
}
