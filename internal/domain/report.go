package domain

// Sentiment is the coarse polarity assigned to a single utterance.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNeutral  Sentiment = "neutral"
	SentimentNegative Sentiment = "negative"
)

// Sentiments returns all labels in their fixed rendering order.
func Sentiments() []Sentiment {
	return []Sentiment{SentimentPositive, SentimentNeutral, SentimentNegative}
}

// SpeakerStats accumulates per-speaker figures during analysis. Once the
// report is built the struct is read-only.
type SpeakerStats struct {
	Messages  int
	Words     int
	Sentiment map[Sentiment]int
}

// AvgLength is the mean word count per message, 0 for a speaker with no
// messages.
func (s *SpeakerStats) AvgLength() float64 {
	if s.Messages == 0 {
		return 0
	}
	return float64(s.Words) / float64(s.Messages)
}

// InterruptionEvent records one detected turn-taking cut-in. Index is the
// position of the interrupting utterance in the transcript.
type InterruptionEvent struct {
	Interrupter string
	Index       int
}

// Report is the final aggregate over one transcript. Speakers holds the
// first-appearance order used for all per-speaker rendering, so repeated runs
// on identical input produce identical output.
type Report struct {
	TotalMessages int
	TotalWords    int

	Speakers []string
	Stats    map[string]*SpeakerStats

	Interruptions      []InterruptionEvent
	InterruptionTotals map[string]int

	SentimentTotals map[Sentiment]int

	Takeaway string
	Flags    []string
}

// AvgMessageLength is the overall mean word count per message.
func (r *Report) AvgMessageLength() float64 {
	if r.TotalMessages == 0 {
		return 0
	}
	return float64(r.TotalWords) / float64(r.TotalMessages)
}

// DominanceRatio is the speaker's share of all words spoken, 0 when the
// transcript has no words.
func (r *Report) DominanceRatio(speaker string) float64 {
	if r.TotalWords == 0 {
		return 0
	}
	st, ok := r.Stats[speaker]
	if !ok {
		return 0
	}
	return float64(st.Words) / float64(r.TotalWords)
}

// TotalInterruptions is the number of detected interruption events.
func (r *Report) TotalInterruptions() int {
	return len(r.Interruptions)
}
