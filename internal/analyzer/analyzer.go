package analyzer

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhichhn93/conversation-intel-agent/internal/config"
	"github.com/abhichhn93/conversation-intel-agent/internal/domain"
)

// Flag labels derived from threshold checks on the aggregates.
const (
	FlagFriction  = "Friction detected"
	FlagDominance = "Dominance imbalance"
	FlagOverlap   = "High overlap / interruptions"
)

// Analyzer computes a Report from an ordered transcript. It is stateless
// across calls; all tunables come from the Analysis config at construction.
type Analyzer struct {
	positive map[string]bool
	negative map[string]bool
	th       config.Thresholds
	gap      time.Duration
}

func New(cfg config.Analysis) *Analyzer {
	return &Analyzer{
		positive: toSet(cfg.Lexicon.Positive),
		negative: toSet(cfg.Lexicon.Negative),
		th:       cfg.Thresholds,
		gap:      config.DurSeconds(cfg.Thresholds.InterruptionGapSec),
	}
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[strings.ToLower(w)] = true
	}
	return set
}

// Analyze runs one ordered pass for counts, words and sentiment, then an
// adjacent-pair pass for interruptions, and derives takeaway and flags.
// An empty transcript yields a zero-valued report, never an error.
func (a *Analyzer) Analyze(t *domain.Transcript) *domain.Report {
	rep := &domain.Report{
		Stats:              make(map[string]*domain.SpeakerStats),
		InterruptionTotals: make(map[string]int),
		SentimentTotals:    newTally(),
	}

	for _, u := range t.Utterances {
		st, ok := rep.Stats[u.Speaker]
		if !ok {
			st = &domain.SpeakerStats{Sentiment: newTally()}
			rep.Stats[u.Speaker] = st
			rep.Speakers = append(rep.Speakers, u.Speaker)
		}

		words := len(strings.Fields(u.Text))
		st.Messages++
		st.Words += words
		rep.TotalMessages++
		rep.TotalWords += words

		s := a.Classify(u.Text)
		st.Sentiment[s]++
		rep.SentimentTotals[s]++
	}

	a.detectInterruptions(t, rep)
	a.deriveTakeaway(rep)

	return rep
}

func newTally() map[domain.Sentiment]int {
	tally := make(map[domain.Sentiment]int, 3)
	for _, s := range domain.Sentiments() {
		tally[s] = 0
	}
	return tally
}

// detectInterruptions applies the gap heuristic over adjacent utterance
// pairs: different speakers whose parseable timestamps are less than the
// configured gap apart count as a cut-in, attributed to the second speaker.
// Consecutive utterances by the same speaker, and pairs where either
// timestamp fails to parse as a clock offset, are never interruptions.
func (a *Analyzer) detectInterruptions(t *domain.Transcript, rep *domain.Report) {
	for i := 1; i < len(t.Utterances); i++ {
		prev := t.Utterances[i-1]
		cur := t.Utterances[i]
		if prev.Speaker == cur.Speaker {
			continue
		}

		prevAt, okPrev := domain.ParseClock(prev.Timestamp)
		curAt, okCur := domain.ParseClock(cur.Timestamp)
		if !okPrev || !okCur {
			continue
		}

		gap := curAt - prevAt
		if gap < 0 || gap >= a.gap {
			continue
		}

		rep.Interruptions = append(rep.Interruptions, domain.InterruptionEvent{
			Interrupter: cur.Speaker,
			Index:       i,
		})
		rep.InterruptionTotals[cur.Speaker]++
	}
}

func (a *Analyzer) deriveTakeaway(rep *domain.Report) {
	negShare := 0.0
	overlap := 0.0
	if rep.TotalMessages > 0 {
		negShare = float64(rep.SentimentTotals[domain.SentimentNegative]) / float64(rep.TotalMessages)
		overlap = float64(rep.TotalInterruptions()) / float64(rep.TotalMessages)
	}
	dominant, share := a.dominantSpeaker(rep)

	if negShare > a.th.FrictionRatio {
		rep.Flags = append(rep.Flags, FlagFriction)
	}
	if share > a.th.DominanceShare {
		rep.Flags = append(rep.Flags, FlagDominance)
	}
	if overlap > a.th.OverlapRatio {
		rep.Flags = append(rep.Flags, FlagOverlap)
	}

	dominanceNote := "Participation is fairly balanced."
	if share > a.th.DominanceShare {
		dominanceNote = fmt.Sprintf("%s is leading the airtime.", dominant)
	}

	pos := rep.SentimentTotals[domain.SentimentPositive]
	neg := rep.SentimentTotals[domain.SentimentNegative]
	var sentimentNote string
	switch {
	case negShare > a.th.FrictionRatio:
		sentimentNote = "Tone shows elevated friction."
	case pos > neg:
		sentimentNote = "Tone is generally positive."
	case neg > pos:
		sentimentNote = "Tone leans negative."
	default:
		sentimentNote = "Tone is mostly neutral."
	}

	rep.Takeaway = dominanceNote + " " + sentimentNote
}

// dominantSpeaker returns the speaker with the highest word share. Ties go to
// the earliest-appearing speaker so output stays deterministic.
func (a *Analyzer) dominantSpeaker(rep *domain.Report) (string, float64) {
	var dominant string
	best := 0.0
	for _, sp := range rep.Speakers {
		if ratio := rep.DominanceRatio(sp); ratio > best {
			dominant = sp
			best = ratio
		}
	}
	return dominant, best
}
