package analyzer

import (
	"regexp"
	"strings"

	"github.com/abhichhn93/conversation-intel-agent/internal/domain"
)

// wordRe extracts word tokens for keyword matching. Contractions keep their
// apostrophe; punctuation around words is ignored.
var wordRe = regexp.MustCompile(`[A-Za-z']+`)

// Classify assigns a sentiment to one utterance text by keyword membership.
// Any negative keyword wins over any positive one; with neither present the
// utterance is neutral. The function is pure and stateless.
func (a *Analyzer) Classify(text string) domain.Sentiment {
	positive := false
	for _, token := range wordRe.FindAllString(text, -1) {
		w := strings.ToLower(token)
		if a.negative[w] {
			return domain.SentimentNegative
		}
		if a.positive[w] {
			positive = true
		}
	}
	if positive {
		return domain.SentimentPositive
	}
	return domain.SentimentNeutral
}
