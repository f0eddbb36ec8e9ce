package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhichhn93/conversation-intel-agent/internal/domain"
)

// MarkdownRenderer renders the full report document. Section order, headings
// and numeric precision are fixed so identical input yields identical bytes.
type MarkdownRenderer struct{}

func (r *MarkdownRenderer) Render(w io.Writer, rep *domain.Report) error {
	var b strings.Builder

	b.WriteString("# Conversation Intel Report\n\n")

	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- Total messages: %d\n", rep.TotalMessages)
	fmt.Fprintf(&b, "- Total words: %d\n", rep.TotalWords)
	fmt.Fprintf(&b, "- Average message length (words): %.2f\n", rep.AvgMessageLength())
	fmt.Fprintf(&b, "- Key takeaway: %s\n", rep.Takeaway)
	fmt.Fprintf(&b, "- Flags: %s\n", flagList(rep.Flags))

	b.WriteString("\n## Messages Per Speaker\n")
	for _, sp := range rep.Speakers {
		fmt.Fprintf(&b, "- %s: %d\n", sp, rep.Stats[sp].Messages)
	}

	b.WriteString("\n## Average Message Length (Words)\n")
	for _, sp := range rep.Speakers {
		fmt.Fprintf(&b, "- %s: %.2f\n", sp, rep.Stats[sp].AvgLength())
	}

	b.WriteString("\n## Dominance Ratio (Word Share)\n")
	for _, sp := range rep.Speakers {
		fmt.Fprintf(&b, "- %s: %.1f%%\n", sp, rep.DominanceRatio(sp)*100)
	}

	b.WriteString("\n## Interruptions\n")
	fmt.Fprintf(&b, "- Total interruptions: %d\n", rep.TotalInterruptions())
	for _, sp := range rep.Speakers {
		if n := rep.InterruptionTotals[sp]; n > 0 {
			fmt.Fprintf(&b, "- %s: %d\n", sp, n)
		}
	}

	b.WriteString("\n## Sentiment (Rule-based)\n")
	for _, s := range domain.Sentiments() {
		fmt.Fprintf(&b, "- %s: %d\n", title(s), rep.SentimentTotals[s])
	}

	b.WriteString("\n## Sentiment By Speaker\n")
	for _, sp := range rep.Speakers {
		t := rep.Stats[sp].Sentiment
		fmt.Fprintf(&b, "- %s: %d positive, %d neutral, %d negative\n",
			sp,
			t[domain.SentimentPositive],
			t[domain.SentimentNeutral],
			t[domain.SentimentNegative])
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func flagList(flags []string) string {
	if len(flags) == 0 {
		return "None"
	}
	return strings.Join(flags, ", ")
}

func title(s domain.Sentiment) string {
	str := string(s)
	return strings.ToUpper(str[:1]) + str[1:]
}
