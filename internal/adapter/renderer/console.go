package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/abhichhn93/conversation-intel-agent/internal/domain"
)

// ConsoleRenderer renders the condensed summary for terminal output, covering
// the same headline figures as the report document.
type ConsoleRenderer struct{}

func (r *ConsoleRenderer) Render(w io.Writer, rep *domain.Report) error {
	var b strings.Builder

	b.WriteString("Conversation Intelligence Summary\n")
	b.WriteString("-------------------------------\n")
	fmt.Fprintf(&b, "Total messages: %d\n", rep.TotalMessages)
	fmt.Fprintf(&b, "Total words: %d\n", rep.TotalWords)
	fmt.Fprintf(&b, "Average message length (words): %.2f\n", rep.AvgMessageLength())
	fmt.Fprintf(&b, "Key takeaway: %s\n", rep.Takeaway)
	fmt.Fprintf(&b, "Flags: %s\n", flagList(rep.Flags))

	b.WriteString("Messages per speaker:\n")
	for _, sp := range rep.Speakers {
		fmt.Fprintf(&b, "- %s: %d\n", sp, rep.Stats[sp].Messages)
	}

	b.WriteString("Dominance ratio (word share):\n")
	for _, sp := range rep.Speakers {
		fmt.Fprintf(&b, "- %s: %.1f%%\n", sp, rep.DominanceRatio(sp)*100)
	}

	b.WriteString("Interruptions:\n")
	fmt.Fprintf(&b, "- Total: %d\n", rep.TotalInterruptions())
	for _, sp := range rep.Speakers {
		if n := rep.InterruptionTotals[sp]; n > 0 {
			fmt.Fprintf(&b, "- %s: %d\n", sp, n)
		}
	}

	b.WriteString("Sentiment (rule-based):\n")
	for _, s := range domain.Sentiments() {
		fmt.Fprintf(&b, "- %s: %d\n", title(s), rep.SentimentTotals[s])
	}

	_, err := io.WriteString(w, b.String())
	return err
}
