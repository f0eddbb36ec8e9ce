package parser

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/abhichhn93/conversation-intel-agent/internal/domain"
)

// PipeParser parses pipe-delimited transcript lines of the form
//
//	timestamp | speaker | text
//
// The first two pipes delimit the fields; further pipes belong to the text.
// Lines that do not match the shape, or whose timestamp or speaker trims to
// empty, are dropped without error.
type PipeParser struct{}

// lineRe captures timestamp, speaker and text around the first two pipes.
var lineRe = regexp.MustCompile(`^([^|]+)\|([^|]+)\|(.+)$`)

func (p *PipeParser) Parse(r io.Reader) (*domain.Transcript, error) {
	t := &domain.Transcript{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if u, ok := ParseLine(line); ok {
			t.Utterances = append(t.Utterances, u)
		} else {
			t.Dropped++
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading transcript: %w", err)
	}

	return t, nil
}

// ParseLine parses a single transcript line. The second return value reports
// whether the line matched the expected shape.
func ParseLine(line string) (domain.Utterance, bool) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return domain.Utterance{}, false
	}

	ts := strings.TrimSpace(m[1])
	speaker := strings.TrimSpace(m[2])
	text := strings.TrimSpace(m[3])
	if ts == "" || speaker == "" || text == "" {
		return domain.Utterance{}, false
	}

	return domain.Utterance{
		Timestamp: ts,
		Speaker:   speaker,
		Text:      text,
	}, true
}
