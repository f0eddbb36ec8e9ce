package app

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/abhichhn93/conversation-intel-agent/internal/domain"
	"github.com/abhichhn93/conversation-intel-agent/internal/logging"
)

const ApplicationName = "conversation-intel"

// IntelService orchestrates the analysis pipeline.
type IntelService struct {
	parser   domain.TranscriptParser
	analyzer domain.Analyzer
	report   domain.ReportRenderer
	summary  domain.ReportRenderer
	log      zerolog.Logger
}

func NewIntelService(parser domain.TranscriptParser, analyzer domain.Analyzer, report, summary domain.ReportRenderer) *IntelService {
	return &IntelService{
		parser:   parser,
		analyzer: analyzer,
		report:   report,
		summary:  summary,
		log:      logging.WithComponent("pipeline"),
	}
}

// Process runs the full pipeline: parse → filter → analyze → render.
// reportW or summaryW may be nil to skip that output.
func (s *IntelService) Process(in io.Reader, from, to *time.Duration, reportW, summaryW io.Writer) error {
	start := time.Now()

	transcript, err := s.parser.Parse(in)
	if err != nil {
		return fmt.Errorf("parsing transcript: %w", err)
	}
	if transcript.Dropped > 0 {
		s.log.Warn().Int("lines", transcript.Dropped).Msg("skipped malformed transcript lines")
	}

	if from != nil || to != nil {
		transcript = transcript.Filter(from, to)
	}

	rep := s.analyzer.Analyze(transcript)

	if reportW != nil {
		if err := s.report.Render(reportW, rep); err != nil {
			return fmt.Errorf("rendering report: %w", err)
		}
	}
	if summaryW != nil {
		if err := s.summary.Render(summaryW, rep); err != nil {
			return fmt.Errorf("rendering summary: %w", err)
		}
	}

	s.log.Debug().
		Int("messages", rep.TotalMessages).
		Int("speakers", len(rep.Speakers)).
		Dur("elapsed", time.Since(start)).
		Msg("analysis complete")

	return nil
}
