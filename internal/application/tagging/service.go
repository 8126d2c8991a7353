// Package tagging provides the application-level service for disclosure note
// tagging. This package serves as the interface between HTTP/CLI handlers and
// the extraction pipeline.
package tagging

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/turtacn/FinNote-Intelligence/internal/domain/note"
	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/notexml"
	"github.com/turtacn/FinNote-Intelligence/internal/intelligence/notetag"
)

// Service defines the interface for tagging application operations.
type Service interface {
	// TagText extracts and resolves entity spans in a single unit of text.
	TagText(ctx context.Context, text string) (*TextResult, error)

	// TagNote classifies a note into subsections and tags every paragraph.
	TagNote(ctx context.Context, n *note.Note) (*NoteResult, error)

	// ProcessFile reads a note XML file, tags it, and writes the tagged XML.
	ProcessFile(ctx context.Context, inputPath, outputPath string) (*NoteResult, error)

	// Mode reports whether extraction is running augmented or degraded.
	Mode() notetag.Mode
}

// TextResult is the outcome of tagging a single unit of text.
type TextResult struct {
	Spans    []notetag.Span    `json:"spans"`
	Segments []notetag.Segment `json:"segments"`
	Stats    notetag.Stats     `json:"stats"`
	Mode     notetag.Mode      `json:"mode"`
}

// RunStats aggregates extraction counters across a whole note.
type RunStats struct {
	Paragraphs         int            `json:"paragraphs"`
	SkippedParagraphs  int            `json:"skipped_paragraphs"`
	Candidates         int            `json:"candidates"`
	Resolved           int            `json:"resolved"`
	Discarded          int            `json:"discarded"`
	CandidatesBySource map[string]int `json:"candidates_by_source"`
}

// NoteResult is the outcome of tagging a whole note.
type NoteResult struct {
	RunID    string           `json:"run_id"`
	Tagged   *note.TaggedNote `json:"-"`
	Stats    RunStats         `json:"stats"`
	Mode     notetag.Mode     `json:"mode"`
	Duration time.Duration    `json:"duration"`
}

type service struct {
	tagger notetag.Tagger
	logger logging.Logger
}

// NewService creates a tagging service. A nil logger falls back to a no-op
// logger.
func NewService(tagger notetag.Tagger, logger logging.Logger) Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &service{
		tagger: tagger,
		logger: logger.Named("tagging"),
	}
}

func (s *service) Mode() notetag.Mode {
	return s.tagger.Mode()
}

func (s *service) TagText(ctx context.Context, text string) (*TextResult, error) {
	result, err := s.tagger.Extract(ctx, text, notetag.Options{})
	if err != nil {
		return nil, err
	}
	segments, err := notetag.Apply(text, result.Spans)
	if err != nil {
		return nil, err
	}
	return &TextResult{
		Spans:    result.Spans,
		Segments: segments,
		Stats:    result.Stats,
		Mode:     result.Mode,
	}, nil
}

func (s *service) TagNote(ctx context.Context, n *note.Note) (*NoteResult, error) {
	if err := n.Validate(); err != nil {
		return nil, err
	}
	start := time.Now()
	runID := uuid.NewString()
	logger := s.logger.With(logging.String("run_id", runID))

	stats := RunStats{CandidatesBySource: make(map[string]int)}
	tagged := &note.TaggedNote{
		StartBlock: n.StartBlock,
		EndBlock:   n.EndBlock,
	}

	for _, section := range note.Classify(n.Paragraphs) {
		taggedSection := note.TaggedSection{Kind: section.Kind}
		for _, para := range section.Paragraphs {
			taggedPara, err := s.tagParagraph(ctx, para, section.SkipTagging(), &stats)
			if err != nil {
				return nil, err
			}
			taggedSection.Paragraphs = append(taggedSection.Paragraphs, taggedPara)
		}
		tagged.Sections = append(tagged.Sections, taggedSection)
	}

	result := &NoteResult{
		RunID:    runID,
		Tagged:   tagged,
		Stats:    stats,
		Mode:     s.tagger.Mode(),
		Duration: time.Since(start),
	}
	logger.Info("note tagged",
		logging.Int("paragraphs", stats.Paragraphs),
		logging.Int("candidates", stats.Candidates),
		logging.Int("resolved", stats.Resolved),
		logging.Int("discarded", stats.Discarded),
		logging.String("mode", string(result.Mode)),
	)
	return result, nil
}

func (s *service) tagParagraph(ctx context.Context, para note.Paragraph, skip bool, stats *RunStats) (note.TaggedParagraph, error) {
	stats.Paragraphs++
	if skip {
		stats.SkippedParagraphs++
	}

	result, err := s.tagger.Extract(ctx, para.Text, notetag.Options{Skip: skip})
	if err != nil {
		return note.TaggedParagraph{}, err
	}
	segments, err := notetag.Apply(para.Text, result.Spans)
	if err != nil {
		return note.TaggedParagraph{}, err
	}

	stats.Candidates += result.Stats.Candidates
	stats.Resolved += result.Stats.Resolved
	stats.Discarded += result.Stats.Discarded
	for source, n := range result.Stats.CandidatesBySource {
		stats.CandidatesBySource[source] += n
	}

	taggedPara := note.TaggedParagraph{BlockIndex: para.BlockIndex}
	for _, seg := range segments {
		taggedSeg := note.TaggedSegment{Text: seg.Text}
		if seg.Tagged() {
			taggedSeg.TagID = entityTagID(seg.Span.Kind)
		}
		taggedPara.Segments = append(taggedPara.Segments, taggedSeg)
	}
	return taggedPara, nil
}

func (s *service) ProcessFile(ctx context.Context, inputPath, outputPath string) (*NoteResult, error) {
	n, err := notexml.ReadNoteFile(inputPath)
	if err != nil {
		return nil, err
	}
	result, err := s.TagNote(ctx, n)
	if err != nil {
		return nil, err
	}
	if err := notexml.WriteNoteFile(outputPath, result.Tagged); err != nil {
		return nil, err
	}
	s.logger.Info("note file processed",
		logging.String("run_id", result.RunID),
		logging.String("input", inputPath),
		logging.String("output", outputPath),
	)
	return result, nil
}

// entityTagID maps an extracted entity kind to its taxonomy identifier.
func entityTagID(kind notetag.EntityKind) string {
	switch kind {
	case notetag.KindIncorporationDate:
		return note.TagIncorporationDate
	case notetag.KindRegisteredAddress:
		return note.TagRegisteredAddress
	case notetag.KindTradingSymbol:
		return note.TagTradingSymbol
	case notetag.KindCompanyName:
		return note.TagCompanyName
	case notetag.KindFinancialAmount:
		return note.TagFinancialAmount
	case notetag.KindFinancialConcept:
		return note.TagFinancialConcept
	case notetag.KindGeneralDate:
		return note.TagGeneralDate
	default:
		return ""
	}
}
