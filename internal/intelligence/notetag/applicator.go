package notetag

import (
	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

// Segment is one piece of the applicator's output: either a literal run of
// untagged text (Span == nil) or a tagged span.  A segment sequence covers
// the entire input exactly once, in left-to-right order, with every character
// outside tagged spans preserved verbatim.
type Segment struct {
	Text string `json:"text"`
	Span *Span  `json:"span,omitempty"`
}

// Tagged reports whether the segment carries a span.
func (s Segment) Tagged() bool { return s.Span != nil }

// Apply splices the resolved span list back into text, producing the segment
// sequence.  Spans must be the output of Resolve for the same text: ordered
// by start and pairwise non-overlapping.  A span list violating that contract
// is a programming error at the call site and is rejected, not repaired.
func Apply(text string, spans []Span) ([]Segment, error) {
	if len(spans) == 0 {
		// Whole input as one literal segment; an empty input yields a single
		// empty literal so the coverage invariant holds for every text.
		return []Segment{{Text: text}}, nil
	}

	segments := make([]Segment, 0, 2*len(spans)+1)
	pos := 0
	for i := range spans {
		sp := spans[i]
		if err := validateSpan(sp, len(text)); err != nil {
			return nil, err
		}
		if sp.Start < pos {
			return nil, errors.Newf(errors.ErrCodeSpanOverlap,
				"span [%d,%d) overlaps or precedes position %d", sp.Start, sp.End, pos)
		}
		if sp.Start > pos {
			segments = append(segments, Segment{Text: text[pos:sp.Start]})
		}
		segments = append(segments, Segment{Text: text[sp.Start:sp.End], Span: &spans[i]})
		pos = sp.End
	}
	if pos < len(text) {
		segments = append(segments, Segment{Text: text[pos:]})
	}
	return segments, nil
}
