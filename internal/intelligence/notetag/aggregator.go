package notetag

import (
	"context"

	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
)

// Source names reported in extraction stats for the non-matcher candidate
// sources.
const (
	sourceConcepts   = "financial_concept"
	sourceRecognizer = "recognizer"
)

// aggregate invokes every matcher, the concept dictionary, and the recognizer
// unconditionally, with no short-circuiting on earlier results: a
// lower-priority matcher's output is the fallback when a higher-priority
// context check fails.  Candidates are concatenated without deduplication;
// duplicates and overlaps are the resolver's job.  Invocation order never
// affects output because resolution re-sorts.
func aggregate(
	ctx context.Context,
	text string,
	matchers []matcher,
	dict *ConceptDictionary,
	rec Recognizer,
	logger logging.Logger,
) ([]Span, map[string]int) {
	var candidates []Span
	bySource := make(map[string]int, len(matchers)+2)

	for _, m := range matchers {
		found := m.match(text)
		bySource[m.name] += len(found)
		candidates = append(candidates, found...)
	}

	found := dict.Match(text)
	bySource[sourceConcepts] += len(found)
	candidates = append(candidates, found...)

	// Recognizer failure is never fatal for extraction: degrade to zero
	// additional candidates and keep going.
	if rec.Available() {
		mentions, err := rec.Recognize(ctx, text)
		if err != nil {
			logger.Warn("recognizer call failed, continuing without augmentation", logging.Err(err))
		} else {
			augmented := mentionsToSpans(text, mentions)
			bySource[sourceRecognizer] += len(augmented)
			candidates = append(candidates, augmented...)
		}
	}

	return candidates, bySource
}
