package notetag

import (
	"context"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
	"unicode/utf8"

	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

// ---------------------------------------------------------------------------
// Configuration
// ---------------------------------------------------------------------------

// Config holds tuneable parameters for the tagging pipeline.
type Config struct {
	Recognizer RecognizerConfig `mapstructure:"recognizer"`

	// ConceptsPath optionally points at a YAML file overriding the built-in
	// financial-concept phrase list.
	ConceptsPath string `mapstructure:"concepts_path"`

	// BatchConcurrency bounds the number of units processed in parallel by
	// ExtractBatch.
	BatchConcurrency int `mapstructure:"batch_concurrency"`
}

// DefaultConfig returns production-ready defaults.
func DefaultConfig() Config {
	return Config{
		Recognizer: RecognizerConfig{
			Enabled: false,
			Timeout: 2 * time.Second,
		},
		BatchConcurrency: 4,
	}
}

// ---------------------------------------------------------------------------
// Results
// ---------------------------------------------------------------------------

// Mode describes whether company-name augmentation is active for this tagger.
type Mode string

const (
	// ModeAugmented means the external recognizer contributes CompanyName
	// candidates.
	ModeAugmented Mode = "augmented"

	// ModeDegraded means pattern matchers only.  For every entity kind except
	// CompanyName the resolved spans are identical to augmented mode.
	ModeDegraded Mode = "degraded"
)

// Stats counts candidate contributions and resolution discards for one
// extraction call.
type Stats struct {
	CandidatesBySource map[string]int `json:"candidates_by_source"`
	Candidates         int            `json:"candidates"`
	Resolved           int            `json:"resolved"`
	Discarded          int            `json:"discarded"`
}

// Result is the output of a single Extract call.  Spans are pairwise
// non-overlapping and ordered by position; the list has no lifecycle beyond
// the call that produced it.
type Result struct {
	Spans []Span `json:"spans"`
	Stats Stats  `json:"stats"`
	Mode  Mode   `json:"mode"`
}

// Options modifies a single Extract call.
type Options struct {
	// Skip short-circuits tagging for this unit (used upstream for
	// header-classified units): the result carries an empty span list and no
	// matcher runs, regardless of text content.
	Skip bool
}

// ---------------------------------------------------------------------------
// Metrics
// ---------------------------------------------------------------------------

// Metrics records operational telemetry for the tagging pipeline.
type Metrics interface {
	RecordExtraction(candidates, resolved int, duration time.Duration)
	RecordCandidates(source string, n int)
	RecordSkipped()
}

type noopMetrics struct{}

func (noopMetrics) RecordExtraction(int, int, time.Duration) {}
func (noopMetrics) RecordCandidates(string, int)             {}
func (noopMetrics) RecordSkipped()                           {}

// NewNopMetrics returns a Metrics implementation that discards everything.
func NewNopMetrics() Metrics { return noopMetrics{} }

// ---------------------------------------------------------------------------
// Tagger
// ---------------------------------------------------------------------------

// Tagger is the top-level API for entity extraction.  Implementations are
// safe for concurrent use: units are independent and extraction touches only
// the unit's own text.
type Tagger interface {
	// Extract locates entity spans in one text unit and resolves overlaps.
	Extract(ctx context.Context, text string, opts Options) (*Result, error)

	// ExtractBatch processes independent units with bounded concurrency.
	ExtractBatch(ctx context.Context, texts []string) ([]*Result, error)

	// Mode reports whether this tagger runs augmented or degraded.
	Mode() Mode

	// SwapConcepts atomically replaces the financial-concept phrase list.
	SwapConcepts(phrases []string) error
}

type taggerImpl struct {
	matchers   []matcher
	recognizer Recognizer
	concepts   atomic.Pointer[ConceptDictionary]
	config     Config
	metrics    Metrics
	logger     logging.Logger
	mode       Mode
}

// New constructs a fully-wired tagger.  The recognizer variant decides the
// mode once, here; per-call code never branches on availability.
func New(cfg Config, rec Recognizer, metrics Metrics, logger logging.Logger) (Tagger, error) {
	if rec == nil {
		rec = noopRecognizer{}
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	phrases := DefaultConcepts()
	if cfg.ConceptsPath != "" {
		loaded, err := LoadConceptsFile(cfg.ConceptsPath)
		if err != nil {
			return nil, err
		}
		phrases = loaded
	}
	dict, err := NewConceptDictionary(phrases)
	if err != nil {
		return nil, err
	}

	mode := ModeDegraded
	if rec.Available() {
		mode = ModeAugmented
	}

	t := &taggerImpl{
		matchers:   matcherSet(),
		recognizer: rec,
		config:     cfg,
		metrics:    metrics,
		logger:     logger.Named("notetag"),
		mode:       mode,
	}
	t.concepts.Store(dict)
	return t, nil
}

func (t *taggerImpl) Mode() Mode { return t.mode }

func (t *taggerImpl) SwapConcepts(phrases []string) error {
	dict, err := NewConceptDictionary(phrases)
	if err != nil {
		return err
	}
	t.concepts.Store(dict)
	return nil
}

func (t *taggerImpl) Extract(ctx context.Context, text string, opts Options) (*Result, error) {
	if !utf8.ValidString(text) {
		return nil, errors.New(errors.ErrCodeTextNotUTF8, "text unit is not valid UTF-8")
	}

	if opts.Skip {
		t.metrics.RecordSkipped()
		return &Result{
			Spans: []Span{},
			Stats: Stats{CandidatesBySource: map[string]int{}},
			Mode:  t.mode,
		}, nil
	}

	start := time.Now()

	candidates, bySource := aggregate(ctx, text, t.matchers, t.concepts.Load(), t.recognizer, t.logger)
	resolved := Resolve(candidates)
	if resolved == nil {
		resolved = []Span{}
	}

	for source, n := range bySource {
		t.metrics.RecordCandidates(source, n)
	}
	t.metrics.RecordExtraction(len(candidates), len(resolved), time.Since(start))

	return &Result{
		Spans: resolved,
		Stats: Stats{
			CandidatesBySource: bySource,
			Candidates:         len(candidates),
			Resolved:           len(resolved),
			Discarded:          len(candidates) - len(resolved),
		},
		Mode: t.mode,
	}, nil
}

// ExtractBatch fans units out over a bounded worker pool.  Units share no
// mutable state, so no coordination beyond the semaphore is needed.  The
// first per-unit error is returned; remaining units still complete.
func (t *taggerImpl) ExtractBatch(ctx context.Context, texts []string) ([]*Result, error) {
	if len(texts) == 0 {
		return []*Result{}, nil
	}

	results := make([]*Result, len(texts))
	errs := make([]error, len(texts))

	concurrency := t.config.BatchConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	sem := make(chan struct{}, concurrency)
	var wg sync.WaitGroup

	for i, txt := range texts {
		wg.Add(1)
		go func(idx int, unit string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res, err := t.Extract(ctx, unit, Options{})
			results[idx] = res
			errs[idx] = err
		}(i, txt)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return results, errors.Wrap(err, errors.CodeUnknown, "batch unit failed").
				WithDetail("unit " + strconv.Itoa(i))
		}
	}
	return results, nil
}
