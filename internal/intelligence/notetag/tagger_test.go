package notetag

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

// recordingMetrics captures metric calls for assertions.
type recordingMetrics struct {
	mu          sync.Mutex
	extractions int
	skipped     int
	bySource    map[string]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{bySource: make(map[string]int)}
}

func (m *recordingMetrics) RecordExtraction(candidates, resolved int, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.extractions++
}

func (m *recordingMetrics) RecordCandidates(source string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.bySource[source] += n
}

func (m *recordingMetrics) RecordSkipped() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.skipped++
}

func newTestTagger(t *testing.T) Tagger {
	t.Helper()
	tagger, err := New(DefaultConfig(), nil, nil, logging.NewNopLogger())
	require.NoError(t, err)
	return tagger
}

func TestNew_DegradedWithoutRecognizer(t *testing.T) {
	tagger := newTestTagger(t)
	assert.Equal(t, ModeDegraded, tagger.Mode())
}

func TestNew_AugmentedWithRecognizer(t *testing.T) {
	srv := newRecognizerServer(t, nil)
	rec := NewRecognizer(RecognizerConfig{
		Enabled:  true,
		Endpoint: srv.URL,
		Timeout:  time.Second,
	}, logging.NewNopLogger())

	tagger, err := New(DefaultConfig(), rec, nil, logging.NewNopLogger())
	require.NoError(t, err)
	assert.Equal(t, ModeAugmented, tagger.Mode())
}

func TestNew_BadConceptsPath(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ConceptsPath = "/nonexistent/concepts.yaml"
	_, err := New(cfg, nil, nil, logging.NewNopLogger())
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeConceptListInvalid))
}

func TestExtract_FullSentence(t *testing.T) {
	tagger := newTestTagger(t)

	text := "BestCo Ltd. was incorporated on January 24, 2011. The Company has a working capital deficiency of $19,821 as at December 31, 2023."
	result, err := tagger.Extract(context.Background(), text, Options{})
	require.NoError(t, err)

	var got []string
	for _, s := range result.Spans {
		got = append(got, s.Kind.String()+":"+s.Text)
	}
	assert.Equal(t, []string{
		"CompanyName:BestCo Ltd.",
		"IncorporationDate:January 24, 2011",
		"FinancialConcept:working capital deficiency",
		"FinancialAmount:$19,821",
		"GeneralDate:December 31, 2023",
	}, got)

	assert.Equal(t, ModeDegraded, result.Mode)
	assert.Equal(t, len(result.Spans), result.Stats.Resolved)
	assert.Equal(t, result.Stats.Candidates-result.Stats.Resolved, result.Stats.Discarded)
	assert.Positive(t, result.Stats.Discarded, "the date candidates overlapping the incorporation date must be discarded")
}

func TestExtract_InvalidUTF8(t *testing.T) {
	tagger := newTestTagger(t)
	_, err := tagger.Extract(context.Background(), "bad \xff\xfe text", Options{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTextNotUTF8))
}

func TestExtract_EmptyText(t *testing.T) {
	tagger := newTestTagger(t)
	result, err := tagger.Extract(context.Background(), "", Options{})
	require.NoError(t, err)
	assert.Empty(t, result.Spans)
}

func TestExtract_Skip(t *testing.T) {
	metrics := newRecordingMetrics()
	tagger, err := New(DefaultConfig(), nil, metrics, logging.NewNopLogger())
	require.NoError(t, err)

	// Text full of matchable entities, skipped anyway.
	result, err := tagger.Extract(context.Background(), "1. BESTCO LTD. 2011 $19,821", Options{Skip: true})
	require.NoError(t, err)
	assert.Empty(t, result.Spans)
	assert.Zero(t, result.Stats.Candidates)
	assert.Equal(t, 1, metrics.skipped)
	assert.Zero(t, metrics.extractions)
}

func TestExtract_DeterministicAcrossCalls(t *testing.T) {
	tagger := newTestTagger(t)
	text := "GoodCo Inc. was incorporated on May 5, 2001 with a loss of $7,166 in 2001."

	first, err := tagger.Extract(context.Background(), text, Options{})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := tagger.Extract(context.Background(), text, Options{})
		require.NoError(t, err)
		assert.Equal(t, first.Spans, again.Spans)
	}
}

func TestExtract_MetricsBySource(t *testing.T) {
	metrics := newRecordingMetrics()
	tagger, err := New(DefaultConfig(), nil, metrics, logging.NewNopLogger())
	require.NoError(t, err)

	_, err = tagger.Extract(context.Background(), "BestCo Ltd. reported a loss in 2023.", Options{})
	require.NoError(t, err)

	assert.Equal(t, 1, metrics.extractions)
	assert.Equal(t, 1, metrics.bySource["company_name"])
	assert.Equal(t, 1, metrics.bySource[sourceConcepts])
	assert.Equal(t, 1, metrics.bySource["general_date"])
}

func TestSwapConcepts(t *testing.T) {
	tagger := newTestTagger(t)

	require.NoError(t, tagger.SwapConcepts([]string{"net loss"}))

	result, err := tagger.Extract(context.Background(), "a net loss this period", Options{})
	require.NoError(t, err)
	require.Len(t, result.Spans, 1)
	assert.Equal(t, "net loss", result.Spans[0].Text)

	// Invalid replacement list keeps the previous dictionary.
	require.Error(t, tagger.SwapConcepts([]string{""}))
	result, err = tagger.Extract(context.Background(), "a net loss this period", Options{})
	require.NoError(t, err)
	assert.Len(t, result.Spans, 1)
}

func TestExtractBatch(t *testing.T) {
	tagger := newTestTagger(t)

	texts := []string{
		"BestCo Ltd. was incorporated on January 24, 2011.",
		"",
		"a loss of $19,821",
	}
	results, err := tagger.ExtractBatch(context.Background(), texts)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Len(t, results[0].Spans, 2)
	assert.Empty(t, results[1].Spans)
	assert.Len(t, results[2].Spans, 2)
}

func TestExtractBatch_Empty(t *testing.T) {
	tagger := newTestTagger(t)
	results, err := tagger.ExtractBatch(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestExtractBatch_PropagatesUnitError(t *testing.T) {
	tagger := newTestTagger(t)
	_, err := tagger.ExtractBatch(context.Background(), []string{"fine", "bad \xff"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeTextNotUTF8))
}

func TestExtract_AugmentedAddsCompanyCandidates(t *testing.T) {
	text := "The parent is BestCo Ltd. per the filing."
	srv := newRecognizerServer(t, []Mention{
		{Text: "BestCo Ltd.", Label: "ORG", Start: 14, End: 25},
	})
	rec := NewRecognizer(RecognizerConfig{
		Enabled:  true,
		Endpoint: srv.URL,
		Timeout:  time.Second,
	}, logging.NewNopLogger())

	metrics := newRecordingMetrics()
	tagger, err := New(DefaultConfig(), rec, metrics, logging.NewNopLogger())
	require.NoError(t, err)

	result, err := tagger.Extract(context.Background(), text, Options{})
	require.NoError(t, err)
	assert.Equal(t, ModeAugmented, result.Mode)
	assert.Equal(t, 1, metrics.bySource[sourceRecognizer])

	var companies []string
	for _, s := range result.Spans {
		if s.Kind == KindCompanyName {
			companies = append(companies, s.Text)
		}
	}
	assert.Equal(t, []string{"BestCo Ltd."}, companies)
}
