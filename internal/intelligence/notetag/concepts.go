package notetag

import (
	"os"
	"regexp"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/turtacn/FinNote-Intelligence/internal/infrastructure/monitoring/logging"
	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

// ---------------------------------------------------------------------------
// Financial-concept dictionary
// ---------------------------------------------------------------------------

// DefaultConcepts is the curated phrase list for the FinancialConcept matcher.
// The list is intentionally small: only phrases verified against reference
// output are included, and broad generic terms are deliberately excluded even
// though they are financially meaningful, because indiscriminate matching
// produces false positives in adjacent prose.
func DefaultConcepts() []string {
	return []string{
		"working capital deficiency",
		"accumulated deficit",
		"loss",
		"operating activities",
	}
}

// ConceptDictionary matches a fixed phrase list against text with whole-word,
// case-insensitive semantics.  Instances are immutable after construction and
// safe to share across concurrent calls; the tagger swaps the whole dictionary
// atomically when the backing file changes.
type ConceptDictionary struct {
	phrases  []string
	patterns []*regexp.Regexp
}

// NewConceptDictionary compiles a dictionary from the given phrases.  Empty
// phrases are rejected: a blank entry would match everywhere.
func NewConceptDictionary(phrases []string) (*ConceptDictionary, error) {
	d := &ConceptDictionary{
		phrases:  make([]string, 0, len(phrases)),
		patterns: make([]*regexp.Regexp, 0, len(phrases)),
	}
	for _, p := range phrases {
		if p == "" {
			return nil, errors.New(errors.ErrCodeConceptListInvalid, "concept phrase must not be empty")
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(p) + `\b`)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCodeConceptListInvalid, "failed to compile concept phrase")
		}
		d.phrases = append(d.phrases, p)
		d.patterns = append(d.patterns, re)
	}
	return d, nil
}

// Phrases returns a copy of the phrase list.
func (d *ConceptDictionary) Phrases() []string {
	out := make([]string, len(d.phrases))
	copy(out, d.phrases)
	return out
}

// Match returns a FinancialConcept candidate for every whole-word occurrence
// of every phrase.  Overlaps between phrases are legal candidate input and
// are left to overlap resolution.
func (d *ConceptDictionary) Match(text string) []Span {
	var spans []Span
	for _, re := range d.patterns {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if s, ok := newSpan(text, loc[0], loc[1], KindFinancialConcept); ok {
				spans = append(spans, s)
			}
		}
	}
	return spans
}

// ---------------------------------------------------------------------------
// Concepts file
// ---------------------------------------------------------------------------

// conceptsFile is the YAML schema of an external concept list.
type conceptsFile struct {
	Concepts []string `yaml:"concepts"`
}

// LoadConceptsFile reads a YAML concept list:
//
//	concepts:
//	  - working capital deficiency
//	  - accumulated deficit
func LoadConceptsFile(path string) ([]string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConceptListInvalid, "failed to read concepts file")
	}
	var f conceptsFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConceptListInvalid, "failed to parse concepts file")
	}
	if len(f.Concepts) == 0 {
		return nil, errors.New(errors.ErrCodeConceptListInvalid, "concepts file lists no phrases").WithDetail(path)
	}
	return f.Concepts, nil
}

// ---------------------------------------------------------------------------
// Hot reload
// ---------------------------------------------------------------------------

// WatchConceptsFile monitors path and swaps the tagger's dictionary whenever
// the file is rewritten.  A change that fails to load or compile is logged and
// skipped; the previous dictionary stays in effect.  The returned stop
// function closes the watcher.
func WatchConceptsFile(path string, tagger Tagger, logger logging.Logger) (func() error, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to create concepts watcher")
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, errors.Wrap(err, errors.ErrCodeInternal, "failed to watch concepts file").WithDetail(path)
	}

	go func() {
		for {
			select {
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				phrases, err := LoadConceptsFile(path)
				if err != nil {
					logger.Warn("concepts reload failed, keeping previous list", logging.Err(err))
					continue
				}
				if err := tagger.SwapConcepts(phrases); err != nil {
					logger.Warn("concepts swap failed, keeping previous list", logging.Err(err))
					continue
				}
				logger.Info("concepts list reloaded",
					logging.String("path", path),
					logging.Int("phrases", len(phrases)))
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("concepts watcher error", logging.Err(err))
			}
		}
	}()

	return w.Close, nil
}
