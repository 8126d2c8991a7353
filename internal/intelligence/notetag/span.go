// Package notetag implements entity extraction and tagging for financial
// disclosure paragraphs.  A fixed set of deterministic matchers, optionally
// augmented by an external recognizer, proposes candidate spans; a greedy
// priority-ranked interval selection converts the candidate multiset into a
// single non-overlapping, order-preserving tag set which the applicator
// splices back into the original text.
//
// Each paragraph-equivalent unit is processed as an isolated request: no
// component holds state across invocations, and compiled patterns are
// process-wide read-only initialisation, safe to share across concurrent
// calls without synchronisation.
package notetag

import (
	"fmt"

	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

// ---------------------------------------------------------------------------
// EntityKind enumeration
// ---------------------------------------------------------------------------

// EntityKind classifies the kind of entity a span represents.  The declaration
// order is fixed: it is the final tie-break key in overlap resolution, so
// reordering the constants changes tagging semantics.
type EntityKind int

const (
	KindIncorporationDate EntityKind = iota
	KindRegisteredAddress
	KindTradingSymbol
	KindCompanyName
	KindFinancialAmount
	KindFinancialConcept
	KindGeneralDate

	numEntityKinds
)

var kindNames = [numEntityKinds]string{
	KindIncorporationDate: "IncorporationDate",
	KindRegisteredAddress: "RegisteredAddress",
	KindTradingSymbol:     "TradingSymbol",
	KindCompanyName:       "CompanyName",
	KindFinancialAmount:   "FinancialAmount",
	KindFinancialConcept:  "FinancialConcept",
	KindGeneralDate:       "GeneralDate",
}

// String returns the canonical name of the kind.
func (k EntityKind) String() string {
	if k < 0 || k >= numEntityKinds {
		return fmt.Sprintf("EntityKind(%d)", int(k))
	}
	return kindNames[k]
}

// kindPriorities maps every kind to its integer specificity rank.  Higher
// values win ties during overlap resolution.  The table is fixed at build
// time: changing it changes tagging semantics and must be a deliberate,
// versioned decision.
var kindPriorities = map[EntityKind]int{
	KindIncorporationDate: 100,
	KindRegisteredAddress: 90,
	KindTradingSymbol:     85,
	KindCompanyName:       80,
	KindFinancialAmount:   70,
	KindFinancialConcept:  60,
	KindGeneralDate:       50,
}

// A kind missing from the priority table is a programming-time invariant
// violation, fatal at initialisation rather than at per-call time.
func init() {
	for k := EntityKind(0); k < numEntityKinds; k++ {
		if _, ok := kindPriorities[k]; !ok {
			panic(fmt.Sprintf("notetag: entity kind %s missing from priority table", k))
		}
	}
}

// Priority returns the fixed specificity rank for the kind.
func (k EntityKind) Priority() int {
	return kindPriorities[k]
}

// MarshalJSON encodes the kind as its canonical name.
func (k EntityKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// UnmarshalJSON decodes a canonical kind name.
func (k *EntityKind) UnmarshalJSON(data []byte) error {
	name := string(data)
	if len(name) >= 2 && name[0] == '"' && name[len(name)-1] == '"' {
		name = name[1 : len(name)-1]
	}
	for i, n := range kindNames {
		if n == name {
			*k = EntityKind(i)
			return nil
		}
	}
	return errors.Newf(errors.ErrCodeSerialization, "unknown entity kind %q", name)
}

// ---------------------------------------------------------------------------
// Span
// ---------------------------------------------------------------------------

// Span is an immutable half-open byte-offset interval [Start, End) in the
// source text, tagged with an entity kind.  Priority is derived from Kind,
// never set per instance, so resolution is a pure function of kind and span
// geometry.  Text is the substring [Start, End), kept for convenience and
// debugging only; resolution always works on offsets.
type Span struct {
	Start int        `json:"start"`
	End   int        `json:"end"`
	Kind  EntityKind `json:"kind"`
	Text  string     `json:"text"`
}

// Len returns the span length in bytes.
func (s Span) Len() int { return s.End - s.Start }

// Priority returns the specificity rank derived from the span's kind.
func (s Span) Priority() int { return s.Kind.Priority() }

// newSpan builds a Span over text[start:end).  It reports false for spans that
// violate 0 <= start < end <= len(text); zero-length spans never enter a
// candidate list.
func newSpan(text string, start, end int, kind EntityKind) (Span, bool) {
	if start < 0 || start >= end || end > len(text) {
		return Span{}, false
	}
	return Span{Start: start, End: end, Kind: kind, Text: text[start:end]}, true
}

// validateSpan checks the half-open interval invariant for a span against a
// text of the given length.
func validateSpan(s Span, textLen int) error {
	if s.Start < 0 || s.Start >= s.End || s.End > textLen {
		return errors.Newf(errors.ErrCodeSpanInvalid,
			"span [%d,%d) violates 0 <= start < end <= %d", s.Start, s.End, textLen)
	}
	return nil
}
