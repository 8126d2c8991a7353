package notetag

import (
	"sort"
)

// Resolve converts a candidate multiset, possibly overlapping and possibly
// duplicated, into a single non-overlapping tag set preserving left-to-right
// document order.  It is a pure function over its input and deterministic for
// any permutation of candidates.
//
// When two spans compete for the same text the higher-priority candidate is
// accepted first.  Priority outranks length in the sort key: a shorter
// higher-priority span starting at the same offset beats a longer
// lower-priority one that contains it.
func Resolve(candidates []Span) []Span {
	if len(candidates) == 0 {
		return nil
	}

	sorted := make([]Span, len(candidates))
	copy(sorted, candidates)

	// Composite key: start asc, priority desc, length desc, then kind
	// enumeration order.  The final key makes the order total; without it,
	// which of two identical (start, priority, length) spans survives would
	// depend on input order.
	sort.Slice(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		if pa, pb := a.Priority(), b.Priority(); pa != pb {
			return pa > pb
		}
		if a.Len() != b.Len() {
			return a.Len() > b.Len()
		}
		return a.Kind < b.Kind
	})

	resolved := make([]Span, 0, len(sorted))
	lastEnd := -1
	for _, c := range sorted {
		if c.Start >= lastEnd {
			resolved = append(resolved, c)
			lastEnd = c.End
		}
		// Otherwise c overlaps an already-accepted candidate of equal or
		// higher priority (or equal priority and greater length); discard.
	}

	// Sorted by start and accepted without reordering, so the result is
	// already in left-to-right order.
	return resolved
}
