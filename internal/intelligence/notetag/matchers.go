package notetag

import (
	"regexp"
	"strings"
)

// ---------------------------------------------------------------------------
// Patterns
// ---------------------------------------------------------------------------

// monthNames is the alternation shared by every date-shaped pattern.
const monthNames = `(?:January|February|March|April|May|June|July|August|September|October|November|December)`

// fullDatePattern matches a complete calendar date such as "January 24, 2011".
// IncorporationDate and GeneralDate both embed this exact sub-pattern so that
// the same date text yields byte-identical candidate spans from both matchers;
// overlap resolution's length tie-break depends on that identity.
const fullDatePattern = monthNames + `\s+\d{1,2},\s+\d{4}`

var (
	// "was incorporated ... on <date>".  The non-greedy gap picks the nearest
	// date after the trigger phrase, not the furthest.
	incorporationRe = regexp.MustCompile(`(?i)was incorporated.*?on\s+(` + fullDatePattern + `)`)

	// Structured office address: "13th Floor, 1313 Lucky Street, Vancouver,
	// British Columbia, Canada, V1C 2D3".
	addressRe = regexp.MustCompile(`\d+(?:st|nd|rd|th)?\s+Floor,\s+\d+\s+[A-Za-z\s]+Street,\s+[A-Za-z\s,]+,\s+[A-Z]\d[A-Z]\s+\d[A-Z]\d`)

	// Short uppercase ticker in straight or typographic quotes after the
	// trigger phrase.
	symbolRe = regexp.MustCompile(`under the symbol\s+["\x{201C}]([A-Z]{2,5})["\x{201D}]`)

	// Proper-noun run ending in a legal-entity suffix: "BestCo Ltd.",
	// "Acme Holdings Corporation".
	companyRe = regexp.MustCompile(`\b[A-Z][a-zA-Z]+(?:\s+[A-Z][a-zA-Z]+)*\s+(?:Ltd\.|Inc\.|Corp\.|Corporation|Limited)`)

	// Currency-prefixed numeral with thousands separators and an optional
	// exactly-two-digit fraction: "$19,821", "$12.34".
	amountRe = regexp.MustCompile(`\$\d{1,3}(?:,\d{3})*(?:\.\d{2})?`)

	fullDateRe  = regexp.MustCompile(fullDatePattern)
	monthYearRe = regexp.MustCompile(monthNames + `\s+\d{4}`)
	yearRe      = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
)

// legalSuffixes gate which organisation-like mentions count as company names.
var legalSuffixes = []string{"Ltd.", "Inc.", "Corp.", "Corporation", "Limited"}

// ---------------------------------------------------------------------------
// Matcher set
// ---------------------------------------------------------------------------

// matchFunc is a pure span-finding rule: text in, raw candidates out.
// Matchers never error and never mutate input; empty text yields an empty
// candidate list.
type matchFunc func(text string) []Span

// matcher pairs a rule with the source name reported in extraction stats.
type matcher struct {
	name  string
	match matchFunc
}

// matcherSet returns the fixed collection of span-finding rules.  The order
// here is irrelevant to output: the aggregator runs every matcher
// unconditionally and resolution re-sorts all candidates.
func matcherSet() []matcher {
	return []matcher{
		{name: "incorporation_date", match: matchIncorporationDates},
		{name: "registered_address", match: matchAddresses},
		{name: "trading_symbol", match: matchTradingSymbols},
		{name: "company_name", match: matchCompanyNames},
		{name: "financial_amount", match: matchAmounts},
		{name: "general_date", match: matchDates},
	}
}

// matchIncorporationDates finds full calendar dates preceded by an
// incorporation-context phrase.  The span covers only the date text, never
// the trigger phrase.
func matchIncorporationDates(text string) []Span {
	var spans []Span
	for _, loc := range incorporationRe.FindAllStringSubmatchIndex(text, -1) {
		// loc[2]:loc[3] is the capture group holding the date.
		if s, ok := newSpan(text, loc[2], loc[3], KindIncorporationDate); ok {
			spans = append(spans, s)
		}
	}
	return spans
}

func matchAddresses(text string) []Span {
	var spans []Span
	for _, loc := range addressRe.FindAllStringIndex(text, -1) {
		if s, ok := newSpan(text, loc[0], loc[1], KindRegisteredAddress); ok {
			spans = append(spans, s)
		}
	}
	return spans
}

// matchTradingSymbols captures only the ticker inside the quotes.
func matchTradingSymbols(text string) []Span {
	var spans []Span
	for _, loc := range symbolRe.FindAllStringSubmatchIndex(text, -1) {
		if s, ok := newSpan(text, loc[2], loc[3], KindTradingSymbol); ok {
			spans = append(spans, s)
		}
	}
	return spans
}

func matchCompanyNames(text string) []Span {
	var spans []Span
	for _, loc := range companyRe.FindAllStringIndex(text, -1) {
		if s, ok := newSpan(text, loc[0], loc[1], KindCompanyName); ok {
			spans = append(spans, s)
		}
	}
	return spans
}

func matchAmounts(text string) []Span {
	var spans []Span
	for _, loc := range amountRe.FindAllStringIndex(text, -1) {
		if s, ok := newSpan(text, loc[0], loc[1], KindFinancialAmount); ok {
			spans = append(spans, s)
		}
	}
	return spans
}

// matchDates is the catch-all: every date-shaped substring becomes a
// GeneralDate candidate so it is tagged as something even when no more
// specific matcher claims it.  Sub-forms overlap (a full date contains its
// year); resolution, not the matcher, sorts that out.
func matchDates(text string) []Span {
	var spans []Span
	for _, re := range []*regexp.Regexp{fullDateRe, monthYearRe, yearRe} {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			if s, ok := newSpan(text, loc[0], loc[1], KindGeneralDate); ok {
				spans = append(spans, s)
			}
		}
	}
	return spans
}

// hasLegalSuffix reports whether s carries one of the recognised legal-entity
// suffixes.  Used both by the pattern matcher indirectly (the regexp encodes
// the same list) and to filter recognizer mentions down to company names.
func hasLegalSuffix(s string) bool {
	for _, suffix := range legalSuffixes {
		if strings.Contains(s, suffix) {
			return true
		}
	}
	return false
}
