package note

import (
	"regexp"
	"strings"
	"unicode"
)

// SectionKind classifies a subsection of a disclosure note.
type SectionKind uint8

const (
	SectionUnknown      SectionKind = 0
	SectionHeader       SectionKind = 1
	SectionOperations   SectionKind = 2
	SectionGoingConcern SectionKind = 3
)

func (k SectionKind) String() string {
	switch k {
	case SectionHeader:
		return "Header"
	case SectionOperations:
		return "Operations"
	case SectionGoingConcern:
		return "GoingConcern"
	default:
		return "Unknown"
	}
}

func (k SectionKind) IsValid() bool {
	return k >= SectionHeader && k <= SectionGoingConcern
}

// TagID returns the taxonomy identifier emitted for this section kind.
func (k SectionKind) TagID() string {
	switch k {
	case SectionHeader:
		return TagHeader
	case SectionOperations:
		return TagOperations
	case SectionGoingConcern:
		return TagGoingConcern
	default:
		return ""
	}
}

// Section groups consecutive paragraphs that belong to the same subsection.
// Header sections are excluded from entity tagging.
type Section struct {
	Kind       SectionKind
	Paragraphs []Paragraph
}

// SkipTagging reports whether entity extraction should be bypassed for the
// paragraphs in this section.
func (s Section) SkipTagging() bool {
	return s.Kind == SectionHeader
}

var headerNumberRe = regexp.MustCompile(`^\d+\.`)

// IsHeader reports whether a paragraph is a numbered section header, such as
// "1. NATURE OF OPERATIONS AND GOING CONCERN". A header starts with a number
// followed by a period, and the remainder is mostly uppercase.
func IsHeader(text string) bool {
	text = strings.TrimSpace(text)
	if !headerNumberRe.MatchString(text) {
		return false
	}
	content := text
	if i := strings.Index(text, "."); i >= 0 {
		content = strings.TrimSpace(text[i+1:])
	}
	if content == "" {
		return false
	}
	upper := 0
	for _, r := range content {
		if unicode.IsUpper(r) {
			upper++
		}
	}
	return float64(upper)/float64(len([]rune(content))) > 0.5
}

// startsGoingConcern reports whether a paragraph opens the going-concern
// discussion rather than continuing the operations description.
func startsGoingConcern(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "going concern") ||
		strings.Contains(lower, "material uncertainty") ||
		strings.Contains(text, "These consolidated financial statements")
}

// Classify walks the note's paragraphs in order and buckets them into
// sections. Each header paragraph forms its own section; non-header
// paragraphs accumulate into an operations section until a going-concern
// trigger phrase starts a new section.
func Classify(paragraphs []Paragraph) []Section {
	var (
		sections []Section
		current  *Section
	)
	flush := func() {
		if current != nil {
			sections = append(sections, *current)
			current = nil
		}
	}

	for _, para := range paragraphs {
		if IsHeader(para.Text) {
			flush()
			sections = append(sections, Section{
				Kind:       SectionHeader,
				Paragraphs: []Paragraph{para},
			})
			continue
		}
		switch {
		case startsGoingConcern(para.Text) && (current == nil || current.Kind != SectionGoingConcern):
			flush()
			current = &Section{Kind: SectionGoingConcern, Paragraphs: []Paragraph{para}}
		case current == nil:
			current = &Section{Kind: SectionOperations, Paragraphs: []Paragraph{para}}
		default:
			current.Paragraphs = append(current.Paragraphs, para)
		}
	}
	flush()
	return sections
}
