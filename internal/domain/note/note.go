// Package note models nature-of-operations disclosure notes: the paragraphs
// they carry, the subsections they divide into, and the taxonomy identifiers
// used when emitting tagged output.
package note

import (
	"strings"

	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

// Paragraph is a single block of text within a disclosure note. BlockIndex is
// the document-level block identifier carried through from the source filing.
type Paragraph struct {
	BlockIndex string
	Text       string
}

// IsEmpty reports whether the paragraph carries no visible text.
func (p Paragraph) IsEmpty() bool {
	return strings.TrimSpace(p.Text) == ""
}

// Note is a parsed disclosure note covering a contiguous block range of the
// source filing.
type Note struct {
	StartBlock string
	EndBlock   string
	Paragraphs []Paragraph
}

// Validate checks structural soundness of a parsed note.
func (n *Note) Validate() error {
	if n == nil {
		return errors.New(errors.ErrCodeNoteMalformed, "note is nil")
	}
	if len(n.Paragraphs) == 0 {
		return errors.New(errors.ErrCodeNoteMalformed, "note has no paragraphs")
	}
	return nil
}

// ParagraphCount returns the number of paragraphs in the note.
func (n *Note) ParagraphCount() int {
	if n == nil {
		return 0
	}
	return len(n.Paragraphs)
}
