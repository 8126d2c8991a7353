// Package notexml reads disclosure notes from their XML interchange format
// and writes tagged notes back out as taxonomy-tagged XML.
//
// Input documents look like:
//
//	<Note start_block="14" end_block="20">
//	  <paragraph block_index="14">1. NATURE OF OPERATIONS</paragraph>
//	  ...
//	</Note>
package notexml

import (
	"io"
	"os"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/turtacn/FinNote-Intelligence/internal/domain/note"
	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

var paragraphQuery = xpath.MustCompile("//paragraph")

// ReadNote parses a disclosure note document from r.
func ReadNote(r io.Reader) (*note.Note, error) {
	root, err := xmlquery.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeNoteMalformed, "failed to parse note XML")
	}
	elem := xmlquery.FindOne(root, "/Note")
	if elem == nil {
		return nil, errors.New(errors.ErrCodeNoteMalformed, "missing <Note> root element")
	}

	n := &note.Note{
		StartBlock: elem.SelectAttr("start_block"),
		EndBlock:   elem.SelectAttr("end_block"),
	}
	for _, p := range xmlquery.QuerySelectorAll(root, paragraphQuery) {
		n.Paragraphs = append(n.Paragraphs, note.Paragraph{
			BlockIndex: p.SelectAttr("block_index"),
			Text:       p.InnerText(),
		})
	}
	if err := n.Validate(); err != nil {
		return nil, err
	}
	return n, nil
}

// ReadNoteFile parses a disclosure note document from a file on disk.
func ReadNoteFile(path string) (*note.Note, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeNoteMalformed, "failed to open note file")
	}
	defer f.Close()
	return ReadNote(f)
}
