package notexml

import (
	"bytes"
	"encoding/xml"
	"io"
	"os"

	"github.com/turtacn/FinNote-Intelligence/internal/domain/note"
	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

const indent = "  "

// WriteNote serializes a tagged note to w in the taxonomy-tagged output
// format. Paragraph text is emitted as mixed content: literal runs
// interleaved with <Tag id="..."> elements, so that stripping the entity
// tags reproduces the original paragraph byte for byte.
func WriteNote(w io.Writer, tagged *note.TaggedNote) error {
	if tagged == nil {
		return errors.New(errors.ErrCodeNoteMalformed, "tagged note is nil")
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString(`<Tag id="` + note.TagNoteRoot + "\">\n")
	buf.WriteString(indent + "<note>\n")

	for _, section := range tagged.Sections {
		buf.WriteString(indent + indent + `<Tag id="`)
		escape(&buf, section.Kind.TagID())
		buf.WriteString("\">\n")
		for _, para := range section.Paragraphs {
			writeParagraph(&buf, para)
		}
		buf.WriteString(indent + indent + "</Tag>\n")
	}

	buf.WriteString(indent + "</note>\n")
	buf.WriteString("</Tag>\n")

	if _, err := w.Write(buf.Bytes()); err != nil {
		return errors.Wrap(err, errors.CodeUnknown, "failed to write note XML")
	}
	return nil
}

// WriteNoteFile serializes a tagged note to a file on disk.
func WriteNoteFile(path string, tagged *note.TaggedNote) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, errors.CodeUnknown, "failed to create output file")
	}
	if err := WriteNote(f, tagged); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeParagraph(buf *bytes.Buffer, para note.TaggedParagraph) {
	buf.WriteString(indent + indent + indent + `<paragraph block_index="`)
	escape(buf, para.BlockIndex)
	buf.WriteString(`">`)
	for _, seg := range para.Segments {
		if seg.Tagged() {
			buf.WriteString(`<Tag id="`)
			escape(buf, seg.TagID)
			buf.WriteString(`">`)
			escape(buf, seg.Text)
			buf.WriteString("</Tag>")
		} else {
			escape(buf, seg.Text)
		}
	}
	buf.WriteString("</paragraph>\n")
}

func escape(buf *bytes.Buffer, s string) {
	// EscapeText only fails on writer errors, which bytes.Buffer never
	// produces.
	_ = xml.EscapeText(buf, []byte(s))
}
