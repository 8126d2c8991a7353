package note

// TaggedSegment is one run of paragraph text in tagged output. TagID is empty
// for literal text and carries a taxonomy identifier for tagged entities.
// Concatenating every segment's Text reproduces the paragraph verbatim.
type TaggedSegment struct {
	Text  string
	TagID string
}

// Tagged reports whether the segment carries an entity tag.
func (s TaggedSegment) Tagged() bool {
	return s.TagID != ""
}

// TaggedParagraph is a paragraph whose text has been split into literal and
// tagged segments.
type TaggedParagraph struct {
	BlockIndex string
	Segments   []TaggedSegment
}

// PlainText reassembles the original paragraph text from the segments.
func (p TaggedParagraph) PlainText() string {
	var n int
	for _, seg := range p.Segments {
		n += len(seg.Text)
	}
	buf := make([]byte, 0, n)
	for _, seg := range p.Segments {
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}

// TaggedSection is a classified subsection with its tagged paragraphs.
type TaggedSection struct {
	Kind       SectionKind
	Paragraphs []TaggedParagraph
}

// TaggedNote is the fully processed form of a disclosure note, ready for
// serialization.
type TaggedNote struct {
	StartBlock string
	EndBlock   string
	Sections   []TaggedSection
}
