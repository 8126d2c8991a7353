package note

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/FinNote-Intelligence/pkg/errors"
)

func TestParagraph_IsEmpty(t *testing.T) {
	assert.True(t, Paragraph{Text: ""}.IsEmpty())
	assert.True(t, Paragraph{Text: "   \t\n"}.IsEmpty())
	assert.False(t, Paragraph{Text: "The Company"}.IsEmpty())
}

func TestNote_Validate(t *testing.T) {
	var nilNote *Note
	err := nilNote.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNoteMalformed))

	err = (&Note{StartBlock: "14", EndBlock: "20"}).Validate()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrCodeNoteMalformed))

	valid := &Note{
		StartBlock: "14",
		EndBlock:   "20",
		Paragraphs: []Paragraph{{BlockIndex: "14", Text: "1. NATURE OF OPERATIONS"}},
	}
	assert.NoError(t, valid.Validate())
}

func TestNote_ParagraphCount(t *testing.T) {
	var nilNote *Note
	assert.Zero(t, nilNote.ParagraphCount())
	assert.Equal(t, 2, (&Note{Paragraphs: make([]Paragraph, 2)}).ParagraphCount())
}

func TestTaggedSegment_Tagged(t *testing.T) {
	assert.False(t, TaggedSegment{Text: "plain"}.Tagged())
	assert.True(t, TaggedSegment{Text: "BestCo Ltd.", TagID: TagCompanyName}.Tagged())
}

func TestTaggedParagraph_PlainText(t *testing.T) {
	para := TaggedParagraph{
		BlockIndex: "15",
		Segments: []TaggedSegment{
			{Text: "BestCo Ltd.", TagID: TagCompanyName},
			{Text: " was incorporated on "},
			{Text: "January 24, 2011", TagID: TagIncorporationDate},
			{Text: "."},
		},
	}
	assert.Equal(t, "BestCo Ltd. was incorporated on January 24, 2011.", para.PlainText())

	assert.Equal(t, "", TaggedParagraph{}.PlainText())
}
