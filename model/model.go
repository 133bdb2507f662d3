package model

// HeadingMarker delimits structural boundaries inside flat text. It sits in the
// Private Use Area so it never collides with real orthography and survives
// Unicode width folding unchanged.
const HeadingMarker = '\uE000'

// HeadingMarkerString is HeadingMarker as a string, for concatenation.
const HeadingMarkerString = string(HeadingMarker)

// SegmentType tags what kind of block a segment came from.
type SegmentType string

const (
	Paragraph SegmentType = "paragraph"
	Heading   SegmentType = "heading"
	ListItem  SegmentType = "list_item"
)

// Boundary is the structural marker a segment opens, if any.
type Boundary string

const (
	NoBoundary      Boundary = ""
	ChapterBoundary Boundary = "chapter"
	SectionBoundary Boundary = "section"
	HeadingBoundary Boundary = "heading"
)

// Segment is one ordered unit of text to normalize.
type Segment struct {
	ID       string      `json:"id" yaml:"id"`
	Index    int         `json:"index" yaml:"index"`
	Text     string      `json:"text" yaml:"text"`
	Type     SegmentType `json:"type,omitempty" yaml:"type,omitempty"`
	Boundary Boundary    `json:"boundary,omitempty" yaml:"boundary,omitempty"`
}

// Token is a (surface, reading) pair produced by the lexical analyzer.
// Reading is empty when the analyzer had nothing to offer.
type Token struct {
	Surface string `json:"surface" yaml:"surface"`
	Reading string `json:"reading,omitempty" yaml:"reading,omitempty"`
	POS     string `json:"pos,omitempty" yaml:"pos,omitempty"`
}

// Result is the normalized reading of a single segment.
type Result struct {
	Segment Segment `json:"segment" yaml:"segment"`
	Reading string  `json:"reading" yaml:"reading"`
}

// Document is a whole work split into segments. Text is the full source the
// segments came from; its content hash keys the document's dictionary.
type Document struct {
	ID       string    `json:"id" yaml:"id"`
	Text     string    `json:"-" yaml:"-"`
	Segments []Segment `json:"segments" yaml:"segments"`
}
