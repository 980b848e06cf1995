// Package document defines the parsed word-processing document model consumed
// by the conversion engine. Instances are produced by an external format
// parser; the types here are plain data and carry no behavior beyond lookup
// helpers.
package document

import (
	"context"
	"io"
)

// Element is any node in the document tree.
type Element interface {
	element()
}

// Document is the root of a parsed document.
type Document struct {
	Children []Element
	Notes    Notes
	Comments Comments
}

// Paragraph is a block of inline content with optional style information.
type Paragraph struct {
	StyleID   string
	StyleName string
	Numbering *NumberingLevel
	Children  []Element
}

// NumberingLevel describes list membership of a paragraph.
type NumberingLevel struct {
	Level     int
	IsOrdered bool
}

// VerticalAlignment positions run content relative to the baseline.
type VerticalAlignment string

const (
	VerticalAlignmentBaseline    VerticalAlignment = "baseline"
	VerticalAlignmentSubscript   VerticalAlignment = "subscript"
	VerticalAlignmentSuperscript VerticalAlignment = "superscript"
)

// Run is a span of inline content sharing one set of character formatting.
type Run struct {
	StyleID           string
	StyleName         string
	Bold              bool
	Italic            bool
	Underline         bool
	Strikethrough     bool
	AllCaps           bool
	SmallCaps         bool
	VerticalAlignment VerticalAlignment
	Highlight         string // highlight color name, empty when not highlighted
	Children          []Element
}

// Text is a literal text node.
type Text struct {
	Value string
}

// Hyperlink wraps inline content in a link. Href points outside the document;
// Anchor targets a bookmark within it. When both are set Href wins.
type Hyperlink struct {
	Href        string
	Anchor      string
	TargetFrame string
	Children    []Element
}

// Image is an embedded picture. Open streams the image bytes on demand so
// that conversion can defer the read.
type Image struct {
	AltText     string
	ContentType string
	Open        func(ctx context.Context) (io.ReadCloser, error)
}

// NoteType distinguishes footnotes from endnotes.
type NoteType string

const (
	Footnote NoteType = "footnote"
	Endnote  NoteType = "endnote"
)

// NoteReference marks an inline citation of a footnote or endnote body.
type NoteReference struct {
	NoteType NoteType
	NoteID   string
}

// Note is a footnote or endnote body.
type Note struct {
	NoteType NoteType
	ID       string
	Body     []Element
}

// Notes is the document's note collection.
type Notes []Note

// Find returns the note with the given type and id.
func (n Notes) Find(noteType NoteType, id string) (Note, bool) {
	for _, note := range n {
		if note.NoteType == noteType && note.ID == id {
			return note, true
		}
	}
	return Note{}, false
}

// CommentReference marks an inline citation of a reviewer comment.
type CommentReference struct {
	CommentID string
}

// Comment is a reviewer comment body.
type Comment struct {
	ID             string
	AuthorName     string
	AuthorInitials string
	Body           []Element
}

// Comments is the document's comment collection.
type Comments []Comment

// Find returns the comment with the given id.
func (c Comments) Find(id string) (Comment, bool) {
	for _, comment := range c {
		if comment.ID == id {
			return comment, true
		}
	}
	return Comment{}, false
}

// BookmarkStart marks a named anchor position.
type BookmarkStart struct {
	Name string
}

// BreakType distinguishes line, page and column breaks.
type BreakType string

const (
	LineBreak   BreakType = "line"
	PageBreak   BreakType = "page"
	ColumnBreak BreakType = "column"
)

// Break is an explicit break in the text flow.
type Break struct {
	Type BreakType
}

// Checkbox is an inline form checkbox.
type Checkbox struct {
	Checked bool
}

// Table is a block-level table.
type Table struct {
	StyleID    string
	StyleName  string
	Properties TableProperties
	Children   []Element
}

// TableRow is one row of a table.
type TableRow struct {
	IsHeader   bool
	Properties RowProperties
	Children   []Element
}

// TableCell is one cell of a table row.
type TableCell struct {
	ColSpan    int
	RowSpan    int
	Properties CellProperties
	Children   []Element
}

// Unknown is an element the parser recognized structurally but the model has
// no variant for. Name and Namespace identify the source markup element.
type Unknown struct {
	Name      string
	Namespace string
	Children  []Element
}

func (*Paragraph) element()        {}
func (*Run) element()              {}
func (*Text) element()             {}
func (*Hyperlink) element()        {}
func (*Image) element()            {}
func (*NoteReference) element()    {}
func (*CommentReference) element() {}
func (*BookmarkStart) element()    {}
func (*Break) element()            {}
func (*Checkbox) element()         {}
func (*Table) element()            {}
func (*TableRow) element()         {}
func (*TableCell) element()        {}
func (*Unknown) element()          {}
