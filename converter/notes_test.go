package converter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/docx-html-converter/document"
)

func footnoteRef(id string) *document.NoteReference {
	return &document.NoteReference{NoteType: document.Footnote, NoteID: id}
}

func footnote(id, body string) document.Note {
	return document.Note{
		NoteType: document.Footnote,
		ID:       id,
		Body:     []document.Element{para(text(body))},
	}
}

func TestNoteDeduplication(t *testing.T) {
	t.Run("three references to one note yield one body and three backlinks", func(t *testing.T) {
		doc := docOf(
			para(text("a"), footnoteRef("42")),
			para(text("b"), footnoteRef("42")),
			para(text("c"), footnoteRef("42")),
		)
		doc.Notes = document.Notes{footnote("42", "the note")}

		res := convertDoc(t, Config{}, doc)

		assert.Equal(t, 1, strings.Count(res.HTML, `<li id="footnote-42">`))
		assert.Equal(t, 3, strings.Count(res.HTML, "[1]"))
		assert.Contains(t, res.HTML, `id="footnote-ref-42"`)
		assert.Contains(t, res.HTML, `id="footnote-ref-42-2"`)
		assert.Contains(t, res.HTML, `id="footnote-ref-42-3"`)
		assert.Equal(t, 3, strings.Count(res.HTML, "↑"))

		// Backlinks come in encounter order.
		assert.Less(t,
			strings.Index(res.HTML, `href="#footnote-ref-42"`),
			strings.Index(res.HTML, `href="#footnote-ref-42-2"`),
		)
	})

	t.Run("display numbers follow first-encounter order", func(t *testing.T) {
		doc := docOf(
			para(footnoteRef("9")),
			para(footnoteRef("2")),
			para(footnoteRef("9")),
		)
		doc.Notes = document.Notes{footnote("9", "ninth"), footnote("2", "second")}

		res := convertDoc(t, Config{}, doc)

		// Note 9 was seen first, so it is [1] and its body is listed first.
		assert.Contains(t, res.HTML, `<a href="#footnote-9" id="footnote-ref-9">[1]</a>`)
		assert.Contains(t, res.HTML, `<a href="#footnote-2" id="footnote-ref-2">[2]</a>`)
		assert.Less(t,
			strings.Index(res.HTML, `<li id="footnote-9">`),
			strings.Index(res.HTML, `<li id="footnote-2">`),
		)
	})

	t.Run("inline marker links to the note body", func(t *testing.T) {
		doc := docOf(para(footnoteRef("1")))
		doc.Notes = document.Notes{footnote("1", "body")}

		res := convertDoc(t, Config{IDPrefix: "doc-"}, doc)

		assert.Contains(t, res.HTML, `<sup><a href="#doc-footnote-1" id="doc-footnote-ref-1">[1]</a></sup>`)
		assert.Contains(t, res.HTML, `<li id="doc-footnote-1">`)
	})

	t.Run("footnotes and endnotes number independently of their ids", func(t *testing.T) {
		doc := docOf(para(
			footnoteRef("7"),
			&document.NoteReference{NoteType: document.Endnote, NoteID: "7"},
		))
		doc.Notes = document.Notes{
			footnote("7", "foot"),
			{NoteType: document.Endnote, ID: "7", Body: []document.Element{para(text("end"))}},
		}

		res := convertDoc(t, Config{}, doc)

		assert.Contains(t, res.HTML, `id="footnote-ref-7"`)
		assert.Contains(t, res.HTML, `id="endnote-ref-7"`)
		assert.Contains(t, res.HTML, `<li id="footnote-7">`)
		assert.Contains(t, res.HTML, `<li id="endnote-7">`)
	})

	t.Run("missing note body warns", func(t *testing.T) {
		doc := docOf(para(footnoteRef("1")))

		res := convertDoc(t, Config{}, doc)

		require.Len(t, res.Messages, 1)
		assert.Equal(t, SeverityWarning, res.Messages[0].Severity)
		assert.Equal(t, CodeMissingReference, res.Messages[0].Code)
	})

	t.Run("no references means no note section", func(t *testing.T) {
		doc := docOf(para(text("plain")))
		doc.Notes = document.Notes{footnote("1", "unreferenced")}

		res := convertDoc(t, Config{}, doc)

		assert.Equal(t, "<p>plain</p>", res.HTML)
	})
}

func TestCommentReferences(t *testing.T) {
	comment := document.Comment{
		ID:             "c1",
		AuthorName:     "Alice Brown",
		AuthorInitials: "AB",
		Body:           []document.Element{para(text("please fix"))},
	}

	t.Run("each reference gets its own label and entry", func(t *testing.T) {
		doc := docOf(
			para(text("x"), &document.CommentReference{CommentID: "c1"}),
			para(text("y"), &document.CommentReference{CommentID: "c1"}),
		)
		doc.Comments = document.Comments{comment}

		res := convertDoc(t, Config{}, doc)

		assert.Contains(t, res.HTML, "[AB1]")
		assert.Contains(t, res.HTML, "[AB2]")
		assert.Equal(t, 2, strings.Count(res.HTML, "<dt "))
		assert.Equal(t, 2, strings.Count(res.HTML, "<dd>"))
		assert.Contains(t, res.HTML, "Comment [AB1] - Alice Brown")
	})

	t.Run("inline marker links to the comment entry", func(t *testing.T) {
		doc := docOf(para(&document.CommentReference{CommentID: "c1"}))
		doc.Comments = document.Comments{comment}

		res := convertDoc(t, Config{}, doc)

		assert.Contains(t, res.HTML, `<sup><a href="#comment-c1-1" id="comment-ref-c1-1">[AB1]</a></sup>`)
		assert.Contains(t, res.HTML, `<dt id="comment-c1-1">`)
		assert.Contains(t, res.HTML, `href="#comment-ref-c1-1"`)
	})

	t.Run("missing comment warns and drops the marker", func(t *testing.T) {
		doc := docOf(para(text("x"), &document.CommentReference{CommentID: "ghost"}))

		res := convertDoc(t, Config{}, doc)

		assert.Equal(t, "<p>x</p>", res.HTML)
		require.Len(t, res.Messages, 1)
		assert.Equal(t, CodeMissingReference, res.Messages[0].Code)
	})
}
