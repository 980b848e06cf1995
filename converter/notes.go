package converter

import (
	"fmt"

	"github.com/rgonek/docx-html-converter/document"
	"github.com/rgonek/docx-html-converter/htmltree"
)

// noteRegistry deduplicates footnote/endnote references within one
// conversion. Display numbers follow first-encounter order; every reference,
// first or repeat, records its own backlink anchor.
type noteRegistry struct {
	records map[noteKey]*noteRecord
	order   []noteKey
}

type noteKey struct {
	noteType document.NoteType
	id       string
}

type noteRecord struct {
	displayNumber int
	referenceIDs  []string
}

func newNoteRegistry() *noteRegistry {
	return &noteRegistry{records: make(map[noteKey]*noteRecord)}
}

// reference records one citation of a note and returns its record plus the
// fresh backlink id allocated for this citation.
func (r *noteRegistry) reference(key noteKey, prefix string) (*noteRecord, string) {
	rec, ok := r.records[key]
	if !ok {
		rec = &noteRecord{displayNumber: len(r.order) + 1}
		r.records[key] = rec
		r.order = append(r.order, key)
	}

	refID := fmt.Sprintf("%s%s-ref-%s", prefix, key.noteType, key.id)
	if n := len(rec.referenceIDs); n > 0 {
		refID = fmt.Sprintf("%s-%d", refID, n+1)
	}
	rec.referenceIDs = append(rec.referenceIDs, refID)
	return rec, refID
}

func (s *state) noteBodyID(key noteKey) string {
	return fmt.Sprintf("%s%s-%s", s.config.IDPrefix, key.noteType, key.id)
}

func (s *state) convertNoteReference(ref *document.NoteReference) []htmltree.Node {
	key := noteKey{noteType: ref.NoteType, id: ref.NoteID}
	rec, refID := s.notes.reference(key, s.config.IDPrefix)

	link := htmltree.Elem("a", map[string]string{
		"href": "#" + s.noteBodyID(key),
		"id":   refID,
	}, htmltree.Text(fmt.Sprintf("[%d]", rec.displayNumber)))
	return []htmltree.Node{htmltree.Elem("sup", nil, link)}
}

// noteBodies renders each referenced note once, in display-number order, with
// one return link per recorded reference.
func (s *state) noteBodies(doc *document.Document) []htmltree.Node {
	if len(s.notes.order) == 0 {
		return nil
	}

	items := make([]htmltree.Node, 0, len(s.notes.order))
	for _, key := range s.notes.order {
		rec := s.notes.records[key]

		note, ok := doc.Notes.Find(key.noteType, key.id)
		if !ok {
			s.addWarning(CodeMissingReference, fmt.Sprintf("no body found for %s %q", key.noteType, key.id))
			continue
		}

		body := s.convertChildren(note.Body)
		backlinks := make([]htmltree.Node, 0, len(rec.referenceIDs))
		for _, refID := range rec.referenceIDs {
			backlinks = append(backlinks,
				htmltree.Text(" "),
				htmltree.Elem("a", map[string]string{"href": "#" + refID}, htmltree.Text("↑")),
			)
		}
		body = appendToLastParagraph(body, backlinks)

		items = append(items, htmltree.Elem("li", map[string]string{"id": s.noteBodyID(key)}, body...))
	}

	return []htmltree.Node{htmltree.Elem("ol", nil, items...)}
}

// appendToLastParagraph puts the backlinks inside the body's trailing
// paragraph when there is one, so the return arrows sit on the note's last
// line rather than below it.
func appendToLastParagraph(body, backlinks []htmltree.Node) []htmltree.Node {
	if len(body) > 0 {
		if last, ok := body[len(body)-1].(*htmltree.Element); ok && last.Tag.Name() == "p" {
			last.Children = append(last.Children, backlinks...)
			return body
		}
	}
	return append(body, backlinks...)
}

// commentRegistry numbers comment references with a running counter: unlike
// notes, every reference gets its own label and its own entry in the comment
// list.
type commentRegistry struct {
	count      int
	references []commentReferenceRecord
}

type commentReferenceRecord struct {
	commentID string
	label     string
	refID     string
	ordinal   int
}

func (s *state) convertCommentReference(ref *document.CommentReference) []htmltree.Node {
	s.comments.count++
	n := s.comments.count

	comment, ok := s.doc.Comments.Find(ref.CommentID)
	if !ok {
		s.addWarning(CodeMissingReference, fmt.Sprintf("no body found for comment %q", ref.CommentID))
		return nil
	}

	label := fmt.Sprintf("[%s%d]", comment.AuthorInitials, n)
	refID := fmt.Sprintf("%scomment-ref-%s-%d", s.config.IDPrefix, ref.CommentID, n)
	s.comments.references = append(s.comments.references, commentReferenceRecord{
		commentID: ref.CommentID,
		label:     label,
		refID:     refID,
		ordinal:   n,
	})

	link := htmltree.Elem("a", map[string]string{
		"href": fmt.Sprintf("#%scomment-%s-%d", s.config.IDPrefix, ref.CommentID, n),
		"id":   refID,
	}, htmltree.Text(label))
	return []htmltree.Node{htmltree.Elem("sup", nil, link)}
}

// commentBodies renders one definition-list entry per comment reference, in
// reference order.
func (s *state) commentBodies(doc *document.Document) []htmltree.Node {
	if len(s.comments.references) == 0 {
		return nil
	}

	entries := make([]htmltree.Node, 0, 2*len(s.comments.references))
	for _, ref := range s.comments.references {
		comment, _ := doc.Comments.Find(ref.commentID)

		body := s.convertChildren(comment.Body)
		backlinks := []htmltree.Node{
			htmltree.Text(" "),
			htmltree.Elem("a", map[string]string{"href": "#" + ref.refID}, htmltree.Text("↑")),
		}
		body = appendToLastParagraph(body, backlinks)

		term := fmt.Sprintf("Comment %s", ref.label)
		if comment.AuthorName != "" {
			term = fmt.Sprintf("Comment %s - %s", ref.label, comment.AuthorName)
		}
		entries = append(entries,
			htmltree.Elem("dt", map[string]string{
				"id": fmt.Sprintf("%scomment-%s-%d", s.config.IDPrefix, ref.commentID, ref.ordinal),
			}, htmltree.Text(term)),
			htmltree.Elem("dd", nil, body...),
		)
	}

	return []htmltree.Node{htmltree.Elem("dl", nil, entries...)}
}
