// Package converter turns a parsed word-processing document model into an
// HTML string governed by a style map. A single conversion is best-effort:
// malformed or unsupported content degrades to a recorded message and zero
// output for that element, never an aborted document. Only call-boundary
// misconfiguration (an invalid config or a nil document) fails a call.
package converter

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgonek/docx-html-converter/document"
	"github.com/rgonek/docx-html-converter/htmltree"
	"github.com/rgonek/docx-html-converter/stylemap"
)

// Converter converts document trees to HTML.
type Converter struct {
	config     Config
	styleMap   stylemap.Map
	extensions []Extension
}

// New creates a Converter with the given config. Configuration problems are
// fatal here rather than surfacing per document.
func New(config Config) (*Converter, error) {
	cfg := config.clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	styleMap := cfg.StyleMap
	if !cfg.DisableDefaultStyleMap {
		styleMap = styleMap.Merge(stylemap.Default())
	}

	return &Converter{
		config:     cfg,
		styleMap:   styleMap,
		extensions: sortExtensions(cfg.Extensions),
	}, nil
}

// Convert renders doc to HTML. All conversion state is scoped to the call:
// concurrent conversions of different documents share nothing. The returned
// Result always carries the complete message log alongside the best-effort
// markup.
func (c *Converter) Convert(ctx context.Context, doc *document.Document) (Result, error) {
	if doc == nil {
		return Result{}, errors.New("nil document")
	}
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	s := &state{
		config:        c.config,
		styleMap:      c.styleMap,
		extensions:    c.extensions,
		ctx:           ctx,
		doc:           doc,
		notes:         newNoteRegistry(),
		comments:      &commentRegistry{},
		deferredSinks: make(map[int64]*deferredSink),
	}

	nodes := s.convertChildren(doc.Children)
	nodes = append(nodes, s.noteBodies(doc)...)
	nodes = append(nodes, s.commentBodies(doc)...)

	nodes = s.resolveDeferred(ctx, nodes)
	nodes = htmltree.Simplify(nodes)

	return Result{
		HTML:     s.write(nodes),
		Messages: s.messages,
	}, nil
}

// state is the per-conversion context threaded through the traversal; no
// conversion state outlives the call.
type state struct {
	config     Config
	styleMap   stylemap.Map
	extensions []Extension
	ctx        context.Context
	doc        *document.Document

	messages      []Message
	notes         *noteRegistry
	comments      *commentRegistry
	deferredSeq   int64
	deferredSinks map[int64]*deferredSink
}

func (s *state) addWarning(code MessageCode, text string) {
	s.messages = append(s.messages, Message{Severity: SeverityWarning, Code: code, Text: text})
}

func (s *state) addError(code MessageCode, text string) {
	s.messages = append(s.messages, Message{Severity: SeverityError, Code: code, Text: text})
}

func (s *state) convertChildren(children []document.Element) []htmltree.Node {
	var nodes []htmltree.Node
	for _, child := range children {
		nodes = append(nodes, s.convertElement(child)...)
	}
	return nodes
}

// convertElement dispatches one element: built-in converters keyed on the
// element variant first, then the extension chain for unknown elements.
func (s *state) convertElement(el document.Element) []htmltree.Node {
	switch t := el.(type) {
	case *document.Paragraph:
		return s.convertParagraph(t)
	case *document.Run:
		return s.convertRun(t)
	case *document.Text:
		return []htmltree.Node{htmltree.Text(t.Value)}
	case *document.Hyperlink:
		return s.convertHyperlink(t)
	case *document.Image:
		return s.convertImage(t)
	case *document.NoteReference:
		return s.convertNoteReference(t)
	case *document.CommentReference:
		return s.convertCommentReference(t)
	case *document.BookmarkStart:
		return s.convertBookmark(t)
	case *document.Break:
		return s.convertBreak(t)
	case *document.Checkbox:
		return s.convertCheckbox(t)
	case *document.Table:
		return s.convertTable(t)
	case *document.TableRow:
		return s.convertTableRow(t, false, document.TableProperties{})
	case *document.TableCell:
		return s.convertTableCell(t, false, document.TableProperties{})
	case *document.Unknown:
		return s.convertUnknown(t)
	default:
		s.addWarning(CodeUnrecognizedElement, fmt.Sprintf("unrecognized element was ignored: %T", el))
		return nil
	}
}

func (s *state) convertParagraph(p *document.Paragraph) []htmltree.Node {
	path := s.paragraphPath(p)
	return path.Wrap(s.convertChildren(p.Children))
}

func (s *state) paragraphPath(p *document.Paragraph) htmltree.Path {
	if rule, ok := s.styleMap.Find(p); ok {
		return rule.Path
	}
	if p.StyleID != "" || p.StyleName != "" {
		s.addWarning(CodeUnrecognizedStyle,
			fmt.Sprintf("unrecognised paragraph style: %s (style id: %s)", p.StyleName, p.StyleID))
	}
	return htmltree.PathOf(htmltree.FreshPathElem("p"))
}

// convertRun nests the run's formatting wrappers in a fixed order regardless
// of which subset is present, innermost to outermost: highlight, small caps,
// all caps, strikethrough, underline, vertical alignment, italic, bold, then
// the run's explicit style. The fixed order is an output-stability contract.
func (s *state) convertRun(r *document.Run) []htmltree.Node {
	nodes := s.convertChildren(r.Children)

	if r.Highlight != "" {
		nodes = s.runPropertyPath(stylemap.KindHighlight, r.Highlight, "").Wrap(nodes)
	}
	if r.SmallCaps {
		nodes = s.runPropertyPath(stylemap.KindSmallCaps, "", "").Wrap(nodes)
	}
	if r.AllCaps {
		nodes = s.runPropertyPath(stylemap.KindAllCaps, "", "").Wrap(nodes)
	}
	if r.Strikethrough {
		nodes = s.runPropertyPath(stylemap.KindStrikethrough, "", "s").Wrap(nodes)
	}
	if r.Underline {
		nodes = s.runPropertyPath(stylemap.KindUnderline, "", "").Wrap(nodes)
	}
	switch r.VerticalAlignment {
	case document.VerticalAlignmentSubscript:
		nodes = htmltree.PathOf(htmltree.PathElem("sub")).Wrap(nodes)
	case document.VerticalAlignmentSuperscript:
		nodes = htmltree.PathOf(htmltree.PathElem("sup")).Wrap(nodes)
	}
	if r.Italic {
		nodes = s.runPropertyPath(stylemap.KindItalic, "", "em").Wrap(nodes)
	}
	if r.Bold {
		nodes = s.runPropertyPath(stylemap.KindBold, "", "strong").Wrap(nodes)
	}

	return s.runStylePath(r).Wrap(nodes)
}

// runPropertyPath looks up the style-map path for a run formatting property.
// defaultTag names the collapsible wrapper used when no rule applies; an
// empty defaultTag drops the formatting (underline, caps variants and
// highlights render as plain content unless mapped).
func (s *state) runPropertyPath(kind stylemap.Kind, highlight, defaultTag string) htmltree.Path {
	if rule, ok := s.styleMap.FindRunProperty(kind, highlight); ok {
		return rule.Path
	}
	if defaultTag == "" {
		return htmltree.Path{}
	}
	return htmltree.PathOf(htmltree.PathElem(defaultTag))
}

func (s *state) runStylePath(r *document.Run) htmltree.Path {
	if rule, ok := s.styleMap.Find(r); ok {
		return rule.Path
	}
	if r.StyleID != "" || r.StyleName != "" {
		s.addWarning(CodeUnrecognizedStyle,
			fmt.Sprintf("unrecognised run style: %s (style id: %s)", r.StyleName, r.StyleID))
	}
	return htmltree.Path{}
}

func (s *state) convertHyperlink(h *document.Hyperlink) []htmltree.Node {
	href := h.Href
	if href == "" && h.Anchor != "" {
		href = "#" + s.config.IDPrefix + h.Anchor
	}
	if s.config.SanitizeURL != nil {
		if clean := s.config.SanitizeURL(href); clean != href {
			s.addWarning(CodeRewrittenURL, fmt.Sprintf("potentially unsafe URL was rewritten: %s", href))
			href = clean
		}
	}

	attrs := map[string]string{"href": href}
	if h.TargetFrame != "" {
		attrs["target"] = h.TargetFrame
		attrs["rel"] = "noopener noreferrer"
	}

	// Collapsible so a link the parser split across runs becomes one anchor.
	return []htmltree.Node{htmltree.Collapsible("a", attrs, s.convertChildren(h.Children)...)}
}

func (s *state) convertBookmark(b *document.BookmarkStart) []htmltree.Node {
	anchor := htmltree.Elem("a", map[string]string{"id": s.config.IDPrefix + b.Name}, htmltree.ForceWrite)
	return []htmltree.Node{anchor}
}

func (s *state) convertBreak(b *document.Break) []htmltree.Node {
	if rule, ok := s.styleMap.Find(b); ok {
		return rule.Path.Wrap(nil)
	}
	s.addWarning(CodeDroppedFeature, fmt.Sprintf("unsupported break type was ignored: %s", b.Type))
	return nil
}

func (s *state) convertCheckbox(c *document.Checkbox) []htmltree.Node {
	attrs := map[string]string{"type": "checkbox"}
	if c.Checked {
		attrs["checked"] = "checked"
	}
	return []htmltree.Node{htmltree.Elem("input", attrs)}
}

func (s *state) write(nodes []htmltree.Node) string {
	if !s.config.Pretty {
		return htmltree.Write(nodes)
	}

	out := ""
	for _, n := range nodes {
		rendered := htmltree.Write([]htmltree.Node{n})
		if rendered == "" {
			continue
		}
		if out != "" {
			out += "\n"
		}
		out += rendered
	}
	return out
}
