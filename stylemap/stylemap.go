// Package stylemap matches document elements to the HTML wrapper paths they
// are rendered with. A Map is an ordered rule list; order encodes precedence
// and the first matching rule always wins. The textual rule grammar is out of
// scope here: a Map is the already-compiled form, built programmatically or
// loaded from the structured YAML representation in ParseYAML.
package stylemap

import (
	"fmt"
	"strings"

	"github.com/rgonek/docx-html-converter/document"
	"github.com/rgonek/docx-html-converter/htmltree"
)

// Kind identifies what a matcher applies to: an element variant, or a single
// run formatting property.
type Kind string

const (
	KindParagraph     Kind = "paragraph"
	KindRun           Kind = "run"
	KindTable         Kind = "table"
	KindBreak         Kind = "break"
	KindBold          Kind = "bold"
	KindItalic        Kind = "italic"
	KindUnderline     Kind = "underline"
	KindStrikethrough Kind = "strikethrough"
	KindAllCaps       Kind = "all-caps"
	KindSmallCaps     Kind = "small-caps"
	KindHighlight     Kind = "highlight"
)

var knownKinds = map[Kind]bool{
	KindParagraph:     true,
	KindRun:           true,
	KindTable:         true,
	KindBreak:         true,
	KindBold:          true,
	KindItalic:        true,
	KindUnderline:     true,
	KindStrikethrough: true,
	KindAllCaps:       true,
	KindSmallCaps:     true,
	KindHighlight:     true,
}

// StringMatch matches a style name, either exactly or by prefix, always
// case-insensitively.
type StringMatch struct {
	Value  string
	Prefix bool
}

// Equal returns an exact-match criterion.
func Equal(value string) *StringMatch { return &StringMatch{Value: value} }

// StartsWith returns a prefix-match criterion.
func StartsWith(value string) *StringMatch { return &StringMatch{Value: value, Prefix: true} }

func (m *StringMatch) matches(name string) bool {
	if m == nil {
		return true
	}
	if m.Prefix {
		return len(name) >= len(m.Value) && strings.EqualFold(name[:len(m.Value)], m.Value)
	}
	return strings.EqualFold(name, m.Value)
}

// NumberingMatch matches a paragraph's list membership.
type NumberingMatch struct {
	Level     int
	IsOrdered bool
}

// Matcher is the data form of a rule predicate. Zero criteria fields match
// any value: a Matcher{Kind: KindParagraph} accepts every paragraph.
type Matcher struct {
	Kind      Kind
	StyleID   string
	StyleName *StringMatch
	Numbering *NumberingMatch
	BreakType document.BreakType // KindBreak only
	Highlight string             // KindHighlight only; empty matches any color
}

// Matches reports whether the matcher accepts the element. Property-kind
// matchers (bold, highlight, ...) never match whole elements; they are looked
// up through Map.FindRunProperty instead.
func (m Matcher) Matches(el document.Element) bool {
	switch m.Kind {
	case KindParagraph:
		p, ok := el.(*document.Paragraph)
		return ok && m.styleMatches(p.StyleID, p.StyleName) && m.numberingMatches(p.Numbering)
	case KindRun:
		r, ok := el.(*document.Run)
		return ok && m.styleMatches(r.StyleID, r.StyleName)
	case KindTable:
		t, ok := el.(*document.Table)
		return ok && m.styleMatches(t.StyleID, t.StyleName)
	case KindBreak:
		b, ok := el.(*document.Break)
		return ok && (m.BreakType == "" || b.Type == m.BreakType)
	default:
		return false
	}
}

func (m Matcher) styleMatches(styleID, styleName string) bool {
	if m.StyleID != "" && !strings.EqualFold(m.StyleID, styleID) {
		return false
	}
	return m.StyleName.matches(styleName)
}

func (m Matcher) numberingMatches(numbering *document.NumberingLevel) bool {
	if m.Numbering == nil {
		return true
	}
	return numbering != nil &&
		numbering.Level == m.Numbering.Level &&
		numbering.IsOrdered == m.Numbering.IsOrdered
}

// Rule pairs a matcher with the path its matches are wrapped in. An empty
// path is a valid rule: it renders the match's content without a wrapper.
type Rule struct {
	Matcher Matcher
	Path    htmltree.Path
}

// Map is an ordered rule list.
type Map []Rule

// Find returns the first rule whose matcher accepts the element.
func (m Map) Find(el document.Element) (Rule, bool) {
	for _, rule := range m {
		if rule.Matcher.Matches(el) {
			return rule, true
		}
	}
	return Rule{}, false
}

// FindRunProperty returns the first rule for the given run formatting
// property. For KindHighlight, color narrows the search to rules matching
// that highlight color.
func (m Map) FindRunProperty(kind Kind, color string) (Rule, bool) {
	for _, rule := range m {
		if rule.Matcher.Kind != kind {
			continue
		}
		if kind == KindHighlight && rule.Matcher.Highlight != "" && !strings.EqualFold(rule.Matcher.Highlight, color) {
			continue
		}
		return rule, true
	}
	return Rule{}, false
}

// Validate checks the map for call-boundary misconfiguration.
func (m Map) Validate() error {
	for i, rule := range m {
		if !knownKinds[rule.Matcher.Kind] {
			return fmt.Errorf("rule %d: unknown matcher kind %q", i, rule.Matcher.Kind)
		}
		for j, el := range rule.Path.Elements {
			if len(el.Names) == 0 || el.Names[0] == "" {
				return fmt.Errorf("rule %d: path element %d has no tag name", i, j)
			}
		}
	}
	return nil
}

// Merge returns a map trying m's rules first, then next's.
func (m Map) Merge(next Map) Map {
	merged := make(Map, 0, len(m)+len(next))
	merged = append(merged, m...)
	merged = append(merged, next...)
	return merged
}
