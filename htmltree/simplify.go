package htmltree

import (
	"maps"
	"slices"
)

// Simplify merges adjacent collapsible siblings with matching tags and
// attributes and prunes elements that would serialize to nothing, unless a
// force-write marker keeps them alive. The pass is a pure rebuild over an
// owned tree, preserves order, and is idempotent.
func Simplify(nodes []Node) []Node {
	return removeEmpty(collapse(nodes))
}

func collapse(nodes []Node) []Node {
	collapsed := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if el, ok := n.(*Element); ok {
			n = &Element{Tag: el.Tag, Children: collapse(el.Children)}
		}
		collapsed = appendCollapsed(collapsed, n)
	}
	return collapsed
}

// appendCollapsed adds node to siblings, merging it into the previous sibling
// when both are collapsible and their tags and attributes agree. Merging
// recurses so that runs of nested collapsible wrappers join too.
func appendCollapsed(siblings []Node, node Node) []Node {
	el, ok := node.(*Element)
	if !ok || el.Tag.Fresh || len(siblings) == 0 {
		return append(siblings, node)
	}
	last, ok := siblings[len(siblings)-1].(*Element)
	if !ok || last.Tag.Fresh || !tagsMatch(last.Tag, el.Tag) {
		return append(siblings, node)
	}

	if el.Tag.Separator != "" {
		last.Children = appendCollapsed(last.Children, Text(el.Tag.Separator))
	}
	for _, child := range el.Children {
		last.Children = appendCollapsed(last.Children, child)
	}
	return siblings
}

func tagsMatch(last, next Tag) bool {
	return slices.Contains(last.Names, next.Name()) && maps.Equal(last.Attrs, next.Attrs)
}

func removeEmpty(nodes []Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		switch t := n.(type) {
		case *TextNode:
			if t.Value != "" {
				out = append(out, t)
			}
		case *Element:
			children := removeEmpty(t.Children)
			if t.IsVoid() || len(children) > 0 {
				out = append(out, &Element{Tag: t.Tag, Children: children})
			}
		default:
			// Force-write markers and unresolved deferred nodes always
			// survive; a deferred subtree's emptiness is unknown until it is
			// resolved.
			out = append(out, n)
		}
	}
	return out
}
