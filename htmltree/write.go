package htmltree

import (
	"sort"
	"strings"

	"golang.org/x/net/html"
)

// Write serializes the forest. Nodes are rendered through golang.org/x/net/html
// so text and attribute values are escaped; attributes are written in sorted
// key order so identical trees always produce identical markup.
func Write(nodes []Node) string {
	var sb strings.Builder
	for _, n := range nodes {
		if rendered := toRenderNode(n); rendered != nil {
			// strings.Builder never fails and void elements are built
			// childless, so Render cannot error here.
			_ = html.Render(&sb, rendered)
		}
	}
	return sb.String()
}

func toRenderNode(n Node) *html.Node {
	switch t := n.(type) {
	case *TextNode:
		return &html.Node{Type: html.TextNode, Data: t.Value}
	case *Element:
		el := &html.Node{
			Type: html.ElementNode,
			Data: t.Tag.Name(),
			Attr: sortedAttrs(t.Tag.Attrs),
		}
		if t.IsVoid() {
			return el
		}
		for _, child := range t.Children {
			if rendered := toRenderNode(child); rendered != nil {
				el.AppendChild(rendered)
			}
		}
		return el
	default:
		// Force-write markers serialize to nothing; deferred nodes are
		// resolved before writing.
		return nil
	}
}

func sortedAttrs(attrs map[string]string) []html.Attribute {
	if len(attrs) == 0 {
		return nil
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]html.Attribute, 0, len(keys))
	for _, k := range keys {
		out = append(out, html.Attribute{Key: k, Val: attrs[k]})
	}
	return out
}
