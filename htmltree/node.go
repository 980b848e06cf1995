// Package htmltree holds the intermediate HTML representation produced by the
// converter: a small tagged-union node tree, the style-path wrapping algebra,
// a simplifier that merges mergeable siblings and prunes empty content, and a
// writer that serializes the tree.
package htmltree

import "context"

// Node is any node of the intermediate HTML tree.
type Node interface {
	node()
}

// TextNode is literal text, escaped at write time.
type TextNode struct {
	Value string
}

// Tag describes an element. Names holds the written tag name first, followed
// by any alternative names the element will merge with during simplification.
// Fresh elements never merge with an adjacent sibling; non-fresh (collapsible)
// elements merge when tags and attributes agree, inserting Separator between
// the merged groups when set.
type Tag struct {
	Names     []string
	Attrs     map[string]string
	Fresh     bool
	Separator string
}

// Element is an HTML element node.
type Element struct {
	Tag      Tag
	Children []Node
}

// ForceWriteNode keeps an otherwise-empty ancestor from being pruned. It
// serializes to nothing.
type ForceWriteNode struct{}

// ForceWrite is the shared force-write marker.
var ForceWrite = &ForceWriteNode{}

// Task produces the replacement nodes for a deferred placeholder.
type Task func(ctx context.Context) ([]Node, error)

// Deferred is a placeholder for an asynchronously produced subtree. Each ID
// is unique within a conversion and is resolved exactly once.
type Deferred struct {
	ID   int64
	Task Task
}

func (*TextNode) node()       {}
func (*Element) node()        {}
func (*ForceWriteNode) node() {}
func (*Deferred) node()       {}

// Text returns a text node.
func Text(value string) *TextNode {
	return &TextNode{Value: value}
}

// Elem returns a fresh element.
func Elem(name string, attrs map[string]string, children ...Node) *Element {
	return &Element{
		Tag:      Tag{Names: []string{name}, Attrs: attrs, Fresh: true},
		Children: children,
	}
}

// Collapsible returns a collapsible element.
func Collapsible(name string, attrs map[string]string, children ...Node) *Element {
	return &Element{
		Tag:      Tag{Names: []string{name}, Attrs: attrs},
		Children: children,
	}
}

// Name returns the tag name the element is written with.
func (t Tag) Name() string {
	if len(t.Names) == 0 {
		return ""
	}
	return t.Names[0]
}

var voidTags = map[string]bool{
	"br":    true,
	"hr":    true,
	"img":   true,
	"input": true,
}

// IsVoid reports whether the element has no closing tag and may not carry
// children.
func (e *Element) IsVoid() bool {
	return voidTags[e.Tag.Name()]
}

// CollectDeferred returns every deferred node in the forest in document
// order.
func CollectDeferred(nodes []Node) []*Deferred {
	var out []*Deferred
	for _, n := range nodes {
		switch t := n.(type) {
		case *Deferred:
			out = append(out, t)
		case *Element:
			out = append(out, CollectDeferred(t.Children)...)
		}
	}
	return out
}

// SubstituteDeferred rebuilds the forest replacing each deferred placeholder
// with its resolved nodes, preserving sibling order. Placeholders whose ID is
// absent from results produce nothing.
func SubstituteDeferred(nodes []Node, results map[int64][]Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		switch t := n.(type) {
		case *Deferred:
			out = append(out, results[t.ID]...)
		case *Element:
			out = append(out, &Element{Tag: t.Tag, Children: SubstituteDeferred(t.Children, results)})
		default:
			out = append(out, n)
		}
	}
	return out
}
