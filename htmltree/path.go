package htmltree

// PathElement is one wrapper in a style path.
type PathElement struct {
	Names     []string
	Attrs     map[string]string
	Fresh     bool
	Separator string
}

// Path is an ordered wrapper description, outermost first. The zero Path is
// the pass-through path: it wraps nothing.
type Path struct {
	Elements []PathElement
}

// PathOf builds a path from outermost to innermost wrapper.
func PathOf(elements ...PathElement) Path {
	return Path{Elements: elements}
}

// PathElem returns a collapsible path element.
func PathElem(name string) PathElement {
	return PathElement{Names: []string{name}}
}

// FreshPathElem returns a fresh path element.
func FreshPathElem(name string) PathElement {
	return PathElement{Names: []string{name}, Fresh: true}
}

// WithAttrs returns a copy of the element carrying the given attributes.
func (p PathElement) WithAttrs(attrs map[string]string) PathElement {
	p.Attrs = attrs
	return p
}

// WithSeparator returns a copy of the element carrying a merge separator.
func (p PathElement) WithSeparator(separator string) PathElement {
	p.Separator = separator
	return p
}

// IsPassThrough reports whether the path wraps nothing.
func (p Path) IsPassThrough() bool {
	return len(p.Elements) == 0
}

// Wrap nests children inside the path's wrappers, outermost descriptor
// outermost in the result. A pass-through path returns children unchanged.
func (p Path) Wrap(children []Node) []Node {
	nodes := children
	for i := len(p.Elements) - 1; i >= 0; i-- {
		el := p.Elements[i]
		nodes = []Node{&Element{
			Tag: Tag{
				Names:     el.Names,
				Attrs:     el.Attrs,
				Fresh:     el.Fresh,
				Separator: el.Separator,
			},
			Children: nodes,
		}}
	}
	return nodes
}
