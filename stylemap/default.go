package stylemap

import (
	"fmt"

	"github.com/rgonek/docx-html-converter/document"
	"github.com/rgonek/docx-html-converter/htmltree"
)

// Default returns the built-in style map: heading styles to h1-h6, numbered
// paragraphs to nested lists, and the standard character styles that should
// render without a wrapper. Callers' own rules are tried before these.
func Default() Map {
	m := make(Map, 0, 32)

	for level := 1; level <= 6; level++ {
		tag := fmt.Sprintf("h%d", level)
		m = append(m,
			Rule{
				Matcher: Matcher{Kind: KindParagraph, StyleID: fmt.Sprintf("Heading%d", level)},
				Path:    htmltree.PathOf(htmltree.FreshPathElem(tag)),
			},
			Rule{
				Matcher: Matcher{Kind: KindParagraph, StyleName: Equal(fmt.Sprintf("heading %d", level))},
				Path:    htmltree.PathOf(htmltree.FreshPathElem(tag)),
			},
		)
	}

	for level := 0; level < 5; level++ {
		m = append(m,
			Rule{
				Matcher: Matcher{Kind: KindParagraph, Numbering: &NumberingMatch{Level: level}},
				Path:    listPath("ul", level),
			},
			Rule{
				Matcher: Matcher{Kind: KindParagraph, Numbering: &NumberingMatch{Level: level, IsOrdered: true}},
				Path:    listPath("ol", level),
			},
		)
	}

	m = append(m,
		// Note and comment body styles render as plain paragraphs; their
		// reference character styles add nothing the registries don't.
		Rule{
			Matcher: Matcher{Kind: KindParagraph, StyleName: Equal("footnote text")},
			Path:    htmltree.PathOf(htmltree.FreshPathElem("p")),
		},
		Rule{
			Matcher: Matcher{Kind: KindParagraph, StyleName: Equal("endnote text")},
			Path:    htmltree.PathOf(htmltree.FreshPathElem("p")),
		},
		Rule{
			Matcher: Matcher{Kind: KindParagraph, StyleName: Equal("annotation text")},
			Path:    htmltree.PathOf(htmltree.FreshPathElem("p")),
		},
		Rule{Matcher: Matcher{Kind: KindRun, StyleName: Equal("Hyperlink")}},
		Rule{Matcher: Matcher{Kind: KindRun, StyleName: Equal("footnote reference")}},
		Rule{Matcher: Matcher{Kind: KindRun, StyleName: Equal("endnote reference")}},
		Rule{Matcher: Matcher{Kind: KindRun, StyleName: Equal("annotation reference")}},
		Rule{
			Matcher: Matcher{Kind: KindBreak, BreakType: document.LineBreak},
			Path:    htmltree.PathOf(htmltree.FreshPathElem("br")),
		},
	)

	return m
}

// listPath nests one collapsible list wrapper per level so that consecutive
// items of the same level join a single list and deeper levels nest inside
// the enclosing item.
func listPath(listTag string, level int) htmltree.Path {
	elements := make([]htmltree.PathElement, 0, 2*(level+1))
	for i := 0; i <= level; i++ {
		if i > 0 {
			elements = append(elements, htmltree.PathElem("li"))
		}
		elements = append(elements, htmltree.PathElem(listTag))
	}
	elements = append(elements, htmltree.FreshPathElem("li"))
	return htmltree.PathOf(elements...)
}
