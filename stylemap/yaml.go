package stylemap

import (
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/rgonek/docx-html-converter/document"
	"github.com/rgonek/docx-html-converter/htmltree"
)

// ParseYAML loads a style map from its structured YAML form:
//
//	rules:
//	  - match:
//	      kind: paragraph
//	      style-id: Heading1
//	    to:
//	      - tag: h1
//	        fresh: true
//	  - match:
//	      kind: run
//	      style-name: Code Char
//	    to:
//	      - tag: code
//
// This is a serialization of already-explicit rules, not the textual rule
// grammar. The returned map is validated.
func ParseYAML(data []byte) (Map, error) {
	var doc yamlStyleMap
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse style map YAML: %w", err)
	}

	m := make(Map, 0, len(doc.Rules))
	for i, raw := range doc.Rules {
		rule, err := raw.toRule()
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i, err)
		}
		m = append(m, rule)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

type yamlStyleMap struct {
	Rules []yamlRule `yaml:"rules"`
}

type yamlRule struct {
	Match yamlMatcher       `yaml:"match"`
	To    []yamlPathElement `yaml:"to"`
}

type yamlMatcher struct {
	Kind            string `yaml:"kind"`
	StyleID         string `yaml:"style-id"`
	StyleName       string `yaml:"style-name"`
	StyleNamePrefix bool   `yaml:"style-name-prefix"`
	BreakType       string `yaml:"break-type"`
	Highlight       string `yaml:"highlight"`
	List            *struct {
		Level   int  `yaml:"level"`
		Ordered bool `yaml:"ordered"`
	} `yaml:"list"`
}

type yamlPathElement struct {
	Tag       string            `yaml:"tag"`
	Attrs     map[string]string `yaml:"attrs"`
	Fresh     bool              `yaml:"fresh"`
	Separator string            `yaml:"separator"`
}

func (r yamlRule) toRule() (Rule, error) {
	if r.Match.Kind == "" {
		return Rule{}, fmt.Errorf("match.kind is required")
	}

	matcher := Matcher{
		Kind:      Kind(r.Match.Kind),
		StyleID:   r.Match.StyleID,
		BreakType: document.BreakType(r.Match.BreakType),
		Highlight: r.Match.Highlight,
	}
	if r.Match.StyleName != "" {
		matcher.StyleName = &StringMatch{Value: r.Match.StyleName, Prefix: r.Match.StyleNamePrefix}
	}
	if r.Match.List != nil {
		matcher.Numbering = &NumberingMatch{Level: r.Match.List.Level, IsOrdered: r.Match.List.Ordered}
	}

	elements := make([]htmltree.PathElement, 0, len(r.To))
	for _, el := range r.To {
		elements = append(elements, htmltree.PathElement{
			Names:     []string{el.Tag},
			Attrs:     el.Attrs,
			Fresh:     el.Fresh,
			Separator: el.Separator,
		})
	}

	return Rule{Matcher: matcher, Path: htmltree.PathOf(elements...)}, nil
}
