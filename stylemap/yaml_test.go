package stylemap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/docx-html-converter/document"
)

func TestParseYAML(t *testing.T) {
	t.Run("loads rules in order", func(t *testing.T) {
		src := []byte(`
rules:
  - match:
      kind: paragraph
      style-id: Heading1
    to:
      - tag: h1
        fresh: true
  - match:
      kind: run
      style-name: Code
      style-name-prefix: true
    to:
      - tag: code
        attrs:
          class: source
  - match:
      kind: bold
    to:
      - tag: b
  - match:
      kind: paragraph
      list:
        level: 0
        ordered: true
    to:
      - tag: ol
      - tag: li
        fresh: true
  - match:
      kind: run
      style-name: Hyperlink
`)

		m, err := ParseYAML(src)
		require.NoError(t, err)
		require.Len(t, m, 5)

		rule, ok := m.Find(&document.Paragraph{StyleID: "Heading1"})
		require.True(t, ok)
		require.Len(t, rule.Path.Elements, 1)
		assert.Equal(t, "h1", rule.Path.Elements[0].Names[0])
		assert.True(t, rule.Path.Elements[0].Fresh)

		rule, ok = m.Find(&document.Run{StyleName: "Code Char"})
		require.True(t, ok)
		assert.Equal(t, map[string]string{"class": "source"}, rule.Path.Elements[0].Attrs)
		assert.False(t, rule.Path.Elements[0].Fresh)

		_, ok = m.FindRunProperty(KindBold, "")
		assert.True(t, ok)

		rule, ok = m.Find(&document.Paragraph{Numbering: &document.NumberingLevel{IsOrdered: true}})
		require.True(t, ok)
		require.Len(t, rule.Path.Elements, 2)

		rule, ok = m.Find(&document.Run{StyleName: "Hyperlink"})
		require.True(t, ok)
		assert.True(t, rule.Path.IsPassThrough())
	})

	t.Run("missing kind is rejected", func(t *testing.T) {
		_, err := ParseYAML([]byte("rules:\n  - to:\n      - tag: p\n"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "match.kind is required")
	})

	t.Run("unknown kind fails validation", func(t *testing.T) {
		_, err := ParseYAML([]byte("rules:\n  - match:\n      kind: pargraph\n"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown matcher kind")
	})

	t.Run("malformed YAML", func(t *testing.T) {
		_, err := ParseYAML([]byte("rules: ["))

		assert.Error(t, err)
	})
}
