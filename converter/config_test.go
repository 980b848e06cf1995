package converter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/docx-html-converter/document"
	"github.com/rgonek/docx-html-converter/htmltree"
	"github.com/rgonek/docx-html-converter/stylemap"
)

func TestNewValidation(t *testing.T) {
	t.Run("zero config is valid", func(t *testing.T) {
		conv, err := New(Config{})
		require.NoError(t, err)
		assert.NotNil(t, conv)
	})

	t.Run("unknown style map kind is fatal", func(t *testing.T) {
		cfg := Config{StyleMap: stylemap.Map{{
			Matcher: stylemap.Matcher{Kind: "shape"},
			Path:    htmltree.PathOf(htmltree.FreshPathElem("div")),
		}}}

		_, err := New(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid style map")
		assert.Contains(t, err.Error(), "shape")
	})

	t.Run("extension without a name is fatal", func(t *testing.T) {
		cfg := Config{Extensions: []Extension{{Handler: emit("div")}}}

		_, err := New(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no element name")
	})

	t.Run("extension without a handler is fatal", func(t *testing.T) {
		cfg := Config{Extensions: []Extension{{Name: "chart"}}}

		_, err := New(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no handler")
	})
}

func TestConfigIsolation(t *testing.T) {
	t.Run("later config edits do not reach the converter", func(t *testing.T) {
		cfg := Config{Extensions: []Extension{{Name: "chart", Handler: emit("figure")}}}
		conv, err := New(cfg)
		require.NoError(t, err)

		cfg.Extensions[0].Handler = emit("aside")

		res, err := conv.Convert(context.Background(), docOf(unknownEl("chart", "", para(runOf(text("x"))))))
		require.NoError(t, err)
		assert.Equal(t, "<figure><p>x</p></figure>", res.HTML)
	})

	t.Run("caller rules win over the default map", func(t *testing.T) {
		cfg := Config{StyleMap: stylemap.Map{{
			Matcher: stylemap.Matcher{Kind: stylemap.KindParagraph, StyleID: "Heading1"},
			Path:    htmltree.PathOf(htmltree.FreshPathElem("h2")),
		}}}

		res := convertDoc(t, cfg, docOf(&document.Paragraph{
			StyleID:  "Heading1",
			Children: []document.Element{runOf(text("title"))},
		}))

		assert.Equal(t, "<h2>title</h2>", res.HTML)
	})

	t.Run("disabling the default map drops built-in headings", func(t *testing.T) {
		cfg := Config{DisableDefaultStyleMap: true}

		res := convertDoc(t, cfg, docOf(&document.Paragraph{
			StyleID:   "Heading1",
			StyleName: "heading 1",
			Children:  []document.Element{runOf(text("title"))},
		}))

		assert.Equal(t, "<p>title</p>", res.HTML)
		messages := res.Warnings()
		if assert.Len(t, messages, 1) {
			assert.Equal(t, CodeUnrecognizedStyle, messages[0].Code)
		}
	})
}
