package htmltree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathWrap(t *testing.T) {
	t.Run("nests outermost first", func(t *testing.T) {
		path := PathOf(FreshPathElem("blockquote"), FreshPathElem("p"))

		nodes := path.Wrap([]Node{Text("hello")})

		require.Len(t, nodes, 1)
		outer, ok := nodes[0].(*Element)
		require.True(t, ok)
		assert.Equal(t, "blockquote", outer.Tag.Name())

		require.Len(t, outer.Children, 1)
		inner, ok := outer.Children[0].(*Element)
		require.True(t, ok)
		assert.Equal(t, "p", inner.Tag.Name())
		assert.Equal(t, []Node{Text("hello")}, inner.Children)
	})

	t.Run("pass-through path wraps nothing", func(t *testing.T) {
		children := []Node{Text("hello")}

		assert.True(t, Path{}.IsPassThrough())
		assert.Equal(t, children, Path{}.Wrap(children))
	})

	t.Run("carries attributes and flags onto elements", func(t *testing.T) {
		path := PathOf(PathElem("pre").WithAttrs(map[string]string{"class": "code"}).WithSeparator("\n"))

		nodes := path.Wrap(nil)

		require.Len(t, nodes, 1)
		el := nodes[0].(*Element)
		assert.False(t, el.Tag.Fresh)
		assert.Equal(t, "\n", el.Tag.Separator)
		assert.Equal(t, map[string]string{"class": "code"}, el.Tag.Attrs)
	})
}
