package converter

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgonek/docx-html-converter/document"
)

func imageOf(contentType, alt, data string) *document.Image {
	return &document.Image{
		ContentType: contentType,
		AltText:     alt,
		Open: func(ctx context.Context) (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(data)), nil
		},
	}
}

func TestInlineImages(t *testing.T) {
	t.Run("embeds bytes as a data URI", func(t *testing.T) {
		res := convertDoc(t, Config{}, docOf(para(imageOf("image/png", "logo", "fake"))))

		assert.Equal(t, `<p><img alt="logo" src="data:image/png;base64,ZmFrZQ=="/></p>`, res.HTML)
		assert.Empty(t, res.Messages)
	})

	t.Run("omits alt when the image carries none", func(t *testing.T) {
		res := convertDoc(t, Config{}, docOf(para(imageOf("image/gif", "", "fake"))))

		assert.Equal(t, `<p><img src="data:image/gif;base64,ZmFrZQ=="/></p>`, res.HTML)
	})

	t.Run("undecodable tiff fails the asset", func(t *testing.T) {
		res := convertDoc(t, Config{}, docOf(para(imageOf("image/tiff", "chart", "not a tiff"))))

		assert.Empty(t, res.HTML)
		require.Len(t, res.Messages, 1)
		assert.Equal(t, CodeAssetFailed, res.Messages[0].Code)
		assert.Equal(t, SeverityError, res.Messages[0].Severity)
	})

	t.Run("image without content fails the asset", func(t *testing.T) {
		res := convertDoc(t, Config{}, docOf(para(&document.Image{AltText: "ghost"})))

		assert.Empty(t, res.HTML)
		require.Len(t, res.Messages, 1)
		assert.Equal(t, CodeAssetFailed, res.Messages[0].Code)
	})
}

func TestCustomImageConverter(t *testing.T) {
	conv := ImageConverterFunc(func(ctx context.Context, in ImageInput) (ImageOutput, error) {
		return ImageOutput{Attributes: map[string]string{
			"src": "https://cdn.example.com/" + in.AltText,
			"alt": in.AltText,
		}}, nil
	})

	res := convertDoc(t, Config{ImageConverter: conv}, docOf(para(imageOf("image/png", "logo", "fake"))))

	assert.Equal(t, `<p><img alt="logo" src="https://cdn.example.com/logo"/></p>`, res.HTML)
}

func TestImageSourceSanitization(t *testing.T) {
	conv := ImageConverterFunc(func(ctx context.Context, in ImageInput) (ImageOutput, error) {
		return ImageOutput{Attributes: map[string]string{"src": "javascript:alert(1)"}}, nil
	})
	sanitize := func(raw string) string {
		if strings.HasPrefix(raw, "javascript:") {
			return "about:blank"
		}
		return raw
	}

	res := convertDoc(t, Config{ImageConverter: conv, SanitizeURL: sanitize}, docOf(para(imageOf("image/png", "", "fake"))))

	assert.Equal(t, `<p><img src="about:blank"/></p>`, res.HTML)
	require.Len(t, res.Messages, 1)
	assert.Equal(t, CodeRewrittenURL, res.Messages[0].Code)
	assert.Equal(t, SeverityWarning, res.Messages[0].Severity)
}
