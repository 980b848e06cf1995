package converter

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/rgonek/docx-html-converter/document"
	"github.com/rgonek/docx-html-converter/htmltree"
)

// ImageInput describes an embedded image being resolved.
type ImageInput struct {
	ContentType string
	AltText     string

	// Open streams the image bytes. The caller owns closing the reader.
	Open func(ctx context.Context) (io.ReadCloser, error)
}

// ImageOutput is the attribute bag an image converter produces for the img
// element, typically {"src": ..., "alt": ...}.
type ImageOutput struct {
	Attributes map[string]string
}

// ImageConverter resolves one embedded image to img attributes. Conversion
// runs on the deferred-resolution path, so implementations may read slowly
// without affecting output order.
type ImageConverter interface {
	Convert(ctx context.Context, in ImageInput) (ImageOutput, error)
}

// ImageConverterFunc adapts a function to ImageConverter.
type ImageConverterFunc func(ctx context.Context, in ImageInput) (ImageOutput, error)

// Convert implements ImageConverter.
func (f ImageConverterFunc) Convert(ctx context.Context, in ImageInput) (ImageOutput, error) {
	return f(ctx, in)
}

// InlineImages returns the default image converter: it embeds the image
// bytes as a base64 data URI. TIFF and BMP frames, which browsers do not
// display, are re-encoded to PNG first.
func InlineImages() ImageConverter {
	return ImageConverterFunc(func(ctx context.Context, in ImageInput) (ImageOutput, error) {
		if in.Open == nil {
			return ImageOutput{}, fmt.Errorf("image has no content")
		}
		reader, err := in.Open(ctx)
		if err != nil {
			return ImageOutput{}, fmt.Errorf("failed to open image: %w", err)
		}
		defer reader.Close()

		data, err := io.ReadAll(reader)
		if err != nil {
			return ImageOutput{}, fmt.Errorf("failed to read image: %w", err)
		}

		contentType := in.ContentType
		switch contentType {
		case "image/tiff", "image/x-tiff":
			if data, err = reencodePNG(data, tiff.Decode); err != nil {
				return ImageOutput{}, err
			}
			contentType = "image/png"
		case "image/bmp", "image/x-ms-bmp":
			if data, err = reencodePNG(data, bmp.Decode); err != nil {
				return ImageOutput{}, err
			}
			contentType = "image/png"
		}

		attrs := map[string]string{
			"src": "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
		}
		if in.AltText != "" {
			attrs["alt"] = in.AltText
		}
		return ImageOutput{Attributes: attrs}, nil
	})
}

func reencodePNG(data []byte, decode func(io.Reader) (image.Image, error)) ([]byte, error) {
	frame, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, frame); err != nil {
		return nil, fmt.Errorf("failed to re-encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// convertImage emits a deferred placeholder whose task resolves the image
// through the configured converter and applies URL sanitization to the
// resulting src.
func (s *state) convertImage(img *document.Image) []htmltree.Node {
	conv := s.config.ImageConverter
	if conv == nil {
		conv = InlineImages()
	}

	id, sink := s.newDeferred()
	task := func(ctx context.Context) ([]htmltree.Node, error) {
		out, err := conv.Convert(ctx, ImageInput{
			ContentType: img.ContentType,
			AltText:     img.AltText,
			Open:        img.Open,
		})
		if err != nil {
			return nil, err
		}

		attrs := make(map[string]string, len(out.Attributes))
		for k, v := range out.Attributes {
			attrs[k] = v
		}
		if src, ok := attrs["src"]; ok && s.config.SanitizeURL != nil {
			if clean := s.config.SanitizeURL(src); clean != src {
				sink.addWarning(CodeRewrittenURL, "potentially unsafe image source was rewritten")
				attrs["src"] = clean
			}
		}

		return []htmltree.Node{htmltree.Elem("img", attrs)}, nil
	}

	return []htmltree.Node{&htmltree.Deferred{ID: id, Task: task}}
}
