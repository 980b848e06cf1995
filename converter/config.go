package converter

import (
	"fmt"
	"strings"

	"github.com/rgonek/docx-html-converter/stylemap"
)

// Config holds all converter configuration options. The zero value is valid:
// built-in style mappings, inline data-URI images, no URL sanitization, no
// extension handlers.
type Config struct {
	// StyleMap is tried before the built-in default map, so caller rules win
	// under first-match precedence.
	StyleMap stylemap.Map `json:"-"`

	// DisableDefaultStyleMap stops the built-in map from being appended.
	DisableDefaultStyleMap bool `json:"disableDefaultStyleMap,omitempty"`

	// IDPrefix namespaces every generated fragment id (notes, backlinks,
	// bookmarks) so several converted documents can share an HTML page.
	IDPrefix string `json:"idPrefix,omitempty"`

	// ImageConverter resolves embedded images to img attributes. Nil selects
	// InlineImages.
	ImageConverter ImageConverter `json:"-"`

	// SanitizeURL, when set, is applied to every hyperlink href and every
	// resolved image src. When nil no sanitization is performed.
	SanitizeURL func(url string) string `json:"-"`

	// Extensions are custom element handlers consulted for elements the
	// built-ins don't cover, in descending priority order.
	Extensions []Extension `json:"-"`

	// FallbackHandler is consulted after built-ins and extensions.
	FallbackHandler ElementHandler `json:"-"`

	// Pretty inserts a newline between top-level siblings in the output.
	Pretty bool `json:"pretty,omitempty"`
}

func (c Config) clone() Config {
	cloned := c
	cloned.StyleMap = append(stylemap.Map(nil), c.StyleMap...)
	cloned.Extensions = append([]Extension(nil), c.Extensions...)
	return cloned
}

// Validate checks that config values are usable. Validation failures are
// fatal: they indicate call-boundary misconfiguration, not document content.
func (c Config) Validate() error {
	if err := c.StyleMap.Validate(); err != nil {
		return fmt.Errorf("invalid style map: %w", err)
	}
	for i, ext := range c.Extensions {
		if strings.TrimSpace(ext.Name) == "" {
			return fmt.Errorf("extension %d has no element name", i)
		}
		if ext.Handler == nil {
			return fmt.Errorf("extension %d (%s) has no handler", i, ext.Name)
		}
	}
	return nil
}
