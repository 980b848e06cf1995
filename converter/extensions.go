package converter

import (
	"context"
	"fmt"
	"sort"

	"github.com/rgonek/docx-html-converter/document"
	"github.com/rgonek/docx-html-converter/htmltree"
)

// HandlerInput describes an element offered to an extension or fallback
// handler.
type HandlerInput struct {
	Element   document.Element
	Name      string
	Namespace string

	// ConvertChildren runs the element's children through the engine,
	// accumulating their messages on the shared conversion state.
	ConvertChildren func() []htmltree.Node
}

// HandlerOutput carries a handler's produced nodes. Handled false passes the
// element on to the next handler in the chain.
type HandlerOutput struct {
	Nodes   []htmltree.Node
	Handled bool
}

// ElementHandler converts one document element to HTML nodes.
type ElementHandler interface {
	Convert(ctx context.Context, in HandlerInput) (HandlerOutput, error)
}

// ElementHandlerFunc adapts a function to ElementHandler.
type ElementHandlerFunc func(ctx context.Context, in HandlerInput) (HandlerOutput, error)

// Convert implements ElementHandler.
func (f ElementHandlerFunc) Convert(ctx context.Context, in HandlerInput) (HandlerOutput, error) {
	return f(ctx, in)
}

// Extension registers a handler for elements named (Name, Namespace). An
// empty Namespace matches any namespace. Higher priority wins; ties keep
// registration order.
type Extension struct {
	Name      string
	Namespace string
	Priority  int
	Handler   ElementHandler
}

func sortExtensions(extensions []Extension) []Extension {
	sorted := append([]Extension(nil), extensions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}

func (e Extension) matches(name, namespace string) bool {
	if e.Name != name {
		return false
	}
	return e.Namespace == "" || e.Namespace == namespace
}

// convertUnknown walks the handler chain for an element with no built-in
// converter: extensions by priority, then the fallback handler, then a
// warning and zero nodes.
func (s *state) convertUnknown(el *document.Unknown) []htmltree.Node {
	in := HandlerInput{
		Element:   el,
		Name:      el.Name,
		Namespace: el.Namespace,
		ConvertChildren: func() []htmltree.Node {
			return s.convertChildren(el.Children)
		},
	}

	for _, ext := range s.extensions {
		if !ext.matches(el.Name, el.Namespace) {
			continue
		}
		out, err := s.callHandler(ext.Handler, in)
		if err != nil {
			s.addError(CodeHandlerFailed, fmt.Sprintf("handler for element %q failed: %v", elementName(el), err))
			return nil
		}
		if out.Handled {
			return out.Nodes
		}
	}

	if s.config.FallbackHandler != nil {
		out, err := s.callHandler(s.config.FallbackHandler, in)
		if err != nil {
			s.addError(CodeHandlerFailed, fmt.Sprintf("fallback handler for element %q failed: %v", elementName(el), err))
			return nil
		}
		if out.Handled {
			return out.Nodes
		}
	}

	s.addWarning(CodeUnrecognizedElement, fmt.Sprintf("unrecognized element was ignored: %s", elementName(el)))
	return nil
}

// callHandler invokes a registered handler, containing panics so that no
// single element can abort the document.
func (s *state) callHandler(handler ElementHandler, in HandlerInput) (out HandlerOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = HandlerOutput{}
			err = fmt.Errorf("handler panicked: %v", r)
		}
	}()
	return handler.Convert(s.ctx, in)
}

func elementName(el *document.Unknown) string {
	if el.Namespace == "" {
		return el.Name
	}
	return el.Namespace + ":" + el.Name
}
