// Package element defines the structured content nodes produced from inline
// markup text, and the parser seam the protocol layer delegates to. The real
// markup parser lives outside this module; PlainText is the standalone
// fallback.
package element

import (
	"errors"
	"fmt"
)

// Element is one structured content node: a tag, its attributes, and nested
// children. Plain text is represented as a "text" element with a "text"
// attribute.
type Element struct {
	Type     string
	Attrs    map[string]any
	Children []Element
}

// Text builds a plain text node.
func Text(s string) Element {
	return Element{Type: "text", Attrs: map[string]any{"text": s}}
}

// ParseFunc turns a raw markup string into a content sequence. Implementations
// must be pure; a parse failure is surfaced to the decode caller unchanged.
type ParseFunc func(text string) ([]Element, error)

// PlainText is the fallback parser: the whole string becomes a single text
// node. It never fails.
func PlainText(text string) ([]Element, error) {
	return []Element{Text(text)}, nil
}

var errNotObject = errors.New("element: not an object")

// FromValue decodes one pre-structured content node from a loose JSON value.
func FromValue(v any) (Element, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return Element{}, errNotObject
	}
	var el Element
	for key, value := range m {
		switch key {
		case "type":
			s, ok := value.(string)
			if !ok {
				return Element{}, fmt.Errorf("element: type must be a string, got %T", value)
			}
			el.Type = s
		case "attrs":
			attrs, ok := value.(map[string]any)
			if !ok && value != nil {
				return Element{}, fmt.Errorf("element: attrs must be an object, got %T", value)
			}
			el.Attrs = attrs
		case "children":
			if value == nil {
				continue
			}
			list, ok := value.([]any)
			if !ok {
				return Element{}, fmt.Errorf("element: children must be a list, got %T", value)
			}
			children, err := FromValues(list)
			if err != nil {
				return Element{}, err
			}
			el.Children = children
		}
	}
	if el.Type == "" {
		return Element{}, errors.New("element: missing type")
	}
	return el, nil
}

// FromValues decodes a pre-structured content sequence.
func FromValues(list []any) ([]Element, error) {
	out := make([]Element, 0, len(list))
	for i, v := range list {
		el, err := FromValue(v)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, el)
	}
	return out, nil
}
