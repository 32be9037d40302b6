package protocol

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"satorigw/internal/protocol/element"
)

// Decoder resolves raw gateway payloads into typed values. It holds only its
// collaborators (markup parser, diagnostic sink), no per-call state: one
// Decoder is safe to share across goroutines and decoding the same input
// twice yields equal values.
type Decoder struct {
	parse element.ParseFunc
	log   zerolog.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithParser sets the markup parser message content is delegated to.
func WithParser(fn element.ParseFunc) Option {
	return func(d *Decoder) { d.parse = fn }
}

// WithLogger sets the diagnostic sink. Diagnostics are fire-and-forget; the
// default sink discards them.
func WithLogger(log zerolog.Logger) Option {
	return func(d *Decoder) { d.log = log }
}

// NewDecoder builds a Decoder. Without options it uses the plain-text
// fallback parser and a no-op diagnostic sink.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		parse: element.PlainText,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DecodeBytes unmarshals one JSON payload object and resolves it. Numbers are
// kept as json.Number so 64-bit ids survive intact.
func (d *Decoder) DecodeBytes(data []byte) (Payload, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw map[string]any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("protocol: unmarshal payload: %w", err)
	}
	return d.DecodePayload(raw)
}

// normalizeContent converts a raw content value into a structured element
// sequence. Pre-structured sequences pass through, strings go to the markup
// parser, null stays null. Parser failures surface to the caller unchanged.
func (d *Decoder) normalizeContent(v any) ([]element.Element, error) {
	switch content := v.(type) {
	case nil:
		return nil, nil
	case []element.Element:
		return content, nil
	case []any:
		els, err := element.FromValues(content)
		if err != nil {
			return nil, wrapField("content", err)
		}
		return els, nil
	case string:
		els, err := d.parse(content)
		if err != nil {
			return nil, fmt.Errorf("content: parse markup: %w", err)
		}
		return els, nil
	default:
		return nil, &InvalidContentError{Raw: v}
	}
}
