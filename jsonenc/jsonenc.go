package jsonenc

import (
	"io"

	"github.com/Gobd/keycase"
	"github.com/segmentio/encoding/json"
)

// Marshal converts all map keys in v to camelCase, then encodes the result
// as JSON.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(keycase.CamelKeys(v))
}

// MarshalIndent is like [Marshal] with the prefix and indent forwarded
// verbatim to the serializer.
func MarshalIndent(v any, prefix, indent string) ([]byte, error) {
	return json.MarshalIndent(keycase.CamelKeys(v), prefix, indent)
}

// An Encoder writes camelCase-keyed JSON values to an output stream.
type Encoder struct {
	enc *json.Encoder
}

// NewEncoder returns a new Encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{enc: json.NewEncoder(w)}
}

// Encode converts all map keys in v to camelCase and writes the JSON
// encoding, followed by a newline, to the stream.
func (e *Encoder) Encode(v any) error {
	return e.enc.Encode(keycase.CamelKeys(v))
}

// SetIndent instructs the underlying serializer to indent each encoded
// value as json.MarshalIndent would.
func (e *Encoder) SetIndent(prefix, indent string) {
	e.enc.SetIndent(prefix, indent)
}

// SetEscapeHTML specifies whether problematic HTML characters should be
// escaped inside JSON quoted strings.
func (e *Encoder) SetEscapeHTML(on bool) {
	e.enc.SetEscapeHTML(on)
}
