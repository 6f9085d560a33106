package jsonld

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/mizunashi-mana/activitist/core"
)

// Stream and buffer entry points over the converters. The Decode functions
// double as the byte-slice and value-tree readers, since a json.RawMessage
// is both. Output is plain encoding/json output and therefore always valid
// UTF-8. Syntax errors from the JSON layer pass through unchanged.

func readEntity[T any](r io.Reader, decode func(json.RawMessage) (T, error)) (T, error) {
	var zero T
	var raw json.RawMessage
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return zero, err
	}
	// a document is exactly one value
	if _, err := dec.Token(); err != io.EOF {
		if err == nil {
			err = errors.New("trailing data after document")
		}
		return zero, err
	}
	return decode(raw)
}

func writeEntity[T any](w io.Writer, entity T, encode func(T) (json.RawMessage, error), pretty bool) error {
	raw, err := encode(entity)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(raw)
}

func marshalEntityIndent[T any](entity T, encode func(T) (json.RawMessage, error)) ([]byte, error) {
	raw, err := encode(entity)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadObject decodes a single object document from a stream.
func ReadObject(r io.Reader) (*core.Object, error) {
	return readEntity(r, DecodeObject)
}

// WriteObject encodes an object document to a stream, compact or indented.
func WriteObject(w io.Writer, obj *core.Object, pretty bool) error {
	return writeEntity(w, obj, EncodeObject, pretty)
}

// MarshalObject returns the compact document bytes.
func MarshalObject(obj *core.Object) ([]byte, error) {
	return EncodeObject(obj)
}

// MarshalObjectIndent returns the indented document bytes.
func MarshalObjectIndent(obj *core.Object) ([]byte, error) {
	return marshalEntityIndent(obj, EncodeObject)
}

// ReadLink decodes a single link document from a stream.
func ReadLink(r io.Reader) (*core.Link, error) {
	return readEntity(r, DecodeLink)
}

// WriteLink encodes a link document to a stream, compact or indented.
func WriteLink(w io.Writer, l *core.Link, pretty bool) error {
	return writeEntity(w, l, EncodeLink, pretty)
}

// MarshalLink returns the compact document bytes.
func MarshalLink(l *core.Link) ([]byte, error) {
	return EncodeLink(l)
}

// MarshalLinkIndent returns the indented document bytes.
func MarshalLinkIndent(l *core.Link) ([]byte, error) {
	return marshalEntityIndent(l, EncodeLink)
}

// ReadObjectOrLink decodes an object-or-link value from a stream.
func ReadObjectOrLink(r io.Reader) (core.ObjectOrLink, error) {
	return readEntity(r, DecodeObjectOrLink)
}

// WriteObjectOrLink encodes an object-or-link value to a stream, applying
// link compaction.
func WriteObjectOrLink(w io.Writer, ref core.ObjectOrLink, pretty bool) error {
	return writeEntity(w, ref, EncodeObjectOrLink, pretty)
}

// MarshalObjectOrLink returns the compact value bytes.
func MarshalObjectOrLink(ref core.ObjectOrLink) ([]byte, error) {
	return EncodeObjectOrLink(ref)
}

// MarshalObjectOrLinkIndent returns the indented value bytes.
func MarshalObjectOrLinkIndent(ref core.ObjectOrLink) ([]byte, error) {
	return marshalEntityIndent(ref, EncodeObjectOrLink)
}

// ReadContext decodes a bare @context value from a stream.
func ReadContext(r io.Reader) (core.Context, error) {
	return readEntity(r, DecodeContext)
}

// WriteContext encodes a bare @context value to a stream.
func WriteContext(w io.Writer, c core.Context, pretty bool) error {
	return writeEntity(w, c, EncodeContext, pretty)
}

// MarshalContext returns the compact value bytes.
func MarshalContext(c core.Context) ([]byte, error) {
	return EncodeContext(c)
}
