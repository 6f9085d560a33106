package jsonld

import (
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"

	"github.com/mizunashi-mana/activitist/core"
)

// The wire format treats "one value" and "an array of one value" as the same
// thing. encodeMany and decodeMany implement that class of representations:
// zero items omit the field, one item encodes bare, two or more encode as an
// array. A singleton array therefore does not round-trip back to an array;
// the result is stable from the first pass on, which is the intended
// behavior, not a defect.

func encodeMany[T any](items []T, encode func(T) (json.RawMessage, error)) (json.RawMessage, error) {
	switch len(items) {
	case 0:
		return nil, nil
	case 1:
		return encode(items[0])
	default:
		elems := make([]json.RawMessage, 0, len(items))
		for _, item := range items {
			elem, err := encode(item)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return json.Marshal(elems)
	}
}

func decodeMany[T any](raw json.RawMessage, decode func(json.RawMessage) (T, error)) ([]T, error) {
	if isAbsent(raw) {
		return nil, nil
	}
	if firstByte(raw) != '[' {
		item, err := decode(raw)
		if err != nil {
			return nil, err
		}
		return []T{item}, nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, err
	}
	items := make([]T, 0, len(elems))
	for _, elem := range elems {
		item, err := decode(elem)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// isAbsent reports whether a raw field is missing or an explicit null.
// The two are interchangeable on read; writes always omit.
func isAbsent(raw json.RawMessage) bool {
	return raw == nil || firstByte(raw) == 'n'
}

// firstByte returns the first non-whitespace byte of a JSON value, which
// determines its syntactic kind.
func firstByte(raw json.RawMessage) byte {
	for _, c := range raw {
		switch c {
		case ' ', '\t', '\r', '\n':
			continue
		}
		return c
	}
	return 0
}

func encodeString(s string) (json.RawMessage, error) {
	return json.Marshal(s)
}

func decodeStringFor(property string) func(json.RawMessage) (string, error) {
	return func(raw json.RawMessage) (string, error) {
		if firstByte(raw) != '"' {
			return "", core.NewShapeError(property, "string")
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
}

func encodeStrings(items []string) (json.RawMessage, error) {
	return encodeMany(items, encodeString)
}

func decodeStrings(property string, raw json.RawMessage) ([]string, error) {
	return decodeMany(raw, decodeStringFor(property))
}

func encodeRefs(items []core.ObjectOrLink) (json.RawMessage, error) {
	return encodeMany(items, EncodeObjectOrLink)
}

func decodeRefs(property string, raw json.RawMessage) ([]core.ObjectOrLink, error) {
	items, err := decodeMany(raw, DecodeObjectOrLink)
	if err != nil {
		return nil, errors.Wrap(err, property)
	}
	return items, nil
}

// Dates travel as RFC3339 at second precision, rendered in UTC with the
// trailing Z designator.
func encodeTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func decodeTime(property string, s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, core.NewValueError(property, err.Error())
	}
	return t.UTC(), nil
}

// wireShapeError turns the JSON library's type mismatch into the conversion
// layer's shape error. Anything else (notably syntax errors) passes through
// unchanged.
func wireShapeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		return core.NewShapeError(typeErr.Field, typeErr.Type.String())
	}
	return err
}
