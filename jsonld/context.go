package jsonld

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/mizunashi-mana/activitist/core"
)

// EncodeContext renders a @context value. Encoding only dispatches on the
// variant; nothing is normalized or merged.
func EncodeContext(c core.Context) (json.RawMessage, error) {
	switch v := c.(type) {
	case core.ContextSingle:
		return EncodeIri(v.Value)
	case core.ContextMix:
		elems := make([]json.RawMessage, 0, len(v))
		for _, item := range v {
			elem, err := EncodeContext(item)
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
		}
		return json.Marshal(elems)
	case core.ContextTermDefs:
		terms := make(map[string]json.RawMessage, len(v))
		for term, iri := range v {
			elem, err := EncodeIri(iri)
			if err != nil {
				return nil, errors.Wrap(err, term)
			}
			terms[term] = elem
		}
		return json.Marshal(terms)
	}
	return nil, core.NewShapeError("@context", "context")
}

// DecodeContext discriminates the @context variants structurally, in the
// contract order: direct IRI string, type-coercion object, context list,
// term-definition map. The order matters only for values that could satisfy
// more than one variant; an object carrying @id is always read as a
// coercion, even if a term map was meant.
func DecodeContext(raw json.RawMessage) (core.Context, error) {
	switch firstByte(raw) {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return core.ContextSingle{Value: core.IriDirect(s)}, nil
	case '{':
		var coercion TypeCoercion
		if err := json.Unmarshal(raw, &coercion); err == nil && coercion.ID != "" {
			return core.ContextSingle{Value: core.IriTypeCoercion{ID: coercion.ID, Type: coercion.Type}}, nil
		}
		var terms map[string]json.RawMessage
		if err := json.Unmarshal(raw, &terms); err != nil {
			return nil, wireShapeError(err)
		}
		defs := make(core.ContextTermDefs, len(terms))
		for term, elem := range terms {
			iri, err := DecodeIri(elem)
			if err != nil {
				return nil, errors.Wrap(err, term)
			}
			defs[term] = iri
		}
		return defs, nil
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, err
		}
		mix := make(core.ContextMix, 0, len(elems))
		for _, elem := range elems {
			item, err := DecodeContext(elem)
			if err != nil {
				return nil, err
			}
			mix = append(mix, item)
		}
		return mix, nil
	}
	return nil, core.NewShapeError("@context", "string, object or array")
}

// EncodeIri renders a direct IRI as a bare string and a type coercion as its
// {"@id", "@type"} record.
func EncodeIri(iri core.Iri) (json.RawMessage, error) {
	switch v := iri.(type) {
	case core.IriDirect:
		return json.Marshal(string(v))
	case core.IriTypeCoercion:
		return json.Marshal(TypeCoercion{ID: v.ID, Type: v.Type})
	}
	return nil, core.NewShapeError("iri", "direct or type coercion")
}

// DecodeIri reads a bare string as a direct IRI, an object as a type
// coercion. The coercion form requires @id.
func DecodeIri(raw json.RawMessage) (core.Iri, error) {
	switch firstByte(raw) {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
		return core.IriDirect(s), nil
	case '{':
		var coercion TypeCoercion
		if err := json.Unmarshal(raw, &coercion); err != nil {
			return nil, wireShapeError(err)
		}
		if coercion.ID == "" {
			return nil, core.NewShapeError("@id", "string")
		}
		return core.IriTypeCoercion{ID: coercion.ID, Type: coercion.Type}, nil
	}
	return nil, core.NewShapeError("iri", "string or object")
}
