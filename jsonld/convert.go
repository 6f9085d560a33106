package jsonld

import (
	"encoding/json"
	"time"

	"github.com/pkg/errors"

	"github.com/mizunashi-mana/activitist/core"
)

// EncodeObject flattens an object into its wire shape and renders it.
// Construction never fails for a well-formed model value; errors can only
// come from the JSON layer.
func EncodeObject(obj *core.Object) (json.RawMessage, error) {
	wire, err := objectFromModel(obj)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// DecodeObject materializes the wire shape and expands it into the model.
// Decoding is all or nothing: the first failing property aborts the whole
// conversion and no partial object is returned.
func DecodeObject(raw json.RawMessage) (*core.Object, error) {
	var wire Object
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, wireShapeError(err)
	}
	return objectToModel(&wire)
}

// EncodeLink renders a link as its full wire shape. Compaction to a bare URI
// happens only where the vocabulary allows an object-or-link value; see
// EncodeObjectOrLink.
func EncodeLink(l *core.Link) (json.RawMessage, error) {
	wire, err := linkFromModel(l)
	if err != nil {
		return nil, err
	}
	return json.Marshal(wire)
}

// DecodeLink reads a full link wire shape. href is the one required property.
func DecodeLink(raw json.RawMessage) (*core.Link, error) {
	var wire Link
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, wireShapeError(err)
	}
	return linkToModel(&wire)
}

// EncodeKey renders a public key record.
func EncodeKey(k *core.Key) (json.RawMessage, error) {
	return json.Marshal(keyFromModel(k))
}

// DecodeKey reads a public key record. id and owner are required.
func DecodeKey(raw json.RawMessage) (*core.Key, error) {
	var wire Key
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, wireShapeError(err)
	}
	return keyToModel(&wire)
}

// isBareLink is the compaction predicate: a link whose only information is
// href is wire-equivalent to the bare URI string, and the compact form is
// always preferred on write.
func isBareLink(l *core.Link) bool {
	return l.Height == nil &&
		l.Hreflang == nil &&
		l.ID == nil &&
		len(l.MediaType) == 0 &&
		len(l.Rel) == 0 &&
		len(l.Type) == 0 &&
		l.Width == nil
}

// EncodeObjectOrLink renders an object as its object shape and a link as
// either the bare href string or the full link shape, depending on the
// compaction predicate.
func EncodeObjectOrLink(ref core.ObjectOrLink) (json.RawMessage, error) {
	switch v := ref.(type) {
	case *core.Object:
		return EncodeObject(v)
	case *core.Link:
		if isBareLink(v) {
			return json.Marshal(v.Href)
		}
		return EncodeLink(v)
	}
	return nil, core.NewShapeError("objectOrLink", "Object or Link")
}

// DecodeObjectOrLink discriminates in the contract order: bare URI string,
// then link shape, then object shape. An object that lacks href falls
// through to the object decode; an object with no distinguishing properties
// at all would be read as a link, an ambiguity inherent to the wire format.
func DecodeObjectOrLink(raw json.RawMessage) (core.ObjectOrLink, error) {
	switch firstByte(raw) {
	case '"':
		var href string
		if err := json.Unmarshal(raw, &href); err != nil {
			return nil, err
		}
		return core.NewLink(href), nil
	case '{':
		var wire Link
		if err := json.Unmarshal(raw, &wire); err == nil && wire.Href != "" {
			return linkToModel(&wire)
		}
		return DecodeObject(raw)
	}
	return nil, core.NewShapeError("objectOrLink", "string, object or array")
}

// objectEncoder short-circuits on the first failing property so the field
// mapping in objectFromModel can stay one expression per property.
type objectEncoder struct {
	err error
}

func (e *objectEncoder) fail(property string, err error) {
	if e.err == nil {
		e.err = errors.Wrap(err, property)
	}
}

func (e *objectEncoder) contextOpt(c core.Context) json.RawMessage {
	if e.err != nil || c == nil {
		return nil
	}
	raw, err := EncodeContext(c)
	if err != nil {
		e.fail("@context", err)
		return nil
	}
	return raw
}

func (e *objectEncoder) strings(property string, items []string) json.RawMessage {
	if e.err != nil {
		return nil
	}
	raw, err := encodeStrings(items)
	if err != nil {
		e.fail(property, err)
		return nil
	}
	return raw
}

func (e *objectEncoder) refs(property string, items []core.ObjectOrLink) json.RawMessage {
	if e.err != nil {
		return nil
	}
	raw, err := encodeRefs(items)
	if err != nil {
		e.fail(property, err)
		return nil
	}
	return raw
}

func (e *objectEncoder) refOpt(property string, ref core.ObjectOrLink) json.RawMessage {
	if e.err != nil || ref == nil {
		return nil
	}
	raw, err := EncodeObjectOrLink(ref)
	if err != nil {
		e.fail(property, err)
		return nil
	}
	return raw
}

func (e *objectEncoder) objectOpt(property string, obj *core.Object) *Object {
	if e.err != nil || obj == nil {
		return nil
	}
	wire, err := objectFromModel(obj)
	if err != nil {
		e.fail(property, err)
		return nil
	}
	return wire
}

func (e *objectEncoder) timeOpt(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := encodeTime(*t)
	return &s
}

// urlOpt applies the same compaction as the general object-or-link union,
// but locally: url is declared as a link on the model side, so the object
// branch never applies.
func (e *objectEncoder) urlOpt(l *core.Link) json.RawMessage {
	if e.err != nil || l == nil {
		return nil
	}
	if isBareLink(l) {
		raw, err := json.Marshal(l.Href)
		if err != nil {
			e.fail("url", err)
			return nil
		}
		return raw
	}
	wire, err := linkFromModel(l)
	if err != nil {
		e.fail("url", err)
		return nil
	}
	raw, err := json.Marshal(wire)
	if err != nil {
		e.fail("url", err)
		return nil
	}
	return raw
}

func objectFromModel(obj *core.Object) (*Object, error) {
	e := &objectEncoder{}

	var inbox, outbox, following, followers, preferredUsername *string
	var endpoints map[string]string
	if actor := obj.ActorItems; actor != nil {
		inbox = &actor.Inbox
		outbox = &actor.Outbox
		following = &actor.Following
		followers = &actor.Followers
		preferredUsername = actor.PreferredUsername
		endpoints = actor.Endpoints
	}

	var publicKey *Key
	if obj.SecurityItems.PublicKey != nil {
		publicKey = keyFromModel(obj.SecurityItems.PublicKey)
	}

	wire := &Object{
		SchemaContext: e.contextOpt(obj.SchemaContext),
		ID:            obj.ID,
		Type:          e.strings("type", obj.Type),

		Attachment:   e.refs("attachment", obj.ObjectItems.Attachment),
		AttributedTo: e.refs("attributeTo", obj.ObjectItems.AttributedTo),
		Audience:     e.refs("audience", obj.ObjectItems.Audience),
		Bcc:          e.refs("bcc", obj.ObjectItems.Bcc),
		Bto:          e.refs("bto", obj.ObjectItems.Bto),
		Cc:           e.refs("cc", obj.ObjectItems.Cc),
		Context:      e.refs("context", obj.ObjectItems.Context),
		Generator:    e.refs("generator", obj.ObjectItems.Generator),
		Icon:         e.refs("icon", obj.ObjectItems.Icon),
		Image:        e.refs("image", obj.ObjectItems.Image),
		InReplyTo:    e.refs("inReplyTo", obj.ObjectItems.InReplyTo),
		Location:     e.refs("location", obj.ObjectItems.Location),
		Preview:      e.refs("preview", obj.ObjectItems.Preview),
		Replies:      e.objectOpt("replies", obj.ObjectItems.Replies),
		Tag:          e.refs("tag", obj.ObjectItems.Tag),
		To:           e.refs("to", obj.ObjectItems.To),
		URL:          e.urlOpt(obj.ObjectItems.URL),
		Content:      e.strings("content", obj.ObjectItems.Content),
		ContentMap:   obj.ObjectItems.ContentMap,
		Name:         e.strings("name", obj.ObjectItems.Name),
		NameMap:      obj.ObjectItems.NameMap,
		Duration:     obj.ObjectItems.Duration,
		MediaType:    e.strings("mediaType", obj.ObjectItems.MediaType),
		EndTime:      e.timeOpt(obj.ObjectItems.EndTime),
		Published:    e.timeOpt(obj.ObjectItems.Published),
		Summary:      e.strings("summary", obj.ObjectItems.Summary),
		SummaryMap:   obj.ObjectItems.SummaryMap,
		Updated:      e.timeOpt(obj.ObjectItems.Updated),
		Describes:    e.objectOpt("describes", obj.ObjectItems.Describes),

		Inbox:             inbox,
		Outbox:            outbox,
		Following:         following,
		Followers:         followers,
		PreferredUsername: preferredUsername,
		Endpoints:         endpoints,

		Actor:      e.refs("actor", obj.ActivityItems.Actor),
		Instrument: e.refs("instrument", obj.ActivityItems.Instrument),
		Origin:     e.refs("origin", obj.ActivityItems.Origin),
		Object:     e.refs("object", obj.ActivityItems.Object),
		Result:     e.refs("result", obj.ActivityItems.Result),
		Target:     e.refs("target", obj.ActivityItems.Target),

		TotalItems: obj.CollectionItems.TotalItems,
		Current:    e.refOpt("current", obj.CollectionItems.Current),
		First:      e.refOpt("first", obj.CollectionItems.First),
		Last:       e.refOpt("last", obj.CollectionItems.Last),
		Items:      e.refs("items", obj.CollectionItems.Items),

		OrderedItems: e.refs("orderedItems", obj.OrderedCollectionItems.OrderedItems),

		Next:   e.refOpt("next", obj.CollectionPageItems.Next),
		Prev:   e.refOpt("prev", obj.CollectionPageItems.Prev),
		PartOf: e.refOpt("partOf", obj.CollectionPageItems.PartOf),

		StartIndex: obj.OrderedCollectionPageItems.StartIndex,

		Subject:      e.refOpt("subject", obj.RelationshipItems.Subject),
		Relationship: e.refs("relationship", obj.RelationshipItems.Relationship),

		FormerType: e.strings("former_type", obj.TombstoneItems.FormerType),
		Deleted:    e.timeOpt(obj.TombstoneItems.Deleted),

		OneOf:  e.refs("oneOf", obj.QuestionItems.OneOf),
		AnyOf:  e.refs("anyOf", obj.QuestionItems.AnyOf),
		Closed: obj.QuestionItems.Closed,

		Accuracy:  obj.PlaceItems.Accuracy,
		Altitude:  obj.PlaceItems.Altitude,
		Latitute:  obj.PlaceItems.Latitute,
		Longitute: obj.PlaceItems.Longitute,
		Radius:    obj.PlaceItems.Radius,
		Units:     obj.PlaceItems.Units,

		ManuallyApprovesFollowers: obj.ActivityStreamsExtItems.ManuallyApprovesFollowers,
		AlsoKnownAs:               e.strings("alsoKnownAs", obj.ActivityStreamsExtItems.AlsoKnownAs),
		MovedTo:                   obj.ActivityStreamsExtItems.MovedTo,
		Sensitive:                 obj.ActivityStreamsExtItems.Sensitive,

		Featured:     obj.MastodonExtItems.Featured,
		FeaturedTags: obj.MastodonExtItems.FeaturedTags,
		Discoverable: obj.MastodonExtItems.Discoverable,
		Suspended:    obj.MastodonExtItems.Suspended,
		Devices:      obj.MastodonExtItems.Devices,

		PublicKey: publicKey,
		Value:     obj.PropertyItems.Value,
	}
	if e.err != nil {
		return nil, e.err
	}
	return wire, nil
}

// objectDecoder is the decode-side counterpart of objectEncoder.
type objectDecoder struct {
	err error
}

func (d *objectDecoder) contextOpt(raw json.RawMessage) core.Context {
	if d.err != nil || isAbsent(raw) {
		return nil
	}
	c, err := DecodeContext(raw)
	if err != nil {
		d.err = errors.Wrap(err, "@context")
		return nil
	}
	return c
}

func (d *objectDecoder) strings(property string, raw json.RawMessage) []string {
	if d.err != nil {
		return nil
	}
	items, err := decodeStrings(property, raw)
	if err != nil {
		d.err = err
		return nil
	}
	return items
}

func (d *objectDecoder) refs(property string, raw json.RawMessage) []core.ObjectOrLink {
	if d.err != nil {
		return nil
	}
	items, err := decodeRefs(property, raw)
	if err != nil {
		d.err = err
		return nil
	}
	return items
}

func (d *objectDecoder) refOpt(property string, raw json.RawMessage) core.ObjectOrLink {
	if d.err != nil || isAbsent(raw) {
		return nil
	}
	ref, err := DecodeObjectOrLink(raw)
	if err != nil {
		d.err = errors.Wrap(err, property)
		return nil
	}
	return ref
}

func (d *objectDecoder) objectOpt(property string, wire *Object) *core.Object {
	if d.err != nil || wire == nil {
		return nil
	}
	obj, err := objectToModel(wire)
	if err != nil {
		d.err = errors.Wrap(err, property)
		return nil
	}
	return obj
}

func (d *objectDecoder) timeOpt(property string, s *string) *time.Time {
	if d.err != nil || s == nil {
		return nil
	}
	t, err := decodeTime(property, *s)
	if err != nil {
		d.err = err
		return nil
	}
	return &t
}

func (d *objectDecoder) urlOpt(raw json.RawMessage) *core.Link {
	if d.err != nil || isAbsent(raw) {
		return nil
	}
	if firstByte(raw) == '"' {
		var href string
		if err := json.Unmarshal(raw, &href); err != nil {
			d.err = errors.Wrap(err, "url")
			return nil
		}
		return core.NewLink(href)
	}
	var wire Link
	if err := json.Unmarshal(raw, &wire); err != nil {
		d.err = errors.Wrap(wireShapeError(err), "url")
		return nil
	}
	l, err := linkToModel(&wire)
	if err != nil {
		d.err = errors.Wrap(err, "url")
		return nil
	}
	return l
}

func (d *objectDecoder) keyOpt(wire *Key) *core.Key {
	if d.err != nil || wire == nil {
		return nil
	}
	k, err := keyToModel(wire)
	if err != nil {
		d.err = errors.Wrap(err, "publicKey")
		return nil
	}
	return k
}

func objectToModel(wire *Object) (*core.Object, error) {
	d := &objectDecoder{}

	// The actor record exists only as a complete group. A partial set of
	// actor properties is dropped, not rejected.
	var actor *core.ActorItems
	if wire.Inbox != nil && wire.Outbox != nil && wire.Followers != nil && wire.Following != nil {
		actor = &core.ActorItems{
			Inbox:             *wire.Inbox,
			Outbox:            *wire.Outbox,
			Following:         *wire.Following,
			Followers:         *wire.Followers,
			PreferredUsername: wire.PreferredUsername,
			Endpoints:         wire.Endpoints,
		}
	}

	obj := &core.Object{
		SchemaContext: d.contextOpt(wire.SchemaContext),
		ID:            wire.ID,
		Type:          d.strings("type", wire.Type),

		ObjectItems: core.ObjectItems{
			Attachment:   d.refs("attachment", wire.Attachment),
			AttributedTo: d.refs("attributeTo", wire.AttributedTo),
			Audience:     d.refs("audience", wire.Audience),
			Bcc:          d.refs("bcc", wire.Bcc),
			Bto:          d.refs("bto", wire.Bto),
			Cc:           d.refs("cc", wire.Cc),
			Context:      d.refs("context", wire.Context),
			Generator:    d.refs("generator", wire.Generator),
			Icon:         d.refs("icon", wire.Icon),
			Image:        d.refs("image", wire.Image),
			InReplyTo:    d.refs("inReplyTo", wire.InReplyTo),
			Location:     d.refs("location", wire.Location),
			Preview:      d.refs("preview", wire.Preview),
			Replies:      d.objectOpt("replies", wire.Replies),
			Tag:          d.refs("tag", wire.Tag),
			To:           d.refs("to", wire.To),
			URL:          d.urlOpt(wire.URL),
			Content:      d.strings("content", wire.Content),
			ContentMap:   wire.ContentMap,
			Name:         d.strings("name", wire.Name),
			NameMap:      wire.NameMap,
			Duration:     wire.Duration,
			MediaType:    d.strings("mediaType", wire.MediaType),
			EndTime:      d.timeOpt("endTime", wire.EndTime),
			Published:    d.timeOpt("published", wire.Published),
			Summary:      d.strings("summary", wire.Summary),
			SummaryMap:   wire.SummaryMap,
			Updated:      d.timeOpt("updated", wire.Updated),
			Describes:    d.objectOpt("describes", wire.Describes),
		},

		ActorItems: actor,

		ActivityItems: core.ActivityItems{
			Actor:      d.refs("actor", wire.Actor),
			Instrument: d.refs("instrument", wire.Instrument),
			Origin:     d.refs("origin", wire.Origin),
			Object:     d.refs("object", wire.Object),
			Result:     d.refs("result", wire.Result),
			Target:     d.refs("target", wire.Target),
		},

		CollectionItems: core.CollectionItems{
			TotalItems: wire.TotalItems,
			Current:    d.refOpt("current", wire.Current),
			First:      d.refOpt("first", wire.First),
			Last:       d.refOpt("last", wire.Last),
			Items:      d.refs("items", wire.Items),
		},

		OrderedCollectionItems: core.OrderedCollectionItems{
			OrderedItems: d.refs("orderedItems", wire.OrderedItems),
		},

		CollectionPageItems: core.CollectionPageItems{
			Next:   d.refOpt("next", wire.Next),
			Prev:   d.refOpt("prev", wire.Prev),
			PartOf: d.refOpt("partOf", wire.PartOf),
		},

		OrderedCollectionPageItems: core.OrderedCollectionPageItems{
			StartIndex: wire.StartIndex,
		},

		RelationshipItems: core.RelationshipItems{
			Subject:      d.refOpt("subject", wire.Subject),
			Relationship: d.refs("relationship", wire.Relationship),
		},

		TombstoneItems: core.TombstoneItems{
			FormerType: d.strings("former_type", wire.FormerType),
			Deleted:    d.timeOpt("deleted", wire.Deleted),
		},

		QuestionItems: core.QuestionItems{
			OneOf:  d.refs("oneOf", wire.OneOf),
			AnyOf:  d.refs("anyOf", wire.AnyOf),
			Closed: wire.Closed,
		},

		PlaceItems: core.PlaceItems{
			Accuracy:  wire.Accuracy,
			Altitude:  wire.Altitude,
			Latitute:  wire.Latitute,
			Longitute: wire.Longitute,
			Radius:    wire.Radius,
			Units:     wire.Units,
		},

		ActivityStreamsExtItems: core.ActivityStreamsExtItems{
			ManuallyApprovesFollowers: wire.ManuallyApprovesFollowers,
			AlsoKnownAs:               d.strings("alsoKnownAs", wire.AlsoKnownAs),
			MovedTo:                   wire.MovedTo,
			Sensitive:                 wire.Sensitive,
		},

		MastodonExtItems: core.MastodonExtItems{
			Featured:     wire.Featured,
			FeaturedTags: wire.FeaturedTags,
			Discoverable: wire.Discoverable,
			Suspended:    wire.Suspended,
			Devices:      wire.Devices,
		},

		SecurityItems: core.SecurityItems{
			PublicKey: d.keyOpt(wire.PublicKey),
		},

		PropertyItems: core.PropertyItems{
			Value: wire.Value,
		},
	}
	if d.err != nil {
		return nil, d.err
	}
	return obj, nil
}

func linkFromModel(l *core.Link) (*Link, error) {
	var schemaContext json.RawMessage
	if l.SchemaContext != nil {
		var err error
		schemaContext, err = EncodeContext(l.SchemaContext)
		if err != nil {
			return nil, errors.Wrap(err, "@context")
		}
	}
	typ, err := encodeStrings(l.Type)
	if err != nil {
		return nil, errors.Wrap(err, "type")
	}
	mediaType, err := encodeStrings(l.MediaType)
	if err != nil {
		return nil, errors.Wrap(err, "mediaType")
	}
	rel, err := encodeStrings(l.Rel)
	if err != nil {
		return nil, errors.Wrap(err, "rel")
	}
	return &Link{
		SchemaContext: schemaContext,
		ID:            l.ID,
		Type:          typ,
		Href:          l.Href,
		Height:        l.Height,
		Hreflang:      l.Hreflang,
		MediaType:     mediaType,
		Rel:           rel,
		Width:         l.Width,
	}, nil
}

func linkToModel(wire *Link) (*core.Link, error) {
	if wire.Href == "" {
		return nil, core.NewShapeError("href", "string")
	}
	var schemaContext core.Context
	if wire.SchemaContext != nil {
		var err error
		schemaContext, err = DecodeContext(wire.SchemaContext)
		if err != nil {
			return nil, errors.Wrap(err, "@context")
		}
	}
	typ, err := decodeStrings("type", wire.Type)
	if err != nil {
		return nil, err
	}
	mediaType, err := decodeStrings("mediaType", wire.MediaType)
	if err != nil {
		return nil, err
	}
	rel, err := decodeStrings("rel", wire.Rel)
	if err != nil {
		return nil, err
	}
	return &core.Link{
		SchemaContext: schemaContext,
		ID:            wire.ID,
		Type:          typ,
		Href:          wire.Href,
		Height:        wire.Height,
		Hreflang:      wire.Hreflang,
		MediaType:     mediaType,
		Rel:           rel,
		Width:         wire.Width,
	}, nil
}

func keyFromModel(k *core.Key) *Key {
	return &Key{
		ID:           k.ID,
		Owner:        k.Owner,
		PublicKeyPem: k.PublicKeyPem,
	}
}

func keyToModel(wire *Key) (*core.Key, error) {
	if wire.ID == "" {
		return nil, core.NewShapeError("id", "string")
	}
	if wire.Owner == "" {
		return nil, core.NewShapeError("owner", "string")
	}
	return &core.Key{
		ID:           wire.ID,
		Owner:        wire.Owner,
		PublicKeyPem: wire.PublicKeyPem,
	}, nil
}
