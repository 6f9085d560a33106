// Package jsonld converts between the core vocabulary model and its JSON-LD
// wire form. The wire format is loose: most properties accept a bare value or
// an array interchangeably, @context takes several syntactic shapes, and a
// link carrying only href collapses to a bare URI string. The shapes in this
// file mirror the wire documents field for field; the converters reconcile
// the looseness with the core model.
package jsonld

import (
	"encoding/json"
)

// Object is the wire shape of core.Object. One-or-many and union-valued
// properties stay undecoded as json.RawMessage until the converter
// normalizes them. Absent fields are omitted, never null.
type Object struct {
	SchemaContext json.RawMessage `json:"@context,omitempty"`
	ID            *string         `json:"id,omitempty"`
	Type          json.RawMessage `json:"type,omitempty"`

	// https://www.w3.org/ns/activitystreams#Object
	Attachment json.RawMessage `json:"attachment,omitempty"`
	// historical spelling, kept for wire compatibility
	AttributedTo json.RawMessage   `json:"attributeTo,omitempty"`
	Audience     json.RawMessage   `json:"audience,omitempty"`
	Bcc          json.RawMessage   `json:"bcc,omitempty"`
	Bto          json.RawMessage   `json:"bto,omitempty"`
	Cc           json.RawMessage   `json:"cc,omitempty"`
	Context      json.RawMessage   `json:"context,omitempty"`
	Generator    json.RawMessage   `json:"generator,omitempty"`
	Icon         json.RawMessage   `json:"icon,omitempty"`
	Image        json.RawMessage   `json:"image,omitempty"`
	InReplyTo    json.RawMessage   `json:"inReplyTo,omitempty"`
	Location     json.RawMessage   `json:"location,omitempty"`
	Preview      json.RawMessage   `json:"preview,omitempty"`
	Replies      *Object           `json:"replies,omitempty"`
	Tag          json.RawMessage   `json:"tag,omitempty"`
	To           json.RawMessage   `json:"to,omitempty"`
	URL          json.RawMessage   `json:"url,omitempty"`
	Content      json.RawMessage   `json:"content,omitempty"`
	ContentMap   map[string]string `json:"contentMap,omitempty"`
	Name         json.RawMessage   `json:"name,omitempty"`
	NameMap      map[string]string `json:"nameMap,omitempty"`
	Duration     *string           `json:"duration,omitempty"`
	MediaType    json.RawMessage   `json:"mediaType,omitempty"`
	EndTime      *string           `json:"endTime,omitempty"`
	Published    *string           `json:"published,omitempty"`
	Summary      json.RawMessage   `json:"summary,omitempty"`
	SummaryMap   map[string]string `json:"summaryMap,omitempty"`
	Updated      *string           `json:"updated,omitempty"`
	Describes    *Object           `json:"describes,omitempty"`

	// https://www.w3.org/ns/activitystreams#Actor
	Inbox             *string           `json:"inbox,omitempty"`
	Outbox            *string           `json:"outbox,omitempty"`
	Following         *string           `json:"following,omitempty"`
	Followers         *string           `json:"followers,omitempty"`
	PreferredUsername *string           `json:"preferredUsername,omitempty"`
	Endpoints         map[string]string `json:"endpoints,omitempty"`

	// https://www.w3.org/ns/activitystreams#Activity
	Actor      json.RawMessage `json:"actor,omitempty"`
	Instrument json.RawMessage `json:"instrument,omitempty"`
	Origin     json.RawMessage `json:"origin,omitempty"`
	Object     json.RawMessage `json:"object,omitempty"`
	Result     json.RawMessage `json:"result,omitempty"`
	Target     json.RawMessage `json:"target,omitempty"`

	// https://www.w3.org/ns/activitystreams#Collection
	TotalItems *int            `json:"totalItems,omitempty"`
	Current    json.RawMessage `json:"current,omitempty"`
	First      json.RawMessage `json:"first,omitempty"`
	Last       json.RawMessage `json:"last,omitempty"`
	Items      json.RawMessage `json:"items,omitempty"`

	// https://www.w3.org/ns/activitystreams#OrderedCollection
	OrderedItems json.RawMessage `json:"orderedItems,omitempty"`

	// https://www.w3.org/ns/activitystreams#CollectionPage
	Next   json.RawMessage `json:"next,omitempty"`
	Prev   json.RawMessage `json:"prev,omitempty"`
	PartOf json.RawMessage `json:"partOf,omitempty"`

	// https://www.w3.org/ns/activitystreams#OrderedCollectionPage
	StartIndex *int `json:"startIndex,omitempty"`

	// https://www.w3.org/ns/activitystreams#Relationship
	Subject      json.RawMessage `json:"subject,omitempty"`
	Relationship json.RawMessage `json:"relationship,omitempty"`

	// https://www.w3.org/ns/activitystreams#Tombstone
	// raw field name, not camelCased
	FormerType json.RawMessage `json:"former_type,omitempty"`
	Deleted    *string         `json:"deleted,omitempty"`

	// https://www.w3.org/ns/activitystreams#Question
	OneOf  json.RawMessage `json:"oneOf,omitempty"`
	AnyOf  json.RawMessage `json:"anyOf,omitempty"`
	Closed json.RawMessage `json:"closed,omitempty"`

	// https://www.w3.org/ns/activitystreams#Place
	// latitute/longitute are historical spellings, kept for wire compatibility
	Accuracy  *float64 `json:"accuracy,omitempty"`
	Altitude  *float64 `json:"altitude,omitempty"`
	Latitute  *float64 `json:"latitute,omitempty"`
	Longitute *float64 `json:"longitute,omitempty"`
	Radius    *float64 `json:"radius,omitempty"`
	Units     *string  `json:"units,omitempty"`

	// https://docs.joinmastodon.org/spec/activitypub/#as
	ManuallyApprovesFollowers *bool           `json:"manuallyApprovesFollowers,omitempty"`
	AlsoKnownAs               json.RawMessage `json:"alsoKnownAs,omitempty"`
	MovedTo                   *string         `json:"movedTo,omitempty"`
	Sensitive                 *bool           `json:"sensitive,omitempty"`

	// http://joinmastodon.org/ns
	Featured     *string `json:"featured,omitempty"`
	FeaturedTags *string `json:"featuredTags,omitempty"`
	Discoverable *bool   `json:"discoverable,omitempty"`
	Suspended    *bool   `json:"suspended,omitempty"`
	Devices      *string `json:"devices,omitempty"`

	// https://w3id.org/security/v1
	PublicKey *Key `json:"publicKey,omitempty"`

	// https://schema.org/PropertyValue
	Value *string `json:"value,omitempty"`
}

// Link is the wire shape of core.Link.
type Link struct {
	SchemaContext json.RawMessage `json:"@context,omitempty"`
	ID            *string         `json:"id,omitempty"`
	Type          json.RawMessage `json:"type,omitempty"`
	Href          string          `json:"href"`
	Height        *int            `json:"height,omitempty"`
	Hreflang      *string         `json:"hreflang,omitempty"`
	MediaType     json.RawMessage `json:"mediaType,omitempty"`
	Rel           json.RawMessage `json:"rel,omitempty"`
	Width         *int            `json:"width,omitempty"`
}

// Key is the wire shape of core.Key.
type Key struct {
	ID           string  `json:"id"`
	Owner        string  `json:"owner"`
	PublicKeyPem *string `json:"publicKeyPem,omitempty"`
}

// TypeCoercion is the {"@id": ..., "@type": ...} term-definition shorthand.
type TypeCoercion struct {
	ID   string  `json:"@id"`
	Type *string `json:"@type,omitempty"`
}
