package core

import (
	"encoding/json"
	"time"

	"golang.org/x/exp/slices"
)

// Object is the central ActivityStreams entity. The wire format lets any
// object carry any mix of vocabulary properties, so the attributes of all
// layers live on one type, grouped per layer.
type Object struct {
	SchemaContext Context
	ID            *string
	Type          []string

	ObjectItems ObjectItems

	// nil unless the object is an actor
	ActorItems *ActorItems

	ActivityItems              ActivityItems
	CollectionItems            CollectionItems
	OrderedCollectionItems     OrderedCollectionItems
	CollectionPageItems        CollectionPageItems
	OrderedCollectionPageItems OrderedCollectionPageItems
	RelationshipItems          RelationshipItems
	TombstoneItems             TombstoneItems
	QuestionItems              QuestionItems
	PlaceItems                 PlaceItems
	ActivityStreamsExtItems    ActivityStreamsExtItems
	MastodonExtItems           MastodonExtItems
	SecurityItems              SecurityItems
	PropertyItems              PropertyItems
}

// HasType reports whether typ is among the object's types.
func (o *Object) HasType(typ string) bool {
	return slices.Contains(o.Type, typ)
}

// ObjectItems is the property group of https://www.w3.org/ns/activitystreams#Object
type ObjectItems struct {
	Attachment   []ObjectOrLink
	AttributedTo []ObjectOrLink
	Audience     []ObjectOrLink
	Bcc          []ObjectOrLink
	Bto          []ObjectOrLink
	Cc           []ObjectOrLink
	Context      []ObjectOrLink
	Generator    []ObjectOrLink
	Icon         []ObjectOrLink
	Image        []ObjectOrLink
	InReplyTo    []ObjectOrLink
	Location     []ObjectOrLink
	Preview      []ObjectOrLink
	Replies      *Object
	Tag          []ObjectOrLink
	To           []ObjectOrLink
	URL          *Link
	Content      []string
	ContentMap   map[string]string
	Name         []string
	NameMap      map[string]string
	Duration     *string
	MediaType    []string
	EndTime      *time.Time
	Published    *time.Time
	Summary      []string
	SummaryMap   map[string]string
	Updated      *time.Time
	Describes    *Object
}

// ActorItems is the property group of https://www.w3.org/ns/activitystreams#Actor.
// The four collection URIs come as a unit: an object either is an actor and
// has all of them, or is not an actor and has none.
type ActorItems struct {
	Inbox             string
	Outbox            string
	Following         string
	Followers         string
	PreferredUsername *string
	Endpoints         map[string]string
}

// ActivityItems is the property group of https://www.w3.org/ns/activitystreams#Activity
type ActivityItems struct {
	Actor      []ObjectOrLink
	Instrument []ObjectOrLink
	Origin     []ObjectOrLink
	Object     []ObjectOrLink
	Result     []ObjectOrLink
	Target     []ObjectOrLink
}

// CollectionItems is the property group of https://www.w3.org/ns/activitystreams#Collection
type CollectionItems struct {
	TotalItems *int
	Current    ObjectOrLink
	First      ObjectOrLink
	Last       ObjectOrLink
	Items      []ObjectOrLink
}

// OrderedCollectionItems is the property group of https://www.w3.org/ns/activitystreams#OrderedCollection
type OrderedCollectionItems struct {
	OrderedItems []ObjectOrLink
}

// CollectionPageItems is the property group of https://www.w3.org/ns/activitystreams#CollectionPage
type CollectionPageItems struct {
	Next   ObjectOrLink
	Prev   ObjectOrLink
	PartOf ObjectOrLink
}

// OrderedCollectionPageItems is the property group of https://www.w3.org/ns/activitystreams#OrderedCollectionPage
type OrderedCollectionPageItems struct {
	StartIndex *int
}

// RelationshipItems is the property group of https://www.w3.org/ns/activitystreams#Relationship
type RelationshipItems struct {
	Subject      ObjectOrLink
	Relationship []ObjectOrLink
}

// TombstoneItems is the property group of https://www.w3.org/ns/activitystreams#Tombstone
type TombstoneItems struct {
	FormerType []string
	Deleted    *time.Time
}

// QuestionItems is the property group of https://www.w3.org/ns/activitystreams#Question.
// Closed may be a boolean, a datetime or an object on the wire; it is kept
// uninterpreted.
type QuestionItems struct {
	OneOf  []ObjectOrLink
	AnyOf  []ObjectOrLink
	Closed json.RawMessage
}

// PlaceItems is the property group of https://www.w3.org/ns/activitystreams#Place.
// Latitute and Longitute keep the historical wire spellings.
type PlaceItems struct {
	Accuracy  *float64
	Altitude  *float64
	Latitute  *float64
	Longitute *float64
	Radius    *float64
	Units     *string
}

// ActivityStreamsExtItems is the property group of
// https://docs.joinmastodon.org/spec/activitypub/#as
type ActivityStreamsExtItems struct {
	ManuallyApprovesFollowers *bool
	AlsoKnownAs               []string
	MovedTo                   *string
	Sensitive                 *bool
}

// MastodonExtItems is the property group of http://joinmastodon.org/ns
type MastodonExtItems struct {
	Featured     *string
	FeaturedTags *string
	Discoverable *bool
	Suspended    *bool
	Devices      *string
}

// SecurityItems is the property group of https://w3id.org/security/v1
type SecurityItems struct {
	PublicKey *Key
}

// PropertyItems is the property group of https://schema.org/PropertyValue
type PropertyItems struct {
	Value *string
}

// Link is https://www.w3.org/ns/activitystreams#Link
type Link struct {
	SchemaContext Context
	ID            *string
	Type          []string
	Href          string
	Height        *int
	Hreflang      *string
	MediaType     []string
	Rel           []string
	Width         *int
}

// NewLink returns a link carrying only href. Such a link is interchangeable
// with a bare URI string on the wire.
func NewLink(href string) *Link {
	return &Link{Href: href}
}

// HasType reports whether typ is among the link's types.
func (l *Link) HasType(typ string) bool {
	return slices.Contains(l.Type, typ)
}

// Key is a security vocabulary public key.
// Reference: https://w3c.github.io/vc-data-integrity/vocab/security/vocabulary.html#Key
type Key struct {
	ID           string
	Owner        string
	PublicKeyPem *string
}

// ObjectOrLink holds an object, a link, or just an identifier (a link with
// only href set). Implemented by *Object and *Link only.
type ObjectOrLink interface {
	isObjectOrLink()
}

func (*Object) isObjectOrLink() {}
func (*Link) isObjectOrLink()   {}

// Context models the syntax of a JSON-LD @context value without interpreting
// it. Schema: https://www.w3.org/TR/json-ld/#the-context
// Implemented by ContextSingle, ContextMix and ContextTermDefs only.
type Context interface {
	isContext()
}

// ContextSingle is a single context IRI.
type ContextSingle struct {
	Value Iri
}

// ContextMix is a heterogeneous list of contexts.
type ContextMix []Context

// ContextTermDefs maps term names to IRIs.
type ContextTermDefs map[string]Iri

func (ContextSingle) isContext()   {}
func (ContextMix) isContext()      {}
func (ContextTermDefs) isContext() {}

// Iri is a direct IRI string or a type-coercion record.
// Implemented by IriDirect and IriTypeCoercion only.
type Iri interface {
	isIri()
}

// IriDirect is a plain IRI string.
type IriDirect string

// IriTypeCoercion is the {"@id": ..., "@type": ...} term-definition shorthand.
type IriTypeCoercion struct {
	ID   string
	Type *string
}

func (IriDirect) isIri()       {}
func (IriTypeCoercion) isIri() {}
