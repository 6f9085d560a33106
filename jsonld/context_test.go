package jsonld

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mizunashi-mana/activitist/core"
)

func TestDecodeContextDirect(t *testing.T) {
	c, err := DecodeContext(json.RawMessage(`"https://www.w3.org/ns/activitystreams"`))
	assert.NoError(t, err)
	assert.Equal(t, core.ContextSingle{Value: core.IriDirect("https://www.w3.org/ns/activitystreams")}, c)
}

func TestDecodeContextTypeCoercion(t *testing.T) {
	c, err := DecodeContext(json.RawMessage(`{"@id":"https://w3id.org/security/v1","@type":"@id"}`))
	assert.NoError(t, err)
	coercionType := "@id"
	assert.Equal(t, core.ContextSingle{Value: core.IriTypeCoercion{
		ID:   "https://w3id.org/security/v1",
		Type: &coercionType,
	}}, c)
}

func TestDecodeContextMix(t *testing.T) {
	c, err := DecodeContext(json.RawMessage(`["https://www.w3.org/ns/activitystreams",{"toot":"http://joinmastodon.org/ns#"}]`))
	assert.NoError(t, err)
	assert.Equal(t, core.ContextMix{
		core.ContextSingle{Value: core.IriDirect("https://www.w3.org/ns/activitystreams")},
		core.ContextTermDefs{"toot": core.IriDirect("http://joinmastodon.org/ns#")},
	}, c)
}

func TestDecodeContextTermDefs(t *testing.T) {
	c, err := DecodeContext(json.RawMessage(`{"toot":"http://joinmastodon.org/ns#","featured":{"@id":"toot:featured","@type":"@id"}}`))
	assert.NoError(t, err)
	coercionType := "@id"
	assert.Equal(t, core.ContextTermDefs{
		"toot":     core.IriDirect("http://joinmastodon.org/ns#"),
		"featured": core.IriTypeCoercion{ID: "toot:featured", Type: &coercionType},
	}, c)
}

func TestDecodeContextBadShape(t *testing.T) {
	_, err := DecodeContext(json.RawMessage(`42`))
	assert.Error(t, err)

	var shapeErr core.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

func TestContextRoundTrip(t *testing.T) {
	source := core.ContextMix{
		core.ContextSingle{Value: core.IriDirect("https://www.w3.org/ns/activitystreams")},
		core.ContextSingle{Value: core.IriDirect("https://w3id.org/security/v1")},
		core.ContextTermDefs{"toot": core.IriDirect("http://joinmastodon.org/ns#")},
	}
	raw, err := EncodeContext(source)
	assert.NoError(t, err)

	back, err := DecodeContext(raw)
	assert.NoError(t, err)
	assert.Equal(t, source, back)
}
