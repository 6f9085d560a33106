package webfinger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWebFingerMarshal(t *testing.T) {
	finger := WebFinger{
		Subject: "acct:a@example.com",
		Links: []WebFingerLink{
			{
				Rel:  "self",
				Type: "application/activity+json",
				Href: "https://example.com/u/a",
			},
		},
	}
	raw, err := json.Marshal(finger)
	assert.NoError(t, err)
	assert.Equal(t, `{"subject":"acct:a@example.com","links":[{"rel":"self","type":"application/activity+json","href":"https://example.com/u/a"}]}`, string(raw))
}

func TestWellKnownLinkOmitsType(t *testing.T) {
	wellKnown := WellKnown{
		Links: []WellKnownLink{
			{
				Rel:  "http://nodeinfo.diaspora.software/ns/schema/2.0",
				Href: "https://example.com/nodeinfo/2.0",
			},
		},
	}
	raw, err := json.Marshal(wellKnown)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), `"type"`)
}
