package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasType(t *testing.T) {
	obj := &Object{Type: []string{"Person", "Service"}}
	assert.True(t, obj.HasType("Person"))
	assert.True(t, obj.HasType("Service"))
	assert.False(t, obj.HasType("Note"))

	l := &Link{Href: "https://example.com/1", Type: []string{"Link"}}
	assert.True(t, l.HasType("Link"))
	assert.False(t, l.HasType("Mention"))
}

func TestNewLink(t *testing.T) {
	l := NewLink("https://example.com/1")
	assert.Equal(t, "https://example.com/1", l.Href)
	assert.Nil(t, l.ID)
	assert.Empty(t, l.Rel)
}
