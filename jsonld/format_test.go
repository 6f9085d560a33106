package jsonld

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mizunashi-mana/activitist/core"
)

func TestReadObject(t *testing.T) {
	obj, err := ReadObject(strings.NewReader(`{"type":"Note","content":"hi"}`))
	assert.NoError(t, err)
	assert.Equal(t, []string{"Note"}, obj.Type)
	assert.Equal(t, []string{"hi"}, obj.ObjectItems.Content)
}

func TestReadObjectSyntaxError(t *testing.T) {
	_, err := ReadObject(strings.NewReader(`{"type":`))
	assert.Error(t, err)

	_, err = ReadObject(strings.NewReader(`{"type":"Note"} trailing`))
	assert.Error(t, err)
}

func TestWriteObject(t *testing.T) {
	obj := &core.Object{Type: []string{"Note"}}

	var compact bytes.Buffer
	err := WriteObject(&compact, obj, false)
	assert.NoError(t, err)
	assert.Equal(t, "{\"type\":\"Note\"}\n", compact.String())

	var pretty bytes.Buffer
	err = WriteObject(&pretty, obj, true)
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"type\": \"Note\"\n}\n", pretty.String())
}

func TestMarshalObjectIndent(t *testing.T) {
	obj := &core.Object{Type: []string{"Note"}}
	raw, err := MarshalObjectIndent(obj)
	assert.NoError(t, err)
	assert.Equal(t, "{\n  \"type\": \"Note\"\n}", string(raw))

	// indented output reads back the same
	back, err := DecodeObject(raw)
	assert.NoError(t, err)
	assert.Equal(t, obj, back)
}

func TestReadObjectOrLink(t *testing.T) {
	ref, err := ReadObjectOrLink(strings.NewReader(`"https://example.com/1"`))
	assert.NoError(t, err)
	assert.Equal(t, core.ObjectOrLink(core.NewLink("https://example.com/1")), ref)
}

func TestWriteContext(t *testing.T) {
	var buf bytes.Buffer
	err := WriteContext(&buf, core.ContextSingle{Value: core.IriDirect("https://www.w3.org/ns/activitystreams")}, false)
	assert.NoError(t, err)
	assert.Equal(t, "\"https://www.w3.org/ns/activitystreams\"\n", buf.String())
}

func TestOutputIsValidUTF8AndNullFree(t *testing.T) {
	content := "テストé"
	obj := &core.Object{
		Type: []string{"Note"},
		ObjectItems: core.ObjectItems{
			Content: []string{content},
		},
	}
	raw, err := MarshalObject(obj)
	assert.NoError(t, err)
	assert.True(t, json.Valid(raw))
	assert.NotContains(t, string(raw), "null")
}
